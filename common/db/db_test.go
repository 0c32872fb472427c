// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDBGetSet(t *testing.T, db DB) {
	_, err := db.Get([]byte("nokey"))
	require.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, db.Set([]byte("aaaaaa/1"), []byte("aaaaaa/1")))
	require.NoError(t, db.SetSync([]byte("my_key/1"), []byte("my_key/1")))
	v, err := db.Get([]byte("aaaaaa/1"))
	require.NoError(t, err)
	require.Equal(t, "aaaaaa/1", string(v))

	require.NoError(t, db.Delete([]byte("aaaaaa/1")))
	_, err = db.Get([]byte("aaaaaa/1"))
	require.Equal(t, ErrNotFoundInDb, err)
	require.NoError(t, db.DeleteSync([]byte("my_key/1")))
	_, err = db.Get([]byte("my_key/1"))
	require.Equal(t, ErrNotFoundInDb, err)
}

func testDBList(t *testing.T, db DB) {
	db.Set([]byte("aaaaaa/1"), []byte("aaaaaa/1"))
	db.Set([]byte("my_key/3"), []byte("my_key/3"))
	db.Set([]byte("my_key/1"), []byte("my_key/1"))
	db.Set([]byte("my_key/2"), []byte("my_key/2"))
	db.Set([]byte("zzzzzz/1"), []byte("zzzzzz/1"))

	list, err := db.List([]byte("my_key/"), 0)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("my_key/1"), []byte("my_key/2"), []byte("my_key/3")}, list)

	list, err = db.List([]byte("my_key/"), 2)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("my_key/1"), []byte("my_key/2")}, list)

	list, err = db.List([]byte("none/"), 0)
	require.NoError(t, err)
	require.Len(t, list, 0)
}

func testDBBatch(t *testing.T, db DB) {
	db.Set([]byte("b/3"), []byte("3"))
	batch := db.NewBatch(true)
	batch.Set([]byte("b/1"), []byte("1"))
	batch.Set([]byte("b/2"), []byte("22"))
	batch.Delete([]byte("b/3"))
	assert.Equal(t, 4, batch.ValueSize())

	// 未 Write 之前不可见
	_, err := db.Get([]byte("b/1"))
	require.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, batch.Write())
	v, err := db.Get([]byte("b/2"))
	require.NoError(t, err)
	require.Equal(t, []byte("22"), v)
	_, err = db.Get([]byte("b/3"))
	require.Equal(t, ErrNotFoundInDb, err)

	batch.Reset()
	assert.Equal(t, 0, batch.ValueSize())
	require.NoError(t, batch.Write())
}

func testAll(t *testing.T, backend string) {
	dir := t.TempDir()
	for i, f := range []func(*testing.T, DB){testDBGetSet, testDBList, testDBBatch} {
		db, err := NewDB("test"+string(rune('a'+i)), backend, dir, 16)
		require.NoError(t, err)
		f(t, db)
		assert.NotNil(t, db.Stats())
		db.Close()
	}
}

func TestGoMemDB(t *testing.T) {
	testAll(t, MemDBBackendStr)
}

func TestGoLevelDB(t *testing.T) {
	testAll(t, GoLevelDBBackendStr)
}

func TestGoBadgerDB(t *testing.T) {
	testAll(t, GoBadgerDBBackendStr)
}

func TestGoLevelDBReopen(t *testing.T) {
	dir := t.TempDir()
	db, err := NewDB("reopen", LevelDBBackendStr, dir, 16)
	require.NoError(t, err)
	require.NoError(t, db.SetSync([]byte("head"), []byte("1")))
	db.Close()

	db, err = NewDB("reopen", LevelDBBackendStr, dir, 16)
	require.NoError(t, err)
	defer db.Close()
	v, err := db.Get([]byte("head"))
	require.NoError(t, err)
	require.Equal(t, []byte("1"), v)
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewDB("x", "nosuchdb", t.TempDir(), 16)
	require.Error(t, err)
}

func TestStateDBCommitRollback(t *testing.T) {
	mem, err := NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	mem.Set([]byte("k0"), []byte("v0"))
	sdb := NewStateDB(mem)

	sdb.Begin()
	require.NoError(t, sdb.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, sdb.Set([]byte("k0"), nil))
	_, err = sdb.Get([]byte("k0"))
	require.Equal(t, ErrNotFoundInDb, err)
	sdb.Rollback()

	v, err := sdb.Get([]byte("k0"))
	require.NoError(t, err)
	require.Equal(t, []byte("v0"), v)
	_, err = sdb.Get([]byte("k1"))
	require.Equal(t, ErrNotFoundInDb, err)

	sdb.Begin()
	require.NoError(t, sdb.Set([]byte("k1"), []byte("v1")))
	sdb.Commit()
	v, err = sdb.Get([]byte("k1"))
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)
	require.Equal(t, []string{"k1"}, sdb.Dirty())

	// Flush 之前底层数据库看不到
	_, err = mem.Get([]byte("k1"))
	require.Equal(t, ErrNotFoundInDb, err)

	batch := mem.NewBatch(true)
	sdb.Flush(batch)
	require.NoError(t, batch.Write())
	v, err = mem.Get([]byte("k1"))
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)
	require.Len(t, sdb.Dirty(), 0)
}

func TestStateDBHash(t *testing.T) {
	newState := func() *StateDB {
		mem, err := NewGoMemDB("state", "", 0)
		require.NoError(t, err)
		return NewStateDB(mem)
	}
	prev := []byte("parent state")

	a := newState()
	require.NoError(t, a.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, a.Set([]byte("k2"), []byte("v2")))
	// 写入顺序不影响结果
	b := newState()
	require.NoError(t, b.Set([]byte("k2"), []byte("v2")))
	require.NoError(t, b.Set([]byte("k1"), []byte("v1")))
	require.Equal(t, a.Hash(prev), b.Hash(prev))
	require.Len(t, a.Hash(prev), 32)
	require.NotEqual(t, a.Hash(prev), a.Hash(nil))

	// 值不同或者删除, hash 不同
	c := newState()
	require.NoError(t, c.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, c.Set([]byte("k2"), []byte("other")))
	require.NotEqual(t, a.Hash(prev), c.Hash(prev))
	d := newState()
	require.NoError(t, d.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, d.Set([]byte("k2"), nil))
	require.NotEqual(t, a.Hash(prev), d.Hash(prev))

	// 回滚的交易不计入
	e := newState()
	require.NoError(t, e.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, e.Set([]byte("k2"), []byte("v2")))
	e.Begin()
	require.NoError(t, e.Set([]byte("k3"), []byte("v3")))
	e.Rollback()
	require.Equal(t, a.Hash(prev), e.Hash(prev))
}
