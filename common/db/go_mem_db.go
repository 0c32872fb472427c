// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"sort"
	"strconv"
	"sync"
)

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB 内存数据库, 测试以及临时链使用
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

// NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

// Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return CopyBytes(entry), nil
	}
	return nil, ErrNotFoundInDb
}

// Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if value == nil {
		delete(db.db, string(key))
		return nil
	}
	db.db[string(key)] = CopyBytes(value)
	return nil
}

// SetSync 同 Set
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

// DeleteSync 同 Delete
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// Close 关闭
func (db *GoMemDB) Close() {
}

// Stats 统计
func (db *GoMemDB) Stats() map[string]string {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return map[string]string{"memdb.keys": strconv.Itoa(len(db.db))}
}

// List 前缀查询
func (db *GoMemDB) List(prefix []byte, count int) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var keys []string
	for k := range db.db {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	var values [][]byte
	for _, k := range keys {
		if count > 0 && len(values) >= count {
			break
		}
		values = append(values, CopyBytes(db.db[k]))
	}
	return values, nil
}

// NewBatch 批量写
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type kv struct {
	k, v []byte
}

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{CopyBytes(key), CopyBytes(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{CopyBytes(key), nil})
	b.size++
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, kv := range b.writes {
		if kv.v == nil {
			delete(b.db.db, string(kv.k))
		} else {
			b.db.db[string(kv.k)] = kv.v
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
