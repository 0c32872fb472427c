// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"path"
	"strings"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = dlog.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

// badgerLogger 把 badger 内部日志转到 log15
type badgerLogger struct {
	l log.Logger
}

func (b badgerLogger) Errorf(f string, v ...interface{}) {
	b.l.Error(strings.TrimSpace(fmt.Sprintf(f, v...)))
}

func (b badgerLogger) Warningf(f string, v ...interface{}) {
	b.l.Warn(strings.TrimSpace(fmt.Sprintf(f, v...)))
}

func (b badgerLogger) Infof(f string, v ...interface{}) {
	b.l.Debug(strings.TrimSpace(fmt.Sprintf(f, v...)))
}

func (b badgerLogger) Debugf(f string, v ...interface{}) {
	b.l.Debug(strings.TrimSpace(fmt.Sprintf(f, v...)))
}

// GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath).WithLogger(badgerLogger{l: blog})
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "path", dbPath, "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

// Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

// Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	if value == nil {
		return db.Delete(key)
	}
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
		return err
	}
	return nil
}

// SetSync 同 Set, badger 的同步由 SyncWrites 选项决定
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
		return err
	}
	return nil
}

// DeleteSync 同 Delete
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// DB 底层数据库
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

// Close 关闭
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

// Stats 统计
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm.size":  fmt.Sprint(lsm),
		"badger.vlog.size": fmt.Sprint(vlog),
	}
}

// List 前缀查询
func (db *GoBadgerDB) List(prefix []byte, count int) ([][]byte, error) {
	var values [][]byte
	err := db.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if count > 0 && len(values) >= count {
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		blog.Error("List", "error", err)
		return nil, err
	}
	return values, nil
}

// NewBatch 批量写, 在一个 badger 事务里提交
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, kv{CopyBytes(key), CopyBytes(value)})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kv{CopyBytes(key), nil})
	mBatch.size++
}

func (mBatch *goBadgerDBBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range mBatch.writes {
			var err error
			if kv.v == nil {
				err = txn.Delete(kv.k)
			} else {
				err = txn.Set(kv.k, kv.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	return nil
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
	mBatch.size = 0
}
