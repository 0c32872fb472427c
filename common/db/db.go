// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 状态数据库: 后端驱动以及交易级别的写缓存
package db

import (
	"errors"
	"fmt"

	log "github.com/inconshreveable/log15"
)

var dlog = log.New("module", "db")

// ErrNotFoundInDb 数据库中没有这个key
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// ErrDBClosed 数据库已经关闭
var ErrDBClosed = errors.New("ErrDBClosed")

// KV 执行器看到的状态数据接口
type KV interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

// Lister 按前缀列出数据
type Lister interface {
	// List 返回前缀下的 value, 按 key 排序, count <= 0 表示不限制
	List(prefix []byte, count int) ([][]byte, error)
}

// DB 持久化数据库
type DB interface {
	KV
	Lister
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch 批量写, Write 之前对数据库不可见
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// const
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 根据 backend 名字创建数据库
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		dlog.Error("NewDB", "unknown backend", backend)
		return nil, fmt.Errorf("unknown db backend %q", backend)
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, err
	}
	return db, nil
}

// CopyBytes 复制
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}
