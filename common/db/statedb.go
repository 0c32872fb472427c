// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
	"sync"

	"github.com/33cn/coinflip/common"
)

// StateDB 区块执行时的状态缓存
//
// 写操作先落在交易级缓存 txcache, 交易成功 Commit 到区块级缓存 cache,
// 交易失败 Rollback 丢弃. 区块执行完成后 Flush 一次性写入底层数据库.
type StateDB struct {
	mu      sync.RWMutex
	db      DB
	cache   map[string][]byte
	txcache map[string][]byte
	intx    bool
}

// NewStateDB new
func NewStateDB(db DB) *StateDB {
	return &StateDB{
		db:      db,
		cache:   make(map[string][]byte),
		txcache: make(map[string][]byte),
	}
}

// Begin 开始一个交易
func (s *StateDB) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intx = true
	s.txcache = make(map[string][]byte)
}

// Commit 交易成功, 写入区块缓存
func (s *StateDB) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.txcache = make(map[string][]byte)
	s.intx = false
}

// Rollback 交易失败, 丢弃交易内的所有写
func (s *StateDB) Rollback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txcache = make(map[string][]byte)
	s.intx = false
}

// Get 按 txcache, cache, db 的顺序查找. 被删除的 key 返回 ErrNotFoundInDb
func (s *StateDB) Get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	skey := string(key)
	if s.intx {
		if v, ok := s.txcache[skey]; ok {
			return valueOrNotFound(v)
		}
	}
	if v, ok := s.cache[skey]; ok {
		return valueOrNotFound(v)
	}
	return s.db.Get(key)
}

// Set value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := CopyBytes(value)
	if s.intx {
		s.txcache[string(key)] = v
	} else {
		s.cache[string(key)] = v
	}
	return nil
}

// Dirty 区块缓存中被修改的 key, 排序后返回
func (s *StateDB) Dirty() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Hash 区块状态 hash: sha256(prev || sha256(key) || sha256(value) ...), key 按字典序,
// 删除的 key 对应 32 字节的 0. 必须在 Flush 之前调用
func (s *StateDB) Hash(prev []byte) []byte {
	keys := s.Dirty()
	s.mu.RLock()
	defer s.mu.RUnlock()
	parts := make([][]byte, 0, 2*len(keys)+1)
	parts = append(parts, prev)
	for _, k := range keys {
		parts = append(parts, common.Sha256([]byte(k)))
		if v := s.cache[k]; v != nil {
			parts = append(parts, common.Sha256(v))
		} else {
			parts = append(parts, make([]byte, 32))
		}
	}
	return common.Sha256(common.Concat(parts...))
}

// TxKeys 当前交易写过的 key
func (s *StateDB) TxKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.txcache))
	for k := range s.txcache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flush 把区块缓存写入 batch, 由调用方决定何时 Write
func (s *StateDB) Flush(batch Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.cache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	s.cache = make(map[string][]byte)
}

func valueOrNotFound(v []byte) ([]byte, error) {
	if v == nil {
		return nil, ErrNotFoundInDb
	}
	return CopyBytes(v), nil
}
