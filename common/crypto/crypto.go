// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto 加解密、签名接口定义
package crypto

import (
	"crypto/sha256"
	"fmt"
	"sync"
)

// PrivKey 私钥
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
	Equals(PrivKey) bool
}

// Signature 签名
type Signature interface {
	Bytes() []byte
	IsZero() bool
	String() string
	Equals(Signature) bool
}

// PubKey 公钥
type PubKey interface {
	Bytes() []byte
	KeyString() string
	VerifyBytes(msg []byte, sig Signature) bool
	Equals(PubKey) bool
}

// Crypto 加密
type Crypto interface {
	GenKey() (PrivKey, error)
	SignatureFromBytes([]byte) (Signature, error)
	PrivKeyFromBytes([]byte) (PrivKey, error)
	PubKeyFromBytes([]byte) (PubKey, error)
}

type driverEntry struct {
	name   string
	ty     int
	driver Crypto
}

var (
	driverMutex sync.RWMutex
	byName      = make(map[string]*driverEntry)
	byType      = make(map[int]*driverEntry)
)

// Register 注册签名算法, name 和 ty 都不能重复
func Register(name string, ty int, driver Crypto) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	if driver == nil {
		panic("crypto: Register driver is nil")
	}
	if _, dup := byName[name]; dup {
		panic("crypto: Register called twice for driver " + name)
	}
	if _, dup := byType[ty]; dup {
		panic(fmt.Sprintf("crypto: type %d of %s already registered", ty, name))
	}
	e := &driverEntry{name: name, ty: ty, driver: driver}
	byName[name] = e
	byType[ty] = e
}

// GetName 签名类型对应的名字
func GetName(ty int) string {
	driverMutex.RLock()
	defer driverMutex.RUnlock()
	if e, ok := byType[ty]; ok {
		return e.name
	}
	return "unknown"
}

// GetType 名字对应的签名类型, 没有注册时为 0
func GetType(name string) int {
	driverMutex.RLock()
	defer driverMutex.RUnlock()
	if e, ok := byName[name]; ok {
		return e.ty
	}
	return 0
}

// New 按名字取签名算法
func New(name string) (Crypto, error) {
	driverMutex.RLock()
	defer driverMutex.RUnlock()
	e, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q", name)
	}
	return e.driver, nil
}

// Sha256 签名前的消息摘要
func Sha256(msg []byte) []byte {
	h := sha256.Sum256(msg)
	return h[:]
}
