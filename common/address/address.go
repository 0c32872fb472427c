// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 地址计算: 公钥地址, 执行器地址, 以及由种子推导出的程序地址
package address

import (
	"bytes"
	"errors"

	"github.com/33cn/coinflip/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

// MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

// 地址格式: base58(version(1) || ripemd160(sha256(pubkey))(20) || checksum(4))
const addressLength = 25

var (
	// ErrDecodeBase58 不是 base58 字符串
	ErrDecodeBase58 = errors.New("ErrDecodeBase58")
	// ErrAddressLength 解码后长度不是 25
	ErrAddressLength = errors.New("ErrAddressLength")
	// ErrAddressChecksum 校验和错误
	ErrAddressChecksum = errors.New("ErrAddressChecksum")
)

var addrSeed = []byte("address seed bytes for public key")

var (
	addressCache      *lru.Cache
	checkAddressCache *lru.Cache
)

func init() {
	addressCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

// Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

// ExecPubKey 执行器的"公钥", 只用来生成执行器地址, 没有对应的私钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	hash := common.Sha2Sum(common.Concat(addrSeed, []byte(name)))
	return hash[:]
}

// ExecAddress 执行器地址, 计算结果做 cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addr := PubKeyToAddress(ExecPubKey(name)).String()
	addressCache.Add(name, addr)
	return addr
}

// PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	return &Address{
		Pubkey:  common.CopyBytes(in),
		Hash160: common.Rimp160AfterSha256(in),
	}
}

// CheckAddress 检查地址格式, 结果做 cache
func CheckAddress(addr string) error {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, err := NewAddrFromString(addr)
	if err != nil {
		checkAddressCache.Add(addr, err)
		return err
	}
	checkAddressCache.Add(addr, nil)
	return nil
}

// NewAddrFromString 解析 base58 地址
func NewAddrFromString(s string) (*Address, error) {
	dec := base58.Decode(s)
	if len(dec) == 0 {
		return nil, ErrDecodeBase58
	}
	if len(dec) != addressLength {
		return nil, ErrAddressLength
	}
	sum := common.Sha2Sum(dec[:21])
	if !bytes.Equal(sum[:4], dec[21:]) {
		return nil, ErrAddressChecksum
	}
	a := &Address{
		Version:  dec[0],
		Checksum: common.CopyBytes(dec[21:]),
		Enc58str: s,
	}
	copy(a.Hash160[:], dec[1:21])
	return a, nil
}

func (a *Address) String() string {
	if a.Enc58str != "" {
		return a.Enc58str
	}
	var ad [addressLength]byte
	ad[0] = a.Version
	copy(ad[1:21], a.Hash160[:])
	if a.Checksum == nil {
		sum := common.Sha2Sum(ad[:21])
		a.Checksum = common.CopyBytes(sum[:4])
	}
	copy(ad[21:], a.Checksum)
	a.Enc58str = base58.Encode(ad[:])
	return a.Enc58str
}
