// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"errors"
	"strings"

	"github.com/33cn/coinflip/common"
	"github.com/btcsuite/btcd/btcec/v2"
	lru "github.com/hashicorp/golang-lru"
)

// 程序地址推导
//
// candidate = sha256(seed_0 || ... || seed_n || bump || program || "ProgramDerivedAddress")
//
// candidate 作为压缩公钥 0x02||candidate 的 x 坐标. 如果它恰好落在 secp256k1 曲线上,
// 就有可能存在对应的私钥, 这种结果必须丢弃. bump 从 255 往下试, 第一个不在曲线上的结果
// 就是程序地址. 任何人拿同样的种子和执行器名都能重新算出同一个地址.
const (
	// MaxSeeds 单次推导最多的种子个数(不含 bump)
	MaxSeeds = 16
	// MaxSeedLength 单个种子的最大长度, base58 地址(34 字节)可以直接作为种子
	MaxSeedLength = 64
)

var (
	// ErrMaxSeedLengthExceeded 种子太长或太多
	ErrMaxSeedLengthExceeded = errors.New("ErrMaxSeedLengthExceeded")
	// ErrOnCurve 推导结果是合法公钥, 不能作为程序地址
	ErrOnCurve = errors.New("ErrOnCurve")
	// ErrNoValidBump 所有 bump 都落在曲线上
	ErrNoValidBump = errors.New("ErrNoValidBump")
	// ErrEmptyProgram 执行器名为空
	ErrEmptyProgram = errors.New("ErrEmptyProgram")
)

var pdaMarker = []byte("ProgramDerivedAddress")

var derivedCache *lru.Cache

// onCurve 测试中可以替换
var onCurve = isOnCurve

func init() {
	derivedCache, _ = lru.New(10240)
}

// DerivedAddress 推导结果
type DerivedAddress struct {
	Addr string
	Bump uint8
}

func isOnCurve(candidate []byte) bool {
	var compressed [33]byte
	compressed[0] = 0x02
	copy(compressed[1:], candidate)
	_, err := btcec.ParsePubKey(compressed[:])
	return err == nil
}

func checkSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds+1 {
		return ErrMaxSeedLengthExceeded
	}
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return ErrMaxSeedLengthExceeded
		}
	}
	return nil
}

// CreateProgramAddress 用完整的种子(最后一个种子通常是 bump)计算一个程序地址
func CreateProgramAddress(seeds [][]byte, program string) (string, error) {
	if program == "" {
		return "", ErrEmptyProgram
	}
	if len(program) > MaxExecNameLength {
		return "", ErrMaxSeedLengthExceeded
	}
	if err := checkSeeds(seeds); err != nil {
		return "", err
	}
	parts := append(append([][]byte{}, seeds...), []byte(program), pdaMarker)
	candidate := common.Sha256(common.Concat(parts...))
	if onCurve(candidate) {
		return "", ErrOnCurve
	}
	pubkey := make([]byte, 33)
	pubkey[0] = 0x02
	copy(pubkey[1:], candidate)
	return PubKeyToAddress(pubkey).String(), nil
}

// FindProgramAddress 在 bump 255..0 中搜索第一个合法的程序地址
func FindProgramAddress(seeds [][]byte, program string) (string, uint8, error) {
	if len(seeds) > MaxSeeds {
		return "", 0, ErrMaxSeedLengthExceeded
	}
	key := cacheKey(seeds, program)
	if value, ok := derivedCache.Get(key); ok {
		d := value.(*DerivedAddress)
		return d.Addr, d.Bump, nil
	}
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		addr, err := CreateProgramAddress(withBump, program)
		if err == ErrOnCurve {
			continue
		}
		if err != nil {
			return "", 0, err
		}
		derivedCache.Add(key, &DerivedAddress{Addr: addr, Bump: uint8(bump)})
		return addr, uint8(bump), nil
	}
	return "", 0, ErrNoValidBump
}

// VerifyProgramAddress 检查 addr 是否就是 (seeds, bump, program) 推导出的地址
func VerifyProgramAddress(addr string, seeds [][]byte, bump uint8, program string) bool {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	withBump[len(seeds)] = []byte{bump}
	expect, err := CreateProgramAddress(withBump, program)
	if err != nil {
		return false
	}
	return expect == addr
}

func cacheKey(seeds [][]byte, program string) string {
	var sb strings.Builder
	sb.WriteString(program)
	for _, seed := range seeds {
		sb.WriteByte('/')
		sb.WriteString(common.Bytes2Hex(seed))
	}
	return sb.String()
}
