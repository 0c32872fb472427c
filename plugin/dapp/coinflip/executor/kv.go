// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/coinflip/common/db"
	cty "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
)

// 状态数据的 key, 都以执行器的 mavl 前缀开头
func treasuryKey(execer, addr string) []byte {
	return []byte("mavl-" + execer + "-treasury-" + addr)
}

func claimantKey(execer, addr string) []byte {
	return []byte("mavl-" + execer + "-claimant-" + addr)
}

// readTreasury 奖池不存在时返回 ErrTreasuryNotFound
func readTreasury(db dbm.KV, execer, addr string) (*cty.Treasury, error) {
	data, err := db.Get(treasuryKey(execer, addr))
	if err == dbm.ErrNotFoundInDb || (err == nil && len(data) == 0) {
		return nil, cty.ErrTreasuryNotFound
	}
	if err != nil {
		return nil, err
	}
	var t cty.Treasury
	if err := types.Decode(data, &t); err != nil {
		clog.Error("readTreasury", "addr", addr, "err", err)
		return nil, types.ErrDecode
	}
	return &t, nil
}

// readClaimant 记录不存在时返回 ErrNothingToClaim
func readClaimant(db dbm.KV, execer, addr string) (*cty.Claimant, error) {
	data, err := db.Get(claimantKey(execer, addr))
	if err == dbm.ErrNotFoundInDb || (err == nil && len(data) == 0) {
		return nil, cty.ErrNothingToClaim
	}
	if err != nil {
		return nil, err
	}
	var c cty.Claimant
	if err := types.Decode(data, &c); err != nil {
		clog.Error("readClaimant", "addr", addr, "err", err)
		return nil, types.ErrDecode
	}
	return &c, nil
}

func saveTreasury(db dbm.KV, execer, addr string, t *cty.Treasury) []*types.KeyValue {
	key := treasuryKey(execer, addr)
	value := types.Encode(t)
	if err := db.Set(key, value); err != nil {
		clog.Error("saveTreasury", "err", err)
	}
	return []*types.KeyValue{{Key: key, Value: value}}
}

func saveClaimant(db dbm.KV, execer, addr string, c *cty.Claimant) []*types.KeyValue {
	key := claimantKey(execer, addr)
	value := types.Encode(c)
	if err := db.Set(key, value); err != nil {
		clog.Error("saveClaimant", "err", err)
	}
	return []*types.KeyValue{{Key: key, Value: value}}
}
