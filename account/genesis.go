// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/coinflip/types"
)

func safeAdd(balance, amount int64) (int64, error) {
	if balance+amount < amount || balance+amount > types.MaxCoin {
		return balance, types.ErrAmount
	}
	return balance + amount, nil
}

// GenesisInit 生成创世地址账户收据
func (acc *DB) GenesisInit(addr string, amount int64) (*types.Receipt, error) {
	return acc.deposit(addr, amount, types.TyLogGenesis)
}

// Deposit 凭空增加余额, 测试链的 faucet 使用
func (acc *DB) Deposit(addr string, amount int64) (*types.Receipt, error) {
	return acc.deposit(addr, amount, types.TyLogDeposit)
}

func (acc *DB) deposit(addr string, amount int64, ty int32) (receipt *types.Receipt, err error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accTo := acc.LoadAccount(addr)
	copyto := *accTo
	accTo.Balance, err = safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	acc.SaveAccount(accTo)
	alog.Debug("deposit", "addr", addr, "amount", amount, "balance", accTo.Balance)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(accTo),
		Logs: []*types.ReceiptLog{types.NewReceiptLog(ty, receiptBalanceTo)},
	}, nil
}
