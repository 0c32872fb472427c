// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现 coins 资产操作

1. load from db
2. save to db
3. KVSet
4. Transfer
5. Deposit (genesis / faucet)
*/
package account

import (
	"strings"

	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	execer           string
	symbol           string
}

// NewCoinsAccount 主币账户
func NewCoinsAccount(db dbm.KV) *DB {
	acc, err := NewAccountDB(types.CoinsX, "coin", db)
	if err != nil {
		panic(err)
	}
	return acc
}

// NewAccountDB 创建账户数据库, execer 和 symbol 不能包含 "-"
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	if strings.ContainsRune(execer, '-') || strings.ContainsRune(symbol, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	return &DB{
		db:               db,
		accountKeyPerfix: []byte(SymbolPrefix(execer, symbol)),
		execer:           execer,
		symbol:           symbol,
	}, nil
}

// SetDB 每个区块执行前重新设置状态数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// LoadAccount 读取账户, 不存在时返回余额为0的账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// LoadAccounts 批量读取
func (acc *DB) LoadAccounts(addrs []string) []*types.Account {
	accs := make([]*types.Account, 0, len(addrs))
	for _, addr := range addrs {
		accs = append(accs, acc.LoadAccount(addr))
	}
	return accs
}

// CheckTransfer 检查余额是否足够
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.GetBalance()-amount < 0 {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer 转账, 余额不足时不修改任何数据
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	if from == to {
		return nil, types.ErrFromAddr
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.GetBalance()-amount < 0 {
		return nil, types.ErrNoBalance
	}
	balanceTo, err := safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance = accFrom.GetBalance() - amount
	accTo.Balance = balanceTo

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo proto.Message) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount 写入状态数据库
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		if err := acc.db.Set(set[i].GetKey(), set[i].Value); err != nil {
			alog.Error("SaveAccount", "addr", acc1.Addr, "err", err)
		}
	}
}

// GetKVSet 账户对应的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// SymbolPrefix 账户 key 的前缀
func SymbolPrefix(execer string, symbol string) string {
	return "mavl-" + execer + "-" + symbol + "-"
}
