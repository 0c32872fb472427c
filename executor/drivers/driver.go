// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drivers 执行器驱动的公共接口和基础实现
package drivers

import (
	"github.com/33cn/coinflip/account"
	"github.com/33cn/coinflip/common/address"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

// Driver 执行器驱动. 每个交易加载一个新的实例, 由执行器设置状态数据库和区块环境后调用
type Driver interface {
	SetStateDB(dbm.KV)
	GetName() string
	GetActionName(tx *types.Transaction) string
	SetEnv(height, blocktime int64, parenthash []byte)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) error
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase 驱动的基础实现, 具体执行器嵌入后调用 SetChild
type DriverBase struct {
	statedb      dbm.KV
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	parenthash   []byte
	child        Driver
}

// SetEnv 设置区块环境. 区块自身的 hash 包含执行后的状态 hash, 执行时只能拿到父区块 hash
func (d *DriverBase) SetEnv(height, blocktime int64, parenthash []byte) {
	d.height = height
	d.blocktime = blocktime
	d.parenthash = parenthash
}

// SetChild 设置具体的执行器
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
}

// GetAddr 执行器地址
func (d *DriverBase) GetAddr() string {
	return ExecAddress(d.child.GetName())
}

// SetStateDB 设置状态数据库, coins 账户也使用同一个数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(db)
	} else {
		d.coinsaccount.SetDB(db)
	}
}

// GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// GetCoinsAccount coins 账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}

// GetHeight 区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetParentHash 父区块hash
func (d *DriverBase) GetParentHash() []byte {
	return d.parenthash
}

// GetName 默认名字
func (d *DriverBase) GetName() string {
	return "driver"
}

// GetActionName 默认动作名
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	return "unknown"
}

// CheckTx 检查交易的目的地址
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if err := address.CheckAddress(tx.To); err != nil {
		return types.ErrInvalidAddress
	}
	// 非coins 模块的 ToAddr 指向合约
	exec := string(tx.Execer)
	if exec != types.CoinsX && ExecAddress(exec) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

// ExecLocal 区块写入之后, 对执行成功的交易调用. 默认什么都不做
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) error {
	return nil
}

// Query 默认不支持查询
func (d *DriverBase) Query(funcname string, params []byte) (types.Message, error) {
	blog.Debug("Query", "driver", d.child.GetName(), "func", funcname)
	return nil, types.ErrQueryNotSupport
}
