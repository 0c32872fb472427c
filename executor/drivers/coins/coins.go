// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package coins 内置货币的执行器

主要提供三种操作：
Transfer -> 转移资产
Genesis  -> 创世块发币
Faucet   -> 测试链领币
*/
package coins

import (
	"github.com/33cn/coinflip/executor/drivers"
	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")

var driverName = types.CoinsX

// faucet 配置, Init 时设置
var (
	enableFaucet bool
	maxFaucet    int64
)

// Init 注册 coins 执行器
func Init(name string, cfg *types.Config, sub []byte) {
	driverName = name
	if cfg != nil && cfg.Exec != nil {
		enableFaucet = cfg.Exec.EnableFaucet
		maxFaucet = cfg.Exec.MaxFaucet
	}
	if drivers.IsRegistered(name) {
		return
	}
	drivers.Register(name, newCoins, 0)
}

// Coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	return c
}

// GetName 执行器名
func (c *Coins) GetName() string {
	return driverName
}

// GetActionName 动作名
func (c *Coins) GetActionName(tx *types.Transaction) string {
	var action types.CoinsAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return "unknown-err"
	}
	return action.GetAction()
}

// Exec 执行
func (c *Coins) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := c.CheckTx(tx, index); err != nil {
		return nil, err
	}
	var action types.CoinsAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, types.ErrDecode
	}
	acc := c.GetCoinsAccount()
	switch {
	case action.Ty == types.CoinsActionTransfer && action.GetTransfer() != nil:
		transfer := action.GetTransfer()
		return acc.Transfer(tx.From(), tx.To, transfer.Amount)
	case action.Ty == types.CoinsActionGenesis && action.GetGenesis() != nil:
		if c.GetHeight() != 0 {
			return nil, types.ErrActionNotSupport
		}
		return acc.GenesisInit(tx.To, action.GetGenesis().Amount)
	case action.Ty == types.CoinsActionFaucet && action.GetFaucet() != nil:
		amount := action.GetFaucet().Amount
		if !enableFaucet {
			return nil, types.ErrActionNotSupport
		}
		if maxFaucet > 0 && amount > maxFaucet {
			return nil, types.ErrAmount
		}
		clog.Info("faucet", "to", tx.To, "amount", amount, "height", c.GetHeight())
		return acc.Deposit(tx.To, amount)
	}
	return nil, types.ErrActionNotSupport
}

// Query 查询账户
func (c *Coins) Query(funcName string, params []byte) (types.Message, error) {
	if funcName == "GetAccount" {
		var in types.ReqAddr
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		return c.GetCoinsAccount().LoadAccount(in.Addr), nil
	}
	return nil, types.ErrQueryNotSupport
}

// CreateTransfer 构造转账交易
func CreateTransfer(to string, amount int64) *types.Transaction {
	tx := types.CreateTx(types.CoinsX, &types.CoinsAction{Ty: types.CoinsActionTransfer, Transfer: &types.AssetsTransfer{Amount: amount}})
	tx.To = to
	return tx
}

// CreateFaucet 构造领币交易
func CreateFaucet(to string, amount int64) *types.Transaction {
	tx := types.CreateTx(types.CoinsX, &types.CoinsAction{Ty: types.CoinsActionFaucet, Faucet: &types.AssetsGenesis{Amount: amount}})
	tx.To = to
	return tx
}

// CreateGenesis 构造创世交易
func CreateGenesis(to string, amount int64) *types.Transaction {
	tx := types.CreateTx(types.CoinsX, &types.CoinsAction{Ty: types.CoinsActionGenesis, Genesis: &types.AssetsGenesis{Amount: amount}})
	tx.To = to
	return tx
}
