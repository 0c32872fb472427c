// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package executor coinflip 执行器

Init  -> 创建奖池
Fund  -> 管理者追加奖池资金
Bet   -> 下注, 结果在打包时立即判定
Claim -> 领取奖金, 或者确认输掉的记录
*/
package executor

import (
	"encoding/json"

	"github.com/33cn/coinflip/executor/drivers"
	cty "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var clog = log.New("module", "execs.coinflip")

// Init 解析子配置, 注册执行器. 重复调用时用新的配置重新注册
func Init(name string, cfg *types.Config, sub []byte) error {
	var subcfg subConfig
	if len(sub) > 0 {
		if err := json.Unmarshal(sub, &subcfg); err != nil {
			return errors.Wrap(err, "coinflip sub config")
		}
	}
	r, err := newResolver(&subcfg)
	if err != nil {
		return err
	}
	Register(name, r)
	clog.Info("coinflip init", "name", name, "resolver", r.Name())
	return nil
}

// Register 用指定的 resolver 注册执行器
func Register(name string, r Resolver) {
	if drivers.IsRegistered(name) {
		drivers.Unregister(name)
	}
	drivers.Register(name, func() drivers.Driver {
		return newCoinflip(name, r)
	}, 0)
}

// GetName 执行器名
func GetName() string {
	return cty.CoinflipX
}

// Coinflip 执行器
type Coinflip struct {
	drivers.DriverBase
	name     string
	resolver Resolver
}

func newCoinflip(name string, r Resolver) drivers.Driver {
	c := &Coinflip{name: name, resolver: r}
	c.SetChild(c)
	return c
}

// GetName 执行器名
func (c *Coinflip) GetName() string {
	return c.name
}

// GetActionName 动作名
func (c *Coinflip) GetActionName(tx *types.Transaction) string {
	var action cty.CoinflipAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return "unknown-err"
	}
	return action.GetAction()
}

// Exec 执行
func (c *Coinflip) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action cty.CoinflipAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, types.ErrDecode
	}
	a := NewAction(c, tx, index)
	switch {
	case action.Ty == cty.CoinflipActionInit && action.GetInit() != nil:
		return a.Init(action.GetInit())
	case action.Ty == cty.CoinflipActionFund && action.GetFund() != nil:
		return a.Fund(action.GetFund())
	case action.Ty == cty.CoinflipActionBet && action.GetBet() != nil:
		return a.Bet(action.GetBet())
	case action.Ty == cty.CoinflipActionClaim && action.GetClaim() != nil:
		return a.Claim(action.GetClaim())
	}
	return nil, types.ErrActionNotSupport
}
