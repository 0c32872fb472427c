// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/coinflip/common/address"
	cty "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
)

// Query 查询奖池和玩家记录
func (c *Coinflip) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case cty.FuncNameGetTreasury:
		return c.queryTreasury()
	case cty.FuncNameGetClaimant:
		var in types.ReqAddr
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		return c.queryClaimant(in.GetAddr())
	}
	return c.DriverBase.Query(funcName, params)
}

func (c *Coinflip) queryTreasury() (types.Message, error) {
	addr, _, err := cty.TreasuryAddress(c.name)
	if err != nil {
		return nil, err
	}
	t, err := readTreasury(c.GetStateDB(), c.name, addr)
	if err != nil {
		return nil, err
	}
	reply := &cty.ReplyTreasury{
		Treasury: t,
		Addr:     addr,
		Balance:  c.GetCoinsAccount().LoadAccount(addr).GetBalance(),
		Resolver: c.resolver.Name(),
	}
	if r, ok := c.resolver.(*VRFResolver); ok {
		reply.VrfPubKey = r.PubKey()
	}
	return reply, nil
}

func (c *Coinflip) queryClaimant(player string) (types.Message, error) {
	if err := address.CheckAddress(player); err != nil {
		return nil, types.ErrInvalidAddress
	}
	addr, _, err := cty.ClaimantAddress(c.name, player)
	if err != nil {
		return nil, err
	}
	claimant, err := readClaimant(c.GetStateDB(), c.name, addr)
	if err != nil {
		return nil, err
	}
	return &cty.ReplyClaimant{Claimant: claimant, Addr: addr}, nil
}
