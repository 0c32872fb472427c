// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coinflip 的数据结构, 常量和交易构造
package types

import (
	"strings"

	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/types"
)

// GetAction 动作名
func (action *CoinflipAction) GetAction() string {
	if name, ok := actionName[action.GetTy()]; ok {
		return name
	}
	return "unknown"
}

// SideName 硬币面的名字
func SideName(side int32) string {
	switch side {
	case SideHead:
		return "head"
	case SideTail:
		return "tail"
	}
	return "unknown"
}

// ParseSide 解析命令行输入的 head/tail
func ParseSide(s string) (int32, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "head", "heads", "h":
		return SideHead, nil
	case "tail", "tails", "t":
		return SideTail, nil
	}
	return 0, ErrInvalidSide
}

// ValidSide 是否是合法的硬币面
func ValidSide(side int32) bool {
	return side == SideHead || side == SideTail
}

// OutcomeName 结果的名字
func OutcomeName(outcome int32) string {
	switch outcome {
	case OutcomePending:
		return "pending"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "unknown"
}

// TreasuryAddress 奖池的程序地址, 种子为 "coin-flip"
func TreasuryAddress(execer string) (string, uint8, error) {
	return address.FindProgramAddress([][]byte{[]byte(TreasurySeed)}, execer)
}

// ClaimantAddress 玩家记录的程序地址, 种子为 ("claimant", 玩家地址)
func ClaimantAddress(execer string, player string) (string, uint8, error) {
	return address.FindProgramAddress([][]byte{[]byte(ClaimantSeed), []byte(player)}, execer)
}

// CreateInitTx 构造初始化奖池的交易
func CreateInitTx(amount, minimumBet int64) *types.Transaction {
	return types.CreateTx(CoinflipX, &CoinflipAction{
		Ty:   CoinflipActionInit,
		Init: &CoinflipInit{Amount: amount, MinimumBet: minimumBet},
	})
}

// CreateFundTx 构造给奖池注资的交易
func CreateFundTx(amount int64) *types.Transaction {
	return types.CreateTx(CoinflipX, &CoinflipAction{
		Ty:   CoinflipActionFund,
		Fund: &CoinflipFund{Amount: amount},
	})
}

// CreateBetTx 构造下注交易, claimant 为空时由执行器推导
func CreateBetTx(amount int64, side int32, claimant string) *types.Transaction {
	return types.CreateTx(CoinflipX, &CoinflipAction{
		Ty:  CoinflipActionBet,
		Bet: &CoinflipBet{Amount: amount, Side: side, Claimant: claimant},
	})
}

// CreateClaimTx 构造领奖交易
func CreateClaimTx(claimant string) *types.Transaction {
	return types.CreateTx(CoinflipX, &CoinflipAction{
		Ty:    CoinflipActionClaim,
		Claim: &CoinflipClaim{Claimant: claimant},
	})
}

// DecodeReceipt 解析回执里的 coinflip 日志
func DecodeReceipt(logs []*types.ReceiptLog) []*ReceiptCoinflip {
	var out []*ReceiptCoinflip
	for _, l := range logs {
		switch l.GetTy() {
		case TyLogCoinflipBet, TyLogCoinflipClaim:
			var r ReceiptCoinflip
			if err := types.Decode(l.Log, &r); err != nil {
				continue
			}
			out = append(out, &r)
		}
	}
	return out
}
