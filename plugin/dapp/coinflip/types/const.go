// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// CoinflipX 执行器名
var CoinflipX = "coinflip"

// coinflip action ty
const (
	CoinflipActionInit = iota + 1
	CoinflipActionBet
	CoinflipActionClaim
	CoinflipActionFund
)

// log ty
const (
	TyLogCoinflipInit  = 1001
	TyLogCoinflipBet   = 1002
	TyLogCoinflipClaim = 1003
	TyLogCoinflipFund  = 1004
)

// 硬币的两面, 0 不是合法的值
const (
	SideHead = 1
	SideTail = 2
)

// 下注结果, Pending 只在执行过程中出现
const (
	OutcomePending = 0
	OutcomeWon     = 1
	OutcomeLost    = 2
)

// 程序地址的种子
const (
	TreasurySeed = "coin-flip"
	ClaimantSeed = "claimant"
)

// 回执里的提示信息
const (
	StatusOK    = "OK"
	MessageWon  = "Congratulations you've won!"
	MessageLost = "Sorry you've lost"
)

// 查询方法名
const (
	FuncNameGetTreasury = "GetTreasury"
	FuncNameGetClaimant = "GetClaimant"
)

// ResolverVRF 结果判定方式, 目前只有 vrf
const ResolverVRF = "vrf"

var actionName = map[int32]string{
	CoinflipActionInit:  "Init",
	CoinflipActionBet:   "Bet",
	CoinflipActionClaim: "Claim",
	CoinflipActionFund:  "Fund",
}
