// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrAmountMustBeGreaterThanZero 金额必须大于 0
	ErrAmountMustBeGreaterThanZero = errors.New("ErrAmountMustBeGreaterThanZero")
	// ErrBelowMinimumBet 下注金额低于奖池的最小下注额
	ErrBelowMinimumBet = errors.New("ErrBelowMinimumBet")
	// ErrInvalidSide 只能押正面或者反面
	ErrInvalidSide = errors.New("ErrInvalidSide")
	// ErrInvalidMinimumBet 最小下注额必须大于 0
	ErrInvalidMinimumBet = errors.New("ErrInvalidMinimumBet")
	// ErrOwnerMismatch 领奖记录不属于交易的签名者
	ErrOwnerMismatch = errors.New("ErrOwnerMismatch")
	// ErrNotAuthority 只有奖池的创建者可以注资
	ErrNotAuthority = errors.New("ErrNotAuthority")
	// ErrTreasuryExists 奖池已经初始化
	ErrTreasuryExists = errors.New("ErrTreasuryExists")
	// ErrTreasuryNotFound 奖池还没有初始化
	ErrTreasuryNotFound = errors.New("ErrTreasuryNotFound")
	// ErrTreasuryInsufficient 奖池余额不足以支付可能的奖金
	ErrTreasuryInsufficient = errors.New("ErrTreasuryInsufficient")
	// ErrNothingToClaim 没有下注记录
	ErrNothingToClaim = errors.New("ErrNothingToClaim")
	// ErrAlreadyClaimed 记录已经领取过
	ErrAlreadyClaimed = errors.New("ErrAlreadyClaimed")
	// ErrTreasuryIntegrity 领奖时奖池余额不足, 状态已经不一致
	ErrTreasuryIntegrity = errors.New("ErrTreasuryIntegrity")
	// ErrUnknownResolver 配置的结果判定方式不存在
	ErrUnknownResolver = errors.New("ErrUnknownResolver")
	// ErrInvalidProof 结果证明无法验证
	ErrInvalidProof = errors.New("ErrInvalidProof")
)
