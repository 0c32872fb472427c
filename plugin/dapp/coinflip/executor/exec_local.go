// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/coinflip/metrics"
	cty "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
)

// ExecLocal 区块写入之后根据回执日志更新统计, 回滚的交易不会走到这里
func (c *Coinflip) ExecLocal(tx *types.Transaction, receiptData *types.ReceiptData, index int) error {
	for _, l := range receiptData.GetLogs() {
		switch l.Ty {
		case cty.TyLogCoinflipInit:
			metrics.Gauge("coinflip.liability").Update(0)
		case cty.TyLogCoinflipBet:
			var r cty.ReceiptCoinflip
			if err := types.Decode(l.Log, &r); err != nil {
				return err
			}
			metrics.Counter("coinflip.bet").Inc(1)
			if r.Outcome == cty.OutcomeWon {
				metrics.Counter("coinflip.bet.won").Inc(1)
			} else {
				metrics.Counter("coinflip.bet.lost").Inc(1)
			}
			metrics.Gauge("coinflip.liability").Update(r.Liability)
		case cty.TyLogCoinflipClaim:
			var r cty.ReceiptCoinflip
			if err := types.Decode(l.Log, &r); err != nil {
				return err
			}
			metrics.Counter("coinflip.claim").Inc(1)
			if r.Payout > 0 {
				metrics.Meter("coinflip.payout").Mark(r.Payout)
			}
			metrics.Gauge("coinflip.liability").Update(r.Liability)
		}
	}
	return nil
}
