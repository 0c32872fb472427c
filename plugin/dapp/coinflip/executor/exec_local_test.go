// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/coinflip/executor/drivers"
	"github.com/33cn/coinflip/metrics"
	cty "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyLeakCoinflip 正常执行之后在回执里多写一个其他执行器的 key, 执行器检查时整个交易回滚
type keyLeakCoinflip struct {
	*Coinflip
}

func (c *keyLeakCoinflip) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	receipt, err := c.Coinflip.Exec(tx, index)
	if err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, &types.KeyValue{Key: []byte("mavl-other-key"), Value: []byte("1")})
	return receipt, nil
}

type metricsSnapshot struct {
	bets, won, lost, claims, payouts, liability int64
}

func snapshotMetrics() metricsSnapshot {
	return metricsSnapshot{
		bets:      metrics.Counter("coinflip.bet").Count(),
		won:       metrics.Counter("coinflip.bet.won").Count(),
		lost:      metrics.Counter("coinflip.bet.lost").Count(),
		claims:    metrics.Counter("coinflip.claim").Count(),
		payouts:   metrics.Meter("coinflip.payout").Count(),
		liability: metrics.Gauge("coinflip.liability").Value(),
	}
}

func TestMetricsFollowCommittedReceipts(t *testing.T) {
	env := newTestEnv(t, NewFixedResolver(cty.SideHead))
	env.initTreasury(100*types.Coin, types.Coin)
	assert.Equal(t, int64(0), metrics.Gauge("coinflip.liability").Value())
	priv, _ := env.newPlayer(10 * types.Coin)

	before := snapshotMetrics()
	r := env.send(priv, cty.CreateBetTx(types.Coin, cty.SideHead, ""))
	env.requireOk(r)
	logs := cty.DecodeReceipt(r.Logs)
	require.Len(t, logs, 1)
	assert.Equal(t, 2*types.Coin, logs[0].Liability)
	after := snapshotMetrics()
	assert.Equal(t, before.bets+1, after.bets)
	assert.Equal(t, before.won+1, after.won)
	assert.Equal(t, before.lost, after.lost)
	assert.Equal(t, 2*types.Coin, after.liability)

	// 执行失败的交易不计入
	env.requireErr(env.send(priv, cty.CreateBetTx(types.Coin/2, cty.SideHead, "")), cty.ErrBelowMinimumBet)
	assert.Equal(t, after, snapshotMetrics())

	r = env.send(priv, cty.CreateClaimTx(""))
	env.requireOk(r)
	logs = cty.DecodeReceipt(r.Logs)
	require.Len(t, logs, 1)
	assert.Equal(t, int64(0), logs[0].Liability)
	claimed := snapshotMetrics()
	assert.Equal(t, after.claims+1, claimed.claims)
	assert.Equal(t, after.payouts+2*types.Coin, claimed.payouts)
	assert.Equal(t, int64(0), claimed.liability)
}

func TestMetricsUnchangedWhenExecutorRejectsReceipt(t *testing.T) {
	env := newTestEnv(t, NewFixedResolver(cty.SideHead))
	env.initTreasury(100*types.Coin, types.Coin)
	priv, player := env.newPlayer(10 * types.Coin)
	env.requireOk(env.send(priv, cty.CreateBetTx(types.Coin, cty.SideHead, "")))
	before := snapshotMetrics()
	require.Equal(t, 2*types.Coin, before.liability)

	resolver := NewFixedResolver(cty.SideHead)
	drivers.Unregister(cty.CoinflipX)
	drivers.Register(cty.CoinflipX, func() drivers.Driver {
		c := newCoinflip(cty.CoinflipX, resolver).(*Coinflip)
		d := &keyLeakCoinflip{Coinflip: c}
		c.SetChild(d)
		return d
	}, 0)
	defer Register(cty.CoinflipX, NewFixedResolver(cty.SideHead))

	// 动作本身成功, 但回执被执行器拒绝, 状态和统计都不变
	env.requireErr(env.send(priv, cty.CreateBetTx(3*types.Coin, cty.SideHead, "")), types.ErrNotAllowKey)
	env.requireErr(env.send(priv, cty.CreateClaimTx("")), types.ErrNotAllowKey)
	assert.Equal(t, before, snapshotMetrics())
	assert.Equal(t, 2*types.Coin, env.treasury().Treasury.Liability)
	assert.Equal(t, types.Coin, env.claimant(player).Amount)
	assert.False(t, env.claimant(player).Claimed)
}
