// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"context"
	"math/rand"
	"testing"

	"github.com/33cn/coinflip/account"
	"github.com/33cn/coinflip/blockchain"
	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/common/crypto"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/executor/drivers/coins"
	cty "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t         *testing.T
	db        dbm.DB
	chain     *blockchain.Chain
	authority crypto.PrivKey
	authAddr  string
}

func genKey(t *testing.T) (crypto.PrivKey, string) {
	c, err := crypto.New("secp256k1")
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return priv, address.PubKeyToAddress(priv.PubKey().Bytes()).String()
}

func newTestEnv(t *testing.T, r Resolver) *testEnv {
	priv, addr := genKey(t)
	cfg, sub := types.MustInitCfgString(types.DefaultConfig)
	cfg.Genesis.Addr = addr
	cfg.Genesis.Amount = 1000 * types.Coin
	db, err := dbm.NewGoMemDB("coinflip", "", 0)
	require.NoError(t, err)
	chain, err := blockchain.NewWithDB(cfg, sub, db)
	require.NoError(t, err)
	Register(cty.CoinflipX, r)
	t.Cleanup(chain.Close)
	return &testEnv{t: t, db: db, chain: chain, authority: priv, authAddr: addr}
}

func (env *testEnv) send(priv crypto.PrivKey, tx *types.Transaction) *types.ReceiptData {
	tx.Sign(types.SECP256K1, priv)
	result, err := env.chain.SendTx(context.Background(), tx)
	require.NoError(env.t, err)
	return result.Receipt
}

func (env *testEnv) requireOk(r *types.ReceiptData) {
	require.Equal(env.t, int32(types.ExecOk), r.Ty, r.ErrMessage())
}

func (env *testEnv) requireErr(r *types.ReceiptData, err error) {
	require.Equal(env.t, int32(types.ExecErr), r.Ty)
	require.Equal(env.t, err.Error(), r.ErrMessage())
}

func (env *testEnv) balance(addr string) int64 {
	acc, err := env.chain.GetBalance(addr)
	require.NoError(env.t, err)
	return acc.Balance
}

func (env *testEnv) newPlayer(amount int64) (crypto.PrivKey, string) {
	priv, addr := genKey(env.t)
	env.requireOk(env.send(priv, coins.CreateFaucet(addr, amount)))
	return priv, addr
}

func (env *testEnv) treasury() *cty.ReplyTreasury {
	msg, err := env.chain.Query(cty.CoinflipX, cty.FuncNameGetTreasury, &types.ReqNil{})
	require.NoError(env.t, err)
	return msg.(*cty.ReplyTreasury)
}

func (env *testEnv) claimant(player string) *cty.Claimant {
	msg, err := env.chain.Query(cty.CoinflipX, cty.FuncNameGetClaimant, &types.ReqAddr{Addr: player})
	require.NoError(env.t, err)
	return msg.(*cty.ReplyClaimant).Claimant
}

func (env *testEnv) initTreasury(amount, minimumBet int64) string {
	env.requireOk(env.send(env.authority, cty.CreateInitTx(amount, minimumBet)))
	return env.treasury().Addr
}

func TestInitTreasury(t *testing.T) {
	env := newTestEnv(t, NewFixedResolver(cty.SideHead))
	_, err := env.chain.Query(cty.CoinflipX, cty.FuncNameGetTreasury, &types.ReqNil{})
	assert.Equal(t, cty.ErrTreasuryNotFound, err)

	env.requireErr(env.send(env.authority, cty.CreateInitTx(0, types.Coin)), cty.ErrAmountMustBeGreaterThanZero)
	env.requireErr(env.send(env.authority, cty.CreateInitTx(types.Coin, 0)), cty.ErrInvalidMinimumBet)

	addr := env.initTreasury(110*types.Coin, types.Coin)
	expect, bump, err := cty.TreasuryAddress(cty.CoinflipX)
	require.NoError(t, err)
	assert.Equal(t, expect, addr)

	reply := env.treasury()
	assert.Equal(t, 110*types.Coin, reply.Balance)
	assert.Equal(t, types.Coin, reply.Treasury.MinimumBet)
	assert.Equal(t, env.authAddr, reply.Treasury.Authority)
	assert.Equal(t, int32(bump), reply.Treasury.Bump)
	assert.Equal(t, "fixed", reply.Resolver)
	assert.Equal(t, 890*types.Coin, env.balance(env.authAddr))

	// 不能重复初始化
	env.requireErr(env.send(env.authority, cty.CreateInitTx(10*types.Coin, 5*types.Coin)), cty.ErrTreasuryExists)
	reply = env.treasury()
	assert.Equal(t, 110*types.Coin, reply.Balance)
	assert.Equal(t, types.Coin, reply.Treasury.MinimumBet)
	assert.Equal(t, 890*types.Coin, env.balance(env.authAddr))
}

func TestInitTreasuryNoBalance(t *testing.T) {
	env := newTestEnv(t, NewFixedResolver(cty.SideHead))
	priv, addr := env.newPlayer(types.Coin)
	env.requireErr(env.send(priv, cty.CreateInitTx(10*types.Coin, types.Coin)), types.ErrNoBalance)
	assert.Equal(t, types.Coin, env.balance(addr))
	_, err := env.chain.Query(cty.CoinflipX, cty.FuncNameGetTreasury, &types.ReqNil{})
	assert.Equal(t, cty.ErrTreasuryNotFound, err)
}

func TestBetValidation(t *testing.T) {
	env := newTestEnv(t, NewFixedResolver(cty.SideHead))
	priv, addr := env.newPlayer(10 * types.Coin)
	env.requireErr(env.send(priv, cty.CreateBetTx(types.Coin, cty.SideHead, "")), cty.ErrTreasuryNotFound)

	taddr := env.initTreasury(110*types.Coin, types.Coin)
	cases := []struct {
		name   string
		amount int64
		side   int32
		err    error
	}{
		{"below minimum", types.Coin / 2, cty.SideHead, cty.ErrBelowMinimumBet},
		{"zero", 0, cty.SideHead, cty.ErrAmountMustBeGreaterThanZero},
		{"negative", -types.Coin, cty.SideTail, cty.ErrAmountMustBeGreaterThanZero},
		{"bad side", types.Coin, 3, cty.ErrInvalidSide},
		{"no side", types.Coin, 0, cty.ErrInvalidSide},
		{"no balance", 20 * types.Coin, cty.SideHead, types.ErrNoBalance},
	}
	for _, c := range cases {
		r := env.send(priv, cty.CreateBetTx(c.amount, c.side, ""))
		assert.Equal(t, c.err.Error(), r.ErrMessage(), c.name)
		assert.Equal(t, 10*types.Coin, env.balance(addr), c.name)
		assert.Equal(t, 110*types.Coin, env.balance(taddr), c.name)
	}
	_, err := env.chain.Query(cty.CoinflipX, cty.FuncNameGetClaimant, &types.ReqAddr{Addr: addr})
	assert.Equal(t, cty.ErrNothingToClaim, err)
}

func TestScenarioLoseThenWin(t *testing.T) {
	// 硬币总是反面: 押正面输, 押反面赢
	env := newTestEnv(t, NewFixedResolver(cty.SideTail))
	taddr := env.initTreasury(110*types.Coin, types.Coin)
	priv, player := env.newPlayer(2 * types.Coin)

	r := env.send(priv, cty.CreateBetTx(types.Coin, cty.SideHead, ""))
	env.requireOk(r)
	logs := cty.DecodeReceipt(r.Logs)
	require.Len(t, logs, 1)
	assert.Equal(t, cty.MessageLost, logs[0].Message)
	assert.Equal(t, cty.StatusOK, logs[0].Status)
	assert.Equal(t, 111*types.Coin, env.balance(taddr))
	assert.Equal(t, types.Coin, env.balance(player))

	c := env.claimant(player)
	assert.Equal(t, int32(cty.OutcomeLost), c.Outcome)
	assert.False(t, c.Claimed)
	assert.Equal(t, player, c.Owner)

	// 输的记录领取时没有资金变化, 只标记为已领取
	env.requireOk(env.send(priv, cty.CreateClaimTx("")))
	assert.Equal(t, 111*types.Coin, env.balance(taddr))
	assert.Equal(t, types.Coin, env.balance(player))
	assert.True(t, env.claimant(player).Claimed)
	env.requireErr(env.send(priv, cty.CreateClaimTx("")), cty.ErrAlreadyClaimed)

	r = env.send(priv, cty.CreateBetTx(types.Coin, cty.SideTail, ""))
	env.requireOk(r)
	logs = cty.DecodeReceipt(r.Logs)
	require.Len(t, logs, 1)
	assert.Equal(t, cty.MessageWon, logs[0].Message)
	assert.Equal(t, 2*types.Coin, logs[0].Payout)
	assert.Equal(t, 112*types.Coin, env.balance(taddr))
	assert.Equal(t, int64(0), env.balance(player))
	assert.Equal(t, 2*types.Coin, env.treasury().Treasury.Liability)

	claimAddr, _, err := cty.ClaimantAddress(cty.CoinflipX, player)
	require.NoError(t, err)
	env.requireOk(env.send(priv, cty.CreateClaimTx(claimAddr)))
	assert.Equal(t, 2*types.Coin, env.balance(player))
	assert.Equal(t, 110*types.Coin, env.balance(taddr))
	reply := env.treasury()
	assert.Equal(t, int64(0), reply.Treasury.Liability)
	assert.Equal(t, 2*types.Coin, reply.Treasury.TotalPayout)
	assert.Equal(t, int64(2), reply.Treasury.TotalBets)

	// 中奖只能领一次
	env.requireErr(env.send(priv, cty.CreateClaimTx("")), cty.ErrAlreadyClaimed)
	assert.Equal(t, 2*types.Coin, env.balance(player))
	assert.Equal(t, 110*types.Coin, env.balance(taddr))
}

func TestBetOverwritesUnclaimedWin(t *testing.T) {
	env := newTestEnv(t, NewFixedResolver(cty.SideTail))
	taddr := env.initTreasury(100*types.Coin, types.Coin)
	priv, player := env.newPlayer(10 * types.Coin)

	env.requireOk(env.send(priv, cty.CreateBetTx(3*types.Coin, cty.SideTail, "")))
	first := env.claimant(player)
	assert.Equal(t, int32(cty.OutcomeWon), first.Outcome)
	assert.Equal(t, 6*types.Coin, env.treasury().Treasury.Liability)

	r := env.send(priv, cty.CreateBetTx(types.Coin, cty.SideHead, ""))
	env.requireOk(r)
	logs := cty.DecodeReceipt(r.Logs)
	require.Len(t, logs, 1)
	assert.Equal(t, 6*types.Coin, logs[0].Forfeit)

	second := env.claimant(player)
	assert.Equal(t, types.Coin, second.Amount)
	assert.Equal(t, int32(cty.SideHead), second.Side)
	assert.Equal(t, int32(cty.OutcomeLost), second.Outcome)
	assert.NotEqual(t, first.TxHash, second.TxHash)
	assert.Equal(t, int64(0), env.treasury().Treasury.Liability)

	// 之前的中奖已经无法领取
	env.requireOk(env.send(priv, cty.CreateClaimTx("")))
	assert.Equal(t, 6*types.Coin, env.balance(player))
	assert.Equal(t, 104*types.Coin, env.balance(taddr))
}

func TestBetTreasuryInsufficient(t *testing.T) {
	env := newTestEnv(t, NewFixedResolver(cty.SideHead))
	taddr := env.initTreasury(3*types.Coin, types.Coin)
	priv1, p1 := env.newPlayer(10 * types.Coin)
	priv2, p2 := env.newPlayer(10 * types.Coin)

	// 3 + 5 < 2 * 5
	env.requireErr(env.send(priv1, cty.CreateBetTx(5*types.Coin, cty.SideHead, "")), cty.ErrTreasuryInsufficient)
	assert.Equal(t, 10*types.Coin, env.balance(p1))
	assert.Equal(t, 3*types.Coin, env.balance(taddr))

	env.requireOk(env.send(priv1, cty.CreateBetTx(3*types.Coin, cty.SideHead, "")))
	assert.Equal(t, 6*types.Coin, env.balance(taddr))
	assert.Equal(t, 6*types.Coin, env.treasury().Treasury.Liability)

	// 未领取的奖金占用了奖池余额
	env.requireErr(env.send(priv2, cty.CreateBetTx(types.Coin, cty.SideTail, "")), cty.ErrTreasuryInsufficient)
	assert.Equal(t, 10*types.Coin, env.balance(p2))

	env.requireOk(env.send(priv1, cty.CreateClaimTx("")))
	assert.Equal(t, 13*types.Coin, env.balance(p1))
	assert.Equal(t, int64(0), env.balance(taddr))
}

func TestClaimErrors(t *testing.T) {
	env := newTestEnv(t, NewFixedResolver(cty.SideHead))
	env.initTreasury(100*types.Coin, types.Coin)
	priv, player := env.newPlayer(10 * types.Coin)
	_, other := genKey(t)
	otherClaimant, _, err := cty.ClaimantAddress(cty.CoinflipX, other)
	require.NoError(t, err)

	env.requireErr(env.send(priv, cty.CreateClaimTx("")), cty.ErrNothingToClaim)
	env.requireErr(env.send(priv, cty.CreateBetTx(types.Coin, cty.SideHead, otherClaimant)), cty.ErrOwnerMismatch)
	assert.Equal(t, 10*types.Coin, env.balance(player))

	env.requireOk(env.send(priv, cty.CreateBetTx(types.Coin, cty.SideHead, "")))
	env.requireErr(env.send(priv, cty.CreateClaimTx(otherClaimant)), cty.ErrOwnerMismatch)
	assert.False(t, env.claimant(player).Claimed)

	_, err = env.chain.Query(cty.CoinflipX, cty.FuncNameGetClaimant, &types.ReqAddr{Addr: "bad address"})
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = env.chain.Query(cty.CoinflipX, "NoSuchFunc", &types.ReqNil{})
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestFundTreasury(t *testing.T) {
	env := newTestEnv(t, NewFixedResolver(cty.SideHead))
	priv, _ := env.newPlayer(10 * types.Coin)
	env.requireErr(env.send(env.authority, cty.CreateFundTx(types.Coin)), cty.ErrTreasuryNotFound)

	taddr := env.initTreasury(10*types.Coin, types.Coin)
	env.requireOk(env.send(env.authority, cty.CreateFundTx(5*types.Coin)))
	assert.Equal(t, 15*types.Coin, env.balance(taddr))

	env.requireErr(env.send(priv, cty.CreateFundTx(types.Coin)), cty.ErrNotAuthority)
	env.requireErr(env.send(env.authority, cty.CreateFundTx(0)), cty.ErrAmountMustBeGreaterThanZero)
	assert.Equal(t, 15*types.Coin, env.balance(taddr))
}

func TestClaimTreasuryIntegrity(t *testing.T) {
	env := newTestEnv(t, NewFixedResolver(cty.SideHead))
	taddr := env.initTreasury(10*types.Coin, types.Coin)
	priv, player := env.newPlayer(10 * types.Coin)
	env.requireOk(env.send(priv, cty.CreateBetTx(2*types.Coin, cty.SideHead, "")))

	// 直接改写奖池余额, 模拟状态被破坏
	acc := account.NewCoinsAccount(env.db)
	acc.SaveAccount(&types.Account{Addr: taddr, Balance: types.Coin})

	env.requireErr(env.send(priv, cty.CreateClaimTx("")), cty.ErrTreasuryIntegrity)
	assert.Equal(t, types.Coin, env.balance(taddr))
	assert.Equal(t, 8*types.Coin, env.balance(player))
	assert.False(t, env.claimant(player).Claimed)
}

func TestRandomBetsKeepTreasurySolvent(t *testing.T) {
	rnd := rand.New(rand.NewSource(20181018))
	env := newTestEnv(t, ResolverFunc(func(ctx *BetContext) (int32, []byte, error) {
		return int32(rnd.Intn(2) + 1), nil, nil
	}))
	taddr := env.initTreasury(20*types.Coin, types.Coin)

	type player struct {
		priv crypto.PrivKey
		addr string
	}
	var players []player
	for i := 0; i < 4; i++ {
		priv, addr := env.newPlayer(30 * types.Coin)
		players = append(players, player{priv, addr})
	}
	total := func() int64 {
		sum := env.balance(taddr)
		for _, p := range players {
			sum += env.balance(p.addr)
		}
		return sum
	}
	expectTotal := total()

	for i := 0; i < 150; i++ {
		p := players[rnd.Intn(len(players))]
		var r *types.ReceiptData
		if rnd.Intn(3) == 0 {
			r = env.send(p.priv, cty.CreateClaimTx(""))
		} else {
			amount := int64(rnd.Intn(8)+1) * types.Coin / 2
			r = env.send(p.priv, cty.CreateBetTx(amount, int32(rnd.Intn(2)+1), ""))
		}
		if r.Ty == types.ExecErr {
			switch r.ErrMessage() {
			case cty.ErrBelowMinimumBet.Error(), cty.ErrTreasuryInsufficient.Error(), types.ErrNoBalance.Error(),
				cty.ErrNothingToClaim.Error(), cty.ErrAlreadyClaimed.Error():
			default:
				t.Fatalf("unexpected error %s at step %d", r.ErrMessage(), i)
			}
		}
		reply := env.treasury()
		require.True(t, reply.Balance >= 0)
		require.True(t, reply.Balance >= reply.Treasury.Liability, "balance %d liability %d", reply.Balance, reply.Treasury.Liability)
		require.Equal(t, expectTotal, total())
	}
}
