// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/coinflip/account"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/metrics"
	cty "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

// Action 一个交易的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	execer       string
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	parenthash   []byte
	index        int
	resolver     Resolver
}

// NewAction 构造
func NewAction(c *Coinflip, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: c.GetCoinsAccount(),
		db:           c.GetStateDB(),
		execer:       c.GetName(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    c.GetBlockTime(),
		height:       c.GetHeight(),
		parenthash:   c.GetParentHash(),
		index:        index,
		resolver:     c.resolver,
	}
}

// treasury 奖池的地址和状态. 余额每次都从 coins 账户读取
type treasury struct {
	addr  string
	state *cty.Treasury
}

func (action *Action) loadTreasury() (*treasury, error) {
	addr, _, err := cty.TreasuryAddress(action.execer)
	if err != nil {
		return nil, errors.Wrap(err, "derive treasury address")
	}
	state, err := readTreasury(action.db, action.execer, addr)
	if err != nil {
		return nil, err
	}
	return &treasury{addr: addr, state: state}, nil
}

func (action *Action) balance(t *treasury) int64 {
	return action.coinsAccount.LoadAccount(t.addr).GetBalance()
}

func (action *Action) saveTreasury(t *treasury) []*types.KeyValue {
	return saveTreasury(action.db, action.execer, t.addr, t.state)
}

// Init 创建奖池, 签名者成为奖池的管理者
func (action *Action) Init(payload *cty.CoinflipInit) (*types.Receipt, error) {
	if payload.GetAmount() <= 0 {
		return nil, cty.ErrAmountMustBeGreaterThanZero
	}
	if payload.GetMinimumBet() <= 0 {
		return nil, cty.ErrInvalidMinimumBet
	}
	addr, bump, err := cty.TreasuryAddress(action.execer)
	if err != nil {
		return nil, errors.Wrap(err, "derive treasury address")
	}
	_, err = readTreasury(action.db, action.execer, addr)
	if err == nil {
		return nil, cty.ErrTreasuryExists
	}
	if err != cty.ErrTreasuryNotFound {
		return nil, err
	}
	receipt, err := action.coinsAccount.Transfer(action.fromaddr, addr, payload.GetAmount())
	if err != nil {
		clog.Error("Init transfer", "from", action.fromaddr, "amount", payload.GetAmount(), "err", err)
		return nil, err
	}
	t := &treasury{
		addr: addr,
		state: &cty.Treasury{
			Authority:  action.fromaddr,
			MinimumBet: payload.GetMinimumBet(),
			Bump:       int32(bump),
		},
	}
	receipt.KV = append(receipt.KV, action.saveTreasury(t)...)
	receipt.Logs = append(receipt.Logs, types.NewReceiptLog(cty.TyLogCoinflipInit, &cty.ReceiptTreasury{
		Addr:       addr,
		Authority:  action.fromaddr,
		Amount:     payload.GetAmount(),
		MinimumBet: payload.GetMinimumBet(),
	}))
	clog.Info("treasury initialized", "addr", addr, "authority", action.fromaddr, "amount", payload.GetAmount(), "minimumBet", payload.GetMinimumBet())
	return receipt, nil
}

// Fund 管理者给奖池追加资金
func (action *Action) Fund(payload *cty.CoinflipFund) (*types.Receipt, error) {
	if payload.GetAmount() <= 0 {
		return nil, cty.ErrAmountMustBeGreaterThanZero
	}
	t, err := action.loadTreasury()
	if err != nil {
		return nil, err
	}
	if t.state.GetAuthority() != action.fromaddr {
		return nil, cty.ErrNotAuthority
	}
	receipt, err := action.coinsAccount.Transfer(action.fromaddr, t.addr, payload.GetAmount())
	if err != nil {
		return nil, err
	}
	receipt.Logs = append(receipt.Logs, types.NewReceiptLog(cty.TyLogCoinflipFund, &cty.ReceiptTreasury{
		Addr:       t.addr,
		Authority:  t.state.GetAuthority(),
		Amount:     payload.GetAmount(),
		MinimumBet: t.state.GetMinimumBet(),
	}))
	return receipt, nil
}

// Bet 下注. 先检查奖池能否支付可能的奖金, 再把赌注转入奖池, 最后判定结果并覆盖玩家记录.
// 覆盖一条未领取的中奖记录时, 这笔奖金作废
func (action *Action) Bet(payload *cty.CoinflipBet) (*types.Receipt, error) {
	amount := payload.GetAmount()
	if amount <= 0 {
		return nil, cty.ErrAmountMustBeGreaterThanZero
	}
	if !cty.ValidSide(payload.GetSide()) {
		return nil, cty.ErrInvalidSide
	}
	t, err := action.loadTreasury()
	if err != nil {
		return nil, err
	}
	if amount < t.state.GetMinimumBet() {
		return nil, cty.ErrBelowMinimumBet
	}
	claimAddr, bump, err := cty.ClaimantAddress(action.execer, action.fromaddr)
	if err != nil {
		return nil, errors.Wrap(err, "derive claimant address")
	}
	if payload.GetClaimant() != "" && payload.GetClaimant() != claimAddr {
		return nil, cty.ErrOwnerMismatch
	}

	var forfeit int64
	old, err := readClaimant(action.db, action.execer, claimAddr)
	switch {
	case err == nil:
		if old.GetOutcome() == cty.OutcomeWon && !old.GetClaimed() {
			forfeit = 2 * old.GetAmount()
		}
	case err != cty.ErrNothingToClaim:
		return nil, err
	}
	liability := t.state.GetLiability() - forfeit
	if liability < 0 {
		clog.Crit("treasury liability negative", "liability", t.state.GetLiability(), "forfeit", forfeit)
		return nil, cty.ErrTreasuryIntegrity
	}
	payout := 2 * amount
	if action.balance(t)+amount < liability+payout {
		clog.Debug("Bet treasury insufficient", "balance", action.balance(t), "liability", liability, "payout", payout)
		return nil, cty.ErrTreasuryInsufficient
	}

	receipt, err := action.coinsAccount.Transfer(action.fromaddr, t.addr, amount)
	if err != nil {
		return nil, err
	}
	landed, proof, err := action.resolver.Resolve(&BetContext{
		Player:     action.fromaddr,
		Amount:     amount,
		Side:       payload.GetSide(),
		Height:     action.height,
		BlockTime:  action.blocktime,
		ParentHash: action.parenthash,
		TxHash:     action.txhash,
		Index:      action.index,
	})
	if err != nil {
		clog.Error("Bet resolve", "resolver", action.resolver.Name(), "err", err)
		return nil, err
	}

	c := &cty.Claimant{
		Owner:      action.fromaddr,
		Amount:     amount,
		Side:       payload.GetSide(),
		Outcome:    cty.OutcomeLost,
		Bump:       int32(bump),
		Height:     action.height,
		ParentHash: action.parenthash,
		TxHash:     action.txhash,
		Proof:      proof,
		Landed:     landed,
	}
	r := &cty.ReceiptCoinflip{
		Status:   cty.StatusOK,
		Message:  cty.MessageLost,
		Addr:     action.fromaddr,
		Amount:   amount,
		Side:     payload.GetSide(),
		Outcome:  cty.OutcomeLost,
		Claimant: claimAddr,
		Forfeit:  forfeit,
	}
	t.state.Liability = liability
	if landed == payload.GetSide() {
		c.Outcome = cty.OutcomeWon
		r.Outcome = cty.OutcomeWon
		r.Message = cty.MessageWon
		r.Payout = payout
		t.state.Liability += payout
	}
	t.state.TotalBets++
	r.Liability = t.state.Liability
	if forfeit > 0 {
		clog.Warn("unclaimed win overwritten", "player", action.fromaddr, "forfeit", forfeit)
	}

	receipt.KV = append(receipt.KV, saveClaimant(action.db, action.execer, claimAddr, c)...)
	receipt.KV = append(receipt.KV, action.saveTreasury(t)...)
	receipt.Logs = append(receipt.Logs, types.NewReceiptLog(cty.TyLogCoinflipBet, r))
	clog.Debug("Bet", "player", action.fromaddr, "amount", amount, "side", cty.SideName(c.Side),
		"landed", cty.SideName(landed), "outcome", cty.OutcomeName(c.Outcome), "height", action.height)
	return receipt, nil
}

// Claim 领奖. 中奖时奖池支付两倍赌注, 输的记录只标记为已领取
func (action *Action) Claim(payload *cty.CoinflipClaim) (*types.Receipt, error) {
	claimAddr, _, err := cty.ClaimantAddress(action.execer, action.fromaddr)
	if err != nil {
		return nil, errors.Wrap(err, "derive claimant address")
	}
	if payload.GetClaimant() != "" && payload.GetClaimant() != claimAddr {
		return nil, cty.ErrOwnerMismatch
	}
	c, err := readClaimant(action.db, action.execer, claimAddr)
	if err != nil {
		return nil, err
	}
	if c.GetOwner() != action.fromaddr {
		return nil, cty.ErrOwnerMismatch
	}
	if c.GetClaimed() {
		return nil, cty.ErrAlreadyClaimed
	}
	t, err := action.loadTreasury()
	if err != nil {
		clog.Crit("claimant without treasury", "claimant", claimAddr, "err", err)
		return nil, cty.ErrTreasuryIntegrity
	}

	receipt := &types.Receipt{Ty: types.ExecOk}
	r := &cty.ReceiptCoinflip{
		Status:   cty.StatusOK,
		Message:  cty.MessageLost,
		Addr:     action.fromaddr,
		Amount:   c.GetAmount(),
		Side:     c.GetSide(),
		Outcome:  c.GetOutcome(),
		Claimant: claimAddr,
	}
	if c.GetOutcome() == cty.OutcomeWon {
		payout := 2 * c.GetAmount()
		balance := action.balance(t)
		if balance < payout || t.state.GetLiability() < payout {
			clog.Crit("treasury cannot pay a recorded win", "treasury", t.addr, "balance", balance,
				"liability", t.state.GetLiability(), "payout", payout, "player", action.fromaddr)
			metrics.Counter("coinflip.integrity").Inc(1)
			return nil, cty.ErrTreasuryIntegrity
		}
		transfer, err := action.coinsAccount.Transfer(t.addr, action.fromaddr, payout)
		if err != nil {
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, transfer)
		t.state.Liability -= payout
		t.state.TotalPayout += payout
		receipt.KV = append(receipt.KV, action.saveTreasury(t)...)
		r.Message = cty.MessageWon
		r.Payout = payout
	}
	r.Liability = t.state.GetLiability()
	c.Claimed = true
	receipt.KV = append(receipt.KV, saveClaimant(action.db, action.execer, claimAddr, c)...)
	receipt.Logs = append(receipt.Logs, types.NewReceiptLog(cty.TyLogCoinflipClaim, r))
	clog.Debug("Claim", "player", action.fromaddr, "outcome", cty.OutcomeName(c.Outcome), "payout", r.Payout)
	return receipt, nil
}
