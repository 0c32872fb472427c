// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSide(t *testing.T) {
	for in, expect := range map[string]int32{"head": SideHead, "Heads": SideHead, " h ": SideHead, "tail": SideTail, "T": SideTail} {
		side, err := ParseSide(in)
		require.NoError(t, err, in)
		assert.Equal(t, expect, side, in)
		assert.True(t, ValidSide(side))
	}
	_, err := ParseSide("edge")
	assert.Equal(t, ErrInvalidSide, err)
	assert.False(t, ValidSide(0))
	assert.Equal(t, "head", SideName(SideHead))
	assert.Equal(t, "won", OutcomeName(OutcomeWon))
	assert.Equal(t, "unknown", OutcomeName(9))
}

func TestDerivedAddresses(t *testing.T) {
	taddr, tbump, err := TreasuryAddress(CoinflipX)
	require.NoError(t, err)
	require.NoError(t, address.CheckAddress(taddr))
	assert.True(t, address.VerifyProgramAddress(taddr, [][]byte{[]byte(TreasurySeed)}, tbump, CoinflipX))
	assert.NotEqual(t, address.ExecAddress(CoinflipX), taddr)

	player := address.PubKeyToAddress([]byte("player")).String()
	caddr, cbump, err := ClaimantAddress(CoinflipX, player)
	require.NoError(t, err)
	assert.True(t, address.VerifyProgramAddress(caddr, [][]byte{[]byte(ClaimantSeed), []byte(player)}, cbump, CoinflipX))
	assert.NotEqual(t, taddr, caddr)

	again, _, err := ClaimantAddress(CoinflipX, player)
	require.NoError(t, err)
	assert.Equal(t, caddr, again)
}

func TestCreateTx(t *testing.T) {
	tx := CreateBetTx(types.Coin, SideTail, "claimant")
	assert.Equal(t, CoinflipX, string(tx.Execer))
	assert.Equal(t, address.ExecAddress(CoinflipX), tx.To)
	var action CoinflipAction
	require.NoError(t, types.Decode(tx.Payload, &action))
	assert.Equal(t, "Bet", action.GetAction())
	assert.Equal(t, int32(SideTail), action.GetBet().GetSide())
	assert.Equal(t, "claimant", action.GetBet().GetClaimant())

	for ty, tx := range map[string]*types.Transaction{
		"Init":  CreateInitTx(10, 1),
		"Fund":  CreateFundTx(1),
		"Claim": CreateClaimTx(""),
	} {
		var a CoinflipAction
		require.NoError(t, types.Decode(tx.Payload, &a))
		assert.Equal(t, ty, a.GetAction())
	}
	assert.Equal(t, "unknown", (&CoinflipAction{Ty: 99}).GetAction())
}

func TestDecodeReceipt(t *testing.T) {
	logs := []*types.ReceiptLog{
		{Ty: types.TyLogTransfer, Log: []byte("x")},
		types.NewReceiptLog(TyLogCoinflipBet, &ReceiptCoinflip{Status: StatusOK, Message: MessageWon, Payout: 2}),
		{Ty: TyLogCoinflipClaim, Log: []byte{0xff, 0xff}},
	}
	out := DecodeReceipt(logs)
	require.Len(t, out, 1)
	assert.Equal(t, MessageWon, out[0].Message)
	assert.Equal(t, int64(2), out[0].Payout)
}
