// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genKey(t *testing.T) crypto.PrivKey {
	c, err := crypto.New("secp256k1")
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return priv
}

func TestTxSign(t *testing.T) {
	priv := genKey(t)
	tx := CreateTx("coins", &CoinsAction{Ty: CoinsActionTransfer, Transfer: &AssetsTransfer{Amount: Coin}})
	assert.False(t, tx.CheckSign())
	tx.Sign(SECP256K1, priv)
	assert.True(t, tx.CheckSign())
	require.NoError(t, tx.Check())
	assert.Equal(t, address.PubKeyToAddress(priv.PubKey().Bytes()).String(), tx.From())

	// 签名不影响 hash
	hash := tx.Hash()
	tx.Sign(SECP256K1, genKey(t))
	assert.Equal(t, hash, tx.Hash())

	tx.Payload = Encode(&CoinsAction{Ty: CoinsActionTransfer, Transfer: &AssetsTransfer{Amount: 2 * Coin}})
	assert.False(t, tx.CheckSign())
	assert.Equal(t, ErrSign, tx.Check())
}

func TestTxNonceDistinct(t *testing.T) {
	action := &CoinsAction{Ty: CoinsActionFaucet, Faucet: &AssetsGenesis{Amount: Coin}}
	tx1 := CreateTx("coins", action)
	tx2 := CreateTx("coins", action)
	assert.NotEqual(t, tx1.Hash(), tx2.Hash())
	assert.Equal(t, address.ExecAddress("coins"), tx1.To)
}

func TestTxExpire(t *testing.T) {
	tx := &Transaction{}
	assert.False(t, tx.IsExpire(100))
	tx.Expire = 10
	assert.False(t, tx.IsExpire(9))
	assert.True(t, tx.IsExpire(10))
}

func TestTxCheckExecer(t *testing.T) {
	tx := &Transaction{}
	tx.Sign(SECP256K1, genKey(t))
	assert.Equal(t, ErrExecNameNotAllow, tx.Check())
}

func TestBlockHash(t *testing.T) {
	txs := []*Transaction{CreateTx("coins", &ReqNil{}), CreateTx("coinflip", &ReqNil{})}
	block := &Block{Height: 1, BlockTime: 1000, ParentHash: make([]byte, 32), TxHash: CalcTxHash(txs), Txs: txs}
	h1 := block.Hash()
	assert.Len(t, h1, 32)

	// 交易本身不参与区块hash, 通过 TxHash 间接参与
	block.Txs = nil
	assert.Equal(t, h1, block.Hash())
	block.BlockTime++
	assert.NotEqual(t, h1, block.Hash())

	head := block.GetHeader()
	assert.Equal(t, block.Hash(), head.Hash)
}

func TestEncodeDecode(t *testing.T) {
	acc := &Account{Balance: 10 * Coin, Addr: "1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4"}
	var acc2 Account
	require.NoError(t, Decode(Encode(acc), &acc2))
	assert.Equal(t, acc.Balance, acc2.Balance)
	assert.Equal(t, acc.Addr, acc2.Addr)
	assert.Error(t, Decode([]byte{0xff, 0xff}, &acc2))
}

func TestReceiptErrMessage(t *testing.T) {
	r := &ReceiptData{Ty: ExecErr, Logs: []*ReceiptLog{ErrLog(ErrNoBalance)}}
	assert.Equal(t, "ErrNoBalance", r.ErrMessage())
	r = &ReceiptData{Ty: ExecOk}
	assert.Equal(t, "", r.ErrMessage())
}
