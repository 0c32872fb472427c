// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr4 = "44ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
)

func GenerAccDb() *DB {
	stroedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	return NewCoinsAccount(stroedb)
}

func (acc *DB) GenerAccData() {
	account := &types.Account{
		Balance: 1000 * 1e8,
		Addr:    addr1,
	}
	acc.SaveAccount(account)

	account.Balance = 900 * 1e8
	account.Addr = addr2
	acc.SaveAccount(account)

	account.Balance = 800 * 1e8
	account.Addr = addr3
	acc.SaveAccount(account)
}

func TestCheckTransfer(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	require.NoError(t, accCoin.CheckTransfer(addr1, addr2, 10*1e8))
	assert.Equal(t, types.ErrNoBalance, accCoin.CheckTransfer(addr4, addr2, 1))
	assert.Equal(t, types.ErrAmount, accCoin.CheckTransfer(addr1, addr2, 0))
}

func TestTransfer(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	receipt, err := accCoin.Transfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)
	require.Len(t, receipt.KV, 2)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, int64(990*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(910*1e8), accCoin.LoadAccount(addr2).Balance)

	var rcv types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &rcv))
	assert.Equal(t, int64(1000*1e8), rcv.Prev.Balance)
	assert.Equal(t, int64(990*1e8), rcv.Current.Balance)

	_, err = accCoin.Transfer(addr4, addr1, 1)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(0), accCoin.LoadAccount(addr4).Balance)

	_, err = accCoin.Transfer(addr1, addr1, 1)
	assert.Equal(t, types.ErrFromAddr, err)
	_, err = accCoin.Transfer(addr1, addr2, -1)
	assert.Equal(t, types.ErrAmount, err)
}

func TestDeposit(t *testing.T) {
	accCoin := GenerAccDb()
	receipt, err := accCoin.Deposit(addr4, 5*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogDeposit), receipt.Logs[0].Ty)
	assert.Equal(t, 5*types.Coin, accCoin.LoadAccount(addr4).Balance)

	receipt, err = accCoin.GenesisInit(addr4, types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	assert.Equal(t, 6*types.Coin, accCoin.LoadAccount(addr4).Balance)

	_, err = accCoin.Deposit(addr4, types.MaxCoin-1)
	assert.Equal(t, types.ErrAmount, err)
}

func TestLoadAccounts(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()
	accs := accCoin.LoadAccounts([]string{addr1, addr4})
	require.Len(t, accs, 2)
	assert.Equal(t, int64(1000*1e8), accs[0].Balance)
	assert.Equal(t, addr4, accs[1].Addr)

	_, err := NewAccountDB("co-ins", "coin", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
}
