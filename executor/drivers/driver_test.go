// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drivers

import (
	"testing"

	"github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demo struct {
	DriverBase
}

func newDemo() Driver {
	d := &demo{}
	d.SetChild(d)
	return d
}

func (d *demo) GetName() string {
	return "demo"
}

func (d *demo) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	return &types.Receipt{Ty: types.ExecOk}, nil
}

func TestRegister(t *testing.T) {
	Register("demo", newDemo, 10)
	defer Unregister("demo")
	assert.Panics(t, func() { Register("demo", newDemo, 0) })
	assert.True(t, IsRegistered("demo"))
	assert.Contains(t, Names(), "demo")

	_, err := LoadDriver("demo", 9)
	assert.Equal(t, types.ErrExecNotFound, err)
	d, err := LoadDriver("demo", 10)
	require.NoError(t, err)
	assert.Equal(t, "demo", d.GetName())
	_, err = LoadDriver("demo", -1)
	require.NoError(t, err)
	_, err = LoadDriver("nosuch", -1)
	assert.Equal(t, types.ErrExecNotFound, err)

	assert.True(t, IsDriverAddress(ExecAddress("demo"), 10))
	assert.False(t, IsDriverAddress(ExecAddress("demo"), 1))
	assert.False(t, IsDriverAddress(ExecAddress("nosuch"), -1))
}

func TestDriverBase(t *testing.T) {
	d := newDemo().(*demo)
	mem, _ := db.NewGoMemDB("test", "", 0)
	d.SetStateDB(mem)
	d.SetEnv(5, 1000, []byte("hash"))
	assert.Equal(t, int64(5), d.GetHeight())
	assert.Equal(t, int64(1000), d.GetBlockTime())
	assert.Equal(t, []byte("hash"), d.GetParentHash())
	assert.NoError(t, d.ExecLocal(types.CreateTx("demo", &types.ReqNil{}), &types.ReceiptData{Ty: types.ExecOk}, 0))
	assert.NotNil(t, d.GetCoinsAccount())
	assert.Equal(t, mem, d.GetStateDB())
	assert.Equal(t, ExecAddress("demo"), d.GetAddr())

	tx := types.CreateTx("demo", &types.ReqNil{})
	require.NoError(t, d.CheckTx(tx, 0))
	tx.To = ExecAddress("other")
	assert.Equal(t, types.ErrToAddrNotSameToExecAddr, d.CheckTx(tx, 0))
	tx.To = "bad"
	assert.Equal(t, types.ErrInvalidAddress, d.CheckTx(tx, 0))

	_, err := d.Query("Nothing", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}
