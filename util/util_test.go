// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"path/filepath"
	"testing"

	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrivKey(t *testing.T) {
	addr, priv := Genaddress()
	require.NoError(t, address.CheckAddress(addr))
	assert.Equal(t, addr, PrivKeyAddress(priv))

	hexKey := common.ToHex(priv.Bytes())
	k1, err := LoadPrivKey(hexKey)
	require.NoError(t, err)
	assert.Equal(t, priv.Bytes(), k1.Bytes())

	file := filepath.Join(t.TempDir(), "keys", "a.key")
	_, err = WriteStringToFile(file, " "+hexKey+"\n", 0600)
	require.NoError(t, err)
	k2, err := LoadPrivKey(file)
	require.NoError(t, err)
	assert.Equal(t, addr, PrivKeyAddress(k2))

	_, err = LoadPrivKey("not a key")
	assert.Error(t, err)
}

func TestWriteStringToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a", "b.txt")
	assert.False(t, CheckFileIsExist(file))
	n, err := WriteStringToFile(file, "hello world", 0644)
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	_, err = WriteStringToFile(file, "hi", 0644)
	require.NoError(t, err)
	data, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))

	_, err = ReadFile(file + ".none")
	assert.Error(t, err)
}

func TestResetDatadir(t *testing.T) {
	cfg, _ := types.MustInitCfgString(types.DefaultConfig)
	dir := t.TempDir()
	ResetDatadir(cfg, dir)
	assert.Equal(t, filepath.Join(dir, "logs/coinflip.log"), cfg.Log.LogFile)
	assert.Equal(t, filepath.Join(dir, "datadir"), cfg.Store.DbPath)

	cfg, _ = types.MustInitCfgString(types.DefaultConfig)
	tmp := ResetDatadir(cfg, "$TEMP/chain")
	assert.Equal(t, "chain", filepath.Base(tmp))
	assert.Equal(t, filepath.Join(tmp, "datadir"), cfg.Store.DbPath)
}

func TestCreateCoinsTx(t *testing.T) {
	to, _ := Genaddress()
	_, priv := Genaddress()
	tx := CreateCoinsTx(priv, to, types.Coin)
	require.NoError(t, tx.Check())
	assert.Equal(t, PrivKeyAddress(priv), tx.From())
	assert.Equal(t, types.CoinsX, string(tx.Execer))
}
