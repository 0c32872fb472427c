// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util 命令行和测试共用的小工具
package util

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/common/crypto"
	"github.com/33cn/coinflip/common/crypto/secp256k1"
	"github.com/33cn/coinflip/executor/drivers/coins"
	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var ulog = log.New("module", "util")

// Genaddress : generate a address
func Genaddress() (string, crypto.PrivKey) {
	cr, err := crypto.New(secp256k1.Name)
	if err != nil {
		panic(err)
	}
	privto, err := cr.GenKey()
	if err != nil {
		panic(err)
	}
	addrto := address.PubKeyToAddress(privto.PubKey().Bytes())
	return addrto.String(), privto
}

// PrivKeyAddress 私钥对应的地址
func PrivKeyAddress(priv crypto.PrivKey) string {
	return address.PubKeyToAddress(priv.PubKey().Bytes()).String()
}

// LoadPrivKey 参数可以是 hex 编码的私钥, 也可以是保存私钥的文件
func LoadPrivKey(keyOrFile string) (crypto.PrivKey, error) {
	s := strings.TrimSpace(keyOrFile)
	if CheckFileIsExist(s) {
		data, err := ReadFile(s)
		if err != nil {
			return nil, err
		}
		s = strings.TrimSpace(string(data))
	}
	b, err := common.FromHex(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode private key")
	}
	cr, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	priv, err := cr.PrivKeyFromBytes(b)
	if err != nil {
		return nil, errors.Wrap(err, "parse private key")
	}
	return priv, nil
}

// CreateCoinsTx 构造并签名一个转账交易
func CreateCoinsTx(priv crypto.PrivKey, to string, amount int64) *types.Transaction {
	tx := coins.CreateTransfer(to, amount)
	tx.Sign(types.SECP256K1, priv)
	return tx
}

// ResetDatadir 把日志和数据库的相对路径放到 datadir 下
func ResetDatadir(cfg *types.Config, datadir string) string {
	// Check in case of paths like "/something/~/something/"
	if len(datadir) >= 2 && datadir[:2] == "~/" {
		usr, err := user.Current()
		if err != nil {
			panic(err)
		}
		dir := usr.HomeDir
		datadir = filepath.Join(dir, datadir[2:])
	}
	if len(datadir) >= 6 && datadir[:6] == "$TEMP/" {
		dir, err := os.MkdirTemp("", "coinflipdatadir-")
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(dir, datadir[6:])
	}
	ulog.Info("current user data dir is ", "dir", datadir)
	if cfg.Log != nil {
		cfg.Log.LogFile = filepath.Join(datadir, cfg.Log.LogFile)
	}
	cfg.Store.DbPath = filepath.Join(datadir, cfg.Store.DbPath)
	return datadir
}
