// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 命令行程序. 每个命令打开本地的链数据目录, 执行后关闭
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/33cn/coinflip/blockchain"
	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/crypto"
	clog "github.com/33cn/coinflip/common/log"
	"github.com/33cn/coinflip/pluginmgr"
	"github.com/33cn/coinflip/types"
	"github.com/33cn/coinflip/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Run 组装根命令并执行
func Run(name string) {
	clog.SetLogLevel("error")
	rootCmd := NewRootCmd(name)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd 根命令, 包括内置命令和插件命令
func NewRootCmd(name string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           name,
		Short:         name + " client tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("conf", "", "config file, default "+name+".toml if it exists")
	rootCmd.PersistentFlags().String("datadir", "", "data dir, include logs and datas")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "timeout of sending a transaction")
	rootCmd.AddCommand(
		GenKeyCmd(),
		BalanceCmd(),
		FaucetCmd(),
		TransferCmd(),
		BlockCmd(),
		TxCmd(),
		ServeCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
	return rootCmd
}

// LoadConfig 读取 --conf 指定的配置, 没有时使用内置配置
func LoadConfig(cmd *cobra.Command) (*types.Config, *types.ConfigSubModule, error) {
	path, _ := cmd.Flags().GetString("conf")
	if path == "" {
		def := cmd.Root().Name() + ".toml"
		if util.CheckFileIsExist(def) {
			path = def
		}
	}
	var (
		cfg *types.Config
		sub *types.ConfigSubModule
		err error
	)
	if path == "" {
		cfg, sub, err = types.InitCfgString(types.DefaultConfig)
	} else {
		cfg, sub, err = types.InitCfg(path)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "load config")
	}
	if datadir, _ := cmd.Flags().GetString("datadir"); datadir != "" {
		util.ResetDatadir(cfg, datadir)
	}
	return cfg, sub, nil
}

// OpenChain 打开本地链. quiet 时控制台只输出错误日志
func OpenChain(cmd *cobra.Command, quiet bool) (*blockchain.Chain, *types.Config, error) {
	cfg, sub, err := LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if quiet && cfg.Log != nil {
		cfg.Log.LogConsoleLevel = "error"
	}
	clog.SetFileLog(cfg.Log)
	chain, err := blockchain.New(cfg, sub)
	if err != nil {
		return nil, nil, err
	}
	return chain, cfg, nil
}

// WithChain 打开链, 执行 fn 之后关闭
func WithChain(cmd *cobra.Command, fn func(chain *blockchain.Chain) error) error {
	chain, _, err := OpenChain(cmd, true)
	if err != nil {
		return err
	}
	defer chain.Close()
	return fn(chain)
}

// AddKeyFlag 签名用的私钥
func AddKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key in hex, or a file that contains it")
	cmd.MarkFlagRequired("key")
}

// GetKey 读取 --key
func GetKey(cmd *cobra.Command) (crypto.PrivKey, error) {
	key, _ := cmd.Flags().GetString("key")
	return util.LoadPrivKey(key)
}

// GetAmount 读取金额参数, 最多 8 位小数
func GetAmount(cmd *cobra.Command, name string) (int64, error) {
	s, _ := cmd.Flags().GetString(name)
	return types.ParseAmount(s)
}

// SendTx 用 --key 签名并发送交易, 等待打包
func SendTx(cmd *cobra.Command, tx *types.Transaction) (*types.TxResult, error) {
	priv, err := GetKey(cmd)
	if err != nil {
		return nil, err
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	var result *types.TxResult
	err = WithChain(cmd, func(chain *blockchain.Chain) error {
		tx.Sign(types.SECP256K1, priv)
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err = chain.SendTx(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TxResultJSON 交易结果的输出格式
type TxResultJSON struct {
	Hash      string      `json:"hash"`
	Height    int64       `json:"height"`
	Index     int32       `json:"index"`
	BlockTime int64       `json:"blockTime"`
	Execer    string      `json:"execer"`
	From      string      `json:"from"`
	Ty        string      `json:"ty"`
	Error     string      `json:"error,omitempty"`
	Logs      interface{} `json:"logs,omitempty"`
}

// DecodeTxResult 转成输出格式, 执行失败时返回 ExecErr 里的错误
func DecodeTxResult(result *types.TxResult) (*TxResultJSON, error) {
	out := &TxResultJSON{
		Hash:      common.ToHex(result.Tx.Hash()),
		Height:    result.Height,
		Index:     result.Index,
		BlockTime: result.BlockTime,
		Execer:    string(result.Tx.Execer),
		From:      result.Tx.From(),
		Ty:        "ExecOk",
	}
	if result.Receipt.GetTy() != types.ExecOk {
		out.Ty = "ExecErr"
		out.Error = result.Receipt.ErrMessage()
		return out, errors.New(out.Error)
	}
	return out, nil
}

// PrintJSON 缩进输出
func PrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}

// PrintTxResult 输出交易结果, 执行失败时返回错误
func PrintTxResult(result *types.TxResult, logs interface{}) error {
	out, err := DecodeTxResult(result)
	out.Logs = logs
	PrintJSON(out)
	return err
}
