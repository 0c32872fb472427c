// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/33cn/coinflip/blockchain"
	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/executor/drivers/coins"
	"github.com/33cn/coinflip/metrics"
	"github.com/33cn/coinflip/types"
	"github.com/33cn/coinflip/util"
	"github.com/spf13/cobra"
)

// GenKeyCmd 生成私钥
func GenKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate a secp256k1 private key and its address",
		RunE:  genKey,
	}
	cmd.Flags().StringP("out", "o", "", "write the private key to this file")
	return cmd
}

func genKey(cmd *cobra.Command, args []string) error {
	addr, priv := util.Genaddress()
	out, _ := cmd.Flags().GetString("out")
	if out != "" {
		if _, err := util.WriteStringToFile(out, common.ToHex(priv.Bytes())+"\n", 0600); err != nil {
			return err
		}
	}
	PrintJSON(map[string]string{
		"addr": addr,
		"key":  common.ToHex(priv.Bytes()),
	})
	return nil
}

// BalanceCmd 查询余额
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get the coins balance of an address",
		RunE:  balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func balance(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	return WithChain(cmd, func(chain *blockchain.Chain) error {
		acc, err := chain.GetBalance(addr)
		if err != nil {
			return err
		}
		PrintJSON(map[string]string{
			"addr":    addr,
			"balance": types.FormatAmount(acc.GetBalance()),
		})
		return nil
	})
}

// FaucetCmd 测试链领币
func FaucetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faucet",
		Short: "Get test coins, only when exec.enableFaucet is set",
		RunE:  faucet,
	}
	AddKeyFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver, default is the signer")
	cmd.Flags().StringP("amount", "a", "", "amount of coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func faucet(cmd *cobra.Command, args []string) error {
	amount, err := GetAmount(cmd, "amount")
	if err != nil {
		return err
	}
	to, _ := cmd.Flags().GetString("to")
	if to == "" {
		priv, err := GetKey(cmd)
		if err != nil {
			return err
		}
		to = util.PrivKeyAddress(priv)
	}
	result, err := SendTx(cmd, coins.CreateFaucet(to, amount))
	if err != nil {
		return err
	}
	return PrintTxResult(result, nil)
}

// TransferCmd 转账
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to an address",
		RunE:  transfer,
	}
	AddKeyFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "amount of coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) error {
	amount, err := GetAmount(cmd, "amount")
	if err != nil {
		return err
	}
	to, _ := cmd.Flags().GetString("to")
	result, err := SendTx(cmd, coins.CreateTransfer(to, amount))
	if err != nil {
		return err
	}
	return PrintTxResult(result, nil)
}

// BlockCmd 查询区块
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Get a block by height, default is the last block",
		RunE:  block,
	}
	cmd.Flags().Int64P("height", "t", -1, "block height")
	return cmd
}

func block(cmd *cobra.Command, args []string) error {
	height, _ := cmd.Flags().GetInt64("height")
	return WithChain(cmd, func(chain *blockchain.Chain) error {
		if height < 0 {
			height = chain.LastHeader().Height
		}
		detail, err := chain.GetBlock(height)
		if err != nil {
			return err
		}
		b := detail.Block
		txs := make([]*TxResultJSON, 0, len(b.Txs))
		for i, tx := range b.Txs {
			out, _ := DecodeTxResult(&types.TxResult{Height: b.Height, Index: int32(i), Tx: tx, Receipt: detail.Receipts[i], BlockTime: b.BlockTime})
			txs = append(txs, out)
		}
		PrintJSON(map[string]interface{}{
			"height":     b.Height,
			"hash":       common.ToHex(b.Hash()),
			"parentHash": common.ToHex(b.ParentHash),
			"blockTime":  b.BlockTime,
			"txs":        txs,
		})
		return nil
	})
}

// TxCmd 按 hash 查询交易
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Get a transaction by hash",
		RunE:  queryTx,
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryTx(cmd *cobra.Command, args []string) error {
	s, _ := cmd.Flags().GetString("hash")
	hash, err := common.FromHex(s)
	if err != nil {
		return err
	}
	return WithChain(cmd, func(chain *blockchain.Chain) error {
		result, err := chain.GetTx(hash)
		if err != nil {
			return err
		}
		out, _ := DecodeTxResult(result)
		PrintJSON(out)
		return nil
	})
}

// ServeCmd 保持链打开, 提供指标和健康检查, 直到收到退出信号
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Keep the chain open and emit metrics until interrupted",
		RunE:  serve,
	}
}

func serve(cmd *cobra.Command, args []string) error {
	chain, cfg, err := OpenChain(cmd, false)
	if err != nil {
		return err
	}
	defer chain.Close()
	stop := metrics.StartMetrics(cfg.Metrics, chain.Health)
	defer stop()

	head := chain.LastHeader()
	fmt.Printf("chain %s opened at height %d\n", cfg.Title, head.Height)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
