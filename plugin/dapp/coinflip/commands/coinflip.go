// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands coinflip 命令行
package commands

import (
	"github.com/33cn/coinflip/blockchain"
	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/vrf/p256"
	"github.com/33cn/coinflip/plugin/dapp/coinflip/executor"
	cty "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	"github.com/33cn/coinflip/util"
	"github.com/33cn/coinflip/util/cli"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// CoinflipCmd coinflip 命令
func CoinflipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coinflip",
		Short: "Coin flip wagering operation",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitCmd(),
		FundCmd(),
		BetCmd(),
		ClaimCmd(),
		TreasuryCmd(),
		ClaimantCmd(),
		VerifyCmd(),
		VrfKeyCmd(),
	)
	return cmd
}

func sendAndPrint(cmd *cobra.Command, tx *types.Transaction) error {
	result, err := cli.SendTx(cmd, tx)
	if err != nil {
		return err
	}
	var logs interface{}
	if rs := cty.DecodeReceipt(result.GetReceipt().GetLogs()); len(rs) > 0 {
		logs = rs
	}
	return cli.PrintTxResult(result, logs)
}

// InitCmd 初始化奖池
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the treasury and deposit the initial funds",
		RunE:  initTreasury,
	}
	cli.AddKeyFlag(cmd)
	cmd.Flags().StringP("amount", "a", "", "initial deposit")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("min", "m", "1", "minimum bet")
	return cmd
}

func initTreasury(cmd *cobra.Command, args []string) error {
	amount, err := cli.GetAmount(cmd, "amount")
	if err != nil {
		return err
	}
	minimum, err := cli.GetAmount(cmd, "min")
	if err != nil {
		return err
	}
	return sendAndPrint(cmd, cty.CreateInitTx(amount, minimum))
}

// FundCmd 奖池注资
func FundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Deposit coins into the treasury",
		RunE:  fundTreasury,
	}
	cli.AddKeyFlag(cmd)
	cmd.Flags().StringP("amount", "a", "", "deposit")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func fundTreasury(cmd *cobra.Command, args []string) error {
	amount, err := cli.GetAmount(cmd, "amount")
	if err != nil {
		return err
	}
	return sendAndPrint(cmd, cty.CreateFundTx(amount))
}

// BetCmd 下注
func BetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Bet on head or tail",
		RunE:  bet,
	}
	cli.AddKeyFlag(cmd)
	cmd.Flags().StringP("amount", "a", "", "stake")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("side", "s", "", "head or tail")
	cmd.MarkFlagRequired("side")
	return cmd
}

func bet(cmd *cobra.Command, args []string) error {
	amount, err := cli.GetAmount(cmd, "amount")
	if err != nil {
		return err
	}
	s, _ := cmd.Flags().GetString("side")
	side, err := cty.ParseSide(s)
	if err != nil {
		return err
	}
	return sendAndPrint(cmd, cty.CreateBetTx(amount, side, ""))
}

// ClaimCmd 领奖
func ClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the payout of the last winning bet",
		RunE:  claim,
	}
	cli.AddKeyFlag(cmd)
	return cmd
}

func claim(cmd *cobra.Command, args []string) error {
	return sendAndPrint(cmd, cty.CreateClaimTx(""))
}

// TreasuryCmd 查询奖池
func TreasuryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "treasury",
		Short: "Show the treasury state and balance",
		RunE:  showTreasury,
	}
}

// TreasuryJSON 奖池的输出格式
type TreasuryJSON struct {
	Addr        string `json:"addr"`
	Authority   string `json:"authority"`
	Balance     string `json:"balance"`
	MinimumBet  string `json:"minimumBet"`
	Liability   string `json:"liability"`
	TotalBets   int64  `json:"totalBets"`
	TotalPayout string `json:"totalPayout"`
	Resolver    string `json:"resolver"`
	VrfPubKey   string `json:"vrfPubKey,omitempty"`
}

func queryTreasury(chain *blockchain.Chain) (*cty.ReplyTreasury, error) {
	msg, err := chain.Query(cty.CoinflipX, cty.FuncNameGetTreasury, &types.ReqNil{})
	if err != nil {
		return nil, err
	}
	return msg.(*cty.ReplyTreasury), nil
}

func showTreasury(cmd *cobra.Command, args []string) error {
	return cli.WithChain(cmd, func(chain *blockchain.Chain) error {
		reply, err := queryTreasury(chain)
		if err != nil {
			return err
		}
		t := reply.GetTreasury()
		cli.PrintJSON(&TreasuryJSON{
			Addr:        reply.GetAddr(),
			Authority:   t.GetAuthority(),
			Balance:     types.FormatAmount(reply.GetBalance()),
			MinimumBet:  types.FormatAmount(t.GetMinimumBet()),
			Liability:   types.FormatAmount(t.GetLiability()),
			TotalBets:   t.GetTotalBets(),
			TotalPayout: types.FormatAmount(t.GetTotalPayout()),
			Resolver:    reply.GetResolver(),
			VrfPubKey:   common.ToHex(reply.GetVrfPubKey()),
		})
		return nil
	})
}

// ClaimantCmd 查询玩家记录
func ClaimantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claimant",
		Short: "Show the bet record of a player",
		RunE:  showClaimant,
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

// ClaimantJSON 玩家记录的输出格式
type ClaimantJSON struct {
	Addr       string `json:"addr"`
	Owner      string `json:"owner"`
	Amount     string `json:"amount"`
	Side       string `json:"side"`
	Landed     string `json:"landed"`
	Outcome    string `json:"outcome"`
	Claimed    bool   `json:"claimed"`
	Height     int64  `json:"height"`
	ParentHash string `json:"parentHash"`
	TxHash     string `json:"txHash"`
	Proof      string `json:"proof,omitempty"`
}

func queryClaimant(chain *blockchain.Chain, player string) (*cty.ReplyClaimant, error) {
	msg, err := chain.Query(cty.CoinflipX, cty.FuncNameGetClaimant, &types.ReqAddr{Addr: player})
	if err != nil {
		return nil, err
	}
	return msg.(*cty.ReplyClaimant), nil
}

func showClaimant(cmd *cobra.Command, args []string) error {
	player, _ := cmd.Flags().GetString("addr")
	return cli.WithChain(cmd, func(chain *blockchain.Chain) error {
		reply, err := queryClaimant(chain, player)
		if err != nil {
			return err
		}
		c := reply.GetClaimant()
		cli.PrintJSON(&ClaimantJSON{
			Addr:       reply.GetAddr(),
			Owner:      c.GetOwner(),
			Amount:     types.FormatAmount(c.GetAmount()),
			Side:       cty.SideName(c.GetSide()),
			Landed:     cty.SideName(c.GetLanded()),
			Outcome:    cty.OutcomeName(c.GetOutcome()),
			Claimed:    c.GetClaimed(),
			Height:     c.GetHeight(),
			ParentHash: common.ToHex(c.GetParentHash()),
			TxHash:     common.ToHex(c.GetTxHash()),
			Proof:      common.ToHex(c.GetProof()),
		})
		return nil
	})
}

// VerifyCmd 用奖池公布的 vrf 公钥重新验证玩家最近一次下注的结果
func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the recorded outcome of a player's last bet",
		RunE:  verify,
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("pubkey", "p", "", "vrf public key in hex, default is the one of the running resolver")
	return cmd
}

func verify(cmd *cobra.Command, args []string) error {
	player, _ := cmd.Flags().GetString("addr")
	pubHex, _ := cmd.Flags().GetString("pubkey")
	return cli.WithChain(cmd, func(chain *blockchain.Chain) error {
		var pub []byte
		if pubHex != "" {
			b, err := common.FromHex(pubHex)
			if err != nil {
				return errors.Wrap(err, "decode pubkey")
			}
			pub = b
		} else {
			t, err := queryTreasury(chain)
			if err != nil {
				return err
			}
			pub = t.GetVrfPubKey()
		}
		reply, err := queryClaimant(chain, player)
		if err != nil {
			return err
		}
		landed, err := executor.VerifyOutcome(pub, reply.GetClaimant())
		if err != nil {
			return err
		}
		cli.PrintJSON(map[string]interface{}{
			"addr":   player,
			"landed": cty.SideName(landed),
			"valid":  true,
		})
		return nil
	})
}

// VrfKeyCmd 生成 vrf 私钥文件, 配置到 exec.sub.coinflip.vrfKeyFile
func VrfKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vrfkey",
		Short: "Generate a vrf key file for the coinflip resolver",
		RunE:  vrfKey,
	}
	cmd.Flags().StringP("out", "o", "vrf.key", "key file")
	return cmd
}

func vrfKey(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	if util.CheckFileIsExist(out) {
		return errors.Errorf("%s already exists", out)
	}
	_, priv := util.Genaddress()
	seed := priv.Bytes()
	_, _, pub := p256.GenVrfKeyFromBytes(seed)
	if _, err := util.WriteStringToFile(out, common.Bytes2Hex(seed)+"\n", 0600); err != nil {
		return err
	}
	cli.PrintJSON(map[string]string{
		"file":      out,
		"vrfPubKey": common.ToHex(pub),
	})
	return nil
}
