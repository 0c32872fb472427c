// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"os"
	"strings"
	"sync"

	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/vrf"
	"github.com/33cn/coinflip/common/vrf/p256"
	cty "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/pkg/errors"
)

// BetContext 判定结果时可以使用的信息. 这些值在下注之前都是公开或者可以预先算出的,
// 不能单独用来决定结果
type BetContext struct {
	Player     string
	Amount     int64
	Side       int32
	Height     int64
	BlockTime  int64
	ParentHash []byte
	TxHash     []byte
	Index      int
}

// Resolver 根据下注信息给出硬币落地的一面, proof 保存在玩家记录中用于事后验证
type Resolver interface {
	Name() string
	Resolve(ctx *BetContext) (landed int32, proof []byte, err error)
}

// ResolverFunc 函数形式的 Resolver
type ResolverFunc func(ctx *BetContext) (int32, []byte, error)

// Name 名字
func (f ResolverFunc) Name() string { return "func" }

// Resolve 调用函数
func (f ResolverFunc) Resolve(ctx *BetContext) (int32, []byte, error) { return f(ctx) }

// 判定的输入: parenthash || txhash
func seedMessage(parenthash, txhash []byte) []byte {
	return common.Concat(parenthash, txhash)
}

func sideOf(b byte) int32 {
	if b&1 == 0 {
		return cty.SideHead
	}
	return cty.SideTail
}

// VRFResolver 用节点的 vrf 私钥对 (parenthash, txhash) 求值, 取输出的最低位.
// 没有私钥就算不出结果, 玩家只能在交易上链之后验证
type VRFResolver struct {
	priv   vrf.PrivateKey
	pubkey []byte
}

// NewVRFResolver 用 32 字节的种子构造
func NewVRFResolver(seed []byte) *VRFResolver {
	priv, _, pubkey := p256.GenVrfKeyFromBytes(seed)
	return &VRFResolver{priv: priv, pubkey: pubkey}
}

// Name 名字
func (r *VRFResolver) Name() string { return cty.ResolverVRF }

// PubKey 非压缩格式的 p256 公钥
func (r *VRFResolver) PubKey() []byte { return r.pubkey }

// Resolve 计算 vrf
func (r *VRFResolver) Resolve(ctx *BetContext) (int32, []byte, error) {
	index, proof := r.priv.Evaluate(seedMessage(ctx.ParentHash, ctx.TxHash))
	if proof == nil {
		return 0, nil, cty.ErrInvalidProof
	}
	return sideOf(index[0]), proof, nil
}

// FixedResolver 按顺序返回 Sides 中的值, 用完之后循环
type FixedResolver struct {
	mu    sync.Mutex
	Sides []int32
	next  int
}

// NewFixedResolver 固定结果, 测试使用
func NewFixedResolver(sides ...int32) *FixedResolver {
	return &FixedResolver{Sides: sides}
}

// Name 名字
func (r *FixedResolver) Name() string { return "fixed" }

// Resolve 返回下一个值
func (r *FixedResolver) Resolve(ctx *BetContext) (int32, []byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Sides) == 0 {
		return 0, nil, cty.ErrInvalidSide
	}
	side := r.Sides[r.next%len(r.Sides)]
	r.next++
	return side, nil, nil
}

// VerifyOutcome 用 vrf 公钥和玩家记录里的 proof 重新计算落地的一面
func VerifyOutcome(vrfPubKey []byte, c *cty.Claimant) (int32, error) {
	if len(c.GetProof()) == 0 {
		return 0, errors.Wrap(cty.ErrInvalidProof, "no proof")
	}
	pub, err := p256.ParseVrfPubKey(vrfPubKey)
	if err != nil {
		return 0, errors.Wrap(cty.ErrInvalidProof, err.Error())
	}
	index, err := pub.ProofToHash(seedMessage(c.GetParentHash(), c.GetTxHash()), c.GetProof())
	if err != nil {
		return 0, errors.Wrap(cty.ErrInvalidProof, err.Error())
	}
	landed := sideOf(index[0])
	if landed != c.GetLanded() {
		return landed, cty.ErrInvalidProof
	}
	return landed, nil
}

type subConfig struct {
	Resolver   string `json:"resolver"`
	VrfKeyFile string `json:"vrfKeyFile"`
}

func newResolver(cfg *subConfig) (Resolver, error) {
	switch strings.ToLower(cfg.Resolver) {
	case "", cty.ResolverVRF:
		seed, err := loadVrfSeed(cfg.VrfKeyFile)
		if err != nil {
			return nil, err
		}
		return NewVRFResolver(seed), nil
	}
	return nil, errors.Wrapf(cty.ErrUnknownResolver, "resolver %q", cfg.Resolver)
}

// 文件内容为 hex 编码的私钥种子, 没有配置时每次启动生成新的
func loadVrfSeed(file string) ([]byte, error) {
	if file == "" {
		clog.Warn("vrfKeyFile not set, generate a temporary vrf key")
		priv, _ := p256.GenerateKey()
		if priv == nil {
			return nil, errors.New("generate vrf key failed")
		}
		return priv.(*p256.PrivateKey).D.Bytes(), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "read vrf key")
	}
	seed, err := common.FromHex(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, errors.Wrap(err, "decode vrf key")
	}
	if len(seed) != 32 {
		return nil, errors.Errorf("vrf key length %d, expect 32", len(seed))
	}
	return seed, nil
}
