// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/common/crypto"

	// 注册 secp256k1 签名
	_ "github.com/33cn/coinflip/common/crypto/secp256k1"
)

// SECP256K1 默认的签名类型
const SECP256K1 = 1

var random = rand.New(rand.NewSource(time.Now().UnixNano()))

// CreateTx 构造一个未签名的交易, To 为执行器地址
func CreateTx(execer string, payload Message) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(payload),
		Nonce:   random.Int63(),
		To:      address.ExecAddress(execer),
	}
}

// Hash 交易的hash不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	return common.Sha256(data)
}

// Size 交易大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

// Sign 交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

// CheckSign 检查签名
func (tx *Transaction) CheckSign() bool {
	if tx.GetSignature() == nil {
		return false
	}
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	return CheckSign(data, tx.GetSignature())
}

// CheckSign 按签名类型校验
func CheckSign(data []byte, sign *Signature) bool {
	c, err := crypto.New(crypto.GetName(int(sign.Ty)))
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(sign.Pubkey)
	if err != nil {
		return false
	}
	signbytes, err := c.SignatureFromBytes(sign.Signature)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, signbytes)
}

// Check 交易基本检查
func (tx *Transaction) Check() error {
	if tx.Size() > MaxTxSize {
		return ErrTxSize
	}
	if len(tx.Execer) == 0 || len(tx.Execer) > address.MaxExecNameLength {
		return ErrExecNameNotAllow
	}
	if !tx.CheckSign() {
		return ErrSign
	}
	return nil
}

// IsExpire 交易是否过期, Expire 为 0 永不过期, 否则按高度比较
func (tx *Transaction) IsExpire(height int64) bool {
	if tx.Expire == 0 {
		return false
	}
	return tx.Expire <= height
}

// From 交易from地址
func (tx *Transaction) From() string {
	return address.PubKeyToAddress(tx.GetSignature().GetPubkey()).String()
}

// CalcTxHash 区块里所有交易的hash
func CalcTxHash(txs []*Transaction) []byte {
	var buf []byte
	for _, tx := range txs {
		buf = append(buf, tx.Hash()...)
	}
	return common.Sha256(buf)
}

// Hash 区块hash, 只包含区块头
func (block *Block) Hash() []byte {
	head := &Header{
		Version:    block.Version,
		ParentHash: block.ParentHash,
		TxHash:     block.TxHash,
		StateHash:  block.StateHash,
		Height:     block.Height,
		BlockTime:  block.BlockTime,
	}
	return common.Sha256(Encode(head))
}

// GetHeader 区块头
func (block *Block) GetHeader() *Header {
	return &Header{
		Version:    block.Version,
		ParentHash: block.ParentHash,
		TxHash:     block.TxHash,
		StateHash:  block.StateHash,
		Height:     block.Height,
		BlockTime:  block.BlockTime,
		TxCount:    int64(len(block.Txs)),
		Hash:       block.Hash(),
	}
}

// Int64ToBytes 大端编码, 用于高度作为key
func Int64ToBytes(i int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(i))
	return buf[:]
}
