// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 公共的数据结构, 编码, 配置和错误
package types

import (
	"encoding/json"

	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "types")

// Message 声明proto.Message
type Message proto.Message

// Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

// Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

// MustDecode 数据是否已经编码
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

// NewReceiptLog 构造一条日志
func NewReceiptLog(ty int32, msg proto.Message) *ReceiptLog {
	return &ReceiptLog{Ty: ty, Log: Encode(msg)}
}

// MergeReceipt 合并两个回执, 用于一个动作里有多次转账的情况
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 != nil {
		receipt1.KV = append(receipt1.KV, receipt2.KV...)
		receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	}
	return receipt1
}

// ErrLog 执行失败时写入回执的错误日志
func ErrLog(err error) *ReceiptLog {
	return &ReceiptLog{Ty: TyLogErr, Log: []byte(err.Error())}
}

// ErrMessage 失败回执里的错误信息
func (r *ReceiptData) ErrMessage() string {
	if r.GetTy() == ExecOk {
		return ""
	}
	for _, l := range r.GetLogs() {
		if l.Ty == TyLogErr {
			return string(l.Log)
		}
	}
	return ""
}

// GetAction 取 coins 动作的名字
func (action *CoinsAction) GetAction() string {
	switch action.GetTy() {
	case CoinsActionTransfer:
		return "Transfer"
	case CoinsActionGenesis:
		return "Genesis"
	case CoinsActionFaucet:
		return "Faucet"
	}
	return "unknown"
}

// coins action
const (
	CoinsActionTransfer = 1
	CoinsActionGenesis  = 2
	CoinsActionFaucet   = 3
)
