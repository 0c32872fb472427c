// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin           int64 = 1e8
	MaxCoin        int64 = 1e17
	MaxTxSize            = 100000 //100K
	MaxTxsPerBlock       = 100000
)

// 交易执行结果
const (
	ExecErr  = 1
	ExecPack = 2
	ExecOk   = 3
)

// log type
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2
	//TyLogTransfer coins
	TyLogTransfer = 3
	TyLogGenesis  = 4
	TyLogDeposit  = 5
	// TyLogExecTransfer 执行器地址之间的转账
	TyLogExecTransfer = 6
)

// ExecerNone 空执行器
var ExecerNone = []byte("none")

// CoinsX 账户所在的执行器
const CoinsX = "coins"

// Store driver
const (
	DefaultStoreDriver = "goleveldb"
	DefaultDbCache     = 128
)
