// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// Treasury 奖池状态, 余额就是奖池地址上的 coins 余额
type Treasury struct {
	Authority   string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
	MinimumBet  int64  `protobuf:"varint,2,opt,name=minimumBet,proto3" json:"minimumBet,omitempty"`
	Bump        int32  `protobuf:"varint,3,opt,name=bump,proto3" json:"bump,omitempty"`
	Liability   int64  `protobuf:"varint,4,opt,name=liability,proto3" json:"liability,omitempty"`
	TotalBets   int64  `protobuf:"varint,5,opt,name=totalBets,proto3" json:"totalBets,omitempty"`
	TotalPayout int64  `protobuf:"varint,6,opt,name=totalPayout,proto3" json:"totalPayout,omitempty"`
}

func (m *Treasury) Reset()         { *m = Treasury{} }
func (m *Treasury) String() string { return proto.CompactTextString(m) }
func (*Treasury) ProtoMessage()    {}

func (m *Treasury) GetAuthority() string {
	if m != nil {
		return m.Authority
	}
	return ""
}

func (m *Treasury) GetMinimumBet() int64 {
	if m != nil {
		return m.MinimumBet
	}
	return 0
}

func (m *Treasury) GetBump() int32 {
	if m != nil {
		return m.Bump
	}
	return 0
}

func (m *Treasury) GetLiability() int64 {
	if m != nil {
		return m.Liability
	}
	return 0
}

func (m *Treasury) GetTotalBets() int64 {
	if m != nil {
		return m.TotalBets
	}
	return 0
}

func (m *Treasury) GetTotalPayout() int64 {
	if m != nil {
		return m.TotalPayout
	}
	return 0
}

// Claimant 玩家最近一次下注的记录, 每个玩家一条, 再次下注时覆盖
type Claimant struct {
	Owner      string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Amount     int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Side       int32  `protobuf:"varint,3,opt,name=side,proto3" json:"side,omitempty"`
	Outcome    int32  `protobuf:"varint,4,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Claimed    bool   `protobuf:"varint,5,opt,name=claimed,proto3" json:"claimed,omitempty"`
	Bump       int32  `protobuf:"varint,6,opt,name=bump,proto3" json:"bump,omitempty"`
	Height     int64  `protobuf:"varint,7,opt,name=height,proto3" json:"height,omitempty"`
	ParentHash []byte `protobuf:"bytes,8,opt,name=parentHash,proto3" json:"parentHash,omitempty"`
	TxHash     []byte `protobuf:"bytes,9,opt,name=txHash,proto3" json:"txHash,omitempty"`
	Proof      []byte `protobuf:"bytes,10,opt,name=proof,proto3" json:"proof,omitempty"`
	Landed     int32  `protobuf:"varint,11,opt,name=landed,proto3" json:"landed,omitempty"`
}

func (m *Claimant) Reset()         { *m = Claimant{} }
func (m *Claimant) String() string { return proto.CompactTextString(m) }
func (*Claimant) ProtoMessage()    {}

func (m *Claimant) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *Claimant) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *Claimant) GetSide() int32 {
	if m != nil {
		return m.Side
	}
	return 0
}

func (m *Claimant) GetOutcome() int32 {
	if m != nil {
		return m.Outcome
	}
	return 0
}

func (m *Claimant) GetClaimed() bool {
	if m != nil {
		return m.Claimed
	}
	return false
}

func (m *Claimant) GetBump() int32 {
	if m != nil {
		return m.Bump
	}
	return 0
}

func (m *Claimant) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *Claimant) GetParentHash() []byte {
	if m != nil {
		return m.ParentHash
	}
	return nil
}

func (m *Claimant) GetTxHash() []byte {
	if m != nil {
		return m.TxHash
	}
	return nil
}

func (m *Claimant) GetProof() []byte {
	if m != nil {
		return m.Proof
	}
	return nil
}

func (m *Claimant) GetLanded() int32 {
	if m != nil {
		return m.Landed
	}
	return 0
}

type CoinflipInit struct {
	Amount     int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	MinimumBet int64 `protobuf:"varint,2,opt,name=minimumBet,proto3" json:"minimumBet,omitempty"`
}

func (m *CoinflipInit) Reset()         { *m = CoinflipInit{} }
func (m *CoinflipInit) String() string { return proto.CompactTextString(m) }
func (*CoinflipInit) ProtoMessage()    {}

func (m *CoinflipInit) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *CoinflipInit) GetMinimumBet() int64 {
	if m != nil {
		return m.MinimumBet
	}
	return 0
}

type CoinflipFund struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *CoinflipFund) Reset()         { *m = CoinflipFund{} }
func (m *CoinflipFund) String() string { return proto.CompactTextString(m) }
func (*CoinflipFund) ProtoMessage()    {}

func (m *CoinflipFund) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type CoinflipBet struct {
	Amount   int64  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Side     int32  `protobuf:"varint,2,opt,name=side,proto3" json:"side,omitempty"`
	Claimant string `protobuf:"bytes,3,opt,name=claimant,proto3" json:"claimant,omitempty"`
}

func (m *CoinflipBet) Reset()         { *m = CoinflipBet{} }
func (m *CoinflipBet) String() string { return proto.CompactTextString(m) }
func (*CoinflipBet) ProtoMessage()    {}

func (m *CoinflipBet) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *CoinflipBet) GetSide() int32 {
	if m != nil {
		return m.Side
	}
	return 0
}

func (m *CoinflipBet) GetClaimant() string {
	if m != nil {
		return m.Claimant
	}
	return ""
}

type CoinflipClaim struct {
	Claimant string `protobuf:"bytes,1,opt,name=claimant,proto3" json:"claimant,omitempty"`
}

func (m *CoinflipClaim) Reset()         { *m = CoinflipClaim{} }
func (m *CoinflipClaim) String() string { return proto.CompactTextString(m) }
func (*CoinflipClaim) ProtoMessage()    {}

func (m *CoinflipClaim) GetClaimant() string {
	if m != nil {
		return m.Claimant
	}
	return ""
}

// CoinflipAction coinflip 执行器的动作, Ty 决定哪个字段有效
type CoinflipAction struct {
	Init  *CoinflipInit  `protobuf:"bytes,1,opt,name=init,proto3" json:"init,omitempty"`
	Bet   *CoinflipBet   `protobuf:"bytes,2,opt,name=bet,proto3" json:"bet,omitempty"`
	Claim *CoinflipClaim `protobuf:"bytes,3,opt,name=claim,proto3" json:"claim,omitempty"`
	Fund  *CoinflipFund  `protobuf:"bytes,4,opt,name=fund,proto3" json:"fund,omitempty"`
	Ty    int32          `protobuf:"varint,5,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *CoinflipAction) Reset()         { *m = CoinflipAction{} }
func (m *CoinflipAction) String() string { return proto.CompactTextString(m) }
func (*CoinflipAction) ProtoMessage()    {}

func (m *CoinflipAction) GetInit() *CoinflipInit {
	if m != nil {
		return m.Init
	}
	return nil
}

func (m *CoinflipAction) GetBet() *CoinflipBet {
	if m != nil {
		return m.Bet
	}
	return nil
}

func (m *CoinflipAction) GetClaim() *CoinflipClaim {
	if m != nil {
		return m.Claim
	}
	return nil
}

func (m *CoinflipAction) GetFund() *CoinflipFund {
	if m != nil {
		return m.Fund
	}
	return nil
}

func (m *CoinflipAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// ReceiptCoinflip 下注和领奖的日志
type ReceiptCoinflip struct {
	Status    string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Message   string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Addr      string `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
	Amount    int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Side      int32  `protobuf:"varint,5,opt,name=side,proto3" json:"side,omitempty"`
	Outcome   int32  `protobuf:"varint,6,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Claimant  string `protobuf:"bytes,7,opt,name=claimant,proto3" json:"claimant,omitempty"`
	Payout    int64  `protobuf:"varint,8,opt,name=payout,proto3" json:"payout,omitempty"`
	Forfeit   int64  `protobuf:"varint,9,opt,name=forfeit,proto3" json:"forfeit,omitempty"`
	Liability int64  `protobuf:"varint,10,opt,name=liability,proto3" json:"liability,omitempty"`
}

func (m *ReceiptCoinflip) Reset()         { *m = ReceiptCoinflip{} }
func (m *ReceiptCoinflip) String() string { return proto.CompactTextString(m) }
func (*ReceiptCoinflip) ProtoMessage()    {}

func (m *ReceiptCoinflip) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *ReceiptCoinflip) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *ReceiptCoinflip) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReceiptCoinflip) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *ReceiptCoinflip) GetSide() int32 {
	if m != nil {
		return m.Side
	}
	return 0
}

func (m *ReceiptCoinflip) GetOutcome() int32 {
	if m != nil {
		return m.Outcome
	}
	return 0
}

func (m *ReceiptCoinflip) GetClaimant() string {
	if m != nil {
		return m.Claimant
	}
	return ""
}

func (m *ReceiptCoinflip) GetPayout() int64 {
	if m != nil {
		return m.Payout
	}
	return 0
}

func (m *ReceiptCoinflip) GetForfeit() int64 {
	if m != nil {
		return m.Forfeit
	}
	return 0
}

func (m *ReceiptCoinflip) GetLiability() int64 {
	if m != nil {
		return m.Liability
	}
	return 0
}

type ReceiptTreasury struct {
	Addr       string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Authority  string `protobuf:"bytes,2,opt,name=authority,proto3" json:"authority,omitempty"`
	Amount     int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	MinimumBet int64  `protobuf:"varint,4,opt,name=minimumBet,proto3" json:"minimumBet,omitempty"`
}

func (m *ReceiptTreasury) Reset()         { *m = ReceiptTreasury{} }
func (m *ReceiptTreasury) String() string { return proto.CompactTextString(m) }
func (*ReceiptTreasury) ProtoMessage()    {}

func (m *ReceiptTreasury) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReceiptTreasury) GetAuthority() string {
	if m != nil {
		return m.Authority
	}
	return ""
}

func (m *ReceiptTreasury) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *ReceiptTreasury) GetMinimumBet() int64 {
	if m != nil {
		return m.MinimumBet
	}
	return 0
}

type ReplyTreasury struct {
	Treasury  *Treasury `protobuf:"bytes,1,opt,name=treasury,proto3" json:"treasury,omitempty"`
	Addr      string    `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Balance   int64     `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
	VrfPubKey []byte    `protobuf:"bytes,4,opt,name=vrfPubKey,proto3" json:"vrfPubKey,omitempty"`
	Resolver  string    `protobuf:"bytes,5,opt,name=resolver,proto3" json:"resolver,omitempty"`
}

func (m *ReplyTreasury) Reset()         { *m = ReplyTreasury{} }
func (m *ReplyTreasury) String() string { return proto.CompactTextString(m) }
func (*ReplyTreasury) ProtoMessage()    {}

func (m *ReplyTreasury) GetTreasury() *Treasury {
	if m != nil {
		return m.Treasury
	}
	return nil
}

func (m *ReplyTreasury) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReplyTreasury) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

func (m *ReplyTreasury) GetVrfPubKey() []byte {
	if m != nil {
		return m.VrfPubKey
	}
	return nil
}

func (m *ReplyTreasury) GetResolver() string {
	if m != nil {
		return m.Resolver
	}
	return ""
}

type ReplyClaimant struct {
	Claimant *Claimant `protobuf:"bytes,1,opt,name=claimant,proto3" json:"claimant,omitempty"`
	Addr     string    `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReplyClaimant) Reset()         { *m = ReplyClaimant{} }
func (m *ReplyClaimant) String() string { return proto.CompactTextString(m) }
func (*ReplyClaimant) ProtoMessage()    {}

func (m *ReplyClaimant) GetClaimant() *Claimant {
	if m != nil {
		return m.Claimant
	}
	return nil
}

func (m *ReplyClaimant) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}
