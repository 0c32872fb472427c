// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockchain 单节点的区块链: 打包交易, 执行, 持久化区块与状态
package blockchain

import (
	"context"
	"sync"
	"time"

	"github.com/33cn/coinflip/common"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/executor"
	"github.com/33cn/coinflip/executor/drivers/coins"
	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var chainlog = log.New("module", "blockchain")

// nowFunc 区块时间来源, 测试中替换
var nowFunc = time.Now

// Chain 区块链
//
// 每次 SendTx 把交易打包成一个新区块并立即执行, 返回时交易已经确认.
// 区块, 交易索引和状态修改在同一个 batch 中写入.
type Chain struct {
	mu         sync.Mutex
	cfg        *types.Config
	db         dbm.DB
	ownDB      bool
	exec       *executor.Executor
	blockStore *BlockStore
	closed     bool
}

// New 按配置打开数据库
func New(cfg *types.Config, sub *types.ConfigSubModule) (*Chain, error) {
	db, err := dbm.NewDB("coinflip", cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	chain, err := NewWithDB(cfg, sub, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	chain.ownDB = true
	return chain, nil
}

// NewWithDB 使用已经打开的数据库
func NewWithDB(cfg *types.Config, sub *types.ConfigSubModule, db dbm.DB) (*Chain, error) {
	exec, err := executor.New(cfg, sub, db)
	if err != nil {
		return nil, err
	}
	bs, err := NewBlockStore(db)
	if err != nil {
		return nil, err
	}
	chain := &Chain{
		cfg:        cfg,
		db:         db,
		exec:       exec,
		blockStore: bs,
	}
	if bs.Height() == -1 {
		if err := chain.createGenesisBlock(); err != nil {
			return nil, err
		}
	}
	chainlog.Info("chain loaded", "title", cfg.Title, "height", bs.Height())
	return chain, nil
}

func (chain *Chain) createGenesisBlock() error {
	var txs []*types.Transaction
	if g := chain.cfg.Genesis; g != nil && g.Addr != "" && g.Amount > 0 {
		txs = append(txs, coins.CreateGenesis(g.Addr, g.Amount))
	}
	block := &types.Block{
		Height:     0,
		BlockTime:  nowFunc().Unix(),
		ParentHash: common.Sha256(nil),
		TxHash:     types.CalcTxHash(txs),
		Txs:        txs,
	}
	_, err := chain.execAndSave(block, nil)
	if err != nil {
		chainlog.Crit("createGenesisBlock", "err", err)
		return err
	}
	return nil
}

// SendTx 打包一个只包含该交易的区块并执行, 返回交易的执行结果
// 交易格式或签名错误时不打包, 直接返回错误; 执行失败的交易会上链, 回执的 Ty 为 ExecErr
func (chain *Chain) SendTx(ctx context.Context, tx *types.Transaction) (*types.TxResult, error) {
	results, err := chain.SendTxs(ctx, []*types.Transaction{tx})
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// SendTxs 多个交易打包到同一个区块, 按顺序执行
func (chain *Chain) SendTxs(ctx context.Context, txs []*types.Transaction) ([]*types.TxResult, error) {
	if len(txs) == 0 {
		return nil, types.ErrEmptyTx
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, tx := range txs {
		if err := tx.Check(); err != nil {
			return nil, err
		}
	}

	chain.mu.Lock()
	defer chain.mu.Unlock()
	if chain.closed {
		return nil, types.ErrChainClosed
	}
	// 拿到锁之后再检查一次, 等待期间可能已经超时
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, tx := range txs {
		hash := tx.Hash()
		if seen[string(hash)] || chain.blockStore.HasTx(hash) {
			return nil, types.ErrTxDup
		}
		seen[string(hash)] = true
	}
	last := chain.blockStore.LastHeader()
	blocktime := nowFunc().Unix()
	if blocktime <= last.BlockTime {
		blocktime = last.BlockTime + 1
	}
	block := &types.Block{
		Height:     last.Height + 1,
		BlockTime:  blocktime,
		ParentHash: last.Hash,
		TxHash:     types.CalcTxHash(txs),
		Txs:        txs,
	}
	detail, err := chain.execAndSave(block, last.StateHash)
	if err != nil {
		return nil, err
	}
	results := make([]*types.TxResult, len(txs))
	for i, tx := range txs {
		results[i] = &types.TxResult{
			Height:    block.Height,
			Index:     int32(i),
			Tx:        tx,
			Receipt:   detail.Receipts[i],
			BlockTime: block.BlockTime,
		}
	}
	return results, nil
}

func (chain *Chain) execAndSave(block *types.Block, prevStateHash []byte) (*types.BlockDetail, error) {
	batch := chain.db.NewBatch(true)
	detail, err := chain.exec.ExecBlock(block, prevStateHash, batch)
	if err != nil {
		return nil, err
	}
	chain.blockStore.SaveBlock(batch, detail)
	if err := batch.Write(); err != nil {
		chainlog.Error("execAndSave", "height", block.Height, "err", err)
		return nil, err
	}
	chain.blockStore.UpdateLastBlock(block)
	chain.exec.ExecLocal(detail)
	chainlog.Debug("new block", "height", block.Height, "txs", len(block.Txs), "hash", common.ToHex(block.Hash()),
		"state", common.ToHex(block.StateHash))
	return detail, nil
}

// Query 查询执行器
func (chain *Chain) Query(driver string, funcName string, param types.Message) (types.Message, error) {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	if chain.closed {
		return nil, types.ErrChainClosed
	}
	return chain.exec.Query(driver, funcName, param)
}

// GetBalance coins 余额
func (chain *Chain) GetBalance(addr string) (*types.Account, error) {
	msg, err := chain.Query(types.CoinsX, "GetAccount", &types.ReqAddr{Addr: addr})
	if err != nil {
		return nil, err
	}
	return msg.(*types.Account), nil
}

// GetBlock 按高度读取区块
func (chain *Chain) GetBlock(height int64) (*types.BlockDetail, error) {
	return chain.blockStore.LoadBlockByHeight(height)
}

// GetTx 按交易hash读取
func (chain *Chain) GetTx(hash []byte) (*types.TxResult, error) {
	return chain.blockStore.GetTx(hash)
}

// LastHeader 最新的区块头
func (chain *Chain) LastHeader() *types.Header {
	return chain.blockStore.LastHeader()
}

// Health 数据库是否可用
func (chain *Chain) Health(ctx context.Context) error {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	if chain.closed {
		return types.ErrChainClosed
	}
	_, err := LoadBlockStoreHeight(chain.db)
	return err
}

// Close 关闭, 只关闭自己打开的数据库
func (chain *Chain) Close() {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	if chain.closed {
		return
	}
	chain.closed = true
	if chain.ownDB {
		chain.db.Close()
	}
	chainlog.Info("chain closed", "height", chain.blockStore.Height())
}
