// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 执行区块中的交易
//
// 区块内的交易串行执行. 每个交易在状态缓存上开启一个交易级缓存,
// 执行成功才提交, 失败时回滚, 交易的所有写操作要么全部生效, 要么全部丢弃.
package executor

import (
	"bytes"
	"sync"
	"time"

	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/executor/drivers"
	"github.com/33cn/coinflip/executor/drivers/coins"
	"github.com/33cn/coinflip/metrics"
	"github.com/33cn/coinflip/pluginmgr"
	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

// Executor 执行器
type Executor struct {
	mu  sync.Mutex
	db  dbm.DB
	cfg *types.Config
}

// New 初始化 coins 和所有插件执行器
func New(cfg *types.Config, sub *types.ConfigSubModule, db dbm.DB) (*Executor, error) {
	var subExec map[string][]byte
	if sub != nil {
		subExec = sub.Exec
	}
	coins.Init(types.CoinsX, cfg, subExec[types.CoinsX])
	if err := pluginmgr.InitExec(cfg, subExec); err != nil {
		return nil, err
	}
	elog.Info("executor init", "drivers", drivers.Names())
	return &Executor{db: db, cfg: cfg}, nil
}

// ExecBlock 执行区块, 设置 block.StateHash, 状态修改写入 batch, 由调用方和区块数据一起提交.
// prevStateHash 是父区块的状态 hash, 创世区块为 nil
func (exec *Executor) ExecBlock(block *types.Block, prevStateHash []byte, batch dbm.Batch) (*types.BlockDetail, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()

	if len(block.Txs) > types.MaxTxsPerBlock {
		return nil, types.ErrMaxTxsPerBlock
	}
	begin := time.Now()
	e := newExecutor(block, dbm.NewStateDB(exec.db))
	detail := &types.BlockDetail{Block: block}
	for i, tx := range block.Txs {
		receipt, err := e.execTx(tx, i)
		if err != nil && block.Height == 0 {
			// 创世区块不允许失败
			return nil, errors.Wrapf(err, "genesis tx %d", i)
		}
		detail.Receipts = append(detail.Receipts, receipt)
	}
	block.StateHash = e.stateDB.Hash(prevStateHash)
	e.stateDB.Flush(batch)
	metrics.Timer("execs.block").UpdateSince(begin)
	elog.Debug("ExecBlock", "height", block.Height, "txs", len(block.Txs), "cost", time.Since(begin))
	return detail, nil
}

// ExecLocal 区块写入之后调用, 只处理执行成功的交易
func (exec *Executor) ExecLocal(detail *types.BlockDetail) {
	exec.mu.Lock()
	defer exec.mu.Unlock()

	block := detail.Block
	for i, tx := range block.Txs {
		if i >= len(detail.Receipts) || detail.Receipts[i].GetTy() != types.ExecOk {
			continue
		}
		d, err := drivers.LoadDriver(string(tx.Execer), block.Height)
		if err != nil {
			continue
		}
		d.SetStateDB(exec.db)
		d.SetEnv(block.Height, block.BlockTime, block.ParentHash)
		if err := d.ExecLocal(tx, detail.Receipts[i], i); err != nil {
			elog.Error("ExecLocal", "height", block.Height, "index", i, "execer", string(tx.Execer), "err", err)
		}
	}
}

// Query 在最新状态上查询
func (exec *Executor) Query(driver string, funcName string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()

	d, err := drivers.LoadDriver(driver, -1)
	if err != nil {
		return nil, err
	}
	d.SetStateDB(exec.db)
	return d.Query(funcName, types.Encode(param))
}

// 执行器 -> db 环境
type executor struct {
	stateDB    *dbm.StateDB
	height     int64
	blocktime  int64
	parenthash []byte
}

func newExecutor(block *types.Block, stateDB *dbm.StateDB) *executor {
	return &executor{
		stateDB:    stateDB,
		height:     block.Height,
		blocktime:  block.BlockTime,
		parenthash: block.ParentHash,
	}
}

func (e *executor) checkTx(tx *types.Transaction, index int) error {
	// 创世区块的交易不需要签名
	if e.height == 0 {
		return nil
	}
	if err := tx.Check(); err != nil {
		return err
	}
	if tx.IsExpire(e.height) {
		return types.ErrTxExpire
	}
	return nil
}

func (e *executor) loadDriver(tx *types.Transaction) (drivers.Driver, error) {
	d, err := drivers.LoadDriver(string(tx.Execer), e.height)
	if err != nil {
		return nil, err
	}
	d.SetStateDB(e.stateDB)
	d.SetEnv(e.height, e.blocktime, e.parenthash)
	return d, nil
}

// execTx 返回的回执总是非空, 失败的交易 Ty 为 ExecErr
func (e *executor) execTx(tx *types.Transaction, index int) (*types.ReceiptData, error) {
	e.stateDB.Begin()
	receipt, err := e.execTxOne(tx, index)
	if err != nil {
		e.stateDB.Rollback()
		elog.Debug("exec tx", "index", index, "execer", string(tx.Execer), "err", err)
		metrics.Counter("execs.tx.err").Inc(1)
		return &types.ReceiptData{Ty: types.ExecErr, Logs: []*types.ReceiptLog{types.ErrLog(err)}}, err
	}
	e.stateDB.Commit()
	metrics.Counter("execs.tx.ok").Inc(1)
	return &types.ReceiptData{Ty: types.ExecOk, Logs: receipt.Logs}, nil
}

func (e *executor) execTxOne(tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := e.checkTx(tx, index); err != nil {
		return nil, err
	}
	d, err := e.loadDriver(tx)
	if err != nil {
		return nil, err
	}
	if err := d.CheckTx(tx, index); err != nil {
		return nil, err
	}
	receipt, err := d.Exec(tx, index)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, types.ErrActionNotSupport
	}
	if err := e.checkKeyAllow(tx, receipt.KV); err != nil {
		return nil, err
	}
	if err := e.checkKV(e.stateDB.TxKeys(), receipt.KV); err != nil {
		return nil, err
	}
	return receipt, nil
}

var commonPrefix = []byte("mavl-")

// 执行器只能修改自己前缀下的 key, 以及 coins 账户
func (e *executor) checkKeyAllow(tx *types.Transaction, kvs []*types.KeyValue) error {
	own := append(append([]byte{}, commonPrefix...), tx.Execer...)
	own = append(own, '-')
	coinsPrefix := []byte("mavl-" + types.CoinsX + "-")
	for _, kv := range kvs {
		k := kv.GetKey()
		if bytes.HasPrefix(k, own) || bytes.HasPrefix(k, coinsPrefix) {
			continue
		}
		elog.Error("err receipt key", "key", string(k), "tx.exec", string(tx.GetExecer()))
		return types.ErrNotAllowKey
	}
	return nil
}

// 写入状态缓存的 key 都必须出现在回执中
func (e *executor) checkKV(memset []string, kvs []*types.KeyValue) error {
	keys := make(map[string]bool)
	for _, kv := range kvs {
		keys[string(kv.GetKey())] = true
	}
	for _, key := range memset {
		if _, ok := keys[key]; !ok {
			elog.Error("err memset key", "key", key)
			return types.ErrNotAllowMemSetKey
		}
	}
	return nil
}
