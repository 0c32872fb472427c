// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"sync"

	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

var (
	blockLastHeight = []byte("blockLastHeight")
	storeLog        = chainlog.New("submodule", "store")
)

// 存储 block height 对应的 blockdetail
func calcHeightToBlockKey(height int64) []byte {
	return []byte(fmt.Sprintf("Block:%020d", height))
}

// 存储 tx hash 对应的 txresult
func calcTxKey(hash []byte) []byte {
	return []byte(fmt.Sprintf("TX:%x", hash))
}

// BlockStore 区块存储
type BlockStore struct {
	mu        sync.RWMutex
	db        dbm.DB
	height    int64
	lastBlock *types.Block
}

// NewBlockStore 从数据库恢复最新高度
func NewBlockStore(db dbm.DB) (*BlockStore, error) {
	bs := &BlockStore{db: db, height: -1}
	height, err := LoadBlockStoreHeight(db)
	if err != nil {
		return nil, err
	}
	if height == -1 {
		storeLog.Info("load block height error, may be init database", "height", height)
		return bs, nil
	}
	detail, err := bs.LoadBlockByHeight(height)
	if err != nil {
		storeLog.Error("init::LoadBlockByHeight::database may be crash", "height", height, "err", err)
		return nil, err
	}
	bs.height = height
	bs.lastBlock = detail.Block
	return bs, nil
}

// LoadBlockStoreHeight 数据库中保存的最新高度, 没有区块时返回 -1
func LoadBlockStoreHeight(db dbm.DB) (int64, error) {
	value, err := db.Get(blockLastHeight)
	if err == dbm.ErrNotFoundInDb {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	var height types.Int64
	if err := types.Decode(value, &height); err != nil {
		return -1, errors.Wrap(types.ErrDecode, err.Error())
	}
	return height.Data, nil
}

// Height 当前高度
func (bs *BlockStore) Height() int64 {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return bs.height
}

// LastHeader 最新的区块头, 没有区块时返回 nil
func (bs *BlockStore) LastHeader() *types.Header {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	if bs.lastBlock == nil {
		return nil
	}
	return bs.lastBlock.GetHeader()
}

// SaveBlock 把区块和交易索引写入 batch, batch 写入成功后调用 UpdateLastBlock
func (bs *BlockStore) SaveBlock(batch dbm.Batch, detail *types.BlockDetail) {
	block := detail.Block
	batch.Set(calcHeightToBlockKey(block.Height), types.Encode(detail))
	for i, tx := range block.Txs {
		result := &types.TxResult{
			Height:    block.Height,
			Index:     int32(i),
			Tx:        tx,
			Receipt:   detail.Receipts[i],
			BlockTime: block.BlockTime,
		}
		batch.Set(calcTxKey(tx.Hash()), types.Encode(result))
	}
	batch.Set(blockLastHeight, types.Encode(&types.Int64{Data: block.Height}))
}

// UpdateLastBlock 更新缓存的最新区块
func (bs *BlockStore) UpdateLastBlock(block *types.Block) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastBlock = block
	bs.height = block.Height
	storeLog.Debug("UpdateLastBlock", "height", block.Height)
}

// LoadBlockByHeight 按高度读取区块
func (bs *BlockStore) LoadBlockByHeight(height int64) (*types.BlockDetail, error) {
	value, err := bs.db.Get(calcHeightToBlockKey(height))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrBlockNotFound
	}
	if err != nil {
		return nil, err
	}
	var detail types.BlockDetail
	if err := types.Decode(value, &detail); err != nil {
		return nil, errors.Wrap(types.ErrDecode, err.Error())
	}
	return &detail, nil
}

// GetTx 按交易hash查询
func (bs *BlockStore) GetTx(hash []byte) (*types.TxResult, error) {
	value, err := bs.db.Get(calcTxKey(hash))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrTxNotFound
	}
	if err != nil {
		return nil, err
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, errors.Wrap(types.ErrDecode, err.Error())
	}
	return &result, nil
}

// HasTx 交易是否已经上链
func (bs *BlockStore) HasTx(hash []byte) bool {
	_, err := bs.db.Get(calcTxKey(hash))
	return err == nil
}
