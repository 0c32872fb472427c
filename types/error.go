// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// error types
var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrDecode                  = errors.New("ErrDecode")
	ErrEmpty                   = errors.New("ErrEmpty")
	ErrAmount                  = errors.New("ErrAmount")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrSign                    = errors.New("ErrSign")
	ErrNoSign                  = errors.New("ErrNoSign")
	ErrInvalidAddress          = errors.New("ErrInvalidAddress")
	ErrFromAddr                = errors.New("ErrFromAddr")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrExecNameNotAllow        = errors.New("ErrExecNameNotAllow")
	ErrExecNotFound            = errors.New("ErrExecNotFound")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrTxExpire                = errors.New("ErrTxExpire")
	ErrTxDup                   = errors.New("ErrTxDup")
	ErrTxSize                  = errors.New("ErrTxSize")
	ErrEmptyTx                 = errors.New("ErrEmptyTx")
	ErrMaxTxsPerBlock          = errors.New("ErrMaxTxsPerBlock")
	ErrBlockNotFound           = errors.New("ErrBlockNotFound")
	ErrTxNotFound              = errors.New("ErrTxNotFound")
	ErrNotAllowKey             = errors.New("ErrNotAllowKey")
	ErrNotAllowMemSetKey       = errors.New("ErrNotAllowMemSetKey")
	ErrChainClosed             = errors.New("ErrChainClosed")
)
