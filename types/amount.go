// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var coinDecimal = decimal.New(Coin, 0)

// FormatAmount 最小单位转成以 Coin 为单位的字符串, 如 150000000 -> "1.50000000"
func FormatAmount(amount int64) string {
	return decimal.New(amount, 0).Div(coinDecimal).StringFixed(8)
}

// ParseAmount 以 Coin 为单位的字符串转成最小单位, 最多 8 位小数
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(ErrAmount, "parse %q: %v", s, err)
	}
	v := d.Mul(coinDecimal)
	if !v.Equal(v.Truncate(0)) {
		return 0, errors.Wrapf(ErrAmount, "%s has more than 8 decimals", s)
	}
	if v.Sign() <= 0 || v.GreaterThan(decimal.New(MaxCoin, 0)) {
		return 0, errors.Wrapf(ErrAmount, "%s out of range", s)
	}
	return v.IntPart(), nil
}

// CheckAmount 金额范围检查
func CheckAmount(amount int64) bool {
	return amount > 0 && amount < MaxCoin
}
