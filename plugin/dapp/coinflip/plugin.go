// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coinflip 抛硬币下注插件
package coinflip

import (
	"github.com/33cn/coinflip/plugin/dapp/coinflip/commands"
	"github.com/33cn/coinflip/plugin/dapp/coinflip/executor"
	cty "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     cty.CoinflipX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.CoinflipCmd,
	})
}
