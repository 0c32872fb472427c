// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"sort"
	"sync"

	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	mu          sync.Mutex
	pluginItems = make(map[string]Plugin)
)

// Register 注册插件, 一般在插件包的 init 中调用
func Register(p Plugin) {
	mu.Lock()
	defer mu.Unlock()
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

func sortedItems() []Plugin {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]Plugin, 0, len(names))
	for _, name := range names {
		items = append(items, pluginItems[name])
	}
	return items
}

// InitExec 初始化所有插件的执行器
func InitExec(cfg *types.Config, sub map[string][]byte) error {
	for _, item := range sortedItems() {
		if err := item.InitExec(cfg, sub); err != nil {
			mgrlog.Error("InitExec", "plugin", item.GetName(), "err", err)
			return errors.Wrapf(err, "init exec %s", item.GetExecutorName())
		}
	}
	return nil
}

// HasExec 是否有这个执行器
func HasExec(name string) bool {
	for _, item := range sortedItems() {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// AddCmd 把所有插件的命令加到根命令
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range sortedItems() {
		item.AddCmd(rootCmd)
	}
}
