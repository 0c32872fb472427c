// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drivers

import (
	"sort"
	"sync"

	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// DriverCreate 创建驱动实例
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	mu                 sync.RWMutex
	execDrivers        = make(map[string]*driverWithHeight)
	registedExecDriver = make(map[string]*driverWithHeight)
)

// Register 注册执行器, height 为启用高度
func Register(name string, create DriverCreate, height int64) {
	mu.Lock()
	defer mu.Unlock()
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	d := &driverWithHeight{
		create: create,
		height: height,
	}
	registedExecDriver[name] = d
	execDrivers[ExecAddress(name)] = d
	elog.Debug("Register", "driver", name, "height", height)
}

// Unregister 测试时重新注册使用
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(registedExecDriver, name)
	delete(execDrivers, ExecAddress(name))
}

// IsRegistered 执行器是否已经注册
func IsRegistered(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registedExecDriver[name]
	return ok
}

// LoadDriver 加载驱动, height 为 -1 时忽略启用高度
func LoadDriver(name string, height int64) (driver Driver, err error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registedExecDriver[name]
	if !ok {
		return nil, types.ErrExecNotFound
	}
	if height >= c.height || height == -1 {
		return c.create(), nil
	}
	return nil, types.ErrExecNotFound
}

// IsDriverAddress 地址是否是某个执行器的地址
func IsDriverAddress(addr string, height int64) bool {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := execDrivers[addr]
	if !ok {
		return false
	}
	return height >= c.height || height == -1
}

// Names 已经注册的执行器
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecAddress 执行器地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}
