// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"io/ioutil"

	tml "github.com/BurntSushi/toml"
)

// Config 节点配置
type Config struct {
	Title   string   `toml:"title"`
	Log     *Log     `toml:"log"`
	Store   *Store   `toml:"store"`
	Exec    *Exec    `toml:"exec"`
	Genesis *Genesis `toml:"genesis"`
	Metrics *Metrics `toml:"metrics"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store 状态数据库配置
type Store struct {
	// 数据库类型: goleveldb, gobadgerdb, memdb
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Exec 执行器配置
type Exec struct {
	// 是否允许 coins 的 Faucet 动作, 只用于测试链
	EnableFaucet bool `toml:"enableFaucet"`
	// 单次 Faucet 的上限
	MaxFaucet int64 `toml:"maxFaucet"`
}

// Genesis 创世配置
type Genesis struct {
	Addr   string `toml:"addr"`
	Amount int64  `toml:"amount"`
}

// Metrics 指标配置
type Metrics struct {
	EnableMetrics bool `toml:"enableMetrics"`
	// 输出方式: log, prometheus, influxdb
	DataEmitMode string `toml:"dataEmitMode"`
	// log 方式的输出间隔, 单位秒
	Duration int64 `toml:"duration"`
	// prometheus 方式的监听地址
	ListenAddr string `toml:"listenAddr"`
	// influxdb 方式的连接参数
	InfluxURL      string `toml:"influxURL"`
	InfluxDatabase string `toml:"influxDatabase"`
	InfluxUsername string `toml:"influxUsername"`
	InfluxPassword string `toml:"influxPassword"`
}

// ConfigSubModule 子模块的配置, 以 json 形式保存, 由各个模块自己解析
type ConfigSubModule struct {
	Store map[string][]byte
	Exec  map[string][]byte
}

// subModule 子模块结构体
type subModule struct {
	Store map[string]interface{}
	Exec  map[string]interface{}
}

// DefaultConfig 默认配置, 本地开发链
var DefaultConfig = `
title="local"

[log]
loglevel = "info"
logConsoleLevel = "info"
logFile = "logs/coinflip.log"
maxFileSize = 300
maxBackups = 100
maxAge = 28
localTime = true
compress = true
callerFile = false
callerFunction = false

[store]
driver = "goleveldb"
dbPath = "datadir"
dbCache = 128

[exec]
enableFaucet = true
maxFaucet = 100000000000

[genesis]
addr = ""
amount = 0

[metrics]
enableMetrics = false
dataEmitMode = "log"
duration = 60
listenAddr = "localhost:9101"
influxURL = "http://localhost:8086"
influxDatabase = "coinflip"

[exec.sub.coinflip]
resolver = "vrf"
vrfKeyFile = ""
`

func initCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	fillDefault(&cfg)
	return &cfg, nil
}

func fillDefault(cfg *Config) {
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DefaultStoreDriver
	}
	if cfg.Store.DbCache == 0 {
		cfg.Store.DbCache = DefaultDbCache
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Genesis == nil {
		cfg.Genesis = &Genesis{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
}

// InitCfg 初始化配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return InitCfgString(string(data))
}

// InitCfgString 初始化配置
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	cfg, err := initCfgString(cfgstring)
	if err != nil {
		tlog.Error("InitCfgString", "err", err)
		return nil, nil, err
	}
	sub, err := initSubModuleString(cfgstring)
	if err != nil {
		return nil, nil, err
	}
	return cfg, sub, nil
}

// MustInitCfgString 配置错误直接panic, 用于测试和默认配置
func MustInitCfgString(cfgstring string) (*Config, *ConfigSubModule) {
	cfg, sub, err := InitCfgString(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

func initSubModuleString(cfgstring string) (*ConfigSubModule, error) {
	var cfg subModule
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	return &ConfigSubModule{
		Store: parseItem(cfg.Store),
		Exec:  parseItem(cfg.Exec),
	}, nil
}

func parseItem(data map[string]interface{}) map[string][]byte {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig
	}
	subcfg, ok := data["sub"].(map[string]interface{})
	if !ok {
		return subconfig
	}
	for k := range subcfg {
		subconfig[k], _ = json.Marshal(subcfg[k])
	}
	return subconfig
}
