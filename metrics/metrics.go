// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 指标的注册与输出. 指标统一记录在 go-metrics 的 DefaultRegistry,
// 按配置周期性写日志或写入 influxdb, 或者通过 prometheus 的 /metrics 暴露
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// Namespace prometheus 指标前缀
var Namespace = "coinflip"

// 输出方式
const (
	EmitModeLog        = "log"
	EmitModePrometheus = "prometheus"
	EmitModeInfluxDB   = "influxdb"
)

// HealthFunc /healthz 的检查函数
type HealthFunc func(ctx context.Context) error

// printfLogger go-metrics 的 Logger 接口转 log15
type printfLogger struct {
	l log.Logger
}

func (p printfLogger) Printf(format string, v ...interface{}) {
	p.l.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// StartMetrics 根据配置启动指标输出, 返回的函数用于停止
func StartMetrics(cfg *types.Metrics, healthFn HealthFunc) func() {
	if cfg == nil || !cfg.EnableMetrics {
		mlog.Debug("Metrics data is not enabled to emit")
		return func() {}
	}
	duration := time.Duration(cfg.Duration) * time.Second
	if duration <= 0 {
		duration = time.Minute
	}
	switch cfg.DataEmitMode {
	case EmitModeLog:
		mlog.Info("StartMetrics with log", "duration", duration)
		go go_metrics.Log(go_metrics.DefaultRegistry, duration, printfLogger{l: mlog})
		return func() {}
	case EmitModePrometheus:
		reg := prometheus.NewRegistry()
		reg.MustRegister(NewCollector(go_metrics.DefaultRegistry))
		srv := StartMetricsServer(cfg.ListenAddr, reg, healthFn)
		mlog.Info("StartMetrics with prometheus", "addr", cfg.ListenAddr)
		return func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				mlog.Error("metrics server shutdown", "err", err)
			}
		}
	case EmitModeInfluxDB:
		rep, err := NewInfluxReporter(go_metrics.DefaultRegistry, duration, cfg)
		if err != nil {
			mlog.Error("StartMetrics with influxdb", "err", err)
			return func() {}
		}
		mlog.Info("StartMetrics with influxdb", "url", cfg.InfluxURL, "db", cfg.InfluxDatabase, "duration", duration)
		ctx, cancel := context.WithCancel(context.Background())
		go rep.Run(ctx)
		return cancel
	default:
		mlog.Error("startMetrics", "The dataEmitMode set is not supported now ", cfg.DataEmitMode)
		return func() {}
	}
}

// StartMetricsServer 提供 /metrics 和 /healthz
func StartMetricsServer(addr string, gatherer prometheus.Gatherer, healthFn HealthFunc) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: Handler(gatherer, healthFn),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			mlog.Error("metrics server", "addr", addr, "err", err)
		}
	}()
	return srv
}

// Handler http 路由
func Handler(gatherer prometheus.Gatherer, healthFn HealthFunc) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if healthFn != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := healthFn(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(fmt.Sprintf("unhealthy: %v", err)))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// collector 把 go-metrics 的指标转换成 prometheus 指标
type collector struct {
	registry go_metrics.Registry
}

// NewCollector new
func NewCollector(r go_metrics.Registry) prometheus.Collector {
	return &collector{registry: r}
}

// Describe 指标是动态注册的, 不提前声明
func (c *collector) Describe(ch chan<- *prometheus.Desc) {}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	c.registry.Each(func(name string, i interface{}) {
		desc := prometheus.NewDesc(PromName(name), name, nil, nil)
		var (
			m   prometheus.Metric
			err error
		)
		switch metric := i.(type) {
		case go_metrics.Counter:
			m, err = prometheus.NewConstMetric(desc, prometheus.CounterValue, float64(metric.Count()))
		case go_metrics.Gauge:
			m, err = prometheus.NewConstMetric(desc, prometheus.GaugeValue, float64(metric.Value()))
		case go_metrics.Meter:
			m, err = prometheus.NewConstMetric(desc, prometheus.CounterValue, float64(metric.Count()))
		case go_metrics.Timer:
			snap := metric.Snapshot()
			ps := snap.Percentiles([]float64{0.5, 0.9, 0.99})
			m, err = prometheus.NewConstSummary(desc, uint64(snap.Count()), float64(snap.Sum())/float64(time.Second),
				map[float64]float64{0.5: ps[0] / float64(time.Second), 0.9: ps[1] / float64(time.Second), 0.99: ps[2] / float64(time.Second)})
		default:
			return
		}
		if err != nil {
			mlog.Error("Collect", "name", name, "err", err)
			return
		}
		ch <- m
	})
}

var nameReplacer = strings.NewReplacer(".", "_", "-", "_", "/", "_")

// PromName go-metrics 的名字转成 prometheus 的名字
func PromName(name string) string {
	return Namespace + "_" + nameReplacer.Replace(name)
}

// Counter 取得或注册计数器
func Counter(name string) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(name, go_metrics.DefaultRegistry)
}

// Meter 取得或注册 meter
func Meter(name string) go_metrics.Meter {
	return go_metrics.GetOrRegisterMeter(name, go_metrics.DefaultRegistry)
}

// Timer 取得或注册计时器
func Timer(name string) go_metrics.Timer {
	return go_metrics.GetOrRegisterTimer(name, go_metrics.DefaultRegistry)
}

// Gauge 取得或注册 gauge
func Gauge(name string) go_metrics.Gauge {
	return go_metrics.GetOrRegisterGauge(name, go_metrics.DefaultRegistry)
}
