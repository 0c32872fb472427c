// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"time"

	"github.com/33cn/coinflip/types"
	client "github.com/influxdata/influxdb/client/v2"
	"github.com/pkg/errors"
	go_metrics "github.com/rcrowley/go-metrics"
)

// InfluxReporter 周期性地把 registry 的快照写入 influxdb
type InfluxReporter struct {
	registry go_metrics.Registry
	interval time.Duration
	database string
	tags     map[string]string
	client   client.Client
}

// NewInfluxReporter 按配置连接 influxdb, 写入时才会真正发请求
func NewInfluxReporter(r go_metrics.Registry, interval time.Duration, cfg *types.Metrics) (*InfluxReporter, error) {
	if cfg.InfluxURL == "" || cfg.InfluxDatabase == "" {
		return nil, errors.New("influxURL and influxDatabase are required")
	}
	c, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     cfg.InfluxURL,
		Username: cfg.InfluxUsername,
		Password: cfg.InfluxPassword,
		Timeout:  5 * time.Second,
	})
	if err != nil {
		return nil, errors.Wrap(err, "influxdb client")
	}
	return &InfluxReporter{
		registry: r,
		interval: interval,
		database: cfg.InfluxDatabase,
		tags:     map[string]string{"namespace": Namespace},
		client:   c,
	}, nil
}

// Points registry 当前的快照
func Points(r go_metrics.Registry, tags map[string]string, now time.Time) ([]*client.Point, error) {
	var (
		pts []*client.Point
		err error
	)
	r.Each(func(name string, i interface{}) {
		if err != nil {
			return
		}
		var fields map[string]interface{}
		switch metric := i.(type) {
		case go_metrics.Counter:
			fields = map[string]interface{}{"count": metric.Count()}
		case go_metrics.Gauge:
			fields = map[string]interface{}{"value": metric.Value()}
		case go_metrics.Meter:
			snap := metric.Snapshot()
			fields = map[string]interface{}{
				"count": snap.Count(),
				"m1":    snap.Rate1(),
				"mean":  snap.RateMean(),
			}
		case go_metrics.Timer:
			snap := metric.Snapshot()
			ps := snap.Percentiles([]float64{0.5, 0.99})
			fields = map[string]interface{}{
				"count": snap.Count(),
				"mean":  snap.Mean(),
				"p50":   ps[0],
				"p99":   ps[1],
			}
		default:
			return
		}
		var pt *client.Point
		pt, err = client.NewPoint(name, tags, fields, now)
		if err == nil {
			pts = append(pts, pt)
		}
	})
	return pts, err
}

// Send 写入一次
func (rep *InfluxReporter) Send() error {
	bp, err := client.NewBatchPoints(client.BatchPointsConfig{Database: rep.database, Precision: "s"})
	if err != nil {
		return err
	}
	pts, err := Points(rep.registry, rep.tags, time.Now())
	if err != nil {
		return err
	}
	if len(pts) == 0 {
		return nil
	}
	for _, pt := range pts {
		bp.AddPoint(pt)
	}
	return rep.client.Write(bp)
}

// Run 每个周期写入一次, ctx 取消后退出
func (rep *InfluxReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(rep.interval)
	defer ticker.Stop()
	defer rep.client.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := rep.Send(); err != nil {
				mlog.Error("influxdb send", "db", rep.database, "err", err)
			}
		}
	}
}
