// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/33cn/coinflip/types"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	r := go_metrics.NewRegistry()
	go_metrics.GetOrRegisterCounter("coinflip.bet", r).Inc(4)
	go_metrics.GetOrRegisterGauge("coinflip.liability", r).Update(200)
	go_metrics.GetOrRegisterMeter("coinflip.payout", r).Mark(2)
	go_metrics.GetOrRegisterTimer("exec.tx", r).Update(time.Millisecond)
	go_metrics.GetOrRegisterHistogram("ignored", r, go_metrics.NewUniformSample(10)).Update(1)

	pts, err := Points(r, map[string]string{"namespace": "test"}, time.Unix(1, 0))
	require.NoError(t, err)
	require.Len(t, pts, 4)

	byName := make(map[string]map[string]interface{})
	for _, pt := range pts {
		fields, err := pt.Fields()
		require.NoError(t, err)
		byName[pt.Name()] = fields
		assert.Equal(t, "test", pt.Tags()["namespace"])
	}
	assert.EqualValues(t, 4, byName["coinflip.bet"]["count"])
	assert.EqualValues(t, 200, byName["coinflip.liability"]["value"])
	assert.EqualValues(t, 2, byName["coinflip.payout"]["count"])
	assert.EqualValues(t, 1, byName["exec.tx"]["count"])
}

func TestInfluxReporterSend(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies []string
		query  string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, _ := ioutil.ReadAll(req.Body)
		mu.Lock()
		bodies = append(bodies, string(body))
		query = req.URL.RawQuery
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	r := go_metrics.NewRegistry()
	go_metrics.GetOrRegisterCounter("coinflip.claim", r).Inc(1)
	rep, err := NewInfluxReporter(r, time.Second, &types.Metrics{InfluxURL: srv.URL, InfluxDatabase: "coinflip"})
	require.NoError(t, err)
	require.NoError(t, rep.Send())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, bodies, 1)
	assert.True(t, strings.HasPrefix(bodies[0], "coinflip.claim,namespace=coinflip count=1i"))
	assert.Contains(t, query, "db=coinflip")
}

func TestNewInfluxReporterConfig(t *testing.T) {
	_, err := NewInfluxReporter(go_metrics.NewRegistry(), time.Second, &types.Metrics{})
	assert.Error(t, err)
	_, err = NewInfluxReporter(go_metrics.NewRegistry(), time.Second, &types.Metrics{InfluxURL: "localhost:8086", InfluxDatabase: "x"})
	assert.Error(t, err)
}
