// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/internal/logging"
	"github.com/katalvlaran/algoviz/kruskal"
)

func testConfig() config.Config {
	return config.Config{
		Addr:            "127.0.0.1:0",
		LogLevel:        "info",
		TieBreak:        "discovery",
		ShutdownTimeout: time.Second,
		MaxBodyBytes:    1 << 16,
		Random:          config.RandomConfig{Nodes: 6, Extra: 4, MaxWeight: 9},
	}
}

func newTestServer(t *testing.T, mutate func(*config.Config)) (*Server, *httptest.Server) {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg, logging.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return s, ts
}

func postGraph(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, data
}

func scrape(t *testing.T, base string) string {
	t.Helper()
	resp, err := http.Get(base + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(data)
}

const triangle = `{
	"A": [{"toNode": "B", "weight": 1}, {"toNode": "C", "weight": 3}],
	"B": [{"toNode": "A", "weight": 1}, {"toNode": "C", "weight": 2}],
	"C": [{"toNode": "B", "weight": 2}, {"toNode": "A", "weight": 3}]
}`

func TestKruskal_Triangle(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, data := postGraph(t, ts.URL+"/api/kruskal", triangle)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var out traceResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, []kruskal.Step{
		{Type: kruskal.StepConsider, Source: "A", Target: "B"},
		{Type: kruskal.StepAdd, Source: "A", Target: "B"},
		{Type: kruskal.StepConsider, Source: "B", Target: "C"},
		{Type: kruskal.StepAdd, Source: "B", Target: "C"},
		{Type: kruskal.StepConsider, Source: "A", Target: "C"},
		{Type: kruskal.StepReject, Source: "A", Target: "C"},
	}, out.Steps)
	assert.Equal(t, 2, out.Summary.Added)
	assert.Equal(t, 1, out.Summary.Rejected)
	assert.Equal(t, int64(3), out.TotalWeight)
	assert.Equal(t, 1, out.Components)

	assert.Contains(t, scrape(t, ts.URL), `algoviz_traces_total{result="ok"} 1`)
}

func TestKruskal_EmptyGraph(t *testing.T) {
	_, ts := newTestServer(t, nil)
	resp, data := postGraph(t, ts.URL+"/api/kruskal", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), `"steps":[]`)
}

func TestKruskal_BadRequests(t *testing.T) {
	_, ts := newTestServer(t, func(c *config.Config) { c.MaxBodyBytes = 64 })

	resp, _ := postGraph(t, ts.URL+"/api/kruskal", `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = postGraph(t, ts.URL+"/api/kruskal?tieBreak=coin", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = postGraph(t, ts.URL+"/api/kruskal", triangle)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	resp, data := postGraph(t, ts.URL+"/api/kruskal", `{"A":[{"toNode":"ghost","weight":1}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(data), "unknown element")

	metrics := scrape(t, ts.URL)
	assert.Contains(t, metrics, `algoviz_traces_total{result="invalid"} 3`)
	assert.Contains(t, metrics, `algoviz_traces_total{result="error"} 1`)
}

func TestKruskal_Strict(t *testing.T) {
	_, ts := newTestServer(t, func(c *config.Config) { c.Strict = true })
	resp, data := postGraph(t, ts.URL+"/api/kruskal", `{"A":[{"toNode":"B","weight":1}],"B":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(data), "not symmetric")
}

func TestKruskal_TieBreakQuery(t *testing.T) {
	_, ts := newTestServer(t, nil)
	doc := `{"C":[{"toNode":"D","weight":1}],"D":[{"toNode":"C","weight":1}],` +
		`"A":[{"toNode":"B","weight":1}],"B":[{"toNode":"A","weight":1}]}`

	_, data := postGraph(t, ts.URL+"/api/kruskal?tieBreak=canonical", doc)
	var out traceResponse
	require.NoError(t, json.Unmarshal(data, &out))
	require.NotEmpty(t, out.Steps)
	assert.Equal(t, "A", out.Steps[0].Source)
}

func TestRandom(t *testing.T) {
	_, ts := newTestServer(t, nil)

	get := func(query string) (*http.Response, []byte) {
		resp, err := http.Get(ts.URL + "/api/graphs/random" + query)
		require.NoError(t, err)
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, data
	}

	resp, a := get("?nodes=10&extra=5&seed=7")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(a))
	assert.Equal(t, "7", resp.Header.Get("X-Seed"))
	g, err := core.Decode(a)
	require.NoError(t, err)
	assert.Equal(t, 10, g.NodeCount())
	assert.NoError(t, core.Validate(g))

	_, b := get("?nodes=10&extra=5&seed=7")
	assert.Equal(t, string(a), string(b), "same seed, same graph")

	for _, q := range []string{"?nodes=x", "?nodes=0", "?extra=-1", "?maxWeight=0", "?seed=abc"} {
		resp, _ := get(q)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
	assert.Contains(t, scrape(t, ts.URL), "algoviz_random_graphs_total 2")
}

func TestRandom_DefaultsAndClockSeed(t *testing.T) {
	s, err := New(testConfig(), logging.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	s.now = func() time.Time { return time.Unix(0, 1234) }
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/graphs/random")
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1234", resp.Header.Get("X-Seed"))
	g, err := core.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
}

func TestHealthzAndMetrics(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	postGraph(t, ts.URL+"/api/kruskal", triangle)
	metrics := scrape(t, ts.URL)
	assert.Contains(t, metrics, `algoviz_traces_total{result="ok"} 1`)
	assert.Contains(t, metrics, "algoviz_trace_edges_count 1")
	assert.Contains(t, metrics, "algoviz_trace_edges_sum 3")
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(testConfig(), logging.NewNop(), reg)
	require.NoError(t, err)
	_, err = New(testConfig(), logging.NewNop(), reg)
	assert.Error(t, err)
}

func TestServe_GracefulShutdown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s, err := New(testConfig(), logging.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	client.CloseIdleConnections()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
