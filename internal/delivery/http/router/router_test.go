package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/user/listing-harvester/internal/delivery/http/handler"
	"github.com/user/listing-harvester/internal/delivery/http/response"
	"github.com/user/listing-harvester/pkg/metrics"
)

func newTestServer(t *testing.T, pingers map[string]handler.Pinger) (*httptest.Server, *metrics.Metrics) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	srv := httptest.NewServer(New(handler.NewHandler(pingers, zap.NewNop()), reg, m, zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv, m
}

func getHealth(t *testing.T, url string) (int, response.HealthResponse) {
	t.Helper()
	resp, err := http.Get(url + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health: %v", err)
	}
	defer resp.Body.Close()

	var body response.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, body
}

func TestHealthWithoutBackingServices(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	status, body := getHealth(t, srv.URL)
	if status != http.StatusOK || body.Status != "ok" {
		t.Errorf("got %d %+v", status, body)
	}
}

func TestHealthReportsFailingService(t *testing.T) {
	srv, _ := newTestServer(t, map[string]handler.Pinger{
		"postgres": handler.PingerFunc(func(context.Context) error { return nil }),
		"redis":    handler.PingerFunc(func(context.Context) error { return errors.New("connection refused") }),
	})

	status, body := getHealth(t, srv.URL)
	if status != http.StatusServiceUnavailable || body.Status != "degraded" {
		t.Errorf("got %d %+v", status, body)
	}
	if body.Checks["postgres"] != "ok" || body.Checks["redis"] != "connection refused" {
		t.Errorf("checks = %+v", body.Checks)
	}
}

func TestMetricsEndpointExposesRunCounters(t *testing.T) {
	srv, m := newTestServer(t, nil)
	m.IncPages("extractor")
	m.IncFieldMiss("lift")

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)

	for _, want := range []string{
		`pages_processed_total{pipeline="extractor"} 1`,
		`field_misses_total{field="lift"} 1`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/crawl")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}
