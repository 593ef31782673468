package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "github.com/Seif10284/crabcamera/internal/adapters/http"
	"github.com/Seif10284/crabcamera/internal/logging"
	"github.com/Seif10284/crabcamera/internal/report"
	"github.com/Seif10284/crabcamera/internal/stats"
	"github.com/Seif10284/crabcamera/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *stats.MemoryRecorder) {
	t.Helper()

	recorder := stats.NewMemoryRecorder()
	srv := httpadapter.NewServer(catalog.Default(), recorder, logging.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, recorder
}

func TestReportEndpoint(t *testing.T) {
	ts, recorder := newTestServer(t)

	resp, err := http.Get(ts.URL + "/report")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

	body := readAll(t, resp)
	assert.Equal(t, report.Plain(catalog.Default()), body, "HTTP body matches the plain renderer")

	total, err := recorder.Total(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestReportJSONEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/report.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got catalog.Catalog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, catalog.Default(), got, "JSON round-trips to the default catalog")
	assert.Len(t, got.Commands, 10)
}

func TestHealthzEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, readAll(t, resp))
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	// Generate one text and two json deliveries.
	for _, path := range []string{"/report", "/report.json", "/report.json"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body := readAll(t, resp)
	assert.Contains(t, body, `crabcamera_report_requests_total{format="text"} 1`)
	assert.Contains(t, body, `crabcamera_report_requests_total{format="json"} 2`)
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
