package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/catalog"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/planner"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/scorer"
)

const missionJSON = `{
  "businessCategory": "EarthObservation",
  "targetRevenue": 50000000,
  "productValueDensity": 20000,
  "targetMarket": "Government",
  "constellationSize": 12,
  "targetAltitude": 550,
  "missionLifespan": 5,
  "launchVehicleType": "Rideshare",
  "inSpacePropulsion": true,
  "payloadMass": 150,
  "leadTimeTolerance": 12,
  "deorbitMethod": "Active Propulsion",
  "ssaStrategy": "Commercial",
  "dataLicensing": "Restricted"
}`

func newTestServer(cfg Config) *Server {
	return New(planner.NewPipeline(), nil, cfg)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(Config{}).Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestScore(t *testing.T) {
	rec := do(t, newTestServer(Config{}).Handler(), http.MethodPost, "/api/v1/score", missionJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got interfaces.ScoreResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	var m interfaces.MissionParameters
	require.NoError(t, json.Unmarshal([]byte(missionJSON), &m))
	assert.Equal(t, *scorer.NewEngine().Score(&m), got)
}

func TestScore_BadBody(t *testing.T) {
	rec := do(t, newTestServer(Config{}).Handler(), http.MethodPost, "/api/v1/score", `{"targetRevenue": "lots"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var e errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Contains(t, e.Error, "invalid request body")
}

func TestCost_PartialInput(t *testing.T) {
	rec := do(t, newTestServer(Config{}).Handler(), http.MethodPost, "/api/v1/cost", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got interfaces.CostAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got.TotalByVendor)
	assert.Equal(t, interfaces.VendorRocketLab, got.TotalByVendor[0].Vendor)
	assert.InDelta(t, 10_890_000, got.TotalByVendor[0].Total, 1e-3)
}

func TestCost_OverflowingInputStillEncodes(t *testing.T) {
	rec := do(t, newTestServer(Config{}).Handler(), http.MethodPost, "/api/v1/cost", `{"missionLifespan": 1e308}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got interfaces.CostAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.TotalByVendor, 6)
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"total": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var e errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.NotEmpty(t, e.Error)
}

func TestAnalyze_ExplicitZerosPricedLikeCost(t *testing.T) {
	const body = `{"businessCategory": "EarthObservation", "leadTimeTolerance": 0, "targetRevenue": 0}`

	costRec := do(t, newTestServer(Config{}).Handler(), http.MethodPost, "/api/v1/cost", body)
	require.Equal(t, http.StatusOK, costRec.Code)
	var cost interfaces.CostAnalysis
	require.NoError(t, json.Unmarshal(costRec.Body.Bytes(), &cost))

	rec := do(t, newTestServer(Config{}).Handler(), http.MethodPost, "/api/v1/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code)
	var a interfaces.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))

	assert.Equal(t, 1.5, a.Cost.Multipliers.Urgency)
	assert.Equal(t, 0.0, a.Cost.Insights.TotalBudget)
	assert.Equal(t, cost.TotalByVendor, a.Cost.TotalByVendor)
	assert.Equal(t, cost.Insights, a.Cost.Insights)
}

func TestReport(t *testing.T) {
	rec := do(t, newTestServer(Config{}).Handler(), http.MethodPost, "/api/v1/report", missionJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	var got reportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Report)
	assert.Equal(t, ai.SourceLocal, got.Report.Source)
	assert.Equal(t, ai.SuccessProbability(*got.Scores), got.Report.TechnicalInsights.SuccessProbability)
}

func TestReport_RateLimited(t *testing.T) {
	h := newTestServer(Config{ReportRPS: 0.001, ReportBurst: 1}).Handler()

	first := do(t, h, http.MethodPost, "/api/v1/report", missionJSON)
	assert.Equal(t, http.StatusOK, first.Code)

	second := do(t, h, http.MethodPost, "/api/v1/report", missionJSON)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))

	// Score is not throttled.
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/score", missionJSON).Code)
}

func TestAnalyze(t *testing.T) {
	rec := do(t, newTestServer(Config{}).Handler(), http.MethodPost, "/api/v1/analyze", missionJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	var got interfaces.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 12, got.Mission.ConstellationSize)
	assert.NotEmpty(t, got.Cost.TotalByVendor)
	require.NotNil(t, got.Report)
}

func TestCatalogAndHints(t *testing.T) {
	h := newTestServer(Config{}).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cat catalog.Catalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cat))
	assert.Contains(t, cat.Categories, "SatCom")
	assert.Len(t, cat.Vendors, len(catalog.DefaultVendors()))

	rec = do(t, h, http.MethodPost, "/api/v1/hints", `{"launchVehicleType": "Small"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var hints []catalog.Hint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hints))
	assert.Len(t, hints, 8)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(Config{}).Handler(), http.MethodGet, "/api/v1/score", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestListenAndServe_Shutdown(t *testing.T) {
	s := newTestServer(Config{Addr: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNew_Defaults(t *testing.T) {
	s := New(nil, nil, Config{})
	assert.Equal(t, DefaultAddr, s.cfg.Addr)
	assert.Equal(t, DefaultReportBurst, s.cfg.ReportBurst)
	assert.NotNil(t, s.pipeline)

	var buf bytes.Buffer
	buf.WriteString(missionJSON)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/score", &buf))
	assert.Equal(t, http.StatusOK, rec.Code)
}
