package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/firego/internal/breakeven"
	"github.com/rgehrsitz/firego/internal/calculation"
	"github.com/rgehrsitz/firego/internal/compare"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseSnapshotJSON = `{"totalAssets":50000,"monthlyIncome":3000,"monthlyExpenses":2000,"asOf":"2025-01-01T00:00:00Z"}`

const datedSnapshotJSON = `{"totalAssets":50000,"monthlyIncome":3000,"monthlyExpenses":2000,` +
	`"dateOfBirth":"1990-06-15T00:00:00Z","asOf":"2025-01-01T00:00:00Z"}`

const classicPlanJSON = `{"startingPortfolio":1000000,"retirementAge":60,"targetAge":65,` +
	`"strategy":"classic","yearlyExpenses":40000,"annualReturn":0.07}`

func newTestServer() http.Handler {
	return NewRouter(NewHandler(calculation.NewEngine()))
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAssumptions(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/assumptions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[AssumptionsResponse](t, rec)
	assert.Equal(t, "0.04", resp.Assumptions.SafeWithdrawalRate.String())
	assert.Equal(t, 600, resp.Assumptions.SearchCapMonths)
	assert.Contains(t, resp.Summary, "Safe withdrawal rate: 4.0%")
}

func TestProjection(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/projection", `{"snapshot":`+baseSnapshotJSON+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	p := decodeBody[domain.FireProjection](t, rec)
	assert.Equal(t, 215, p.MonthsToFire)
	assert.Equal(t, 6545, p.CountdownDays)
	assert.Equal(t, domain.FireDateProjected, p.FireDate.Kind)
	assert.Equal(t, "Dec 2042", p.FireDate.Label())
	assert.Nil(t, p.FireAge, "no birth date means no age")
}

func TestProjection_Sentinels(t *testing.T) {
	srv := newTestServer()

	rec := do(t, srv, http.MethodPost, "/api/projection",
		`{"snapshot":{"totalAssets":1000000,"monthlyIncome":3000,"monthlyExpenses":2000}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"reached"`)

	rec = do(t, srv, http.MethodPost, "/api/projection",
		`{"snapshot":{"totalAssets":1000,"monthlyIncome":2000,"monthlyExpenses":2000}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"not_achievable"`)
	assert.NotContains(t, rec.Body.String(), `"date"`)
}

func TestBadRequests(t *testing.T) {
	srv := newTestServer()
	tests := []struct {
		name    string
		path    string
		body    string
		message string
	}{
		{"malformed body", "/api/projection", `{"snapshot":`, "Invalid request body"},
		{"empty body", "/api/range", ``, "Invalid request body"},
		{"negative assets", "/api/projection", `{"snapshot":{"totalAssets":-1}}`, "invalid snapshot: total assets cannot be negative"},
		{"too many simulations", "/api/monte-carlo", `{"snapshot":{},"simulations":1000000}`, "simulations must be between"},
		{"too many months", "/api/trajectory", `{"snapshot":{},"months":5000}`, "months must be between"},
		{"negative years", "/api/scenarios", `{"snapshot":{},"years":-1}`, "years must be between"},
		{"unknown strategy", "/api/withdrawal", `{"plan":{"strategy":"yolo","retirementAge":60,"targetAge":90}}`, "unknown withdrawal strategy"},
		{"inverted horizon", "/api/withdrawal/compare", `{"plan":{"retirementAge":60,"targetAge":50}}`, "target age 50 is before retirement age 60"},
		{"unnamed event", "/api/life-event", `{"snapshot":{},"event":{"oneTimeCost":100}}`, "invalid event: name is required"},
		{"missing target age", "/api/breakeven/savings", `{"snapshot":` + datedSnapshotJSON + `}`, "targetAge must be positive"},
		{"missing birth date", "/api/breakeven/savings", `{"snapshot":` + baseSnapshotJSON + `,"targetAge":45}`, "date of birth is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			resp := decodeBody[ErrorResponse](t, rec)
			assert.Equal(t, http.StatusBadRequest, resp.Status)
			assert.Contains(t, resp.Message, tt.message)
		})
	}
}

func TestRange(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/range", `{"snapshot":`+datedSnapshotJSON+`}`)
	require.Equal(t, http.StatusOK, rec.Code)

	r := decodeBody[domain.FireRange](t, rec)
	assert.Equal(t, 186, r.Optimistic.MonthsToFire)
	assert.Equal(t, 215, r.Expected.MonthsToFire)
	assert.Equal(t, 284, r.Pessimistic.MonthsToFire)
	require.NotNil(t, r.Expected.FireAge)
	assert.Equal(t, 51, *r.Expected.FireAge)
}

func TestTrajectory(t *testing.T) {
	srv := newTestServer()

	rec := do(t, srv, http.MethodPost, "/api/trajectory", `{"snapshot":`+baseSnapshotJSON+`,"months":12}`)
	require.Equal(t, http.StatusOK, rec.Code)
	points := decodeBody[[]domain.ProjectionMonth](t, rec)
	assert.Len(t, points, 13)
	assert.Equal(t, "50000", points[0].NetWorth.String())

	rec = do(t, srv, http.MethodPost, "/api/trajectory", `{"snapshot":`+baseSnapshotJSON+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]domain.ProjectionMonth](t, rec), 40*12+1, "defaults to the scenario horizon")
}

func TestScenarios(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/scenarios", `{"snapshot":`+baseSnapshotJSON+`,"years":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[ScenariosResponse](t, rec)
	require.Len(t, resp.Paths, 3)
	assert.Len(t, resp.Paths[0].Months, 61)
	require.NotNil(t, resp.Comparison)
	assert.Equal(t, domain.ScenarioCurrent, resp.Comparison.BaseScenarioName)
	assert.Equal(t, 5, resp.Comparison.Years)
	assert.Len(t, resp.Comparison.AlternativeResults, 2)
}

func TestMonteCarlo(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/monte-carlo",
		`{"snapshot":`+baseSnapshotJSON+`,"simulations":50,"years":10}`)
	require.Equal(t, http.StatusOK, rec.Code)

	mc := decodeBody[domain.MonteCarloResult](t, rec)
	assert.Equal(t, 50, mc.Simulations)
	assert.Equal(t, 10, mc.Years)
	assert.Len(t, mc.P50, 11)
	assert.True(t, mc.P10[10].LessThanOrEqual(mc.P90[10]))
}

func TestWithdrawal(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/withdrawal", `{"plan":`+classicPlanJSON+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decodeBody[domain.WithdrawalResult](t, rec)
	assert.Equal(t, domain.StrategyClassic, result.Strategy)
	require.Len(t, result.Schedule, 5)
	assert.Equal(t, "1027200", result.Schedule[0].EndBalance.String())
	assert.False(t, result.Depleted)
	assert.Equal(t, 5, result.SuccessYears)
}

func TestWithdrawal_DefaultStrategy(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/withdrawal",
		`{"plan":{"startingPortfolio":1000000,"retirementAge":60,"targetAge":61,"yearlyExpenses":40000}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.StrategyClassic, decodeBody[domain.WithdrawalResult](t, rec).Strategy)
}

func TestCompareWithdrawal(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/withdrawal/compare", `{"plan":`+classicPlanJSON+`}`)
	require.Equal(t, http.StatusOK, rec.Code)

	comparison := decodeBody[compare.StrategyComparison](t, rec)
	require.Len(t, comparison.Results, 4)
	for i, r := range comparison.Results {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestLifeEvent(t *testing.T) {
	body := `{"snapshot":` + baseSnapshotJSON + `,"event":{"name":"child","type":"family",` +
		`"oneTimeCost":5000,"monthlyCostChange":500,"durationMonths":24}}`
	rec := do(t, newTestServer(), http.MethodPost, "/api/life-event", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	impact := decodeBody[domain.LifeEventImpact](t, rec)
	assert.Equal(t, "17000", impact.TotalCost.String())
	assert.Equal(t, 259, impact.FreedomDaysLost)
	assert.Greater(t, impact.FireDelayMonths, 0)
}

func TestResilience(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/resilience", `{"snapshot":{}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	score := decodeBody[domain.ResilienceScore](t, rec)
	assert.Equal(t, 0, score.Total)
	assert.Equal(t, domain.ResilienceCritical, score.Label)
}

func TestBreakevenSavings(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/breakeven/savings",
		`{"snapshot":`+datedSnapshotJSON+`,"targetAge":45}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decodeBody[breakeven.SavingsResult](t, rec)
	assert.Equal(t, 34, result.CurrentAge)
	assert.False(t, result.AlreadyOnTrack)
	assert.True(t, result.RequiredMonthlySavings.GreaterThan(result.CurrentMonthlySavings))
	require.NotNil(t, result.Projection.FireAge)
	assert.LessOrEqual(t, *result.Projection.FireAge, 45)
}

func TestBreakevenSpending(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/breakeven/spending", `{"plan":`+classicPlanJSON+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decodeBody[breakeven.SpendingResult](t, rec)
	assert.True(t, result.SustainableYearlyExpenses.IsPositive())
	assert.False(t, result.Result.Depleted)
}

func TestBreakevenSpending_NoSolution(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/breakeven/spending",
		`{"plan":{"startingPortfolio":1000,"retirementAge":60,"targetAge":60}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeBody[ErrorResponse](t, rec).Message, "no solution")
}

func TestRouting(t *testing.T) {
	srv := newTestServer()

	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/unknown", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, srv, http.MethodGet, "/api/projection", "").Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/projection", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	newTestServer().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
