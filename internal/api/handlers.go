package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/firego/internal/breakeven"
	"github.com/rgehrsitz/firego/internal/calculation"
	"github.com/rgehrsitz/firego/internal/compare"
	"github.com/rgehrsitz/firego/internal/config"
	"github.com/rgehrsitz/firego/internal/domain"
)

const (
	maxBodyBytes   = 1 << 20
	maxSimulations = 100000
	maxYears       = 100
	maxMonths      = maxYears * 12
)

// Handler serves the engine over JSON. It is stateless apart from the
// shared engine, so one Handler serves all requests.
type Handler struct {
	Engine  *calculation.Engine
	Compare *compare.CompareEngine
	Solver  *breakeven.Solver
	Logger  calculation.Logger

	validator *config.InputParser
}

// NewHandler wires the comparison engine and the solvers around engine.
func NewHandler(engine *calculation.Engine) *Handler {
	return &Handler{
		Engine:    engine,
		Compare:   compare.NewCompareEngine(engine),
		Solver:    breakeven.NewDefaultSolver(engine),
		Logger:    calculation.NopLogger{},
		validator: config.NewInputParser(),
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Assumptions returns the engine's modeling constants.
func (h *Handler) Assumptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AssumptionsResponse{
		Assumptions: h.Engine.Assumptions,
		Summary:     h.Engine.Assumptions.AssumptionsList(),
	})
}

// Projection runs the point projection.
func (h *Handler) Projection(w http.ResponseWriter, r *http.Request) {
	var req SnapshotRequest
	if !h.decodeSnapshot(w, r, &req, &req.Snapshot) {
		return
	}
	writeJSON(w, http.StatusOK, h.Engine.ProjectFire(req.Snapshot))
}

// Range runs the projection at the three fixed returns.
func (h *Handler) Range(w http.ResponseWriter, r *http.Request) {
	var req SnapshotRequest
	if !h.decodeSnapshot(w, r, &req, &req.Snapshot) {
		return
	}
	writeJSON(w, http.StatusOK, h.Engine.ProjectRange(req.Snapshot))
}

// Trajectory returns the month-indexed forward projection.
func (h *Handler) Trajectory(w http.ResponseWriter, r *http.Request) {
	var req TrajectoryRequest
	if !h.decodeSnapshot(w, r, &req, &req.Snapshot) {
		return
	}
	months := req.Months
	if months == 0 {
		months = h.Engine.Assumptions.ScenarioYears * 12
	}
	if months < 0 || months > maxMonths {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("months must be between 0 and %d", maxMonths))
		return
	}
	writeJSON(w, http.StatusOK, h.Engine.ProjectForward(req.Snapshot, months))
}

// Scenarios returns the three behavioral trajectories and their comparison.
func (h *Handler) Scenarios(w http.ResponseWriter, r *http.Request) {
	var req ScenariosRequest
	if !h.decodeSnapshot(w, r, &req, &req.Snapshot) {
		return
	}
	years := req.Years
	if years == 0 {
		years = h.Engine.Assumptions.ScenarioYears
	}
	if years < 0 || years > maxYears {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("years must be between 0 and %d", maxYears))
		return
	}
	paths := h.Engine.SimulateScenarios(req.Snapshot, years)
	comparison, err := h.Compare.CompareScenarios(paths)
	if err != nil {
		h.Logger.Errorf("compare scenarios: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to compare scenarios")
		return
	}
	writeJSON(w, http.StatusOK, ScenariosResponse{Paths: paths, Comparison: comparison})
}

// MonteCarlo runs the stochastic simulation.
func (h *Handler) MonteCarlo(w http.ResponseWriter, r *http.Request) {
	var req MonteCarloRequest
	if !h.decodeSnapshot(w, r, &req, &req.Snapshot) {
		return
	}
	sims, years := req.Simulations, req.Years
	if sims == 0 {
		sims = h.Engine.Assumptions.MonteCarloSimulations
	}
	if years == 0 {
		years = h.Engine.Assumptions.MonteCarloYears
	}
	if sims < 0 || sims > maxSimulations {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("simulations must be between 0 and %d", maxSimulations))
		return
	}
	if years < 0 || years > maxYears {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("years must be between 0 and %d", maxYears))
		return
	}
	writeJSON(w, http.StatusOK, h.Engine.RunMonteCarlo(req.Snapshot, sims, years))
}

// Withdrawal simulates one decumulation strategy.
func (h *Handler) Withdrawal(w http.ResponseWriter, r *http.Request) {
	var req WithdrawalRequest
	if !h.decodePlan(w, r, &req) {
		return
	}
	result, err := h.Engine.SimulateWithdrawal(req.Plan)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CompareWithdrawal runs and ranks every strategy for one plan.
func (h *Handler) CompareWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req WithdrawalRequest
	if !h.decodePlan(w, r, &req) {
		return
	}
	comparison, err := h.Compare.CompareStrategies(req.Plan)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, comparison)
}

// LifeEvent measures the impact of one event.
func (h *Handler) LifeEvent(w http.ResponseWriter, r *http.Request) {
	var req LifeEventRequest
	if !h.decodeSnapshot(w, r, &req, &req.Snapshot) {
		return
	}
	if err := h.validator.ValidateLifeEvent(&req.Event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid event: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.Engine.LifeEventImpact(req.Snapshot, req.Event))
}

// Resilience scores the snapshot.
func (h *Handler) Resilience(w http.ResponseWriter, r *http.Request) {
	var req SnapshotRequest
	if !h.decodeSnapshot(w, r, &req, &req.Snapshot) {
		return
	}
	writeJSON(w, http.StatusOK, h.Engine.ScoreResilience(req.Snapshot))
}

// BreakevenSavings solves for the monthly savings that reach FIRE by an age.
func (h *Handler) BreakevenSavings(w http.ResponseWriter, r *http.Request) {
	var req SavingsRequest
	if !h.decodeSnapshot(w, r, &req, &req.Snapshot) {
		return
	}
	if req.TargetAge <= 0 {
		writeError(w, http.StatusBadRequest, "targetAge must be positive")
		return
	}
	result, err := h.Solver.RequiredMonthlySavings(r.Context(), req.Snapshot, req.TargetAge)
	if err != nil {
		writeSolverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// BreakevenSpending solves for the largest sustainable yearly spend.
func (h *Handler) BreakevenSpending(w http.ResponseWriter, r *http.Request) {
	var req WithdrawalRequest
	if !h.decodePlan(w, r, &req) {
		return
	}
	result, err := h.Solver.SustainableSpending(r.Context(), req.Plan)
	if err != nil {
		writeSolverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// decodeSnapshot decodes the request body into req and validates the
// snapshot it carries.
func (h *Handler) decodeSnapshot(w http.ResponseWriter, r *http.Request, req any, s *domain.Snapshot) bool {
	if !decode(w, r, req) {
		return false
	}
	if err := h.validator.ValidateSnapshot(s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot: "+err.Error())
		return false
	}
	return true
}

// decodePlan decodes and validates a withdrawal plan. An empty strategy
// means classic.
func (h *Handler) decodePlan(w http.ResponseWriter, r *http.Request, req *WithdrawalRequest) bool {
	if !decode(w, r, req) {
		return false
	}
	if req.Plan.Strategy == "" {
		req.Plan.Strategy = domain.StrategyClassic
	}
	if err := h.validator.ValidateWithdrawal(&req.Plan); err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan: "+err.Error())
		return false
	}
	return true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeSolverError(w http.ResponseWriter, err error) {
	if errors.Is(err, breakeven.ErrNoSolution) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Status: status, Message: message})
}
