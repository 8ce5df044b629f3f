package api

import (
	"github.com/rgehrsitz/firego/internal/compare"
	"github.com/rgehrsitz/firego/internal/domain"
)

// SnapshotRequest carries only a financial snapshot.
type SnapshotRequest struct {
	Snapshot domain.Snapshot `json:"snapshot"`
}

// TrajectoryRequest asks for a month-indexed forward projection. Zero
// months means the configured scenario horizon.
type TrajectoryRequest struct {
	Snapshot domain.Snapshot `json:"snapshot"`
	Months   int             `json:"months"`
}

// ScenariosRequest asks for the behavioral trajectories.
type ScenariosRequest struct {
	Snapshot domain.Snapshot `json:"snapshot"`
	Years    int             `json:"years"`
}

// MonteCarloRequest asks for a Monte Carlo run. Zero values fall back to
// the configured defaults.
type MonteCarloRequest struct {
	Snapshot    domain.Snapshot `json:"snapshot"`
	Simulations int             `json:"simulations"`
	Years       int             `json:"years"`
}

// WithdrawalRequest carries a decumulation plan.
type WithdrawalRequest struct {
	Plan domain.WithdrawalPlan `json:"plan"`
}

// LifeEventRequest asks for the impact of one event.
type LifeEventRequest struct {
	Snapshot domain.Snapshot  `json:"snapshot"`
	Event    domain.LifeEvent `json:"event"`
}

// SavingsRequest asks for the monthly savings needed to reach FIRE by an age.
type SavingsRequest struct {
	Snapshot  domain.Snapshot `json:"snapshot"`
	TargetAge int             `json:"targetAge"`
}

// ScenariosResponse returns the trajectories and their comparison.
type ScenariosResponse struct {
	Paths      []domain.ScenarioPath       `json:"paths"`
	Comparison *compare.ScenarioComparison `json:"comparison"`
}

// AssumptionsResponse returns the active modeling constants.
type AssumptionsResponse struct {
	Assumptions domain.Assumptions `json:"assumptions"`
	Summary     []string           `json:"summary"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
