package domain

import (
	"github.com/shopspring/decimal"
)

// MonteCarloResult aggregates many independently seeded simulations.
// Each percentile array has Years+1 entries, index 0 being today.
type MonteCarloResult struct {
	Simulations int `json:"simulations"`
	Years       int `json:"years"`

	P10 []decimal.Decimal `json:"p10"`
	P25 []decimal.Decimal `json:"p25"`
	P50 []decimal.Decimal `json:"p50"`
	P75 []decimal.Decimal `json:"p75"`
	P90 []decimal.Decimal `json:"p90"`

	// FireAges are the sorted ages (or elapsed years when the birth date is
	// unknown) at which each crossing simulation first met the target.
	FireAges []int          `json:"fireAges"`
	FireProb decimal.Decimal `json:"fireProb"`

	P10FireAge *int `json:"p10FireAge"`
	P50FireAge *int `json:"p50FireAge"`
	P90FireAge *int `json:"p90FireAge"`
}
