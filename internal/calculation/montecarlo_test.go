package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationSeed(t *testing.T) {
	assert.Equal(t, int64(42), SimulationSeed(0))
	assert.Equal(t, int64(7961), SimulationSeed(1))
	assert.Equal(t, int64(999*7919+42), SimulationSeed(999))
}

func TestRunMonteCarlo_Shape(t *testing.T) {
	engine := NewEngine()
	result := engine.RunMonteCarlo(baseSnapshot(), 200, 30)

	assert.Equal(t, 200, result.Simulations)
	assert.Equal(t, 30, result.Years)
	assert.Len(t, result.P10, 31)
	assert.Len(t, result.P25, 31)
	assert.Len(t, result.P50, 31)
	assert.Len(t, result.P75, 31)
	assert.Len(t, result.P90, 31)

	for _, band := range result.P10 {
		assert.False(t, band.IsNegative())
	}
	assert.True(t, result.P10[0].Equal(d(50000)))
	assert.True(t, result.P90[0].Equal(d(50000)))
}

func TestRunMonteCarlo_BandsAreOrdered(t *testing.T) {
	engine := NewEngine()
	r := engine.RunMonteCarlo(baseSnapshot(), 300, 25)

	for y := 0; y <= r.Years; y++ {
		assert.True(t, r.P10[y].LessThanOrEqual(r.P25[y]), "year %d", y)
		assert.True(t, r.P25[y].LessThanOrEqual(r.P50[y]), "year %d", y)
		assert.True(t, r.P50[y].LessThanOrEqual(r.P75[y]), "year %d", y)
		assert.True(t, r.P75[y].LessThanOrEqual(r.P90[y]), "year %d", y)
	}
	assert.True(t, r.P10[r.Years].LessThan(r.P90[r.Years]), "volatility spreads the bands")
}

func TestRunMonteCarlo_Reproducible(t *testing.T) {
	engine := NewEngine()
	a := engine.RunMonteCarlo(baseSnapshot(), 150, 20)
	b := engine.RunMonteCarlo(baseSnapshot(), 150, 20)

	assert.Equal(t, a, b)
}

func TestRunMonteCarlo_SequentialMatchesParallel(t *testing.T) {
	sequential := NewEngine()
	sequential.Workers = 1
	parallel := NewEngine()
	parallel.Workers = 8

	s := withBirthDate(baseSnapshot(), 1990, time.June, 15)
	assert.Equal(t, sequential.RunMonteCarlo(s, 120, 30), parallel.RunMonteCarlo(s, 120, 30))
}

func TestRunMonteCarlo_DefaultsForNonPositiveCounts(t *testing.T) {
	engine := NewEngine()
	engine.Assumptions.MonteCarloSimulations = 20
	engine.Assumptions.MonteCarloYears = 5

	r := engine.RunMonteCarlo(baseSnapshot(), 0, -1)
	assert.Equal(t, 20, r.Simulations)
	assert.Equal(t, 5, r.Years)
	assert.Len(t, r.P50, 6)
}

func TestRunMonteCarlo_NeverCrossing(t *testing.T) {
	engine := NewEngine()
	s := baseSnapshot()
	s.TotalAssets = d(1000)
	s.MonthlyIncome = d(0)

	r := engine.RunMonteCarlo(s, 100, 20)
	assert.True(t, r.FireProb.IsZero())
	assert.Empty(t, r.FireAges)
	assert.NotNil(t, r.FireAges)
	assert.Nil(t, r.P10FireAge)
	assert.Nil(t, r.P50FireAge)
	assert.Nil(t, r.P90FireAge)
	assert.True(t, r.P90[20].IsZero(), "net worth is floored at zero")
}

func TestRunMonteCarlo_LikelyCrossing(t *testing.T) {
	engine := NewEngine()
	s := withBirthDate(baseSnapshot(), 1990, time.June, 15)
	s.TotalAssets = d(500000)
	s.MonthlyIncome = d(7000)

	r := engine.RunMonteCarlo(s, 200, 30)
	assert.Greater(t, r.FireProb.InexactFloat64(), 0.9)
	assert.LessOrEqual(t, r.FireProb.InexactFloat64(), 1.0)
	require.NotEmpty(t, r.FireAges)

	for i, age := range r.FireAges {
		assert.GreaterOrEqual(t, age, 35, "crossing happens at year one at the earliest")
		if i > 0 {
			assert.GreaterOrEqual(t, age, r.FireAges[i-1])
		}
	}
	require.NotNil(t, r.P10FireAge)
	require.NotNil(t, r.P90FireAge)
	assert.LessOrEqual(t, *r.P10FireAge, *r.P50FireAge)
	assert.LessOrEqual(t, *r.P50FireAge, *r.P90FireAge)
}

func TestRunMonteCarlo_FireAgesAreYearsWithoutBirthDate(t *testing.T) {
	engine := NewEngine()
	s := baseSnapshot()
	s.TotalAssets = d(590000)

	r := engine.RunMonteCarlo(s, 50, 10)
	for _, age := range r.FireAges {
		assert.GreaterOrEqual(t, age, 1)
		assert.LessOrEqual(t, age, 10)
	}
}

func TestPercentileIndex(t *testing.T) {
	assert.Equal(t, 0, percentileIndex(1, 0.9))
	assert.Equal(t, 1, percentileIndex(10, 0.10))
	assert.Equal(t, 5, percentileIndex(10, 0.50))
	assert.Equal(t, 9, percentileIndex(10, 0.90))
	assert.Equal(t, 9, percentileIndex(10, 1.0))
	assert.Equal(t, 100, percentileIndex(1000, 0.10))
}
