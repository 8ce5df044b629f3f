package calculation

import (
	"testing"
	"time"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateScenarios_Paths(t *testing.T) {
	engine := NewEngine()
	paths := engine.SimulateScenarios(baseSnapshot(), 10)

	require.Len(t, paths, 3)
	assert.Equal(t, domain.ScenarioDrifter, paths[0].Name)
	assert.Equal(t, domain.ScenarioCurrent, paths[1].Name)
	assert.Equal(t, domain.ScenarioOptimizer, paths[2].Name)

	for _, p := range paths {
		assert.Len(t, p.Months, 121, p.Name)
		assert.True(t, p.Months[0].NetWorth.Equal(d(50000)), p.Name)
		assert.NotEmpty(t, p.Label)
		assert.NotEmpty(t, p.Color)
	}
}

func TestSimulateScenarios_DefaultHorizon(t *testing.T) {
	engine := NewEngine()
	paths := engine.SimulateScenarios(baseSnapshot(), 0)

	for _, p := range paths {
		assert.Len(t, p.Months, engine.Assumptions.ScenarioYears*12+1)
	}
}

func TestSimulateScenarios_OptimizerBeatsCurrent(t *testing.T) {
	engine := NewEngine()
	paths := engine.SimulateScenarios(withBirthDate(baseSnapshot(), 1990, time.June, 15), 40)
	drifter, current, optimizer := paths[0], paths[1], paths[2]

	require.True(t, current.Reached())
	require.True(t, optimizer.Reached())
	assert.Less(t, *optimizer.FireMonth, *current.FireMonth)
	assert.InDelta(t, 215, *current.FireMonth, 1, "a flat profile tracks the point projection")

	require.NotNil(t, optimizer.FireAge)
	assert.LessOrEqual(t, *optimizer.FireAge, *current.FireAge)

	if drifter.Reached() {
		assert.Greater(t, *drifter.FireMonth, *current.FireMonth)
	}
	assert.True(t, drifter.Final().NetWorth.LessThan(optimizer.Final().NetWorth))
}

func TestSimulateScenario_CurrentKeepsSavingsFlat(t *testing.T) {
	engine := NewEngine()
	profile := domain.DefaultScenarioProfiles()[1]
	path := engine.SimulateScenario(baseSnapshot(), profile, 3)

	for _, m := range path.Months[1:] {
		assert.True(t, m.Contribution.Equal(d(1000)), "month %d", m.Month)
	}
}

func TestSimulateScenario_DrifterSavingsNeverNegative(t *testing.T) {
	engine := NewEngine()
	s := baseSnapshot()
	s.MonthlyIncome = d(2050)

	path := engine.SimulateScenario(s, domain.DefaultScenarioProfiles()[0], 20)
	for _, m := range path.Months {
		assert.False(t, m.Contribution.IsNegative(), "month %d", m.Month)
	}
	assert.False(t, path.Reached())
	assert.Nil(t, path.FireAge)
}

func TestSimulateScenario_CrossingAtStart(t *testing.T) {
	engine := NewEngine()
	s := baseSnapshot()
	s.TotalAssets = d(2000000)

	path := engine.SimulateScenario(s, domain.DefaultScenarioProfiles()[1], 1)
	require.True(t, path.Reached())
	assert.Equal(t, 0, *path.FireMonth)
}

func TestSimulateScenario_ZeroExpensesNeverCrosses(t *testing.T) {
	engine := NewEngine()
	s := baseSnapshot()
	s.MonthlyExpenses = d(0)

	path := engine.SimulateScenario(s, domain.DefaultScenarioProfiles()[1], 5)
	assert.False(t, path.Reached())
}
