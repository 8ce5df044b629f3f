package calculation

import (
	"testing"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScoreResilience_Reference(t *testing.T) {
	engine := NewEngine()
	s := baseSnapshot()
	s.TotalAssets = d(100000)
	s.TotalDebts = d(20000)
	s.MonthlyIncome = d(5000)
	s.MonthlyExpenses = d(3000)

	score := engine.ScoreResilience(s)

	assert.Equal(t, 25, score.Emergency)
	assert.Equal(t, 25, score.Diversification)
	assert.Equal(t, 20, score.DebtRatio)
	assert.Equal(t, 25, score.SavingsRate)
	assert.Equal(t, 95, score.Total)
	assert.Equal(t, domain.ResilienceExcellent, score.Label)
}

func TestScoreResilience_Empty(t *testing.T) {
	engine := NewEngine()
	score := engine.ScoreResilience(domain.Snapshot{})

	assert.Equal(t, 0, score.Total)
	assert.Equal(t, domain.ResilienceCritical, score.Label)
}

func TestScoreResilience_SubScores(t *testing.T) {
	engine := NewEngine()

	t.Run("thin emergency fund", func(t *testing.T) {
		s := baseSnapshot()
		s.TotalAssets = d(20000) // 6000 liquid, three months
		assert.Equal(t, 13, engine.ScoreResilience(s).Emergency)
	})

	t.Run("debt free with assets", func(t *testing.T) {
		s := baseSnapshot()
		assert.Equal(t, 25, engine.ScoreResilience(s).Diversification)
		assert.Equal(t, 25, engine.ScoreResilience(s).DebtRatio)
	})

	t.Run("debts exceed assets", func(t *testing.T) {
		s := baseSnapshot()
		s.TotalDebts = d(100000)
		score := engine.ScoreResilience(s)
		assert.Equal(t, 4, score.Diversification)
		assert.Equal(t, 0, score.DebtRatio)
	})

	t.Run("negative savings", func(t *testing.T) {
		s := baseSnapshot()
		s.MonthlyIncome = d(1000)
		assert.Equal(t, 0, engine.ScoreResilience(s).SavingsRate)
	})

	t.Run("fifteen percent savings rate", func(t *testing.T) {
		s := baseSnapshot()
		s.MonthlyIncome = d(4000)
		s.MonthlyExpenses = d(3400)
		assert.Equal(t, 13, engine.ScoreResilience(s).SavingsRate)
	})
}

func TestScoreResilience_Bounds(t *testing.T) {
	engine := NewEngine()
	values := []float64{0, 1, 500, 20000, 1000000}

	for _, assets := range values {
		for _, debts := range values {
			for _, income := range values {
				s := domain.Snapshot{
					TotalAssets:     d(assets),
					TotalDebts:      d(debts),
					MonthlyIncome:   d(income),
					MonthlyExpenses: d(2000),
				}
				score := engine.ScoreResilience(s)
				for _, sub := range []int{score.Emergency, score.Diversification, score.DebtRatio, score.SavingsRate} {
					assert.GreaterOrEqual(t, sub, 0)
					assert.LessOrEqual(t, sub, 25)
				}
				assert.Equal(t, score.Emergency+score.Diversification+score.DebtRatio+score.SavingsRate, score.Total)
				assert.Equal(t, domain.LabelForScore(score.Total), score.Label)
			}
		}
	}
}

func TestLabelForScore(t *testing.T) {
	assert.Equal(t, domain.ResilienceExcellent, domain.LabelForScore(80))
	assert.Equal(t, domain.ResilienceStrong, domain.LabelForScore(79))
	assert.Equal(t, domain.ResilienceStrong, domain.LabelForScore(60))
	assert.Equal(t, domain.ResilienceReasonable, domain.LabelForScore(40))
	assert.Equal(t, domain.ResilienceVulnerable, domain.LabelForScore(20))
	assert.Equal(t, domain.ResilienceCritical, domain.LabelForScore(19))
}
