package calculation

import (
	"fmt"
	"testing"
	"time"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testAsOf = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// baseSnapshot is the reference case: 50k assets, 3k income, 2k expenses.
func baseSnapshot() domain.Snapshot {
	return domain.Snapshot{
		TotalAssets:     d(50000),
		TotalDebts:      decimal.Zero,
		MonthlyIncome:   d(3000),
		MonthlyExpenses: d(2000),
		AsOf:            testAsOf,
	}
}

func withBirthDate(s domain.Snapshot, year int, month time.Month, day int) domain.Snapshot {
	dob := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	s.DateOfBirth = &dob
	return s
}

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.Equal(t, domain.DefaultAssumptions(), engine.Assumptions)
	assert.NoError(t, engine.Assumptions.Validate())
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestEngine_LogsSearchCap(t *testing.T) {
	engine := NewEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	s := baseSnapshot()
	s.TotalAssets = decimal.Zero
	s.MonthlyIncome = d(2100)
	engine.ProjectFire(s)

	assert.NotEmpty(t, logger.debug, "search cap should be logged at debug level")
}

func TestEngine_NilLoggerFieldIsSafe(t *testing.T) {
	engine := &Engine{Assumptions: domain.DefaultAssumptions()}
	assert.NotPanics(t, func() {
		engine.SimulateWithdrawal(domain.WithdrawalPlan{Strategy: domain.StrategyClassic, RetirementAge: 70, TargetAge: 60})
	})
}

// TestLogger records messages for assertions.
type TestLogger struct {
	debug, info, warn, errors []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.debug = append(tl.debug, fmt.Sprintf(format, args...))
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.info = append(tl.info, fmt.Sprintf(format, args...))
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.warn = append(tl.warn, fmt.Sprintf(format, args...))
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.errors = append(tl.errors, fmt.Sprintf(format, args...))
}
