package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/firego/internal/calculation"
	"github.com/rgehrsitz/firego/internal/compare"
	"github.com/rgehrsitz/firego/internal/config"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/rgehrsitz/firego/internal/tui/scenes"
)

// The +/- keys move the expected return in half-point steps inside this band.
var (
	returnStep = decimal.NewFromFloat(0.005)
	minReturn  = decimal.Zero
	maxReturn  = decimal.NewFromFloat(0.15)
)

// Model is the dashboard state.
type Model struct {
	tab    Tab
	width  int
	height int

	inputPath string
	input     *config.Input
	engine    *calculation.Engine
	compare   *compare.CompareEngine

	// annualReturn is the return every tab is computed at; baseline is the
	// projection at the input's own return.
	annualReturn decimal.Decimal
	baseline     domain.FireProjection
	generation   int

	projection *scenes.ProjectionModel
	scenarios  *scenes.ScenariosModel
	monteCarlo *scenes.MonteCarloModel
	withdrawal *scenes.WithdrawalModel
	resilience *scenes.ResilienceModel

	keys keyMap
	help help.Model

	loading bool
	err     error
}

// NewModel creates a dashboard that loads inputPath on start.
func NewModel(inputPath string) Model {
	return Model{
		tab:        TabProjection,
		width:      100,
		height:     40,
		inputPath:  inputPath,
		projection: scenes.NewProjectionModel(minReturn.InexactFloat64(), maxReturn.InexactFloat64()),
		scenarios:  scenes.NewScenariosModel(),
		monteCarlo: scenes.NewMonteCarloModel(),
		withdrawal: scenes.NewWithdrawalModel(),
		resilience: scenes.NewResilienceModel(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		loading:    true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadInputCmd(m.inputPath)
}

func loadInputCmd(path string) tea.Cmd {
	return func() tea.Msg {
		input, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return InputLoadedMsg{Input: input}
	}
}

// runMonteCarloCmd runs the simulation off the update loop.
func runMonteCarloCmd(engine *calculation.Engine, s domain.Snapshot, sims, years, generation int) tea.Cmd {
	return func() tea.Msg {
		return MonteCarloCompleteMsg{
			Generation: generation,
			Result:     engine.RunMonteCarlo(s, sims, years),
		}
	}
}

// AnnualReturn is the return the dashboard currently computes at.
func (m Model) AnnualReturn() decimal.Decimal { return m.annualReturn }

// ActiveTab returns the visible tab.
func (m Model) ActiveTab() Tab { return m.tab }

func (m *Model) load(input *config.Input) tea.Cmd {
	m.input = input
	m.engine = calculation.NewEngineWithAssumptions(input.ResolvedAssumptions())
	m.compare = compare.NewCompareEngine(m.engine)
	m.annualReturn = input.Snapshot.ReturnOr(m.engine.Assumptions.DefaultReturn)
	m.baseline = m.engine.ProjectFire(input.Snapshot)
	return m.recompute()
}

// snapshot is the input snapshot pinned to the dashboard's return.
func (m *Model) snapshot() domain.Snapshot {
	s := m.input.Snapshot
	r := m.annualReturn
	s.ExpectedReturn = &r
	return s
}

// recompute refreshes every tab synchronously except Monte Carlo, which it
// returns as a command.
func (m *Model) recompute() tea.Cmd {
	s := m.snapshot()
	a := m.engine.Assumptions

	m.projection.SetData(m.engine.ProjectFire(s), m.baseline, m.engine.ProjectRange(s), m.engine.ProjectForward(s, a.ScenarioYears*12))
	m.scenarios.SetPaths(m.engine.SimulateScenarios(s, a.ScenarioYears))

	impacts := make([]domain.LifeEventImpact, 0, len(m.input.LifeEvents))
	for _, event := range m.input.LifeEvents {
		impacts = append(impacts, m.engine.LifeEventImpact(s, event))
	}
	m.resilience.SetData(m.engine.ScoreResilience(s), impacts)

	if plan := m.input.Withdrawal; plan != nil {
		comparison, err := m.compare.CompareStrategies(*plan)
		if err != nil {
			m.err = err
			return nil
		}
		schedules := make(map[domain.WithdrawalStrategy]domain.WithdrawalResult, len(comparison.Results))
		for _, r := range comparison.Results {
			p := *plan
			p.Strategy = r.Strategy
			result, err := m.engine.SimulateWithdrawal(p)
			if err != nil {
				m.err = err
				return nil
			}
			schedules[r.Strategy] = result
		}
		m.withdrawal.SetData(comparison, schedules)
	}

	m.generation++
	return tea.Batch(
		m.monteCarlo.Start(a.MonteCarloSimulations),
		runMonteCarloCmd(m.engine, s, a.MonteCarloSimulations, a.MonteCarloYears, m.generation),
	)
}

// adjustReturn moves the return by delta within the allowed band and
// recomputes; it is a no-op at the band's edges.
func (m *Model) adjustReturn(delta decimal.Decimal) tea.Cmd {
	next := decimal.Min(decimal.Max(m.annualReturn.Add(delta), minReturn), maxReturn)
	if next.Equal(m.annualReturn) {
		return nil
	}
	m.annualReturn = next
	return m.recompute()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	contentHeight := height - 6
	m.projection.SetSize(width, contentHeight)
	m.scenarios.SetSize(width, contentHeight)
	m.monteCarlo.SetSize(width, contentHeight)
	m.withdrawal.SetSize(width, contentHeight)
	m.resilience.SetSize(width, contentHeight)
}
