package calculation

import (
	"runtime"
	"slices"
	"sync"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/rgehrsitz/firego/internal/random"
	"github.com/shopspring/decimal"
)

// Seed formula constants. Simulation s is seeded with s*seedMultiplier +
// seedOffset, which keeps every run reproducible.
const (
	seedMultiplier = 7919
	seedOffset     = 42
)

// simulationOutcome is one simulated path.
type simulationOutcome struct {
	netWorth []decimal.Decimal
	crossed  bool
	fireAge  int
}

// SimulationSeed returns the seed used for simulation index sim.
func SimulationSeed(sim int) int64 {
	return int64(sim)*seedMultiplier + seedOffset
}

// RunMonteCarlo simulates sims annually stepped paths over years with
// normally drawn returns. Zero or negative counts fall back to the
// configured defaults. The FIRE target is fixed from the snapshot.
func (e *Engine) RunMonteCarlo(s domain.Snapshot, sims, years int) domain.MonteCarloResult {
	if sims <= 0 {
		sims = e.Assumptions.MonteCarloSimulations
	}
	if years <= 0 {
		years = e.Assumptions.MonteCarloYears
	}

	outcomes := make([]simulationOutcome, sims)
	workers := e.workerCount(sims)
	e.logger().Debugf("monte carlo: %d simulations x %d years on %d workers", sims, years, workers)

	if workers == 1 {
		for sim := 0; sim < sims; sim++ {
			outcomes[sim] = e.simulatePath(s, sim, years)
		}
	} else {
		work := make(chan int, sims)
		for sim := 0; sim < sims; sim++ {
			work <- sim
		}
		close(work)

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for sim := range work {
					outcomes[sim] = e.simulatePath(s, sim, years)
				}
			}()
		}
		wg.Wait()
	}

	return e.summarizeMonteCarlo(outcomes, sims, years)
}

func (e *Engine) workerCount(sims int) int {
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > sims {
		workers = sims
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// simulatePath runs simulation sim on its own seeded generator.
func (e *Engine) simulatePath(s domain.Snapshot, sim, years int) simulationOutcome {
	gen := random.Seeded(SimulationSeed(sim))
	mean := s.ReturnOr(e.Assumptions.DefaultReturn).InexactFloat64()
	stddev := e.Assumptions.Volatility.InexactFloat64()
	yearlySavings := s.MonthlySavings().Mul(decimalTwelve)
	target := e.FireTarget(s.MonthlyExpenses)
	currentAge := s.CurrentAge()

	out := simulationOutcome{netWorth: make([]decimal.Decimal, years+1)}
	netWorth := s.NetWorth()
	out.netWorth[0] = netWorth

	for year := 1; year <= years; year++ {
		annualReturn := decimal.NewFromFloat(gen.Normal(mean, stddev))
		netWorth = roundMoney(netWorth.Mul(decimalOne.Add(annualReturn)).Add(yearlySavings))
		if netWorth.LessThan(decimalZero) {
			netWorth = decimalZero
		}
		out.netWorth[year] = netWorth

		if !out.crossed && target.GreaterThan(decimalZero) && netWorth.GreaterThanOrEqual(target) {
			out.crossed = true
			out.fireAge = year
			if currentAge != nil {
				out.fireAge = *currentAge + year
			}
		}
	}
	return out
}

func (e *Engine) summarizeMonteCarlo(outcomes []simulationOutcome, sims, years int) domain.MonteCarloResult {
	result := domain.MonteCarloResult{
		Simulations: sims,
		Years:       years,
		P10:         make([]decimal.Decimal, years+1),
		P25:         make([]decimal.Decimal, years+1),
		P50:         make([]decimal.Decimal, years+1),
		P75:         make([]decimal.Decimal, years+1),
		P90:         make([]decimal.Decimal, years+1),
		FireAges:    []int{},
	}
	bands := [5][]decimal.Decimal{result.P10, result.P25, result.P50, result.P75, result.P90}

	column := make([]decimal.Decimal, sims)
	for year := 0; year <= years; year++ {
		for sim := range outcomes {
			column[sim] = outcomes[sim].netWorth[year]
		}
		sortDecimals(column)
		for i, p := range percentileLevels {
			bands[i][year] = pickPercentile(column, p)
		}
	}

	for _, o := range outcomes {
		if o.crossed {
			result.FireAges = append(result.FireAges, o.fireAge)
		}
	}
	slices.Sort(result.FireAges)

	result.FireProb = decimal.NewFromInt(int64(len(result.FireAges))).Div(decimal.NewFromInt(int64(sims)))
	result.P10FireAge = pickPercentileInt(result.FireAges, 0.10)
	result.P50FireAge = pickPercentileInt(result.FireAges, 0.50)
	result.P90FireAge = pickPercentileInt(result.FireAges, 0.90)
	return result
}
