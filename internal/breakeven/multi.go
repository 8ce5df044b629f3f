package breakeven

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/firego/internal/domain"
)

// Analyze runs every solver the inputs allow: required savings when a
// target age and birth date are known, sustainable spending when a plan is
// given. A solver without a solution is skipped and noted in the
// recommendations; any other error aborts.
func (s *Solver) Analyze(
	ctx context.Context,
	snapshot domain.Snapshot,
	targetAge *int,
	plan *domain.WithdrawalPlan,
) (*Report, error) {

	report := &Report{Recommendations: []string{}}

	if targetAge != nil && snapshot.CurrentAge() != nil {
		savings, err := s.RequiredMonthlySavings(ctx, snapshot, *targetAge)
		switch {
		case errors.Is(err, ErrNoSolution):
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("FIRE by age %d is out of reach at any savings rate", *targetAge))
		case err != nil:
			return nil, err
		default:
			report.Savings = savings
		}
	}

	if plan != nil {
		spending, err := s.SustainableSpending(ctx, *plan)
		switch {
		case errors.Is(err, ErrNoSolution):
			report.Recommendations = append(report.Recommendations,
				"No level of spending is sustainable for the withdrawal plan")
		case err != nil:
			return nil, err
		default:
			report.Spending = spending
		}
	}

	if report.Savings == nil && report.Spending == nil && len(report.Recommendations) == 0 {
		return nil, &BreakEvenError{
			Operation: "analyze",
			Message:   "nothing to solve: provide a target age with a birth date, or a withdrawal plan",
		}
	}

	report.Recommendations = append(report.Recommendations, generateRecommendations(report)...)
	return report, nil
}

func generateRecommendations(report *Report) []string {
	recommendations := []string{}

	if r := report.Savings; r != nil {
		if r.AlreadyOnTrack {
			recommendations = append(recommendations,
				fmt.Sprintf("On Track: current savings of $%s/month reach FIRE by age %d",
					r.CurrentMonthlySavings.StringFixed(0), r.TargetAge))
		} else {
			recommendations = append(recommendations,
				fmt.Sprintf("Save $%s more per month to reach FIRE by age %d",
					r.AdditionalSavings.StringFixed(0), r.TargetAge))
		}
	}

	if r := report.Spending; r != nil {
		if r.Headroom.IsNegative() {
			recommendations = append(recommendations,
				fmt.Sprintf("Cut planned spending by $%s/year to stay funded under %s",
					r.Headroom.Abs().StringFixed(0), r.Strategy))
		} else {
			recommendations = append(recommendations,
				fmt.Sprintf("Spending Headroom: $%s/year above the plan under %s",
					r.Headroom.StringFixed(0), r.Strategy))
		}
	}

	return recommendations
}
