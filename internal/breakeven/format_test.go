package breakeven

import (
	"context"
	"strings"
	"testing"

	"github.com/rgehrsitz/firego/internal/calculation"
)

func TestTableFormatter_Format(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	age := 45
	plan := testPlan()

	report, err := solver.Analyze(context.Background(), testSnapshot(), &age, &plan)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	result := (&TableFormatter{}).Format(report)

	for _, want := range []string{
		"BREAK-EVEN RESULTS",
		"REQUIRED MONTHLY SAVINGS",
		"Target FIRE Age:     45 (now 34)",
		"⚠ Needs more savings",
		"SUSTAINABLE SPENDING",
		"Strategy:            classic",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output", want)
		}
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	report := &Report{Recommendations: []string{"hold steady"}}

	result, err := (&JSONFormatter{}).Format(report)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if result != `{"recommendations":["hold steady"]}` {
		t.Errorf("unexpected JSON: %s", result)
	}
}
