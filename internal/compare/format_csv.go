package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// FormatScenarios generates CSV output for a scenario comparison
func (cf *CSVFormatter) FormatScenarios(compSet *ScenarioComparison) (string, error) {
	rows := [][]string{{
		"Scenario",
		"Type",
		"Final Net Worth",
		"Final Passive Income",
		"FIRE Month",
		"FIRE Age",
		"Net Worth Diff from Base",
		"Net Worth % Change",
		"FIRE Month Diff",
	}}

	if compSet.BaseResult != nil {
		rows = append(rows, cf.scenarioRow(compSet.BaseResult, "base"))
	}
	for i := range compSet.AlternativeResults {
		rows = append(rows, cf.scenarioRow(&compSet.AlternativeResults[i], "alternative"))
	}
	return writeCSV(rows)
}

// FormatStrategies generates CSV output for a strategy comparison
func (cf *CSVFormatter) FormatStrategies(compSet *StrategyComparison) (string, error) {
	rows := [][]string{{
		"Rank",
		"Strategy",
		"First Year Withdrawal",
		"Total Withdrawn",
		"Final Balance",
		"Success Years",
		"Total Years",
		"Depleted",
	}}

	for _, r := range compSet.Results {
		rows = append(rows, []string{
			strconv.Itoa(r.Rank),
			string(r.Strategy),
			r.FirstYearWithdrawal.StringFixed(2),
			r.TotalWithdrawn.StringFixed(2),
			r.FinalBalance.StringFixed(2),
			strconv.Itoa(r.SuccessYears),
			strconv.Itoa(r.TotalYears),
			strconv.FormatBool(r.Depleted),
		})
	}
	return writeCSV(rows)
}

// scenarioRow formats a scenario result as a CSV row
func (cf *CSVFormatter) scenarioRow(result *ScenarioResult, scenarioType string) []string {
	return []string{
		string(result.ScenarioName),
		scenarioType,
		result.FinalNetWorth.StringFixed(2),
		result.FinalPassiveIncome.StringFixed(2),
		optionalInt(result.FireMonth),
		optionalInt(result.FireAge),
		result.NetWorthDiffFromBase.StringFixed(2),
		result.NetWorthPctFromBase.StringFixed(2),
		optionalInt(result.FireMonthDiff),
	}
}

func writeCSV(rows [][]string) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)
	if err := writer.WriteAll(rows); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
