package domain

// ResilienceLabel is the qualitative band of a resilience total.
type ResilienceLabel string

const (
	ResilienceExcellent  ResilienceLabel = "excellent"
	ResilienceStrong     ResilienceLabel = "strong"
	ResilienceReasonable ResilienceLabel = "reasonable"
	ResilienceVulnerable ResilienceLabel = "vulnerable"
	ResilienceCritical   ResilienceLabel = "critical"
)

// LabelForScore maps a 0-100 total onto its band.
func LabelForScore(total int) ResilienceLabel {
	switch {
	case total >= 80:
		return ResilienceExcellent
	case total >= 60:
		return ResilienceStrong
	case total >= 40:
		return ResilienceReasonable
	case total >= 20:
		return ResilienceVulnerable
	default:
		return ResilienceCritical
	}
}

// ResilienceScore is a static composite of four sub-scores, each in [0,25].
type ResilienceScore struct {
	Total           int             `json:"total"`
	Emergency       int             `json:"emergency"`
	Diversification int             `json:"diversification"`
	DebtRatio       int             `json:"debtRatio"`
	SavingsRate     int             `json:"savingsRate"`
	Label           ResilienceLabel `json:"label"`
}
