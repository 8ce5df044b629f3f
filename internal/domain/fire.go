package domain

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// FireDateKind tags the outcome of the achievement search.
type FireDateKind int

const (
	// FireDateProjected means the target is crossed at Date.
	FireDateProjected FireDateKind = iota
	// FireDateReached means net worth already covers the target.
	FireDateReached
	// FireDateNotAchievable means the target is not crossed within the search cap.
	FireDateNotAchievable
)

// String returns the wire tag of the kind.
func (k FireDateKind) String() string {
	switch k {
	case FireDateProjected:
		return "projected"
	case FireDateReached:
		return "reached"
	case FireDateNotAchievable:
		return "not_achievable"
	default:
		return fmt.Sprintf("FireDateKind(%d)", int(k))
	}
}

// FireDate is the tagged result of the achievement search. Date is only
// meaningful when Kind is FireDateProjected.
type FireDate struct {
	Kind FireDateKind
	Date time.Time
}

// Reached returns the "already reached" outcome.
func Reached() FireDate { return FireDate{Kind: FireDateReached} }

// NotAchievable returns the "not within the search cap" outcome.
func NotAchievable() FireDate { return FireDate{Kind: FireDateNotAchievable} }

// ProjectedDate returns a projected achievement date.
func ProjectedDate(t time.Time) FireDate { return FireDate{Kind: FireDateProjected, Date: t} }

// Label is the coarse month/year label, or the sentinel tag.
func (d FireDate) Label() string {
	switch d.Kind {
	case FireDateProjected:
		return d.Date.Format("Jan 2006")
	case FireDateReached:
		return "reached"
	default:
		return "not achievable"
	}
}

type fireDateJSON struct {
	Kind  string     `json:"kind"`
	Date  *time.Time `json:"date,omitempty"`
	Label string     `json:"label"`
}

// MarshalJSON encodes the date as {"kind","date","label"}.
func (d FireDate) MarshalJSON() ([]byte, error) {
	out := fireDateJSON{Kind: d.Kind.String(), Label: d.Label()}
	if d.Kind == FireDateProjected {
		date := d.Date
		out.Date = &date
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (d *FireDate) UnmarshalJSON(data []byte) error {
	var in fireDateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case "projected":
		if in.Date == nil {
			return fmt.Errorf("projected fire date without date")
		}
		*d = ProjectedDate(*in.Date)
	case "reached":
		*d = Reached()
	case "not_achievable":
		*d = NotAchievable()
	default:
		return fmt.Errorf("unknown fire date kind %q", in.Kind)
	}
	return nil
}

// FireProjection is the single-path result of the point projection.
type FireProjection struct {
	AnnualReturn      decimal.Decimal `json:"annualReturn"`
	FireTarget        decimal.Decimal `json:"fireTarget"`
	NetWorth          decimal.Decimal `json:"netWorth"`
	FreedomPercentage decimal.Decimal `json:"freedomPercentage"`
	FireAge           *int            `json:"fireAge"`
	CurrentAge        *int            `json:"currentAge"`
	FireDate          FireDate        `json:"fireDate"`

	// MonthsToFire is the search result in months; zero unless projected.
	MonthsToFire    int `json:"monthsToFire"`
	CountdownDays   int `json:"countdownDays"`
	CountdownYears  int `json:"countdownYears"`
	CountdownMonths int `json:"countdownMonths"`

	// How long current net worth alone covers current expenses.
	FreedomYears  int `json:"freedomYears"`
	FreedomMonths int `json:"freedomMonths"`

	MonthlyPassiveIncome decimal.Decimal `json:"monthlyPassiveIncome"`
	MonthlySavings       decimal.Decimal `json:"monthlySavings"`
	SavingsRate          decimal.Decimal `json:"savingsRate"`
}

// IsReached reports whether the target is already covered.
func (p FireProjection) IsReached() bool { return p.FireDate.Kind == FireDateReached }

// IsAchievable reports whether the target is reached or projected.
func (p FireProjection) IsAchievable() bool { return p.FireDate.Kind != FireDateNotAchievable }

// FireRange holds the projection at three fixed returns.
type FireRange struct {
	Optimistic  FireProjection `json:"optimistic"`
	Expected    FireProjection `json:"expected"`
	Pessimistic FireProjection `json:"pessimistic"`
}
