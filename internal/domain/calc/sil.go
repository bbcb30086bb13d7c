package calc

import (
	"time"

	"github.com/shopspring/decimal"
)

type SILInput struct {
	DateHired     time.Time `json:"dateHired"`
	ReferenceDate time.Time `json:"referenceDate"`
	PresentDate   time.Time `json:"presentDate"`
	DailyRate     float64   `json:"dailyRate"`
}

type SILResult struct {
	Outcome    Outcome         `json:"outcome"`
	DaysWorked int             `json:"daysWorked,omitempty"`
	Pay        decimal.Decimal `json:"pay"`
	Remark     string          `json:"remark,omitempty"`
}

// ServiceIncentiveLeave converts the five-day annual leave entitlement to
// pay, prorated over the reference-to-present span. Less than one year of
// service since hiring is a terminal not-yet-eligible outcome.
func ServiceIncentiveLeave(in SILInput) (*SILResult, error) {
	if in.DailyRate <= 0 {
		return nil, invalid("dailyRate")
	}
	if err := validateRange(in.ReferenceDate, in.PresentDate); err != nil {
		return nil, err
	}
	if err := validateRange(in.DateHired, in.ReferenceDate); err != nil {
		return nil, err
	}

	if YearsBetween(in.DateHired, in.PresentDate) < 1 {
		return &SILResult{
			Outcome: OutcomeNotYetEligible,
			Remark:  "at least one year of service is required",
		}, nil
	}

	daysWorked := DaysBetweenInclusive(in.ReferenceDate, in.PresentDate)
	pay := decimal.NewFromInt(int64(daysWorked)).
		Mul(peso(in.DailyRate)).
		Mul(decimal.NewFromInt(SILDaysPerYear)).
		Div(decimal.NewFromInt(DaysPerYear))

	return &SILResult{
		Outcome:    OutcomeComputed,
		DaysWorked: daysWorked,
		Pay:        truncatedPesos(pay),
	}, nil
}
