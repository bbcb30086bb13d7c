package calc

import (
	"time"

	"github.com/shopspring/decimal"
)

type Compliance string

const (
	ComplianceNoViolation Compliance = "no_violation"
	ComplianceViolation   Compliance = "violation"
)

type MinimumWageInput struct {
	ApplicableMinimumWage float64   `json:"applicableMinimumWage"`
	ActualDailyRate       float64   `json:"actualDailyRate"`
	RestDaysPerWeek       int       `json:"restDaysPerWeek"`
	PeriodFrom            time.Time `json:"periodFrom"`
	PeriodTo              time.Time `json:"periodTo"`
}

type MinimumWageResult struct {
	WorkingPeriodDays  int             `json:"workingPeriodDays"`
	PerDayDifferential decimal.Decimal `json:"perDayDifferential"`
	TotalDifferential  decimal.Decimal `json:"totalDifferential"`
	Compliance         Compliance      `json:"compliance"`
}

// MinimumWage computes the wage shortfall over a period net of rest days.
// All validation happens before any arithmetic.
func MinimumWage(in MinimumWageInput) (*MinimumWageResult, error) {
	if in.ApplicableMinimumWage <= 0 {
		return nil, invalid("applicableMinimumWage")
	}
	if in.ActualDailyRate <= 0 {
		return nil, invalid("actualDailyRate")
	}
	if in.RestDaysPerWeek < 0 || in.RestDaysPerWeek > 7 {
		return nil, invalid("restDaysPerWeek")
	}
	if err := validateStrictRange(in.PeriodFrom, in.PeriodTo); err != nil {
		return nil, err
	}

	totalDays := DaysBetweenInclusive(in.PeriodFrom, in.PeriodTo)
	fullWeeks := totalDays / 7
	remainingDays := totalDays % 7
	extraRestDays := remainingDays * in.RestDaysPerWeek / 7
	totalRestDays := fullWeeks*in.RestDaysPerWeek + extraRestDays
	workingPeriod := totalDays - totalRestDays

	differential := peso(in.ApplicableMinimumWage).Sub(peso(in.ActualDailyRate))
	total := differential.Mul(decimal.NewFromInt(int64(workingPeriod)))

	compliance := ComplianceViolation
	if in.ActualDailyRate >= in.ApplicableMinimumWage {
		compliance = ComplianceNoViolation
	}

	return &MinimumWageResult{
		WorkingPeriodDays:  workingPeriod,
		PerDayDifferential: centavos(differential.Abs()),
		TotalDifferential:  centavos(total.Abs()),
		Compliance:         compliance,
	}, nil
}
