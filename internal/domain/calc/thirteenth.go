package calc

import (
	"time"

	"github.com/shopspring/decimal"
)

type ThirteenthMode string

const (
	ThirteenthModePeriod ThirteenthMode = "period"
	ThirteenthModeManual ThirteenthMode = "manual"
)

type ThirteenthMonthResult struct {
	Mode        ThirteenthMode  `json:"mode"`
	WorkingDays float64         `json:"workingDays,omitempty"`
	Pay         decimal.Decimal `json:"pay"`
}

// ThirteenthMonthFromPeriod derives 13th-month pay from a work period,
// deducting four rest days per month-equivalent per weekly rest day.
func ThirteenthMonthFromPeriod(dailyRate float64, from, to time.Time, restDaysPerWeek int) (*ThirteenthMonthResult, error) {
	if dailyRate <= 0 {
		return nil, invalid("dailyRate")
	}
	if restDaysPerWeek < 0 || restDaysPerWeek > 7 {
		return nil, invalid("restDaysPerWeek")
	}
	if err := validateStrictRange(from, to); err != nil {
		return nil, err
	}

	totalDays := DaysBetweenInclusive(from, to)
	if totalDays < ThirteenthMinDays {
		return nil, ErrInsufficientPeriod
	}

	days := decimal.NewFromInt(int64(totalDays))
	restDays := decimal.NewFromInt(int64(restDaysPerWeek * ThirteenthRestWeeks)).
		Mul(days.Div(decimal.NewFromInt(ThirteenthMinDays)))
	workingDays := days.Sub(restDays)

	pay := workingDays.Mul(peso(dailyRate)).Div(decimal.NewFromInt(ThirteenthAnnualShare))
	wd, _ := workingDays.Round(2).Float64()

	return &ThirteenthMonthResult{
		Mode:        ThirteenthModePeriod,
		WorkingDays: wd,
		Pay:         centavos(pay),
	}, nil
}

// ThirteenthMonthManual computes 13th-month pay from a month count.
// A zero monthsWorked falls back to a full year.
func ThirteenthMonthManual(dailyRate float64, monthsWorked int) (*ThirteenthMonthResult, error) {
	if dailyRate <= 0 {
		return nil, invalid("dailyRate")
	}
	if monthsWorked == 0 {
		monthsWorked = DefaultMonthsWorked
	}
	if monthsWorked < 0 {
		return nil, invalid("monthsWorked")
	}

	pay := decimal.NewFromInt(int64(monthsWorked)).
		Mul(decimal.NewFromInt(DaysPerMonth)).
		Mul(peso(dailyRate)).
		Div(decimal.NewFromInt(ManualThirteenthDivisor))

	return &ThirteenthMonthResult{
		Mode: ThirteenthModeManual,
		Pay:  centavos(pay),
	}, nil
}
