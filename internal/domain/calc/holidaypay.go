package calc

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkType string

const (
	WorkTypeWorked   WorkType = "worked"
	WorkTypeUnworked WorkType = "unworked"
)

type HolidayPayInput struct {
	DailyRate    float64     `json:"dailyRate"`
	PeriodFrom   time.Time   `json:"periodFrom"`
	PeriodTo     time.Time   `json:"periodTo"`
	WorkType     WorkType    `json:"workType"`
	HolidayDates []time.Time `json:"holidayDates"`
}

type HolidayPayResult struct {
	Outcome      Outcome         `json:"outcome"`
	HolidayCount int             `json:"holidayCount"`
	TotalPay     decimal.Decimal `json:"totalPay"`
}

// HolidayPay counts the supplied holiday dates falling inside the inclusive
// period and applies the worked/unworked multiplier. A period containing no
// holidays is a valid outcome, not a failure.
func HolidayPay(in HolidayPayInput) (*HolidayPayResult, error) {
	if in.DailyRate <= 0 {
		return nil, invalid("dailyRate")
	}
	if in.WorkType != WorkTypeWorked && in.WorkType != WorkTypeUnworked {
		return nil, invalid("workType")
	}
	if err := validateRange(in.PeriodFrom, in.PeriodTo); err != nil {
		return nil, err
	}

	from, to := normalizeDate(in.PeriodFrom), normalizeDate(in.PeriodTo)
	count := 0
	for _, date := range in.HolidayDates {
		d := normalizeDate(date)
		if !d.Before(from) && !d.After(to) {
			count++
		}
	}

	if count == 0 {
		return &HolidayPayResult{Outcome: OutcomeNoHolidaysInRange}, nil
	}

	pay := peso(in.DailyRate).Mul(decimal.NewFromInt(int64(count)))
	if in.WorkType == WorkTypeWorked {
		pay = pay.Mul(decimal.NewFromInt(2))
	}

	return &HolidayPayResult{
		Outcome:      OutcomeComputed,
		HolidayCount: count,
		TotalPay:     centavos(pay),
	}, nil
}
