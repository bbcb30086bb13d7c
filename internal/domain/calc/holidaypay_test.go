package calc

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func holidayDates() []time.Time {
	return []time.Time{
		date(2025, 1, 1),  // New Year's Day
		date(2025, 4, 9),  // Araw ng Kagitingan
		date(2025, 6, 12), // Independence Day
		date(2025, 12, 25),
		date(2025, 12, 30), // Rizal Day
	}
}

func TestHolidayPayCountsInclusiveBounds(t *testing.T) {
	result, err := HolidayPay(HolidayPayInput{
		DailyRate:    600,
		PeriodFrom:   date(2025, 1, 1),
		PeriodTo:     date(2025, 6, 12),
		WorkType:     WorkTypeUnworked,
		HolidayDates: holidayDates(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HolidayCount != 3 {
		t.Fatalf("expected 3 holidays including both endpoints, got %d", result.HolidayCount)
	}
	if !result.TotalPay.Equal(decimal.RequireFromString("1800")) {
		t.Fatalf("expected 1800, got %s", result.TotalPay)
	}
}

func TestHolidayPayWorkedIsDoubleUnworked(t *testing.T) {
	base := HolidayPayInput{
		DailyRate:    500,
		PeriodFrom:   date(2025, 12, 1),
		PeriodTo:     date(2025, 12, 31),
		HolidayDates: holidayDates(),
	}

	base.WorkType = WorkTypeUnworked
	unworked, err := HolidayPay(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base.WorkType = WorkTypeWorked
	worked, err := HolidayPay(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !worked.TotalPay.Equal(unworked.TotalPay.Mul(decimal.NewFromInt(2))) {
		t.Fatalf("worked (%s) should be double unworked (%s)", worked.TotalPay, unworked.TotalPay)
	}
}

func TestHolidayPayEmptyRangeOutcome(t *testing.T) {
	result, err := HolidayPay(HolidayPayInput{
		DailyRate:    500,
		PeriodFrom:   date(2025, 2, 1),
		PeriodTo:     date(2025, 3, 31),
		WorkType:     WorkTypeWorked,
		HolidayDates: holidayDates(),
	})
	if err != nil {
		t.Fatalf("no holidays is an outcome, not an error: %v", err)
	}
	if result.Outcome != OutcomeNoHolidaysInRange {
		t.Fatalf("expected no_holidays_in_range, got %s", result.Outcome)
	}
	if !result.TotalPay.IsZero() {
		t.Fatalf("no pay should be computed, got %s", result.TotalPay)
	}
}

func TestHolidayPayValidation(t *testing.T) {
	if _, err := HolidayPay(HolidayPayInput{DailyRate: 0, WorkType: WorkTypeWorked}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := HolidayPay(HolidayPayInput{DailyRate: 500, WorkType: "overtime"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for work type, got %v", err)
	}
	_, err := HolidayPay(HolidayPayInput{
		DailyRate:  500,
		WorkType:   WorkTypeWorked,
		PeriodFrom: date(2025, 2, 1),
		PeriodTo:   date(2025, 1, 1),
	})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
