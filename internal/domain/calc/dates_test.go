package calc

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetweenInclusive(t *testing.T) {
	day := date(2025, 3, 15)
	if got := DaysBetweenInclusive(day, day); got != 1 {
		t.Fatalf("expected same-day range to count 1 day, got %d", got)
	}
	if got := DaysBetweenInclusive(date(2025, 1, 1), date(2025, 1, 31)); got != 31 {
		t.Fatalf("expected 31 days for January, got %d", got)
	}
	if got := DaysBetweenInclusive(date(2024, 1, 1), date(2024, 12, 31)); got != 366 {
		t.Fatalf("expected 366 days for leap year, got %d", got)
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2025, 1, 2, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(from, to); got != 1 {
		t.Fatalf("expected 1 day, got %d", got)
	}
}

func TestYearsBetween(t *testing.T) {
	hired := date(2020, 6, 15)

	if got := YearsBetween(hired, date(2021, 6, 14)); got != 0 {
		t.Fatalf("day before anniversary should be 0 years, got %d", got)
	}
	if got := YearsBetween(hired, date(2021, 6, 15)); got != 1 {
		t.Fatalf("anniversary should be 1 year, got %d", got)
	}
	if got := YearsBetween(hired, date(2030, 1, 1)); got != 9 {
		t.Fatalf("expected 9 years, got %d", got)
	}
}

func TestValidateRange(t *testing.T) {
	if err := validateRange(date(2025, 1, 2), date(2025, 1, 1)); err == nil {
		t.Fatal("expected error for reversed range")
	}
	if err := validateRange(date(2025, 1, 1), date(2025, 1, 1)); err != nil {
		t.Fatalf("same-day range should be valid: %v", err)
	}
	if err := validateStrictRange(date(2025, 1, 1), date(2025, 1, 1)); err == nil {
		t.Fatal("strict range should reject same-day span")
	}
}
