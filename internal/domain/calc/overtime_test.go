package calc

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestResolveOvertimeMultiplierMatrix(t *testing.T) {
	cases := []struct {
		name  string
		flags WorkContextFlags
		want  float64
	}{
		{"ordinary day", WorkContextFlags{}, 1.25},
		{"night shift only", WorkContextFlags{NightShift: true}, 1.375},
		{"rest day", WorkContextFlags{RestDay: true}, 1.69},
		{"special day", WorkContextFlags{SpecialDay: true}, 1.69},
		{"special + rest", WorkContextFlags{SpecialDay: true, RestDay: true}, 1.95},
		{"double special + rest", WorkContextFlags{DoubleSpecialHoliday: true, RestDay: true}, 2.535},
		{"regular holiday", WorkContextFlags{RegularHoliday: true}, 2.6},
		{"regular holiday + rest", WorkContextFlags{RegularHoliday: true, RestDay: true}, 3.38},
		{"double holiday", WorkContextFlags{DoubleHoliday: true}, 3.9},
		{"double holiday + rest", WorkContextFlags{DoubleHoliday: true, RestDay: true}, 5.07},
		{"rest day night", WorkContextFlags{RestDay: true, NightShift: true}, 1.859},
		{"special day night", WorkContextFlags{SpecialDay: true, NightShift: true}, 1.859},
		{"special + rest night", WorkContextFlags{SpecialDay: true, RestDay: true, NightShift: true}, 2.145},
		{"double special + rest night", WorkContextFlags{DoubleSpecialHoliday: true, RestDay: true, NightShift: true}, 2.7885},
		{"regular holiday night", WorkContextFlags{RegularHoliday: true, NightShift: true}, 2.86},
		{"regular holiday + rest night", WorkContextFlags{RegularHoliday: true, RestDay: true, NightShift: true}, 3.718},
		{"double holiday night", WorkContextFlags{DoubleHoliday: true, NightShift: true}, 4.29},
		{"double holiday + rest night", WorkContextFlags{DoubleHoliday: true, RestDay: true, NightShift: true}, 5.577},
		{"double special alone at night has no day formula", WorkContextFlags{DoubleSpecialHoliday: true, NightShift: true}, 1.375},
	}

	for _, tc := range cases {
		got, err := ResolveOvertimeMultiplier(tc.flags)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected multiplier %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestResolveOvertimeMultiplierInvalidCombinations(t *testing.T) {
	cases := []struct {
		name  string
		flags WorkContextFlags
	}{
		{"regular + double holiday", WorkContextFlags{RegularHoliday: true, DoubleHoliday: true}},
		{"special + double special", WorkContextFlags{SpecialDay: true, DoubleSpecialHoliday: true}},
		{"all six", WorkContextFlags{
			RestDay: true, RegularHoliday: true, NightShift: true,
			SpecialDay: true, DoubleHoliday: true, DoubleSpecialHoliday: true,
		}},
		{"regular + double holiday + rest + night", WorkContextFlags{
			RegularHoliday: true, DoubleHoliday: true, RestDay: true, NightShift: true,
		}},
		{"double special alone", WorkContextFlags{DoubleSpecialHoliday: true}},
	}

	for _, tc := range cases {
		if _, err := ResolveOvertimeMultiplier(tc.flags); !errors.Is(err, ErrInvalidCombination) {
			t.Fatalf("%s: expected ErrInvalidCombination, got %v", tc.name, err)
		}
	}
}

func TestOvertimeOrdinaryDayExample(t *testing.T) {
	result, err := Overtime(OvertimeInput{OvertimeHours: 2, DailyRate: 800})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Multiplier != 1.25 {
		t.Fatalf("expected multiplier 1.25, got %v", result.Multiplier)
	}
	if result.PayCategory != "Ordinary Day" {
		t.Fatalf("expected Ordinary Day, got %q", result.PayCategory)
	}
	if !result.OvertimePay.Equal(decimal.RequireFromString("250")) {
		t.Fatalf("expected 250.00, got %s", result.OvertimePay)
	}
}

func TestOvertimePayCategory(t *testing.T) {
	flags := WorkContextFlags{RestDay: true, RegularHoliday: true, NightShift: true}
	if got := flags.PayCategory(); got != "Rest Day, Regular Holiday, Night Shift" {
		t.Fatalf("unexpected category %q", got)
	}
}

func TestOvertimeRejectsBadAmounts(t *testing.T) {
	if _, err := Overtime(OvertimeInput{OvertimeHours: 0, DailyRate: 800}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero hours, got %v", err)
	}
	if _, err := Overtime(OvertimeInput{OvertimeHours: 2, DailyRate: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative rate, got %v", err)
	}
}

func TestOvertimeInvalidCombinationComputesNoPay(t *testing.T) {
	result, err := Overtime(OvertimeInput{
		OvertimeHours: 2,
		DailyRate:     800,
		Flags:         WorkContextFlags{RegularHoliday: true, DoubleHoliday: true},
	})
	if !errors.Is(err, ErrInvalidCombination) {
		t.Fatalf("expected ErrInvalidCombination, got %v", err)
	}
	if result != nil {
		t.Fatal("no result should be produced for an invalid combination")
	}
}

func TestOvertimeIsIdempotent(t *testing.T) {
	in := OvertimeInput{
		OvertimeHours: 3.5,
		DailyRate:     645,
		Flags:         WorkContextFlags{SpecialDay: true, NightShift: true},
	}
	first, err := Overtime(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Overtime(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Multiplier != second.Multiplier || !first.OvertimePay.Equal(second.OvertimePay) {
		t.Fatalf("identical inputs produced %v and %v", first, second)
	}
}
