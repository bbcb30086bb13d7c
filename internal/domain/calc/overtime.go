package calc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// WorkContextFlags are the six independent day conditions an overtime hour
// can fall under. Certain combinations have no statutory formula and are
// rejected before multiplier lookup.
type WorkContextFlags struct {
	RestDay              bool `json:"restDay"`
	RegularHoliday       bool `json:"regularHoliday"`
	NightShift           bool `json:"nightShift"`
	SpecialDay           bool `json:"specialDay"`
	DoubleHoliday        bool `json:"doubleHoliday"`
	DoubleSpecialHoliday bool `json:"doubleSpecialHoliday"`
}

func (f WorkContextFlags) none() bool {
	return f == WorkContextFlags{}
}

// contains reports whether every flag set in sub is also set in f.
func (f WorkContextFlags) contains(sub WorkContextFlags) bool {
	return (!sub.RestDay || f.RestDay) &&
		(!sub.RegularHoliday || f.RegularHoliday) &&
		(!sub.NightShift || f.NightShift) &&
		(!sub.SpecialDay || f.SpecialDay) &&
		(!sub.DoubleHoliday || f.DoubleHoliday) &&
		(!sub.DoubleSpecialHoliday || f.DoubleSpecialHoliday)
}

// invalidCombinations is the closed list of flag sets with no statutory
// formula. Matching is by superset, so any input that includes one of
// these is rejected.
var invalidCombinations = []WorkContextFlags{
	{RegularHoliday: true, DoubleHoliday: true},
	{SpecialDay: true, DoubleSpecialHoliday: true},
}

// overtimeRule maps a required flag combination to its day and night-shift
// multipliers. Rules are ordered by priority: the first rule whose required
// flags are all present wins.
type overtimeRule struct {
	requires WorkContextFlags
	day      float64
	night    float64
}

var overtimeRules = []overtimeRule{
	{requires: WorkContextFlags{DoubleHoliday: true, RestDay: true}, day: 5.07, night: 5.577},
	{requires: WorkContextFlags{DoubleHoliday: true}, day: 3.9, night: 4.29},
	{requires: WorkContextFlags{RegularHoliday: true, RestDay: true}, day: 3.38, night: 3.718},
	{requires: WorkContextFlags{RegularHoliday: true}, day: 2.6, night: 2.86},
	{requires: WorkContextFlags{DoubleSpecialHoliday: true, RestDay: true}, day: 2.535, night: 2.7885},
	{requires: WorkContextFlags{SpecialDay: true, RestDay: true}, day: 1.95, night: 2.145},
	{requires: WorkContextFlags{SpecialDay: true}, day: 1.69, night: 1.859},
	{requires: WorkContextFlags{RestDay: true}, day: 1.69, night: 1.859},
}

const (
	ordinaryDayMultiplier   = 1.25
	ordinaryNightMultiplier = 1.375
)

// ResolveOvertimeMultiplier resolves the statutory multiplier for a flag
// combination, or ErrInvalidCombination when no formula exists.
func ResolveOvertimeMultiplier(flags WorkContextFlags) (float64, error) {
	for _, combo := range invalidCombinations {
		if flags.contains(combo) {
			return 0, ErrInvalidCombination
		}
	}
	for _, rule := range overtimeRules {
		if flags.contains(rule.requires) {
			if flags.NightShift {
				return rule.night, nil
			}
			return rule.day, nil
		}
	}
	if flags.NightShift {
		return ordinaryNightMultiplier, nil
	}
	if flags.none() {
		return ordinaryDayMultiplier, nil
	}
	// A day condition is set but no rule covers it (double special holiday
	// alone): no formula.
	return 0, ErrInvalidCombination
}

// PayCategory is the human-readable join of the active flags.
func (f WorkContextFlags) PayCategory() string {
	var parts []string
	if f.RestDay {
		parts = append(parts, "Rest Day")
	}
	if f.RegularHoliday {
		parts = append(parts, "Regular Holiday")
	}
	if f.NightShift {
		parts = append(parts, "Night Shift")
	}
	if f.SpecialDay {
		parts = append(parts, "Special Holiday")
	}
	if f.DoubleHoliday {
		parts = append(parts, "Double Holiday")
	}
	if f.DoubleSpecialHoliday {
		parts = append(parts, "Double Special Holiday")
	}
	if len(parts) == 0 {
		return "Ordinary Day"
	}
	return strings.Join(parts, ", ")
}

type OvertimeInput struct {
	OvertimeHours float64          `json:"overtimeHours"`
	DailyRate     float64          `json:"dailyRate"`
	Flags         WorkContextFlags `json:"flags"`
}

type OvertimeResult struct {
	Multiplier  float64         `json:"multiplier"`
	PayCategory string          `json:"payCategory"`
	OvertimePay decimal.Decimal `json:"overtimePay"`
}

// Overtime computes overtime pay as hours x (dailyRate / 8) x multiplier.
func Overtime(in OvertimeInput) (*OvertimeResult, error) {
	if in.OvertimeHours <= 0 {
		return nil, invalid("overtimeHours")
	}
	if in.DailyRate <= 0 {
		return nil, invalid("dailyRate")
	}
	multiplier, err := ResolveOvertimeMultiplier(in.Flags)
	if err != nil {
		return nil, err
	}

	hourly := peso(in.DailyRate).Div(decimal.NewFromInt(HoursPerDay))
	pay := hourly.Mul(decimal.NewFromFloat(in.OvertimeHours)).Mul(decimal.NewFromFloat(multiplier))

	return &OvertimeResult{
		Multiplier:  multiplier,
		PayCategory: in.Flags.PayCategory(),
		OvertimePay: centavos(pay),
	}, nil
}
