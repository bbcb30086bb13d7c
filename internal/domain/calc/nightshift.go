package calc

import "github.com/shopspring/decimal"

type NightShiftInput struct {
	NightHours float64 `json:"nightHours"`
	DailyRate  float64 `json:"dailyRate"`
}

type NightShiftResult struct {
	Pay decimal.Decimal `json:"pay"`
}

// NightShiftDifferential is the 10% differential on the hourly rate for
// hours worked between 10pm and 6am.
func NightShiftDifferential(in NightShiftInput) (*NightShiftResult, error) {
	if in.NightHours <= 0 {
		return nil, invalid("nightHours")
	}
	if in.DailyRate <= 0 {
		return nil, invalid("dailyRate")
	}
	pay := peso(in.DailyRate).
		Div(decimal.NewFromInt(HoursPerDay)).
		Mul(decimal.NewFromFloat(in.NightHours)).
		Mul(decimal.NewFromFloat(NightShiftRate))
	return &NightShiftResult{Pay: centavos(pay)}, nil
}
