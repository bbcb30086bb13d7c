package calc

import "github.com/shopspring/decimal"

type PremiumPayInput struct {
	SpecialOrRestDays float64 `json:"specialOrRestDays"`
	DailyRate         float64 `json:"dailyRate"`
}

type PremiumPayResult struct {
	PremiumPay decimal.Decimal `json:"premiumPay"`
}

// PremiumPay is the 30% premium over worked special or rest days, rounded
// to whole pesos.
func PremiumPay(in PremiumPayInput) (*PremiumPayResult, error) {
	if in.SpecialOrRestDays <= 0 {
		return nil, invalid("specialOrRestDays")
	}
	if in.DailyRate <= 0 {
		return nil, invalid("dailyRate")
	}
	pay := peso(in.DailyRate).Mul(decimal.NewFromFloat(PremiumPayRate)).Mul(decimal.NewFromFloat(in.SpecialOrRestDays))
	return &PremiumPayResult{PremiumPay: wholePesos(pay)}, nil
}
