package calc

import "github.com/shopspring/decimal"

// Money helpers. All pay amounts are computed with decimal arithmetic and
// rounded once, at the end, under the calculator's own policy: most round
// half-up to centavos, premium/retirement/conversion round to whole pesos,
// and SIL truncates.

func peso(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func centavos(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func wholePesos(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

func truncatedPesos(d decimal.Decimal) decimal.Decimal {
	return d.Floor()
}
