package calc

import (
	"time"

	"github.com/shopspring/decimal"
)

type RetirementResult struct {
	Outcome     Outcome         `json:"outcome"`
	YearsWorked int             `json:"yearsWorked,omitempty"`
	Pay         decimal.Decimal `json:"pay"`
	Remark      string          `json:"remark,omitempty"`
}

// RetirementFromDates computes retirement pay from the hire and retirement
// dates. Both eligibility gates yield terminal outcomes, not errors.
func RetirementFromDates(age int, dailyRate float64, dateHired, dateRetirement time.Time) (*RetirementResult, error) {
	if err := validateRetirementInputs(age, dailyRate); err != nil {
		return nil, err
	}
	if err := validateStrictRange(dateHired, dateRetirement); err != nil {
		return nil, err
	}
	if age < RetirementMinAge {
		return ineligibleForRetirement("employee is below the retirement age"), nil
	}

	years := YearsBetween(dateHired, dateRetirement)
	if years < RetirementMinYears {
		return ineligibleForRetirement("at least five years of service is required"), nil
	}

	daysWorked := DaysBetweenInclusive(dateHired, dateRetirement)
	pay := decimal.NewFromInt(int64(daysWorked)).
		Div(decimal.NewFromInt(DaysPerYear)).
		Mul(peso(dailyRate)).
		Mul(decimal.NewFromFloat(RetirementPayFactor))

	return &RetirementResult{
		Outcome:     OutcomeComputed,
		YearsWorked: years,
		Pay:         wholePesos(pay),
	}, nil
}

// RetirementManual computes retirement pay from an entered tenure.
func RetirementManual(age int, dailyRate float64, yearsWorked int) (*RetirementResult, error) {
	if err := validateRetirementInputs(age, dailyRate); err != nil {
		return nil, err
	}
	if yearsWorked <= 0 {
		return nil, invalid("yearsWorked")
	}
	if age < RetirementMinAge {
		return ineligibleForRetirement("employee is below the retirement age"), nil
	}
	if yearsWorked < RetirementMinYears {
		return ineligibleForRetirement("at least five years of service is required"), nil
	}

	pay := peso(dailyRate).
		Mul(decimal.NewFromFloat(RetirementPayFactor)).
		Mul(decimal.NewFromInt(int64(yearsWorked)))

	return &RetirementResult{
		Outcome:     OutcomeComputed,
		YearsWorked: yearsWorked,
		Pay:         wholePesos(pay),
	}, nil
}

func validateRetirementInputs(age int, dailyRate float64) error {
	if age <= 0 {
		return invalid("age")
	}
	if dailyRate <= 0 {
		return invalid("dailyRate")
	}
	return nil
}

func ineligibleForRetirement(remark string) *RetirementResult {
	return &RetirementResult{Outcome: OutcomeNotEligible, Remark: remark}
}
