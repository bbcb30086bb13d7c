package calc

import (
	"time"

	"github.com/shopspring/decimal"
)

type TerminationReason string

const (
	ReasonRetirement           TerminationReason = "retirement"
	ReasonClosure              TerminationReason = "closure"
	ReasonSicknessNotCurable   TerminationReason = "sickness_not_curable"
	ReasonInstallation         TerminationReason = "installation"
	ReasonRedundancy           TerminationReason = "redundancy"
	ReasonPositionNotFeasible  TerminationReason = "position_not_feasible"
	ReasonVoluntaryResignation TerminationReason = "voluntary_resignation"
	ReasonAWOL                 TerminationReason = "awol"
)

type SeparationCategory string

const (
	CategoryHalfMonth  SeparationCategory = "half_month"
	CategoryFullMonth  SeparationCategory = "full_month"
	CategoryIneligible SeparationCategory = "ineligible"
)

// reasonCategories maps every recognized termination reason to its pay
// category. Reasons outside this map are invalid input.
var reasonCategories = map[TerminationReason]SeparationCategory{
	ReasonRetirement:           CategoryHalfMonth,
	ReasonClosure:              CategoryHalfMonth,
	ReasonSicknessNotCurable:   CategoryHalfMonth,
	ReasonInstallation:         CategoryFullMonth,
	ReasonRedundancy:           CategoryFullMonth,
	ReasonPositionNotFeasible:  CategoryFullMonth,
	ReasonVoluntaryResignation: CategoryIneligible,
	ReasonAWOL:                 CategoryIneligible,
}

type SeparationInput struct {
	DateHired      time.Time         `json:"dateHired"`
	DateTerminated time.Time         `json:"dateTerminated"`
	DailyRate      float64           `json:"dailyRate"`
	Reason         TerminationReason `json:"reason"`
}

type SeparationResult struct {
	Outcome     Outcome            `json:"outcome"`
	YearsWorked float64            `json:"yearsWorked,omitempty"`
	Category    SeparationCategory `json:"category,omitempty"`
	Pay         decimal.Decimal    `json:"pay"`
	Remark      string             `json:"remark,omitempty"`
}

// SeparationPay applies the reason-keyed half-month or full-month formula.
// Under six months of tenure, or a reason with no separation entitlement,
// is a terminal outcome rather than an error.
func SeparationPay(in SeparationInput) (*SeparationResult, error) {
	if in.DailyRate <= 0 {
		return nil, invalid("dailyRate")
	}
	category, ok := reasonCategories[in.Reason]
	if !ok {
		return nil, invalid("reason")
	}
	if err := validateRange(in.DateHired, in.DateTerminated); err != nil {
		return nil, err
	}

	yearsWorked := float64(DaysBetween(in.DateHired, in.DateTerminated)) / DaysPerYear
	if yearsWorked < SeparationMinYears {
		return &SeparationResult{
			Outcome: OutcomeInsufficientTenure,
			Remark:  "at least six months of service is required",
		}, nil
	}

	if category == CategoryIneligible {
		return &SeparationResult{
			Outcome:     OutcomeNotEligible,
			YearsWorked: yearsWorked,
			Category:    category,
			Remark:      "no separation pay is due for this termination reason",
		}, nil
	}

	pay := decimal.NewFromFloat(yearsWorked).
		Mul(peso(in.DailyRate)).
		Mul(decimal.NewFromInt(DaysPerMonth))
	if category == CategoryHalfMonth {
		pay = pay.Div(decimal.NewFromInt(2))
	}

	return &SeparationResult{
		Outcome:     OutcomeComputed,
		YearsWorked: yearsWorked,
		Category:    category,
		Pay:         centavos(pay),
	}, nil
}
