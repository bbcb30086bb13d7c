package calc

// Outcome distinguishes a computed amount from a legitimate non-monetary
// result. Ineligibility is not an error: the caller must render a status,
// not a zero peso amount.
type Outcome string

const (
	OutcomeComputed           Outcome = "computed"
	OutcomeNotYetEligible     Outcome = "not_yet_eligible"
	OutcomeNotEligible        Outcome = "not_eligible"
	OutcomeInsufficientTenure Outcome = "insufficient_tenure"
	OutcomeNoHolidaysInRange  Outcome = "no_holidays_in_range"
)
