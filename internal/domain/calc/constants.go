package calc

// Statutory constants shared by the calculators. Divergent values observed
// across revisions of the pay rules live here so a correction is a single
// edit, not a code change.
const (
	HoursPerDay  = 8
	DaysPerYear  = 365
	DaysPerMonth = 26

	PremiumPayRate        = 0.30
	NightShiftRate        = 0.10
	SILDaysPerYear        = 5
	RetirementMinAge      = 60
	RetirementMinYears    = 5
	RetirementPayFactor   = 22.5
	SeparationMinYears    = 0.5
	DefaultMonthsWorked   = 12
	ThirteenthRestWeeks   = 4
	ThirteenthMinDays     = 30
	ThirteenthAnnualShare = 12

	// ManualThirteenthDivisor reconciles the two observed manual-mode
	// formulas (with and without a final /12). The adopted rule is
	// months * 26 * rate with no annual divisor.
	ManualThirteenthDivisor = 1

	// DefaultReferenceDailyRate is the fixed reference rate one revision of
	// the retirement rule used in place of the entered daily rate. The
	// entered rate is authoritative; the constant is kept for reference.
	DefaultReferenceDailyRate = 1000
)

// Monthly-to-daily conversion divisors per work schedule.
const (
	DivisorEveryDay    = 365 // paid all days of the year
	DivisorOneRestDay  = 313 // one rest day per week
	DivisorTwoRestDays = 261 // two rest days per week
	DivisorWorkedDays  = 26  // paid working days of a month only
)
