package calc

import "github.com/shopspring/decimal"

// WorkSchedule selects the statutory divisor for converting a monthly
// salary to its daily equivalent.
type WorkSchedule string

const (
	ScheduleEveryDay    WorkSchedule = "every_day"     // paid every day including rest days and holidays
	ScheduleOneRestDay  WorkSchedule = "one_rest_day"  // one rest day per week
	ScheduleTwoRestDays WorkSchedule = "two_rest_days" // two rest days per week
	ScheduleWorkedDays  WorkSchedule = "worked_days"   // paid actual working days only
)

var scheduleDivisors = map[WorkSchedule]int{
	ScheduleEveryDay:    DivisorEveryDay,
	ScheduleOneRestDay:  DivisorOneRestDay,
	ScheduleTwoRestDays: DivisorTwoRestDays,
	ScheduleWorkedDays:  DivisorWorkedDays,
}

type ConversionInput struct {
	MonthlySalary float64      `json:"monthlySalary"`
	Schedule      WorkSchedule `json:"schedule"`
}

type ConversionResult struct {
	Divisor   int             `json:"divisor"`
	DailyRate decimal.Decimal `json:"dailyRate"`
}

// DailyRateConversion converts a monthly salary to a daily rate using the
// divisor for the employee's work schedule, rounded to whole pesos. The
// worked-days divisor applies to a single month, the rest divide the
// annualized salary.
func DailyRateConversion(in ConversionInput) (*ConversionResult, error) {
	if in.MonthlySalary <= 0 {
		return nil, invalid("monthlySalary")
	}
	divisor, ok := scheduleDivisors[in.Schedule]
	if !ok {
		return nil, invalid("schedule")
	}

	salary := peso(in.MonthlySalary)
	if in.Schedule != ScheduleWorkedDays {
		salary = salary.Mul(decimal.NewFromInt(DefaultMonthsWorked))
	}
	daily := salary.Div(decimal.NewFromInt(int64(divisor)))

	return &ConversionResult{
		Divisor:   divisor,
		DailyRate: wholePesos(daily),
	}, nil
}
