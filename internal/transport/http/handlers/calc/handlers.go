package calchandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sweldo/internal/domain/calc"
	"sweldo/internal/domain/holiday"
	"sweldo/internal/transport/http/api"
	"sweldo/internal/transport/http/middleware"
)

type Handler struct {
	Holidays *holiday.Service
}

func NewHandler(holidays *holiday.Service) *Handler {
	return &Handler{Holidays: holidays}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/calc", func(r chi.Router) {
		r.Post("/minimum-wage", h.HandleMinimumWage)
		r.Post("/overtime", h.HandleOvertime)
		r.Post("/holiday-pay", h.HandleHolidayPay)
		r.Post("/premium-pay", h.HandlePremiumPay)
		r.Post("/night-shift", h.HandleNightShift)
		r.Post("/thirteenth-month", h.HandleThirteenthMonth)
		r.Post("/sil", h.HandleSIL)
		r.Post("/retirement", h.HandleRetirement)
		r.Post("/separation", h.HandleSeparation)
		r.Post("/conversion", h.HandleConversion)
	})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}

// failCalc translates a calculator error into the envelope. Everything a
// calculator can return is caller-correctable, so the status is always 422.
func failCalc(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())

	code := "invalid_input"
	switch {
	case errors.Is(err, calc.ErrMissingInput):
		code = "missing_input"
	case errors.Is(err, calc.ErrInvalidRange):
		code = "invalid_range"
	case errors.Is(err, calc.ErrInvalidCombination):
		code = "invalid_combination"
	case errors.Is(err, calc.ErrInsufficientPeriod):
		code = "insufficient_period"
	}

	var inputErr *calc.InputError
	if errors.As(err, &inputErr) {
		api.FailField(w, http.StatusUnprocessableEntity, code, err.Error(), inputErr.Field, requestID)
		return
	}
	api.Fail(w, http.StatusUnprocessableEntity, code, err.Error(), requestID)
}

type minimumWageRequest struct {
	ApplicableMinimumWage float64 `json:"applicableMinimumWage"`
	ActualDailyRate       float64 `json:"actualDailyRate"`
	RestDaysPerWeek       int     `json:"restDaysPerWeek"`
	PeriodFrom            string  `json:"periodFrom"`
	PeriodTo              string  `json:"periodTo"`
}

func (h *Handler) HandleMinimumWage(w http.ResponseWriter, r *http.Request) {
	var req minimumWageRequest
	if !decode(w, r, &req) {
		return
	}
	from, err := calc.ParseDate("periodFrom", req.PeriodFrom)
	if err != nil {
		failCalc(w, r, err)
		return
	}
	to, err := calc.ParseDate("periodTo", req.PeriodTo)
	if err != nil {
		failCalc(w, r, err)
		return
	}

	result, err := calc.MinimumWage(calc.MinimumWageInput{
		ApplicableMinimumWage: req.ApplicableMinimumWage,
		ActualDailyRate:       req.ActualDailyRate,
		RestDaysPerWeek:       req.RestDaysPerWeek,
		PeriodFrom:            from,
		PeriodTo:              to,
	})
	if err != nil {
		failCalc(w, r, err)
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleOvertime(w http.ResponseWriter, r *http.Request) {
	var req calc.OvertimeInput
	if !decode(w, r, &req) {
		return
	}
	result, err := calc.Overtime(req)
	if err != nil {
		failCalc(w, r, err)
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

type holidayPayRequest struct {
	DailyRate  float64       `json:"dailyRate"`
	PeriodFrom string        `json:"periodFrom"`
	PeriodTo   string        `json:"periodTo"`
	WorkType   calc.WorkType `json:"workType"`
}

type holidayPayResponse struct {
	*calc.HolidayPayResult
	FromCache bool `json:"fromCache,omitempty"`
}

func (h *Handler) HandleHolidayPay(w http.ResponseWriter, r *http.Request) {
	var req holidayPayRequest
	if !decode(w, r, &req) {
		return
	}
	from, err := calc.ParseDate("periodFrom", req.PeriodFrom)
	if err != nil {
		failCalc(w, r, err)
		return
	}
	to, err := calc.ParseDate("periodTo", req.PeriodTo)
	if err != nil {
		failCalc(w, r, err)
		return
	}

	holidays, fromCache, err := h.Holidays.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusServiceUnavailable, "holidays_unavailable",
			"holiday list is unavailable and no cached copy exists", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := calc.HolidayPay(calc.HolidayPayInput{
		DailyRate:    req.DailyRate,
		PeriodFrom:   from,
		PeriodTo:     to,
		WorkType:     req.WorkType,
		HolidayDates: holiday.Dates(holidays),
	})
	if err != nil {
		failCalc(w, r, err)
		return
	}
	api.Success(w, holidayPayResponse{HolidayPayResult: result, FromCache: fromCache}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandlePremiumPay(w http.ResponseWriter, r *http.Request) {
	var req calc.PremiumPayInput
	if !decode(w, r, &req) {
		return
	}
	result, err := calc.PremiumPay(req)
	if err != nil {
		failCalc(w, r, err)
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleNightShift(w http.ResponseWriter, r *http.Request) {
	var req calc.NightShiftInput
	if !decode(w, r, &req) {
		return
	}
	result, err := calc.NightShiftDifferential(req)
	if err != nil {
		failCalc(w, r, err)
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

type thirteenthMonthRequest struct {
	Mode            calc.ThirteenthMode `json:"mode"`
	DailyRate       float64             `json:"dailyRate"`
	PeriodFrom      string              `json:"periodFrom"`
	PeriodTo        string              `json:"periodTo"`
	RestDaysPerWeek int                 `json:"restDaysPerWeek"`
	MonthsWorked    int                 `json:"monthsWorked"`
}

func (h *Handler) HandleThirteenthMonth(w http.ResponseWriter, r *http.Request) {
	var req thirteenthMonthRequest
	if !decode(w, r, &req) {
		return
	}

	var result *calc.ThirteenthMonthResult
	var err error
	switch req.Mode {
	case calc.ThirteenthModePeriod:
		fromDate, perr := calc.ParseDate("periodFrom", req.PeriodFrom)
		if perr != nil {
			failCalc(w, r, perr)
			return
		}
		toDate, perr := calc.ParseDate("periodTo", req.PeriodTo)
		if perr != nil {
			failCalc(w, r, perr)
			return
		}
		result, err = calc.ThirteenthMonthFromPeriod(req.DailyRate, fromDate, toDate, req.RestDaysPerWeek)
	case calc.ThirteenthModeManual:
		result, err = calc.ThirteenthMonthManual(req.DailyRate, req.MonthsWorked)
	default:
		api.FailField(w, http.StatusUnprocessableEntity, "invalid_input",
			"mode must be period or manual", "mode", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		failCalc(w, r, err)
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

type silRequest struct {
	DateHired     string  `json:"dateHired"`
	ReferenceDate string  `json:"referenceDate"`
	PresentDate   string  `json:"presentDate"`
	DailyRate     float64 `json:"dailyRate"`
}

func (h *Handler) HandleSIL(w http.ResponseWriter, r *http.Request) {
	var req silRequest
	if !decode(w, r, &req) {
		return
	}
	hired, err := calc.ParseDate("dateHired", req.DateHired)
	if err != nil {
		failCalc(w, r, err)
		return
	}
	reference, err := calc.ParseDate("referenceDate", req.ReferenceDate)
	if err != nil {
		failCalc(w, r, err)
		return
	}
	present, err := calc.ParseDate("presentDate", req.PresentDate)
	if err != nil {
		failCalc(w, r, err)
		return
	}

	result, err := calc.ServiceIncentiveLeave(calc.SILInput{
		DateHired:     hired,
		ReferenceDate: reference,
		PresentDate:   present,
		DailyRate:     req.DailyRate,
	})
	if err != nil {
		failCalc(w, r, err)
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

type retirementRequest struct {
	Mode           string  `json:"mode"`
	Age            int     `json:"age"`
	DailyRate      float64 `json:"dailyRate"`
	DateHired      string  `json:"dateHired"`
	DateRetirement string  `json:"dateRetirement"`
	YearsWorked    int     `json:"yearsWorked"`
}

func (h *Handler) HandleRetirement(w http.ResponseWriter, r *http.Request) {
	var req retirementRequest
	if !decode(w, r, &req) {
		return
	}

	var result *calc.RetirementResult
	var err error
	switch req.Mode {
	case "dates":
		hired, perr := calc.ParseDate("dateHired", req.DateHired)
		if perr != nil {
			failCalc(w, r, perr)
			return
		}
		retired, perr := calc.ParseDate("dateRetirement", req.DateRetirement)
		if perr != nil {
			failCalc(w, r, perr)
			return
		}
		result, err = calc.RetirementFromDates(req.Age, req.DailyRate, hired, retired)
	case "manual":
		result, err = calc.RetirementManual(req.Age, req.DailyRate, req.YearsWorked)
	default:
		api.FailField(w, http.StatusUnprocessableEntity, "invalid_input",
			"mode must be dates or manual", "mode", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		failCalc(w, r, err)
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

type separationRequest struct {
	DateHired      string                 `json:"dateHired"`
	DateTerminated string                 `json:"dateTerminated"`
	DailyRate      float64                `json:"dailyRate"`
	Reason         calc.TerminationReason `json:"reason"`
}

func (h *Handler) HandleSeparation(w http.ResponseWriter, r *http.Request) {
	var req separationRequest
	if !decode(w, r, &req) {
		return
	}
	hired, err := calc.ParseDate("dateHired", req.DateHired)
	if err != nil {
		failCalc(w, r, err)
		return
	}
	terminated, err := calc.ParseDate("dateTerminated", req.DateTerminated)
	if err != nil {
		failCalc(w, r, err)
		return
	}

	result, err := calc.SeparationPay(calc.SeparationInput{
		DateHired:      hired,
		DateTerminated: terminated,
		DailyRate:      req.DailyRate,
		Reason:         req.Reason,
	})
	if err != nil {
		failCalc(w, r, err)
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleConversion(w http.ResponseWriter, r *http.Request) {
	var req calc.ConversionInput
	if !decode(w, r, &req) {
		return
	}
	result, err := calc.DailyRateConversion(req)
	if err != nil {
		failCalc(w, r, err)
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}
