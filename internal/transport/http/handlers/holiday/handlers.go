package holidayhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"sweldo/internal/domain/calc"
	"sweldo/internal/domain/holiday"
	"sweldo/internal/transport/http/api"
	"sweldo/internal/transport/http/middleware"
)

type Handler struct {
	Store   *holiday.Store
	Service *holiday.Service
}

func NewHandler(store *holiday.Store, service *holiday.Service) *Handler {
	return &Handler{Store: store, Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/holidays", h.HandleList)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/holidays", h.HandleCreate)
		r.Put("/holidays/{id}", h.HandleUpdate)
		r.Delete("/holidays/{id}", h.HandleDelete)
	})
}

type listResponse struct {
	Holidays  []holiday.Holiday `json:"holidays"`
	FromCache bool              `json:"fromCache,omitempty"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	holidays, fromCache, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusServiceUnavailable, "holidays_unavailable",
			"holiday list is unavailable and no cached copy exists", requestID)
		return
	}
	api.Success(w, listResponse{Holidays: holidays, FromCache: fromCache}, requestID)
}

type holidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req holidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", requestID)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		api.FailField(w, http.StatusUnprocessableEntity, "missing_input", "name is required", "name", requestID)
		return
	}
	date, err := calc.ParseDate("date", req.Date)
	if err != nil {
		api.FailField(w, http.StatusUnprocessableEntity, "invalid_input", err.Error(), "date", requestID)
		return
	}

	id, err := h.Store.Create(r.Context(), strings.TrimSpace(req.Name), date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not create holiday", requestID)
		return
	}
	h.Service.Invalidate()

	created, err := h.Store.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not load holiday", requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	var req holidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", requestID)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		api.FailField(w, http.StatusUnprocessableEntity, "missing_input", "name is required", "name", requestID)
		return
	}
	date, err := calc.ParseDate("date", req.Date)
	if err != nil {
		api.FailField(w, http.StatusUnprocessableEntity, "invalid_input", err.Error(), "date", requestID)
		return
	}

	if err := h.Store.Update(r.Context(), id, strings.TrimSpace(req.Name), date); err != nil {
		if errors.Is(err, holiday.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "holiday not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal", "could not update holiday", requestID)
		return
	}
	h.Service.Invalidate()

	updated, err := h.Store.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not load holiday", requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, holiday.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "holiday not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal", "could not delete holiday", requestID)
		return
	}
	h.Service.Invalidate()

	api.Success(w, map[string]string{"status": "holiday deleted"}, requestID)
}
