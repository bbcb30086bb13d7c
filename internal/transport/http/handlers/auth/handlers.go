package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"sweldo/internal/domain/auth"
	"sweldo/internal/domain/profile"
	"sweldo/internal/transport/http/api"
	"sweldo/internal/transport/http/middleware"
)

type Handler struct {
	Profiles  *profile.Store
	JWTSecret string
	JWTTTL    time.Duration
}

func NewHandler(profiles *profile.Store, jwtSecret string, jwtTTL time.Duration) *Handler {
	return &Handler{Profiles: profiles, JWTSecret: jwtSecret, JWTTTL: jwtTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/profile", h.HandleGetProfile)
		r.Put("/profile", h.HandleUpdateProfile)
		r.Put("/profile/password", h.HandleChangePassword)
		r.Delete("/profile", h.HandleDeleteProfile)
	})
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token   string           `json:"token"`
	Profile *profile.Profile `json:"profile"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", requestID)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		api.FailField(w, http.StatusUnprocessableEntity, "invalid_input", "a valid email is required", "email", requestID)
		return
	}
	if len(req.Password) < 8 {
		api.FailField(w, http.StatusUnprocessableEntity, "invalid_input", "password must be at least 8 characters", "password", requestID)
		return
	}
	if strings.TrimSpace(req.FullName) == "" {
		api.FailField(w, http.StatusUnprocessableEntity, "missing_input", "fullName is required", "fullName", requestID)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not process password", requestID)
		return
	}

	id, err := h.Profiles.Create(r.Context(), req.Email, hash, strings.TrimSpace(req.FullName), auth.RoleUser)
	if err != nil {
		if errors.Is(err, profile.ErrEmailTaken) {
			api.FailField(w, http.StatusConflict, "email_taken", "an account with this email already exists", "email", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal", "could not create account", requestID)
		return
	}

	p, err := h.Profiles.GetByID(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not load profile", requestID)
		return
	}
	token, err := h.issueToken(p)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not issue token", requestID)
		return
	}
	api.Created(w, tokenResponse{Token: token, Profile: p}, requestID)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", requestID)
		return
	}

	p, err := h.Profiles.GetByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// Same response for unknown email and bad password.
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect", requestID)
		return
	}
	if err := auth.CheckPassword(p.PasswordHash, req.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect", requestID)
		return
	}

	token, err := h.issueToken(p)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not issue token", requestID)
		return
	}
	api.Success(w, tokenResponse{Token: token, Profile: p}, requestID)
}

func (h *Handler) issueToken(p *profile.Profile) (string, error) {
	return auth.GenerateToken(h.JWTSecret, auth.Claims{
		UserID: p.ID,
		Email:  p.Email,
		Role:   p.Role,
	}, h.JWTTTL)
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	p, err := h.Profiles.GetByID(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "profile not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal", "could not load profile", requestID)
		return
	}
	api.Success(w, p, requestID)
}

type updateProfileRequest struct {
	FullName string `json:"fullName"`
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", requestID)
		return
	}
	if strings.TrimSpace(req.FullName) == "" {
		api.FailField(w, http.StatusUnprocessableEntity, "missing_input", "fullName is required", "fullName", requestID)
		return
	}

	if err := h.Profiles.Update(r.Context(), user.UserID, strings.TrimSpace(req.FullName)); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "profile not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal", "could not update profile", requestID)
		return
	}

	p, err := h.Profiles.GetByID(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not load profile", requestID)
		return
	}
	api.Success(w, p, requestID)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", requestID)
		return
	}
	if len(req.NewPassword) < 8 {
		api.FailField(w, http.StatusUnprocessableEntity, "invalid_input", "newPassword must be at least 8 characters", "newPassword", requestID)
		return
	}

	p, err := h.Profiles.GetByID(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not load profile", requestID)
		return
	}
	if err := auth.CheckPassword(p.PasswordHash, req.CurrentPassword); err != nil {
		api.FailField(w, http.StatusUnauthorized, "invalid_credentials", "current password is incorrect", "currentPassword", requestID)
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not process password", requestID)
		return
	}
	if err := h.Profiles.UpdatePassword(r.Context(), user.UserID, hash); err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "could not update password", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "password updated"}, requestID)
}

func (h *Handler) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	if err := h.Profiles.Delete(r.Context(), user.UserID); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "profile not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal", "could not delete profile", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "account deleted"}, requestID)
}
