package holidayhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweldo/internal/domain/auth"
	"sweldo/internal/domain/holiday"
	"sweldo/internal/transport/http/api"
	"sweldo/internal/transport/http/middleware"
)

const testSecret = "test-secret"

type fixedLister struct {
	holidays []holiday.Holiday
}

func (l *fixedLister) List(context.Context) ([]holiday.Holiday, error) {
	return l.holidays, nil
}

func TestListHolidays(t *testing.T) {
	lister := &fixedLister{holidays: []holiday.Holiday{
		{ID: "1", Name: "New Year's Day", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}}
	r := chi.NewRouter()
	NewHandler(nil, holiday.NewService(lister, nil)).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/holidays", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var env api.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	holidays, ok := data["holidays"].([]any)
	require.True(t, ok)
	assert.Len(t, holidays, 1)
}

func TestMutationsRequireAdmin(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.Auth(testSecret))
	NewHandler(nil, holiday.NewService(&fixedLister{}, nil)).RegisterRoutes(r)

	userToken, err := auth.GenerateToken(testSecret, auth.Claims{UserID: "u1", Role: auth.RoleUser}, time.Hour)
	require.NoError(t, err)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/holidays"},
		{http.MethodPut, "/holidays/abc"},
		{http.MethodDelete, "/holidays/abc"},
	} {
		req := httptest.NewRequest(route.method, route.path, strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "anonymous %s %s", route.method, route.path)

		req = httptest.NewRequest(route.method, route.path, strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer "+userToken)
		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code, "non-admin %s %s", route.method, route.path)
	}
}
