package holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyLister struct {
	holidays []Holiday
	err      error
}

func (f *flakyLister) List(_ context.Context) ([]Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.holidays, nil
}

func TestServiceServesLiveList(t *testing.T) {
	store := &flakyLister{holidays: []Holiday{
		{ID: "h1", Name: "New Year's Day", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewService(store, nil)

	holidays, cached, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, holidays, 1)
}

func TestServiceFallsBackToCachedList(t *testing.T) {
	store := &flakyLister{holidays: []Holiday{
		{ID: "h1", Name: "New Year's Day", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "h2", Name: "Rizal Day", Date: time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewService(store, nil)

	_, _, err := svc.List(context.Background())
	require.NoError(t, err)

	store.err = errors.New("connection refused")
	holidays, cached, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Len(t, holidays, 2)
}

func TestServiceWithoutCacheSurfacesUnavailable(t *testing.T) {
	store := &flakyLister{err: errors.New("connection refused")}
	svc := NewService(store, nil)

	_, _, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestServiceInvalidateDropsCache(t *testing.T) {
	store := &flakyLister{holidays: []Holiday{{ID: "h1", Name: "Labor Day"}}}
	svc := NewService(store, nil)

	_, _, err := svc.List(context.Background())
	require.NoError(t, err)

	svc.Invalidate()
	store.err = errors.New("connection refused")

	_, _, err = svc.List(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDatesProjection(t *testing.T) {
	holidays := []Holiday{
		{ID: "h1", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "h2", Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)},
	}
	dates := Dates(holidays)
	require.Len(t, dates, 2)
	assert.Equal(t, holidays[1].Date, dates[1])
}
