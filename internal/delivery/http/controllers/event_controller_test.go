package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"nazaaralive/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeEventService records the arguments of the last call.
type fakeEventService struct {
	createdFields domain.EventFields
	stopInputs    []domain.TourStopInput
	lineupInputs  []domain.ArtistRefInput
	err           error
}

func (f *fakeEventService) CreateEvent(ctx context.Context, fields domain.EventFields) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdFields = fields
	return &domain.Event{ID: "ev-1", Title: fields.Title, Slug: "slug"}, nil
}

func (f *fakeEventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, []*domain.TourStop, []*domain.ArtistRef, error) {
	if f.err != nil {
		return nil, nil, nil, f.err
	}
	return &domain.Event{ID: eventID}, []*domain.TourStop{}, []*domain.ArtistRef{}, nil
}

func (f *fakeEventService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Event, []*domain.TourStop, []*domain.ArtistRef, error) {
	if f.err != nil {
		return nil, nil, nil, f.err
	}
	return &domain.Event{Slug: slug, Published: true}, []*domain.TourStop{}, []*domain.ArtistRef{}, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return []*domain.Event{}, f.err
}

func (f *fakeEventService) ListPublishedEvents(ctx context.Context) ([]*domain.Event, error) {
	return []*domain.Event{}, f.err
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, eventID string, fields domain.EventFields) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdFields = fields
	return &domain.Event{ID: eventID, Title: fields.Title}, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, eventID string) error { return f.err }

func (f *fakeEventService) ReplaceStops(ctx context.Context, eventID string, stops []domain.TourStopInput) ([]*domain.TourStop, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.stopInputs = stops
	return []*domain.TourStop{}, nil
}

func (f *fakeEventService) ReplaceLineup(ctx context.Context, eventID string, refs []domain.ArtistRefInput) ([]*domain.ArtistRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lineupInputs = refs
	return []*domain.ArtistRef{}, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestEventController_Create(t *testing.T) {
	svc := &fakeEventService{}
	ctrl := NewEventController(testLogger(), svc)

	t.Run("combines date and clock into an instant", func(t *testing.T) {
		body := `{"title":"Grand Finale","start_date":"2026-06-12","start_clock":"19:30"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "2026-06-12T19:30:00Z", svc.createdFields.StartTime)
		assert.Equal(t, "", svc.createdFields.EndTime)
	})

	t.Run("missing title", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		ctrl.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeEnvelope(t, rec)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "bad_request", errObj["code"])
	})

	t.Run("malformed clock", func(t *testing.T) {
		body := `{"title":"X","start_date":"2026-06-12","start_clock":"25:99"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.Create(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate slug maps to conflict", func(t *testing.T) {
		dup := &fakeEventService{err: domain.ErrDuplicateSlug}
		ctrl := NewEventController(testLogger(), dup)
		req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(`{"title":"X"}`))
		rec := httptest.NewRecorder()
		ctrl.Create(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestEventController_ReplaceStops(t *testing.T) {
	svc := &fakeEventService{}
	ctrl := NewEventController(testLogger(), svc)

	form := url.Values{}
	form.Set("stops[0][city]", "London")
	form.Set("stops[0][country]", "UK")
	form.Set("stops[0][startDate]", "2026-07-01")
	form.Set("stops[0][startClock]", "20:00")
	// A gap in the indices: row 2 compacts down to position 1.
	form.Set("stops[2][city]", "Lahore")
	form.Set("stops[2][venueId]", "v-9")

	req := httptest.NewRequest(http.MethodPut, "/admin/events/ev-1/stops", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("eventID", "ev-1")
	rec := httptest.NewRecorder()
	ctrl.ReplaceStops(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.stopInputs, 2)
	assert.Equal(t, "London", svc.stopInputs[0].City)
	assert.Equal(t, "2026-07-01T20:00:00Z", svc.stopInputs[0].StartTime)
	assert.Equal(t, "Lahore", svc.stopInputs[1].City)
	assert.Equal(t, "v-9", svc.stopInputs[1].VenueID)
}

func TestEventController_ReplaceLineup(t *testing.T) {
	svc := &fakeEventService{}
	ctrl := NewEventController(testLogger(), svc)

	form := url.Values{}
	form.Set("artists[0][id]", "ar-2")
	form.Set("artists[1][id]", "ar-1")

	req := httptest.NewRequest(http.MethodPut, "/admin/events/ev-1/lineup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("eventID", "ev-1")
	rec := httptest.NewRecorder()
	ctrl.ReplaceLineup(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.lineupInputs, 2)
	assert.Equal(t, "ar-2", svc.lineupInputs[0].ArtistID)
	assert.Equal(t, "ar-1", svc.lineupInputs[1].ArtistID)
}

func TestEventController_GetBySlug_NotFound(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeEventService{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
	req.SetPathValue("slug", "missing")
	rec := httptest.NewRecorder()
	ctrl.GetBySlug(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "not_found", errObj["code"])
}
