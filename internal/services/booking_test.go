package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"nazaaralive/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository for tests.
type fakeBookingRepo struct {
	byID   map[string]*domain.BookingInquiry
	nextID int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[string]*domain.BookingInquiry), nextID: 1}
}

func (f *fakeBookingRepo) Create(ctx context.Context, inquiry *domain.BookingInquiry) error {
	inquiry.ID = fmt.Sprintf("bk-%d", f.nextID)
	f.nextID++
	f.byID[inquiry.ID] = inquiry
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*domain.BookingInquiry, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBookingRepo) List(ctx context.Context) ([]*domain.BookingInquiry, error) {
	var out []*domain.BookingInquiry
	for _, b := range f.byID {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.BookingInquiry, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b.Status = status
	return b, nil
}

// fakeSettingsService returns a fixed settings document.
type fakeSettingsService struct {
	settings *domain.SiteSettings
	err      error
}

func (f *fakeSettingsService) GetSettings(ctx context.Context) (*domain.SiteSettings, error) {
	return f.settings, f.err
}

func (f *fakeSettingsService) UpdateSettings(ctx context.Context, s *domain.SiteSettings) (*domain.SiteSettings, error) {
	f.settings = s
	return s, nil
}

// fakeEmailService records sent notifications.
type fakeEmailService struct {
	sent []string
	err  error
}

func (f *fakeEmailService) SendBookingNotification(ctx context.Context, to string, data *domain.BookingEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func newTestBookingService(repo *fakeBookingRepo, settings *fakeSettingsService, email *fakeEmailService) domain.BookingService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewBookingService(repo, settings, email, logger, 2*time.Second)
}

func TestBookingService_SubmitInquiry(t *testing.T) {
	settings := &fakeSettingsService{settings: &domain.SiteSettings{BookingNotifyAddr: "bookings@nazaara.live"}}

	t.Run("stores and notifies", func(t *testing.T) {
		repo := newFakeBookingRepo()
		email := &fakeEmailService{}
		svc := newTestBookingService(repo, settings, email)

		inquiry := &domain.BookingInquiry{
			Name:    "Ayesha Khan",
			Email:   "Ayesha@Example.com",
			Message: "Private mehndi night in June",
		}
		require.NoError(t, svc.SubmitInquiry(context.Background(), inquiry))
		assert.NotEmpty(t, inquiry.ID)
		assert.Equal(t, domain.BookingStatusNew, inquiry.Status)
		assert.Equal(t, "ayesha@example.com", inquiry.Email)
		assert.Equal(t, []string{"bookings@nazaara.live"}, email.sent)
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		repo := newFakeBookingRepo()
		email := &fakeEmailService{err: fmt.Errorf("ses down")}
		svc := newTestBookingService(repo, settings, email)

		inquiry := &domain.BookingInquiry{Name: "N", Email: "n@example.com", Message: "hi"}
		require.NoError(t, svc.SubmitInquiry(context.Background(), inquiry))
		assert.NotEmpty(t, inquiry.ID)
	})

	t.Run("no notify address configured", func(t *testing.T) {
		repo := newFakeBookingRepo()
		email := &fakeEmailService{}
		svc := newTestBookingService(repo, &fakeSettingsService{settings: &domain.SiteSettings{}}, email)

		inquiry := &domain.BookingInquiry{Name: "N", Email: "n@example.com", Message: "hi"}
		require.NoError(t, svc.SubmitInquiry(context.Background(), inquiry))
		assert.Empty(t, email.sent)
	})

	t.Run("invalid input", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := newTestBookingService(repo, settings, &fakeEmailService{})

		for _, inquiry := range []*domain.BookingInquiry{
			{Email: "n@example.com", Message: "hi"},
			{Name: "N", Email: "not-an-email", Message: "hi"},
			{Name: "N", Email: "n@example.com"},
		} {
			assert.ErrorIs(t, svc.SubmitInquiry(context.Background(), inquiry), domain.ErrInvalidInput)
		}
		assert.Empty(t, repo.byID)
	})
}

func TestBookingService_UpdateInquiryStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	settings := &fakeSettingsService{settings: &domain.SiteSettings{}}
	svc := newTestBookingService(repo, settings, &fakeEmailService{})

	inquiry := &domain.BookingInquiry{Name: "N", Email: "n@example.com", Message: "hi"}
	require.NoError(t, svc.SubmitInquiry(context.Background(), inquiry))

	t.Run("valid transition", func(t *testing.T) {
		updated, err := svc.UpdateInquiryStatus(context.Background(), inquiry.ID, domain.BookingStatusContacted)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusContacted, updated.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := svc.UpdateInquiryStatus(context.Background(), inquiry.ID, "archived")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.UpdateInquiryStatus(context.Background(), "missing", domain.BookingStatusClosed)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
