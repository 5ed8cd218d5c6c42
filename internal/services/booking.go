package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"nazaaralive/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var validBookingStatuses = map[string]struct{}{
	domain.BookingStatusNew:       {},
	domain.BookingStatusContacted: {},
	domain.BookingStatusClosed:    {},
}

type bookingService struct {
	bookingRepo     domain.BookingRepository
	settingsService domain.SettingsService
	emailService    domain.EmailService
	logger          *slog.Logger
	contextTimeout  time.Duration
}

func NewBookingService(bookingRepo domain.BookingRepository, settingsService domain.SettingsService, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.BookingService {
	return &bookingService{
		bookingRepo:     bookingRepo,
		settingsService: settingsService,
		emailService:    emailService,
		logger:          logger,
		contextTimeout:  timeout,
	}
}

// SubmitInquiry stores a public booking inquiry and notifies the configured
// address. A failed notification does not fail the submission.
func (s *bookingService) SubmitInquiry(ctx context.Context, inquiry *domain.BookingInquiry) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inquiry.Name = strings.TrimSpace(inquiry.Name)
	inquiry.Email = strings.TrimSpace(strings.ToLower(inquiry.Email))
	inquiry.Message = strings.TrimSpace(inquiry.Message)
	if inquiry.Name == "" || inquiry.Message == "" {
		return domain.ErrInvalidInput
	}
	if !emailRegexp.MatchString(inquiry.Email) {
		return domain.ErrInvalidInput
	}
	inquiry.Status = domain.BookingStatusNew
	inquiry.CreatedAt = time.Now()

	if err := s.bookingRepo.Create(ctx, inquiry); err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}

	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil || settings.BookingNotifyAddr == "" {
		if err != nil {
			s.logger.Warn("could not load settings for booking notification", "error", err)
		}
		return nil
	}
	data := &domain.BookingEmailData{
		Name:          inquiry.Name,
		Email:         inquiry.Email,
		Phone:         inquiry.Phone,
		EventType:     inquiry.EventType,
		City:          inquiry.City,
		Message:       inquiry.Message,
		PreferredDate: inquiry.PreferredDate,
	}
	if err := s.emailService.SendBookingNotification(ctx, settings.BookingNotifyAddr, data); err != nil {
		s.logger.Warn("booking notification failed", "inquiry_id", inquiry.ID, "error", err)
	}
	return nil
}

func (s *bookingService) ListInquiries(ctx context.Context) ([]*domain.BookingInquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inquiries, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	if inquiries == nil {
		inquiries = []*domain.BookingInquiry{}
	}
	return inquiries, nil
}

func (s *bookingService) UpdateInquiryStatus(ctx context.Context, id, status string) (*domain.BookingInquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, ok := validBookingStatuses[status]; !ok {
		return nil, domain.ErrInvalidInput
	}
	inquiry, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	return inquiry, nil
}
