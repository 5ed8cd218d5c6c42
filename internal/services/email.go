package services

import (
	"context"
	"fmt"
	"log/slog"

	"nazaaralive/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendBookingNotification sends the internal alert for a new booking inquiry
// using the "booking_inquiry" template.
func (s *emailService) SendBookingNotification(ctx context.Context, to string, data *domain.BookingEmailData) error {
	if data == nil {
		return fmt.Errorf("booking notification data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("booking_inquiry", data)
	if err != nil {
		return fmt.Errorf("failed to render booking_inquiry template: %w", err)
	}
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send booking notification: %w", err)
	}
	s.logger.Info("booking notification sent", "to", to, "from_email", data.Email)
	return nil
}
