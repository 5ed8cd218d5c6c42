package domain

import (
	"context"
	"time"
)

// Booking inquiry statuses.
const (
	BookingStatusNew       = "new"
	BookingStatusContacted = "contacted"
	BookingStatusClosed    = "closed"
)

// BookingInquiry is a submission from the public bookings page.
// swagger:model BookingInquiry
type BookingInquiry struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	EventType     string    `json:"event_type"`
	City          string    `json:"city"`
	Message       string    `json:"message"`
	PreferredDate string    `json:"preferred_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewBookingInquiry returns a new inquiry in status "new". ID is typically set by the repository on create.
func NewBookingInquiry(name, email, message string, createdAt time.Time) *BookingInquiry {
	return &BookingInquiry{
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    BookingStatusNew,
		CreatedAt: createdAt,
	}
}

// BookingRepository defines the interface for booking inquiry storage
type BookingRepository interface {
	Create(ctx context.Context, inquiry *BookingInquiry) error
	GetByID(ctx context.Context, id string) (*BookingInquiry, error)
	List(ctx context.Context) ([]*BookingInquiry, error)
	UpdateStatus(ctx context.Context, id, status string) (*BookingInquiry, error)
}

// BookingService defines booking inquiry operations.
type BookingService interface {
	SubmitInquiry(ctx context.Context, inquiry *BookingInquiry) error
	ListInquiries(ctx context.Context) ([]*BookingInquiry, error)
	UpdateInquiryStatus(ctx context.Context, id, status string) (*BookingInquiry, error)
}

// Mailer sends a single email. Implementations may use SES or be no-ops.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// BookingEmailData is the template data for the booking notification email.
type BookingEmailData struct {
	Name          string
	Email         string
	Phone         string
	EventType     string
	City          string
	Message       string
	PreferredDate string
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// EmailService sends domain emails rendered from templates.
type EmailService interface {
	SendBookingNotification(ctx context.Context, to string, data *BookingEmailData) error
}
