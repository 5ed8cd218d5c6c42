package domain

import (
	"context"
	"time"
)

// Event represents a show or tour promoted on the site.
// StartTime and EndTime are UTC instants produced by the admin form's
// date/time combiner; they carry the wall-clock values the editor saw.
// swagger:model Event
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Tagline      string    `json:"tagline"`
	Description  string    `json:"description"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	VenueID      *string   `json:"venue_id"`
	HeroImageURL string    `json:"hero_image_url"`
	TicketURL    string    `json:"ticket_url"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, slug string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:     title,
		Slug:      slug,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// TourStop is one dated stop of a touring event. OrderIndex is a dense
// zero-based position within the event's stop list; every write replaces
// the whole list and reassigns indices from scratch.
type TourStop struct {
	ID         string  `json:"id"`
	EventID    string  `json:"event_id"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	VenueID    *string `json:"venue_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	TicketURL  string  `json:"ticket_url"`
	OrderIndex int     `json:"order_index"`
}

// ArtistRef links an artist into an event's lineup at a dense zero-based position.
type ArtistRef struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	ArtistID   string `json:"artist_id"`
	OrderIndex int    `json:"order_index"`
}

// TourStopInput is the typed form of one stop row from the admin form's
// array-indexed field contract (stops[i][city], stops[i][venueId], ...).
type TourStopInput struct {
	City      string
	Country   string
	VenueID   string
	StartTime string
	EndTime   string
	TicketURL string
}

// ArtistRefInput is the typed form of one lineup row (artists[i][id]).
type ArtistRefInput struct {
	ArtistID string
}

// EventFields holds the updatable scalar fields of an event. Title drives
// slug derivation while the slug has not been manually overridden.
type EventFields struct {
	Title        string
	Slug         string
	Tagline      string
	Description  string
	StartTime    string
	EndTime      string
	VenueID      *string
	HeroImageURL string
	TicketURL    string
	Published    bool
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListPublished(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	ListStops(ctx context.Context, eventID string) ([]*TourStop, error)
	ReplaceStops(ctx context.Context, eventID string, stops []*TourStop) error
	ListLineup(ctx context.Context, eventID string) ([]*ArtistRef, error)
	ReplaceLineup(ctx context.Context, eventID string, refs []*ArtistRef) error
}

// EventService defines event business operations.
type EventService interface {
	CreateEvent(ctx context.Context, fields EventFields) (*Event, error)
	GetEventByID(ctx context.Context, eventID string) (*Event, []*TourStop, []*ArtistRef, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*Event, []*TourStop, []*ArtistRef, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListPublishedEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, eventID string, fields EventFields) (*Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	ReplaceStops(ctx context.Context, eventID string, stops []TourStopInput) ([]*TourStop, error)
	ReplaceLineup(ctx context.Context, eventID string, refs []ArtistRefInput) ([]*ArtistRef, error)
}
