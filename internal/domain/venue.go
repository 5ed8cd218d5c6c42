package domain

import (
	"context"
	"time"
)

// Venue represents a club or hall events are hosted at.
// swagger:model Venue
type Venue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Address   string    `json:"address"`
	Capacity  *int      `json:"capacity"`
	MapURL    string    `json:"map_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVenue returns a new Venue with the given fields. ID is typically set by the repository on create.
func NewVenue(name, slug, city, country string, createdAt, updatedAt time.Time) *Venue {
	return &Venue{
		Name:      name,
		Slug:      slug,
		City:      city,
		Country:   country,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// VenueFields holds the updatable fields of a venue.
type VenueFields struct {
	Name     string
	Slug     string
	City     string
	Country  string
	Address  string
	Capacity *int
	MapURL   string
}

// VenueRepository defines the interface for venue storage
type VenueRepository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context) ([]*Venue, error)
	Update(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

// VenueService defines venue business operations.
type VenueService interface {
	CreateVenue(ctx context.Context, fields VenueFields) (*Venue, error)
	GetVenueByID(ctx context.Context, id string) (*Venue, error)
	ListVenues(ctx context.Context) ([]*Venue, error)
	UpdateVenue(ctx context.Context, id string, fields VenueFields) (*Venue, error)
	DeleteVenue(ctx context.Context, id string) error
}
