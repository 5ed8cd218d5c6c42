package domain

import (
	"context"
	"time"
)

// Artist represents a performer that can appear in an event's lineup.
// swagger:model Artist
type Artist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Bio       string    `json:"bio"`
	ImageURL  string    `json:"image_url"`
	Instagram string    `json:"instagram"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewArtist returns a new Artist with the given fields. ID is typically set by the repository on create.
func NewArtist(name, slug string, createdAt, updatedAt time.Time) *Artist {
	return &Artist{
		Name:      name,
		Slug:      slug,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ArtistFields holds the updatable fields of an artist.
type ArtistFields struct {
	Name      string
	Slug      string
	Bio       string
	ImageURL  string
	Instagram string
}

// DJ represents a resident or guest DJ profiled on the site, separate from
// the event lineup artists.
// swagger:model DJ
type DJ struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Specialty string    `json:"specialty"`
	Instagram string    `json:"instagram"`
	ImageURL  string    `json:"image_url"`
	Resident  bool      `json:"resident"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDJ returns a new DJ with the given fields. ID is typically set by the repository on create.
func NewDJ(name, slug string, createdAt, updatedAt time.Time) *DJ {
	return &DJ{
		Name:      name,
		Slug:      slug,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// DJFields holds the updatable fields of a DJ.
type DJFields struct {
	Name      string
	Slug      string
	Title     string
	Specialty string
	Instagram string
	ImageURL  string
	Resident  bool
}

// ArtistRepository defines the interface for artist storage
type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id string) (*Artist, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Artist, error)
	List(ctx context.Context) ([]*Artist, error)
	Update(ctx context.Context, artist *Artist) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

// DJRepository defines the interface for DJ storage
type DJRepository interface {
	Create(ctx context.Context, dj *DJ) error
	GetByID(ctx context.Context, id string) (*DJ, error)
	List(ctx context.Context) ([]*DJ, error)
	Update(ctx context.Context, dj *DJ) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

// ArtistService defines artist business operations.
type ArtistService interface {
	CreateArtist(ctx context.Context, fields ArtistFields) (*Artist, error)
	GetArtistByID(ctx context.Context, id string) (*Artist, error)
	ListArtists(ctx context.Context) ([]*Artist, error)
	UpdateArtist(ctx context.Context, id string, fields ArtistFields) (*Artist, error)
	DeleteArtist(ctx context.Context, id string) error
}

// DJService defines DJ business operations.
type DJService interface {
	CreateDJ(ctx context.Context, fields DJFields) (*DJ, error)
	GetDJByID(ctx context.Context, id string) (*DJ, error)
	ListDJs(ctx context.Context) ([]*DJ, error)
	UpdateDJ(ctx context.Context, id string, fields DJFields) (*DJ, error)
	DeleteDJ(ctx context.Context, id string) error
}
