package domain

import (
	"context"
	"time"
)

// Gallery is a titled collection of photos, optionally tied to an event.
// swagger:model Gallery
type Gallery struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	EventID   *string   `json:"event_id"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGallery returns a new Gallery with the given fields. ID is typically set by the repository on create.
func NewGallery(title, slug string, createdAt, updatedAt time.Time) *Gallery {
	return &Gallery{
		Title:     title,
		Slug:      slug,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// GalleryImage is one photo in a gallery. OrderIndex is a dense zero-based
// position; reordering replaces the whole list and reassigns indices.
type GalleryImage struct {
	ID         string    `json:"id"`
	GalleryID  string    `json:"gallery_id"`
	URL        string    `json:"url"`
	ThumbURL   string    `json:"thumb_url"`
	Caption    string    `json:"caption"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

// GalleryImageOrder is one row of the admin reorder form
// (images[i][id], images[i][orderIndex]).
type GalleryImageOrder struct {
	ImageID string
	Caption string
}

// GalleryFields holds the updatable fields of a gallery.
type GalleryFields struct {
	Title     string
	Slug      string
	EventID   *string
	Published bool
}

// GalleryRepository defines the interface for gallery storage
type GalleryRepository interface {
	Create(ctx context.Context, gallery *Gallery) error
	GetByID(ctx context.Context, id string) (*Gallery, error)
	GetBySlug(ctx context.Context, slug string) (*Gallery, error)
	List(ctx context.Context) ([]*Gallery, error)
	ListPublished(ctx context.Context) ([]*Gallery, error)
	Update(ctx context.Context, gallery *Gallery) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	ListImages(ctx context.Context, galleryID string) ([]*GalleryImage, error)
	AddImage(ctx context.Context, image *GalleryImage) error
	RemoveImage(ctx context.Context, galleryID, imageID string) error
	ReplaceImageOrder(ctx context.Context, galleryID string, images []*GalleryImage) error
}

// ImageStore uploads image bytes to the hosted object store and returns a
// public URL. Delete removes a previously uploaded object by its key.
type ImageStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// ImageProcessor validates an uploaded image and produces the full-size and
// thumbnail JPEG variants that get stored.
type ImageProcessor interface {
	Validate(data []byte) error
	Process(data []byte) (full, thumb []byte, err error)
}

// GalleryService defines gallery business operations.
type GalleryService interface {
	CreateGallery(ctx context.Context, fields GalleryFields) (*Gallery, error)
	GetGalleryByID(ctx context.Context, id string) (*Gallery, []*GalleryImage, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*Gallery, []*GalleryImage, error)
	ListGalleries(ctx context.Context) ([]*Gallery, error)
	ListPublishedGalleries(ctx context.Context) ([]*Gallery, error)
	UpdateGallery(ctx context.Context, id string, fields GalleryFields) (*Gallery, error)
	DeleteGallery(ctx context.Context, id string) error
	UploadImage(ctx context.Context, galleryID, filename, caption string, data []byte) (*GalleryImage, error)
	RemoveImage(ctx context.Context, galleryID, imageID string) error
	ReorderImages(ctx context.Context, galleryID string, order []GalleryImageOrder) ([]*GalleryImage, error)
}
