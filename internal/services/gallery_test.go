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

// fakeGalleryRepo is an in-memory GalleryRepository for tests.
type fakeGalleryRepo struct {
	byID   map[string]*domain.Gallery
	images map[string][]*domain.GalleryImage
	nextID int
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{
		byID:   make(map[string]*domain.Gallery),
		images: make(map[string][]*domain.GalleryImage),
		nextID: 1,
	}
}

func (f *fakeGalleryRepo) Create(ctx context.Context, g *domain.Gallery) error {
	g.ID = fmt.Sprintf("gal-%d", f.nextID)
	f.nextID++
	f.byID[g.ID] = g
	return nil
}

func (f *fakeGalleryRepo) GetByID(ctx context.Context, id string) (*domain.Gallery, error) {
	if g, ok := f.byID[id]; ok {
		return g, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGalleryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Gallery, error) {
	for _, g := range f.byID {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGalleryRepo) List(ctx context.Context) ([]*domain.Gallery, error) {
	var out []*domain.Gallery
	for _, g := range f.byID {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGalleryRepo) ListPublished(ctx context.Context) ([]*domain.Gallery, error) {
	var out []*domain.Gallery
	for _, g := range f.byID {
		if g.Published {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGalleryRepo) Update(ctx context.Context, g *domain.Gallery) error {
	if _, ok := f.byID[g.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[g.ID] = g
	return nil
}

func (f *fakeGalleryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	delete(f.images, id)
	return nil
}

func (f *fakeGalleryRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	for _, g := range f.byID {
		if g.Slug == slug && g.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGalleryRepo) ListImages(ctx context.Context, galleryID string) ([]*domain.GalleryImage, error) {
	return f.images[galleryID], nil
}

func (f *fakeGalleryRepo) AddImage(ctx context.Context, image *domain.GalleryImage) error {
	f.images[image.GalleryID] = append(f.images[image.GalleryID], image)
	return nil
}

func (f *fakeGalleryRepo) RemoveImage(ctx context.Context, galleryID, imageID string) error {
	images := f.images[galleryID]
	for i, img := range images {
		if img.ID == imageID {
			f.images[galleryID] = append(images[:i], images[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeGalleryRepo) ReplaceImageOrder(ctx context.Context, galleryID string, images []*domain.GalleryImage) error {
	f.images[galleryID] = images
	return nil
}

// fakeImageStore records uploads and deletions in memory.
type fakeImageStore struct {
	objects map[string][]byte
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{objects: make(map[string][]byte)}
}

func (f *fakeImageStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.objects[key] = data
	return "https://cdn.test/" + key, nil
}

func (f *fakeImageStore) Delete(ctx context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeImageStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	for key := range f.objects {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(f.objects, key)
		}
	}
	return nil
}

// fakeProcessor passes every upload through untouched.
type fakeProcessor struct {
	validateErr error
}

func (f *fakeProcessor) Validate(data []byte) error { return f.validateErr }

func (f *fakeProcessor) Process(data []byte) ([]byte, []byte, error) {
	return data, data, nil
}

func newTestGalleryService(repo *fakeGalleryRepo, store *fakeImageStore, proc *fakeProcessor) domain.GalleryService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGalleryService(repo, store, proc, logger, 2*time.Second)
}

func TestGalleryService_UploadImage(t *testing.T) {
	repo := newFakeGalleryRepo()
	store := newFakeImageStore()
	svc := newTestGalleryService(repo, store, &fakeProcessor{})

	gallery, err := svc.CreateGallery(context.Background(), domain.GalleryFields{Title: "Dubai 2026"})
	require.NoError(t, err)
	assert.Equal(t, "dubai-2026", gallery.Slug)

	first, err := svc.UploadImage(context.Background(), gallery.ID, "crowd.jpg", "the crowd", []byte("img1"))
	require.NoError(t, err)
	assert.Equal(t, 0, first.OrderIndex)
	assert.Contains(t, first.URL, gallery.ID)
	assert.Contains(t, first.ThumbURL, "_thumb")

	second, err := svc.UploadImage(context.Background(), gallery.ID, "stage.jpg", "", []byte("img2"))
	require.NoError(t, err)
	assert.Equal(t, 1, second.OrderIndex)

	// Full and thumb variants are both stored.
	assert.Len(t, store.objects, 4)

	t.Run("validation failure", func(t *testing.T) {
		bad := newTestGalleryService(repo, store, &fakeProcessor{validateErr: fmt.Errorf("not an image")})
		_, err := bad.UploadImage(context.Background(), gallery.ID, "x.txt", "", []byte("nope"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown gallery", func(t *testing.T) {
		_, err := svc.UploadImage(context.Background(), "missing", "a.jpg", "", []byte("img"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGalleryService_RemoveImage(t *testing.T) {
	repo := newFakeGalleryRepo()
	store := newFakeImageStore()
	svc := newTestGalleryService(repo, store, &fakeProcessor{})

	gallery, err := svc.CreateGallery(context.Background(), domain.GalleryFields{Title: "Reindex Test"})
	require.NoError(t, err)

	var ids []string
	for i := 0; i < 3; i++ {
		img, err := svc.UploadImage(context.Background(), gallery.ID, fmt.Sprintf("p%d.jpg", i), "", []byte{byte(i)})
		require.NoError(t, err)
		ids = append(ids, img.ID)
	}

	// Removing the middle image closes the gap.
	require.NoError(t, svc.RemoveImage(context.Background(), gallery.ID, ids[1]))

	_, images, err := svc.GetGalleryByID(context.Background(), gallery.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, ids[0], images[0].ID)
	assert.Equal(t, 0, images[0].OrderIndex)
	assert.Equal(t, ids[2], images[1].ID)
	assert.Equal(t, 1, images[1].OrderIndex)

	t.Run("missing image", func(t *testing.T) {
		err := svc.RemoveImage(context.Background(), gallery.ID, "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGalleryService_ReorderImages(t *testing.T) {
	repo := newFakeGalleryRepo()
	store := newFakeImageStore()
	svc := newTestGalleryService(repo, store, &fakeProcessor{})

	gallery, err := svc.CreateGallery(context.Background(), domain.GalleryFields{Title: "Ordered"})
	require.NoError(t, err)

	var ids []string
	for i := 0; i < 3; i++ {
		img, err := svc.UploadImage(context.Background(), gallery.ID, fmt.Sprintf("p%d.jpg", i), "", []byte{byte(i)})
		require.NoError(t, err)
		ids = append(ids, img.ID)
	}

	reordered, err := svc.ReorderImages(context.Background(), gallery.ID, []domain.GalleryImageOrder{
		{ImageID: ids[2], Caption: "now first"},
		{ImageID: "ghost"},
		{ImageID: ids[0]},
	})
	require.NoError(t, err)
	require.Len(t, reordered, 3)
	assert.Equal(t, ids[2], reordered[0].ID)
	assert.Equal(t, "now first", reordered[0].Caption)
	assert.Equal(t, ids[0], reordered[1].ID)
	// Images omitted from the submitted order trail at the end.
	assert.Equal(t, ids[1], reordered[2].ID)
	for i, img := range reordered {
		assert.Equal(t, i, img.OrderIndex)
	}
}

func TestGalleryService_GetPublishedBySlug(t *testing.T) {
	repo := newFakeGalleryRepo()
	svc := newTestGalleryService(repo, newFakeImageStore(), &fakeProcessor{})

	gallery, err := svc.CreateGallery(context.Background(), domain.GalleryFields{Title: "Secret"})
	require.NoError(t, err)

	_, _, err = svc.GetPublishedBySlug(context.Background(), gallery.Slug)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	gallery.Published = true
	got, images, err := svc.GetPublishedBySlug(context.Background(), gallery.Slug)
	require.NoError(t, err)
	assert.Equal(t, gallery.ID, got.ID)
	assert.Empty(t, images)
}
