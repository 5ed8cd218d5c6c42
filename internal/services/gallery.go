package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nazaaralive/internal/domain"
	"nazaaralive/internal/forms"
)

type galleryService struct {
	galleryRepo    domain.GalleryRepository
	store          domain.ImageStore
	processor      domain.ImageProcessor
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewGalleryService(galleryRepo domain.GalleryRepository, store domain.ImageStore, processor domain.ImageProcessor, logger *slog.Logger, timeout time.Duration) domain.GalleryService {
	return &galleryService{
		galleryRepo:    galleryRepo,
		store:          store,
		processor:      processor,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *galleryService) CreateGallery(ctx context.Context, fields domain.GalleryFields) (*domain.Gallery, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if fields.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	slug, err := resolveSlug(ctx, s.galleryRepo, fields.Title, fields.Slug, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	gallery := domain.NewGallery(fields.Title, slug, now, now)
	gallery.EventID = fields.EventID
	gallery.Published = fields.Published

	if err := s.galleryRepo.Create(ctx, gallery); err != nil {
		return nil, fmt.Errorf("create gallery: %w", err)
	}
	return gallery, nil
}

func (s *galleryService) GetGalleryByID(ctx context.Context, id string) (*domain.Gallery, []*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	gallery, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get gallery: %w", err)
	}
	images, err := s.listImages(ctx, gallery.ID)
	if err != nil {
		return nil, nil, err
	}
	return gallery, images, nil
}

func (s *galleryService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Gallery, []*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	gallery, err := s.galleryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get gallery by slug: %w", err)
	}
	if !gallery.Published {
		return nil, nil, domain.ErrNotFound
	}
	images, err := s.listImages(ctx, gallery.ID)
	if err != nil {
		return nil, nil, err
	}
	return gallery, images, nil
}

func (s *galleryService) listImages(ctx context.Context, galleryID string) ([]*domain.GalleryImage, error) {
	images, err := s.galleryRepo.ListImages(ctx, galleryID)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	if images == nil {
		images = []*domain.GalleryImage{}
	}
	return images, nil
}

func (s *galleryService) ListGalleries(ctx context.Context) ([]*domain.Gallery, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	galleries, err := s.galleryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list galleries: %w", err)
	}
	if galleries == nil {
		galleries = []*domain.Gallery{}
	}
	return galleries, nil
}

func (s *galleryService) ListPublishedGalleries(ctx context.Context) ([]*domain.Gallery, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	galleries, err := s.galleryRepo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published galleries: %w", err)
	}
	if galleries == nil {
		galleries = []*domain.Gallery{}
	}
	return galleries, nil
}

func (s *galleryService) UpdateGallery(ctx context.Context, id string, fields domain.GalleryFields) (*domain.Gallery, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	gallery, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get gallery: %w", err)
	}
	if fields.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	slug, err := resolveSlug(ctx, s.galleryRepo, fields.Title, fields.Slug, id)
	if err != nil {
		return nil, err
	}

	gallery.Title = fields.Title
	gallery.Slug = slug
	gallery.EventID = fields.EventID
	gallery.Published = fields.Published
	gallery.UpdatedAt = time.Now()

	if err := s.galleryRepo.Update(ctx, gallery); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update gallery: %w", err)
	}
	return gallery, nil
}

func (s *galleryService) DeleteGallery(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete gallery: %w", err)
	}
	// Stored files are cleaned up best-effort; the rows are already gone.
	if err := s.store.DeleteByPrefix(ctx, galleryPrefix(id)); err != nil {
		s.logger.Warn("failed to delete gallery objects", "gallery_id", id, "error", err)
	}
	return nil
}

// UploadImage validates and processes an upload, stores the full and thumb
// variants, and appends the image at the end of the gallery's order.
func (s *galleryService) UploadImage(ctx context.Context, galleryID, filename, caption string, data []byte) (*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	gallery, err := s.galleryRepo.GetByID(ctx, galleryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get gallery: %w", err)
	}
	if err := s.processor.Validate(data); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	full, thumb, err := s.processor.Process(data)
	if err != nil {
		return nil, fmt.Errorf("process image: %w", err)
	}

	imageID := uuid.NewString()
	url, err := s.store.Upload(ctx, imageKey(gallery.ID, imageID, false), full, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	thumbURL, err := s.store.Upload(ctx, imageKey(gallery.ID, imageID, true), thumb, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	existing, err := s.listImages(ctx, gallery.ID)
	if err != nil {
		return nil, err
	}
	image := &domain.GalleryImage{
		ID:         imageID,
		GalleryID:  gallery.ID,
		URL:        url,
		ThumbURL:   thumbURL,
		Caption:    caption,
		OrderIndex: len(existing),
		CreatedAt:  time.Now(),
	}
	if err := s.galleryRepo.AddImage(ctx, image); err != nil {
		return nil, fmt.Errorf("add image: %w", err)
	}
	return image, nil
}

// RemoveImage deletes one image and closes the gap: the remaining images are
// rewritten with dense zero-based indices.
func (s *galleryService) RemoveImage(ctx context.Context, galleryID, imageID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	images, err := s.listImages(ctx, galleryID)
	if err != nil {
		return err
	}
	found := false
	remaining := make([]*domain.GalleryImage, 0, len(images))
	for _, img := range images {
		if img.ID == imageID {
			found = true
			continue
		}
		remaining = append(remaining, img)
	}
	if !found {
		return domain.ErrNotFound
	}

	if err := s.galleryRepo.RemoveImage(ctx, galleryID, imageID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("remove image: %w", err)
	}
	forms.Reindex(remaining, func(img **domain.GalleryImage, i int) { (*img).OrderIndex = i })
	if err := s.galleryRepo.ReplaceImageOrder(ctx, galleryID, remaining); err != nil {
		return fmt.Errorf("reindex images: %w", err)
	}

	if err := s.store.Delete(ctx, imageKey(galleryID, imageID, false)); err != nil {
		s.logger.Warn("failed to delete image object", "image_id", imageID, "error", err)
	}
	if err := s.store.Delete(ctx, imageKey(galleryID, imageID, true)); err != nil {
		s.logger.Warn("failed to delete thumbnail object", "image_id", imageID, "error", err)
	}
	return nil
}

// ReorderImages applies the admin's drag-sorted order. Rows referencing
// unknown images are dropped; images missing from the submitted order keep
// their relative position after the ordered ones. Indices come out dense.
func (s *galleryService) ReorderImages(ctx context.Context, galleryID string, order []domain.GalleryImageOrder) ([]*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	images, err := s.listImages(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.GalleryImage, len(images))
	for _, img := range images {
		byID[img.ID] = img
	}

	reordered := make([]*domain.GalleryImage, 0, len(images))
	placed := make(map[string]struct{}, len(order))
	for _, row := range order {
		img, ok := byID[row.ImageID]
		if !ok {
			continue
		}
		if _, dup := placed[row.ImageID]; dup {
			continue
		}
		placed[row.ImageID] = struct{}{}
		img.Caption = row.Caption
		reordered = append(reordered, img)
	}
	for _, img := range images {
		if _, ok := placed[img.ID]; !ok {
			reordered = append(reordered, img)
		}
	}
	forms.Reindex(reordered, func(img **domain.GalleryImage, i int) { (*img).OrderIndex = i })

	if err := s.galleryRepo.ReplaceImageOrder(ctx, galleryID, reordered); err != nil {
		return nil, fmt.Errorf("replace image order: %w", err)
	}
	return reordered, nil
}

func galleryPrefix(galleryID string) string {
	return fmt.Sprintf("galleries/%s/", galleryID)
}

func imageKey(galleryID, imageID string, thumb bool) string {
	if thumb {
		return fmt.Sprintf("galleries/%s/%s_thumb.jpg", galleryID, imageID)
	}
	return fmt.Sprintf("galleries/%s/%s.jpg", galleryID, imageID)
}
