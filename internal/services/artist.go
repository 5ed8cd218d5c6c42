package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nazaaralive/internal/domain"
)

type artistService struct {
	artistRepo     domain.ArtistRepository
	contextTimeout time.Duration
}

func NewArtistService(artistRepo domain.ArtistRepository, timeout time.Duration) domain.ArtistService {
	return &artistService{artistRepo: artistRepo, contextTimeout: timeout}
}

func (s *artistService) CreateArtist(ctx context.Context, fields domain.ArtistFields) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if fields.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	slug, err := resolveSlug(ctx, s.artistRepo, fields.Name, fields.Slug, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	artist := domain.NewArtist(fields.Name, slug, now, now)
	artist.Bio = fields.Bio
	artist.ImageURL = fields.ImageURL
	artist.Instagram = fields.Instagram

	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	return artist, nil
}

func (s *artistService) GetArtistByID(ctx context.Context, id string) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return artist, nil
}

func (s *artistService) ListArtists(ctx context.Context) ([]*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artists, err := s.artistRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	if artists == nil {
		artists = []*domain.Artist{}
	}
	return artists, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id string, fields domain.ArtistFields) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get artist: %w", err)
	}
	if fields.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	slug, err := resolveSlug(ctx, s.artistRepo, fields.Name, fields.Slug, id)
	if err != nil {
		return nil, err
	}

	artist.Name = fields.Name
	artist.Slug = slug
	artist.Bio = fields.Bio
	artist.ImageURL = fields.ImageURL
	artist.Instagram = fields.Instagram
	artist.UpdatedAt = time.Now()

	if err := s.artistRepo.Update(ctx, artist); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update artist: %w", err)
	}
	return artist, nil
}

func (s *artistService) DeleteArtist(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.artistRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete artist: %w", err)
	}
	return nil
}
