package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nazaaralive/internal/domain"
)

type venueService struct {
	venueRepo      domain.VenueRepository
	contextTimeout time.Duration
}

func NewVenueService(venueRepo domain.VenueRepository, timeout time.Duration) domain.VenueService {
	return &venueService{venueRepo: venueRepo, contextTimeout: timeout}
}

func (s *venueService) CreateVenue(ctx context.Context, fields domain.VenueFields) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if fields.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	slug, err := resolveSlug(ctx, s.venueRepo, fields.Name, fields.Slug, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	venue := domain.NewVenue(fields.Name, slug, fields.City, fields.Country, now, now)
	venue.Address = fields.Address
	venue.Capacity = fields.Capacity
	venue.MapURL = fields.MapURL

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) GetVenueByID(ctx context.Context, id string) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	if venues == nil {
		venues = []*domain.Venue{}
	}
	return venues, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id string, fields domain.VenueFields) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if fields.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	slug, err := resolveSlug(ctx, s.venueRepo, fields.Name, fields.Slug, id)
	if err != nil {
		return nil, err
	}

	venue.Name = fields.Name
	venue.Slug = slug
	venue.City = fields.City
	venue.Country = fields.Country
	venue.Address = fields.Address
	venue.Capacity = fields.Capacity
	venue.MapURL = fields.MapURL
	venue.UpdatedAt = time.Now()

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}
