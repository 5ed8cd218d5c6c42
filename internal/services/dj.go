package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nazaaralive/internal/domain"
)

type djService struct {
	djRepo         domain.DJRepository
	contextTimeout time.Duration
}

func NewDJService(djRepo domain.DJRepository, timeout time.Duration) domain.DJService {
	return &djService{djRepo: djRepo, contextTimeout: timeout}
}

func (s *djService) CreateDJ(ctx context.Context, fields domain.DJFields) (*domain.DJ, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if fields.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	slug, err := resolveSlug(ctx, s.djRepo, fields.Name, fields.Slug, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dj := domain.NewDJ(fields.Name, slug, now, now)
	applyDJFields(dj, fields)
	dj.Slug = slug

	if err := s.djRepo.Create(ctx, dj); err != nil {
		return nil, fmt.Errorf("create dj: %w", err)
	}
	return dj, nil
}

func (s *djService) GetDJByID(ctx context.Context, id string) (*domain.DJ, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	dj, err := s.djRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get dj: %w", err)
	}
	return dj, nil
}

func (s *djService) ListDJs(ctx context.Context) ([]*domain.DJ, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	djs, err := s.djRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list djs: %w", err)
	}
	if djs == nil {
		djs = []*domain.DJ{}
	}
	return djs, nil
}

func (s *djService) UpdateDJ(ctx context.Context, id string, fields domain.DJFields) (*domain.DJ, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	dj, err := s.djRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get dj: %w", err)
	}
	if fields.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	slug, err := resolveSlug(ctx, s.djRepo, fields.Name, fields.Slug, id)
	if err != nil {
		return nil, err
	}

	dj.Name = fields.Name
	dj.Slug = slug
	applyDJFields(dj, fields)
	dj.UpdatedAt = time.Now()

	if err := s.djRepo.Update(ctx, dj); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update dj: %w", err)
	}
	return dj, nil
}

func applyDJFields(dj *domain.DJ, fields domain.DJFields) {
	dj.Title = fields.Title
	dj.Specialty = fields.Specialty
	dj.Instagram = fields.Instagram
	dj.ImageURL = fields.ImageURL
	dj.Resident = fields.Resident
}

func (s *djService) DeleteDJ(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.djRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete dj: %w", err)
	}
	return nil
}
