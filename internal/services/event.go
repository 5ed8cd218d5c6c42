package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nazaaralive/internal/domain"
	"nazaaralive/internal/forms"
)

type eventService struct {
	eventRepo      domain.EventRepository
	artistRepo     domain.ArtistRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, artistRepo domain.ArtistRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		artistRepo:     artistRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, fields domain.EventFields) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if fields.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	slug, err := resolveSlug(ctx, s.eventRepo, fields.Title, fields.Slug, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	event := domain.NewEvent(fields.Title, slug, now, now)
	applyEventFields(event, fields)
	event.Slug = slug

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, []*domain.TourStop, []*domain.ArtistRef, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, nil, domain.ErrNotFound
		}
		return nil, nil, nil, fmt.Errorf("get event: %w", err)
	}
	stops, lineup, err := s.loadEventChildren(ctx, event.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return event, stops, lineup, nil
}

func (s *eventService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Event, []*domain.TourStop, []*domain.ArtistRef, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, nil, domain.ErrNotFound
		}
		return nil, nil, nil, fmt.Errorf("get event by slug: %w", err)
	}
	if !event.Published {
		return nil, nil, nil, domain.ErrNotFound
	}
	stops, lineup, err := s.loadEventChildren(ctx, event.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return event, stops, lineup, nil
}

func (s *eventService) loadEventChildren(ctx context.Context, eventID string) ([]*domain.TourStop, []*domain.ArtistRef, error) {
	stops, err := s.eventRepo.ListStops(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("list stops: %w", err)
	}
	if stops == nil {
		stops = []*domain.TourStop{}
	}
	lineup, err := s.eventRepo.ListLineup(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("list lineup: %w", err)
	}
	if lineup == nil {
		lineup = []*domain.ArtistRef{}
	}
	return stops, lineup, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) ListPublishedEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, fields domain.EventFields) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if fields.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	slug, err := resolveSlug(ctx, s.eventRepo, fields.Title, fields.Slug, eventID)
	if err != nil {
		return nil, err
	}

	event.Title = fields.Title
	event.Slug = slug
	applyEventFields(event, fields)
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func applyEventFields(event *domain.Event, fields domain.EventFields) {
	event.Tagline = fields.Tagline
	event.Description = fields.Description
	event.StartTime = fields.StartTime
	event.EndTime = fields.EndTime
	event.VenueID = fields.VenueID
	event.HeroImageURL = fields.HeroImageURL
	event.TicketURL = fields.TicketURL
	event.Published = fields.Published
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// ReplaceStops replaces the event's tour stop list with rows parsed from the
// admin form. Indices are reassigned densely in row order.
func (s *eventService) ReplaceStops(ctx context.Context, eventID string, inputs []domain.TourStopInput) ([]*domain.TourStop, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	stops := make([]*domain.TourStop, 0, len(inputs))
	for _, in := range inputs {
		var venueID *string
		if in.VenueID != "" {
			v := in.VenueID
			venueID = &v
		}
		stops = append(stops, &domain.TourStop{
			ID:        uuid.NewString(),
			EventID:   eventID,
			City:      in.City,
			Country:   in.Country,
			VenueID:   venueID,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			TicketURL: in.TicketURL,
		})
	}
	forms.Reindex(stops, func(stop **domain.TourStop, i int) { (*stop).OrderIndex = i })

	if err := s.eventRepo.ReplaceStops(ctx, eventID, stops); err != nil {
		return nil, fmt.Errorf("replace stops: %w", err)
	}
	return stops, nil
}

// ReplaceLineup replaces the event's artist lineup. References to unknown
// artists are dropped silently; the surviving rows are reindexed densely.
func (s *eventService) ReplaceLineup(ctx context.Context, eventID string, inputs []domain.ArtistRefInput) ([]*domain.ArtistRef, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if in.ArtistID != "" {
			ids = append(ids, in.ArtistID)
		}
	}
	known := make(map[string]struct{}, len(ids))
	if len(ids) > 0 {
		artists, err := s.artistRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("resolve artists: %w", err)
		}
		for _, a := range artists {
			known[a.ID] = struct{}{}
		}
	}

	refs := make([]*domain.ArtistRef, 0, len(inputs))
	seen := make(map[string]struct{})
	for _, in := range inputs {
		if _, ok := known[in.ArtistID]; !ok {
			continue
		}
		if _, dup := seen[in.ArtistID]; dup {
			continue
		}
		seen[in.ArtistID] = struct{}{}
		refs = append(refs, &domain.ArtistRef{
			ID:       uuid.NewString(),
			EventID:  eventID,
			ArtistID: in.ArtistID,
		})
	}
	forms.Reindex(refs, func(ref **domain.ArtistRef, i int) { (*ref).OrderIndex = i })

	if err := s.eventRepo.ReplaceLineup(ctx, eventID, refs); err != nil {
		return nil, fmt.Errorf("replace lineup: %w", err)
	}
	return refs, nil
}
