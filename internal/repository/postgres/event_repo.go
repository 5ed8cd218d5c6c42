package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nazaaralive/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, title, slug, tagline, description, start_time, end_time, venue_id, hero_image_url, ticket_url, published, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var venueNull sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Tagline, &e.Description,
		&e.StartTime, &e.EndTime, &venueNull, &e.HeroImageURL, &e.TicketURL,
		&e.Published, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if venueNull.Valid {
		e.VenueID = &venueNull.String
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, slug, tagline, description, start_time, end_time, venue_id, hero_image_url, ticket_url, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Tagline, e.Description, e.StartTime, e.EndTime,
		e.VenueID, e.HeroImageURL, e.TicketURL, e.Published, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *eventRepository) ListPublished(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE published = TRUE ORDER BY start_time ASC`
	return r.list(ctx, query)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, slug = $2, tagline = $3, description = $4, start_time = $5, end_time = $6,
		    venue_id = $7, hero_image_url = $8, ticket_url = $9, published = $10, updated_at = $11
		WHERE id = $12
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Slug, e.Tagline, e.Description, e.StartTime, e.EndTime,
		e.VenueID, e.HeroImageURL, e.TicketURL, e.Published, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE slug = $1 AND id <> $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *eventRepository) ListStops(ctx context.Context, eventID string) ([]*domain.TourStop, error) {
	query := `
		SELECT id, event_id, city, country, venue_id, start_time, end_time, ticket_url, order_index
		FROM tour_stops
		WHERE event_id = $1
		ORDER BY order_index ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stops := make([]*domain.TourStop, 0)
	for rows.Next() {
		s := &domain.TourStop{}
		var venueNull sql.NullString
		if err := rows.Scan(&s.ID, &s.EventID, &s.City, &s.Country, &venueNull, &s.StartTime, &s.EndTime, &s.TicketURL, &s.OrderIndex); err != nil {
			return nil, err
		}
		if venueNull.Valid {
			s.VenueID = &venueNull.String
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

// ReplaceStops deletes the event's stop list and inserts the given stops in
// one transaction. Callers assign dense order indices before the call.
func (r *eventRepository) ReplaceStops(ctx context.Context, eventID string, stops []*domain.TourStop) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tour_stops WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("delete stops: %w", err)
	}
	insert := `
		INSERT INTO tour_stops (id, event_id, city, country, venue_id, start_time, end_time, ticket_url, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, s := range stops {
		if _, err := tx.ExecContext(ctx, insert, s.ID, eventID, s.City, s.Country, s.VenueID, s.StartTime, s.EndTime, s.TicketURL, s.OrderIndex); err != nil {
			return fmt.Errorf("insert stop %s: %w", s.City, err)
		}
	}
	return tx.Commit()
}

func (r *eventRepository) ListLineup(ctx context.Context, eventID string) ([]*domain.ArtistRef, error) {
	query := `
		SELECT id, event_id, artist_id, order_index
		FROM event_artists
		WHERE event_id = $1
		ORDER BY order_index ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	refs := make([]*domain.ArtistRef, 0)
	for rows.Next() {
		ref := &domain.ArtistRef{}
		if err := rows.Scan(&ref.ID, &ref.EventID, &ref.ArtistID, &ref.OrderIndex); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// ReplaceLineup deletes the event's lineup and inserts the given refs in one
// transaction. Callers assign dense order indices before the call.
func (r *eventRepository) ReplaceLineup(ctx context.Context, eventID string, refs []*domain.ArtistRef) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_artists WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("delete lineup: %w", err)
	}
	insert := `
		INSERT INTO event_artists (id, event_id, artist_id, order_index)
		VALUES ($1, $2, $3, $4)
	`
	for _, ref := range refs {
		if _, err := tx.ExecContext(ctx, insert, ref.ID, eventID, ref.ArtistID, ref.OrderIndex); err != nil {
			return fmt.Errorf("insert lineup ref %s: %w", ref.ArtistID, err)
		}
	}
	return tx.Commit()
}
