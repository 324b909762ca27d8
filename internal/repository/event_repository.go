package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tebaba-backend/internal/model"
	apperrors "tebaba-backend/pkg/app_errors"
	"tebaba-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const eventColumns = `id, title, title_translations, description, description_translations,
		category, date, time, location, address, city, maps_embed_url, image_url,
		capacity, featured, status, created_at, updated_at`

type EventRepository interface {
	// Create inserts the event row first, then one association row per
	// entry. Entries referencing an unknown artist or pack are skipped
	// silently.
	Create(ctx context.Context, event *model.Event, artists []model.EventArtistEntry, packs []model.EventPackEntry) (*model.Event, error)
	List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	// Update patches the supplied base fields. A non-nil artists or packs
	// slice (including an empty one) fully replaces that association set;
	// nil leaves it untouched.
	Update(ctx context.Context, id string, params model.UpdateEventParams, artists []model.EventArtistEntry, packs []model.EventPackEntry) error
	Delete(ctx context.Context, id string) error
	SetPackSoldout(ctx context.Context, eventID, packID string, soldout bool) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
		log:  logger.WithComponent("event_repository"),
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event, artists []model.EventArtistEntry, packs []model.EventPackEntry) (*model.Event, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		INSERT INTO events (id, title, title_translations, description, description_translations,
			category, date, time, location, address, city, maps_embed_url, image_url,
			capacity, featured, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING %s
	`, eventColumns)

	err = tx.QueryRow(ctx, query,
		event.ID, event.Title, event.TitleTranslations, event.Description,
		event.DescriptionTranslations, event.Category, event.Date, event.Time,
		event.Location, event.Address, event.City, event.MapsEmbedURL,
		event.ImageURL, event.Capacity, event.Featured, event.Status,
	).Scan(scanEventFields(event)...)
	if err != nil {
		return nil, err
	}

	if err := r.insertArtistEntries(ctx, tx, event.ID, artists); err != nil {
		return nil, err
	}
	if err := r.insertPackEntries(ctx, tx, event.ID, packs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	where := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Category != nil {
		where = append(where, fmt.Sprintf("category = $%d", argPos))
		args = append(args, *filter.Category)
		argPos++
	}
	if filter.Featured != nil {
		where = append(where, fmt.Sprintf("featured = $%d", argPos))
		args = append(args, *filter.Featured)
		argPos++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	args = append(args, filter.Skip, filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		%s
		ORDER BY created_at DESC
		OFFSET $%d LIMIT $%d
	`, eventColumns, whereClause, argPos, argPos+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		if err := rows.Scan(scanEventFields(&event)...); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadAssociations(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)

	var event model.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(scanEventFields(&event)...)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	if err := r.loadAssociations(ctx, []*model.Event{&event}); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id string, params model.UpdateEventParams, artists []model.EventArtistEntry, packs []model.EventPackEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if params.HasFields() {
		if err := r.updateBaseFields(ctx, tx, id, params); err != nil {
			return err
		}
	} else {
		// Existence check so a pure association update still 404s on an
		// unknown event.
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrEventNotFound
		}
	}

	if artists != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM event_artists WHERE event_id = $1`, id); err != nil {
			return err
		}
		if err := r.insertArtistEntries(ctx, tx, id, artists); err != nil {
			return err
		}
	}
	if packs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM event_packs WHERE event_id = $1`, id); err != nil {
			return err
		}
		if err := r.insertPackEntries(ctx, tx, id, packs); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *EventRepositoryImpl) updateBaseFields(ctx context.Context, tx pgx.Tx, id string, params model.UpdateEventParams) error {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Title != nil {
		addSet("title", *params.Title)
	}
	if params.TitleTranslations != nil {
		addSet("title_translations", params.TitleTranslations)
	}
	if params.Description != nil {
		addSet("description", *params.Description)
	}
	if params.DescriptionTranslations != nil {
		addSet("description_translations", params.DescriptionTranslations)
	}
	if params.Category != nil {
		addSet("category", *params.Category)
	}
	if params.Date != nil {
		addSet("date", *params.Date)
	}
	if params.Time != nil {
		addSet("time", *params.Time)
	}
	if params.Location != nil {
		addSet("location", *params.Location)
	}
	if params.Address != nil {
		addSet("address", *params.Address)
	}
	if params.City != nil {
		addSet("city", *params.City)
	}
	if params.MapsEmbedURL != nil {
		addSet("maps_embed_url", *params.MapsEmbedURL)
	}
	if params.ImageURL != nil {
		addSet("image_url", *params.ImageURL)
	}
	if params.Capacity != nil {
		addSet("capacity", *params.Capacity)
	}
	if params.Featured != nil {
		addSet("featured", *params.Featured)
	}
	if params.Status != nil {
		addSet("status", *params.Status)
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
	`, strings.Join(sets, ", "), argPos)

	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id string) error {
	// association rows go with it via ON DELETE CASCADE
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) SetPackSoldout(ctx context.Context, eventID, packID string, soldout bool) error {
	query := `
		UPDATE event_packs
		SET is_soldout = $3
		WHERE event_id = $1 AND pack_id = $2
	`
	result, err := r.pool.Exec(ctx, query, eventID, packID, soldout)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventPackNotFound
	}
	return nil
}

// insertArtistEntries writes one lineup row per entry. The INSERT ... SELECT
// only matches when the artist row exists, so dangling artist ids degrade
// silently instead of failing the whole request.
func (r *EventRepositoryImpl) insertArtistEntries(ctx context.Context, tx pgx.Tx, eventID string, entries []model.EventArtistEntry) error {
	query := `
		INSERT INTO event_artists (event_id, artist_id, start_time, end_time, "order")
		SELECT $1, a.id, $3, $4, $5
		FROM artists a
		WHERE a.id = $2
	`
	for _, entry := range entries {
		result, err := tx.Exec(ctx, query, eventID, entry.ArtistID, entry.StartTime, entry.EndTime, entry.Order)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			r.log.Debug("skipping unknown artist reference",
				zap.String("event_id", eventID), zap.String("artist_id", entry.ArtistID))
		}
	}
	return nil
}

func (r *EventRepositoryImpl) insertPackEntries(ctx context.Context, tx pgx.Tx, eventID string, entries []model.EventPackEntry) error {
	query := `
		INSERT INTO event_packs (event_id, pack_id, is_soldout)
		SELECT $1, p.id, $3
		FROM packs p
		WHERE p.id = $2
	`
	for _, entry := range entries {
		result, err := tx.Exec(ctx, query, eventID, entry.PackID, entry.IsSoldout)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			r.log.Debug("skipping unknown pack reference",
				zap.String("event_id", eventID), zap.String("pack_id", entry.PackID))
		}
	}
	return nil
}

// loadAssociations fetches both association sets for a batch of events in
// two queries, then sorts each lineup by order.
func (r *EventRepositoryImpl) loadAssociations(ctx context.Context, events []*model.Event) error {
	byID := make(map[string]*model.Event, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		e.Artists = make([]model.EventArtist, 0)
		e.Packs = make([]model.EventPack, 0)
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}
	if len(events) == 0 {
		return nil
	}

	artistQuery := fmt.Sprintf(`
		SELECT ea.event_id, ea.start_time, ea.end_time, ea."order", %s
		FROM event_artists ea
		JOIN artists a ON a.id = ea.artist_id
		WHERE ea.event_id = ANY($1)
	`, prefixColumns("a", artistColumns))

	rows, err := r.pool.Query(ctx, artistQuery, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var eventID string
		var ea model.EventArtist
		fields := append([]interface{}{&eventID, &ea.StartTime, &ea.EndTime, &ea.Order}, scanArtistFields(&ea.Artist)...)
		if err := rows.Scan(fields...); err != nil {
			rows.Close()
			return err
		}
		if event, ok := byID[eventID]; ok {
			event.Artists = append(event.Artists, ea)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	packQuery := fmt.Sprintf(`
		SELECT ep.event_id, ep.is_soldout, %s
		FROM event_packs ep
		JOIN packs p ON p.id = ep.pack_id
		WHERE ep.event_id = ANY($1)
	`, prefixColumns("p", packColumns))

	rows, err = r.pool.Query(ctx, packQuery, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var eventID string
		var ep model.EventPack
		fields := append([]interface{}{&eventID, &ep.IsSoldout}, scanPackFields(&ep.Pack)...)
		if err := rows.Scan(fields...); err != nil {
			rows.Close()
			return err
		}
		if event, ok := byID[eventID]; ok {
			event.Packs = append(event.Packs, ep)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, e := range events {
		model.SortLineup(e.Artists)
	}
	return nil
}

func scanEventFields(e *model.Event) []interface{} {
	return []interface{}{
		&e.ID,
		&e.Title,
		&e.TitleTranslations,
		&e.Description,
		&e.DescriptionTranslations,
		&e.Category,
		&e.Date,
		&e.Time,
		&e.Location,
		&e.Address,
		&e.City,
		&e.MapsEmbedURL,
		&e.ImageURL,
		&e.Capacity,
		&e.Featured,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
}

// prefixColumns rewrites a comma-separated column list to be table-qualified.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
