package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tebaba-backend/internal/model"
	apperrors "tebaba-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const artistColumns = `id, name, role, role_translations, description, description_translations,
		image_url, events_count, badge, instagram, show_on_website, created_at, updated_at`

type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	List(ctx context.Context, skip, limit int) ([]*model.Artist, error)
	FindByID(ctx context.Context, id string) (*model.Artist, error)
	Update(ctx context.Context, id string, params model.UpdateArtistParams) (*model.Artist, error)
	Delete(ctx context.Context, id string) error
}

type ArtistRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewArtistRepository(pool *pgxpool.Pool) ArtistRepository {
	return &ArtistRepositoryImpl{
		pool: pool,
	}
}

func (r *ArtistRepositoryImpl) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	query := fmt.Sprintf(`
		INSERT INTO artists (id, name, role, role_translations, description, description_translations,
			image_url, events_count, badge, instagram, show_on_website)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, artistColumns)

	err := r.pool.QueryRow(ctx, query,
		artist.ID, artist.Name, artist.Role, artist.RoleTranslations,
		artist.Description, artist.DescriptionTranslations, artist.ImageURL,
		artist.EventsCount, artist.Badge, artist.Instagram, artist.ShowOnWebsite,
	).Scan(scanArtistFields(artist)...)
	if err != nil {
		return nil, err
	}
	return artist, nil
}

func (r *ArtistRepositoryImpl) List(ctx context.Context, skip, limit int) ([]*model.Artist, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM artists
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`, artistColumns)

	rows, err := r.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := make([]*model.Artist, 0)
	for rows.Next() {
		var artist model.Artist
		if err := rows.Scan(scanArtistFields(&artist)...); err != nil {
			return nil, err
		}
		artists = append(artists, &artist)
	}
	return artists, rows.Err()
}

func (r *ArtistRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Artist, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM artists
		WHERE id = $1
	`, artistColumns)

	var artist model.Artist
	err := r.pool.QueryRow(ctx, query, id).Scan(scanArtistFields(&artist)...)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepositoryImpl) Update(ctx context.Context, id string, params model.UpdateArtistParams) (*model.Artist, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Name != nil {
		addSet("name", *params.Name)
	}
	if params.Role != nil {
		addSet("role", *params.Role)
	}
	if params.RoleTranslations != nil {
		addSet("role_translations", params.RoleTranslations)
	}
	if params.Description != nil {
		addSet("description", *params.Description)
	}
	if params.DescriptionTranslations != nil {
		addSet("description_translations", params.DescriptionTranslations)
	}
	if params.ImageURL != nil {
		addSet("image_url", *params.ImageURL)
	}
	if params.EventsCount != nil {
		addSet("events_count", *params.EventsCount)
	}
	if params.Badge != nil {
		addSet("badge", *params.Badge)
	}
	if params.Instagram != nil {
		addSet("instagram", *params.Instagram)
	}
	if params.ShowOnWebsite != nil {
		addSet("show_on_website", *params.ShowOnWebsite)
	}

	// An empty patch is a no-op read, so an unknown id still 404s.
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE artists
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, artistColumns)

	var artist model.Artist
	err := r.pool.QueryRow(ctx, query, args...).Scan(scanArtistFields(&artist)...)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepositoryImpl) Delete(ctx context.Context, id string) error {
	// event_artists rows go with it via ON DELETE CASCADE
	result, err := r.pool.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrArtistNotFound
	}
	return nil
}

func scanArtistFields(a *model.Artist) []interface{} {
	return []interface{}{
		&a.ID,
		&a.Name,
		&a.Role,
		&a.RoleTranslations,
		&a.Description,
		&a.DescriptionTranslations,
		&a.ImageURL,
		&a.EventsCount,
		&a.Badge,
		&a.Instagram,
		&a.ShowOnWebsite,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
}
