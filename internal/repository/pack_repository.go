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

const packColumns = `id, name, name_translations, type, description, description_translations,
		price, currency, unit, features, features_translations, is_active, created_at, updated_at`

type PackRepository interface {
	Create(ctx context.Context, pack *model.Pack) (*model.Pack, error)
	List(ctx context.Context, skip, limit int, activeOnly bool) ([]*model.Pack, error)
	FindByID(ctx context.Context, id string) (*model.Pack, error)
	Update(ctx context.Context, id string, params model.UpdatePackParams) (*model.Pack, error)
	Delete(ctx context.Context, id string) error
}

type PackRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPackRepository(pool *pgxpool.Pool) PackRepository {
	return &PackRepositoryImpl{
		pool: pool,
	}
}

func (r *PackRepositoryImpl) Create(ctx context.Context, pack *model.Pack) (*model.Pack, error) {
	query := fmt.Sprintf(`
		INSERT INTO packs (id, name, name_translations, type, description, description_translations,
			price, currency, unit, features, features_translations, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s
	`, packColumns)

	err := r.pool.QueryRow(ctx, query,
		pack.ID, pack.Name, pack.NameTranslations, pack.Type,
		pack.Description, pack.DescriptionTranslations, pack.Price,
		pack.Currency, pack.Unit, pack.Features, pack.FeaturesTranslations, pack.IsActive,
	).Scan(scanPackFields(pack)...)
	if err != nil {
		return nil, err
	}
	return pack, nil
}

func (r *PackRepositoryImpl) List(ctx context.Context, skip, limit int, activeOnly bool) ([]*model.Pack, error) {
	where := ""
	if activeOnly {
		where = "WHERE is_active = TRUE"
	}
	query := fmt.Sprintf(`
		SELECT %s
		FROM packs
		%s
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`, packColumns, where)

	rows, err := r.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packs := make([]*model.Pack, 0)
	for rows.Next() {
		var pack model.Pack
		if err := rows.Scan(scanPackFields(&pack)...); err != nil {
			return nil, err
		}
		packs = append(packs, &pack)
	}
	return packs, rows.Err()
}

func (r *PackRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Pack, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM packs
		WHERE id = $1
	`, packColumns)

	var pack model.Pack
	err := r.pool.QueryRow(ctx, query, id).Scan(scanPackFields(&pack)...)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPackNotFound
		}
		return nil, err
	}
	return &pack, nil
}

func (r *PackRepositoryImpl) Update(ctx context.Context, id string, params model.UpdatePackParams) (*model.Pack, error) {
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
	if params.NameTranslations != nil {
		addSet("name_translations", params.NameTranslations)
	}
	if params.Type != nil {
		addSet("type", *params.Type)
	}
	if params.Description != nil {
		addSet("description", *params.Description)
	}
	if params.DescriptionTranslations != nil {
		addSet("description_translations", params.DescriptionTranslations)
	}
	if params.Price != nil {
		addSet("price", *params.Price)
	}
	if params.Currency != nil {
		addSet("currency", *params.Currency)
	}
	if params.Unit != nil {
		addSet("unit", *params.Unit)
	}
	if params.Features != nil {
		addSet("features", params.Features)
	}
	if params.FeaturesTranslations != nil {
		addSet("features_translations", params.FeaturesTranslations)
	}
	if params.IsActive != nil {
		addSet("is_active", *params.IsActive)
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
		UPDATE packs
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, packColumns)

	var pack model.Pack
	err := r.pool.QueryRow(ctx, query, args...).Scan(scanPackFields(&pack)...)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPackNotFound
		}
		return nil, err
	}
	return &pack, nil
}

func (r *PackRepositoryImpl) Delete(ctx context.Context, id string) error {
	// event_packs rows go with it via ON DELETE CASCADE
	result, err := r.pool.Exec(ctx, `DELETE FROM packs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPackNotFound
	}
	return nil
}

func scanPackFields(p *model.Pack) []interface{} {
	return []interface{}{
		&p.ID,
		&p.Name,
		&p.NameTranslations,
		&p.Type,
		&p.Description,
		&p.DescriptionTranslations,
		&p.Price,
		&p.Currency,
		&p.Unit,
		&p.Features,
		&p.FeaturesTranslations,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
