package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

// Table: attributes (id, shop_id, code, name jsonb, type, unit jsonb,
// created_at, updated_at, created_by). UNIQUE (shop_id, lower(code)).
type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, a *model.Attribute) error {
	query := `
        INSERT INTO attributes (id, shop_id, code, name, type, unit, created_at, updated_at, created_by)
        VALUES (:id, :shop_id, :code, :name, :type, :unit, :created_at, :updated_at, :created_by)
    `
	_, err := r.DB.NamedExecContext(ctx, query, a)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return apperr.Duplicate("code", a.Code)
	}
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, shopID, id string) (*model.Attribute, error) {
	var attr model.Attribute
	query := `SELECT * FROM attributes WHERE shop_id = $1 AND id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &attr, query, shopID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &attr, nil
}

func (r *PGRepository) FindByIDs(ctx context.Context, shopID string, ids []string) ([]model.Attribute, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var attrs []model.Attribute
	query := `SELECT * FROM attributes WHERE shop_id = $1 AND id = ANY($2)`
	err := r.DB.SelectContext(ctx, &attrs, query, shopID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return attrs, nil
}

func (r *PGRepository) FindByCode(ctx context.Context, shopID, code string) (*model.Attribute, error) {
	var attr model.Attribute
	query := `SELECT * FROM attributes WHERE shop_id = $1 AND lower(code) = lower($2) LIMIT 1`
	err := r.DB.GetContext(ctx, &attr, query, shopID, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &attr, nil
}

func (r *PGRepository) FindAllByShop(ctx context.Context, shopID string) ([]model.Attribute, error) {
	var attrs []model.Attribute
	query := `SELECT * FROM attributes WHERE shop_id = $1 ORDER BY code ASC`
	err := r.DB.SelectContext(ctx, &attrs, query, shopID)
	if err != nil {
		return nil, err
	}
	return attrs, nil
}

func (r *PGRepository) Update(ctx context.Context, a *model.Attribute) error {
	query := `
        UPDATE attributes
        SET name = :name,
            unit = :unit,
            updated_at = :updated_at
        WHERE id = :id AND shop_id = :shop_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, a)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, shopID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM attributes WHERE shop_id = $1 AND id = $2", shopID, id)
	return err
}
