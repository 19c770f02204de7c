// Package shop is the thin lookup for per-tenant settings. Shop
// administration itself lives outside this service.
package shop

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mirevo/shop-catalog-service/internal/model"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Shop, error)
}

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Shop, error) {
	var s model.Shop
	query := `SELECT * FROM shops WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
