package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/mirevo/shop-catalog-service/internal/model"
)

// Table: fx_rates (UNIQUE (shop_id, base, quote) is NOT enforced: the source
// feed may legitimately deliver duplicates, and conversion treats duplicates
// as ambiguous).
type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByShop(ctx context.Context, shopID string) ([]model.FXRate, error) {
	var rates []model.FXRate
	query := `SELECT * FROM fx_rates WHERE shop_id = $1`
	err := r.DB.SelectContext(ctx, &rates, query, shopID)
	if err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *PGRepository) Upsert(ctx context.Context, rate *model.FXRate) error {
	query := `
        INSERT INTO fx_rates (id, shop_id, base, quote, rate)
        VALUES (:id, :shop_id, :base, :quote, :rate)
        ON CONFLICT (id) DO UPDATE SET rate = EXCLUDED.rate
    `
	_, err := r.DB.NamedExecContext(ctx, query, rate)
	return err
}
