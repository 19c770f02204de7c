package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mirevo/shop-catalog-service/internal/model"
)

// Table: discount_groups (id, shop_id, name, placement, products_scope,
// attach_to_cat_ids text[], attach_to_product_ids text[],
// discount_products jsonb, created_at, updated_at, created_by).
type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, g *model.DiscountGroup) error {
	query := `
        INSERT INTO discount_groups (id, shop_id, name, placement, products_scope, attach_to_cat_ids, attach_to_product_ids, discount_products, created_at, updated_at, created_by)
        VALUES (:id, :shop_id, :name, :placement, :products_scope, :attach_to_cat_ids, :attach_to_product_ids, :discount_products, :created_at, :updated_at, :created_by)
    `
	_, err := r.DB.NamedExecContext(ctx, query, g)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, shopID, id string) (*model.DiscountGroup, error) {
	var group model.DiscountGroup
	query := `SELECT * FROM discount_groups WHERE shop_id = $1 AND id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &group, query, shopID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *PGRepository) FindAllByShop(ctx context.Context, shopID string) ([]model.DiscountGroup, error) {
	var groups []model.DiscountGroup
	query := `SELECT * FROM discount_groups WHERE shop_id = $1 ORDER BY created_at DESC`
	err := r.DB.SelectContext(ctx, &groups, query, shopID)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *PGRepository) Update(ctx context.Context, g *model.DiscountGroup) error {
	query := `
        UPDATE discount_groups
        SET name = :name,
            placement = :placement,
            products_scope = :products_scope,
            attach_to_cat_ids = :attach_to_cat_ids,
            attach_to_product_ids = :attach_to_product_ids,
            discount_products = :discount_products,
            updated_at = :updated_at
        WHERE id = :id AND shop_id = :shop_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, g)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, shopID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM discount_groups WHERE shop_id = $1 AND id = $2", shopID, id)
	return err
}
