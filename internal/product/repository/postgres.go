package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/internal/product/query"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

// Table: products (id, shop_id, merchant_id, product_number, sku, name jsonb,
// description jsonb, short_description jsonb, price, product_type,
// is_promotion_product, parent_id, attributes jsonb, category_ids text[],
// featured_media_id, gallery_ids text[], description_gallery_ids text[],
// related_product_ids text[], reward_payout, availability, stock_ready_date,
// created_at, updated_at, created_by).
// UNIQUE (shop_id, lower(sku)), UNIQUE (shop_id, product_number).
type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// mapUniqueViolation attributes a 23505 to the column whose constraint fired,
// so a product_number collision is not reported as a sku conflict.
func mapUniqueViolation(err error, p *model.Product) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return err
	}
	if strings.Contains(pqErr.Constraint, "product_number") {
		return apperr.Duplicate("productNumber", strconv.FormatInt(p.ProductNumber, 10))
	}
	return apperr.Duplicate("sku", p.SKU)
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, shop_id, merchant_id, product_number, sku, name, description,
            short_description, price, product_type, is_promotion_product,
            parent_id, attributes, category_ids, featured_media_id, gallery_ids,
            description_gallery_ids, related_product_ids, reward_payout,
            availability, stock_ready_date, created_at, updated_at, created_by
        )
        VALUES (
            :id, :shop_id, :merchant_id, :product_number, :sku, :name, :description,
            :short_description, :price, :product_type, :is_promotion_product,
            :parent_id, :attributes, :category_ids, :featured_media_id, :gallery_ids,
            :description_gallery_ids, :related_product_ids, :reward_payout,
            :availability, :stock_ready_date, :created_at, :updated_at, :created_by
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return mapUniqueViolation(err, p)
}

func (r *PGRepository) FindByID(ctx context.Context, shopID, id string) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE shop_id = $1 AND id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, shopID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindByIDs(ctx context.Context, shopID string, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []model.Product
	query := `SELECT * FROM products WHERE shop_id = $1 AND id = ANY($2)`
	err := r.DB.SelectContext(ctx, &products, query, shopID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) FindByParentID(ctx context.Context, shopID, parentID string) ([]model.Product, error) {
	var products []model.Product
	query := `SELECT * FROM products WHERE shop_id = $1 AND parent_id = $2 ORDER BY product_number ASC`
	err := r.DB.SelectContext(ctx, &products, query, shopID, parentID)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) FindAll(ctx context.Context, pred *query.Predicate, page, pageSize int) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	whereClause := pred.WhereClause()

	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, pred.Args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	listQuery := "SELECT * FROM products" + whereClause + " ORDER BY created_at DESC"
	if pageSize > 0 {
		offset := (page - 1) * pageSize
		listQuery += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, listQuery)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &products, pred.Args)
	if err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET merchant_id = :merchant_id,
            sku = :sku,
            name = :name,
            description = :description,
            short_description = :short_description,
            price = :price,
            is_promotion_product = :is_promotion_product,
            attributes = :attributes,
            category_ids = :category_ids,
            featured_media_id = :featured_media_id,
            gallery_ids = :gallery_ids,
            description_gallery_ids = :description_gallery_ids,
            related_product_ids = :related_product_ids,
            reward_payout = :reward_payout,
            availability = :availability,
            stock_ready_date = :stock_ready_date,
            updated_at = :updated_at
        WHERE id = :id AND shop_id = :shop_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return mapUniqueViolation(err, p)
}

func (r *PGRepository) Delete(ctx context.Context, shopID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE shop_id = $1 AND id = $2", shopID, id)
	return err
}

func (r *PGRepository) IsSKUUnique(ctx context.Context, shopID, sku, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM products WHERE shop_id = $1 AND lower(sku) = lower($2)`
	args := []interface{}{shopID, sku}
	if excludeID != "" {
		query += ` AND id != $3`
		args = append(args, excludeID)
	}

	err := r.DB.GetContext(ctx, &count, query, args...)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
