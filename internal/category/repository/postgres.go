package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

// Table: categories (id, shop_id, code, name jsonb, slug jsonb, parent_id,
// reward_payout, created_at, updated_at, created_by).
// UNIQUE (shop_id, lower(code)).
type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, shop_id, code, name, slug, parent_id, reward_payout, created_at, updated_at, created_by)
        VALUES (:id, :shop_id, :code, :name, :slug, :parent_id, :reward_payout, :created_at, :updated_at, :created_by)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return mapUniqueViolation(err, "code", c.Code)
}

func (r *PGRepository) FindByID(ctx context.Context, shopID, id string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE shop_id = $1 AND id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, shopID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindByIDs(ctx context.Context, shopID string, ids []string) ([]model.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []model.Category
	query := `SELECT * FROM categories WHERE shop_id = $1 AND id = ANY($2)`
	err := r.DB.SelectContext(ctx, &categories, query, shopID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PGRepository) FindByCode(ctx context.Context, shopID, code string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE shop_id = $1 AND lower(code) = lower($2) LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, shopID, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindAllByShop(ctx context.Context, shopID string) ([]model.Category, error) {
	var categories []model.Category
	query := `SELECT * FROM categories WHERE shop_id = $1 ORDER BY code ASC`
	err := r.DB.SelectContext(ctx, &categories, query, shopID)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	var categories []model.Category
	var count int

	conditions := []string{"shop_id = :shop_id"}
	args := map[string]interface{}{"shop_id": f.ShopID}

	if f.ParentID != nil {
		if *f.ParentID == "" {
			conditions = append(conditions, "parent_id IS NULL")
		} else {
			conditions = append(conditions, "parent_id = :parent_id")
			args["parent_id"] = *f.ParentID
		}
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	countQuery := "SELECT count(*) FROM categories" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM categories" + whereClause + " ORDER BY code ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &categories, args)
	if err != nil {
		return nil, 0, err
	}

	return categories, count, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name,
            slug = :slug,
            parent_id = :parent_id,
            reward_payout = :reward_payout,
            updated_at = :updated_at
        WHERE id = :id AND shop_id = :shop_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, shopID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE shop_id = $1 AND id = $2", shopID, id)
	return err
}

// mapUniqueViolation turns a postgres 23505 into the duplicate-key kind so
// callers can match on it.
func mapUniqueViolation(err error, field, value string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return apperr.Duplicate(field, value)
	}
	return err
}
