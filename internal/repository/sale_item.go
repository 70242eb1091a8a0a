package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	saleItemTable   = "sale_items"
	saleItemColumns = `id, title, slug, description, old_price, new_price, is_active, created_at, updated_at`
)

type SaleItemRepository struct {
	db DBTX
}

func NewSaleItemRepository(db DBTX) *SaleItemRepository {
	return &SaleItemRepository{db: db}
}

// ListActive returns one page of active sale items, newest first.
func (r *SaleItemRepository) ListActive(ctx context.Context, page model.Page) ([]model.SaleItem, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sale_items WHERE is_active`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sale items: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT `+saleItemColumns+`
		FROM sale_items
		WHERE is_active
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list sale items: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.SaleItem])
	if err != nil {
		return nil, 0, fmt.Errorf("collect sale items: %w", err)
	}
	return items, total, nil
}

// GetBySlug returns the item regardless of its active flag.
func (r *SaleItemRepository) GetBySlug(ctx context.Context, slug string) (*model.SaleItem, error) {
	rows, err := r.db.Query(ctx, `SELECT `+saleItemColumns+` FROM sale_items WHERE slug = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("get sale item: %w", err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.SaleItem])
	if err != nil {
		return nil, notFound(saleItemTable, err)
	}
	return &item, nil
}

func (r *SaleItemRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sale_items WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check sale item: %w", err)
	}
	return exists, nil
}

func (r *SaleItemRepository) Create(ctx context.Context, s *model.SaleItem) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO sale_items (title, slug, description, old_price, new_price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		s.Title, s.Slug, s.Description, s.OldPrice, s.NewPrice, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// Update writes every mutable column of the item identified by s.ID.
func (r *SaleItemRepository) Update(ctx context.Context, s *model.SaleItem) error {
	err := r.db.QueryRow(ctx, `
		UPDATE sale_items SET
			title = $2, slug = $3, description = $4, old_price = $5, new_price = $6, is_active = $7
		WHERE id = $1
		RETURNING updated_at`,
		s.ID, s.Title, s.Slug, s.Description, s.OldPrice, s.NewPrice, s.IsActive,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return notFound(saleItemTable, err)
	}
	return nil
}

func (r *SaleItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sale_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale item: %w", err)
	}
	return expectOne(saleItemTable, tag)
}
