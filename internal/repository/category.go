package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const categoryTable = "categories"

type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context, page model.Page) ([]model.Category, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, image
		FROM categories
		ORDER BY id
		LIMIT $1 OFFSET $2`, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Category])
	if err != nil {
		return nil, 0, fmt.Errorf("collect categories: %w", err)
	}
	return categories, total, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, image FROM categories WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	category, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Category])
	if err != nil {
		return nil, notFound(categoryTable, err)
	}
	return &category, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return exists, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name, image)
		VALUES ($1, $2)
		RETURNING id`, c.Name, c.Image).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *model.Category) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories SET name = $2, image = $3
		WHERE id = $1`, c.ID, c.Name, c.Image)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return expectOne(categoryTable, tag)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return expectOne(categoryTable, tag)
}
