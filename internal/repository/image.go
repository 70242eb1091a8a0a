package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/jackc/pgx/v5"
)

// ImageRepository serves both image tables. They only differ in the table
// name, the owner column and the listing order.
type ImageRepository struct {
	db      DBTX
	table   string
	owner   string
	orderBy string
}

func NewProductImageRepository(db DBTX) *ImageRepository {
	return &ImageRepository{db: db, table: "product_images", owner: "product_id", orderBy: "id"}
}

func NewSaleItemImageRepository(db DBTX) *ImageRepository {
	return &ImageRepository{db: db, table: "sale_item_images", owner: "sale_item_id", orderBy: "sort_order, id"}
}

func (r *ImageRepository) selectSQL() string {
	return fmt.Sprintf(`SELECT id, %s AS owner_id, image, is_main, sort_order FROM %s`, r.owner, r.table)
}

// List returns images, optionally restricted to one owner.
func (r *ImageRepository) List(ctx context.Context, ownerID *int64) ([]model.Image, error) {
	query := r.selectSQL()
	var args []any
	if ownerID != nil {
		query += fmt.Sprintf(" WHERE %s = $1", r.owner)
		args = append(args, *ownerID)
	}
	query += " ORDER BY " + r.orderBy

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}

	images, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Image])
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", r.table, err)
	}
	return images, nil
}

// ListForOwners groups the images of several owners in one query.
func (r *ImageRepository) ListForOwners(ctx context.Context, ownerIDs []int64) (map[int64][]model.Image, error) {
	byOwner := make(map[int64][]model.Image, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return byOwner, nil
	}

	query := fmt.Sprintf("%s WHERE %s = ANY($1) ORDER BY %s", r.selectSQL(), r.owner, r.orderBy)
	rows, err := r.db.Query(ctx, query, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}

	images, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Image])
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", r.table, err)
	}
	for _, img := range images {
		byOwner[img.OwnerID] = append(byOwner[img.OwnerID], img)
	}
	return byOwner, nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id int64) (*model.Image, error) {
	rows, err := r.db.Query(ctx, r.selectSQL()+" WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}

	img, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Image])
	if err != nil {
		return nil, notFound(r.table, err)
	}
	return &img, nil
}

func (r *ImageRepository) Create(ctx context.Context, img *model.Image) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, image, is_main, sort_order) VALUES ($1, $2, $3, $4) RETURNING id`,
		r.table, r.owner)
	if err := r.db.QueryRow(ctx, query, img.OwnerID, img.Key, img.IsMain, img.SortOrder).Scan(&img.ID); err != nil {
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

func (r *ImageRepository) Update(ctx context.Context, img *model.Image) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, image = $3, is_main = $4, sort_order = $5 WHERE id = $1`,
		r.table, r.owner)
	tag, err := r.db.Exec(ctx, query, img.ID, img.OwnerID, img.Key, img.IsMain, img.SortOrder)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	return expectOne(r.table, tag)
}

func (r *ImageRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	return expectOne(r.table, tag)
}

// KeysForOwner returns the storage keys of all images attached to ownerID.
// Used to clean up objects before a cascading delete.
func (r *ImageRepository) KeysForOwner(ctx context.Context, ownerID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`SELECT image FROM %s WHERE %s = $1`, r.table, r.owner), ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s keys: %w", r.table, err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect %s keys: %w", r.table, err)
	}
	return keys, nil
}
