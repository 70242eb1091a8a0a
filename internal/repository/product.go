package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	productTable   = "products"
	productColumns = `id, category_id, name, size, description, quantity, price,
		brand, thread_connection, thread_connection_2, armament, seal, iadc`
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns one page of products matching f, ordered by id, and the total
// number of matches.
func (r *ProductRepository) List(ctx context.Context, f model.ProductFilter, page model.Page) ([]model.Product, int, error) {
	where, args := buildProductWhere(f)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	limitArgs := append(args, page.Size, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM products %s ORDER BY id LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, limitArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, 0, fmt.Errorf("collect products: %w", err)
	}
	return products, total, nil
}

// ListAll returns every product matching f without pagination.
func (r *ProductRepository) ListAll(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	where, args := buildProductWhere(f)

	rows, err := r.db.Query(ctx, fmt.Sprintf(`SELECT %s FROM products %s ORDER BY id`, productColumns, where), args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("collect products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, notFound(productTable, err)
	}
	return &product, nil
}

func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product: %w", err)
	}
	return exists, nil
}

// GetByIDs loads products keyed by id. Missing ids are simply absent.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]model.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("collect products: %w", err)
	}

	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (category_id, name, size, description, quantity, price,
			brand, thread_connection, thread_connection_2, armament, seal, iadc)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		p.CategoryID, p.Name, p.Size, p.Description, p.Quantity, p.Price,
		p.Brand, p.ThreadConnection, p.ThreadConnection2, p.Armament, p.Seal, p.IADC,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET
			category_id = $2, name = $3, size = $4, description = $5, quantity = $6, price = $7,
			brand = $8, thread_connection = $9, thread_connection_2 = $10, armament = $11,
			seal = $12, iadc = $13
		WHERE id = $1`,
		p.ID, p.CategoryID, p.Name, p.Size, p.Description, p.Quantity, p.Price,
		p.Brand, p.ThreadConnection, p.ThreadConnection2, p.Armament, p.Seal, p.IADC,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return expectOne(productTable, tag)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return expectOne(productTable, tag)
}

// Facets counts distinct non-empty attribute values among the products
// matching f, plus the stock split.
func (r *ProductRepository) Facets(ctx context.Context, f model.ProductFilter) (*model.Facets, error) {
	where, args := buildProductWhere(f)

	facets := &model.Facets{Filters: make(map[string][]model.FacetValue, len(model.ProductAttributes))}
	for _, attr := range model.ProductAttributes {
		facets.Filters[attr] = []model.FacetValue{}
	}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE quantity > 0)
		FROM products `+where, args...).Scan(&facets.Total, &facets.Availability.InStock)
	if err != nil {
		return nil, fmt.Errorf("count facet totals: %w", err)
	}
	facets.Availability.OutOfStock = facets.Total - facets.Availability.InStock

	branches := make([]string, 0, len(model.ProductAttributes))
	for _, attr := range model.ProductAttributes {
		branches = append(branches, fmt.Sprintf(
			`SELECT '%[1]s' AS attr, %[1]s AS value, COUNT(*) AS n FROM matched
			 WHERE %[1]s IS NOT NULL AND btrim(%[1]s) <> '' GROUP BY %[1]s`, attr))
	}
	query := fmt.Sprintf(`WITH matched AS (SELECT * FROM products %s) %s ORDER BY attr, value`,
		where, strings.Join(branches, " UNION ALL "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query facets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var attr string
		var fv model.FacetValue
		if err := rows.Scan(&attr, &fv.Value, &fv.Count); err != nil {
			return nil, fmt.Errorf("scan facet: %w", err)
		}
		facets.Filters[attr] = append(facets.Filters[attr], fv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facets: %w", err)
	}

	return facets, nil
}

// FixPrices lifts missing and non-positive prices to the 0.01 minimum and
// reports how many rows of each kind were changed.
func (r *ProductRepository) FixPrices(ctx context.Context) (nullFixed, zeroFixed int64, err error) {
	tag, err := r.db.Exec(ctx, `UPDATE products SET price = 0.01 WHERE price IS NULL`)
	if err != nil {
		return 0, 0, fmt.Errorf("fix null prices: %w", err)
	}
	nullFixed = tag.RowsAffected()

	tag, err = r.db.Exec(ctx, `UPDATE products SET price = 0.01 WHERE price <= 0`)
	if err != nil {
		return nullFixed, 0, fmt.Errorf("fix zero prices: %w", err)
	}
	return nullFixed, tag.RowsAffected(), nil
}
