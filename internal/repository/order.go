package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const orderTable = "orders"

type OrderRepository struct {
	db TxBeginner
}

func NewOrderRepository(db TxBeginner) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order, its items and the denormalized products list in
// a single transaction. IDs and timestamps are written back into o.
func (r *OrderRepository) Create(ctx context.Context, o *model.Order) error {
	products, err := json.Marshal(o.Products())
	if err != nil {
		return fmt.Errorf("marshal order products: %w", err)
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO orders (status, total, phone, email, comment, first_name, last_name, company,
				country, zip_code, region, city, address, delivery_method, agreed_to_terms, products)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING id, created_at, updated_at`,
			o.Status, o.Total, o.Phone, o.Email, o.Comment, o.FirstName, o.LastName, o.Company,
			o.Country, o.ZipCode, o.Region, o.City, o.Address, o.DeliveryMethod, o.AgreedToTerms, products,
		).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i := range o.Items {
			item := &o.Items[i]
			item.OrderID = o.ID
			err := tx.QueryRow(ctx, `
				INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity, line_total)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id`,
				item.OrderID, item.ProductID, item.ProductName, item.UnitPrice, item.Quantity, item.LineTotal,
			).Scan(&item.ID)
			if err != nil {
				return fmt.Errorf("insert order item %d: %w", i, err)
			}
		}
		return nil
	})
}

// GetByID loads an order with its items.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, created_at, updated_at, status, total, phone, email, comment, first_name, last_name,
			company, country, zip_code, region, city, address, delivery_method, agreed_to_terms
		FROM orders WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	order, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Order])
	if err != nil {
		return nil, notFound(orderTable, err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT id, order_id, product_id, product_name, unit_price, quantity, line_total
		FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	order.Items, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.OrderItem])
	if err != nil {
		return nil, fmt.Errorf("collect order items: %w", err)
	}

	return &order, nil
}
