package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is a discounted offer addressed by its unique slug.
type SaleItem struct {
	ID          int64           `db:"id"`
	Title       string          `db:"title"`
	Slug        string          `db:"slug"`
	Description string          `db:"description"`
	OldPrice    decimal.Decimal `db:"old_price"`
	NewPrice    decimal.Decimal `db:"new_price"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`

	Images []Image `db:"-"`
}
