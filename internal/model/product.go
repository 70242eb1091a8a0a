package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. Price is always the authoritative unit price.
type Product struct {
	ID                int64           `db:"id"`
	CategoryID        int64           `db:"category_id"`
	Name              string          `db:"name"`
	Size              *string         `db:"size"`
	Description       string          `db:"description"`
	Quantity          int             `db:"quantity"`
	Price             decimal.Decimal `db:"price"`
	Brand             *string         `db:"brand"`
	ThreadConnection  *string         `db:"thread_connection"`
	ThreadConnection2 *string         `db:"thread_connection_2"`
	Armament          *string         `db:"armament"`
	Seal              *string         `db:"seal"`
	IADC              *string         `db:"iadc"`

	Images []Image `db:"-"`
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

// ProductAttributes lists the technical attribute columns that can be filtered and faceted,
// in display order.
var ProductAttributes = []string{
	"brand",
	"size",
	"thread_connection",
	"thread_connection_2",
	"armament",
	"seal",
	"iadc",
}

// IsProductAttribute reports whether name is one of ProductAttributes.
func IsProductAttribute(name string) bool {
	for _, attr := range ProductAttributes {
		if attr == name {
			return true
		}
	}
	return false
}
