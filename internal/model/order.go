package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusNew is the status every order is created with.
const OrderStatusNew = "new"

// DefaultCountry is used when the customer leaves the country blank.
const DefaultCountry = "Российская Федерация"

// Order is a customer purchase request. Total is always computed server-side
// from Items.
type Order struct {
	ID             int64           `db:"id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	Status         string          `db:"status"`
	Total          decimal.Decimal `db:"total"`
	Phone          string          `db:"phone"`
	Email          string          `db:"email"`
	Comment        string          `db:"comment"`
	FirstName      string          `db:"first_name"`
	LastName       string          `db:"last_name"`
	Company        string          `db:"company"`
	Country        string          `db:"country"`
	ZipCode        string          `db:"zip_code"`
	Region         string          `db:"region"`
	City           string          `db:"city"`
	Address        string          `db:"address"`
	DeliveryMethod string          `db:"delivery_method"`
	AgreedToTerms  bool            `db:"agreed_to_terms"`

	Items []OrderItem `db:"-"`
}

// OrderItem is a resolved order line. UnitPrice is copied from the product
// at the time the order is placed.
type OrderItem struct {
	ID          int64           `db:"id"`
	OrderID     int64           `db:"order_id"`
	ProductID   *int64          `db:"product_id"`
	ProductName string          `db:"product_name"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Quantity    int             `db:"quantity"`
	LineTotal   decimal.Decimal `db:"line_total"`
}

// OrderProduct is one entry of the denormalized product list stored on the
// order row.
type OrderProduct struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Products builds the denormalized product list from the resolved items.
func (o *Order) Products() []OrderProduct {
	out := make([]OrderProduct, 0, len(o.Items))
	for _, item := range o.Items {
		var id int64
		if item.ProductID != nil {
			id = *item.ProductID
		}
		out = append(out, OrderProduct{
			ProductID: id,
			Name:      item.ProductName,
			Price:     item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	return out
}

// FullName joins first and last name.
func (o *Order) FullName() string {
	if o.LastName == "" {
		return o.FirstName
	}
	return o.FirstName + " " + o.LastName
}
