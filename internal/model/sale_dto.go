package model

import (
	"github.com/deppfellow/geology-api/internal/validation"
	"github.com/shopspring/decimal"
)

type ListSaleItemsRequest struct {
	Page int `query:"page" validate:"gte=0"`
}

func (r *ListSaleItemsRequest) Validate() error {
	return validation.Struct(r)
}

type SaleItemRequest struct {
	Slug string `param:"slug" validate:"required,max=255"`
}

func (r *SaleItemRequest) Validate() error {
	return validation.Struct(r)
}

type CreateSaleItemRequest struct {
	Title       string          `json:"title" form:"title" validate:"required,max=255"`
	Slug        string          `json:"slug" form:"slug" validate:"omitempty,max=255,slug"`
	Description string          `json:"description" form:"description" validate:"required"`
	OldPrice    decimal.Decimal `json:"old_price" form:"old_price"`
	NewPrice    decimal.Decimal `json:"new_price" form:"new_price"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"is_active" form:"is_active"`
}

func (r *CreateSaleItemRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return checkPrices(map[string]*decimal.Decimal{"old_price": &r.OldPrice, "new_price": &r.NewPrice})
}

// UpdateSaleItemRequest addresses the item by its current slug; NewSlug
// renames it.
type UpdateSaleItemRequest struct {
	Slug        string           `param:"slug" json:"-" validate:"required,max=255"`
	Title       *string          `json:"title" form:"title" validate:"omitnil,min=1,max=255"`
	NewSlug     *string          `json:"slug" form:"slug" validate:"omitnil,min=1,max=255,slug"`
	Description *string          `json:"description" form:"description" validate:"omitnil,min=1"`
	OldPrice    *decimal.Decimal `json:"old_price" form:"old_price"`
	NewPrice    *decimal.Decimal `json:"new_price" form:"new_price"`
	IsActive    *bool            `json:"is_active" form:"is_active"`
}

func (r *UpdateSaleItemRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return checkPrices(map[string]*decimal.Decimal{"old_price": r.OldPrice, "new_price": r.NewPrice})
}
