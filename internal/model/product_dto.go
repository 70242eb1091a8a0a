package model

import (
	"net/url"
	"strings"

	"github.com/deppfellow/geology-api/internal/validation"
	"github.com/shopspring/decimal"
)

// ParseAttributeQuery reads the attribute filters from a query string. Each
// attribute accepts a comma-separated list; blank entries are dropped.
//
//	?brand=Smith,Varel&seal=  ->  {"brand": ["Smith", "Varel"]}
func ParseAttributeQuery(query url.Values) map[string][]string {
	attrs := make(map[string][]string)
	for _, attr := range ProductAttributes {
		var values []string
		for _, raw := range query[attr] {
			for _, v := range strings.Split(raw, ",") {
				if v = strings.TrimSpace(v); v != "" {
					values = append(values, v)
				}
			}
		}
		if len(values) > 0 {
			attrs[attr] = values
		}
	}
	return attrs
}

type ListProductsRequest struct {
	Page     int    `query:"page" validate:"gte=0"`
	Category *int64 `query:"category" validate:"omitnil,gt=0"`
	InStock  *bool  `query:"in_stock"`
	Search   string `query:"search" validate:"max=255"`

	// Attributes is filled from the raw query by the handler.
	Attributes map[string][]string `query:"-"`
}

func (r *ListProductsRequest) Validate() error {
	return validation.Struct(r)
}

func (r *ListProductsRequest) Filter() ProductFilter {
	return ProductFilter{
		CategoryID: r.Category,
		InStock:    r.InStock,
		Search:     strings.TrimSpace(r.Search),
		Attributes: r.Attributes,
	}
}

// ProductFiltersRequest takes the listing filters without pagination.
type ProductFiltersRequest struct {
	Category   *int64              `query:"category" validate:"omitnil,gt=0"`
	InStock    *bool               `query:"in_stock"`
	Search     string              `query:"search" validate:"max=255"`
	Attributes map[string][]string `query:"-"`
}

func (r *ProductFiltersRequest) Validate() error {
	return validation.Struct(r)
}

func (r *ProductFiltersRequest) Filter() ProductFilter {
	return ProductFilter{
		CategoryID: r.Category,
		InStock:    r.InStock,
		Search:     strings.TrimSpace(r.Search),
		Attributes: r.Attributes,
	}
}

// CategoryFiltersRequest computes facets inside one category. The path id
// wins over any ?category= parameter.
type CategoryFiltersRequest struct {
	ID         int64               `param:"id" validate:"required,gt=0"`
	InStock    *bool               `query:"in_stock"`
	Search     string              `query:"search" validate:"max=255"`
	Attributes map[string][]string `query:"-"`
}

func (r *CategoryFiltersRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CategoryFiltersRequest) Filter() ProductFilter {
	id := r.ID
	return ProductFilter{
		CategoryID: &id,
		InStock:    r.InStock,
		Search:     strings.TrimSpace(r.Search),
		Attributes: r.Attributes,
	}
}

type ProductRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *ProductRequest) Validate() error {
	return validation.Struct(r)
}

type CreateProductRequest struct {
	CategoryID        int64           `json:"category" form:"category" validate:"required,gt=0"`
	Name              string          `json:"name" form:"name" validate:"required,max=255"`
	Size              *string         `json:"size" form:"size" validate:"omitnil,max=100"`
	Description       string          `json:"description" form:"description" validate:"required"`
	Quantity          int             `json:"quantity" form:"quantity" validate:"gte=0,lte=2147483647"`
	Price             decimal.Decimal `json:"price" form:"price"`
	Brand             *string         `json:"brand" form:"brand" validate:"omitnil,max=100"`
	ThreadConnection  *string         `json:"thread_connection" form:"thread_connection" validate:"omitnil,max=100"`
	ThreadConnection2 *string         `json:"thread_connection_2" form:"thread_connection_2" validate:"omitnil,max=100"`
	Armament          *string         `json:"armament" form:"armament" validate:"omitnil,max=100"`
	Seal              *string         `json:"seal" form:"seal" validate:"omitnil,max=100"`
	IADC              *string         `json:"iadc" form:"iadc" validate:"omitnil,max=100"`
}

func (r *CreateProductRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return checkPrices(map[string]*decimal.Decimal{"price": &r.Price})
}

// UpdateProductRequest is a partial update: nil fields are left unchanged.
type UpdateProductRequest struct {
	ID                int64            `param:"id" json:"-" validate:"required,gt=0"`
	CategoryID        *int64           `json:"category" form:"category" validate:"omitnil,gt=0"`
	Name              *string          `json:"name" form:"name" validate:"omitnil,min=1,max=255"`
	Size              *string          `json:"size" form:"size" validate:"omitnil,max=100"`
	Description       *string          `json:"description" form:"description" validate:"omitnil,min=1"`
	Quantity          *int             `json:"quantity" form:"quantity" validate:"omitnil,gte=0,lte=2147483647"`
	Price             *decimal.Decimal `json:"price" form:"price"`
	Brand             *string          `json:"brand" form:"brand" validate:"omitnil,max=100"`
	ThreadConnection  *string          `json:"thread_connection" form:"thread_connection" validate:"omitnil,max=100"`
	ThreadConnection2 *string          `json:"thread_connection_2" form:"thread_connection_2" validate:"omitnil,max=100"`
	Armament          *string          `json:"armament" form:"armament" validate:"omitnil,max=100"`
	Seal              *string          `json:"seal" form:"seal" validate:"omitnil,max=100"`
	IADC              *string          `json:"iadc" form:"iadc" validate:"omitnil,max=100"`
}

func (r *UpdateProductRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return checkPrices(map[string]*decimal.Decimal{"price": r.Price})
}
