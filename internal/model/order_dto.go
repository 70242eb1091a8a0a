package model

import "github.com/deppfellow/geology-api/internal/validation"

type OrderItemRequest struct {
	Product  int64 `json:"product" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gte=1,lte=2147483647"`
}

// CreateOrderRequest is the public checkout payload. Prices and totals sent
// by the client are not part of it and are ignored when present.
type CreateOrderRequest struct {
	FirstName      string             `json:"first_name" validate:"required,max=100"`
	LastName       string             `json:"last_name" validate:"required,max=100"`
	Phone          string             `json:"phone" validate:"required,max=20"`
	Email          string             `json:"email" validate:"required,email,max=254"`
	Company        string             `json:"company" validate:"max=100"`
	Country        string             `json:"country" validate:"max=100"`
	ZipCode        string             `json:"zip_code" validate:"required,max=20"`
	Region         string             `json:"region" validate:"required,max=100"`
	City           string             `json:"city" validate:"required,max=100"`
	Address        string             `json:"address" validate:"required,max=255"`
	DeliveryMethod string             `json:"delivery_method" validate:"required,max=50"`
	Comment        string             `json:"comment"`
	AgreedToTerms  bool               `json:"agreed_to_terms" validate:"eq=true"`
	Items          []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r *CreateOrderRequest) Validate() error {
	return validation.Struct(r)
}
