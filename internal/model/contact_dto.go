package model

import "github.com/deppfellow/geology-api/internal/validation"

type CreateContactMessageRequest struct {
	Email   string `json:"email" form:"email" validate:"required,email,max=255"`
	Message string `json:"message" form:"message" validate:"required"`
}

func (r *CreateContactMessageRequest) Validate() error {
	return validation.Struct(r)
}
