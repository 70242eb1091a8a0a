package model

import "github.com/deppfellow/geology-api/internal/validation"

type ListCategoriesRequest struct {
	Page int `query:"page" validate:"gte=0"`
}

func (r *ListCategoriesRequest) Validate() error {
	return validation.Struct(r)
}

// CategoryRequest addresses one category (retrieve, delete, products, filters).
type CategoryRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *CategoryRequest) Validate() error {
	return validation.Struct(r)
}

type CreateCategoryRequest struct {
	Name  string  `json:"name" form:"name" validate:"required,max=255"`
	Image *Upload `json:"-"`
}

func (r *CreateCategoryRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateCategoryRequest is a partial update: nil fields are left unchanged.
type UpdateCategoryRequest struct {
	ID    int64   `param:"id" json:"-" validate:"required,gt=0"`
	Name  *string `json:"name" form:"name" validate:"omitnil,min=1,max=255"`
	Image *Upload `json:"-"`
}

func (r *UpdateCategoryRequest) Validate() error {
	return validation.Struct(r)
}
