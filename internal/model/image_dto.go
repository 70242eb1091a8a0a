package model

import "github.com/deppfellow/geology-api/internal/validation"

// ImageInput is the owner-agnostic form of an image write. Nil fields are
// left unchanged on update.
type ImageInput struct {
	OwnerID   *int64
	IsMain    *bool
	SortOrder *int
	Upload    *Upload
}

type ImageRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *ImageRequest) Validate() error {
	return validation.Struct(r)
}

type ListProductImagesRequest struct {
	Product *int64 `query:"product" validate:"omitnil,gt=0"`
}

func (r *ListProductImagesRequest) Validate() error {
	return validation.Struct(r)
}

type CreateProductImageRequest struct {
	Product int64   `json:"product" form:"product" validate:"required,gt=0"`
	IsMain  bool    `json:"is_main" form:"is_main"`
	Order   int     `json:"order" form:"order" validate:"gte=0,lte=2147483647"`
	Image   *Upload `json:"-"`
}

func (r *CreateProductImageRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateProductImageRequest) Input() ImageInput {
	return ImageInput{OwnerID: &r.Product, IsMain: &r.IsMain, SortOrder: &r.Order, Upload: r.Image}
}

type UpdateProductImageRequest struct {
	ID      int64   `param:"id" json:"-" validate:"required,gt=0"`
	Product *int64  `json:"product" form:"product" validate:"omitnil,gt=0"`
	IsMain  *bool   `json:"is_main" form:"is_main"`
	Order   *int    `json:"order" form:"order" validate:"omitnil,gte=0,lte=2147483647"`
	Image   *Upload `json:"-"`
}

func (r *UpdateProductImageRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateProductImageRequest) Input() ImageInput {
	return ImageInput{OwnerID: r.Product, IsMain: r.IsMain, SortOrder: r.Order, Upload: r.Image}
}

type ListSaleItemImagesRequest struct {
	SaleItem *int64 `query:"sale_item" validate:"omitnil,gt=0"`
}

func (r *ListSaleItemImagesRequest) Validate() error {
	return validation.Struct(r)
}

type CreateSaleItemImageRequest struct {
	SaleItem int64   `json:"sale_item" form:"sale_item" validate:"required,gt=0"`
	IsMain   bool    `json:"is_main" form:"is_main"`
	Order    int     `json:"order" form:"order" validate:"gte=0,lte=2147483647"`
	Image    *Upload `json:"-"`
}

func (r *CreateSaleItemImageRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateSaleItemImageRequest) Input() ImageInput {
	return ImageInput{OwnerID: &r.SaleItem, IsMain: &r.IsMain, SortOrder: &r.Order, Upload: r.Image}
}

type UpdateSaleItemImageRequest struct {
	ID       int64   `param:"id" json:"-" validate:"required,gt=0"`
	SaleItem *int64  `json:"sale_item" form:"sale_item" validate:"omitnil,gt=0"`
	IsMain   *bool   `json:"is_main" form:"is_main"`
	Order    *int    `json:"order" form:"order" validate:"omitnil,gte=0,lte=2147483647"`
	Image    *Upload `json:"-"`
}

func (r *UpdateSaleItemImageRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateSaleItemImageRequest) Input() ImageInput {
	return ImageInput{OwnerID: r.SaleItem, IsMain: r.IsMain, SortOrder: r.Order, Upload: r.Image}
}
