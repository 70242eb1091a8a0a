package handler

import (
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/deppfellow/geology-api/internal/serializer"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/deppfellow/geology-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ProductImageHandler serves /product-images.
type ProductImageHandler struct {
	Handler
	images *service.ImageService
}

func NewProductImageHandler(s *server.Server, images *service.ImageService) *ProductImageHandler {
	return &ProductImageHandler{Handler: NewHandler(s), images: images}
}

func (h *ProductImageHandler) List(c echo.Context, req *model.ListProductImagesRequest) ([]serializer.ProductImage, error) {
	images, err := h.images.List(c.Request().Context(), req.Product)
	if err != nil {
		return nil, err
	}
	return h.serializer(c).ProductImages(images), nil
}

func (h *ProductImageHandler) Get(c echo.Context, req *model.ImageRequest) (serializer.ProductImage, error) {
	img, err := h.images.Get(c.Request().Context(), req.ID)
	if err != nil {
		return serializer.ProductImage{}, err
	}
	return h.serializer(c).ProductImage(img), nil
}

func (h *ProductImageHandler) Create(c echo.Context, req *model.CreateProductImageRequest) (serializer.ProductImage, error) {
	image, err := formUpload(c, "image")
	if err != nil {
		return serializer.ProductImage{}, err
	}
	req.Image = image

	img, err := h.images.Create(c.Request().Context(), req.Input())
	if err != nil {
		return serializer.ProductImage{}, err
	}
	return h.serializer(c).ProductImage(img), nil
}

func (h *ProductImageHandler) Update(c echo.Context, req *model.UpdateProductImageRequest) (serializer.ProductImage, error) {
	image, err := formUpload(c, "image")
	if err != nil {
		return serializer.ProductImage{}, err
	}
	req.Image = image

	img, err := h.images.Update(c.Request().Context(), req.ID, req.Input())
	if err != nil {
		return serializer.ProductImage{}, err
	}
	return h.serializer(c).ProductImage(img), nil
}

func (h *ProductImageHandler) Delete(c echo.Context, req *model.ImageRequest) error {
	return h.images.Delete(c.Request().Context(), req.ID)
}

// SaleItemImageHandler serves /sale-item-images.
type SaleItemImageHandler struct {
	Handler
	images *service.ImageService
}

func NewSaleItemImageHandler(s *server.Server, images *service.ImageService) *SaleItemImageHandler {
	return &SaleItemImageHandler{Handler: NewHandler(s), images: images}
}

func (h *SaleItemImageHandler) List(c echo.Context, req *model.ListSaleItemImagesRequest) ([]serializer.SaleItemImage, error) {
	images, err := h.images.List(c.Request().Context(), req.SaleItem)
	if err != nil {
		return nil, err
	}
	return h.serializer(c).SaleItemImages(images), nil
}

func (h *SaleItemImageHandler) Get(c echo.Context, req *model.ImageRequest) (serializer.SaleItemImage, error) {
	img, err := h.images.Get(c.Request().Context(), req.ID)
	if err != nil {
		return serializer.SaleItemImage{}, err
	}
	return h.serializer(c).SaleItemImage(img), nil
}

func (h *SaleItemImageHandler) Create(c echo.Context, req *model.CreateSaleItemImageRequest) (serializer.SaleItemImage, error) {
	image, err := formUpload(c, "image")
	if err != nil {
		return serializer.SaleItemImage{}, err
	}
	req.Image = image

	img, err := h.images.Create(c.Request().Context(), req.Input())
	if err != nil {
		return serializer.SaleItemImage{}, err
	}
	return h.serializer(c).SaleItemImage(img), nil
}

func (h *SaleItemImageHandler) Update(c echo.Context, req *model.UpdateSaleItemImageRequest) (serializer.SaleItemImage, error) {
	image, err := formUpload(c, "image")
	if err != nil {
		return serializer.SaleItemImage{}, err
	}
	req.Image = image

	img, err := h.images.Update(c.Request().Context(), req.ID, req.Input())
	if err != nil {
		return serializer.SaleItemImage{}, err
	}
	return h.serializer(c).SaleItemImage(img), nil
}

func (h *SaleItemImageHandler) Delete(c echo.Context, req *model.ImageRequest) error {
	return h.images.Delete(c.Request().Context(), req.ID)
}
