package handler

import (
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/deppfellow/geology-api/internal/serializer"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/deppfellow/geology-api/internal/service"
	"github.com/labstack/echo/v4"
)

type SaleHandler struct {
	Handler
	sales *service.SaleService
}

func NewSaleHandler(s *server.Server, sales *service.SaleService) *SaleHandler {
	return &SaleHandler{Handler: NewHandler(s), sales: sales}
}

// List returns active sale items only.
func (h *SaleHandler) List(c echo.Context, req *model.ListSaleItemsRequest) (serializer.Page[serializer.SaleItem], error) {
	page := model.NewPage(req.Page)
	items, total, err := h.sales.List(c.Request().Context(), page)
	if err != nil {
		return serializer.Page[serializer.SaleItem]{}, err
	}
	return serializer.NewPage(requestURL(c), page, total, h.serializer(c).SaleItems(items)), nil
}

func (h *SaleHandler) Get(c echo.Context, req *model.SaleItemRequest) (serializer.SaleItem, error) {
	item, err := h.sales.Get(c.Request().Context(), req.Slug)
	if err != nil {
		return serializer.SaleItem{}, err
	}
	return h.serializer(c).SaleItem(item), nil
}

func (h *SaleHandler) Create(c echo.Context, req *model.CreateSaleItemRequest) (serializer.SaleItem, error) {
	item, err := h.sales.Create(c.Request().Context(), req)
	if err != nil {
		return serializer.SaleItem{}, err
	}
	return h.serializer(c).SaleItem(item), nil
}

func (h *SaleHandler) Update(c echo.Context, req *model.UpdateSaleItemRequest) (serializer.SaleItem, error) {
	item, err := h.sales.Update(c.Request().Context(), req)
	if err != nil {
		return serializer.SaleItem{}, err
	}
	return h.serializer(c).SaleItem(item), nil
}

func (h *SaleHandler) Delete(c echo.Context, req *model.SaleItemRequest) error {
	return h.sales.Delete(c.Request().Context(), req.Slug)
}
