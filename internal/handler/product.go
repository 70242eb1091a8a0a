package handler

import (
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/deppfellow/geology-api/internal/serializer"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/deppfellow/geology-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	products *service.ProductService
	facets   *service.FacetService
}

func NewProductHandler(s *server.Server, products *service.ProductService, facets *service.FacetService) *ProductHandler {
	return &ProductHandler{Handler: NewHandler(s), products: products, facets: facets}
}

func (h *ProductHandler) List(c echo.Context, req *model.ListProductsRequest) (serializer.Page[serializer.Product], error) {
	req.Attributes = model.ParseAttributeQuery(c.QueryParams())
	page := model.NewPage(req.Page)

	products, total, err := h.products.List(c.Request().Context(), req.Filter(), page)
	if err != nil {
		return serializer.Page[serializer.Product]{}, err
	}
	return serializer.NewPage(requestURL(c), page, total, h.serializer(c).Products(products)), nil
}

// Filters returns the facet counts for the current filter selection.
func (h *ProductHandler) Filters(c echo.Context, req *model.ProductFiltersRequest) (*model.Facets, error) {
	req.Attributes = model.ParseAttributeQuery(c.QueryParams())
	return h.facets.Facets(c.Request().Context(), req.Filter())
}

func (h *ProductHandler) Get(c echo.Context, req *model.ProductRequest) (serializer.Product, error) {
	product, err := h.products.Get(c.Request().Context(), req.ID)
	if err != nil {
		return serializer.Product{}, err
	}
	return h.serializer(c).Product(product), nil
}

func (h *ProductHandler) Create(c echo.Context, req *model.CreateProductRequest) (serializer.Product, error) {
	product, err := h.products.Create(c.Request().Context(), req)
	if err != nil {
		return serializer.Product{}, err
	}
	return h.serializer(c).Product(product), nil
}

func (h *ProductHandler) Update(c echo.Context, req *model.UpdateProductRequest) (serializer.Product, error) {
	product, err := h.products.Update(c.Request().Context(), req)
	if err != nil {
		return serializer.Product{}, err
	}
	return h.serializer(c).Product(product), nil
}

func (h *ProductHandler) Delete(c echo.Context, req *model.ProductRequest) error {
	return h.products.Delete(c.Request().Context(), req.ID)
}
