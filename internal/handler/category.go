package handler

import (
	"net/url"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/deppfellow/geology-api/internal/serializer"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/deppfellow/geology-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	Handler
	categories *service.CategoryService
	facets     *service.FacetService
}

func NewCategoryHandler(s *server.Server, categories *service.CategoryService, facets *service.FacetService) *CategoryHandler {
	return &CategoryHandler{Handler: NewHandler(s), categories: categories, facets: facets}
}

func (h *CategoryHandler) List(c echo.Context, req *model.ListCategoriesRequest) (serializer.Page[serializer.Category], error) {
	page := model.NewPage(req.Page)
	categories, total, err := h.categories.List(c.Request().Context(), page)
	if err != nil {
		return serializer.Page[serializer.Category]{}, err
	}
	return serializer.NewPage(requestURL(c), page, total, h.serializer(c).Categories(categories)), nil
}

func (h *CategoryHandler) Get(c echo.Context, req *model.CategoryRequest) (serializer.CategoryDetail, error) {
	category, err := h.categories.Get(c.Request().Context(), req.ID)
	if err != nil {
		return serializer.CategoryDetail{}, err
	}
	return h.serializer(c).CategoryDetail(category), nil
}

func (h *CategoryHandler) Products(c echo.Context, req *model.CategoryRequest) ([]serializer.Product, error) {
	products, err := h.categories.Products(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return h.serializer(c).Products(products), nil
}

func (h *CategoryHandler) Filters(c echo.Context, req *model.CategoryFiltersRequest) (*model.Facets, error) {
	req.Attributes = model.ParseAttributeQuery(c.QueryParams())
	return h.facets.CategoryFacets(c.Request().Context(), req.ID, req.Filter())
}

func (h *CategoryHandler) Create(c echo.Context, req *model.CreateCategoryRequest) (serializer.Category, error) {
	image, err := formUpload(c, "image")
	if err != nil {
		return serializer.Category{}, err
	}
	req.Image = image

	category, err := h.categories.Create(c.Request().Context(), req)
	if err != nil {
		return serializer.Category{}, err
	}
	return h.serializer(c).Category(category), nil
}

func (h *CategoryHandler) Update(c echo.Context, req *model.UpdateCategoryRequest) (serializer.Category, error) {
	image, err := formUpload(c, "image")
	if err != nil {
		return serializer.Category{}, err
	}
	req.Image = image

	category, err := h.categories.Update(c.Request().Context(), req)
	if err != nil {
		return serializer.Category{}, err
	}
	return h.serializer(c).Category(category), nil
}

func (h *CategoryHandler) Delete(c echo.Context, req *model.CategoryRequest) error {
	return h.categories.Delete(c.Request().Context(), req.ID)
}

// requestURL is the absolute URL of the current request, used for
// pagination links.
func requestURL(c echo.Context) *url.URL {
	u := *c.Request().URL
	u.Scheme = c.Scheme()
	u.Host = c.Request().Host
	return &u
}
