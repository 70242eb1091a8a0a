package handler

import (
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/deppfellow/geology-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Health        *HealthHandler
	OpenAPI       *OpenAPIHandler
	Robots        *RobotsHandler
	Category      *CategoryHandler
	Product       *ProductHandler
	ProductImage  *ProductImageHandler
	Sale          *SaleHandler
	SaleItemImage *SaleItemImageHandler
	Order         *OrderHandler
	Employee      *EmployeeHandler
	Contact       *ContactHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(s),
		OpenAPI:       NewOpenAPIHandler(s),
		Robots:        NewRobotsHandler(s),
		Category:      NewCategoryHandler(s, services.Category, services.Facet),
		Product:       NewProductHandler(s, services.Product, services.Facet),
		ProductImage:  NewProductImageHandler(s, services.ProductImage),
		Sale:          NewSaleHandler(s, services.Sale),
		SaleItemImage: NewSaleItemImageHandler(s, services.SaleItemImage),
		Order:         NewOrderHandler(s, services.Order),
		Employee:      NewEmployeeHandler(s, services.Employee),
		Contact:       NewContactHandler(s, services.Contact),
	}
}
