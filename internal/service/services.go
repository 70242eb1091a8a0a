package service

import (
	"github.com/deppfellow/geology-api/internal/lib/job"
	"github.com/deppfellow/geology-api/internal/repository"
	"github.com/deppfellow/geology-api/internal/server"
)

type Services struct {
	Auth          *AuthService
	Job           *job.JobService
	Category      *CategoryService
	Product       *ProductService
	Facet         *FacetService
	ProductImage  *ImageService
	Sale          *SaleService
	SaleItemImage *ImageService
	Order         *OrderService
	Employee      *EmployeeService
	Contact       *ContactService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	// A nil interface, not a typed nil pointer, when Redis caching is off.
	var facets FacetCache
	if s.FacetCache != nil {
		facets = s.FacetCache
	}

	var queue Enqueuer
	if s.Job != nil {
		queue = s.Job.Client
	}

	return &Services{
		Auth:          authService,
		Job:           s.Job,
		Category:      NewCategoryService(repos.Category, repos.Product, repos.ProductImage, s.Storage, facets),
		Product:       NewProductService(repos.Product, repos.Category, repos.ProductImage, s.Storage, facets),
		Facet:         NewFacetService(repos.Product, repos.Category, facets),
		ProductImage:  NewProductImageService(repos.ProductImage, repos.Product, s.Storage),
		Sale:          NewSaleService(repos.SaleItem, repos.SaleItemImage, s.Storage),
		SaleItemImage: NewSaleItemImageService(repos.SaleItemImage, repos.SaleItem, s.Storage),
		Order:         NewOrderService(repos.Order, repos.Product, queue),
		Employee:      NewEmployeeService(repos.Employee, s.Storage),
		Contact:       NewContactService(repos.Contact, queue),
	}, nil
}
