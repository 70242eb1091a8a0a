package repository

import (
	"github.com/deppfellow/geology-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// Every repository shares the server's pgx pool.
type Repositories struct {
	Category      *CategoryRepository
	Product       *ProductRepository
	ProductImage  *ImageRepository
	SaleItem      *SaleItemRepository
	SaleItemImage *ImageRepository
	Order         *OrderRepository
	Employee      *EmployeeRepository
	Contact       *ContactRepository
}

// NewRepositories constructs the repository container from the server's
// database pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesFromDB(s.DB.Pool)
}

// NewRepositoriesFromDB wires repositories on any DBTX. The CLI and the
// integration tests use it without a full server.
func NewRepositoriesFromDB(db TxBeginner) *Repositories {
	return &Repositories{
		Category:      NewCategoryRepository(db),
		Product:       NewProductRepository(db),
		ProductImage:  NewProductImageRepository(db),
		SaleItem:      NewSaleItemRepository(db),
		SaleItemImage: NewSaleItemImageRepository(db),
		Order:         NewOrderRepository(db),
		Employee:      NewEmployeeRepository(db),
		Contact:       NewContactRepository(db),
	}
}
