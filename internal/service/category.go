package service

import (
	"context"

	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/rs/zerolog"
)

const categoryImagePrefix = "categories"

type CategoryService struct {
	categories    CategoryStore
	products      ProductStore
	productImages ImageStore
	storage       media.Storage
	facets        FacetCache
}

func NewCategoryService(categories CategoryStore, products ProductStore, productImages ImageStore,
	storage media.Storage, facets FacetCache,
) *CategoryService {
	return &CategoryService{
		categories:    categories,
		products:      products,
		productImages: productImages,
		storage:       storage,
		facets:        facets,
	}
}

func (s *CategoryService) List(ctx context.Context, page model.Page) ([]model.Category, int, error) {
	categories, total, err := s.categories.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	if err := checkPage(page, total); err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// Get returns the category with its products and their images.
func (s *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Products, err = s.listProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Products lists every product of the category.
func (s *CategoryService) Products(ctx context.Context, id int64) ([]model.Product, error) {
	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, categoryNotFound()
	}
	return s.listProducts(ctx, id)
}

func (s *CategoryService) listProducts(ctx context.Context, id int64) ([]model.Product, error) {
	products, err := s.products.ListAll(ctx, model.ProductFilter{CategoryID: &id})
	if err != nil {
		return nil, err
	}
	if err := attachImages(ctx, s.productImages, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CategoryService) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	category := &model.Category{Name: req.Name}

	if req.Image != nil {
		key, err := storeUpload(ctx, s.storage, "image", categoryImagePrefix, req.Image)
		if err != nil {
			return nil, err
		}
		category.Image = &key
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if category.Image != nil {
			removeObjects(ctx, s.storage, *category.Image)
		}
		return nil, err
	}

	invalidateFacets(ctx, s.facets)
	zerolog.Ctx(ctx).Info().Int64("category_id", category.ID).Msg("category created")
	return category, nil
}

// Update applies the non-nil fields of req. A new image replaces the old
// file, which is removed once the row points at the new one.
func (s *CategoryService) Update(ctx context.Context, req *model.UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.categories.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}

	var oldImage string
	if req.Image != nil {
		key, err := storeUpload(ctx, s.storage, "image", categoryImagePrefix, req.Image)
		if err != nil {
			return nil, err
		}
		if category.Image != nil {
			oldImage = *category.Image
		}
		category.Image = &key
	}

	if err := s.categories.Update(ctx, category); err != nil {
		if req.Image != nil {
			removeObjects(ctx, s.storage, *category.Image)
		}
		return nil, err
	}
	removeObjects(ctx, s.storage, oldImage)

	invalidateFacets(ctx, s.facets)
	return category, nil
}

// Delete removes the category and, through the cascade, its products and
// their images. Stored files are cleaned up afterwards.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}

	products, err := s.listProducts(ctx, id)
	if err != nil {
		return err
	}

	var keys []string
	if category.Image != nil {
		keys = append(keys, *category.Image)
	}
	for _, p := range products {
		for _, img := range p.Images {
			keys = append(keys, img.Key)
		}
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	removeObjects(ctx, s.storage, keys...)

	invalidateFacets(ctx, s.facets)
	zerolog.Ctx(ctx).Info().Int64("category_id", id).Int("products", len(products)).Msg("category deleted")
	return nil
}
