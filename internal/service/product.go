package service

import (
	"context"

	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/lib/utils"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/rs/zerolog"
)

type ProductService struct {
	products   ProductStore
	categories CategoryStore
	images     ImageStore
	storage    media.Storage
	facets     FacetCache
}

func NewProductService(products ProductStore, categories CategoryStore, images ImageStore,
	storage media.Storage, facets FacetCache,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		images:     images,
		storage:    storage,
		facets:     facets,
	}
}

func (s *ProductService) List(ctx context.Context, f model.ProductFilter, page model.Page) ([]model.Product, int, error) {
	products, total, err := s.products.List(ctx, f, page)
	if err != nil {
		return nil, 0, err
	}
	if err := checkPage(page, total); err != nil {
		return nil, 0, err
	}
	if err := attachImages(ctx, s.images, products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Images, err = s.images.List(ctx, &id); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &model.Product{
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		Size:              utils.NilIfEmpty(req.Size),
		Description:       req.Description,
		Quantity:          req.Quantity,
		Price:             req.Price,
		Brand:             utils.NilIfEmpty(req.Brand),
		ThreadConnection:  utils.NilIfEmpty(req.ThreadConnection),
		ThreadConnection2: utils.NilIfEmpty(req.ThreadConnection2),
		Armament:          utils.NilIfEmpty(req.Armament),
		Seal:              utils.NilIfEmpty(req.Seal),
		IADC:              utils.NilIfEmpty(req.IADC),
		Images:            []model.Image{},
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	invalidateFacets(ctx, s.facets)
	zerolog.Ctx(ctx).Info().Int64("product_id", product.ID).Msg("product created")
	return product, nil
}

// Update applies the non-nil fields of req. Sending an empty string for an
// optional attribute clears it.
func (s *ProductService) Update(ctx context.Context, req *model.UpdateProductRequest) (*model.Product, error) {
	product, err := s.products.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		if err := s.checkCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	optional := []struct {
		in  *string
		out **string
	}{
		{req.Size, &product.Size},
		{req.Brand, &product.Brand},
		{req.ThreadConnection, &product.ThreadConnection},
		{req.ThreadConnection2, &product.ThreadConnection2},
		{req.Armament, &product.Armament},
		{req.Seal, &product.Seal},
		{req.IADC, &product.IADC},
	}
	for _, o := range optional {
		if o.in != nil {
			*o.out = utils.NilIfEmpty(o.in)
		}
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	if product.Images, err = s.images.List(ctx, &product.ID); err != nil {
		return nil, err
	}

	invalidateFacets(ctx, s.facets)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	keys, err := s.images.KeysForOwner(ctx, id)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	removeObjects(ctx, s.storage, keys...)

	invalidateFacets(ctx, s.facets)
	zerolog.Ctx(ctx).Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) checkCategory(ctx context.Context, id int64) error {
	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return invalidReference("category", id)
	}
	return nil
}
