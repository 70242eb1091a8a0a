package service

import (
	"context"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/rs/zerolog"
)

// FacetService computes the attribute value counts behind the catalog
// filter sidebar.
type FacetService struct {
	products   ProductStore
	categories CategoryStore
	cache      FacetCache
}

func NewFacetService(products ProductStore, categories CategoryStore, cache FacetCache) *FacetService {
	return &FacetService{products: products, categories: categories, cache: cache}
}

// Facets returns the counts for the products matching f. Cache errors are
// logged and the counts are computed from the database.
func (s *FacetService) Facets(ctx context.Context, f model.ProductFilter) (*model.Facets, error) {
	log := zerolog.Ctx(ctx)

	var key string
	if s.cache != nil {
		facets, k, err := s.cache.Get(ctx, f)
		if err != nil {
			log.Warn().Err(err).Msg("facet cache read failed")
		}
		if facets != nil {
			return facets, nil
		}
		key = k
	}

	facets, err := s.products.Facets(ctx, f)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, facets); err != nil {
			log.Warn().Err(err).Msg("facet cache write failed")
		}
	}
	return facets, nil
}

// CategoryFacets is Facets restricted to one existing category.
func (s *FacetService) CategoryFacets(ctx context.Context, categoryID int64, f model.ProductFilter) (*model.Facets, error) {
	exists, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, categoryNotFound()
	}

	f.CategoryID = &categoryID
	return s.Facets(ctx, f)
}
