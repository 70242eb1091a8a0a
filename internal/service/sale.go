package service

import (
	"context"
	"strings"

	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/lib/utils"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxSlugLength = 255

type SaleService struct {
	items   SaleItemStore
	images  ImageStore
	storage media.Storage
}

func NewSaleService(items SaleItemStore, images ImageStore, storage media.Storage) *SaleService {
	return &SaleService{items: items, images: images, storage: storage}
}

// List returns one page of active sale items, newest first.
func (s *SaleService) List(ctx context.Context, page model.Page) ([]model.SaleItem, int, error) {
	items, total, err := s.items.ListActive(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	if err := checkPage(page, total); err != nil {
		return nil, 0, err
	}

	ids := make([]int64, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	byItem, err := s.images.ListForOwners(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].Images = byItem[items[i].ID]
	}
	return items, total, nil
}

// Get looks the item up by slug regardless of its active flag.
func (s *SaleService) Get(ctx context.Context, slug string) (*model.SaleItem, error) {
	item, err := s.items.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if item.Images, err = s.images.List(ctx, &item.ID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *SaleService) Create(ctx context.Context, req *model.CreateSaleItemRequest) (*model.SaleItem, error) {
	item := &model.SaleItem{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		OldPrice:    req.OldPrice,
		NewPrice:    req.NewPrice,
		IsActive:    true,
		Images:      []model.Image{},
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if item.Slug == "" {
		item.Slug = SlugFromTitle(item.Title)
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("sale_item_id", item.ID).Str("slug", item.Slug).Msg("sale item created")
	return item, nil
}

func (s *SaleService) Update(ctx context.Context, req *model.UpdateSaleItemRequest) (*model.SaleItem, error) {
	item, err := s.items.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.NewSlug != nil {
		item.Slug = *req.NewSlug
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.OldPrice != nil {
		item.OldPrice = *req.OldPrice
	}
	if req.NewPrice != nil {
		item.NewPrice = *req.NewPrice
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	if item.Images, err = s.images.List(ctx, &item.ID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *SaleService) Delete(ctx context.Context, slug string) error {
	item, err := s.items.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	keys, err := s.images.KeysForOwner(ctx, item.ID)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, item.ID); err != nil {
		return err
	}
	removeObjects(ctx, s.storage, keys...)

	zerolog.Ctx(ctx).Info().Str("slug", slug).Msg("sale item deleted")
	return nil
}

// SlugFromTitle derives a slug from a title. Titles without any Latin
// letters or digits get a random "sale-<8 hex>" slug.
func SlugFromTitle(title string) string {
	slug := utils.Slugify(title)
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-_")
	}
	if slug == "" {
		slug = "sale-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	return slug
}
