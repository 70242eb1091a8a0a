package service

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaleItems struct {
	ids   map[int64]bool
	items []model.SaleItem
}

func (f *fakeSaleItems) ListActive(_ context.Context, _ model.Page) ([]model.SaleItem, int, error) {
	var out []model.SaleItem
	for _, item := range f.items {
		if item.IsActive {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, len(out), nil
}

func (f *fakeSaleItems) GetBySlug(_ context.Context, slug string) (*model.SaleItem, error) {
	for _, item := range f.items {
		if item.Slug == slug {
			return &item, nil
		}
	}
	return nil, errNotFound("sale_items")
}

func (f *fakeSaleItems) Exists(_ context.Context, id int64) (bool, error) {
	return f.ids[id], nil
}

func (f *fakeSaleItems) Create(_ context.Context, s *model.SaleItem) error {
	s.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *s)
	return nil
}

func (f *fakeSaleItems) Update(_ context.Context, s *model.SaleItem) error {
	for i := range f.items {
		if f.items[i].ID == s.ID {
			f.items[i] = *s
		}
	}
	return nil
}

func (f *fakeSaleItems) Delete(_ context.Context, id int64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errNotFound("sale_items")
}

func TestSaleService_ListOnlyActive(t *testing.T) {
	storage, _ := memStorage()
	items := &fakeSaleItems{items: []model.SaleItem{
		{ID: 1, Slug: "old", IsActive: true},
		{ID: 2, Slug: "hidden", IsActive: false},
		{ID: 3, Slug: "new", IsActive: true},
	}}
	images := newFakeImages(model.Image{ID: 1, OwnerID: 3, Key: "sale_items/a.png", IsMain: true})
	svc := NewSaleService(items, images, storage)

	got, total, err := svc.List(context.Background(), model.NewPage(1))
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Slug)
	assert.Len(t, got[0].Images, 1)
	assert.Equal(t, "old", got[1].Slug)

	hidden, err := svc.Get(context.Background(), "hidden")
	require.NoError(t, err)
	assert.False(t, hidden.IsActive)
}

func TestSaleService_CreateSlug(t *testing.T) {
	storage, _ := memStorage()
	items := &fakeSaleItems{}
	svc := NewSaleService(items, newFakeImages(), storage)

	created, err := svc.Create(context.Background(), &model.CreateSaleItemRequest{
		Title:       "Summer Sale 2024",
		Description: "d",
		OldPrice:    decimal.RequireFromString("100"),
		NewPrice:    decimal.RequireFromString("80"),
	})
	require.NoError(t, err)
	assert.Equal(t, "summer-sale-2024", created.Slug)
	assert.True(t, created.IsActive)

	explicit, err := svc.Create(context.Background(), &model.CreateSaleItemRequest{
		Title:    "Whatever",
		Slug:     "custom_slug",
		IsActive: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "custom_slug", explicit.Slug)
	assert.False(t, explicit.IsActive)
}

func TestSlugFromTitle(t *testing.T) {
	assert.Equal(t, "pdc-bits", SlugFromTitle("PDC Bits!"))
	assert.Regexp(t, `^sale-[0-9a-f]{8}$`, SlugFromTitle("Распродажа"))
	assert.Len(t, SlugFromTitle(strings.Repeat("a", 300)), maxSlugLength)
}
