package service

import (
	"context"
	"testing"

	"github.com/deppfellow/geology-api/internal/errs"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageService_Create(t *testing.T) {
	storage, fs := memStorage()
	images := newFakeImages()
	products := newFakeProducts(model.Product{ID: 3})
	svc := NewProductImageService(images, products, storage)

	img, err := svc.Create(context.Background(), model.ImageInput{
		OwnerID:   ptr(int64(3)),
		IsMain:    ptr(true),
		SortOrder: ptr(2),
		Upload:    pngUpload(t, "Front View.PNG"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), img.OwnerID)
	assert.True(t, img.IsMain)
	assert.Equal(t, 2, img.SortOrder)
	assert.Regexp(t, `^products/front-view-[0-9a-f]{8}\.png$`, img.Key)
	assert.Equal(t, []string{"/" + img.Key}, storedFiles(t, fs))
}

func TestImageService_CreateRejections(t *testing.T) {
	tests := []struct {
		name  string
		input func(t *testing.T) model.ImageInput
		field string
	}{
		{
			name:  "missing file",
			input: func(*testing.T) model.ImageInput { return model.ImageInput{OwnerID: ptr(int64(1))} },
			field: "image",
		},
		{
			name: "svg with script",
			input: func(*testing.T) model.ImageInput {
				return model.ImageInput{
					OwnerID: ptr(int64(1)),
					Upload:  &model.Upload{Filename: "x.svg", Data: []byte(`<svg><script>alert(1)</script></svg>`)},
				}
			},
			field: "image",
		},
		{
			name: "unknown owner",
			input: func(t *testing.T) model.ImageInput {
				return model.ImageInput{OwnerID: ptr(int64(404)), Upload: pngUpload(t, "a.png")}
			},
			field: "sale_item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, fs := memStorage()
			images := newFakeImages()
			svc := NewSaleItemImageService(images, &fakeSaleItems{ids: map[int64]bool{1: true}}, storage)

			_, err := svc.Create(context.Background(), tt.input(t))

			var httpErr *errs.HTTPError
			require.ErrorAs(t, err, &httpErr)
			require.Len(t, httpErr.Errors, 1)
			assert.Equal(t, tt.field, httpErr.Errors[0].Field)
			assert.Zero(t, images.creates)
			assert.Empty(t, storedFiles(t, fs))
		})
	}
}

func TestImageService_UpdateReplacesFile(t *testing.T) {
	storage, fs := memStorage()
	ctx := context.Background()
	require.NoError(t, storage.Save(ctx, "products/old.png", []byte("old"), "image/png"))

	images := newFakeImages(model.Image{ID: 1, OwnerID: 3, Key: "products/old.png"})
	svc := NewProductImageService(images, newFakeProducts(model.Product{ID: 3}), storage)

	img, err := svc.Update(ctx, 1, model.ImageInput{Upload: pngUpload(t, "new.png"), SortOrder: ptr(5)})
	require.NoError(t, err)

	assert.NotEqual(t, "products/old.png", img.Key)
	assert.Equal(t, 5, img.SortOrder)
	assert.Equal(t, []string{"/" + img.Key}, storedFiles(t, fs))
}

func TestImageService_Delete(t *testing.T) {
	storage, fs := memStorage()
	ctx := context.Background()
	require.NoError(t, storage.Save(ctx, "products/a.png", []byte("a"), "image/png"))

	images := newFakeImages(model.Image{ID: 1, OwnerID: 3, Key: "products/a.png"})
	svc := NewProductImageService(images, newFakeProducts(), storage)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.Empty(t, images.rows)
	assert.Empty(t, storedFiles(t, fs))

	err := svc.Delete(ctx, 1)
	assert.Error(t, err)
}
