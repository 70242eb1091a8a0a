// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/geology-api/internal/errs"
	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// The store interfaces below are implemented by the repository package.
// Services depend on them so tests can swap in fakes.

type CategoryStore interface {
	List(ctx context.Context, page model.Page) ([]model.Category, int, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id int64) error
}

type ProductStore interface {
	List(ctx context.Context, f model.ProductFilter, page model.Page) ([]model.Product, int, error)
	ListAll(ctx context.Context, f model.ProductFilter) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]model.Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error
	Facets(ctx context.Context, f model.ProductFilter) (*model.Facets, error)
}

type ImageStore interface {
	List(ctx context.Context, ownerID *int64) ([]model.Image, error)
	ListForOwners(ctx context.Context, ownerIDs []int64) (map[int64][]model.Image, error)
	GetByID(ctx context.Context, id int64) (*model.Image, error)
	Create(ctx context.Context, img *model.Image) error
	Update(ctx context.Context, img *model.Image) error
	Delete(ctx context.Context, id int64) error
	KeysForOwner(ctx context.Context, ownerID int64) ([]string, error)
}

type SaleItemStore interface {
	ListActive(ctx context.Context, page model.Page) ([]model.SaleItem, int, error)
	GetBySlug(ctx context.Context, slug string) (*model.SaleItem, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, s *model.SaleItem) error
	Update(ctx context.Context, s *model.SaleItem) error
	Delete(ctx context.Context, id int64) error
}

type OrderStore interface {
	Create(ctx context.Context, o *model.Order) error
}

type EmployeeStore interface {
	List(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	Create(ctx context.Context, e *model.Employee) error
	Update(ctx context.Context, e *model.Employee) error
	Delete(ctx context.Context, id int64) error
}

type ContactStore interface {
	Create(ctx context.Context, m *model.ContactMessage) error
}

// OwnerChecker reports whether the row an image is attached to exists.
type OwnerChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// FacetCache is implemented by cache.FacetCache.
type FacetCache interface {
	Get(ctx context.Context, f model.ProductFilter) (facets *model.Facets, key string, err error)
	Set(ctx context.Context, key string, facets *model.Facets) error
	Invalidate(ctx context.Context) error
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// checkPage rejects pages past the end of a non-empty listing.
func checkPage(page model.Page, total int) error {
	if page.Number > 1 && page.Offset() >= total {
		return errs.NewNotFoundError("Invalid page.", false, nil)
	}
	return nil
}

// checkUpload validates an upload before anything is persisted. Failures
// are reported against field.
func checkUpload(field string, up *model.Upload) (string, error) {
	contentType, err := media.ValidateImage(up.Filename, up.Data)
	if err != nil {
		return "", errs.NewFieldError(field, err.Error())
	}
	return contentType, nil
}

// storeUpload validates up and saves it under a fresh key below prefix.
func storeUpload(ctx context.Context, storage media.Storage, field, prefix string, up *model.Upload) (string, error) {
	contentType, err := checkUpload(field, up)
	if err != nil {
		return "", err
	}

	key := media.Key(prefix, up.Filename)
	if err := storage.Save(ctx, key, up.Data, contentType); err != nil {
		return "", fmt.Errorf("store %s: %w", field, err)
	}
	return key, nil
}

// removeObjects deletes stored files. Failures only leave orphans behind,
// so they are logged and otherwise ignored.
func removeObjects(ctx context.Context, storage media.Storage, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := storage.Delete(ctx, key); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("failed to remove stored file")
		}
	}
}

// invalidateFacets drops cached facet counts after a catalog write.
func invalidateFacets(ctx context.Context, cache FacetCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to invalidate facet cache")
	}
}

// attachImages loads the images of every product in one query.
func attachImages(ctx context.Context, images ImageStore, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}

	byProduct, err := images.ListForOwners(ctx, ids)
	if err != nil {
		return err
	}
	for i := range products {
		products[i].Images = byProduct[products[i].ID]
	}
	return nil
}

func categoryNotFound() error {
	return errs.NewNotFoundError("Category not found", true, nil)
}

func invalidReference(field string, id int64) error {
	return errs.NewFieldError(field, fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(id)))
}
