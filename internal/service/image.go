package service

import (
	"context"

	"github.com/deppfellow/geology-api/internal/errs"
	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/rs/zerolog"
)

// ImageService manages the image attachments of one owner kind (products
// or sale items).
type ImageService struct {
	images     ImageStore
	owners     OwnerChecker
	storage    media.Storage
	prefix     string
	ownerField string
}

func NewProductImageService(images ImageStore, products OwnerChecker, storage media.Storage) *ImageService {
	return &ImageService{images: images, owners: products, storage: storage, prefix: "products", ownerField: "product"}
}

func NewSaleItemImageService(images ImageStore, saleItems OwnerChecker, storage media.Storage) *ImageService {
	return &ImageService{images: images, owners: saleItems, storage: storage, prefix: "sale_items", ownerField: "sale_item"}
}

// List returns all images, or those of ownerID when given.
func (s *ImageService) List(ctx context.Context, ownerID *int64) ([]model.Image, error) {
	return s.images.List(ctx, ownerID)
}

func (s *ImageService) Get(ctx context.Context, id int64) (*model.Image, error) {
	return s.images.GetByID(ctx, id)
}

func (s *ImageService) Create(ctx context.Context, in model.ImageInput) (*model.Image, error) {
	if in.Upload == nil {
		return nil, errs.NewFieldError("image", "No file was submitted.")
	}
	if in.OwnerID == nil {
		return nil, errs.NewFieldError(s.ownerField, "This field is required.")
	}
	if _, err := checkUpload("image", in.Upload); err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, *in.OwnerID); err != nil {
		return nil, err
	}

	key, err := storeUpload(ctx, s.storage, "image", s.prefix, in.Upload)
	if err != nil {
		return nil, err
	}

	img := &model.Image{OwnerID: *in.OwnerID, Key: key}
	if in.IsMain != nil {
		img.IsMain = *in.IsMain
	}
	if in.SortOrder != nil {
		img.SortOrder = *in.SortOrder
	}

	if err := s.images.Create(ctx, img); err != nil {
		removeObjects(ctx, s.storage, key)
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("owner", s.ownerField).
		Int64("owner_id", img.OwnerID).
		Int64("image_id", img.ID).
		Msg("image uploaded")
	return img, nil
}

// Update changes metadata and, when a file is given, replaces the stored
// object.
func (s *ImageService) Update(ctx context.Context, id int64, in model.ImageInput) (*model.Image, error) {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Upload != nil {
		if _, err := checkUpload("image", in.Upload); err != nil {
			return nil, err
		}
	}
	if in.OwnerID != nil && *in.OwnerID != img.OwnerID {
		if err := s.checkOwner(ctx, *in.OwnerID); err != nil {
			return nil, err
		}
		img.OwnerID = *in.OwnerID
	}
	if in.IsMain != nil {
		img.IsMain = *in.IsMain
	}
	if in.SortOrder != nil {
		img.SortOrder = *in.SortOrder
	}

	oldKey := ""
	if in.Upload != nil {
		key, err := storeUpload(ctx, s.storage, "image", s.prefix, in.Upload)
		if err != nil {
			return nil, err
		}
		oldKey, img.Key = img.Key, key
	}

	if err := s.images.Update(ctx, img); err != nil {
		if oldKey != "" {
			removeObjects(ctx, s.storage, img.Key)
		}
		return nil, err
	}
	removeObjects(ctx, s.storage, oldKey)
	return img, nil
}

func (s *ImageService) Delete(ctx context.Context, id int64) error {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.images.Delete(ctx, id); err != nil {
		return err
	}
	removeObjects(ctx, s.storage, img.Key)
	return nil
}

func (s *ImageService) checkOwner(ctx context.Context, id int64) error {
	exists, err := s.owners.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return invalidReference(s.ownerField, id)
	}
	return nil
}
