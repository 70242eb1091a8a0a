package media

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/deppfellow/geology-api/internal/config"
	"github.com/deppfellow/geology-api/internal/lib/utils"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Storage persists uploaded files addressed by key.
type Storage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	// Copy duplicates the object at from under to, overwriting to.
	Copy(ctx context.Context, from, to string) error
	// URL returns the absolute URL of key. baseURL is the scheme and host of
	// the current request; backends with their own public host ignore it.
	URL(baseURL, key string) string
}

// NewStorage builds the backend selected by cfg.Driver.
func NewStorage(ctx context.Context, cfg *config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "local":
		return NewLocalStorage(afero.NewBasePathFs(afero.NewOsFs(), cfg.LocalRoot), cfg.MediaURL), nil
	case "s3":
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Key builds a unique storage key: <prefix>/<slug(name)>-<8 hex><ext>.
func Key(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := utils.Slugify(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if name == "" {
		name = "image"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return path.Join(prefix, fmt.Sprintf("%s-%s%s", name, suffix, ext))
}

// EmployeePhotoKey names a photo after its owner: employees/<slug>-<id><ext>.
func EmployeePhotoKey(fullName string, id int64, ext string) string {
	name := utils.Slugify(fullName)
	if name == "" {
		name = "employee"
	}
	return path.Join("employees", fmt.Sprintf("%s-%d%s", name, id, strings.ToLower(ext)))
}
