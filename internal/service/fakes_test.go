package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"sort"
	"testing"

	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func errNotFound(table string) error {
	return fmt.Errorf("table:%s: %w", table, pgx.ErrNoRows)
}

type fakeCategories struct {
	rows   map[int64]model.Category
	nextID int64
}

func newFakeCategories(cats ...model.Category) *fakeCategories {
	f := &fakeCategories{rows: map[int64]model.Category{}}
	for _, c := range cats {
		f.rows[c.ID] = c
		f.nextID = max(f.nextID, c.ID)
	}
	return f
}

func (f *fakeCategories) List(_ context.Context, page model.Page) ([]model.Category, int, error) {
	var out []model.Category
	for _, c := range f.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := len(out)
	start := min(page.Offset(), total)
	end := min(start+page.Size, total)
	return out[start:end], total, nil
}

func (f *fakeCategories) GetByID(_ context.Context, id int64) (*model.Category, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, errNotFound("categories")
	}
	return &c, nil
}

func (f *fakeCategories) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeCategories) Create(_ context.Context, c *model.Category) error {
	f.nextID++
	c.ID = f.nextID
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCategories) Update(_ context.Context, c *model.Category) error {
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

type fakeProducts struct {
	rows        map[int64]model.Product
	nextID      int64
	facets      *model.Facets
	facetsCalls int
	onFacets    func()
}

func newFakeProducts(products ...model.Product) *fakeProducts {
	f := &fakeProducts{rows: map[int64]model.Product{}}
	for _, p := range products {
		f.rows[p.ID] = p
		f.nextID = max(f.nextID, p.ID)
	}
	return f
}

func (f *fakeProducts) matching(filter model.ProductFilter) []model.Product {
	var out []model.Product
	for _, p := range f.rows {
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeProducts) List(_ context.Context, filter model.ProductFilter, page model.Page) ([]model.Product, int, error) {
	all := f.matching(filter)
	start := min(page.Offset(), len(all))
	end := min(start+page.Size, len(all))
	return all[start:end], len(all), nil
}

func (f *fakeProducts) ListAll(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return f.matching(filter), nil
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*model.Product, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, errNotFound("products")
	}
	return &p, nil
}

func (f *fakeProducts) GetByIDs(_ context.Context, ids []int64) (map[int64]model.Product, error) {
	out := map[int64]model.Product{}
	for _, id := range ids {
		if p, ok := f.rows[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakeProducts) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeProducts) Create(_ context.Context, p *model.Product) error {
	f.nextID++
	p.ID = f.nextID
	f.rows[p.ID] = *p
	return nil
}

func (f *fakeProducts) Update(_ context.Context, p *model.Product) error {
	f.rows[p.ID] = *p
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return errNotFound("products")
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeProducts) Facets(_ context.Context, _ model.ProductFilter) (*model.Facets, error) {
	f.facetsCalls++
	if f.onFacets != nil {
		f.onFacets()
	}
	return f.facets, nil
}

type fakeImages struct {
	rows    map[int64]model.Image
	nextID  int64
	creates int
}

func newFakeImages(images ...model.Image) *fakeImages {
	f := &fakeImages{rows: map[int64]model.Image{}}
	for _, img := range images {
		f.rows[img.ID] = img
		f.nextID = max(f.nextID, img.ID)
	}
	return f
}

func (f *fakeImages) sorted() []model.Image {
	var out []model.Image
	for _, img := range f.rows {
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeImages) List(_ context.Context, ownerID *int64) ([]model.Image, error) {
	var out []model.Image
	for _, img := range f.sorted() {
		if ownerID == nil || img.OwnerID == *ownerID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImages) ListForOwners(_ context.Context, ids []int64) (map[int64][]model.Image, error) {
	out := map[int64][]model.Image{}
	for _, img := range f.sorted() {
		for _, id := range ids {
			if img.OwnerID == id {
				out[id] = append(out[id], img)
			}
		}
	}
	return out, nil
}

func (f *fakeImages) GetByID(_ context.Context, id int64) (*model.Image, error) {
	img, ok := f.rows[id]
	if !ok {
		return nil, errNotFound("product_images")
	}
	return &img, nil
}

func (f *fakeImages) Create(_ context.Context, img *model.Image) error {
	f.creates++
	f.nextID++
	img.ID = f.nextID
	f.rows[img.ID] = *img
	return nil
}

func (f *fakeImages) Update(_ context.Context, img *model.Image) error {
	f.rows[img.ID] = *img
	return nil
}

func (f *fakeImages) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeImages) KeysForOwner(_ context.Context, ownerID int64) ([]string, error) {
	var keys []string
	for _, img := range f.sorted() {
		if img.OwnerID == ownerID {
			keys = append(keys, img.Key)
		}
	}
	return keys, nil
}

type fakeOrders struct {
	created []*model.Order
}

func (f *fakeOrders) Create(_ context.Context, o *model.Order) error {
	o.ID = int64(len(f.created) + 1)
	f.created = append(f.created, o)
	return nil
}

type fakeQueue struct {
	tasks []*asynq.Task
	err   error
}

func (q *fakeQueue) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

type fakeCache struct {
	entries     map[string]*model.Facets
	version     int
	getErr      error
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*model.Facets{}}
}

func (c *fakeCache) key(f model.ProductFilter) string {
	scope := "all"
	if f.CategoryID != nil {
		scope = fmt.Sprint(*f.CategoryID)
	}
	return fmt.Sprintf("v%d:%s", c.version, scope)
}

func (c *fakeCache) Get(_ context.Context, f model.ProductFilter) (*model.Facets, string, error) {
	if c.getErr != nil {
		return nil, "", c.getErr
	}
	key := c.key(f)
	return c.entries[key], key, nil
}

func (c *fakeCache) Set(_ context.Context, key string, facets *model.Facets) error {
	c.entries[key] = facets
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context) error {
	c.invalidated++
	c.version++
	return nil
}

var errBoom = errors.New("boom")

func memStorage() (*media.LocalStorage, afero.Fs) {
	fs := afero.NewMemMapFs()
	return media.NewLocalStorage(fs, "/media"), fs
}

// storedFiles lists every file below the storage root.
func storedFiles(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	var files []string
	err := afero.Walk(fs, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func pngUpload(t *testing.T, name string) *model.Upload {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))))
	return &model.Upload{Filename: name, Data: buf.Bytes()}
}
