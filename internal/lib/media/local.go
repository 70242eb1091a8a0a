package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// LocalStorage keeps files on an afero filesystem and serves them under
// mediaURL.
type LocalStorage struct {
	fs       afero.Fs
	mediaURL string
}

func NewLocalStorage(fs afero.Fs, mediaURL string) *LocalStorage {
	return &LocalStorage{fs: fs, mediaURL: strings.TrimSuffix(mediaURL, "/")}
}

func (s *LocalStorage) Save(_ context.Context, key string, data []byte, _ string) error {
	key = rooted(key)
	if err := s.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return fmt.Errorf("create media directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, key, data, 0o644); err != nil {
		return fmt.Errorf("write media file %s: %w", key, err)
	}
	return nil
}

// Delete removes key. A missing file is not an error.
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	err := s.fs.Remove(rooted(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete media file %s: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) Copy(ctx context.Context, from, to string) error {
	data, err := afero.ReadFile(s.fs, rooted(from))
	if err != nil {
		return fmt.Errorf("read media file %s: %w", from, err)
	}
	return s.Save(ctx, to, data, "")
}

func (s *LocalStorage) URL(baseURL, key string) string {
	return strings.TrimSuffix(baseURL, "/") + s.mediaURL + "/" + strings.TrimPrefix(key, "/")
}

// MediaURL is the path prefix files are served under.
func (s *LocalStorage) MediaURL() string {
	return s.mediaURL
}

// Handler serves stored files. It expects the media prefix to be stripped.
func (s *LocalStorage) Handler() http.Handler {
	return http.FileServer(afero.NewHttpFs(s.fs))
}

// rooted anchors key at the filesystem root so every afero backend resolves
// it to the same file.
func rooted(key string) string {
	return path.Clean("/" + key)
}
