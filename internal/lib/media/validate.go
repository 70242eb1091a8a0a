// Package media validates uploaded images and stores them on local disk or
// in an S3-compatible bucket.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxImageSize is the upload cap for every image field.
const MaxImageSize = 5 * 1024 * 1024

// AllowedExtensions lists the accepted image file extensions.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp"}

var (
	ErrUnsupportedFormat = errors.New("unsupported image format. Allowed: jpg, jpeg, png, gif, bmp, webp, svg.")
	ErrInvalidSVG        = errors.New("invalid SVG file")
	ErrSVGScript         = errors.New("SVG file contains forbidden scripts")
	ErrCorruptImage      = errors.New("file is not a valid image")
)

// ValidateImage checks an upload before anything is persisted and returns
// its content type.
func ValidateImage(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !isAllowedExtension(ext) {
		return "", ErrUnsupportedFormat
	}

	if len(data) > MaxImageSize {
		return "", SizeError(int64(len(data)))
	}

	if ext == ".svg" {
		if !utf8.Valid(data) {
			return "", ErrInvalidSVG
		}
		if bytes.Contains(bytes.ToLower(data), []byte("<script")) {
			return "", ErrSVGScript
		}
		return "image/svg+xml", nil
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", ErrCorruptImage
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", ErrCorruptImage
	}

	return mime.String(), nil
}

// SizeError is the error for an upload of size bytes over MaxImageSize.
func SizeError(size int64) error {
	return fmt.Errorf("file size must not exceed %s. Current size: %s", FormatSize(MaxImageSize), FormatSize(size))
}

// IsSVG reports whether a stored key points at an SVG file.
func IsSVG(key string) bool {
	return strings.HasSuffix(strings.ToLower(key), ".svg")
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// FormatSize renders a byte count the way file managers do: "512 bytes",
// "12.3 KB", "5.0 MB".
func FormatSize(n int64) string {
	const unit = 1024
	switch {
	case n < unit:
		return fmt.Sprintf("%d bytes", n)
	case n < unit*unit:
		return fmt.Sprintf("%.1f KB", float64(n)/unit)
	case n < unit*unit*unit:
		return fmt.Sprintf("%.1f MB", float64(n)/(unit*unit))
	default:
		return fmt.Sprintf("%.1f GB", float64(n)/(unit*unit*unit))
	}
}
