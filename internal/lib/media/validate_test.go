package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func bmpBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 3))))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		wantType string
		wantErr  error
	}{
		{name: "png", filename: "bit.PNG", data: pngBytes(t), wantType: "image/png"},
		{name: "bmp", filename: "scan.bmp", data: bmpBytes(t), wantType: "image/bmp"},
		{name: "clean svg", filename: "logo.svg", data: []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), wantType: "image/svg+xml"},
		{name: "svg with script", filename: "logo.svg", data: []byte(`<svg><SCRIPT>alert(1)</SCRIPT></svg>`), wantErr: ErrSVGScript},
		{name: "svg not utf8", filename: "logo.svg", data: []byte{0xff, 0xfe, 0xfd}, wantErr: ErrInvalidSVG},
		{name: "disallowed extension", filename: "doc.pdf", data: []byte("%PDF-1.4"), wantErr: ErrUnsupportedFormat},
		{name: "no extension", filename: "image", data: pngBytes(t), wantErr: ErrUnsupportedFormat},
		{name: "text disguised as png", filename: "fake.png", data: []byte("hello world"), wantErr: ErrCorruptImage},
		{name: "truncated png", filename: "cut.png", data: pngBytes(t)[:20], wantErr: ErrCorruptImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType, err := ValidateImage(tt.filename, tt.data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, contentType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, contentType)
		})
	}
}

func TestValidateImage_TooLarge(t *testing.T) {
	data := append(pngBytes(t), make([]byte, MaxImageSize)...)

	_, err := ValidateImage("huge.png", data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5.0 MB")
	assert.True(t, strings.HasPrefix(err.Error(), "file size must not exceed"))
}

func TestValidateImage_ExactLimitIsAccepted(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg">`)
	data := append(svg, bytes.Repeat([]byte(" "), MaxImageSize-len(svg))...)

	_, err := ValidateImage("big.svg", data)
	assert.NoError(t, err)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 bytes", FormatSize(512))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "5.0 MB", FormatSize(MaxImageSize))
}

func TestIsSVG(t *testing.T) {
	assert.True(t, IsSVG("categories/logo.SVG"))
	assert.False(t, IsSVG("categories/logo.png"))
}
