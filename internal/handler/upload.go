package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/deppfellow/geology-api/internal/errs"
	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/labstack/echo/v4"
)

// formUpload reads an optional file field of a multipart request. JSON
// requests and missing fields yield nil.
func formUpload(c echo.Context, field string) (*model.Upload, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewBadRequestError("Invalid multipart form", false, nil, nil, nil)
	}

	// Reject oversized files from the header before reading them.
	if fh.Size > media.MaxImageSize {
		return nil, errs.NewFieldError(field, media.SizeError(fh.Size).Error())
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, media.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", field, err)
	}

	return &model.Upload{Filename: fh.Filename, Data: data}, nil
}
