package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/geology-api/internal/config"
	"github.com/deppfellow/geology-api/internal/errs"
	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/deppfellow/geology-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, filename string, data []byte, values map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestFormUpload(t *testing.T) {
	e := echo.New()

	t.Run("reads the file", func(t *testing.T) {
		req := multipartRequest(t, "image", "bit.png", []byte("png bytes"), nil)
		c := e.NewContext(req, httptest.NewRecorder())

		up, err := formUpload(c, "image")
		require.NoError(t, err)
		require.NotNil(t, up)
		assert.Equal(t, "bit.png", up.Filename)
		assert.Equal(t, []byte("png bytes"), up.Data)
	})

	t.Run("missing field", func(t *testing.T) {
		req := multipartRequest(t, "", "", nil, map[string]string{"name": "Bits"})
		c := e.NewContext(req, httptest.NewRecorder())

		up, err := formUpload(c, "image")
		require.NoError(t, err)
		assert.Nil(t, up)
	})

	t.Run("json body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Bits"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())

		up, err := formUpload(c, "image")
		require.NoError(t, err)
		assert.Nil(t, up)
	})

	t.Run("too large", func(t *testing.T) {
		req := multipartRequest(t, "photo", "big.jpg", make([]byte, media.MaxImageSize+1), nil)
		c := e.NewContext(req, httptest.NewRecorder())

		_, err := formUpload(c, "photo")
		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "photo", httpErr.Errors[0].Field)
		assert.Contains(t, httpErr.Errors[0].Error, "file size must not exceed")
	})
}

type greetRequest struct {
	ID   int64  `param:"id" json:"-" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
}

func (r *greetRequest) Validate() error {
	return validation.Struct(r)
}

type greeting struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func TestHandle(t *testing.T) {
	e := echo.New()
	h := Handler{}

	calls := 0
	greet := func(c echo.Context, req *greetRequest) (greeting, error) {
		calls++
		return greeting{ID: req.ID, Message: "hello " + req.Name}, nil
	}
	e.POST("/greet/:id", Handle(h, greet, http.StatusCreated, &greetRequest{}))

	t.Run("binds, validates and writes the result", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/greet/7", strings.NewReader(`{"name":"driller"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got greeting
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, greeting{ID: 7, Message: "hello driller"}, got)
	})

	t.Run("validation failure skips the handler", func(t *testing.T) {
		before := calls
		req := httptest.NewRequest(http.MethodPost, "/greet/7", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/greet/:id")
		c.SetParamNames("id")
		c.SetParamValues("7")

		err := Handle(h, greet, http.StatusCreated, &greetRequest{})(c)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "name", httpErr.Errors[0].Field)
		assert.Equal(t, before, calls)
	})

	t.Run("requests do not share payloads", func(t *testing.T) {
		for _, name := range []string{"first", "second"} {
			req := httptest.NewRequest(http.MethodPost, "/greet/3", strings.NewReader(`{"name":"`+name+`"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Contains(t, rec.Body.String(), "hello "+name)
		}
	})
}

type idOnly struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *idOnly) Validate() error {
	return validation.Struct(r)
}

func TestHandleNoContent(t *testing.T) {
	e := echo.New()
	var deleted int64
	remove := func(c echo.Context, req *idOnly) error {
		deleted = req.ID
		return nil
	}
	e.DELETE("/greet/:id", HandleNoContent(Handler{}, remove, http.StatusNoContent, &idOnly{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/greet/9", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(9), deleted)
}

func TestRobots(t *testing.T) {
	s := &server.Server{Config: &config.Config{Server: config.ServerConfig{RobotsTxt: "User-agent: *\nDisallow: /docs\n"}}}
	e := echo.New()
	e.GET("/robots.txt", NewRobotsHandler(s).Serve)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain))
	assert.Equal(t, "User-agent: *\nDisallow: /docs\n", rec.Body.String())
}
