package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/geology-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleError_Constraints(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		code    string
		message string
		fields  []errs.FieldError
	}{
		{
			name:    "unique slug",
			pgErr:   &pgconn.PgError{Code: "23505", TableName: "categories", ConstraintName: "categories_slug_key"},
			code:    "CATEGORY_ALREADY_EXISTS",
			message: "A Category with this Slug already exists",
		},
		{
			name:    "missing reference",
			pgErr:   &pgconn.PgError{Code: "23503", TableName: "products", ColumnName: "category_id"},
			code:    "PRODUCT_NOT_FOUND",
			message: "The referenced Category does not exist",
		},
		{
			name:    "not null",
			pgErr:   &pgconn.PgError{Code: "23502", TableName: "employees", ColumnName: "full_name"},
			code:    "EMPLOYEE_REQUIRED",
			message: "The Full Name is required",
			fields:  []errs.FieldError{{Field: "full_name", Error: "is required"}},
		},
		{
			name:    "check constraint",
			pgErr:   &pgconn.PgError{Code: "23514", TableName: "sale_items", ConstraintName: "sale_items_price_check"},
			code:    "SALE_ITEM_INVALID",
			message: "One or more values do not meet required conditions",
			fields:  []errs.FieldError{{Field: "price", Error: "is invalid"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := requireHTTPError(t, HandleError(fmt.Errorf("insert: %w", tt.pgErr)))

			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.Message)
			assert.Equal(t, tt.fields, httpErr.Errors)
		})
	}
}

func TestHandleError_NotFound(t *testing.T) {
	httpErr := requireHTTPError(t, HandleError(fmt.Errorf("table:products: %w", pgx.ErrNoRows)))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Product not found", httpErr.Message)

	httpErr = requireHTTPError(t, HandleError(fmt.Errorf("table:sale_items:slug=drill-bits: %w", pgx.ErrNoRows)))
	assert.Equal(t, "Sale Item not found", httpErr.Message)

	httpErr = requireHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_Passthrough(t *testing.T) {
	original := errs.NewNotFoundError("Invalid page.", false, nil)
	assert.Same(t, original, HandleError(original))

	httpErr := requireHTTPError(t, HandleError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "slug", extractColumnForUniqueViolation("unique_products_slug"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("employees_email_key"))
	assert.Empty(t, extractColumnForUniqueViolation("pk"))
	assert.Empty(t, extractColumnForUniqueViolation(""))
}
