package model

import (
	"net/url"
	"testing"

	"github.com/deppfellow/geology-api/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributeQuery(t *testing.T) {
	query, err := url.ParseQuery("brand=Smith,%20Varel,&brand=Ulterra&seal=&iadc=537&page=2&search=pdc")
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"brand": {"Smith", "Varel", "Ulterra"},
		"iadc":  {"537"},
	}, ParseAttributeQuery(query))
}

func TestCategoryFiltersRequest_PathIDWins(t *testing.T) {
	req := &CategoryFiltersRequest{ID: 4, Search: "  bit  "}

	f := req.Filter()

	require.NotNil(t, f.CategoryID)
	assert.Equal(t, int64(4), *f.CategoryID)
	assert.Equal(t, "bit", f.Search)
}

func validProduct(price string) *CreateProductRequest {
	return &CreateProductRequest{
		CategoryID:  1,
		Name:        "PDC bit 215.9",
		Description: "Five blade matrix body",
		Quantity:    3,
		Price:       decimal.RequireFromString(price),
	}
}

func TestCreateProductRequest_Prices(t *testing.T) {
	tests := []struct {
		price   string
		message string
	}{
		{price: "0.01"},
		{price: "99999999.99"},
		{price: "0", message: "must be greater than or equal to 0.01"},
		{price: "-5", message: "must be greater than or equal to 0.01"},
		{price: "10.005", message: "must have no more than 2 decimal places"},
		{price: "100000000", message: "must not exceed 99999999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			err := validProduct(tt.price).Validate()
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}

			var custom validation.CustomValidationErrors
			require.ErrorAs(t, err, &custom)
			assert.Equal(t, validation.CustomValidationErrors{{Field: "price", Message: tt.message}}, custom)
		})
	}
}

func TestUpdateProductRequest_SkipsMissingPrice(t *testing.T) {
	assert.NoError(t, (&UpdateProductRequest{ID: 1}).Validate())

	zero := decimal.Zero
	assert.Error(t, (&UpdateProductRequest{ID: 1, Price: &zero}).Validate())
}

func TestCreateSaleItemRequest_ChecksBothPrices(t *testing.T) {
	req := &CreateSaleItemRequest{
		Title:       "Spring sale",
		Description: "Discounted bits",
		OldPrice:    decimal.Zero,
		NewPrice:    decimal.RequireFromString("1.001"),
	}

	var custom validation.CustomValidationErrors
	require.ErrorAs(t, req.Validate(), &custom)
	assert.Equal(t, validation.CustomValidationErrors{
		{Field: "old_price", Message: "must be greater than or equal to 0.01"},
		{Field: "new_price", Message: "must have no more than 2 decimal places"},
	}, custom)
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	valid := func() *CreateOrderRequest {
		return &CreateOrderRequest{
			FirstName:      "Ivan",
			LastName:       "Petrov",
			Phone:          "+7 900 000-00-00",
			Email:          "ivan@example.com",
			ZipCode:        "625000",
			Region:         "Tyumen Oblast",
			City:           "Tyumen",
			Address:        "Respubliki 1",
			DeliveryMethod: "pickup",
			AgreedToTerms:  true,
			Items:          []OrderItemRequest{{Product: 1, Quantity: 2}},
		}
	}

	assert.NoError(t, valid().Validate())

	tests := map[string]func(r *CreateOrderRequest){
		"terms not accepted": func(r *CreateOrderRequest) { r.AgreedToTerms = false },
		"no items":           func(r *CreateOrderRequest) { r.Items = nil },
		"zero quantity":      func(r *CreateOrderRequest) { r.Items[0].Quantity = 0 },
		"quantity over int4": func(r *CreateOrderRequest) { r.Items[0].Quantity = 3_000_000_000 },
		"bad email":          func(r *CreateOrderRequest) { r.Email = "ivan" },
		"missing city":       func(r *CreateOrderRequest) { r.City = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			r := valid()
			mutate(r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestIntegerFieldsFitInt4(t *testing.T) {
	const maxInt4 = 2147483647
	over := maxInt4 + 1
	limit := maxInt4

	product := validProduct("10")
	product.Quantity = maxInt4
	assert.NoError(t, product.Validate())
	product.Quantity = over
	assert.Error(t, product.Validate())

	assert.Error(t, (&UpdateProductRequest{ID: 1, Quantity: &over}).Validate())
	assert.NoError(t, (&UpdateProductRequest{ID: 1, Quantity: &limit}).Validate())

	assert.Error(t, (&CreateProductImageRequest{Product: 1, Order: over}).Validate())
	assert.Error(t, (&UpdateProductImageRequest{ID: 1, Order: &over}).Validate())
	assert.Error(t, (&CreateSaleItemImageRequest{SaleItem: 1, Order: over}).Validate())
	assert.Error(t, (&UpdateSaleItemImageRequest{ID: 1, Order: &over}).Validate())
	assert.NoError(t, (&CreateSaleItemImageRequest{SaleItem: 1, Order: maxInt4}).Validate())
}

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize}, NewPage(0))
	assert.Equal(t, 40, NewPage(3).Offset())

	huge := NewPage(500_000_000_000_000_000)
	assert.Positive(t, huge.Offset())
	assert.LessOrEqual(t, huge.Offset(), 2147483647)
}
