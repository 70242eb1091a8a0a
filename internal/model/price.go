package model

import (
	"github.com/deppfellow/geology-api/internal/validation"
	"github.com/shopspring/decimal"
)

var (
	MinPrice = decimal.RequireFromString("0.01")
	// numeric(10,2)
	maxPrice = decimal.RequireFromString("99999999.99")
)

// priceError checks a money value against the numeric(10,2) column it is
// stored in and the 0.01 floor. It returns nil when d is acceptable.
func priceError(field string, d decimal.Decimal) *validation.CustomValidationError {
	var msg string
	switch {
	case d.LessThan(MinPrice):
		msg = "must be greater than or equal to 0.01"
	case !d.Equal(d.Truncate(2)):
		msg = "must have no more than 2 decimal places"
	case d.GreaterThan(maxPrice):
		msg = "must not exceed 99999999.99"
	default:
		return nil
	}
	return &validation.CustomValidationError{Field: field, Message: msg}
}

// checkPrices validates the given field/value pairs; nil values are skipped.
func checkPrices(prices map[string]*decimal.Decimal) error {
	var errs validation.CustomValidationErrors
	for _, field := range []string{"price", "old_price", "new_price"} {
		d, ok := prices[field]
		if !ok || d == nil {
			continue
		}
		if e := priceError(field, *d); e != nil {
			errs = append(errs, *e)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
