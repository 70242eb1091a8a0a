package cache

import (
	"testing"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFilterHash(t *testing.T) {
	categoryID := int64(3)
	other := int64(4)

	a := model.ProductFilter{
		CategoryID: &categoryID,
		Attributes: map[string][]string{"brand": {"Varel", "Smith"}, "seal": {"RS"}},
	}
	b := model.ProductFilter{
		CategoryID: &categoryID,
		Attributes: map[string][]string{"seal": {"RS"}, "brand": {"Smith", "Varel"}},
	}

	assert.Equal(t, FilterHash(a), FilterHash(b))
	assert.Equal(t, FilterHash(model.ProductFilter{}),
		FilterHash(model.ProductFilter{Attributes: map[string][]string{"brand": {}}}))

	assert.NotEqual(t, FilterHash(a), FilterHash(model.ProductFilter{CategoryID: &other, Attributes: a.Attributes}))
	assert.NotEqual(t, FilterHash(model.ProductFilter{}), FilterHash(model.ProductFilter{Search: "bit"}))
}

func TestFilterHashDoesNotMutateInput(t *testing.T) {
	values := []string{"b", "a"}
	FilterHash(model.ProductFilter{Attributes: map[string][]string{"brand": values}})
	assert.Equal(t, []string{"b", "a"}, values)
}
