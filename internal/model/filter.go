package model

// ProductFilter narrows a product listing or a facet computation.
// Zero values mean "no restriction".
type ProductFilter struct {
	CategoryID *int64
	InStock    *bool
	Search     string

	// Attributes maps a ProductAttributes column to the accepted values.
	Attributes map[string][]string
}

// FacetValue is one distinct attribute value with its occurrence count.
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Availability splits the matching products by stock.
type Availability struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// Facets is the response of the filter endpoints.
type Facets struct {
	Total        int                     `json:"total"`
	Availability Availability            `json:"availability"`
	Filters      map[string][]FacetValue `json:"filters"`
}
