package serializer

import (
	"net/url"
	"strconv"

	"github.com/deppfellow/geology-api/internal/model"
)

// Page is the pagination envelope of every list endpoint.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPage builds the envelope. requestURL is the absolute URL of the current
// request; next/previous keep its query and only change "page".
func NewPage[T any](requestURL *url.URL, page model.Page, total int, results []T) Page[T] {
	if results == nil {
		results = []T{}
	}
	out := Page[T]{Count: total, Results: results}

	if page.Number*page.Size < total {
		next := withPage(requestURL, page.Number+1)
		out.Next = &next
	}
	if page.Number > 1 {
		prev := withPage(requestURL, page.Number-1)
		out.Previous = &prev
	}
	return out
}

// withPage drops the page parameter for page 1, like most REST frameworks do.
func withPage(u *url.URL, number int) string {
	clone := *u
	q := clone.Query()
	if number <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(number))
	}
	clone.RawQuery = q.Encode()
	return clone.String()
}
