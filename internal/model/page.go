package model

import "math"

// DefaultPageSize is the number of rows returned per list page.
const DefaultPageSize = 20

// maxPage keeps Offset within a Postgres INTEGER. Larger page numbers are
// clamped to it, which is still past the end of any real listing.
const maxPage = math.MaxInt32 / DefaultPageSize

// Page identifies a 1-based page of a listing.
type Page struct {
	Number int
	Size   int
}

// NewPage normalizes user input: non-positive numbers become page 1.
func NewPage(number int) Page {
	if number < 1 {
		number = 1
	}
	if number > maxPage {
		number = maxPage
	}
	return Page{Number: number, Size: DefaultPageSize}
}

// Offset is the SQL OFFSET for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
