package model

// Category groups products. Image is an optional storage key.
type Category struct {
	ID    int64   `db:"id"`
	Name  string  `db:"name"`
	Image *string `db:"image"`

	Products []Product `db:"-"`
}
