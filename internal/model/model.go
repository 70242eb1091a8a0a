// Package model holds the persisted domain types.
//
// Struct fields carry `db` tags matching the column names selected by the
// repository layer, so rows can be collected with pgx.RowToStructByName.
// Relations loaded in a second query are tagged `db:"-"`.
package model

// Image is the shared shape of every image attachment (product and sale item).
type Image struct {
	ID        int64  `db:"id"`
	OwnerID   int64  `db:"owner_id"`
	Key       string `db:"image"`
	IsMain    bool   `db:"is_main"`
	SortOrder int    `db:"sort_order"`
}

// MainImage returns the first image flagged main, or nil.
func MainImage(images []Image) *Image {
	for i := range images {
		if images[i].IsMain {
			return &images[i]
		}
	}
	return nil
}
