package model

import "time"

// Employee is a team member shown on the about page.
type Employee struct {
	ID        int64     `db:"id"`
	FullName  string    `db:"full_name"`
	Photo     *string   `db:"photo"`
	Positions string    `db:"positions"`
	Bio       string    `db:"bio"`
	CreatedAt time.Time `db:"created_at"`
}
