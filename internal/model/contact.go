package model

import "time"

// ContactMessage is a message left through the site contact form.
type ContactMessage struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
