package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/geology-api/internal/model"
)

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, m *model.ContactMessage) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO contact_messages (email, message)
		VALUES ($1, $2)
		RETURNING id, created_at`, m.Email, m.Message,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
