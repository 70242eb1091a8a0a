package service

import (
	"context"

	"github.com/deppfellow/geology-api/internal/lib/email"
	"github.com/deppfellow/geology-api/internal/lib/job"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/rs/zerolog"
)

type ContactService struct {
	messages ContactStore
	queue    Enqueuer
}

func NewContactService(messages ContactStore, queue Enqueuer) *ContactService {
	return &ContactService{messages: messages, queue: queue}
}

// Create stores the message and queues the admin notification. A queueing
// failure does not fail the request.
func (s *ContactService) Create(ctx context.Context, req *model.CreateContactMessageRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{Email: req.Email, Message: req.Message}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	log := zerolog.Ctx(ctx).With().Int64("contact_message_id", msg.ID).Logger()
	log.Info().Msg("contact message received")

	task, err := job.NewContactMessageTask(email.ContactData{From: msg.Email, Message: msg.Message})
	if err == nil && s.queue != nil {
		_, err = s.queue.EnqueueContext(ctx, task)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to enqueue contact message email")
	}
	return msg, nil
}
