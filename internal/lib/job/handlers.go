package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/geology-api/internal/config"
	"github.com/deppfellow/geology-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Mailer is what the email task handlers send through.
type Mailer interface {
	SendOrderConfirmation(to string, data email.OrderData) error
	SendOrderAdminNotification(data email.OrderData) error
	SendContactMessage(data email.ContactData) error
}

// InitHandlers builds the Resend email client used by the task handlers.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.mailer = email.NewClient(cfg, logger)
}

func (j *JobService) handleOrderConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p OrderEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal order confirmation payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskOrderConfirmation).
		Int64("order_id", p.Order.OrderID).
		Str("to", p.To).
		Logger()

	log.Info().Msg("Processing order confirmation email task")
	if err := j.mailer.SendOrderConfirmation(p.To, p.Order); err != nil {
		log.Error().Err(err).Msg("Failed to send order confirmation email")
		return err
	}
	log.Info().Msg("Successfully sent order confirmation email")
	return nil
}

func (j *JobService) handleOrderAdminTask(ctx context.Context, t *asynq.Task) error {
	var p OrderEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal order admin payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskOrderAdmin).
		Int64("order_id", p.Order.OrderID).
		Logger()

	log.Info().Msg("Processing order admin email task")
	if err := j.mailer.SendOrderAdminNotification(p.Order); err != nil {
		log.Error().Err(err).Msg("Failed to send order admin email")
		return err
	}
	log.Info().Msg("Successfully sent order admin email")
	return nil
}

func (j *JobService) handleContactMessageTask(ctx context.Context, t *asynq.Task) error {
	var p ContactEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal contact message payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskContactMessage).
		Str("from", p.Contact.From).
		Logger()

	log.Info().Msg("Processing contact message email task")
	if err := j.mailer.SendContactMessage(p.Contact); err != nil {
		log.Error().Err(err).Msg("Failed to send contact message email")
		return err
	}
	log.Info().Msg("Successfully sent contact message email")
	return nil
}
