package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/geology-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	confirmations []string
	adminOrders   []int64
	contacts      []email.ContactData
	err           error
}

func (f *fakeMailer) SendOrderConfirmation(to string, data email.OrderData) error {
	f.confirmations = append(f.confirmations, to)
	return f.err
}

func (f *fakeMailer) SendOrderAdminNotification(data email.OrderData) error {
	f.adminOrders = append(f.adminOrders, data.OrderID)
	return f.err
}

func (f *fakeMailer) SendContactMessage(data email.ContactData) error {
	f.contacts = append(f.contacts, data)
	return f.err
}

func newTestJobService(mailer Mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger, mailer: mailer}
}

func TestEmailTasksRouteToMailer(t *testing.T) {
	mailer := &fakeMailer{}
	mux := newTestJobService(mailer).Mux()
	ctx := context.Background()

	order := email.OrderData{OrderID: 9, CustomerName: "Ivan"}

	confirmation, err := NewOrderConfirmationTask("ivan@example.com", order)
	require.NoError(t, err)
	admin, err := NewOrderAdminTask(order)
	require.NoError(t, err)
	contact, err := NewContactMessageTask(email.ContactData{From: "a@b.c", Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, mux.ProcessTask(ctx, confirmation))
	require.NoError(t, mux.ProcessTask(ctx, admin))
	require.NoError(t, mux.ProcessTask(ctx, contact))

	assert.Equal(t, []string{"ivan@example.com"}, mailer.confirmations)
	assert.Equal(t, []int64{9}, mailer.adminOrders)
	require.Len(t, mailer.contacts, 1)
	assert.Equal(t, "hi", mailer.contacts[0].Message)
}

func TestTaskPayloadShape(t *testing.T) {
	task, err := NewOrderConfirmationTask("ivan@example.com", email.OrderData{OrderID: 3, Total: "10.00 руб."})
	require.NoError(t, err)
	assert.Equal(t, TaskOrderConfirmation, task.Type())

	var payload OrderEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "ivan@example.com", payload.To)
	assert.Equal(t, int64(3), payload.Order.OrderID)
}

func TestHandlerFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("mailer error is returned for retry", func(t *testing.T) {
		mux := newTestJobService(&fakeMailer{err: errors.New("smtp down")}).Mux()
		task, err := NewOrderAdminTask(email.OrderData{OrderID: 1})
		require.NoError(t, err)

		err = mux.ProcessTask(ctx, task)
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("corrupt payload skips retry", func(t *testing.T) {
		mux := newTestJobService(&fakeMailer{}).Mux()

		err := mux.ProcessTask(ctx, asynq.NewTask(TaskContactMessage, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}
