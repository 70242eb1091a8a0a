package job

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/geology-api/internal/lib/email"
	"github.com/hibiken/asynq"
)

// Task type names stored in Redis. Asynq routes on these strings.
const (
	TaskOrderConfirmation = "email:order_confirmation"
	TaskOrderAdmin        = "email:order_admin"
	TaskContactMessage    = "email:contact_message"
)

// OrderEmailPayload is the payload of both order email tasks. To is only
// used by the customer confirmation.
type OrderEmailPayload struct {
	To    string          `json:"to,omitempty"`
	Order email.OrderData `json:"order"`
}

// ContactEmailPayload is the payload of the contact message task.
type ContactEmailPayload struct {
	Contact email.ContactData `json:"contact"`
}

func newEmailTask(taskType, queue string, payload any) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		taskType,
		data,
		asynq.MaxRetry(3),
		asynq.Queue(queue),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewOrderConfirmationTask sends the customer confirmation on the critical
// queue.
func NewOrderConfirmationTask(to string, order email.OrderData) (*asynq.Task, error) {
	return newEmailTask(TaskOrderConfirmation, "critical", OrderEmailPayload{To: to, Order: order})
}

func NewOrderAdminTask(order email.OrderData) (*asynq.Task, error) {
	return newEmailTask(TaskOrderAdmin, "default", OrderEmailPayload{Order: order})
}

func NewContactMessageTask(contact email.ContactData) (*asynq.Task, error) {
	return newEmailTask(TaskContactMessage, "default", ContactEmailPayload{Contact: contact})
}
