package email

import (
	"errors"
	"testing"

	"github.com/deppfellow/geology-api/internal/config"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "msg_1"}, nil
}

func newTestClient(sender Sender) *Client {
	logger := zerolog.Nop()
	return NewClientWithSender(sender, config.EmailConfig{
		FromName:     "Geology",
		FromAddress:  "noreply@geology.test",
		AdminAddress: "admin@geology.test",
	}, &logger)
}

func TestPreviewDataRendersEveryTemplate(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := Render(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, html)
		})
	}
}

func TestRenderEscapesUserInput(t *testing.T) {
	html, err := Render(TemplateContactMessage, ContactData{From: "a@b.c", Message: "<script>x</script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestOrderEmails(t *testing.T) {
	sender := &fakeSender{}
	client := newTestClient(sender)

	require.NoError(t, client.SendOrderConfirmation("ivan@example.com", sampleOrder))
	require.NoError(t, client.SendOrderAdminNotification(sampleOrder))
	require.Len(t, sender.sent, 2)

	confirmation := sender.sent[0]
	assert.Equal(t, "Geology <noreply@geology.test>", confirmation.From)
	assert.Equal(t, []string{"ivan@example.com"}, confirmation.To)
	assert.Equal(t, "Your order #42 has been received", confirmation.Subject)
	assert.Contains(t, confirmation.Html, "31 500.00 руб.")

	admin := sender.sent[1]
	assert.Equal(t, []string{"admin@geology.test"}, admin.To)
	assert.Equal(t, "New order #42", admin.Subject)
	assert.Contains(t, admin.Html, "Drilling LLC")
}

func TestSendContactMessage(t *testing.T) {
	sender := &fakeSender{}
	client := newTestClient(sender)

	require.NoError(t, client.SendContactMessage(ContactData{From: "client@example.com", Message: "Hi"}))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, ContactSubject, sender.sent[0].Subject)
	assert.Equal(t, []string{"admin@geology.test"}, sender.sent[0].To)
}

func TestSendEmailProviderFailure(t *testing.T) {
	client := newTestClient(&fakeSender{err: errors.New("quota exceeded")})

	err := client.SendContactMessage(ContactData{From: "client@example.com", Message: "Hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
