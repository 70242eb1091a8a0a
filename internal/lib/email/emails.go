package email

import "fmt"

// ContactSubject is the subject of the admin notification for contact form
// messages.
const ContactSubject = "New message from the Geology website"

// SendOrderConfirmation tells the customer their order was received.
func (c *Client) SendOrderConfirmation(to string, data OrderData) error {
	return c.SendEmail(
		to,
		fmt.Sprintf("Your order #%d has been received", data.OrderID),
		TemplateOrderConfirmation,
		data,
	)
}

// SendOrderAdminNotification notifies the site admin about a new order.
func (c *Client) SendOrderAdminNotification(data OrderData) error {
	return c.SendEmail(
		c.adminAddress,
		fmt.Sprintf("New order #%d", data.OrderID),
		TemplateOrderAdmin,
		data,
	)
}

// SendContactMessage forwards a contact form message to the site admin.
func (c *Client) SendContactMessage(data ContactData) error {
	return c.SendEmail(c.adminAddress, ContactSubject, TemplateContactMessage, data)
}
