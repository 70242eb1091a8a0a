package email

// Template names an embedded HTML template (templates/<name>.html).
type Template string

const (
	TemplateOrderConfirmation Template = "order_confirmation"
	TemplateOrderAdmin        Template = "order_admin"
	TemplateContactMessage    Template = "contact_message"
)

// OrderItemData is one line of an order email.
type OrderItemData struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// OrderData feeds both order templates. Prices are preformatted strings.
type OrderData struct {
	OrderID        int64           `json:"order_id"`
	CustomerName   string          `json:"customer_name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Company        string          `json:"company"`
	Address        string          `json:"address"`
	DeliveryMethod string          `json:"delivery_method"`
	Comment        string          `json:"comment"`
	Total          string          `json:"total"`
	Items          []OrderItemData `json:"items"`
}

// ContactData feeds the contact_message template.
type ContactData struct {
	From    string `json:"from"`
	Message string `json:"message"`
}
