package email

// PreviewData contains sample data for every template, used for local
// previews and to check that each template renders.
var PreviewData = map[Template]any{
	TemplateOrderConfirmation: sampleOrder,
	TemplateOrderAdmin:        sampleOrder,
	TemplateContactMessage: ContactData{
		From:    "client@example.com",
		Message: "Hello! Do you have 215.9 mm PDC bits in stock?",
	},
}

var sampleOrder = OrderData{
	OrderID:        42,
	CustomerName:   "Ivan Petrov",
	Email:          "ivan@example.com",
	Phone:          "+7 900 000-00-00",
	Company:        "Drilling LLC",
	Address:        "101000, Moscow, Tverskaya 1",
	DeliveryMethod: "courier",
	Comment:        "Call before delivery",
	Total:          "31 500.00 руб.",
	Items: []OrderItemData{
		{Name: "PDC bit 215.9", Quantity: 2, UnitPrice: "15 000.00 руб.", LineTotal: "30 000.00 руб."},
		{Name: "Seal kit", Quantity: 3, UnitPrice: "500.00 руб.", LineTotal: "1 500.00 руб."},
	},
}
