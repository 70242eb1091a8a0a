package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/geology-api/internal/errs"
	"github.com/deppfellow/geology-api/internal/lib/email"
	"github.com/deppfellow/geology-api/internal/lib/job"
	"github.com/deppfellow/geology-api/internal/lib/utils"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orders   OrderStore
	products ProductStore
	queue    Enqueuer
}

func NewOrderService(orders OrderStore, products ProductStore, queue Enqueuer) *OrderService {
	return &OrderService{orders: orders, products: products, queue: queue}
}

// Create prices every line from the catalog, stores the order and queues
// the customer and admin emails. Queueing failures are logged only: the
// order is already committed at that point.
func (s *OrderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	ids := make([]int64, 0, len(req.Items))
	for _, line := range req.Items {
		ids = append(ids, line.Product)
	}
	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		Status:         model.OrderStatusNew,
		Phone:          req.Phone,
		Email:          req.Email,
		Comment:        req.Comment,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Company:        req.Company,
		Country:        strings.TrimSpace(req.Country),
		ZipCode:        req.ZipCode,
		Region:         req.Region,
		City:           req.City,
		Address:        req.Address,
		DeliveryMethod: req.DeliveryMethod,
		AgreedToTerms:  req.AgreedToTerms,
		Items:          make([]model.OrderItem, 0, len(req.Items)),
	}
	if order.Country == "" {
		order.Country = model.DefaultCountry
	}

	total := decimal.Zero
	for i, line := range req.Items {
		product, ok := products[line.Product]
		if !ok {
			return nil, errs.NewFieldError(fmt.Sprintf("items[%d].product", i),
				fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(line.Product)))
		}

		productID := product.ID
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		order.Items = append(order.Items, model.OrderItem{
			ProductID:   &productID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    line.Quantity,
			LineTotal:   lineTotal,
		})
		total = total.Add(lineTotal)
	}
	order.Total = total

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("order_id", order.ID).
		Str("total", order.Total.StringFixed(2)).
		Int("items", len(order.Items)).
		Msg("order created")

	s.notify(ctx, order)
	return order, nil
}

func (s *OrderService) notify(ctx context.Context, order *model.Order) {
	log := zerolog.Ctx(ctx).With().Int64("order_id", order.ID).Logger()
	data := OrderEmailData(order)

	confirmation, err := job.NewOrderConfirmationTask(order.Email, data)
	if err == nil {
		err = s.enqueue(ctx, confirmation)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to enqueue order confirmation email")
	}

	admin, err := job.NewOrderAdminTask(data)
	if err == nil {
		err = s.enqueue(ctx, admin)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to enqueue order admin email")
	}
}

func (s *OrderService) enqueue(ctx context.Context, task *asynq.Task) error {
	if s.queue == nil {
		return fmt.Errorf("no job queue configured")
	}
	_, err := s.queue.EnqueueContext(ctx, task)
	return err
}

// OrderEmailData flattens an order into the email template data.
func OrderEmailData(o *model.Order) email.OrderData {
	items := make([]email.OrderItemData, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, email.OrderItemData{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: utils.FormatRubles(item.UnitPrice),
			LineTotal: utils.FormatRubles(item.LineTotal),
		})
	}

	address := strings.Join(nonEmpty(o.ZipCode, o.Country, o.Region, o.City, o.Address), ", ")

	return email.OrderData{
		OrderID:        o.ID,
		CustomerName:   o.FullName(),
		Email:          o.Email,
		Phone:          o.Phone,
		Company:        o.Company,
		Address:        address,
		DeliveryMethod: o.DeliveryMethod,
		Comment:        o.Comment,
		Total:          utils.FormatRubles(o.Total),
		Items:          items,
	}
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
