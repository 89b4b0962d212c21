package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// How many times checkout regenerates the order code after a unique
// constraint collision before giving up.
const codeAttempts = 3

type orderService struct {
	repo   *repository.Repository
	events EventBus
	log    *zap.Logger

	now       func() time.Time
	genSuffix func() string
}

func NewOrderService(repo *repository.Repository, events EventBus, log *zap.Logger) OrderService {
	return &orderService{
		repo:      repo,
		events:    events,
		log:       log,
		now:       time.Now,
		genSuffix: randomSuffix,
	}
}

// randomSuffix yields 6 uppercase hex characters from uuid randomness.
func randomSuffix() string {
	u := uuid.New()
	return fmt.Sprintf("%X", u[:3])
}

func orderCode(t time.Time, suffix string) string {
	return fmt.Sprintf("ORD-%s-%s", t.Format("20060102"), suffix)
}

// sanitized holds the post-sanitation checkout payload.
type sanitized struct {
	customer models.Customer
	shipping string
	shipCost int64
	payment  string
	notes    *string
	items    []CartItem
	subtotal int64 // заполняется внутри транзакции
}

// validate normalizes and validates everything that does not need the
// database. Stock and price checks run later, inside the write transaction.
func (s *orderService) validate(in PlaceOrderInput) (*sanitized, error) {
	name := sanitizeText(in.Customer.Name, maxNameLen)
	phone := sanitizeText(in.Customer.Phone, maxPhoneLen)
	email := sanitizeText(in.Customer.Email, maxEmailLen)
	address := sanitizeText(in.Customer.Address, maxAddressLen)
	city := sanitizeText(in.Customer.City, maxCityLen)
	postal := sanitizeText(in.Customer.PostalCode, maxPostalCodeLen)

	ship := strings.ToUpper(sanitizeText(in.ShippingMethod, maxMethodLen))
	pay := strings.ToUpper(sanitizeText(in.PaymentMethod, maxMethodLen))
	notes := sanitizeText(in.Notes, maxNotesLen)

	if name == "" || phone == "" || address == "" || city == "" || postal == "" {
		return nil, ErrMissingField
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	shipCost, ok := shippingCost(ship)
	if !ok {
		return nil, ErrInvalidShipping
	}
	if pay != PaymentCOD && pay != PaymentTransfer {
		return nil, ErrInvalidPayment
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Qty <= 0 {
			return nil, ErrInvalidItem
		}
	}

	out := &sanitized{
		customer: models.Customer{
			Name:       name,
			Phone:      phone,
			Address:    address,
			City:       city,
			PostalCode: postal,
		},
		shipping: ship,
		shipCost: shipCost,
		payment:  pay,
		items:    in.Items,
	}
	if email != "" {
		out.customer.Email = &email
	}
	if notes != "" {
		out.notes = &notes
	}
	return out, nil
}

// PlaceOrder validates the submitted cart and persists customer, order,
// line items and stock decrements as one atomic unit. Prices and stock are
// re-read from the catalog inside the transaction; client-supplied prices
// are never trusted.
func (s *orderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error) {
	sv, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	var (
		result *PlaceOrderResult
		event  OrderPlacedEvent
	)

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code := orderCode(s.now(), s.genSuffix())

		err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
			return s.writeOrder(ctx, tx, sv, code, &result, &event)
		})
		if err == nil {
			break
		}
		if repository.IsUniqueViolation(err) {
			s.log.Warn("order code collision, retrying",
				zap.String("order_code", code),
				zap.Int("attempt", attempt+1))
			continue
		}
		break
	}

	if err != nil {
		if isCheckoutError(err) {
			return nil, err
		}
		s.log.Error("order persistence failed", zap.Error(err))
		return nil, ErrOrderPersistence
	}

	if s.events != nil {
		if perr := s.events.PublishOrderPlaced(ctx, event); perr != nil {
			// Заказ уже сохранён, поэтому только логируем.
			s.log.Warn("publish order placed event", zap.Error(perr))
		}
	}

	return result, nil
}

// writeOrder is the body of the checkout transaction: the stock check and
// every insert live inside the same unit so a concurrent submission cannot
// invalidate the check before the write commits.
func (s *orderService) writeOrder(
	ctx context.Context,
	tx *repository.Repository,
	sv *sanitized,
	code string,
	result **PlaceOrderResult,
	event *OrderPlacedEvent,
) error {
	now := s.now()

	var (
		subtotal int64
		itemsDB  []models.OrderItem
	)
	for _, it := range sv.items {
		p, err := tx.Products.GetByID(ctx, it.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: id %d", ErrProductNotFound, it.ProductID)
		}
		if p.Stock < it.Qty {
			return fmt.Errorf("%w for %s", ErrInsufficientStock, p.Name)
		}

		line := p.Price * it.Qty
		subtotal += line
		itemsDB = append(itemsDB, models.OrderItem{
			ProductID:     p.ID,
			NameSnapshot:  p.Name,
			PriceSnapshot: p.Price,
			Qty:           it.Qty,
			LineTotal:     line,
		})
	}
	total := subtotal + sv.shipCost

	customer := sv.customer
	customer.CreatedAt = now
	if err := tx.Customers.Create(ctx, &customer); err != nil {
		return err
	}

	order := models.Order{
		OrderCode:      code,
		CustomerID:     customer.ID,
		ShippingMethod: sv.shipping,
		ShippingCost:   sv.shipCost,
		PaymentMethod:  sv.payment,
		Notes:          sv.notes,
		Subtotal:       subtotal,
		Total:          total,
		Status:         models.OrderStatusNew,
		CreatedAt:      now,
	}
	if err := tx.Orders.Create(ctx, &order); err != nil {
		return err
	}

	for i := range itemsDB {
		itemsDB[i].OrderID = order.ID
	}
	if err := tx.OrderItems.BulkCreate(ctx, itemsDB); err != nil {
		return err
	}

	for _, it := range sv.items {
		ok, err := tx.Products.DecrementStock(ctx, it.ProductID, it.Qty)
		if err != nil {
			return err
		}
		if !ok {
			// Проверка выше прошла, но запас успел измениться.
			return fmt.Errorf("%w: product id %d", ErrInsufficientStock, it.ProductID)
		}
	}

	*result = &PlaceOrderResult{
		OrderID:   order.ID,
		OrderCode: order.OrderCode,
		Total:     order.Total,
	}

	evItems := make([]OrderItemEvent, 0, len(itemsDB))
	for _, it := range itemsDB {
		evItems = append(evItems, OrderItemEvent{
			ProductID: it.ProductID,
			Name:      it.NameSnapshot,
			Price:     it.PriceSnapshot,
			Qty:       it.Qty,
			LineTotal: it.LineTotal,
		})
	}
	*event = OrderPlacedEvent{
		OrderID:        order.ID,
		OrderCode:      order.OrderCode,
		Subtotal:       order.Subtotal,
		ShippingMethod: order.ShippingMethod,
		ShippingCost:   order.ShippingCost,
		PaymentMethod:  order.PaymentMethod,
		Total:          order.Total,
		Items:          evItems,
		CreatedAt:      order.CreatedAt,
	}

	return nil
}

// isCheckoutError reports whether err is one of the client-correctable
// validation failures that may surface from inside the transaction.
func isCheckoutError(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrInsufficientStock)
}

func (s *orderService) GetOrderDetail(ctx context.Context, id int64) (*repository.OrderDetailRow, []models.OrderItem, error) {
	if id <= 0 {
		return nil, nil, ErrInvalidID
	}
	ord, err := s.repo.Orders.GetDetail(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if ord == nil {
		return nil, nil, ErrOrderNotFound
	}
	items, err := s.repo.OrderItems.GetByOrderID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if items == nil {
		items = []models.OrderItem{}
	}
	return ord, items, nil
}
