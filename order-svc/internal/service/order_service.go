package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"redpotion-core/order-svc/internal/domain"
)

var ErrInvalidOrderPayload = errors.New("invalid order payload")

type OrderService struct {
	repository OrderRepository
	publisher  EventPublisher
	qrEncoder  QRGenerator
}

func NewOrderService(repository OrderRepository, publisher EventPublisher, qrEncoder QRGenerator) *OrderService {
	return &OrderService{repository: repository, publisher: publisher, qrEncoder: qrEncoder}
}

// ItemTotal prices one line of the cart snapshot: add-ons are charged per
// unit, scaled by quantity.
func ItemTotal(item domain.OrderItem) int64 {
	unit := item.Price
	for _, a := range item.AddOns {
		unit += a.Price
	}
	return unit * int64(item.Quantity)
}

// Create recomputes all money amounts server-side; the client-sent totals are
// never trusted.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if order.RestaurantID == "" || order.CustomerID == "" || len(order.Items) == 0 {
		return ErrInvalidOrderPayload
	}
	for _, item := range order.Items {
		if item.Quantity < 1 {
			return ErrInvalidOrderPayload
		}
	}

	var subtotal int64
	for _, item := range order.Items {
		subtotal += ItemTotal(item)
	}
	order.Subtotal = subtotal
	order.Total = subtotal + order.DeliveryFee
	order.Status = domain.OrderPending
	order.IsPaid = false

	seq, err := s.repository.NextOrderSequence()
	if err != nil {
		return err
	}
	order.OrderNumber = fmt.Sprintf("RP-%s-%04d", time.Now().Format("20060102"), seq)

	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PayTransfer
	}

	if err := s.repository.CreateOrder(order); err != nil {
		return err
	}

	if s.qrEncoder != nil && order.PaymentMethod != domain.PayCash {
		if qr, err := s.qrEncoder.Generate(order.OrderNumber, order.Total); err == nil {
			_ = s.repository.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, domain.OrderEvent{
			Type:         domain.EventOrderCreated,
			OrderID:      order.ID,
			OrderNumber:  order.OrderNumber,
			RestaurantID: order.RestaurantID,
			Amount:       order.Total,
			Timestamp:    time.Now(),
		})
	}

	return nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repository.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	order.LatestSlip, err = s.repository.LatestSlip(order.ID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListMyOrders returns newest first, each with its latest slip so the client
// can derive the workflow state without extra calls.
func (s *OrderService) ListMyOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	orders, err := s.repository.ListOrdersByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		slip, err := s.repository.LatestSlip(orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].LatestSlip = slip
	}
	return orders, nil
}

// PromptPayQR regenerates lazily when the stored image is missing, mirroring
// the slip-based payment flow: the QR encodes the order total.
func (s *OrderService) PromptPayQR(ctx context.Context, orderID string) ([]byte, error) {
	qr, err := s.repository.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		order, err := s.repository.GetOrder(orderID)
		if err != nil {
			return nil, err
		}
		if regenerated, err := s.qrEncoder.Generate(order.OrderNumber, order.Total); err == nil {
			_ = s.repository.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}
