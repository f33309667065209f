package service

import (
	"context"

	"redpotion-core/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListMyOrders(ctx context.Context, customerID string) ([]domain.Order, error)
	PromptPayQR(ctx context.Context, orderID string) ([]byte, error)
}

type SlipServiceInterface interface {
	OpenUploadForm(ctx context.Context, orderID string) (*domain.SlipForm, error)
	Submit(ctx context.Context, submission domain.SlipSubmission) (*domain.PaymentSlip, error)
	Review(ctx context.Context, slipID string, approve bool, adminNotes string) (*domain.PaymentSlip, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID string) (*domain.Order, error)
	ListOrdersByCustomer(customerID string) ([]domain.Order, error)
	MarkOrderPaid(orderID string) error
	GetQRCode(orderID string) ([]byte, error)
	SaveQRCode(orderID string, qr []byte) error
	NextOrderSequence() (int, error)

	LatestSlip(orderID string) (*domain.PaymentSlip, error)
	InsertSlip(slip *domain.PaymentSlip) error
	GetSlip(slipID string) (*domain.PaymentSlip, error)
	UpdateSlipStatus(slip *domain.PaymentSlip) error
}

type SlipFileStore interface {
	Save(orderID, filename string, data []byte) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderNumber string, amount int64) ([]byte, error)
}

var (
	_ OrderServiceInterface = (*OrderService)(nil)
	_ SlipServiceInterface  = (*SlipService)(nil)
)
