package mocks

import (
	"context"
	"testing"

	"redpotion-core/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t *testing.T) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetOrder(orderID string) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) ListOrdersByCustomer(customerID string) ([]domain.Order, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) MarkOrderPaid(orderID string) error {
	return m.Called(orderID).Error(0)
}

func (m *OrderRepository) GetQRCode(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *OrderRepository) SaveQRCode(orderID string, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderRepository) NextOrderSequence() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *OrderRepository) LatestSlip(orderID string) (*domain.PaymentSlip, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSlip), args.Error(1)
}

func (m *OrderRepository) InsertSlip(slip *domain.PaymentSlip) error {
	return m.Called(slip).Error(0)
}

func (m *OrderRepository) GetSlip(slipID string) (*domain.PaymentSlip, error) {
	args := m.Called(slipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSlip), args.Error(1)
}

func (m *OrderRepository) UpdateSlipStatus(slip *domain.PaymentSlip) error {
	return m.Called(slip).Error(0)
}

type SlipFileStore struct {
	mock.Mock
}

func NewSlipFileStore(t *testing.T) *SlipFileStore {
	m := &SlipFileStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SlipFileStore) Save(orderID, filename string, data []byte) (string, error) {
	args := m.Called(orderID, filename, data)
	return args.String(0), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t *testing.T) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t *testing.T) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(orderNumber string, amount int64) ([]byte, error) {
	args := m.Called(orderNumber, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t *testing.T) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Create(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderServiceInterface) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) ListMyOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) PromptPayQR(ctx context.Context, orderID string) ([]byte, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type SlipServiceInterface struct {
	mock.Mock
}

func NewSlipServiceInterface(t *testing.T) *SlipServiceInterface {
	m := &SlipServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SlipServiceInterface) OpenUploadForm(ctx context.Context, orderID string) (*domain.SlipForm, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SlipForm), args.Error(1)
}

func (m *SlipServiceInterface) Submit(ctx context.Context, submission domain.SlipSubmission) (*domain.PaymentSlip, error) {
	args := m.Called(ctx, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSlip), args.Error(1)
}

func (m *SlipServiceInterface) Review(ctx context.Context, slipID string, approve bool, adminNotes string) (*domain.PaymentSlip, error) {
	args := m.Called(ctx, slipID, approve, adminNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSlip), args.Error(1)
}
