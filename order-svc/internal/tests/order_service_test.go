package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"redpotion-core/order-svc/internal/domain"
	"redpotion-core/order-svc/internal/mocks"
	"redpotion-core/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestItemTotal(t *testing.T) {
	item := domain.OrderItem{
		Price:    120,
		Quantity: 2,
		AddOns: []domain.AddOn{
			{ID: "cheese", Price: 20},
			{ID: "bacon", Price: 35},
		},
	}
	// (120 + 20 + 35) * 2
	assert.Equal(t, int64(350), service.ItemTotal(item))
	assert.Equal(t, int64(0), service.ItemTotal(domain.OrderItem{Price: 99}))
}

func TestOrderService_Create(t *testing.T) {
	newOrder := func() *domain.Order {
		return &domain.Order{
			RestaurantID: "rest-1",
			CustomerID:   "cust-1",
			DeliveryFee:  30,
			Items: []domain.OrderItem{
				{ItemID: "item-1", Price: 120, Quantity: 1, AddOns: []domain.AddOn{{ID: "cheese", Price: 20}}},
				{ItemID: "item-2", Price: 60, Quantity: 2},
			},
		}
	}

	t.Run("recomputes_totals_and_numbers_the_order", func(t *testing.T) {
		repository := mocks.NewOrderRepository(t)
		publisher := mocks.NewEventPublisher(t)
		qrEncoder := mocks.NewQRGenerator(t)
		svc := service.NewOrderService(repository, publisher, qrEncoder)
		ctx := context.Background()

		repository.On("NextOrderSequence").Return(42, nil).Once()
		repository.On("CreateOrder", mock.MatchedBy(func(order *domain.Order) bool {
			return order.Subtotal == 260 && order.Total == 290 &&
				order.Status == domain.OrderPending && !order.IsPaid &&
				order.PaymentMethod == domain.PayTransfer
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = "ord-1"
		}).Return(nil).Once()
		qrEncoder.On("Generate", mock.Anything, int64(290)).Return([]byte("png"), nil).Once()
		repository.On("SaveQRCode", "ord-1", []byte("png")).Return(nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(event domain.OrderEvent) bool {
			return event.Type == domain.EventOrderCreated && event.Amount == 290
		})).Return(nil).Once()

		order := newOrder()
		// Client-sent totals must be overwritten.
		order.Subtotal = 1
		order.Total = 1

		assert.NoError(t, svc.Create(ctx, order))
		expectedPrefix := fmt.Sprintf("RP-%s-0042", time.Now().Format("20060102"))
		assert.Equal(t, expectedPrefix, order.OrderNumber)
	})

	t.Run("cash_orders_skip_the_qr", func(t *testing.T) {
		repository := mocks.NewOrderRepository(t)
		qrEncoder := mocks.NewQRGenerator(t)
		svc := service.NewOrderService(repository, nil, qrEncoder)

		repository.On("NextOrderSequence").Return(7, nil).Once()
		repository.On("CreateOrder", mock.Anything).Return(nil).Once()

		order := newOrder()
		order.PaymentMethod = domain.PayCash
		assert.NoError(t, svc.Create(context.Background(), order))
	})

	t.Run("rejects_invalid_payloads", func(t *testing.T) {
		svc := service.NewOrderService(mocks.NewOrderRepository(t), nil, nil)
		ctx := context.Background()

		missingRestaurant := newOrder()
		missingRestaurant.RestaurantID = ""
		assert.ErrorIs(t, svc.Create(ctx, missingRestaurant), service.ErrInvalidOrderPayload)

		empty := newOrder()
		empty.Items = nil
		assert.ErrorIs(t, svc.Create(ctx, empty), service.ErrInvalidOrderPayload)

		zeroQuantity := newOrder()
		zeroQuantity.Items[0].Quantity = 0
		assert.ErrorIs(t, svc.Create(ctx, zeroQuantity), service.ErrInvalidOrderPayload)
	})
}

func TestOrderService_Get(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(repository, nil, nil)

	repository.On("GetOrder", "ord-1").Return(transferOrder(false), nil).Once()
	repository.On("LatestSlip", "ord-1").Return(&domain.PaymentSlip{Status: domain.SlipPending}, nil).Once()

	order, err := svc.Get(context.Background(), "ord-1")
	assert.NoError(t, err)
	assert.NotNil(t, order.LatestSlip)
	assert.Equal(t, domain.StateSlipPending, service.DeriveState(order.LatestSlip))
}

func TestOrderService_ListMyOrders(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(repository, nil, nil)

	repository.On("ListOrdersByCustomer", "cust-1").Return([]domain.Order{
		{ID: "ord-2"}, {ID: "ord-1"},
	}, nil).Once()
	repository.On("LatestSlip", "ord-2").Return(&domain.PaymentSlip{Status: domain.SlipApproved}, nil).Once()
	repository.On("LatestSlip", "ord-1").Return(nil, nil).Once()

	orders, err := svc.ListMyOrders(context.Background(), "cust-1")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, domain.SlipApproved, orders[0].LatestSlip.Status)
	assert.Nil(t, orders[1].LatestSlip)
}

func TestOrderService_PromptPayQR(t *testing.T) {
	t.Run("returns_stored_image", func(t *testing.T) {
		repository := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repository, nil, mocks.NewQRGenerator(t))

		repository.On("GetQRCode", "ord-1").Return([]byte("stored"), nil).Once()

		qr, err := svc.PromptPayQR(context.Background(), "ord-1")
		assert.NoError(t, err)
		assert.Equal(t, []byte("stored"), qr)
	})

	t.Run("regenerates_when_missing", func(t *testing.T) {
		repository := mocks.NewOrderRepository(t)
		qrEncoder := mocks.NewQRGenerator(t)
		svc := service.NewOrderService(repository, nil, qrEncoder)

		repository.On("GetQRCode", "ord-1").Return([]byte(nil), nil).Once()
		repository.On("GetOrder", "ord-1").Return(&domain.Order{
			ID: "ord-1", OrderNumber: "RP-20260901-0001", Total: 290,
		}, nil).Once()
		qrEncoder.On("Generate", "RP-20260901-0001", int64(290)).Return([]byte("fresh"), nil).Once()
		repository.On("SaveQRCode", "ord-1", []byte("fresh")).Return(nil).Once()

		qr, err := svc.PromptPayQR(context.Background(), "ord-1")
		assert.NoError(t, err)
		assert.Equal(t, []byte("fresh"), qr)
	})
}
