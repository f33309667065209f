package domain

import "time"

const (
	EventOrderCreated  = "order_created"
	EventSlipSubmitted = "slip_submitted"
	EventSlipApproved  = "slip_approved"
	EventSlipRejected  = "slip_rejected"
)

// OrderEvent is the wire shape published by order-svc.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	RestaurantID string    `json:"restaurant_id"`
	SlipID       string    `json:"slip_id,omitempty"`
	Amount       int64     `json:"amount"`
	Timestamp    time.Time `json:"timestamp"`
}

// AuditRecord is a persisted copy of one event.
type AuditRecord struct {
	ID           int64     `json:"id"`
	EventType    string    `json:"event_type"`
	OrderID      string    `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	RestaurantID string    `json:"restaurant_id"`
	SlipID       string    `json:"slip_id,omitempty"`
	Amount       int64     `json:"amount"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// RestaurantPayments is one row of the daily paid-orders leaderboard.
type RestaurantPayments struct {
	RestaurantID string `json:"restaurant_id"`
	PaidOrders   int64  `json:"paid_orders"`
}
