package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PayTransfer  PaymentMethod = "transfer"
	PayPromptPay PaymentMethod = "promptpay"
	PayCash      PaymentMethod = "cash"
)

type SlipStatus string

const (
	SlipPending  SlipStatus = "PENDING"
	SlipApproved SlipStatus = "APPROVED"
	SlipRejected SlipStatus = "REJECTED"
)

// SlipState is the client-observed workflow state derived from the latest
// slip on an order.
type SlipState string

const (
	StateNoSlip       SlipState = "NO_SLIP"
	StateSlipPending  SlipState = "SLIP_PENDING"
	StateSlipApproved SlipState = "SLIP_APPROVED"
	StateSlipRejected SlipState = "SLIP_REJECTED"
)

type AddOn struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type OrderItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    int64   `json:"price"`
	Quantity int     `json:"quantity"`
	AddOns   []AddOn `json:"add_ons,omitempty"`
}

type Order struct {
	ID            string        `json:"id"`
	OrderNumber   string        `json:"order_number"`
	RestaurantID  string        `json:"restaurant_id"`
	CustomerID    string        `json:"customer_id"`
	Items         []OrderItem   `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	DeliveryFee   int64         `json:"delivery_fee"`
	Total         int64         `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	IsPaid        bool          `json:"is_paid"`
	CreatedAt     time.Time     `json:"created_at"`
	LatestSlip    *PaymentSlip  `json:"latest_slip,omitempty"`
}

type PaymentSlip struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"order_id"`
	SlipImageURL   string     `json:"slip_image_url"`
	TransferAmount int64      `json:"transfer_amount"`
	TransferDate   time.Time  `json:"transfer_date"`
	TransferRef    string     `json:"transfer_ref,omitempty"`
	AccountName    string     `json:"account_name"`
	Status         SlipStatus `json:"status"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	RejectedAt     *time.Time `json:"rejected_at,omitempty"`
	AdminNotes     string     `json:"admin_notes,omitempty"`
}

// SlipForm is what the upload form opens with: either the latest slip's data
// for an edit/resubmit, or fresh defaults.
type SlipForm struct {
	TransferAmount string `json:"transfer_amount"`
	TransferDate   string `json:"transfer_date"`
	TransferTime   string `json:"transfer_time"`
	TransferRef    string `json:"transfer_ref"`
	AccountName    string `json:"account_name"`
}

// SlipSubmission is the parsed multipart upload.
type SlipSubmission struct {
	OrderID        string
	OrderNumber    string
	FileName       string
	ContentType    string
	FileSize       int64
	FileData       []byte
	TransferAmount string
	TransferDate   string
	TransferTime   string
	TransferRef    string
	AccountName    string
}

// OrderEvent travels over Kafka to audit-svc.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	RestaurantID string    `json:"restaurant_id"`
	SlipID       string    `json:"slip_id,omitempty"`
	Amount       int64     `json:"amount,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventOrderCreated  = "order_created"
	EventSlipSubmitted = "slip_submitted"
	EventSlipApproved  = "slip_approved"
	EventSlipRejected  = "slip_rejected"
)
