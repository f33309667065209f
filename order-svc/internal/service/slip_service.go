package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"redpotion-core/order-svc/internal/domain"
)

const maxSlipFileSize = 5 << 20 // 5 MiB

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrSlipNotFound        = errors.New("payment slip not found")
	ErrSlipFileType        = errors.New("slip must be an image file")
	ErrSlipFileTooLarge    = errors.New("slip image exceeds the 5 MB limit")
	ErrSlipMissingFields   = errors.New("amount, date, time and account name are required")
	ErrSlipBadAmount       = errors.New("transfer amount must be a positive number")
	ErrSlipBadTimestamp    = errors.New("transfer date or time is not valid")
	ErrSlipAlreadyApproved = errors.New("order payment is already approved")
	ErrSlipNotReviewable   = errors.New("slip has already been reviewed")
	ErrPaymentNotSlipBased = errors.New("order payment method does not use slips")
)

// SlipService drives the payment-proof workflow. The review verdict is always
// the admin's; the customer only ever moves a slip into PENDING.
type SlipService struct {
	repository OrderRepository
	files      SlipFileStore
	publisher  EventPublisher
}

func NewSlipService(repository OrderRepository, files SlipFileStore, publisher EventPublisher) *SlipService {
	return &SlipService{repository: repository, files: files, publisher: publisher}
}

// DeriveState maps the latest slip to the client-observed workflow state.
func DeriveState(latest *domain.PaymentSlip) domain.SlipState {
	if latest == nil {
		return domain.StateNoSlip
	}
	switch latest.Status {
	case domain.SlipApproved:
		return domain.StateSlipApproved
	case domain.SlipRejected:
		return domain.StateSlipRejected
	default:
		return domain.StateSlipPending
	}
}

// CanSubmit reports whether the order may receive a (re)submission: only
// slip-based payment methods, only while unpaid, and never over an approved
// slip.
func CanSubmit(order *domain.Order, latest *domain.PaymentSlip) bool {
	return submitGate(order, latest) == nil
}

// submitGate names the reason a submission is refused so handlers can report
// it: wrong payment method vs payment already settled.
func submitGate(order *domain.Order, latest *domain.PaymentSlip) error {
	if order.PaymentMethod != domain.PayTransfer && order.PaymentMethod != domain.PayPromptPay {
		return ErrPaymentNotSlipBased
	}
	if order.IsPaid || DeriveState(latest) == domain.StateSlipApproved {
		return ErrSlipAlreadyApproved
	}
	return nil
}

// CallToAction returns the label for the slip button, or "" when the button
// must not be shown.
func CallToAction(order *domain.Order, latest *domain.PaymentSlip) string {
	if !CanSubmit(order, latest) {
		return ""
	}
	switch DeriveState(latest) {
	case domain.StateSlipPending:
		return "Edit payment slip"
	case domain.StateSlipRejected:
		return "Resubmit payment slip"
	default:
		return "Attach payment slip"
	}
}

// ValidateFile runs before any storage or network work.
func ValidateFile(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrSlipFileType
	}
	if size > maxSlipFileSize {
		return ErrSlipFileTooLarge
	}
	return nil
}

// PreviewDataURL builds a local preview without any server round trip.
func PreviewDataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// OpenUploadForm pre-fills from the latest slip when one exists, otherwise
// defaults the transfer timestamp to now.
func (s *SlipService) OpenUploadForm(ctx context.Context, orderID string) (*domain.SlipForm, error) {
	order, err := s.repository.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	latest, err := s.repository.LatestSlip(order.ID)
	if err != nil {
		return nil, err
	}

	if err := submitGate(order, latest); err != nil {
		return nil, err
	}

	if latest == nil {
		now := time.Now()
		return &domain.SlipForm{
			TransferDate: now.Format("2006-01-02"),
			TransferTime: now.Format("15:04"),
		}, nil
	}

	return &domain.SlipForm{
		TransferAmount: strconv.FormatInt(latest.TransferAmount, 10),
		TransferDate:   latest.TransferDate.Format("2006-01-02"),
		TransferTime:   latest.TransferDate.Format("15:04"),
		TransferRef:    latest.TransferRef,
		AccountName:    latest.AccountName,
	}, nil
}

func (s *SlipService) Submit(ctx context.Context, submission domain.SlipSubmission) (*domain.PaymentSlip, error) {
	if len(submission.FileData) == 0 ||
		submission.TransferAmount == "" || submission.TransferDate == "" ||
		submission.TransferTime == "" || submission.AccountName == "" {
		return nil, ErrSlipMissingFields
	}

	if err := ValidateFile(submission.ContentType, submission.FileSize); err != nil {
		return nil, err
	}

	amount, err := strconv.ParseInt(submission.TransferAmount, 10, 64)
	if err != nil || amount <= 0 {
		return nil, ErrSlipBadAmount
	}

	transferredAt, err := time.Parse("2006-01-02 15:04", submission.TransferDate+" "+submission.TransferTime)
	if err != nil {
		return nil, ErrSlipBadTimestamp
	}

	order, err := s.repository.GetOrder(submission.OrderID)
	if err != nil {
		return nil, err
	}

	latest, err := s.repository.LatestSlip(order.ID)
	if err != nil {
		return nil, err
	}
	if err := submitGate(order, latest); err != nil {
		return nil, err
	}

	imageURL, err := s.files.Save(order.ID, submission.FileName, submission.FileData)
	if err != nil {
		return nil, fmt.Errorf("failed to store slip image: %w", err)
	}

	slip := &domain.PaymentSlip{
		OrderID:        order.ID,
		SlipImageURL:   imageURL,
		TransferAmount: amount,
		TransferDate:   transferredAt,
		TransferRef:    submission.TransferRef,
		AccountName:    submission.AccountName,
		Status:         domain.SlipPending,
	}
	if err := s.repository.InsertSlip(slip); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, domain.OrderEvent{
			Type:         domain.EventSlipSubmitted,
			OrderID:      order.ID,
			OrderNumber:  order.OrderNumber,
			RestaurantID: order.RestaurantID,
			SlipID:       slip.ID,
			Amount:       amount,
			Timestamp:    time.Now(),
		})
	}

	return slip, nil
}

// Review records the admin verdict. Approval marks the order paid, which is
// terminal for the slip workflow.
func (s *SlipService) Review(ctx context.Context, slipID string, approve bool, adminNotes string) (*domain.PaymentSlip, error) {
	slip, err := s.repository.GetSlip(slipID)
	if err != nil {
		return nil, err
	}
	if slip.Status != domain.SlipPending {
		return nil, ErrSlipNotReviewable
	}

	now := time.Now()
	eventType := domain.EventSlipRejected
	if approve {
		slip.Status = domain.SlipApproved
		slip.ApprovedAt = &now
		eventType = domain.EventSlipApproved
	} else {
		slip.Status = domain.SlipRejected
		slip.RejectedAt = &now
	}
	slip.AdminNotes = adminNotes

	if err := s.repository.UpdateSlipStatus(slip); err != nil {
		return nil, err
	}

	if approve {
		if err := s.repository.MarkOrderPaid(slip.OrderID); err != nil {
			return nil, err
		}
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:      eventType,
			OrderID:   slip.OrderID,
			SlipID:    slip.ID,
			Amount:    slip.TransferAmount,
			Timestamp: now,
		}
		if order, err := s.repository.GetOrder(slip.OrderID); err == nil {
			event.OrderNumber = order.OrderNumber
			event.RestaurantID = order.RestaurantID
		}
		_ = s.publisher.Publish(ctx, event)
	}

	return slip, nil
}
