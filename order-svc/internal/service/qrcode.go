package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// PromptPayEncoder renders the payment QR shown on the order page. The
// payload carries the order number and amount for the banking app.
type PromptPayEncoder struct {
	AccountID string
}

func NewPromptPayEncoder(accountID string) *PromptPayEncoder {
	return &PromptPayEncoder{AccountID: accountID}
}

func (e *PromptPayEncoder) Generate(orderNumber string, amount int64) ([]byte, error) {
	payload := fmt.Sprintf("promptpay://%s?amount=%d&ref=%s", e.AccountID, amount, orderNumber)
	return qrcode.Encode(payload, qrcode.Medium, 256)
}

var _ QRGenerator = (*PromptPayEncoder)(nil)
