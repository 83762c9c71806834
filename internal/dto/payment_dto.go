// FILE: internal/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type TopUpCheckoutRequest struct {
	// max mirrors billing.DefaultDepositCapCents; an over-cap amount could
	// be paid but never credited at settlement.
	AmountCents int64 `json:"amount_cents" validate:"required,min=100,max=1000000"`
}

type TopUpCheckoutResponse struct {
	TransactionId   uuid.UUID `json:"transaction_id"`
	OrderId         string    `json:"order_id"`
	SnapRedirectUrl string    `json:"snap_redirect_url"`
	SnapToken       string    `json:"snap_token"`
}

type MidtransWebhookRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	TransactionId     string `json:"transaction_id"`
	// Signature validation fields
	SignatureKey string `json:"signature_key"`
	StatusCode   string `json:"status_code"`
	GrossAmount  string `json:"gross_amount"`
}

type TopUpTransactionDTO struct {
	Id          uuid.UUID `json:"id"`
	OrderId     string    `json:"order_id"`
	AmountCents int64     `json:"amount_cents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type TopUpHistoryResponse struct {
	Transactions []TopUpTransactionDTO `json:"transactions"`
}
