// FILE: internal/entity/billing_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type TopUpStatus string

const (
	TopUpStatusPending TopUpStatus = "pending"
	TopUpStatusSettled TopUpStatus = "settled"
	TopUpStatusFailed  TopUpStatus = "failed"
)

// TopUpTransaction tracks a Midtrans balance top-up from checkout to webhook.
type TopUpTransaction struct {
	Id                    uuid.UUID
	UserId                uuid.UUID
	OrderId               string
	AmountCents           int64
	Status                TopUpStatus
	MidtransTransactionId *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// UsageTransaction is the audit trail row written whenever an AI request
// is recorded against a user's monthly cycle.
type UsageTransaction struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Feature        string // "advice" or "assistant"
	CycleStartedAt time.Time
	CreatedAt      time.Time
}
