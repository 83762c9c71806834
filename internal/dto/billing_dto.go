// FILE: internal/dto/billing_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Billing status ---

type BillingStatusResponse struct {
	Plan    PlanDTO       `json:"plan"`
	Balance BalanceDTO    `json:"balance"`
	Usage   UsageCycleDTO `json:"usage"`
	Plans   []PlanDTO     `json:"plans"`
}

type PlanDTO struct {
	Code            string `json:"code"`
	Label           string `json:"label"`
	MonthlyFeeCents int64  `json:"monthly_fee_cents"`
	AllowsAdvice    bool   `json:"allows_advice"`
	AllowsAssistant bool   `json:"allows_assistant"`
	RequestLimit    *int   `json:"request_limit,omitempty"`
}

type BalanceDTO struct {
	Cents     int64  `json:"cents"`
	Formatted string `json:"formatted"`
	Currency  string `json:"currency"`
}

type UsageCycleDTO struct {
	MonthStartedAt time.Time `json:"month_started_at"`
	Limit          int       `json:"limit"`
	Used           int       `json:"used"`
	Remaining      int       `json:"remaining"`
	Advice         int       `json:"advice"`
	Assistant      int       `json:"assistant"`
}

// --- Balance and plan mutations ---

type DepositRequest struct {
	AmountCents int64 `json:"amount_cents" validate:"required"`
}

type DepositResponse struct {
	BalanceCents     int64  `json:"balance_cents"`
	BalanceFormatted string `json:"balance_formatted"`
}

type ChangePlanRequest struct {
	PlanCode string `json:"plan_code" validate:"required"`
}

type ChangePlanResponse struct {
	Plan             PlanDTO `json:"plan"`
	BalanceCents     int64   `json:"balance_cents"`
	BalanceFormatted string  `json:"balance_formatted"`
}

// --- Usage audit trail ---

type UsageTransactionDTO struct {
	Feature        string    `json:"feature"`
	CycleStartedAt time.Time `json:"cycle_started_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type UsageHistoryResponse struct {
	Transactions []UsageTransactionDTO `json:"transactions"`
	Total        int64                 `json:"total"`
}

// PublishUsageMessage is the async payload emitted after an AI request is
// recorded. The consumer turns it into a usage_transactions row.
type PublishUsageMessage struct {
	UserId         uuid.UUID `json:"user_id"`
	Feature        string    `json:"feature"`
	CycleStartedAt time.Time `json:"cycle_started_at"`
}
