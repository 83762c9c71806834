// FILE: pkg/billing/engine.go
// Usage metering and billing-state engine. Single authority for whether a
// user may invoke an AI-gated feature, for recording that usage, for balance
// top-ups, and for plan switches with a one-time fee debit.
package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cholestofit-be/internal/entity"
)

const (
	DefaultMonthlyRequestLimit = 100
	DefaultDepositCapCents     = 1_000_000
	DefaultCurrency            = "USD"
)

// Feature names the two AI-gated operations.
type Feature string

const (
	FeatureAdvice    Feature = "advice"
	FeatureAssistant Feature = "assistant"
)

// AccountStore persists mutated account fields. Save must be atomic per call
// (single account row); the store is expected to serialize concurrent writes
// to the same row at the database layer.
type AccountStore interface {
	SaveAccount(ctx context.Context, account *entity.User) error
}

type Engine struct {
	catalog      Catalog
	store        AccountStore
	defaultLimit int
	depositCap   int64
	currency     string
	now          func() time.Time
}

type Option func(*Engine)

// WithClock overrides the process clock, letting tests pin the month.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithDefaultLimit(limit int) Option {
	return func(e *Engine) { e.defaultLimit = limit }
}

func WithDepositCap(cents int64) Option {
	return func(e *Engine) { e.depositCap = cents }
}

func NewEngine(catalog Catalog, store AccountStore, opts ...Option) *Engine {
	e := &Engine{
		catalog:      catalog,
		store:        store,
		defaultLimit: DefaultMonthlyRequestLimit,
		depositCap:   DefaultDepositCapCents,
		currency:     DefaultCurrency,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// cycleKey is the first-of-month UTC date of "now", the reset boundary every
// usage counter is keyed to.
func (e *Engine) cycleKey() time.Time {
	now := e.now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// normalizeCycle collapses any stored marker (full timestamp or already
// normalized) to first-of-month granularity for comparison.
func normalizeCycle(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PrepareCycle lazily rolls the account onto the current month. Idempotent
// within a month; it is the sole reset mechanism, called as the first step of
// every other engine operation. There is no background sweep.
func (e *Engine) PrepareCycle(ctx context.Context, account *entity.User) error {
	key := e.cycleKey()
	if account.AiCycleStartedAt != nil && normalizeCycle(*account.AiCycleStartedAt).Equal(key) {
		return nil
	}

	account.AiCycleStartedAt = &key
	account.AiCycleRequests = 0
	account.AiCycleAdviceRequests = 0
	account.AiCycleAssistantRequests = 0
	return e.store.SaveAccount(ctx, account)
}

// EnsureAdviceAccess checks, without mutating state, that the account may
// invoke an advice-type AI request right now. Callers run this before the
// external LLM call so denied requests never waste one.
func (e *Engine) EnsureAdviceAccess(ctx context.Context, account *entity.User) error {
	return e.ensureAccess(ctx, account, FeatureAdvice)
}

// EnsureAssistantAccess is the assistant-chat counterpart of EnsureAdviceAccess.
func (e *Engine) EnsureAssistantAccess(ctx context.Context, account *entity.User) error {
	return e.ensureAccess(ctx, account, FeatureAssistant)
}

func (e *Engine) ensureAccess(ctx context.Context, account *entity.User, feature Feature) error {
	if err := e.PrepareCycle(ctx, account); err != nil {
		return err
	}

	def := e.catalog.Resolve(account.Plan)

	allowed := def.AllowsAdvice
	if feature == FeatureAssistant {
		allowed = def.AllowsAssistant
	}
	if !allowed {
		return newError(KindFeatureNotIncluded,
			fmt.Sprintf("your plan does not include the %s feature", feature))
	}

	if account.AiCycleRequests >= e.effectiveLimit(def) {
		return newError(KindMonthlyLimitReached,
			"monthly AI request limit reached")
	}

	return nil
}

// RecordAdviceUsage counts one delivered advice response. Must be called
// exactly once per successful LLM response, never speculatively.
func (e *Engine) RecordAdviceUsage(ctx context.Context, account *entity.User) error {
	return e.recordUsage(ctx, account, FeatureAdvice)
}

// RecordAssistantUsage counts one delivered assistant response.
func (e *Engine) RecordAssistantUsage(ctx context.Context, account *entity.User) error {
	return e.recordUsage(ctx, account, FeatureAssistant)
}

func (e *Engine) recordUsage(ctx context.Context, account *entity.User, feature Feature) error {
	// Re-normalize in case the month flipped between the guard check and now.
	if err := e.PrepareCycle(ctx, account); err != nil {
		return err
	}

	account.AiCycleRequests++
	if feature == FeatureAssistant {
		account.AiCycleAssistantRequests++
	} else {
		account.AiCycleAdviceRequests++
	}
	return e.store.SaveAccount(ctx, account)
}

// ValidateDepositAmount checks amountCents against the deposit bounds without
// mutating anything. Checkout flows call it before taking payment so an
// amount the engine would refuse to credit is never charged.
func (e *Engine) ValidateDepositAmount(amountCents int64) error {
	if amountCents <= 0 {
		return newError(KindInvalidAmount, "deposit amount must be positive")
	}
	if amountCents > e.depositCap {
		return newError(KindAmountTooLarge,
			fmt.Sprintf("deposit amount exceeds the per-transaction cap of %d cents", e.depositCap))
	}
	return nil
}

// Deposit credits amountCents to the account balance. No cycle interaction.
func (e *Engine) Deposit(ctx context.Context, account *entity.User, amountCents int64) error {
	if err := e.ValidateDepositAmount(amountCents); err != nil {
		return err
	}

	account.BalanceCents += amountCents
	return e.store.SaveAccount(ctx, account)
}

// ChangePlan switches the account onto planCode, debiting the plan's fee once
// at switch time. Switching to the current plan is a no-op success.
func (e *Engine) ChangePlan(ctx context.Context, account *entity.User, planCode string) error {
	code := strings.ToLower(strings.TrimSpace(planCode))

	def, ok := e.catalog.Lookup(code)
	if !ok {
		return newError(KindUnknownPlan, fmt.Sprintf("unknown plan %q", planCode))
	}

	if code == account.Plan {
		return nil
	}

	if def.MonthlyFeeCents > 0 {
		if account.BalanceCents < def.MonthlyFeeCents {
			return newError(KindInsufficientBalance,
				"balance is insufficient to cover the plan fee")
		}
		account.BalanceCents -= def.MonthlyFeeCents
	}

	account.Plan = code

	// A plan switch does not itself reset usage unless the month boundary
	// also changed.
	if err := e.PrepareCycle(ctx, account); err != nil {
		return err
	}
	return e.store.SaveAccount(ctx, account)
}

// Usage is the per-cycle block of a status snapshot.
type Usage struct {
	MonthStartedAt    *time.Time
	LimitRequests     int
	UsedRequests      int
	RemainingRequests int
	AdviceRequests    int
	AssistantRequests int
}

// Status is a read-only billing snapshot, safe to compute on every page load.
type Status struct {
	PlanCode         string
	PlanLabel        string
	MonthlyFeeCents  int64
	BalanceCents     int64
	BalanceFormatted string
	Currency         string
	AllowsAdvice     bool
	AllowsAssistant  bool
	Usage            Usage
	Plans            []PlanDefinition
}

// Status builds the snapshot after normalizing the cycle, so it always
// reflects the current month.
func (e *Engine) Status(ctx context.Context, account *entity.User) (*Status, error) {
	if err := e.PrepareCycle(ctx, account); err != nil {
		return nil, err
	}

	def := e.catalog.Resolve(account.Plan)
	limit := e.effectiveLimit(def)
	remaining := limit - account.AiCycleRequests
	if remaining < 0 {
		remaining = 0
	}

	return &Status{
		PlanCode:         def.Code,
		PlanLabel:        def.Label,
		MonthlyFeeCents:  def.MonthlyFeeCents,
		BalanceCents:     account.BalanceCents,
		BalanceFormatted: FormatCents(account.BalanceCents),
		Currency:         e.currency,
		AllowsAdvice:     def.AllowsAdvice,
		AllowsAssistant:  def.AllowsAssistant,
		Usage: Usage{
			MonthStartedAt:    account.AiCycleStartedAt,
			LimitRequests:     limit,
			UsedRequests:      account.AiCycleRequests,
			RemainingRequests: remaining,
			AdviceRequests:    account.AiCycleAdviceRequests,
			AssistantRequests: account.AiCycleAssistantRequests,
		},
		Plans: e.catalog.Plans(),
	}, nil
}

func (e *Engine) effectiveLimit(def PlanDefinition) int {
	if def.RequestLimit != nil {
		return *def.RequestLimit
	}
	return e.defaultLimit
}

// FormatCents renders a non-negative cents amount as a two-decimal string.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
