// FILE: pkg/billing/engine_test.go
package billing

import (
	"context"
	"testing"
	"time"

	"cholestofit-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore records saves in memory so engine behavior can be asserted
// without a database.
type memoryStore struct {
	saves int
}

func (s *memoryStore) SaveAccount(ctx context.Context, account *entity.User) error {
	s.saves++
	return nil
}

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 17, 15, 4, 5, 0, time.UTC)
	}
}

func newTestEngine(opts ...Option) (*Engine, *memoryStore) {
	store := &memoryStore{}
	base := []Option{WithClock(fixedClock(2026, time.August))}
	return NewEngine(DefaultCatalog(), store, append(base, opts...)...), store
}

func newAccount(plan string) *entity.User {
	return &entity.User{
		Id:     uuid.New(),
		Email:  "user@example.com",
		Plan:   plan,
		Role:   entity.UserRoleUser,
		Status: entity.UserStatusActive,
	}
}

func TestPrepareCycleIdempotent(t *testing.T) {
	engine, store := newTestEngine()
	account := newAccount("premium")
	ctx := context.Background()

	require.NoError(t, engine.PrepareCycle(ctx, account))
	require.NotNil(t, account.AiCycleStartedAt)
	first := *account.AiCycleStartedAt
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, 1, store.saves)

	account.AiCycleRequests = 7
	account.AiCycleAdviceRequests = 7

	// Second call within the same month must not reset anything or save again.
	require.NoError(t, engine.PrepareCycle(ctx, account))
	assert.Equal(t, 7, account.AiCycleRequests)
	assert.Equal(t, first, *account.AiCycleStartedAt)
	assert.Equal(t, 1, store.saves)
}

func TestPrepareCycleCrossMonthReset(t *testing.T) {
	engine, _ := newTestEngine()
	account := newAccount("premium")
	lastMonth := time.Date(2026, time.July, 9, 11, 30, 0, 0, time.UTC)
	account.AiCycleStartedAt = &lastMonth
	account.AiCycleRequests = 42
	account.AiCycleAdviceRequests = 40
	account.AiCycleAssistantRequests = 2

	require.NoError(t, engine.PrepareCycle(context.Background(), account))

	assert.Equal(t, 0, account.AiCycleRequests)
	assert.Equal(t, 0, account.AiCycleAdviceRequests)
	assert.Equal(t, 0, account.AiCycleAssistantRequests)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), *account.AiCycleStartedAt)
}

func TestPrepareCycleNormalizesFullTimestamp(t *testing.T) {
	engine, store := newTestEngine()
	account := newAccount("premium")
	// A mid-month timestamp of the current month counts as the current cycle.
	sameMonth := time.Date(2026, time.August, 23, 8, 0, 0, 0, time.UTC)
	account.AiCycleStartedAt = &sameMonth
	account.AiCycleRequests = 5

	require.NoError(t, engine.PrepareCycle(context.Background(), account))
	assert.Equal(t, 5, account.AiCycleRequests)
	assert.Equal(t, 0, store.saves)
}

func TestCounterConsistency(t *testing.T) {
	engine, _ := newTestEngine()
	account := newAccount("premium")
	ctx := context.Background()

	sequence := []Feature{
		FeatureAdvice, FeatureAssistant, FeatureAdvice,
		FeatureAdvice, FeatureAssistant, FeatureAdvice,
	}
	for _, feature := range sequence {
		if feature == FeatureAssistant {
			require.NoError(t, engine.RecordAssistantUsage(ctx, account))
		} else {
			require.NoError(t, engine.RecordAdviceUsage(ctx, account))
		}
		assert.Equal(t, account.AiCycleRequests,
			account.AiCycleAdviceRequests+account.AiCycleAssistantRequests)
	}

	assert.Equal(t, 6, account.AiCycleRequests)
	assert.Equal(t, 4, account.AiCycleAdviceRequests)
	assert.Equal(t, 2, account.AiCycleAssistantRequests)
}

func TestEnsureAccessFeatureGate(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	tests := []struct {
		name     string
		plan     string
		ensure   func(*entity.User) error
		wantKind Kind
	}{
		{
			name:     "free plan denies advice",
			plan:     "free",
			ensure:   func(a *entity.User) error { return engine.EnsureAdviceAccess(ctx, a) },
			wantKind: KindFeatureNotIncluded,
		},
		{
			name:     "free plan denies assistant",
			plan:     "free",
			ensure:   func(a *entity.User) error { return engine.EnsureAssistantAccess(ctx, a) },
			wantKind: KindFeatureNotIncluded,
		},
		{
			name:     "unknown plan falls back to free",
			plan:     "enterprise-legacy",
			ensure:   func(a *entity.User) error { return engine.EnsureAdviceAccess(ctx, a) },
			wantKind: KindFeatureNotIncluded,
		},
		{
			name:   "premium allows advice",
			plan:   "premium",
			ensure: func(a *entity.User) error { return engine.EnsureAdviceAccess(ctx, a) },
		},
		{
			name:   "premium allows assistant",
			plan:   "premium",
			ensure: func(a *entity.User) error { return engine.EnsureAssistantAccess(ctx, a) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := newAccount(tt.plan)
			err := tt.ensure(account)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			be, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, be.Kind)
			// Guard failures never mutate counters.
			assert.Equal(t, 0, account.AiCycleRequests)
		})
	}
}

func TestEnsureAccessUnknownPlanKeepsStoredString(t *testing.T) {
	engine, _ := newTestEngine()
	account := newAccount("enterprise-legacy")

	err := engine.EnsureAdviceAccess(context.Background(), account)
	_, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "enterprise-legacy", account.Plan)
}

func TestMonthlyLimitEnforcement(t *testing.T) {
	engine, _ := newTestEngine()
	account := newAccount("premium")
	ctx := context.Background()

	for i := 0; i < DefaultMonthlyRequestLimit; i++ {
		require.NoError(t, engine.EnsureAdviceAccess(ctx, account))
		require.NoError(t, engine.RecordAdviceUsage(ctx, account))
	}

	err := engine.EnsureAdviceAccess(ctx, account)
	be, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindMonthlyLimitReached, be.Kind)
	assert.Equal(t, 429, be.HTTPStatus())
}

func TestPlanRequestLimitOverride(t *testing.T) {
	limit := 2
	catalog := NewCatalog(
		PlanDefinition{Code: "free"},
		PlanDefinition{Code: "trial", Label: "Trial", AllowsAdvice: true, RequestLimit: &limit},
	)
	store := &memoryStore{}
	engine := NewEngine(catalog, store, WithClock(fixedClock(2026, time.August)))
	account := newAccount("trial")
	ctx := context.Background()

	require.NoError(t, engine.RecordAdviceUsage(ctx, account))
	require.NoError(t, engine.RecordAdviceUsage(ctx, account))

	err := engine.EnsureAdviceAccess(ctx, account)
	be, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindMonthlyLimitReached, be.Kind)
}

func TestDepositBounds(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	tests := []struct {
		name     string
		amount   int64
		wantKind Kind
		wantBal  int64
	}{
		{name: "zero rejected", amount: 0, wantKind: KindInvalidAmount},
		{name: "negative rejected", amount: -5, wantKind: KindInvalidAmount},
		{name: "over cap rejected", amount: 1_000_001, wantKind: KindAmountTooLarge},
		{name: "valid deposit", amount: 500, wantBal: 500},
		{name: "cap boundary accepted", amount: 1_000_000, wantBal: 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := newAccount("free")
			err := engine.Deposit(ctx, account, tt.amount)
			if tt.wantKind != "" {
				be, ok := AsError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantKind, be.Kind)
				assert.Equal(t, int64(0), account.BalanceCents)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBal, account.BalanceCents)
		})
	}
}

func TestValidateDepositAmountPreCheck(t *testing.T) {
	engine, store := newTestEngine()

	// An amount the validator rejects must be exactly an amount Deposit
	// rejects, so checkout can screen before money changes hands.
	tests := []struct {
		name     string
		amount   int64
		wantKind Kind
	}{
		{name: "over cap", amount: 2_000_000, wantKind: KindAmountTooLarge},
		{name: "zero", amount: 0, wantKind: KindInvalidAmount},
		{name: "cap boundary ok", amount: DefaultDepositCapCents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.ValidateDepositAmount(tt.amount)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			be, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, be.Kind)

			account := newAccount("free")
			depErr := engine.Deposit(context.Background(), account, tt.amount)
			depBe, ok := AsError(depErr)
			require.True(t, ok)
			assert.Equal(t, be.Kind, depBe.Kind)
			assert.Equal(t, int64(0), account.BalanceCents)
		})
	}

	// Validation alone never persists.
	assert.Equal(t, 0, store.saves)
}

func TestChangePlanAffordability(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	t.Run("insufficient balance leaves account untouched", func(t *testing.T) {
		account := newAccount("free")
		account.BalanceCents = 999

		err := engine.ChangePlan(ctx, account, "premium")
		be, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, KindInsufficientBalance, be.Kind)
		assert.Equal(t, 402, be.HTTPStatus())
		assert.Equal(t, "free", account.Plan)
		assert.Equal(t, int64(999), account.BalanceCents)
	})

	t.Run("exact balance succeeds and debits once", func(t *testing.T) {
		account := newAccount("free")
		account.BalanceCents = 1000

		require.NoError(t, engine.ChangePlan(ctx, account, "premium"))
		assert.Equal(t, "premium", account.Plan)
		assert.Equal(t, int64(0), account.BalanceCents)
	})

	t.Run("unknown plan rejected", func(t *testing.T) {
		account := newAccount("free")
		err := engine.ChangePlan(ctx, account, "platinum")
		be, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, KindUnknownPlan, be.Kind)
	})

	t.Run("same plan is a no-op", func(t *testing.T) {
		account := newAccount("premium")
		account.BalanceCents = 50

		require.NoError(t, engine.ChangePlan(ctx, account, "Premium"))
		assert.Equal(t, int64(50), account.BalanceCents)
		assert.Equal(t, "premium", account.Plan)
	})

	t.Run("switch does not reset usage within the month", func(t *testing.T) {
		account := newAccount("premium")
		require.NoError(t, engine.RecordAdviceUsage(ctx, account))
		account.BalanceCents = 1000

		require.NoError(t, engine.ChangePlan(ctx, account, "free"))
		require.NoError(t, engine.ChangePlan(ctx, account, "premium"))
		assert.Equal(t, 1, account.AiCycleRequests)
	})
}

func TestStatusSnapshotNewAccount(t *testing.T) {
	engine, _ := newTestEngine()
	account := newAccount("")

	status, err := engine.Status(context.Background(), account)
	require.NoError(t, err)

	assert.Equal(t, "free", status.PlanCode)
	assert.Equal(t, "USD", status.Currency)
	assert.Equal(t, "0.00", status.BalanceFormatted)
	assert.Equal(t, 0, status.Usage.UsedRequests)
	assert.Equal(t, DefaultMonthlyRequestLimit, status.Usage.RemainingRequests)
	require.NotNil(t, status.Usage.MonthStartedAt)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), *status.Usage.MonthStartedAt)

	require.Len(t, status.Plans, 2)
	assert.Equal(t, "free", status.Plans[0].Code)
	assert.Equal(t, "premium", status.Plans[1].Code)
	assert.Equal(t, int64(1000), status.Plans[1].MonthlyFeeCents)
	assert.True(t, status.Plans[1].AllowsAdvice)
	assert.True(t, status.Plans[1].AllowsAssistant)
}

func TestEndToEndScenario(t *testing.T) {
	engine, _ := newTestEngine()
	account := newAccount("free")
	ctx := context.Background()

	// Free plan: advice gate denied.
	err := engine.EnsureAdviceAccess(ctx, account)
	be, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindFeatureNotIncluded, be.Kind)

	// Deposit, upgrade, balance drained by the switch fee.
	require.NoError(t, engine.Deposit(ctx, account, 1000))
	require.NoError(t, engine.ChangePlan(ctx, account, "premium"))
	assert.Equal(t, int64(0), account.BalanceCents)

	// Gate now opens; consume the whole monthly budget.
	require.NoError(t, engine.EnsureAdviceAccess(ctx, account))
	for i := 0; i < 100; i++ {
		require.NoError(t, engine.RecordAdviceUsage(ctx, account))
	}

	status, err := engine.Status(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, 100, status.Usage.UsedRequests)
	assert.Equal(t, 0, status.Usage.RemainingRequests)

	err = engine.EnsureAdviceAccess(ctx, account)
	be, ok = AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindMonthlyLimitReached, be.Kind)
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{50, "0.50"},
		{999, "9.99"},
		{1000, "10.00"},
		{123456, "1234.56"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.cents))
	}
}

func TestCatalogResolveFallback(t *testing.T) {
	catalog := DefaultCatalog()

	def := catalog.Resolve("PREMIUM")
	assert.Equal(t, "premium", def.Code)

	def = catalog.Resolve("no-such-plan")
	assert.Equal(t, "free", def.Code)

	def = catalog.Resolve("")
	assert.Equal(t, "free", def.Code)
}
