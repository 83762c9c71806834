package contract

import (
	"context"

	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/repository/specification"
)

type BillingRepository interface {
	// Top-ups
	CreateTopUp(ctx context.Context, tx *entity.TopUpTransaction) error
	UpdateTopUp(ctx context.Context, tx *entity.TopUpTransaction) error
	FindOneTopUp(ctx context.Context, specs ...specification.Specification) (*entity.TopUpTransaction, error)
	FindAllTopUps(ctx context.Context, specs ...specification.Specification) ([]*entity.TopUpTransaction, error)

	// Usage audit trail
	CreateUsageTransaction(ctx context.Context, tx *entity.UsageTransaction) error
	FindAllUsageTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageTransaction, error)
	CountUsageTransactions(ctx context.Context, specs ...specification.Specification) (int64, error)
}
