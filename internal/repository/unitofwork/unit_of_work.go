package unitofwork

import (
	"context"

	"cholestofit-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	BloodPressureRepository() contract.BloodPressureRepository
	LipidPanelRepository() contract.LipidPanelRepository
	NutritionRepository() contract.NutritionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	BillingRepository() contract.BillingRepository
}
