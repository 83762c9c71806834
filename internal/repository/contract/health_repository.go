package contract

import (
	"context"

	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BloodPressureRepository interface {
	Create(ctx context.Context, record *entity.BloodPressureRecord) error
	Update(ctx context.Context, record *entity.BloodPressureRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BloodPressureRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BloodPressureRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type LipidPanelRepository interface {
	Create(ctx context.Context, panel *entity.LipidPanel) error
	Update(ctx context.Context, panel *entity.LipidPanel) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LipidPanel, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LipidPanel, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type NutritionRepository interface {
	Create(ctx context.Context, entry *entity.NutritionEntry) error
	Update(ctx context.Context, entry *entity.NutritionEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NutritionEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NutritionEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
