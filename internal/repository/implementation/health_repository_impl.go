package implementation

import (
	"context"
	"errors"

	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/mapper"
	"cholestofit-be/internal/model"
	"cholestofit-be/internal/repository/contract"
	"cholestofit-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func applySpecs(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// --- Blood pressure ---

type BloodPressureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HealthMapper
}

func NewBloodPressureRepository(db *gorm.DB) contract.BloodPressureRepository {
	return &BloodPressureRepositoryImpl{
		db:     db,
		mapper: mapper.NewHealthMapper(),
	}
}

func (r *BloodPressureRepositoryImpl) Create(ctx context.Context, record *entity.BloodPressureRecord) error {
	m := r.mapper.BloodPressureToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.BloodPressureToEntity(m)
	return nil
}

func (r *BloodPressureRepositoryImpl) Update(ctx context.Context, record *entity.BloodPressureRecord) error {
	m := r.mapper.BloodPressureToModel(record)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.BloodPressureToEntity(m)
	return nil
}

func (r *BloodPressureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BloodPressureRecord{}).Error
}

func (r *BloodPressureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BloodPressureRecord, error) {
	var m model.BloodPressureRecord
	query := applySpecs(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BloodPressureToEntity(&m), nil
}

func (r *BloodPressureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BloodPressureRecord, error) {
	var ms []*model.BloodPressureRecord
	query := applySpecs(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.BloodPressureToEntities(ms), nil
}

func (r *BloodPressureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecs(r.db.WithContext(ctx).Model(&model.BloodPressureRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --- Lipid panels ---

type LipidPanelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HealthMapper
}

func NewLipidPanelRepository(db *gorm.DB) contract.LipidPanelRepository {
	return &LipidPanelRepositoryImpl{
		db:     db,
		mapper: mapper.NewHealthMapper(),
	}
}

func (r *LipidPanelRepositoryImpl) Create(ctx context.Context, panel *entity.LipidPanel) error {
	m := r.mapper.LipidPanelToModel(panel)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*panel = *r.mapper.LipidPanelToEntity(m)
	return nil
}

func (r *LipidPanelRepositoryImpl) Update(ctx context.Context, panel *entity.LipidPanel) error {
	m := r.mapper.LipidPanelToModel(panel)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*panel = *r.mapper.LipidPanelToEntity(m)
	return nil
}

func (r *LipidPanelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LipidPanel{}).Error
}

func (r *LipidPanelRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LipidPanel, error) {
	var m model.LipidPanel
	query := applySpecs(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.LipidPanelToEntity(&m), nil
}

func (r *LipidPanelRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LipidPanel, error) {
	var ms []*model.LipidPanel
	query := applySpecs(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.LipidPanelToEntities(ms), nil
}

func (r *LipidPanelRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecs(r.db.WithContext(ctx).Model(&model.LipidPanel{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --- Nutrition diary ---

type NutritionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HealthMapper
}

func NewNutritionRepository(db *gorm.DB) contract.NutritionRepository {
	return &NutritionRepositoryImpl{
		db:     db,
		mapper: mapper.NewHealthMapper(),
	}
}

func (r *NutritionRepositoryImpl) Create(ctx context.Context, entry *entity.NutritionEntry) error {
	m := r.mapper.NutritionToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.NutritionToEntity(m)
	return nil
}

func (r *NutritionRepositoryImpl) Update(ctx context.Context, entry *entity.NutritionEntry) error {
	m := r.mapper.NutritionToModel(entry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.NutritionToEntity(m)
	return nil
}

func (r *NutritionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NutritionEntry{}).Error
}

func (r *NutritionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NutritionEntry, error) {
	var m model.NutritionEntry
	query := applySpecs(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.NutritionToEntity(&m), nil
}

func (r *NutritionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NutritionEntry, error) {
	var ms []*model.NutritionEntry
	query := applySpecs(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.NutritionToEntities(ms), nil
}

func (r *NutritionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecs(r.db.WithContext(ctx).Model(&model.NutritionEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
