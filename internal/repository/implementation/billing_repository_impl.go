package implementation

import (
	"context"
	"errors"

	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/mapper"
	"cholestofit-be/internal/model"
	"cholestofit-be/internal/repository/contract"
	"cholestofit-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BillingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BillingMapper
}

func NewBillingRepository(db *gorm.DB) contract.BillingRepository {
	return &BillingRepositoryImpl{
		db:     db,
		mapper: mapper.NewBillingMapper(),
	}
}

func (r *BillingRepositoryImpl) CreateTopUp(ctx context.Context, tx *entity.TopUpTransaction) error {
	m := r.mapper.TopUpToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TopUpToEntity(m)
	return nil
}

func (r *BillingRepositoryImpl) UpdateTopUp(ctx context.Context, tx *entity.TopUpTransaction) error {
	m := r.mapper.TopUpToModel(tx)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TopUpToEntity(m)
	return nil
}

func (r *BillingRepositoryImpl) FindOneTopUp(ctx context.Context, specs ...specification.Specification) (*entity.TopUpTransaction, error) {
	var m model.TopUpTransaction
	query := applySpecs(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TopUpToEntity(&m), nil
}

func (r *BillingRepositoryImpl) FindAllTopUps(ctx context.Context, specs ...specification.Specification) ([]*entity.TopUpTransaction, error) {
	var ms []*model.TopUpTransaction
	query := applySpecs(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.TopUpToEntities(ms), nil
}

func (r *BillingRepositoryImpl) CreateUsageTransaction(ctx context.Context, tx *entity.UsageTransaction) error {
	m := r.mapper.UsageToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.UsageToEntity(m)
	return nil
}

func (r *BillingRepositoryImpl) FindAllUsageTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageTransaction, error) {
	var ms []*model.UsageTransaction
	query := applySpecs(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.UsageToEntities(ms), nil
}

func (r *BillingRepositoryImpl) CountUsageTransactions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecs(r.db.WithContext(ctx).Model(&model.UsageTransaction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
