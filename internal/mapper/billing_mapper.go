package mapper

import (
	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/model"
)

type BillingMapper struct{}

func NewBillingMapper() *BillingMapper {
	return &BillingMapper{}
}

func (m *BillingMapper) TopUpToEntity(t *model.TopUpTransaction) *entity.TopUpTransaction {
	if t == nil {
		return nil
	}
	return &entity.TopUpTransaction{
		Id:                    t.Id,
		UserId:                t.UserId,
		OrderId:               t.OrderId,
		AmountCents:           t.AmountCents,
		Status:                entity.TopUpStatus(t.Status),
		MidtransTransactionId: t.MidtransTransactionId,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}

func (m *BillingMapper) TopUpToModel(t *entity.TopUpTransaction) *model.TopUpTransaction {
	if t == nil {
		return nil
	}
	return &model.TopUpTransaction{
		Id:                    t.Id,
		UserId:                t.UserId,
		OrderId:               t.OrderId,
		AmountCents:           t.AmountCents,
		Status:                string(t.Status),
		MidtransTransactionId: t.MidtransTransactionId,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}

func (m *BillingMapper) TopUpToEntities(txs []*model.TopUpTransaction) []*entity.TopUpTransaction {
	entities := make([]*entity.TopUpTransaction, len(txs))
	for i, t := range txs {
		entities[i] = m.TopUpToEntity(t)
	}
	return entities
}

func (m *BillingMapper) UsageToEntity(t *model.UsageTransaction) *entity.UsageTransaction {
	if t == nil {
		return nil
	}
	return &entity.UsageTransaction{
		Id:             t.Id,
		UserId:         t.UserId,
		Feature:        t.Feature,
		CycleStartedAt: t.CycleStartedAt,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *BillingMapper) UsageToModel(t *entity.UsageTransaction) *model.UsageTransaction {
	if t == nil {
		return nil
	}
	return &model.UsageTransaction{
		Id:             t.Id,
		UserId:         t.UserId,
		Feature:        t.Feature,
		CycleStartedAt: t.CycleStartedAt,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *BillingMapper) UsageToEntities(txs []*model.UsageTransaction) []*entity.UsageTransaction {
	entities := make([]*entity.UsageTransaction, len(txs))
	for i, t := range txs {
		entities[i] = m.UsageToEntity(t)
	}
	return entities
}
