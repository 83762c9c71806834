package mapper

import (
	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/model"
)

type HealthMapper struct{}

func NewHealthMapper() *HealthMapper {
	return &HealthMapper{}
}

func (m *HealthMapper) BloodPressureToEntity(r *model.BloodPressureRecord) *entity.BloodPressureRecord {
	if r == nil {
		return nil
	}
	return &entity.BloodPressureRecord{
		Id:         r.Id,
		UserId:     r.UserId,
		Systolic:   r.Systolic,
		Diastolic:  r.Diastolic,
		Pulse:      r.Pulse,
		MeasuredAt: r.MeasuredAt,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (m *HealthMapper) BloodPressureToModel(r *entity.BloodPressureRecord) *model.BloodPressureRecord {
	if r == nil {
		return nil
	}
	return &model.BloodPressureRecord{
		Id:         r.Id,
		UserId:     r.UserId,
		Systolic:   r.Systolic,
		Diastolic:  r.Diastolic,
		Pulse:      r.Pulse,
		MeasuredAt: r.MeasuredAt,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (m *HealthMapper) BloodPressureToEntities(records []*model.BloodPressureRecord) []*entity.BloodPressureRecord {
	entities := make([]*entity.BloodPressureRecord, len(records))
	for i, r := range records {
		entities[i] = m.BloodPressureToEntity(r)
	}
	return entities
}

func (m *HealthMapper) LipidPanelToEntity(p *model.LipidPanel) *entity.LipidPanel {
	if p == nil {
		return nil
	}
	return &entity.LipidPanel{
		Id:               p.Id,
		UserId:           p.UserId,
		TotalCholesterol: p.TotalCholesterol,
		Ldl:              p.Ldl,
		Hdl:              p.Hdl,
		Triglycerides:    p.Triglycerides,
		MeasuredAt:       p.MeasuredAt,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (m *HealthMapper) LipidPanelToModel(p *entity.LipidPanel) *model.LipidPanel {
	if p == nil {
		return nil
	}
	return &model.LipidPanel{
		Id:               p.Id,
		UserId:           p.UserId,
		TotalCholesterol: p.TotalCholesterol,
		Ldl:              p.Ldl,
		Hdl:              p.Hdl,
		Triglycerides:    p.Triglycerides,
		MeasuredAt:       p.MeasuredAt,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (m *HealthMapper) LipidPanelToEntities(panels []*model.LipidPanel) []*entity.LipidPanel {
	entities := make([]*entity.LipidPanel, len(panels))
	for i, p := range panels {
		entities[i] = m.LipidPanelToEntity(p)
	}
	return entities
}

func (m *HealthMapper) NutritionToEntity(e *model.NutritionEntry) *entity.NutritionEntry {
	if e == nil {
		return nil
	}
	return &entity.NutritionEntry{
		Id:                e.Id,
		UserId:            e.UserId,
		MealType:          entity.MealType(e.MealType),
		Description:       e.Description,
		Calories:          e.Calories,
		FatGrams:          e.FatGrams,
		SaturatedFatGrams: e.SaturatedFatGrams,
		ConsumedAt:        e.ConsumedAt,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func (m *HealthMapper) NutritionToModel(e *entity.NutritionEntry) *model.NutritionEntry {
	if e == nil {
		return nil
	}
	return &model.NutritionEntry{
		Id:                e.Id,
		UserId:            e.UserId,
		MealType:          string(e.MealType),
		Description:       e.Description,
		Calories:          e.Calories,
		FatGrams:          e.FatGrams,
		SaturatedFatGrams: e.SaturatedFatGrams,
		ConsumedAt:        e.ConsumedAt,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func (m *HealthMapper) NutritionToEntities(entries []*model.NutritionEntry) []*entity.NutritionEntry {
	entities := make([]*entity.NutritionEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.NutritionToEntity(e)
	}
	return entities
}
