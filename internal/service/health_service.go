// FILE: internal/service/health_service.go
package service

import (
	"context"
	"errors"
	"time"

	"cholestofit-be/internal/dto"
	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/repository/specification"
	"cholestofit-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errors.New("record not found")

type IHealthService interface {
	// Blood pressure
	CreateBloodPressure(ctx context.Context, userId uuid.UUID, req *dto.CreateBloodPressureRequest) (*dto.BloodPressureResponse, error)
	UpdateBloodPressure(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateBloodPressureRequest) (*dto.BloodPressureResponse, error)
	DeleteBloodPressure(ctx context.Context, userId, id uuid.UUID) error
	ListBloodPressure(ctx context.Context, userId uuid.UUID, query *dto.HealthListQuery) ([]*dto.BloodPressureResponse, error)

	// Lipid panels
	CreateLipidPanel(ctx context.Context, userId uuid.UUID, req *dto.CreateLipidPanelRequest) (*dto.LipidPanelResponse, error)
	UpdateLipidPanel(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateLipidPanelRequest) (*dto.LipidPanelResponse, error)
	DeleteLipidPanel(ctx context.Context, userId, id uuid.UUID) error
	ListLipidPanels(ctx context.Context, userId uuid.UUID, query *dto.HealthListQuery) ([]*dto.LipidPanelResponse, error)

	// Nutrition diary
	CreateNutritionEntry(ctx context.Context, userId uuid.UUID, req *dto.CreateNutritionEntryRequest) (*dto.NutritionEntryResponse, error)
	UpdateNutritionEntry(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateNutritionEntryRequest) (*dto.NutritionEntryResponse, error)
	DeleteNutritionEntry(ctx context.Context, userId, id uuid.UUID) error
	ListNutritionEntries(ctx context.Context, userId uuid.UUID, query *dto.HealthListQuery) ([]*dto.NutritionEntryResponse, error)
}

type healthService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHealthService(uowFactory unitofwork.RepositoryFactory) IHealthService {
	return &healthService{uowFactory: uowFactory}
}

// listSpecs builds the shared owner + range + paging specification set.
// timeField is the column the range filter applies to.
func listSpecs(userId uuid.UUID, query *dto.HealthListQuery, timeField string) []specification.Specification {
	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: timeField, Desc: true},
	}

	if query != nil {
		if query.From != nil || query.To != nil {
			from := time.Time{}
			to := time.Now().AddDate(100, 0, 0)
			if query.From != nil {
				from = *query.From
			}
			if query.To != nil {
				to = *query.To
			}
			if timeField == "consumed_at" {
				specs = append(specs, specification.ConsumedBetween{From: from, To: to})
			} else {
				specs = append(specs, specification.MeasuredBetween{From: from, To: to})
			}
		}

		limit := query.Limit
		if limit <= 0 || limit > 200 {
			limit = 50
		}
		specs = append(specs, specification.Pagination{Limit: limit, Offset: query.Offset})
	}

	return specs
}

// --- Blood pressure ---

func (s *healthService) CreateBloodPressure(ctx context.Context, userId uuid.UUID, req *dto.CreateBloodPressureRequest) (*dto.BloodPressureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record := &entity.BloodPressureRecord{
		Id:         uuid.New(),
		UserId:     userId,
		Systolic:   req.Systolic,
		Diastolic:  req.Diastolic,
		Pulse:      req.Pulse,
		MeasuredAt: req.MeasuredAt,
		Notes:      req.Notes,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := uow.BloodPressureRepository().Create(ctx, record); err != nil {
		return nil, err
	}
	return mapBloodPressure(record), nil
}

func (s *healthService) UpdateBloodPressure(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateBloodPressureRequest) (*dto.BloodPressureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.BloodPressureRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if req.Systolic != nil {
		record.Systolic = *req.Systolic
	}
	if req.Diastolic != nil {
		record.Diastolic = *req.Diastolic
	}
	if req.Pulse != nil {
		record.Pulse = req.Pulse
	}
	if req.MeasuredAt != nil {
		record.MeasuredAt = *req.MeasuredAt
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}
	record.UpdatedAt = time.Now()

	if err := uow.BloodPressureRepository().Update(ctx, record); err != nil {
		return nil, err
	}
	return mapBloodPressure(record), nil
}

func (s *healthService) DeleteBloodPressure(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.BloodPressureRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrRecordNotFound
	}
	return uow.BloodPressureRepository().Delete(ctx, id)
}

func (s *healthService) ListBloodPressure(ctx context.Context, userId uuid.UUID, query *dto.HealthListQuery) ([]*dto.BloodPressureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.BloodPressureRepository().FindAll(ctx, listSpecs(userId, query, "measured_at")...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.BloodPressureResponse, 0, len(records))
	for _, record := range records {
		res = append(res, mapBloodPressure(record))
	}
	return res, nil
}

// --- Lipid panels ---

func (s *healthService) CreateLipidPanel(ctx context.Context, userId uuid.UUID, req *dto.CreateLipidPanelRequest) (*dto.LipidPanelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	panel := &entity.LipidPanel{
		Id:               uuid.New(),
		UserId:           userId,
		TotalCholesterol: req.TotalCholesterol,
		Ldl:              req.Ldl,
		Hdl:              req.Hdl,
		Triglycerides:    req.Triglycerides,
		MeasuredAt:       req.MeasuredAt,
		Notes:            req.Notes,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uow.LipidPanelRepository().Create(ctx, panel); err != nil {
		return nil, err
	}
	return mapLipidPanel(panel), nil
}

func (s *healthService) UpdateLipidPanel(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateLipidPanelRequest) (*dto.LipidPanelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	panel, err := uow.LipidPanelRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if panel == nil {
		return nil, ErrRecordNotFound
	}

	if req.TotalCholesterol != nil {
		panel.TotalCholesterol = *req.TotalCholesterol
	}
	if req.Ldl != nil {
		panel.Ldl = *req.Ldl
	}
	if req.Hdl != nil {
		panel.Hdl = *req.Hdl
	}
	if req.Triglycerides != nil {
		panel.Triglycerides = *req.Triglycerides
	}
	if req.MeasuredAt != nil {
		panel.MeasuredAt = *req.MeasuredAt
	}
	if req.Notes != nil {
		panel.Notes = req.Notes
	}
	panel.UpdatedAt = time.Now()

	if err := uow.LipidPanelRepository().Update(ctx, panel); err != nil {
		return nil, err
	}
	return mapLipidPanel(panel), nil
}

func (s *healthService) DeleteLipidPanel(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	panel, err := uow.LipidPanelRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if panel == nil {
		return ErrRecordNotFound
	}
	return uow.LipidPanelRepository().Delete(ctx, id)
}

func (s *healthService) ListLipidPanels(ctx context.Context, userId uuid.UUID, query *dto.HealthListQuery) ([]*dto.LipidPanelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	panels, err := uow.LipidPanelRepository().FindAll(ctx, listSpecs(userId, query, "measured_at")...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LipidPanelResponse, 0, len(panels))
	for _, panel := range panels {
		res = append(res, mapLipidPanel(panel))
	}
	return res, nil
}

// --- Nutrition diary ---

func (s *healthService) CreateNutritionEntry(ctx context.Context, userId uuid.UUID, req *dto.CreateNutritionEntryRequest) (*dto.NutritionEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.NutritionEntry{
		Id:                uuid.New(),
		UserId:            userId,
		MealType:          entity.MealType(req.MealType),
		Description:       req.Description,
		Calories:          req.Calories,
		FatGrams:          req.FatGrams,
		SaturatedFatGrams: req.SaturatedFatGrams,
		ConsumedAt:        req.ConsumedAt,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := uow.NutritionRepository().Create(ctx, entry); err != nil {
		return nil, err
	}
	return mapNutritionEntry(entry), nil
}

func (s *healthService) UpdateNutritionEntry(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateNutritionEntryRequest) (*dto.NutritionEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.NutritionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrRecordNotFound
	}

	if req.MealType != nil {
		entry.MealType = entity.MealType(*req.MealType)
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Calories != nil {
		entry.Calories = req.Calories
	}
	if req.FatGrams != nil {
		entry.FatGrams = req.FatGrams
	}
	if req.SaturatedFatGrams != nil {
		entry.SaturatedFatGrams = req.SaturatedFatGrams
	}
	if req.ConsumedAt != nil {
		entry.ConsumedAt = *req.ConsumedAt
	}
	entry.UpdatedAt = time.Now()

	if err := uow.NutritionRepository().Update(ctx, entry); err != nil {
		return nil, err
	}
	return mapNutritionEntry(entry), nil
}

func (s *healthService) DeleteNutritionEntry(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.NutritionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrRecordNotFound
	}
	return uow.NutritionRepository().Delete(ctx, id)
}

func (s *healthService) ListNutritionEntries(ctx context.Context, userId uuid.UUID, query *dto.HealthListQuery) ([]*dto.NutritionEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.NutritionRepository().FindAll(ctx, listSpecs(userId, query, "consumed_at")...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NutritionEntryResponse, 0, len(entries))
	for _, entry := range entries {
		res = append(res, mapNutritionEntry(entry))
	}
	return res, nil
}

// --- Mapping helpers ---

func mapBloodPressure(record *entity.BloodPressureRecord) *dto.BloodPressureResponse {
	return &dto.BloodPressureResponse{
		Id:         record.Id,
		Systolic:   record.Systolic,
		Diastolic:  record.Diastolic,
		Pulse:      record.Pulse,
		MeasuredAt: record.MeasuredAt,
		Notes:      record.Notes,
		CreatedAt:  record.CreatedAt,
	}
}

func mapLipidPanel(panel *entity.LipidPanel) *dto.LipidPanelResponse {
	return &dto.LipidPanelResponse{
		Id:               panel.Id,
		TotalCholesterol: panel.TotalCholesterol,
		Ldl:              panel.Ldl,
		Hdl:              panel.Hdl,
		Triglycerides:    panel.Triglycerides,
		MeasuredAt:       panel.MeasuredAt,
		Notes:            panel.Notes,
		CreatedAt:        panel.CreatedAt,
	}
}

func mapNutritionEntry(entry *entity.NutritionEntry) *dto.NutritionEntryResponse {
	return &dto.NutritionEntryResponse{
		Id:                entry.Id,
		MealType:          string(entry.MealType),
		Description:       entry.Description,
		Calories:          entry.Calories,
		FatGrams:          entry.FatGrams,
		SaturatedFatGrams: entry.SaturatedFatGrams,
		ConsumedAt:        entry.ConsumedAt,
		CreatedAt:         entry.CreatedAt,
	}
}
