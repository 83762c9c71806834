// FILE: internal/service/billing_service.go
package service

import (
	"context"
	"errors"

	"cholestofit-be/internal/dto"
	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/repository/specification"
	"cholestofit-be/internal/repository/unitofwork"
	"cholestofit-be/pkg/billing"

	"github.com/google/uuid"
)

type IBillingService interface {
	GetStatus(ctx context.Context, userId uuid.UUID) (*dto.BillingStatusResponse, error)
	Deposit(ctx context.Context, userId uuid.UUID, req *dto.DepositRequest) (*dto.DepositResponse, error)
	ChangePlan(ctx context.Context, userId uuid.UUID, req *dto.ChangePlanRequest) (*dto.ChangePlanResponse, error)
	GetUsageHistory(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.UsageHistoryResponse, error)
}

type billingService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    billing.Catalog
	engineOpts []billing.Option
}

func NewBillingService(uowFactory unitofwork.RepositoryFactory, catalog billing.Catalog, engineOpts ...billing.Option) IBillingService {
	return &billingService{
		uowFactory: uowFactory,
		catalog:    catalog,
		engineOpts: engineOpts,
	}
}

// uowAccountStore adapts the user repository to the billing engine's
// persistence hook.
type uowAccountStore struct {
	uow unitofwork.UnitOfWork
}

func (s *uowAccountStore) SaveAccount(ctx context.Context, account *entity.User) error {
	return s.uow.UserRepository().Update(ctx, account)
}

func (s *billingService) engineFor(uow unitofwork.UnitOfWork) *billing.Engine {
	return billing.NewEngine(s.catalog, &uowAccountStore{uow: uow}, s.engineOpts...)
}

func loadAccount(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (s *billingService) GetStatus(ctx context.Context, userId uuid.UUID) (*dto.BillingStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadAccount(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	status, err := s.engineFor(uow).Status(ctx, user)
	if err != nil {
		return nil, err
	}
	return mapBillingStatus(status), nil
}

func (s *billingService) Deposit(ctx context.Context, userId uuid.UUID, req *dto.DepositRequest) (*dto.DepositResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := loadAccount(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := s.engineFor(uow).Deposit(ctx, user, req.AmountCents); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.DepositResponse{
		BalanceCents:     user.BalanceCents,
		BalanceFormatted: billing.FormatCents(user.BalanceCents),
	}, nil
}

func (s *billingService) ChangePlan(ctx context.Context, userId uuid.UUID, req *dto.ChangePlanRequest) (*dto.ChangePlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := loadAccount(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := s.engineFor(uow).ChangePlan(ctx, user, req.PlanCode); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	def := s.catalog.Resolve(user.Plan)
	return &dto.ChangePlanResponse{
		Plan:             mapPlan(def),
		BalanceCents:     user.BalanceCents,
		BalanceFormatted: billing.FormatCents(user.BalanceCents),
	}, nil
}

func (s *billingService) GetUsageHistory(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.UsageHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
	}

	total, err := uow.BillingRepository().CountUsageTransactions(ctx, specs...)
	if err != nil {
		return nil, err
	}

	rows, err := uow.BillingRepository().FindAllUsageTransactions(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.UsageHistoryResponse{
		Transactions: make([]dto.UsageTransactionDTO, 0, len(rows)),
		Total:        total,
	}
	for _, row := range rows {
		res.Transactions = append(res.Transactions, dto.UsageTransactionDTO{
			Feature:        row.Feature,
			CycleStartedAt: row.CycleStartedAt,
			CreatedAt:      row.CreatedAt,
		})
	}
	return res, nil
}

func mapBillingStatus(status *billing.Status) *dto.BillingStatusResponse {
	res := &dto.BillingStatusResponse{
		Plan: dto.PlanDTO{
			Code:            status.PlanCode,
			Label:           status.PlanLabel,
			MonthlyFeeCents: status.MonthlyFeeCents,
			AllowsAdvice:    status.AllowsAdvice,
			AllowsAssistant: status.AllowsAssistant,
		},
		Balance: dto.BalanceDTO{
			Cents:     status.BalanceCents,
			Formatted: status.BalanceFormatted,
			Currency:  status.Currency,
		},
		Usage: dto.UsageCycleDTO{
			Limit:     status.Usage.LimitRequests,
			Used:      status.Usage.UsedRequests,
			Remaining: status.Usage.RemainingRequests,
			Advice:    status.Usage.AdviceRequests,
			Assistant: status.Usage.AssistantRequests,
		},
		Plans: make([]dto.PlanDTO, 0, len(status.Plans)),
	}
	if status.Usage.MonthStartedAt != nil {
		res.Usage.MonthStartedAt = *status.Usage.MonthStartedAt
	}
	for _, def := range status.Plans {
		res.Plans = append(res.Plans, mapPlan(def))
	}
	return res
}

func mapPlan(def billing.PlanDefinition) dto.PlanDTO {
	return dto.PlanDTO{
		Code:            def.Code,
		Label:           def.Label,
		MonthlyFeeCents: def.MonthlyFeeCents,
		AllowsAdvice:    def.AllowsAdvice,
		AllowsAssistant: def.AllowsAssistant,
		RequestLimit:    def.RequestLimit,
	}
}
