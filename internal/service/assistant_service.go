// FILE: internal/service/assistant_service.go
package service

import (
	"context"
	"errors"
	"time"

	"cholestofit-be/internal/dto"
	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/pkg/logger"
	"cholestofit-be/internal/repository/specification"
	"cholestofit-be/internal/repository/unitofwork"
	"cholestofit-be/pkg/billing"
	"cholestofit-be/pkg/llm"

	"github.com/google/uuid"
)

const assistantSystemPrompt = `You are the CholestoFit assistant. You answer questions about
heart health, cholesterol management and the app itself. You are not a
doctor; recommend professional care for anything that sounds urgent.`

// assistantHistoryWindow caps how many past turns are replayed to the model.
const assistantHistoryWindow = 20

type IAssistantService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.AssistantChatRequest) (*dto.AssistantChatResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) (*dto.ChatHistoryResponse, error)
	ClearHistory(ctx context.Context, userId uuid.UUID) error
}

type assistantService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	catalog          billing.Catalog
	engineOpts       []billing.Option
	publisherService IPublisherService
	log              logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	catalog billing.Catalog,
	publisherService IPublisherService,
	log logger.ILogger,
	engineOpts ...billing.Option,
) IAssistantService {
	return &assistantService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		catalog:          catalog,
		engineOpts:       engineOpts,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *assistantService) engineFor(uow unitofwork.UnitOfWork) *billing.Engine {
	return billing.NewEngine(s.catalog, &uowAccountStore{uow: uow}, s.engineOpts...)
}

func (s *assistantService) Chat(ctx context.Context, userId uuid.UUID, req *dto.AssistantChatRequest) (*dto.AssistantChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	engine := s.engineFor(uow)

	user, err := loadAccount(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	// 1. Billing access check, before any model call
	if err := engine.EnsureAssistantAccess(ctx, user); err != nil {
		return nil, err
	}

	// 2. Replay recent history so the conversation has continuity
	history, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: assistantHistoryWindow},
	)
	if err != nil {
		return nil, err
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: assistantSystemPrompt})
	// history is newest-first, replay oldest-first
	for i := len(history) - 1; i >= 0; i-- {
		messages = append(messages, llm.Message{
			Role:    string(history[i].Role),
			Content: history[i].Content,
		})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	// 3. Model call
	reply, err := s.llmProvider.Chat(ctx, messages, llm.WithTemperature(0.6))
	if err != nil {
		s.log.Error("assistant", "LLM call failed", map[string]interface{}{"error": err.Error(), "user_id": userId})
		return nil, errors.New("assistant temporarily unavailable")
	}

	// 4. Record usage only after a successful model response
	if err := engine.RecordAssistantUsage(ctx, user); err != nil {
		return nil, err
	}
	publishUsageEvent(ctx, s.publisherService, s.log, "assistant", user, string(billing.FeatureAssistant))

	// 5. Persist both turns. Losing a turn is annoying but not fatal.
	now := time.Now()
	userMsg := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      entity.ChatRoleUser,
		Content:   req.Message,
		CreatedAt: now,
	}
	assistantMsg := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      entity.ChatRoleAssistant,
		Content:   reply,
		CreatedAt: now.Add(time.Millisecond),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		s.log.Warn("assistant", "Failed to persist user turn", map[string]interface{}{"error": err.Error(), "user_id": userId})
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMsg); err != nil {
		s.log.Warn("assistant", "Failed to persist assistant turn", map[string]interface{}{"error": err.Error(), "user_id": userId})
	}

	return &dto.AssistantChatResponse{Reply: reply}, nil
}

func (s *assistantService) GetHistory(ctx context.Context, userId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ChatHistoryResponse{Messages: make([]dto.ChatMessageDTO, 0, len(messages))}
	for _, msg := range messages {
		res.Messages = append(res.Messages, dto.ChatMessageDTO{
			Id:        msg.Id,
			Role:      string(msg.Role),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return res, nil
}

func (s *assistantService) ClearHistory(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatMessageRepository().DeleteAllByUser(ctx, userId)
}
