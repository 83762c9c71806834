// FILE: internal/service/advice_service.go
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"cholestofit-be/internal/dto"
	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/pkg/logger"
	"cholestofit-be/internal/repository/specification"
	"cholestofit-be/internal/repository/unitofwork"
	"cholestofit-be/pkg/billing"
	"cholestofit-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const adviceSystemPrompt = `You are a heart-health assistant for the CholestoFit app.
You give practical, non-alarming guidance about cholesterol, blood pressure and diet.
You are not a doctor: for abnormal readings, recommend consulting a physician.
Keep answers under 300 words.`

type IAdviceService interface {
	GetNutritionAdvice(ctx context.Context, userId uuid.UUID, req *dto.AdviceRequest) (*dto.AdviceResponse, error)
	GetGeneralAdvice(ctx context.Context, userId uuid.UUID, req *dto.AdviceRequest) (*dto.AdviceResponse, error)
	AnalyzeMealPhoto(ctx context.Context, userId uuid.UUID, imageData []byte, mimeType string) (*dto.MealPhotoAnalysisResponse, error)
}

type adviceService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	catalog          billing.Catalog
	engineOpts       []billing.Option
	publisherService IPublisherService
	responseCache    *cache.Cache
	log              logger.ILogger
}

func NewAdviceService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	catalog billing.Catalog,
	publisherService IPublisherService,
	log logger.ILogger,
	engineOpts ...billing.Option,
) IAdviceService {
	// Identical questions over an unchanged health log get the cached
	// answer without burning a usage request.
	responseCache := cache.New(15*time.Minute, 5*time.Minute)

	return &adviceService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		catalog:          catalog,
		engineOpts:       engineOpts,
		publisherService: publisherService,
		responseCache:    responseCache,
		log:              log,
	}
}

func (s *adviceService) engineFor(uow unitofwork.UnitOfWork) *billing.Engine {
	return billing.NewEngine(s.catalog, &uowAccountStore{uow: uow}, s.engineOpts...)
}

func (s *adviceService) GetNutritionAdvice(ctx context.Context, userId uuid.UUID, req *dto.AdviceRequest) (*dto.AdviceResponse, error) {
	return s.advise(ctx, userId, req.Question, true)
}

func (s *adviceService) GetGeneralAdvice(ctx context.Context, userId uuid.UUID, req *dto.AdviceRequest) (*dto.AdviceResponse, error) {
	return s.advise(ctx, userId, req.Question, false)
}

func (s *adviceService) advise(ctx context.Context, userId uuid.UUID, question string, nutritionFocus bool) (*dto.AdviceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	engine := s.engineFor(uow)

	user, err := loadAccount(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	// 1. Billing access check, before any model call
	if err := engine.EnsureAdviceAccess(ctx, user); err != nil {
		return nil, err
	}

	// 2. Build the prompt from the user's recent health log
	prompt, err := s.buildAdvicePrompt(ctx, uow, userId, question, nutritionFocus)
	if err != nil {
		return nil, err
	}

	// 3. Cache lookup keyed on user + prompt content
	cacheKey := adviceCacheKey(userId, prompt)
	if cached, found := s.responseCache.Get(cacheKey); found {
		return &dto.AdviceResponse{Advice: cached.(string), Cached: true}, nil
	}

	// 4. Model call
	advice, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: adviceSystemPrompt},
		{Role: "user", Content: prompt},
	}, llm.WithTemperature(0.4))
	if err != nil {
		s.log.Error("advice", "LLM call failed", map[string]interface{}{"error": err.Error(), "user_id": userId})
		return nil, errors.New("advice service temporarily unavailable")
	}

	// 5. Record usage only after a successful model response
	if err := engine.RecordAdviceUsage(ctx, user); err != nil {
		return nil, err
	}
	s.publishUsage(ctx, user, string(billing.FeatureAdvice))

	s.responseCache.Set(cacheKey, advice, cache.DefaultExpiration)

	return &dto.AdviceResponse{Advice: advice}, nil
}

func (s *adviceService) AnalyzeMealPhoto(ctx context.Context, userId uuid.UUID, imageData []byte, mimeType string) (*dto.MealPhotoAnalysisResponse, error) {
	visionProvider, ok := s.llmProvider.(llm.VisionProvider)
	if !ok {
		return nil, errors.New("configured model does not support image analysis")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	engine := s.engineFor(uow)

	user, err := loadAccount(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := engine.EnsureAdviceAccess(ctx, user); err != nil {
		return nil, err
	}

	prompt := `Identify the foods in this meal photo and estimate calories, total fat
and saturated fat. Then assess how heart-healthy the meal is for someone
watching their cholesterol, and suggest one improvement.`

	analysis, err := visionProvider.AnalyzeImage(ctx, prompt, imageData, mimeType, llm.WithTemperature(0.2))
	if err != nil {
		s.log.Error("advice", "Vision call failed", map[string]interface{}{"error": err.Error(), "user_id": userId})
		return nil, errors.New("photo analysis temporarily unavailable")
	}

	if err := engine.RecordAdviceUsage(ctx, user); err != nil {
		return nil, err
	}
	s.publishUsage(ctx, user, string(billing.FeatureAdvice))

	return &dto.MealPhotoAnalysisResponse{Analysis: analysis}, nil
}

// buildAdvicePrompt assembles the model context: last lipid panel, recent
// blood pressure readings and, for nutrition questions, the last week of
// diary entries.
func (s *adviceService) buildAdvicePrompt(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, question string, nutritionFocus bool) (string, error) {
	var sb strings.Builder

	panels, err := uow.LipidPanelRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "measured_at", Desc: true},
		specification.Pagination{Limit: 1},
	)
	if err != nil {
		return "", err
	}
	if len(panels) > 0 {
		p := panels[0]
		sb.WriteString(fmt.Sprintf("Latest lipid panel (%s): total cholesterol %d, LDL %d, HDL %d, triglycerides %d mg/dL.\n",
			p.MeasuredAt.Format("2006-01-02"), p.TotalCholesterol, p.Ldl, p.Hdl, p.Triglycerides))
	}

	readings, err := uow.BloodPressureRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "measured_at", Desc: true},
		specification.Pagination{Limit: 5},
	)
	if err != nil {
		return "", err
	}
	if len(readings) > 0 {
		sb.WriteString("Recent blood pressure readings:\n")
		for _, r := range readings {
			sb.WriteString(fmt.Sprintf("- %s: %d/%d mmHg\n", r.MeasuredAt.Format("2006-01-02"), r.Systolic, r.Diastolic))
		}
	}

	if nutritionFocus {
		weekAgo := time.Now().AddDate(0, 0, -7)
		entries, err := uow.NutritionRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: userId},
			specification.ConsumedBetween{From: weekAgo, To: time.Now().Add(24 * time.Hour)},
			specification.OrderBy{Field: "consumed_at", Desc: true},
			specification.Pagination{Limit: 30},
		)
		if err != nil {
			return "", err
		}
		if len(entries) > 0 {
			sb.WriteString("Food diary for the past week:\n")
			for _, e := range entries {
				line := fmt.Sprintf("- %s %s: %s", e.ConsumedAt.Format("Mon"), e.MealType, e.Description)
				if e.SaturatedFatGrams != nil {
					line += fmt.Sprintf(" (%.1fg saturated fat)", *e.SaturatedFatGrams)
				}
				sb.WriteString(line + "\n")
			}
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("The user has not logged any health data yet.\n")
	}

	if question != "" {
		sb.WriteString("\nUser question: " + question)
	} else if nutritionFocus {
		sb.WriteString("\nGive dietary advice based on the diary and lab values above.")
	} else {
		sb.WriteString("\nGive overall heart-health advice based on the data above.")
	}

	return sb.String(), nil
}

func adviceCacheKey(userId uuid.UUID, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return userId.String() + ":" + hex.EncodeToString(sum[:])
}

func (s *adviceService) publishUsage(ctx context.Context, user *entity.User, feature string) {
	publishUsageEvent(ctx, s.publisherService, s.log, "advice", user, feature)
}
