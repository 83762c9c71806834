package bootstrap

import (
	"log"

	"cholestofit-be/internal/config"
	"cholestofit-be/internal/controller"
	"cholestofit-be/internal/pkg/logger"
	"cholestofit-be/internal/pkg/mailer"
	"cholestofit-be/internal/repository/unitofwork"
	"cholestofit-be/internal/service"
	"cholestofit-be/pkg/billing"
	"cholestofit-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	HealthController    controller.IHealthController
	AdviceController    controller.IAdviceController
	AssistantController controller.IAssistantController
	BillingController   controller.IBillingController
	PaymentController   controller.IPaymentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Billing
	catalog := billing.DefaultCatalog()

	// 5. Services
	authService := service.NewAuthService(uowFactory, emailService)
	healthService := service.NewHealthService(uowFactory)
	billingService := service.NewBillingService(uowFactory, catalog)
	publisherService := service.NewPublisherService(cfg.Billing.UsageTopic, pubSub)
	adviceService := service.NewAdviceService(uowFactory, llmProvider, catalog, publisherService, sysLogger)
	assistantService := service.NewAssistantService(uowFactory, llmProvider, catalog, publisherService, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, catalog, emailService, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Billing.UsageTopic, uowFactory)

	// 6. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		HealthController:    controller.NewHealthController(healthService),
		AdviceController:    controller.NewAdviceController(adviceService),
		AssistantController: controller.NewAssistantController(assistantService),
		BillingController:   controller.NewBillingController(billingService),
		PaymentController:   controller.NewPaymentController(paymentService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
