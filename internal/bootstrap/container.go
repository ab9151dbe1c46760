package bootstrap

import (
	"log"

	"procure-ai-be/internal/config"
	"procure-ai-be/internal/constant"
	"procure-ai-be/internal/controller"
	"procure-ai-be/internal/pkg/logger"
	"procure-ai-be/internal/pkg/mailer"
	"procure-ai-be/internal/repository/memory"
	"procure-ai-be/internal/repository/unitofwork"
	"procure-ai-be/internal/service"
	"procure-ai-be/pkg/procurement/conversation"
	"procure-ai-be/pkg/procurement/extract"
	"procure-ai-be/pkg/procurement/question"
	"procure-ai-be/pkg/search"

	pktNats "procure-ai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	OAuthController       controller.IOAuthController
	ChatController        controller.IChatController
	ProcurementController controller.IProcurementController
	CatalogController     controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
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

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// 3. Conversation Engine
	var questionSource question.Source
	if cfg.Keys.QuestionServiceURL != "" {
		questionSource = question.NewServiceGenerator(cfg.Keys.QuestionServiceURL)
		log.Printf("[INFO] Using Question Source: SERVICE (%s)", cfg.Keys.QuestionServiceURL)
	} else {
		questionSource = question.StaticSource{}
		log.Printf("[INFO] Using Question Source: STATIC")
	}

	machine := conversation.NewMachine(extract.NewRegexExtractor(), questionSource)
	stateRepo := memory.NewStateRepository()

	// Marketplace client is optional. Without an API key the catalog
	// endpoints that proxy it report "not configured".
	marketplace := search.NewClient(cfg.Keys.RapidAPIKey, cfg.Keys.RapidAPIHost, cfg.Keys.MarketplaceCountry)

	// 4. Services
	consumerService := service.NewConsumerService(
		pubSub,
		constant.PlanCompletedTopicName,
		uowFactory,
		emailService,
		natsPub,
	)

	// Audit trail off the NATS stream
	auditService := service.NewAuditService(natsSub, sysLogger)
	if natsSub != nil {
		go func() {
			if err := auditService.Start(); err != nil {
				log.Printf("[WARN] Audit consumer failed to start: %v", err)
			}
		}()
	}

	authService := service.NewAuthService(uowFactory, natsPub)
	oauthService := service.NewOAuthService(uowFactory, natsPub)
	chatService := service.NewChatService(
		uowFactory,
		machine,
		stateRepo,
		pubSub,
		constant.PlanCompletedTopicName,
		sysLogger,
	)
	recommendService := service.NewRecommendService(uowFactory, questionSource)
	catalogService := service.NewCatalogService(uowFactory, marketplace)

	// 5. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		OAuthController:       controller.NewOAuthController(oauthService),
		ChatController:        controller.NewChatController(chatService),
		ProcurementController: controller.NewProcurementController(recommendService),
		CatalogController:     controller.NewCatalogController(catalogService),

		ConsumerService: consumerService,
	}
}
