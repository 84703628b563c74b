package bootstrap

import (
	"context"
	"log"
	"time"

	"visa-casework-be/internal/config"
	"visa-casework-be/internal/controller"
	"visa-casework-be/internal/handler"
	"visa-casework-be/internal/pkg/logger"
	"visa-casework-be/internal/pkg/mailer"
	"visa-casework-be/internal/repository/memory"
	"visa-casework-be/internal/repository/unitofwork"
	"visa-casework-be/internal/service"
	"visa-casework-be/internal/websocket"
	"visa-casework-be/pkg/cache"
	"visa-casework-be/pkg/visacatalog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ApplicationController   controller.IApplicationController
	DocumentController      controller.IDocumentController
	QuestionnaireController controller.IQuestionnaireController
	ChecklistController     controller.IChecklistController
	IssueController         controller.IIssueController
	ReferenceController     controller.IReferenceController
	AnalysisController      controller.IAnalysisController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	ProgressHandler *handler.ProgressHandler
	WebSocketHub    *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	catalog := visacatalog.New()

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

	// 2.5 Infrastructure
	// Redis: optional, the checklist cache degrades to no-op without it.
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	responseCache := cache.NewChecklistCache(rdb)

	// In-memory run state
	runRepo := memory.NewAnalysisRunRepository()

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Publishers per topic
	progressPublisher := service.NewPublisherService(cfg.Topics.AnalysisProgress, pubSub)
	invalidatePublisher := service.NewPublisherService(cfg.Topics.ChecklistInvalidate, pubSub)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.AnalysisProgress,
		cfg.Topics.ChecklistInvalidate,
		wsHub,
		responseCache,
		sysLogger,
	)

	scheduler := service.NewTimedScheduler(time.Duration(cfg.Analysis.CheckpointIntervalMs) * time.Millisecond)

	// 3. Services
	applicationService := service.NewApplicationService(uowFactory)
	documentService := service.NewDocumentService(uowFactory, invalidatePublisher)
	questionnaireService := service.NewQuestionnaireService(uowFactory, catalog, invalidatePublisher)
	checklistService := service.NewChecklistService(uowFactory, catalog, runRepo, responseCache, invalidatePublisher)
	issueService := service.NewIssueService(uowFactory, catalog)
	referenceService := service.NewReferenceService(uowFactory)
	analysisService := service.NewAnalysisService(uowFactory, catalog, runRepo, progressPublisher, scheduler, sysLogger)
	digestService := service.NewDigestService(uowFactory, catalog, emailService)

	// 4. Controllers
	return &Container{
		ApplicationController:   controller.NewApplicationController(applicationService),
		DocumentController:      controller.NewDocumentController(documentService),
		QuestionnaireController: controller.NewQuestionnaireController(questionnaireService),
		ChecklistController:     controller.NewChecklistController(checklistService, digestService),
		IssueController:         controller.NewIssueController(issueService),
		ReferenceController:     controller.NewReferenceController(referenceService),
		AnalysisController:      controller.NewAnalysisController(analysisService),

		ConsumerService: consumerService,
		ProgressHandler: handler.NewProgressHandler(wsHub, wsLogger),
		WebSocketHub:    wsHub,
	}
}
