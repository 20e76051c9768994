package bootstrap

import (
	"context"
	"log"

	"ai-strategy-agent-be/internal/config"
	"ai-strategy-agent-be/internal/controller"
	"ai-strategy-agent-be/internal/pkg/logger"
	"ai-strategy-agent-be/internal/repository/memory"
	"ai-strategy-agent-be/internal/repository/unitofwork"
	"ai-strategy-agent-be/internal/service"
	"ai-strategy-agent-be/internal/websocket"
	"ai-strategy-agent-be/pkg/dentapp"
	"ai-strategy-agent-be/pkg/llm/factory"

	pktNats "ai-strategy-agent-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AgentController controller.IAgentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.BaseURL,
		cfg.Ai.APIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	dentClient := dentapp.NewClient(cfg.DentApp.BaseURL, cfg.DentApp.Timeout)

	// In-memory conversation cache
	convRepo := memory.NewConversationRepository()

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
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

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EventTopic,
		natsPub,
	)

	agentService := service.NewAgentService(
		uowFactory,
		llmProvider,
		dentClient,
		convRepo,
		rdb,
		wsHub,
		publisherService,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AgentController: controller.NewAgentController(agentService),
		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
