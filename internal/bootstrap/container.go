package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"medinfo-be/internal/config"
	"medinfo-be/internal/controller"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/internal/repository/contract"
	"medinfo-be/internal/repository/memory"
	"medinfo-be/internal/repository/rediscache"
	"medinfo-be/internal/repository/unitofwork"
	"medinfo-be/internal/service"
	"medinfo-be/pkg/llm/factory"
	"medinfo-be/pkg/websearch"

	pktNats "medinfo-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	MedicineController   controller.IMedicineController
	EssentialsController controller.IEssentialsController
	KendraController     controller.IKendraController
	AssistantController  controller.IAssistantController
	DrugInfoController   controller.IDrugInfoController
	BlogController       controller.IBlogController

	// Background Services
	ActivityService service.IActivityService

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Infrastructure
	c := &Container{}

	var eventPublisher service.EventPublisher = service.NoopPublisher()
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS publisher, events disabled", map[string]interface{}{"error": err.Error()})
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	var resultCache contract.ResultCache = memory.NewResultCache()
	if cfg.App.RedisURL != "" {
		if rdb, err := connectRedis(cfg.App.RedisURL); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to Redis, using in-memory cache", map[string]interface{}{"error": err.Error()})
		} else {
			resultCache = rediscache.NewResultCache(rdb)
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.HuggingFace,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	sysLogger.Info("Bootstrap", "LLM provider ready", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})

	if cfg.Search.APIKey == "" || cfg.Search.EngineID == "" {
		sysLogger.Warn("Bootstrap", "Web search not configured, drug reports and price comparison disabled", nil)
	}
	searcher := websearch.NewGoogleSearcher(cfg.Search.BaseURL, cfg.Search.APIKey, cfg.Search.EngineID)

	// 3. Services
	tokenTTL := time.Duration(cfg.App.TokenTTLMinutes) * time.Minute
	authService := service.NewAuthService(uowFactory, eventPublisher, sysLogger, cfg.App.JWTSecret, tokenTTL)
	userService := service.NewUserService(uowFactory, eventPublisher, sysLogger)
	medicineService := service.NewMedicineService(uowFactory, sysLogger)
	essentialsService := service.NewEssentialsService(uowFactory, resultCache, sysLogger)
	kendraService := service.NewKendraService(uowFactory, resultCache, sysLogger)
	assistantService := service.NewAssistantService(llmProvider, sysLogger)
	drugInfoService := service.NewDrugInfoService(searcher, llmProvider, resultCache, sysLogger)
	blogService := service.NewBlogService(uowFactory, sysLogger)

	// Activity feed (Worker)
	if cfg.App.NatsURL != "" {
		natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS subscriber", map[string]interface{}{"error": err.Error()})
		} else {
			activityLog := logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "activity.log"))
			c.ActivityService = service.NewActivityService(natsSub, activityLog)
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	// 4. Controllers
	c.AuthController = controller.NewAuthController(authService)
	c.UserController = controller.NewUserController(userService, cfg.App.JWTSecret)
	c.MedicineController = controller.NewMedicineController(medicineService)
	c.EssentialsController = controller.NewEssentialsController(essentialsService)
	c.KendraController = controller.NewKendraController(kendraService)
	c.AssistantController = controller.NewAssistantController(assistantService)
	c.DrugInfoController = controller.NewDrugInfoController(drugInfoService)
	c.BlogController = controller.NewBlogController(blogService)

	return c, nil
}

// Close releases broker and cache connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func connectRedis(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
