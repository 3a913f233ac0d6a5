package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"smartresume/config"
	"smartresume/database"
	resumeRepo "smartresume/database/repository/resume"
	"smartresume/handlers"
	"smartresume/middleware"
	"smartresume/routes"
	ai "smartresume/services/intelligence"
	resumeService "smartresume/services/resume"
	"smartresume/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}
	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Configuration loaded",
		zap.String("MONGODB_URI", utils.Presence(cfg.MongoURI)),
		zap.String("llm_provider", cfg.LLMProvider),
		zap.String("llm_api_key", utils.Presence(cfg.LLMAPIKey())),
	)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("main: invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Mongo.
	mongoClient, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("main: mongo client", zap.Error(err))
	}
	if err := database.Ping(ctx, mongoClient); err != nil {
		logger.Warn("MongoDB unreachable, persistence routes will fail until it recovers", zap.Error(err))
	} else {
		logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))
	}
	repo := resumeRepo.NewMongoResumeRepo(
		mongoClient.Database(cfg.MongoDatabase).Collection(resumeRepo.CollectionName),
		cfg.DBOperationTimeout,
	)
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure resume indexes", zap.Error(err))
	}

	monitor := utils.NewHealthMonitor(logger, 2*time.Second)
	monitor.Register("mongo", func(ctx context.Context) error { return database.Ping(ctx, mongoClient) })

	// Rate limit window store.
	var windowStore middleware.WindowStore = middleware.NewMemoryWindowStore(nil)
	var redisClient *redis.Client
	if cfg.RateLimitStore == config.StoreRedis {
		redisClient, err = utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("Redis unavailable, using in-memory rate limit windows", zap.Error(err))
			redisClient = nil
		} else {
			windowStore = middleware.NewRedisWindowStore(redisClient)
			monitor.Register("redis", func(ctx context.Context) error { return redisClient.Ping(ctx).Err() })
		}
	}

	// LLM.
	completer, err := ai.NewCompleter(ctx, cfg.LLMProvider, cfg.LLMAPIKey(), cfg.OpenAIBaseURL, cfg.AIRequestTimeout)
	if err != nil {
		logger.Fatal("main: failed to initialize LLM client", zap.Error(err))
	}
	if completer == nil {
		logger.Warn("LLM API key missing, /api/generate will report the AI service as not configured",
			zap.String("provider", cfg.LLMProvider))
	}

	// services.
	suggestionService := ai.NewDefaultSuggestionService(completer, ai.Options{
		Provider:          cfg.LLMProvider,
		Model:             cfg.LLMModel,
		MaxOutputTokens:   cfg.AIMaxOutputTokens,
		MaxRequestsPerMin: cfg.AIMaxRequestsPerMin,
	}, logger)
	resumes := &resumeService.DefaultResumeService{Repo: repo, Logger: logger}

	aiHandler := handlers.NewAIHandler(suggestionService, logger)
	resumeHandler := handlers.NewResumeHandler(resumes, logger)
	healthHandler := handlers.NewHealthHandler(monitor)

	handlerBundle := &handlers.HandlerBundle{
		RootHandler:             healthHandler.RootHandler,
		HealthHandler:           healthHandler.HealthHandler,
		DependencyHealthHandler: healthHandler.DependencyHealthHandler,
		GenerateHandler:         aiHandler.GenerateHandler,
		SaveResumeHandler:       resumeHandler.SaveResumeHandler,
		ListResumesHandler:      resumeHandler.ListResumesHandler,
	}

	router := routes.NewRouter(handlerBundle, routes.Options{
		Logger:          logger,
		TrustedProxies:  cfg.TrustedProxyList(),
		RateLimitStore:  windowStore,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
	})

	monitor.Start(ctx, 30*time.Second)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	var closers []namedCloser
	if closer, ok := completer.(io.Closer); ok {
		closers = append(closers, namedCloser{name: "LLM client", closer: closer})
	}
	if redisClient != nil {
		closers = append(closers, namedCloser{name: "Redis client", closer: redisClient})
	}
	closeAll(logger, closers...)
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: disconnecting MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

type namedCloser struct {
	name   string
	closer io.Closer
}

// closeAll closes every resource, logging failures at warn.
func closeAll(logger *zap.Logger, closers ...namedCloser) {
	for _, c := range closers {
		if err := c.closer.Close(); err != nil {
			logger.Warn("main: closing "+c.name, zap.Error(err))
		}
	}
}
