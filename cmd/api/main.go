// @title Notes Quizzer API
// @version 1.0
// @description Turns free-form study notes into short-answer quiz questions.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "notes-quizzer/cmd/api/docs"
	"notes-quizzer/internal/adapter"
	"notes-quizzer/internal/adapter/quizgen"
	"notes-quizzer/internal/cache"
	"notes-quizzer/internal/config"
	"notes-quizzer/internal/domain"
	"notes-quizzer/internal/handler"
	"notes-quizzer/internal/logger"
	"notes-quizzer/internal/middleware"
	"notes-quizzer/internal/service"
	"notes-quizzer/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	}

	generator := buildGenerator(cfg, redisClient, appLogger)

	fallback := domain.DefaultFallback
	if cfg.Quiz.FallbackStyle == config.FallbackStyleSimple {
		fallback = domain.SimpleFallback
	}

	quizService := service.NewQuizService(generator, fallback)
	validationMiddleware := middleware.NewValidationMiddleware(validation.NewValidator(cfg.Quiz.MaxNotesLength))
	quizHandler := handler.NewQuizHandler(quizService, validationMiddleware)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", quizHandler.Health)
	apiGroup.Post("/quiz", validationMiddleware.ValidateQuizRequest(), quizHandler.GenerateQuiz)

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("llm_provider", cfg.LLM.Provider),
			zap.String("llm_model", cfg.LLM.Model))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}

// buildGenerator wraps the model adapter as
// singleflight(rate limit(llm)). The rate limiter is only added when Redis is
// enabled and a limit is configured.
func buildGenerator(cfg *config.Config, redisClient *redis.Client, appLogger *zap.Logger) domain.QuestionGenerator {
	var generator domain.QuestionGenerator

	llm, err := quizgen.NewLLM(cfg.LLM)
	if err != nil {
		appLogger.Warn("LLM client unavailable, serving fallback questions only", zap.Error(err))
		generator = quizgen.NewUnavailableGenerator(domain.ReasonAuth, err)
	} else {
		generator, err = quizgen.NewLLMQuestionGenerator(llm, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.Timeout)
		if err != nil {
			appLogger.Fatal("Failed to create question generator", zap.Error(err))
		}
		appLogger.Info("Question generator initialized",
			zap.String("provider", cfg.LLM.Provider),
			zap.String("model", cfg.LLM.Model))
	}

	if redisClient != nil && cfg.Quiz.RateLimitPerMinute > 0 {
		limited, err := quizgen.NewRateLimitedGenerator(generator, adapter.NewRedisCacheAdapter(redisClient), cfg.Quiz.RateLimitPerMinute, time.Minute)
		if err != nil {
			appLogger.Fatal("Failed to create rate limited generator", zap.Error(err))
		}
		generator = limited
		appLogger.Info("Generation rate limit enabled", zap.Int("per_minute", cfg.Quiz.RateLimitPerMinute))
	}

	return quizgen.NewSingleflightGenerator(generator)
}
