package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-game-api/internal/config"
	"github.com/yourusername/trivia-game-api/internal/handler"
	"github.com/yourusername/trivia-game-api/internal/middleware"
	pgRepo "github.com/yourusername/trivia-game-api/internal/repository/postgres"
	"github.com/yourusername/trivia-game-api/internal/service"
	"github.com/yourusername/trivia-game-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo, questionRepo)
	questionService := service.NewQuestionService(questionRepo)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	categoryHandler := handler.NewCategoryHandler(categoryService)
	questionHandler := handler.NewQuestionHandler(questionService, categoryService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Rate limiter для изменяющих endpoints — опционален, требует Redis.
	// При недоступном Redis приложение стартует без лимитера.
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && cfg.Redis.IsConfigured() {
		redisClient, errRedis := database.NewUniversalRedisClient(cfg.Redis)
		if errRedis != nil {
			log.Printf("Ошибка подключения к Redis: %v. Rate limiting будет неактивен.", errRedis)
		} else {
			log.Println("Successfully connected to Redis, rate limiting enabled")
			rateLimiter = middleware.NewRateLimiter(redisClient)
		}
	}

	isProduction := gin.Mode() == gin.ReleaseMode

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	router.Use(middleware.RequestID())

	// Настройка CORS: все источники, заголовки и методы разрешены на каждом ответе
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Маршруты только для чтения
	router.GET("/categories", categoryHandler.GetCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		categoryHandler.GetCategoryQuestions,
	)
	router.GET("/questions", questionHandler.ListQuestions)
	router.GET("/questions/export", questionHandler.ExportQuestions)
	router.POST("/questions/search", questionHandler.SearchQuestions)
	router.POST("/quizzes", quizHandler.NextQuestion)

	// Изменяющие маршруты — под rate limiter, если он активен
	write := router.Group("")
	if rateLimiter != nil {
		limitCfg := middleware.DefaultWriteRateLimitConfig(
			cfg.RateLimit.MaxRequests,
			time.Duration(cfg.RateLimit.WindowSec)*time.Second,
		)
		write.Use(rateLimiter.Limit(limitCfg))
	}
	write.POST("/questions", questionHandler.CreateQuestion)
	write.DELETE("/questions/:id",
		middleware.ExtractUintParam("id", "questionID"),
		questionHandler.DeleteQuestion,
	)

	// Несуществующие маршруты — 404 с JSON телом
	router.NoRoute(handler.NotFoundRoute)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// После получения сигнала SIGINT или SIGTERM выполняем graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
