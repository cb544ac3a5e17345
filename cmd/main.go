package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/config"
	v1 "github.com/Deibormi/Neighborhood-Security-Network/internal/handler/http/v1"
	"github.com/Deibormi/Neighborhood-Security-Network/internal/notify"
	"github.com/Deibormi/Neighborhood-Security-Network/internal/registry"
	"github.com/Deibormi/Neighborhood-Security-Network/internal/repository"
	"github.com/Deibormi/Neighborhood-Security-Network/pkg/logger"
	"github.com/Deibormi/Neighborhood-Security-Network/pkg/postgres"
	redisclient "github.com/Deibormi/Neighborhood-Security-Network/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/Deibormi/Neighborhood-Security-Network/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Neighborhood Security Network API
// @version 1.0
// @description Community safety-alert registry: users, alerts, neighborhoods and reputation.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Адрес владельца приводим к каноничной форме один раз на старте
	if !ethcommon.IsHexAddress(cfg.OwnerAddress) {
		log.Fatalf("OWNER_ADDRESS is not a valid hex address: %s", cfg.OwnerAddress)
	}
	owner := ethcommon.HexToAddress(cfg.OwnerAddress).Hex()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Журнал событий и воркер доставки
	journal := repository.NewPostgresJournal(dbpool)
	eventPublisher := notify.NewRedisEventPublisher(redisClient)
	deliveryWorker := notify.NewDeliveryWorker(redisClient, journal, log, cfg)
	deliveryWorker.Start(ctx)

	// Восстановление состояния реестра из снапшота, если он есть
	snapshots := repository.NewSnapshotStore(redisClient)
	store, err := snapshots.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load registry snapshot: %v", err)
	}
	if store == nil {
		store = registry.NewStore()
		log.Info("No registry snapshot found, starting with empty state")
	} else {
		log.Info("Registry state restored from snapshot")
	}

	// Инициализация реестра
	reg := registry.NewRegistry(store, owner, log, eventPublisher)

	// Инициализация хэндлеров
	handler := v1.NewHandler(reg, journal, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.CallerIdentityMiddleware(log))
	api := router.Group("/api/v1")
	api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Снапшот состояния перед выходом
	if err := snapshots.Save(shutdownCtx, reg.ExportState()); err != nil {
		log.Errorf("Failed to save registry snapshot: %v", err)
	} else {
		log.Info("Registry snapshot saved")
	}

	log.Info("Server gracefully stopped")
}
