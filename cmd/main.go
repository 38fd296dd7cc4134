package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/spot_tracker/internal/config"
	v1 "github.com/shenikar/spot_tracker/internal/handler/http/v1"
	"github.com/shenikar/spot_tracker/internal/repository"
	"github.com/shenikar/spot_tracker/internal/service"
	"github.com/shenikar/spot_tracker/internal/webhook"
	"github.com/shenikar/spot_tracker/pkg/logger"
	"github.com/shenikar/spot_tracker/pkg/postgres"
	redisclient "github.com/shenikar/spot_tracker/pkg/redis"
	"github.com/shenikar/spot_tracker/pkg/sqlite"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/spot_tracker/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// @title Spot Tracker API
// @version 1.0
// @description Personal log of exploration spots: CRUD, filtered list and cards, map links.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey PasscodeAuth
// @in header
// @name X-Passcode
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://"+cfg.MigrationsPath,
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newSpotRepository открывает хранилище выбранного режима.
// Возвращаемая функция закрывает соединение.
func newSpotRepository(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.SpotRepository, func(), error) {
	switch cfg.StorageMode {
	case config.StorageModeLocal:
		db, err := sqlite.Open(ctx, cfg.LocalDBPath)
		if err != nil {
			return nil, nil, err
		}
		log.WithFields(logrus.Fields{"path": cfg.LocalDBPath, "slot": cfg.LocalSlotKey}).Info("Using local slot storage")
		return repository.NewLocalSpotRepository(db, cfg.LocalSlotKey, log), func() { _ = db.Close() }, nil
	default:
		if err := runMigrations(cfg, log); err != nil {
			return nil, nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewSpotRepository(dbpool), dbpool.Close, nil
	}
}

func newRouter(handler *v1.Handler) *gin.Engine {
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	repo, closeRepo, err := newSpotRepository(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open spot storage: %w", err)
	}
	defer closeRepo()

	var (
		cache       service.SpotCache
		publisher   webhook.WebhookPublisher
		redisClient *redis.Client
	)
	if cfg.RedisEnabled() {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		cache = repository.NewSpotCache(redisClient, cfg.CacheTTL)
		if cfg.WebhookURL != "" {
			publisher = webhook.NewRedisWebhookPublisher(redisClient)
		}
	} else {
		log.Info("REDIS_ADDR is empty, cache and webhooks are disabled")
	}

	spotService := service.NewSpotService(repo, cache, publisher, log)
	handler := v1.NewHandler(spotService, log, cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           newRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})

	if publisher != nil {
		worker := webhook.NewWebhookWorker(redisClient, log, cfg)
		g.Go(func() error {
			return worker.Run(gCtx)
		})
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server gracefully stopped")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatalf("Application stopped with error: %v", err)
	}
}
