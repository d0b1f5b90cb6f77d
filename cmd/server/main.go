package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"github.com/chef/backend/config"
	httpDelivery "github.com/chef/backend/internal/delivery/http"
	"github.com/chef/backend/internal/domain"
	"github.com/chef/backend/internal/infrastructure/cache"
	"github.com/chef/backend/internal/infrastructure/metrics"
	"github.com/chef/backend/internal/infrastructure/persistence"
	"github.com/chef/backend/internal/usecase"
	"github.com/chef/backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.IsDevelopment(),
	})
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	log.Info("Starting CHEF Backend v1.0.0",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("database", cfg.Database.Driver),
		zap.String("cache", cfg.Cache.Type),
	)

	// Initialize infrastructure dependencies
	dbLogLevel := gormlogger.Silent
	if cfg.IsDevelopment() {
		dbLogLevel = gormlogger.Warn
	}
	db, err := persistence.Open(cfg.Database.Driver, cfg.Database.DSN, dbLogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.Close(db) }()

	recipeRepo := persistence.NewRecipeRepository(db)
	if cfg.Recipes.SeedFile != "" {
		recipes, err := persistence.LoadRecipeSeed(cfg.Recipes.SeedFile)
		if err != nil {
			return err
		}
		n, err := persistence.SeedRecipes(context.Background(), recipeRepo, recipes)
		if err != nil {
			return fmt.Errorf("seed recipes: %w", err)
		}
		log.Info("Recipe corpus loaded", zap.String("file", cfg.Recipes.SeedFile), zap.Int("recipes", n))
	}

	cacheRepo, closeCache, err := newCache(cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()
	log.Info("Cache ready", zap.String("type", cfg.Cache.Type), zap.Duration("ttl", cfg.Cache.TTL))

	m := metrics.New()

	// Initialize usecase layer
	classifier := usecase.NewClassifier(
		usecase.ClassifierConfig{EnableDebugLogging: cfg.Matching.EnableDebugLogging},
		log,
		m,
	)
	pantryService := usecase.NewPantryService(cacheRepo, recipeRepo, log, m, usecase.PantryServiceConfig{
		CacheTTL:           cfg.Cache.TTL,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})
	shoppingService := usecase.NewShoppingService(persistence.NewShoppingRepository(db), recipeRepo, classifier, log)
	mealPlanService := usecase.NewMealPlanService(persistence.NewMealPlanRepository(db), recipeRepo, log)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(classifier, pantryService, shoppingService, mealPlanService, log)
	router := httpDelivery.SetupRouter(cfg, handler, m, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newCache builds the configured cache backend and its close function
func newCache(cfg *config.Config, log *zap.Logger) (domain.CacheRepository, func(), error) {
	if cfg.Cache.Type == "redis" {
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL, log)
		if err != nil {
			return nil, nil, err
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisCache.Ping(pingCtx); err != nil {
			// Pantry search still works uncached; failures are logged per request
			log.Warn("Redis not reachable at startup", zap.Error(err))
		}
		return redisCache, func() { _ = redisCache.Close() }, nil
	}

	memoryCache := cache.NewMemoryCache(0)
	return memoryCache, func() { _ = memoryCache.Close() }, nil
}
