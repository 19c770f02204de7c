package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mirevo/shop-catalog-service/config"
	"github.com/mirevo/shop-catalog-service/internal/auth"
	attributehandler "github.com/mirevo/shop-catalog-service/internal/attribute/handler"
	attributerepo "github.com/mirevo/shop-catalog-service/internal/attribute/repository"
	attributeuc "github.com/mirevo/shop-catalog-service/internal/attribute/usecase"
	categoryhandler "github.com/mirevo/shop-catalog-service/internal/category/handler"
	categoryrepo "github.com/mirevo/shop-catalog-service/internal/category/repository"
	categoryuc "github.com/mirevo/shop-catalog-service/internal/category/usecase"
	"github.com/mirevo/shop-catalog-service/internal/counter"
	currencylistener "github.com/mirevo/shop-catalog-service/internal/currency/listener"
	currencyrepo "github.com/mirevo/shop-catalog-service/internal/currency/repository"
	discounthandler "github.com/mirevo/shop-catalog-service/internal/discount/handler"
	discountrepo "github.com/mirevo/shop-catalog-service/internal/discount/repository"
	discountuc "github.com/mirevo/shop-catalog-service/internal/discount/usecase"
	"github.com/mirevo/shop-catalog-service/internal/media"
	producthandler "github.com/mirevo/shop-catalog-service/internal/product/handler"
	productrepo "github.com/mirevo/shop-catalog-service/internal/product/repository"
	productuc "github.com/mirevo/shop-catalog-service/internal/product/usecase"
	"github.com/mirevo/shop-catalog-service/internal/shop"
	"github.com/mirevo/shop-catalog-service/pkg/broker"
	"github.com/mirevo/shop-catalog-service/pkg/cache"
	"github.com/mirevo/shop-catalog-service/pkg/database/postgres"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
	"github.com/mirevo/shop-catalog-service/pkg/search"
)

func main() {
	// Missing .env is fine outside local dev.
	_ = godotenv.Load()

	cfg := config.LoadEnv()

	log := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer log.Sync()

	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		log.Fatal("Failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()
	log.Info("Connected to postgres", zap.String("host", cfg.Postgres.Host))

	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("Connected to redis", zap.String("addr", cfg.Redis.Addr))

	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		log.Warn("Elasticsearch unavailable, search falls back to postgres", zap.Error(err))
		esClient = nil
	}

	producer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.EventsTopic,
	})
	defer producer.Close()

	ratesConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.RatesTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer ratesConsumer.Close()

	categoryRepo := categoryrepo.NewPGRepository(db)
	attributeRepo := attributerepo.NewPGRepository(db)
	productRepo := productrepo.NewPGRepository(db)
	discountRepo := discountrepo.NewPGRepository(db)
	fxRepo := currencyrepo.NewPGRepository(db)
	shopRepo := shop.NewPGRepository(db)

	categoryUC := categoryuc.NewCategoryUseCase(categoryRepo, log)
	attributeUC := attributeuc.NewAttributeUseCase(attributeRepo, log)
	productUC := productuc.NewProductUseCase(productuc.Deps{
		Repo:       productRepo,
		Categories: categoryUC,
		CatRepo:    categoryRepo,
		Attributes: attributeRepo,
		Shops:      shopRepo,
		FXRates:    fxRepo,
		Sequence:   counter.NewRedisSequence(redisClient),
		Media:      media.NewURLRenderer(cfg.Media.BaseURL),
		Cache:      redisClient,
		Search:     esClient,
		Producer:   producer,
		Logger:     log,
	})
	discountUC := discountuc.NewDiscountUseCase(discountRepo, categoryRepo, productRepo, shopRepo, producer, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rateListener := currencylistener.NewRateListener(ratesConsumer, fxRepo, log)
	go rateListener.Start(ctx)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(auth.ShopContextMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		categoryhandler.NewCategoryHandler(categoryUC, log).RegisterRoutes(r)
		attributehandler.NewAttributeHandler(attributeUC, log).RegisterRoutes(r)
		producthandler.NewProductHandler(productUC, log).RegisterRoutes(r)
		discounthandler.NewDiscountHandler(discountUC, log).RegisterRoutes(r)
	})

	server := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Starting HTTP server", zap.String("addr", cfg.Server.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
