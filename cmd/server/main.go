package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"omsbridge/internal/cache"
	"omsbridge/internal/commerce/woo"
	"omsbridge/internal/config"
	"omsbridge/internal/handler"
	"omsbridge/internal/ledger/ginesys"
	"omsbridge/internal/repository/postgres"
	"omsbridge/internal/router"
	"omsbridge/internal/service"
	"omsbridge/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Transporter registry, optionally fronted by a Redis cache
	transporters := postgres.NewTransporterRepo(db)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		transporters = cache.NewTransporterCache(transporters, cache.NewRedisStore(rdb), cfg.Redis.TTL)
	}

	// ERP and commerce clients
	erp := ginesys.NewClient(&cfg.Ledger)
	wooClient := woo.NewClient(&cfg.Commerce)

	// Validation engine
	var opts []validator.Option
	if cfg.Validation.StrictDates {
		opts = append(opts, validator.WithStrictDates())
	}
	engine := validator.NewEngine(transporters, erp, opts...)

	// Services
	invoiceSvc := service.NewInvoiceService(engine)
	orderSvc := service.NewOrderService(erp)

	// Handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	healthH := handler.NewHealthHandler(db)

	// Background inventory sync
	if cfg.Sync.Enabled {
		worker := service.NewInventorySyncWorker(erp, wooClient, service.InventorySyncConfig{
			PollInterval: cfg.Sync.PollInterval,
			Concurrency:  cfg.Sync.Concurrency,
		})
		go worker.Start(ctx)
	}

	// Setup router
	r := router.Setup(cfg.Auth.Secret, invoiceH, orderH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
