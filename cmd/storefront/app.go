package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fjod/go_storefront/internal/auth"
	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/config"
	"github.com/fjod/go_storefront/internal/generator"
	"github.com/fjod/go_storefront/internal/storage"
)

// app holds every wired service for one process.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	storage   storage.Storage
	cart      *cart.Store
	catalog   *catalog.Catalog
	llm       *generator.LLM
	generator *generator.Service
	publisher checkout.Publisher
	checkout  *checkout.Service
	auth      *auth.Auth

	closeStorage func() error
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	st, closeStorage, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	log.InfoContext(ctx, "storage ready", "backend", cfg.StorageBackend)

	a := &app{
		cfg:          cfg,
		log:          log,
		storage:      st,
		closeStorage: closeStorage,
	}
	a.cart = cart.New(ctx, st, log)
	a.catalog = catalog.New(st, log)
	a.auth = auth.New(st, log)

	a.llm = generator.NewLLM(generator.LLMConfig{
		APIKey:   cfg.OpenAIAPIKey,
		Model:    cfg.OpenAIModel,
		BaseURL:  cfg.OpenAIBaseURL,
		Products: cfg.GeneratedProducts,
		Log:      log,
	})
	if !a.llm.Configured() {
		log.InfoContext(ctx, "openai api key not set, stores will be generated from templates")
	}
	a.generator = generator.NewService(a.llm, log)

	if len(cfg.KafkaBrokers) > 0 {
		a.publisher = checkout.NewKafkaPublisher(cfg.KafkaTopic, cfg.KafkaBrokers...)
		log.InfoContext(ctx, "publishing orders to kafka", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		a.publisher = checkout.NewLogPublisher(log)
	}
	a.checkout = checkout.NewService(a.cart, a.publisher, cfg.CheckoutDelay, log)

	return a, nil
}

func (a *app) Close() error {
	return errors.Join(a.publisher.Close(), a.closeStorage())
}
