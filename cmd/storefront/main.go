package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/config"
	h "github.com/fjod/go_storefront/internal/http"
	"github.com/fjod/go_storefront/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCLI().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:  "storefront",
		Usage: "generate and serve themed demo stores",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file to load before the environment"},
			&cli.StringFlag{Name: "storage", Usage: "storage backend: memory, sqlite, redis or mongo"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "port", Usage: "HTTP port"},
				},
				Action: serve,
			},
			{
				Name:  "generate",
				Usage: "generate a store from a prompt and save it",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "prompt", Aliases: []string{"p"}, Required: true},
				},
				Action: generate,
			},
			{
				Name:   "stores",
				Usage:  "list saved stores",
				Action: listStores,
			},
		},
		DefaultCommand: "serve",
	}
}

// setup loads config, applies flag overrides and wires the services.
func setup(c *cli.Context) (*app, error) {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("storage") {
		cfg.StorageBackend = strings.ToLower(c.String("storage"))
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("port") {
		cfg.HTTPPort = c.String("port")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})
	return newApp(c.Context, cfg, log)
}

func serve(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Error("failed to close resources", "error", err)
		}
	}()

	srv := &http.Server{
		Addr: ":" + a.cfg.HTTPPort,
		Handler: h.NewRouter(h.Deps{
			Cart:           a.cart,
			Catalog:        a.catalog,
			Generator:      a.generator,
			Checkout:       a.checkout,
			Auth:           a.auth,
			Suggester:      a.llm,
			Log:            a.log,
			RequestTimeout: a.cfg.RequestTimeout,
			MaxBodySize:    a.cfg.MaxRequestBodySize,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: a.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("storefront starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-c.Context.Done():
	}

	a.log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	a.log.Info("server exited")
	return nil
}

func generate(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.generator.Generate(c.Context, c.String("prompt"))
	if err != nil {
		return err
	}
	if err := a.catalog.Save(c.Context, res.Store); err != nil {
		return err
	}
	if res.Notice != "" {
		fmt.Fprintln(c.App.ErrWriter, res.Notice)
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		Products int    `json:"products"`
		URL      string `json:"url"`
	}{res.Store.ID, res.Store.Name, res.Store.Category, len(res.Store.Products), catalog.URL(res.Store)})
}

func listStores(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	stores := a.catalog.All(c.Context)
	if len(stores) == 0 {
		fmt.Fprintln(c.App.Writer, "no stores yet")
		return nil
	}
	for _, s := range stores {
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%d products\t%s\n", s.ID, s.Name, len(s.Products), catalog.URL(s))
	}
	return nil
}
