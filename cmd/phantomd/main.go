// Command phantomd serves phantom recipe design over HTTP.
//
// Settings come from PHANTOM_* environment variables (see package config);
// flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/phantomkit/config"
	"github.com/katalvlaran/phantomkit/dataset"
	"github.com/katalvlaran/phantomkit/design"
	"github.com/katalvlaran/phantomkit/sample"
	"github.com/katalvlaran/phantomkit/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "phantomd:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	addr := flag.String("addr", cfg.Addr, "listen address")
	driver := flag.String("driver", string(cfg.Dataset.Driver), "dataset driver: file|s3|sqlite|postgres")
	path := flag.String("data", cfg.Dataset.Path, "dataset file (file driver) or database path (sqlite)")
	dsn := flag.String("dsn", cfg.Dataset.DSN, "postgres connection string")
	flag.Parse()

	cfg.Addr = *addr
	cfg.Dataset.Driver = config.Driver(*driver)
	cfg.Dataset.Path = *path
	cfg.Dataset.DSN = *dsn
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := server.New(design.NewService(nil, design.WithLogger(log)), server.Options{
		AdminToken:   cfg.AdminToken,
		StoreOptions: []sample.Option{sample.WithFamilies(cfg.Families...)},
		Logger:       log,
		Registry:     reg,
		Loader: func(ctx context.Context) ([]sample.Sample, error) {
			return dataset.Open(ctx, cfg.Dataset)
		},
	})
	if _, err := srv.Reload(ctx); err != nil {
		return fmt.Errorf("initial dataset load (%s): %w", cfg.Dataset.Driver, err)
	}

	hs := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Addr, "driver", cfg.Dataset.Driver)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return hs.Shutdown(sctx)
}
