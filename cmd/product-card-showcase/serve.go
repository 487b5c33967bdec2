package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fairyhunter13/product-card-showcase/internal/catalog"
	httpapi "github.com/fairyhunter13/product-card-showcase/internal/http"
	"github.com/fairyhunter13/product-card-showcase/internal/obs"
	"github.com/fairyhunter13/product-card-showcase/internal/store"
)

func runServe(cmd *cobra.Command, args []string) error {
	if err := obs.InitLogger(cfg.LogLevel, cfg.LogOutput); err != nil {
		return err
	}
	obs.Logger.Info("service_starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.New()
	app := httpapi.NewApp(cfg, st)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpapi.LoadInto(gctx, st, catalog.NewClient(cfg))
	})
	g.Go(func() error {
		obs.Logger.Info("http_listen", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obs.Logger.Error("http_server_error", zap.Error(err))
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		obs.Logger.Info("shutdown_signal")
		ctxSrv, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxSrv); err != nil {
			obs.Logger.Error("http_shutdown_error", zap.Error(err))
		}
		return nil
	})

	err := g.Wait()
	obs.Logger.Info("service_stopped")
	return err
}
