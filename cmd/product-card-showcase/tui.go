package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/product-card-showcase/internal/catalog"
	"github.com/fairyhunter13/product-card-showcase/internal/obs"
	"github.com/fairyhunter13/product-card-showcase/internal/tui"
)

// tuiLogFile receives logs in terminal mode unless --log-output says
// otherwise, so log lines never land on the alt screen.
const tuiLogFile = "product-card-showcase.log"

func runTUI(cmd *cobra.Command, args []string) error {
	out := cfg.LogOutput
	if logOutput == "" && (out == "stderr" || out == "stdout") {
		out = tuiLogFile
	}
	if err := obs.InitLogger(cfg.LogLevel, out); err != nil {
		return err
	}
	obs.Logger.Info("showcase_starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err := tui.Run(ctx, catalog.NewClient(cfg))
	obs.Logger.Info("showcase_stopped")
	return err
}
