// Package main boots the Product Card Showcase in the terminal or over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/product-card-showcase/internal/config"
	"github.com/fairyhunter13/product-card-showcase/internal/obs"
)

var (
	configPath string
	logLevel   string
	logOutput  string
	catalogURL string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "product-card-showcase",
	Short: "Browse the first products of a remote catalog as hover cards",
	Long: `Fetches the product catalog once and shows the first products as
colored cards. Hovering a card reveals its category, title and price.

Run without a subcommand to start the terminal view.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Load()
		}
		if catalogURL != "" {
			cfg.CatalogURL = catalogURL
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if logOutput != "" {
			cfg.LogOutput = logOutput
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		obs.Sync()
	},
	RunE: runTUI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the cards in the terminal (mouse hover supported)",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cards as an HTML page and JSON API",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logOutput, "log-output", "", "log destination: stderr, stdout or a file path")
	rootCmd.PersistentFlags().StringVar(&catalogURL, "catalog-url", "", "catalog endpoint")
	rootCmd.AddCommand(tuiCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
