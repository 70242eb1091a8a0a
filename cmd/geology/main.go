// Command geology runs the catalog API and its maintenance tasks.
package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/geology-api/internal/config"
	"github.com/deppfellow/geology-api/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is what every subcommand needs: configuration and a logger.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
}

var current app

var rootCmd = &cobra.Command{
	Use:   "geology",
	Short: "Geology drilling equipment catalog API",
	Long: `Geology serves the drilling equipment catalog, sale items, orders and
contact form over HTTP. Without a subcommand it runs the API server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		loggerService := logger.NewLoggerService(cfg.Observability)
		current = app{
			cfg:           cfg,
			log:           logger.NewLoggerWithService(cfg.Observability, loggerService),
			loggerService: loggerService,
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		current.loggerService.Shutdown()
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(fixPricesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
