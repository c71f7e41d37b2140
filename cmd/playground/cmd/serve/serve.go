package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"api-playground/internal/app"
	"api-playground/internal/config"
	"api-playground/internal/logging"
)

const shutdownTimeout = 10 * time.Second

var configPath string

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"YAML server config file; PLAYGROUND_HOST, PLAYGROUND_PORT and PLAYGROUND_ENV override it")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demonstration HTTP service",
	Long: `Start the demonstration HTTP service

- Path and query parameter parsing with validation
- Request bodies and composite bodies
- A placeholder bearer token dependency on /user/me
- /health, /metrics and /swagger/index.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadServerConfig(configPath)
		if err != nil {
			return err
		}

		logger, err := logging.New(!cfg.IsProduction())
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()

		srv := app.InitializeServer(cfg, logger)
		srv.Start()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("shutting down", zap.String("signal", sig.String()))
		case err := <-srv.Errors():
			logger.Error("server stopped", zap.Error(err))
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	},
}
