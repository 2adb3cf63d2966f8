package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pverhoeven/tubelens/internal/api"
	"github.com/pverhoeven/tubelens/internal/config"
	"github.com/pverhoeven/tubelens/internal/logging"
	"github.com/pverhoeven/tubelens/internal/metrics"
)

// newServeCmd creates and configures the 'serve' subcommand.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the local extraction API",
		Long: `Serves the local HTTP API the desktop client consumes. The process runs
until SIGINT or SIGTERM and then drains in-flight requests before exiting.`,
		RunE: runServeCommand,
	}
}

func runServeCommand(cmd *cobra.Command, _ []string) error {
	cfg, v, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	metrics.Init()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng, classifier, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := eng.Close(context.Background()); cerr != nil {
			logger.Warn("engine close", zap.Error(cerr))
		}
	}()

	// Classifier tuning is approximate and locale-specific, so it follows the
	// config file live instead of requiring a restart.
	config.Watch(v, func(next config.Config) {
		classifier.Update(next.Classifier.Keywords, next.Classifier.MaxDurationSeconds)
		logger.Info("classifier config reloaded",
			zap.Strings("keywords", next.Classifier.Keywords),
			zap.Int("max_duration_seconds", next.Classifier.MaxDurationSeconds),
		)
	})

	apiServer := api.NewServer(eng, logger.Named("api"))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", zap.Int("port", cfg.Server.Port))
		if serr := srv.ListenAndServe(); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
		}
	}()

	select {
	case <-ctx.Done():
	case serr := <-errCh:
		return fmt.Errorf("http server: %w", serr)
	}

	logger.Info("shutdown initiated")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
	return nil
}
