package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pverhoeven/tubelens/internal/cache"
	memorystore "github.com/pverhoeven/tubelens/internal/cache/memory"
	sqlitestore "github.com/pverhoeven/tubelens/internal/cache/sqlite"
	"github.com/pverhoeven/tubelens/internal/classify"
	"github.com/pverhoeven/tubelens/internal/clock/system"
	"github.com/pverhoeven/tubelens/internal/config"
	"github.com/pverhoeven/tubelens/internal/detect"
	"github.com/pverhoeven/tubelens/internal/engine"
	"github.com/pverhoeven/tubelens/internal/enrich"
	"github.com/pverhoeven/tubelens/internal/extract"
	collyfetcher "github.com/pverhoeven/tubelens/internal/fetcher/colly"
	"github.com/pverhoeven/tubelens/internal/fetcher/headless"
	"github.com/pverhoeven/tubelens/internal/tube"
)

// buildEngine assembles the extraction pipeline from configuration. The
// returned classifier is shared with the config watcher for hot reloads.
func buildEngine(ctx context.Context, cfg config.Config, logger *zap.Logger) (*engine.Engine, *classify.Classifier, error) {
	clock := system.New()

	store, err := buildStore(cfg.Cache)
	if err != nil {
		return nil, nil, fmt.Errorf("init cache store: %w", err)
	}

	fetcher := collyfetcher.New(collyfetcher.Config{
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second,
	})

	renderer, detector := buildRenderer(cfg, logger)

	classifier := classify.New(cfg.Classifier.Keywords, cfg.Classifier.MaxDurationSeconds)

	deps := engine.Deps{
		Fetcher:    fetcher,
		Renderer:   renderer,
		Detector:   detector,
		Cache:      cache.New(store, clock),
		Clock:      clock,
		Logger:     logger.Named("engine"),
		Classifier: classifier,
	}

	if cfg.Enrich.APIKey != "" {
		svc, err := enrich.New(ctx, cfg.Enrich.APIKey, logger.Named("enrich"))
		if err != nil {
			logger.Warn("enrichment disabled", zap.Error(err))
		} else {
			deps.Enricher = svc
		}
	}

	eng := engine.New(engine.Config{
		BaseURL:       cfg.Engine.BaseURL,
		Fanout:        cfg.Engine.Fanout,
		EntityTTL:     cfg.Cache.EntityTTL(),
		SearchTTL:     cfg.Cache.SearchTTL(),
		DefaultLocale: tube.Locale{Hl: cfg.Engine.DefaultHl, Gl: cfg.Engine.DefaultGl},
	}, deps)

	return eng, classifier, nil
}

func buildStore(cfg config.CacheConfig) (cache.Store, error) {
	switch cfg.Driver {
	case "memory":
		return memorystore.NewStore(), nil
	default:
		return sqlitestore.NewStore(cfg.Dir)
	}
}

// buildRenderer returns a nil renderer and detector when headless promotion
// is disabled; the engine treats both as absent and always uses the static
// document.
func buildRenderer(cfg config.Config, logger *zap.Logger) (tube.Renderer, tube.RenderDetector) {
	if !cfg.Headless.Enabled || cfg.Headless.MaxParallel <= 0 {
		return nil, nil
	}
	renderer, err := headless.New(headless.Config{
		MaxParallel:       cfg.Headless.MaxParallel,
		UserAgent:         cfg.HTTP.UserAgent,
		NavigationTimeout: time.Duration(cfg.Headless.NavTimeoutSec) * time.Second,
	})
	switch {
	case err == nil:
	case errors.Is(err, headless.ErrDisabled):
		logger.Warn("headless renderer disabled despite feature flag; using static pages only")
		return nil, nil
	default:
		logger.Warn("headless renderer init failed; using static pages only", zap.Error(err))
		return nil, nil
	}

	detector := detect.NewHeuristicDetector(
		2048,
		[]string{extract.MarkerInitialData, extract.MarkerPlayerResponse},
		[]string{"consent.youtube.com", "enable javascript"},
		[]string{"ytd-app"},
	)
	return renderer, detector
}
