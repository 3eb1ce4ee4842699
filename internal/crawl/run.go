package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"xzqh/internal/config"
	"xzqh/internal/fetch"
	"xzqh/internal/logging"
	"xzqh/internal/region"
	"xzqh/internal/source"
	"xzqh/internal/store"
)

// Report describes a completed run.
type Report struct {
	RunID  string
	Output string
	SQLite string
	Years  []YearStat
}

// Execute performs a full run for cfg over sources: lock the cache, crawl
// every year, then write the JSON dataset and, when configured, the SQLite
// export. A nil client uses one bounded by cfg's request timeout.
func Execute(ctx context.Context, cfg config.Config, sources []source.Source, client *http.Client, logger *slog.Logger) (Report, error) {
	runID := uuid.NewString()
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String(logging.FieldRunID, runID))

	if client == nil {
		client = &http.Client{Timeout: cfg.RequestTimeout()}
	}
	fetcher, err := fetch.New(fetch.Options{
		CacheDir: cfg.CacheDir,
		Client:   client,
		Delay:    cfg.RequestDelay(),
		Logger:   logger,
	})
	if err != nil {
		return Report{}, err
	}
	unlock, err := fetcher.Lock()
	if err != nil {
		return Report{}, err
	}
	defer func() {
		if err := unlock(); err != nil {
			logger.Warn("failed to release cache lock", logging.Args(logging.Error(err))...)
		}
	}()

	dataset, stats, err := New(fetcher, sources, logger).Run(ctx)
	if err != nil {
		return Report{}, err
	}

	if err := dataset.Write(cfg.Output); err != nil {
		return Report{}, fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	logger.Info("dataset written", logging.Args(
		logging.String("path", cfg.Output),
		logging.Int("years", len(dataset)),
	)...)

	report := Report{RunID: runID, Output: cfg.Output, Years: stats}
	if cfg.SQLitePath != "" {
		if err := export(ctx, cfg.SQLitePath, dataset, logger); err != nil {
			return Report{}, err
		}
		report.SQLite = cfg.SQLitePath
	}
	return report, nil
}

func export(ctx context.Context, path string, dataset region.Dataset, logger *slog.Logger) error {
	db, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Save(ctx, dataset); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	logger.Info("sqlite export written", logging.Args(logging.String("path", path))...)
	return nil
}
