package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sixteen/internal/analytics"
	"github.com/abhisek/sixteen/internal/app"
	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/screens/home"
	"github.com/abhisek/sixteen/internal/store"
)

const (
	statsTimeout = 2 * time.Second
	flushTimeout = 5 * time.Second
)

// runApp opens the store, builds the analytics pipeline, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	c, err := content.Load(settings.Content)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	quizCfg, err := settings.Quiz()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	repo := st.EventRepo()

	metrics := analytics.NewMetricsRecorder()
	recorders := []analytics.Recorder{metrics}
	if settings.Analytics.Store {
		recorders = append(recorders, analytics.NewStoreRecorder(repo))
	}
	if settings.Analytics.Log {
		recorders = append(recorders, analytics.NewLogRecorder(logger))
	}
	dispatcher := analytics.NewDispatcher(logger, analytics.DispatcherConfig{
		Buffer:        settings.Analytics.Buffer,
		RecordTimeout: settings.Analytics.RecordTimeout,
	}, recorders...)

	logger.Info("quiz starting",
		zap.String("mode", settings.Mode),
		zap.Int("step_size", quizCfg.StepSize),
		zap.String("content_version", c.Version),
		zap.Int("questions", len(c.Questions)),
	)

	runErr := app.Run(app.Options{
		Content:   c,
		Quiz:      quizCfg,
		Sink:      dispatcher,
		Stats:     func() home.Stats { return loadStats(ctx, repo) },
		AssetRoot: assetRoot(settings.Content),
		Logger:    logger,
	})

	flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := dispatcher.Close(flushCtx); err != nil {
		logger.Warn("analytics flush incomplete", zap.Error(err))
	}
	if n := dispatcher.Dropped(); n > 0 {
		logger.Warn("analytics events dropped", zap.Int64("count", n))
	}
	if settings.MetricsFile != "" {
		if err := metrics.WriteTextfile(settings.MetricsFile); err != nil {
			logger.Warn("write metrics textfile", zap.String("path", settings.MetricsFile), zap.Error(err))
		}
	}

	logger.Info("quiz exited", zap.Error(runErr))
	return runErr
}

// loadStats summarizes the event log for the home screen. Failures are
// logged and show an empty dashboard.
func loadStats(ctx context.Context, repo store.EventRepo) home.Stats {
	ctx, cancel := context.WithTimeout(ctx, statsTimeout)
	defer cancel()

	dist, err := repo.TypeDistribution(ctx)
	if err != nil {
		logger.Warn("load type distribution", zap.Error(err))
		return home.Stats{}
	}
	return home.StatsFromDistribution(dist)
}

// assetRoot is the directory image paths are relative to: the content
// file's directory, or the working directory for built-in content.
func assetRoot(contentPath string) string {
	if contentPath == "" {
		return "."
	}
	return filepath.Dir(contentPath)
}
