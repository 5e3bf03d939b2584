package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sixteen/internal/config"
	"github.com/abhisek/sixteen/internal/logging"
	"github.com/abhisek/sixteen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sixteen",
	Short: "Sixteen-type personality quiz",
	Long:  "Sixteen: a twelve-question terminal quiz that sorts you into one of sixteen personality types.",

	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Populated by setup before any command runs.
var (
	settings = config.DefaultConfig()
	logger   = zap.NewNop()
)

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"db":           config.KeyDB,
	"content":      config.KeyContent,
	"mode":         config.KeyMode,
	"step-size":    config.KeyStepSize,
	"log-file":     config.KeyLogFile,
	"debug":        config.KeyDebug,
	"metrics-file": config.KeyMetricsFile,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("config", "", "Path to a sixteen.yaml config file")
	f.String("db", "", "Path to SQLite database file (overrides SIXTEEN_DB env var)")
	f.String("content", "", "Question and result content file (JSON or YAML)")
	f.String("mode", "", "Quiz pacing: per-question or per-step")
	f.Int("step-size", 0, "Questions per page in per-step mode")
	f.String("log-file", "", "Log file path, - for stderr")
	f.Bool("debug", false, "Enable debug logging")
	f.String("metrics-file", "", "Write Prometheus metrics to this textfile on exit")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup merges defaults, config file, environment and flags into settings
// and opens the log file.
func setup(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	v := config.New(configFile)
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	settings = cfg

	l, err := logging.New(logging.Options{Path: cfg.LogFile, Debug: cfg.Debug})
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("config loaded",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.String("mode", cfg.Mode),
		zap.String("content", cfg.Content),
	)
	return nil
}

// resolveDBPath returns the database path using --db / SIXTEEN_DB / the
// config file (highest priority first), then the default XDG path.
func resolveDBPath() (string, error) {
	if p := settings.DB; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event log at the resolved path.
func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath))
	return st, nil
}
