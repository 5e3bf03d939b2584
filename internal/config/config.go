// Package config resolves runtime settings from defaults, an optional
// sixteen.yaml, SIXTEEN_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/sixteen/internal/quiz"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SIXTEEN"

// Keys shared by viper, flags and the config file.
const (
	KeyDB               = "db"
	KeyContent          = "content"
	KeyMode             = "mode"
	KeyStepSize         = "step_size"
	KeyLogFile          = "log_file"
	KeyDebug            = "debug"
	KeyMetricsFile      = "metrics_file"
	KeyAnalyticsBuffer  = "analytics.buffer"
	KeyAnalyticsTimeout = "analytics.record_timeout"
	KeyAnalyticsStore   = "analytics.store"
	KeyAnalyticsLog     = "analytics.log"
)

// Config holds every runtime setting.
type Config struct {
	// DB is the SQLite event log path. Empty means store.DefaultDBPath().
	DB string `mapstructure:"db"`

	// Content is a JSON or YAML content file. Empty means the embedded
	// default content.
	Content string `mapstructure:"content"`

	// Mode selects the pacing preset: per-question or per-step.
	Mode string `mapstructure:"mode"`

	// StepSize overrides the per-step page size. 0 keeps the preset.
	StepSize int `mapstructure:"step_size"`

	LogFile string `mapstructure:"log_file"`
	Debug   bool   `mapstructure:"debug"`

	// MetricsFile, when set, receives a Prometheus textfile on exit.
	MetricsFile string `mapstructure:"metrics_file"`

	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

// AnalyticsConfig tunes event delivery.
type AnalyticsConfig struct {
	Buffer        int           `mapstructure:"buffer"`
	RecordTimeout time.Duration `mapstructure:"record_timeout"`
	Store         bool          `mapstructure:"store"` // persist to the event log
	Log           bool          `mapstructure:"log"`   // mirror to the log file
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Mode: string(quiz.ModePerQuestion),
		Analytics: AnalyticsConfig{
			Buffer:        64,
			RecordTimeout: 2 * time.Second,
			Store:         true,
			Log:           true,
		},
	}
}

// New returns a viper instance wired for SIXTEEN_* environment variables.
// A non-empty configFile must exist; otherwise sixteen.yaml is searched
// for in the working directory and the user config directory.
func New(configFile string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		return v
	}
	v.SetConfigName("sixteen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "sixteen"))
	}
	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyDB, d.DB)
	v.SetDefault(KeyContent, d.Content)
	v.SetDefault(KeyMode, d.Mode)
	v.SetDefault(KeyStepSize, d.StepSize)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyMetricsFile, d.MetricsFile)
	v.SetDefault(KeyAnalyticsBuffer, d.Analytics.Buffer)
	v.SetDefault(KeyAnalyticsTimeout, d.Analytics.RecordTimeout)
	v.SetDefault(KeyAnalyticsStore, d.Analytics.Store)
	v.SetDefault(KeyAnalyticsLog, d.Analytics.Log)
}

// Load reads the config file (if any) and returns the merged, validated
// Config. Flags must already be bound to v.
func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports invalid settings.
func (c Config) Validate() error {
	if _, err := quiz.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.StepSize < 0 {
		return fmt.Errorf("config: step_size must be >= 0, got %d", c.StepSize)
	}
	if c.Analytics.Buffer < 1 {
		return fmt.Errorf("config: analytics.buffer must be >= 1, got %d", c.Analytics.Buffer)
	}
	if c.Analytics.RecordTimeout <= 0 {
		return fmt.Errorf("config: analytics.record_timeout must be positive")
	}
	return nil
}

// Quiz returns the quiz pacing selected by Mode and StepSize.
func (c Config) Quiz() (quiz.Config, error) {
	mode, err := quiz.ParseMode(c.Mode)
	if err != nil {
		return quiz.Config{}, err
	}
	return quiz.ConfigFor(mode, c.StepSize)
}
