package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/interval"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/questdb"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig      `envPrefix:"APP_"`
	Pipeline PipelineConfig `envPrefix:"PIPELINE_"`
	QuestDB  QuestDBConfig  `envPrefix:"QUESTDB_"`
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
	Metrics  MetricsConfig  `envPrefix:"METRICS_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"tailriskmanagement"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// PipelineConfig drives which ticker is processed, how and where.
type PipelineConfig struct {
	Ticker       string `env:"TICKER" envDefault:"SPY"`
	Interval     string `env:"INTERVAL" envDefault:"1m"`
	DataDir      string `env:"DATA_DIR" envDefault:"data"`
	SessionOpen  string `env:"SESSION_OPEN" envDefault:"09:30"`
	SessionClose string `env:"SESSION_CLOSE" envDefault:"16:00"`
	Workers      int    `env:"WORKERS" envDefault:"1"`
}

// QuestDBConfig enables the optional QuestDB returns sink.
type QuestDBConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	questdb.Config
}

// KafkaConfig enables the optional Kafka returns publisher.
type KafkaConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"lobster.returns"`
}

// MetricsConfig controls where run metrics are pushed.
type MetricsConfig struct {
	PushgatewayURL string `env:"PUSHGATEWAY_URL"`
	Job            string `env:"JOB" envDefault:"lobster"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Pipeline.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the pipeline parameters that cannot be checked by tags.
func (p PipelineConfig) Validate() error {
	if strings.TrimSpace(p.Ticker) == "" {
		return fmt.Errorf("ticker must not be empty")
	}
	if _, err := interval.Parse(p.Interval); err != nil {
		return err
	}
	open, close, err := p.Session()
	if err != nil {
		return err
	}
	if open >= close {
		return fmt.Errorf("session open %s must be before session close %s", p.SessionOpen, p.SessionClose)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", p.Workers)
	}
	return nil
}

// ResamplingInterval returns the parsed resampling interval.
func (p PipelineConfig) ResamplingInterval() (interval.Interval, error) {
	return interval.Parse(p.Interval)
}

// Session returns the canonical session bounds as offsets from midnight.
func (p PipelineConfig) Session() (open, close time.Duration, err error) {
	if open, err = util.ParseClock(p.SessionOpen); err != nil {
		return 0, 0, err
	}
	if close, err = util.ParseClock(p.SessionClose); err != nil {
		return 0, 0, err
	}
	return open, close, nil
}

// TickerDir is the root directory of every artifact of the ticker.
func (p PipelineConfig) TickerDir() string {
	return filepath.Join(p.DataDir, p.Ticker)
}

// ExtractedDir holds one subdirectory per archive of raw LOBSTER csv files.
func (p PipelineConfig) ExtractedDir() string {
	return filepath.Join(p.TickerDir(), p.Ticker+"_extracted_files")
}

// EquidistantDir holds one equidistant return file per day.
func (p PipelineConfig) EquidistantDir() string {
	return filepath.Join(p.TickerDir(), p.Ticker+"_equidistant_log_returns")
}

// SupplementaryDir holds the diagnostics artifacts.
func (p PipelineConfig) SupplementaryDir() string {
	return filepath.Join(p.TickerDir(), p.Ticker+"_supplementary_files")
}

// DailyOutputPath is the closing-price log return file.
func (p PipelineConfig) DailyOutputPath() string {
	return filepath.Join(p.TickerDir(), p.Ticker+"_daily_log_returns.csv")
}

// MergedOutputPath is the concatenation of all equidistant files for the given interval label.
func (p PipelineConfig) MergedOutputPath(label string) string {
	return filepath.Join(p.TickerDir(), fmt.Sprintf("%s_%s_preprocessed_data.csv", p.Ticker, label))
}
