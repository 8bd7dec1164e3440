package app

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration shared by the pipeline binaries.
// Generation counts and the random seed are deliberately not configurable
// here; they live as edit-time constants next to the generator.
type Config struct {
	DataDir      string `envconfig:"DATA_DIR" default:"csv_data"`
	DatabasePath string `envconfig:"DB_PATH" default:"ecommerce.db"`
	ReportPath   string `envconfig:"REPORT_PATH" default:"ecommerce_report.csv"`
	PreviewRows  int    `envconfig:"PREVIEW_ROWS" default:"20"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DataDir == "" {
		return nil, errors.New("data directory must be provided")
	}
	if cfg.DatabasePath == "" {
		return nil, errors.New("database path must be provided")
	}
	return &cfg, nil
}
