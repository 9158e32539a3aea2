package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" mapstructure:"paths"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// PathsConfig locates the input and output trees.
type PathsConfig struct {
	Input  string `yaml:"input" mapstructure:"input"`
	Output string `yaml:"output" mapstructure:"output"`
	// BBox is the boundary file, relative to Input unless absolute. Empty
	// looks for lib/ne-110m_bbox.geojson, then ne-110m_bbox.geojson.
	BBox string `yaml:"bbox" mapstructure:"bbox"`
}

// PipelineConfig configures a build run.
type PipelineConfig struct {
	Year             int `yaml:"year" mapstructure:"year"`
	TargetYear       int `yaml:"target_year" mapstructure:"target_year"`
	WriteConcurrency int `yaml:"write_concurrency" mapstructure:"write_concurrency"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks that the configuration can drive a build.
func (c *Config) Validate() error {
	var errs []string

	if c.Paths.Input == "" {
		errs = append(errs, "paths.input is required")
	}
	if c.Paths.Output == "" {
		errs = append(errs, "paths.output is required")
	}
	if c.Paths.Input != "" && c.Paths.Output != "" &&
		filepath.Clean(c.Paths.Input) == filepath.Clean(c.Paths.Output) {
		errs = append(errs, "paths.output must differ from paths.input")
	}
	if c.Pipeline.Year <= 2000 || c.Pipeline.Year >= 2100 {
		errs = append(errs, fmt.Sprintf("pipeline.year must be between 2001 and 2099 (got %d)", c.Pipeline.Year))
	}
	if c.Pipeline.TargetYear < 0 {
		errs = append(errs, "pipeline.target_year must be >= 0")
	}
	if c.Pipeline.WriteConcurrency < 1 || c.Pipeline.WriteConcurrency > 64 {
		errs = append(errs, fmt.Sprintf("pipeline.write_concurrency must be between 1 and 64 (got %d)", c.Pipeline.WriteConcurrency))
	}

	if len(errs) > 0 {
		return eris.New("config: " + strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("climatescope")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CLIMATESCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("paths.input", "./input")
	v.SetDefault("paths.output", "./output")
	v.SetDefault("paths.bbox", "")
	v.SetDefault("pipeline.year", 2018)
	v.SetDefault("pipeline.target_year", 0)
	v.SetDefault("pipeline.write_concurrency", 8)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
