package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/objview/engine/wavefront"
)

/** @brief Logging configuration. */
type LogConfig struct {
	/** @brief One of debug, info, warn, error. */
	Level string `toml:"level"`
}

/** @brief Configuration of the OBJ pipeline. */
type LoaderConfig struct {
	/** @brief The longest accepted record line, without its terminator. */
	MaxLineLength int `toml:"max_line_length"`
	/** @brief "default" substitutes zero records for absent texture/normal references, "strict" rejects them. */
	MissingAttributes string `toml:"missing_attributes"`
}

/** @brief Configuration of the asset manager. */
type AssetsConfig struct {
	/** @brief The directory scanned for model files. */
	Dir string `toml:"dir"`
	/** @brief Reload models when they change on disk. */
	Watch bool `toml:"watch"`
	/** @brief Capacity of the pending reload queue. */
	ReloadQueueSize int `toml:"reload_queue_size"`
}

/** @brief Configuration of the job system. */
type JobsConfig struct {
	Workers   int `toml:"workers"`
	QueueSize int `toml:"queue_size"`
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	Loader LoaderConfig `toml:"loader"`
	Assets AssetsConfig `toml:"assets"`
	Jobs   JobsConfig   `toml:"jobs"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Loader: LoaderConfig{
			MaxLineLength:     wavefront.DefaultMaxLineLength,
			MissingAttributes: wavefront.MissingDefault.String(),
		},
		Assets: AssetsConfig{
			Dir:             "assets/models",
			Watch:           false,
			ReloadQueueSize: 64,
		},
		Jobs: JobsConfig{
			Workers:   2,
			QueueSize: 16,
		},
	}
}

// Load reads a TOML file on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of Default and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("invalid config: %s", strict.String())
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Loader.MaxLineLength < 1 {
		errs = append(errs, fmt.Errorf("loader.max_line_length must be positive, got %d", c.Loader.MaxLineLength))
	}
	if _, err := c.MissingPolicy(); err != nil {
		errs = append(errs, err)
	}
	if c.Jobs.Workers < 1 {
		errs = append(errs, fmt.Errorf("jobs.workers must be at least 1, got %d", c.Jobs.Workers))
	}
	if c.Jobs.QueueSize < 0 {
		errs = append(errs, fmt.Errorf("jobs.queue_size must not be negative, got %d", c.Jobs.QueueSize))
	}
	if c.Assets.ReloadQueueSize < 1 {
		errs = append(errs, fmt.Errorf("assets.reload_queue_size must be at least 1, got %d", c.Assets.ReloadQueueSize))
	}
	return errors.Join(errs...)
}

// MissingPolicy maps loader.missing_attributes to a wavefront policy.
func (c *Config) MissingPolicy() (wavefront.MissingPolicy, error) {
	switch strings.ToLower(c.Loader.MissingAttributes) {
	case "", wavefront.MissingDefault.String():
		return wavefront.MissingDefault, nil
	case wavefront.MissingStrict.String():
		return wavefront.MissingStrict, nil
	default:
		return wavefront.MissingDefault, fmt.Errorf("loader.missing_attributes must be %q or %q, got %q",
			wavefront.MissingDefault, wavefront.MissingStrict, c.Loader.MissingAttributes)
	}
}

// LoaderOptions converts the loader section into pipeline options.
func (c *Config) LoaderOptions() []wavefront.Option {
	policy, _ := c.MissingPolicy()
	return []wavefront.Option{
		wavefront.WithMaxLineLength(c.Loader.MaxLineLength),
		wavefront.WithMissingPolicy(policy),
	}
}
