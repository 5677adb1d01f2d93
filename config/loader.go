package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader layers defaults, an optional YAML file and environment variables.
type Loader struct {
	envPrefix     string
	lookupEnv     func(string) (string, bool)
	defaultConfig Config
}

// NewLoader creates a loader reading SNAKE_* variables.
func NewLoader() *Loader {
	return &Loader{
		envPrefix:     "SNAKE",
		lookupEnv:     os.LookupEnv,
		defaultConfig: DefaultConfig(),
	}
}

// SetLookupEnv replaces the environment lookup, mostly for tests.
func (l *Loader) SetLookupEnv(lookup func(string) (string, bool)) *Loader {
	l.lookupEnv = lookup
	return l
}

// Load reads filename (when not empty) over the defaults, then applies
// environment overrides. The result is not validated; callers validate
// after applying command-line flags.
func (l *Loader) Load(filename string) (Config, error) {
	cfg := l.defaultConfig

	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return Config{}, fmt.Errorf("failed to load config from file %s: %w", filename, err)
		}
		defer f.Close()

		cfg, err = l.LoadFromReader(f)
		if err != nil {
			return Config{}, fmt.Errorf("failed to load config from file %s: %w", filename, err)
		}
	}

	if err := l.loadFromEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML over the loader defaults. Unknown keys are
// rejected.
func (l *Loader) LoadFromReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration data: %w", err)
	}

	cfg := l.defaultConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParseError, err)
	}
	return cfg, nil
}

func (l *Loader) loadFromEnv(cfg *Config) error {
	ints := map[string]*int{
		"GRID_SIZE":      &cfg.GridSize,
		"TICK_RATE":      &cfg.TickRate,
		"QUEUE_CAPACITY": &cfg.QueueCapacity,
	}
	for key, dst := range ints {
		if v, ok := l.env(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s_%s=%q", ErrEnvironmentVarError, l.envPrefix, key, v)
			}
			*dst = n
		}
	}

	if v, ok := l.env("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s_SEED=%q", ErrEnvironmentVarError, l.envPrefix, v)
		}
		cfg.Seed = n
	}
	if v, ok := l.env("COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s_COLOR=%q", ErrEnvironmentVarError, l.envPrefix, v)
		}
		cfg.Color = b
	}
	if v, ok := l.env("LAYOUT"); ok {
		cfg.Layout = Layout(strings.ToLower(v))
	}
	if v, ok := l.env("LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := l.env("LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := l.env("METRICS_ADDR"); ok {
		cfg.MetricsAddr = v
	}
	return nil
}

func (l *Loader) env(key string) (string, bool) {
	v, ok := l.lookupEnv(l.envPrefix + "_" + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
