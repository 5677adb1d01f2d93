// Package config holds the immutable game configuration and its loader.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Layout names a movement key layout.
type Layout string

const (
	// LayoutZQSD moves with z/q/s/d and quits with a.
	LayoutZQSD Layout = "zqsd"
	// LayoutWASD moves with w/a/s/d and quits with q.
	LayoutWASD Layout = "wasd"
)

// Config is built once at startup and passed by value afterwards.
type Config struct {
	GridSize      int    `yaml:"grid_size" validate:"min=5,max=200"`
	TickRate      int    `yaml:"tick_rate" validate:"min=1,max=60"`
	Seed          uint64 `yaml:"seed"`
	QueueCapacity int    `yaml:"queue_capacity" validate:"min=1,max=1024"`
	Layout        Layout `yaml:"layout" validate:"oneof=zqsd wasd"`
	Color         bool   `yaml:"color"`
	LogFile       string `yaml:"log_file"`
	LogLevel      string `yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsAddr   string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

// DefaultConfig returns the classic setup: a 30x30 grid stepped every 200ms.
func DefaultConfig() Config {
	return Config{
		GridSize:      30,
		TickRate:      5,
		QueueCapacity: 16,
		Layout:        LayoutZQSD,
		Color:         true,
		LogLevel:      "info",
	}
}

// TickPeriod is the target wall-clock duration of one tick.
func (c Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

var validate = validator.New()

// Validate checks every field against its bounds.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalidConfig, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
