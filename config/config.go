// Package config holds the tunables of the light board. Values come from
// built-in defaults, an optional YAML file and finally the environment.
package config

import (
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/battlesnakeio/placman/board"
	"github.com/battlesnakeio/placman/rules"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	yaml "gopkg.in/yaml.v3"
)

// Config is the full configuration.
type Config struct {
	// TickInterval paces the snake game and the rainbow wheel.
	TickInterval time.Duration `yaml:"tick_interval"`
	// FlashInterval paces the loss flash, which blinks faster.
	FlashInterval time.Duration `yaml:"flash_interval"`
	StartSegment  int           `yaml:"start_segment"`
	// Seed for the cherry placement. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`

	Rainbow RainbowConfig `yaml:"rainbow"`
	Strip   StripConfig   `yaml:"strip"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// RainbowConfig is the initial position of the rainbow dials.
type RainbowConfig struct {
	Period  time.Duration `yaml:"period"`
	CenterX float64       `yaml:"center_x"`
	CenterY float64       `yaml:"center_y"`
}

// StripConfig describes the attached LED strip.
type StripConfig struct {
	Pixels int `yaml:"pixels"`
	// Map is a comma separated pixel map, empty for the identity map.
	Map string `yaml:"map"`
}

// MetricsConfig controls the prometheus exporter.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// Default returns the built-in configuration.
func Default() *Config {
	d := rules.DefaultDial()
	return &Config{
		TickInterval:  500 * time.Millisecond,
		FlashInterval: 150 * time.Millisecond,
		StartSegment:  int(board.StartSegment),
		Rainbow: RainbowConfig{
			Period:  d.Period,
			CenterX: d.CenterX,
			CenterY: d.CenterY,
		},
		Strip: StripConfig{
			Pixels: 50,
		},
		Metrics: MetricsConfig{
			Listen: ":9000",
		},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "config: reading file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "config: parsing file")
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return errors.Errorf("config: tick_interval must be positive, got %v", c.TickInterval)
	}
	if c.FlashInterval <= 0 {
		return errors.Errorf("config: flash_interval must be positive, got %v", c.FlashInterval)
	}
	if c.StartSegment < 0 || c.StartSegment >= board.SegmentCount {
		return errors.Errorf("config: start_segment %d is not on the board", c.StartSegment)
	}
	if c.Rainbow.Period <= 0 {
		return errors.Errorf("config: rainbow period must be positive, got %v", c.Rainbow.Period)
	}
	if c.Strip.Pixels < 0 {
		return errors.Errorf("config: strip pixels must not be negative, got %d", c.Strip.Pixels)
	}
	return nil
}

// Dial returns the configured rainbow dial.
func (c *Config) Dial() rules.Dial {
	return rules.Dial{Period: c.Rainbow.Period, CenterX: c.Rainbow.CenterX, CenterY: c.Rainbow.CenterY}
}

// TickLimit is the pacing for a board in the given status.
func (c *Config) TickLimit(status rules.Status) rate.Limit {
	if status == rules.StatusFlashing {
		return rate.Every(c.FlashInterval)
	}
	return rate.Every(c.TickInterval)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	return data, errors.Wrap(err, "config: marshaling")
}

func (c *Config) applyEnv() {
	c.TickInterval = getEnvDuration("PLACMAN_TICK_MS", c.TickInterval)
	c.FlashInterval = getEnvDuration("PLACMAN_FLASH_MS", c.FlashInterval)
	c.StartSegment = getEnvInt("PLACMAN_START_SEGMENT", c.StartSegment)
	c.Strip.Pixels = getEnvInt("PLACMAN_PIXELS", c.Strip.Pixels)
	if v := os.Getenv("PLACMAN_PIXEL_MAP"); v != "" {
		c.Strip.Map = v
	}
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvDuration(varName string, defaults time.Duration) time.Duration {
	ms := getEnvInt(varName, -1)
	if ms < 0 {
		return defaults
	}
	return time.Duration(ms) * time.Millisecond
}
