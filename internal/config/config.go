package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of the arbor CLI.
type Config struct {
	// Period between two ticks of the tree.
	Period time.Duration `mapstructure:"period"`
	// Ticks stops the run after this many scheduled ticks. 0 runs until interrupted.
	Ticks int `mapstructure:"ticks"`
	// Seed makes the demo deterministic. 0 picks a random seed.
	Seed        uint64      `mapstructure:"seed"`
	LogLevel    string      `mapstructure:"log_level"`
	MetricsAddr string      `mapstructure:"metrics_addr"`
	NoColor     bool        `mapstructure:"no_color"`
	Guard       GuardConfig `mapstructure:"guard"`
	Redis       RedisConfig `mapstructure:"redis"`
}

// GuardConfig seeds the demo actor.
type GuardConfig struct {
	Name    string `mapstructure:"name"`
	HP      int    `mapstructure:"hp"`
	Enemies int    `mapstructure:"enemies"`
	// Patrol is how long the long-running patrol action holds the tree.
	Patrol time.Duration `mapstructure:"patrol"`
}

// RedisConfig enables the single-driver lock when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockKey  string        `mapstructure:"lock_key"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Period:   time.Second,
		LogLevel: "info",
		Guard: GuardConfig{
			Name:   "guard",
			HP:     10,
			Patrol: 2 * time.Second,
		},
		Redis: RedisConfig{
			LockKey: "guard",
		},
	}
}

// Load reads a YAML file over the defaults.
// Unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode maps a generic document onto cfg. Durations may be given as strings ("500ms").
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks the invariants the CLI relies on.
func (c Config) Validate() error {
	var errs []error
	if c.Period <= 0 {
		errs = append(errs, fmt.Errorf("period must be positive, got %s", c.Period))
	}
	if c.Ticks < 0 {
		errs = append(errs, fmt.Errorf("ticks must not be negative, got %d", c.Ticks))
	}
	if c.Guard.HP < 0 || c.Guard.Enemies < 0 {
		errs = append(errs, errors.New("guard hp and enemies must not be negative"))
	}
	if c.Redis.Addr != "" && c.Redis.LockKey == "" {
		errs = append(errs, errors.New("redis.lock_key is required when redis.addr is set"))
	}
	return errors.Join(errs...)
}
