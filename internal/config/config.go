package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is everything the server needs at construction time.
type Config struct {
	Port      string          `mapstructure:"port"`
	DB        DBConfig        `mapstructure:"db"`
	Static    StaticConfig    `mapstructure:"static"`
	Log       LogConfig       `mapstructure:"log"`
	Stream    StreamConfig    `mapstructure:"stream"`
	Evaluator EvaluatorConfig `mapstructure:"evaluator"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StreamConfig tunes the per-connection notifier loop.
type StreamConfig struct {
	Tick          time.Duration `mapstructure:"tick"`
	KeepAlive     time.Duration `mapstructure:"keepalive"`
	DegradedAfter int           `mapstructure:"degraded_after"`
}

// EvaluatorConfig tunes schedule matching.
type EvaluatorConfig struct {
	Lookahead    time.Duration `mapstructure:"lookahead"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
	Timezone     string        `mapstructure:"timezone"`
}

// Defaults.
const (
	DefaultPort          = "5000"
	DefaultDBPath        = "buildocc.db"
	DefaultStaticDir     = "static"
	DefaultLogLevel      = "info"
	DefaultTick          = 1 * time.Second
	DefaultKeepAlive     = 900 * time.Second
	DefaultDegradedAfter = 3
	DefaultLookahead     = 10 * time.Minute
	DefaultQueryTimeout  = 2 * time.Second

	envPrefix = "HEATER"
)

// Default returns a Config with every default applied.
func Default() Config {
	return Config{
		Port:   DefaultPort,
		DB:     DBConfig{Path: DefaultDBPath},
		Static: StaticConfig{Dir: DefaultStaticDir},
		Log:    LogConfig{Level: DefaultLogLevel},
		Stream: StreamConfig{
			Tick:          DefaultTick,
			KeepAlive:     DefaultKeepAlive,
			DegradedAfter: DefaultDegradedAfter,
		},
		Evaluator: EvaluatorConfig{
			Lookahead:    DefaultLookahead,
			QueryTimeout: DefaultQueryTimeout,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("port", d.Port)
	v.SetDefault("db.path", d.DB.Path)
	v.SetDefault("static.dir", d.Static.Dir)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("stream.tick", d.Stream.Tick)
	v.SetDefault("stream.keepalive", d.Stream.KeepAlive)
	v.SetDefault("stream.degraded_after", d.Stream.DegradedAfter)
	v.SetDefault("evaluator.lookahead", d.Evaluator.Lookahead)
	v.SetDefault("evaluator.query_timeout", d.Evaluator.QueryTimeout)
	v.SetDefault("evaluator.timezone", d.Evaluator.Timezone)
}

// Load reads the config file at path (configs/config.yml when empty),
// then applies HEATER_* environment overrides, e.g. HEATER_STREAM_TICK=2s.
// A missing configs/config.yml is not an error; an explicit path must exist.
// The returned Config is usable even when err != nil.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs") // configs/config.yml
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			readErr = fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	if readErr != nil {
		return cfg, readErr
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if c.Stream.Tick <= 0 {
		return fmt.Errorf("stream.tick must be > 0, got %s", c.Stream.Tick)
	}
	if c.Stream.KeepAlive <= 0 {
		return fmt.Errorf("stream.keepalive must be > 0, got %s", c.Stream.KeepAlive)
	}
	if c.Evaluator.Lookahead < 0 {
		return fmt.Errorf("evaluator.lookahead must be >= 0, got %s", c.Evaluator.Lookahead)
	}
	if c.Evaluator.QueryTimeout <= 0 {
		return fmt.Errorf("evaluator.query_timeout must be > 0, got %s", c.Evaluator.QueryTimeout)
	}
	if _, err := c.Evaluator.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; empty means the process local zone.
func (e EvaluatorConfig) Location() (*time.Location, error) {
	if e.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return nil, fmt.Errorf("evaluator.timezone %q: %w", e.Timezone, err)
	}
	return loc, nil
}
