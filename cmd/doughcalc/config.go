package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/artpar/doughcalc/internal/core/dough"
	"github.com/spf13/viper"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Recipe RecipeConfig `mapstructure:"recipe"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RecipeConfig holds the default recipe snapshot. It seeds the
// /defaults endpoint, form derivations and recipe files that leave fields out.
type RecipeConfig struct {
	TotalDoughWeight int     `mapstructure:"total_dough_weight"`
	Flour            float64 `mapstructure:"flour"`
	Water            float64 `mapstructure:"water"`
	Salt             float64 `mapstructure:"salt"`
	Starter          float64 `mapstructure:"starter"`
	FlourName        string  `mapstructure:"flour_name"`

	// Starter build
	StarterHydration float64 `mapstructure:"starter_hydration"`
	RatioStarter     int     `mapstructure:"ratio_starter"`
	RatioFlour       int     `mapstructure:"ratio_flour"`
	RatioWater       int     `mapstructure:"ratio_water"`
}

// Inputs converts the configured defaults into an engine snapshot.
func (c RecipeConfig) Inputs() dough.Inputs {
	in := dough.DefaultInputs()
	in.TotalDoughWeight = c.TotalDoughWeight
	in.Percentages = dough.Percentages{
		Flour:   c.Flour,
		Water:   c.Water,
		Salt:    c.Salt,
		Starter: c.Starter,
	}
	if c.FlourName != "" {
		in.Blend[0].Name = c.FlourName
	}
	in.Starter = dough.StarterConfig{
		Hydration: c.StarterHydration,
		Ratio: dough.BuildRatio{
			Starter: c.RatioStarter,
			Flour:   c.RatioFlour,
			Water:   c.RatioWater,
		},
	}
	return in
}

// =============================================================================
// Config Loading
// =============================================================================

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	defaults := dough.DefaultInputs()

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Recipe defaults
	v.SetDefault("recipe.total_dough_weight", defaults.TotalDoughWeight)
	v.SetDefault("recipe.flour", defaults.Percentages.Flour)
	v.SetDefault("recipe.water", defaults.Percentages.Water)
	v.SetDefault("recipe.salt", defaults.Percentages.Salt)
	v.SetDefault("recipe.starter", defaults.Percentages.Starter)
	v.SetDefault("recipe.flour_name", dough.DefaultFlourName)
	v.SetDefault("recipe.starter_hydration", defaults.Starter.Hydration)
	v.SetDefault("recipe.ratio_starter", defaults.Starter.Ratio.Starter)
	v.SetDefault("recipe.ratio_flour", defaults.Starter.Ratio.Flour)
	v.SetDefault("recipe.ratio_water", defaults.Starter.Ratio.Water)

	// Load from file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// Only return error if file was explicitly specified and is invalid
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			// File not found is OK, we'll use defaults
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("DOUGHCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Recipe.Inputs().Validate(); err != nil {
		return nil, fmt.Errorf("invalid recipe defaults: %w", err)
	}

	return &cfg, nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format.
// Logs go to stderr so one-shot recipe output on stdout stays clean.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
