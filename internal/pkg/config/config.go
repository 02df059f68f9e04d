package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the CLI configuration. The geo library itself takes no
// configuration; everything here shapes how geoctl reads logs and renders
// reports.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Query   QueryConfig   `mapstructure:"query"`
	Compass CompassConfig `mapstructure:"compass"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	// Format is "json" or "text".
	Format string `mapstructure:"format"`
}

type QueryConfig struct {
	// NearestLimit is the default result count for nearest-neighbor queries.
	NearestLimit int `mapstructure:"nearest_limit"`
	// RadiusKm is the default radius for nearby queries.
	RadiusKm float64 `mapstructure:"radius_km"`
}

type CompassConfig struct {
	// Locale selects compass labels: "en" or "ja".
	Locale string `mapstructure:"locale"`
	// Points is the compass resolution, 8 or 16. Japanese labels are
	// 8-point only.
	Points int `mapstructure:"points"`
}

// Load reads configuration from an optional config file and environment
// variables: GEOKIT_QUERY_RADIUS_KM overrides query.radius_km, and so on.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "json")
	v.SetDefault("query.nearest_limit", 10)
	v.SetDefault("query.radius_km", 5.0)
	v.SetDefault("compass.locale", "en")
	v.SetDefault("compass.points", 16)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	v.SetEnvPrefix("GEOKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Compass.Points != 8 && cfg.Compass.Points != 16 {
		return nil, fmt.Errorf("compass.points must be 8 or 16, got %d", cfg.Compass.Points)
	}
	if cfg.Compass.Locale != "en" && cfg.Compass.Locale != "ja" {
		return nil, fmt.Errorf("compass.locale must be en or ja, got %q", cfg.Compass.Locale)
	}

	return &cfg, nil
}
