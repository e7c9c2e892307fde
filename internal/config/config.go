package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Supported place-search backends.
const (
	BackendGoogle  = "google"
	BackendPostGIS = "postgis"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment   string `mapstructure:"ENVIRONMENT"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	DBSource      string `mapstructure:"DB_SOURCE"`

	PlacesBackend     string        `mapstructure:"PLACES_BACKEND"`
	GoogleMapsAPIKey  string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	GoogleMapsURL     string        `mapstructure:"GOOGLE_MAPS_URL"`
	ProviderTimeout   time.Duration `mapstructure:"PROVIDER_TIMEOUT"`
	ProviderRateLimit float64       `mapstructure:"PROVIDER_RATE_LIMIT"`

	MaxConcurrentQueries int      `mapstructure:"MAX_CONCURRENT_QUERIES"`
	DefaultRadius        int      `mapstructure:"DEFAULT_RADIUS"`
	MinRadius            int      `mapstructure:"MIN_RADIUS"`
	MaxRadius            int      `mapstructure:"MAX_RADIUS"`
	GeocodeCountry       string   `mapstructure:"GEOCODE_COUNTRY"`
	SensitiveTags        []string `mapstructure:"SENSITIVE_TAGS"`
	BettingTags          []string `mapstructure:"BETTING_TAGS"`

	SessionTTL time.Duration `mapstructure:"SESSION_TTL"`
}

var defaults = map[string]any{
	"ENVIRONMENT":            "development",
	"LOG_LEVEL":              "info",
	"SERVER_ADDRESS":         "0.0.0.0:8080",
	"DB_SOURCE":              "",
	"PLACES_BACKEND":         BackendGoogle,
	"GOOGLE_MAPS_API_KEY":    "",
	"GOOGLE_MAPS_URL":        "https://maps.googleapis.com/maps/api",
	"PROVIDER_TIMEOUT":       10 * time.Second,
	"PROVIDER_RATE_LIMIT":    10.0,
	"MAX_CONCURRENT_QUERIES": 4,
	"DEFAULT_RADIUS":         300,
	"MIN_RADIUS":             0,
	"MAX_RADIUS":             50000,
	"GEOCODE_COUNTRY":        "IT",
	"SENSITIVE_TAGS": strings.Join([]string{
		"school", "primary_school", "secondary_school", "university",
		"church", "place_of_worship",
		"hospital", "doctor", "health",
		"community_center", "nursing_home", "senior_care",
	}, ","),
	"BETTING_TAGS": "casino,gambling",
	"SESSION_TTL":  15 * time.Minute,
}

// LoadConfig reads configuration from app.env under path, overridden by
// environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: read file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: unmarshal: %w", err)
	}

	config.SensitiveTags = splitTags(config.SensitiveTags)
	config.BettingTags = splitTags(config.BettingTags)
	config.PlacesBackend = strings.ToLower(strings.TrimSpace(config.PlacesBackend))
	config.GeocodeCountry = strings.ToUpper(strings.TrimSpace(config.GeocodeCountry))
	return config, nil
}

// splitTags normalises a tag list that may arrive as a single comma-joined
// element and drops blanks.
func splitTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, tag := range strings.Split(s, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				out = append(out, tag)
			}
		}
	}
	return out
}

// Validate checks the values LoadConfig cannot default away.
func (c Config) Validate() error {
	var errs []error
	switch c.PlacesBackend {
	case BackendGoogle:
	case BackendPostGIS:
		if c.DBSource == "" {
			errs = append(errs, errors.New("DB_SOURCE is required for the postgis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown PLACES_BACKEND %q", c.PlacesBackend))
	}
	if c.MinRadius < 0 {
		errs = append(errs, fmt.Errorf("MIN_RADIUS must not be negative, got %d", c.MinRadius))
	}
	if c.MinRadius > c.MaxRadius {
		errs = append(errs, fmt.Errorf("MIN_RADIUS %d is greater than MAX_RADIUS %d", c.MinRadius, c.MaxRadius))
	}
	if c.DefaultRadius < c.MinRadius || c.DefaultRadius > c.MaxRadius {
		errs = append(errs, fmt.Errorf("DEFAULT_RADIUS %d is outside [%d, %d]", c.DefaultRadius, c.MinRadius, c.MaxRadius))
	}
	if len(c.SensitiveTags) == 0 {
		errs = append(errs, errors.New("SENSITIVE_TAGS must not be empty"))
	}
	if len(c.BettingTags) == 0 {
		errs = append(errs, errors.New("BETTING_TAGS must not be empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// SetupLogger configures the global zerolog logger.
func SetupLogger(c Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
