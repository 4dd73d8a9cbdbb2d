package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"trip-route-cli/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the commands need. Values come from the process
// environment, optionally seeded from a .env file.
type Config struct {
	ORSKey            string        `validate:"required"`
	ORSBaseURL        string        `validate:"required,url"`
	Profile           string        `validate:"required"`
	Language          string        `validate:"omitempty,min=2"`
	FuelRate          float64       `validate:"gt=0"`
	GeocodeTimeout    time.Duration `validate:"gt=0"`
	DirectionsTimeout time.Duration `validate:"gt=0"`
	ISSURL            string        `validate:"required,url"`
	LogLevel          string        `validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// LoadDotEnv loads .env into the environment. A missing file is not an error;
// the returned bool reports whether a file was loaded.
func LoadDotEnv(paths ...string) bool {
	return godotenv.Load(paths...) == nil
}

// Load reads configuration from the environment. It does not require the ORS
// key; call RequireORS before using the routing commands.
func Load() (Config, error) {
	cfg := Config{
		ORSKey:     strings.TrimSpace(Get("ORS_KEY", os.Getenv("ORS_API_KEY"))),
		ORSBaseURL: strings.TrimRight(Get("ORS_BASE_URL", "https://api.openrouteservice.org"), "/"),
		Profile:    Get("ORS_PROFILE", "driving-car"),
		Language:   Get("ORS_LANGUAGE", "en"),
		ISSURL:     Get("ISS_URL", "http://api.open-notify.org/iss-now.json"),
		LogLevel:   strings.ToLower(Get("LOG_LEVEL", "warn")),
	}

	var err error
	if cfg.FuelRate, err = getFloat("FUEL_RATE_L_PER_KM", domain.DefaultFuelRate); err != nil {
		return Config{}, err
	}
	if cfg.GeocodeTimeout, err = getDuration("GEOCODE_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.DirectionsTimeout, err = getDuration("DIRECTIONS_TIMEOUT", 20*time.Second); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// RequireORS validates the fields used by the route commands.
func (c Config) RequireORS() error {
	return c.validateFields("ORSKey", "ORSBaseURL", "Profile", "Language", "FuelRate",
		"GeocodeTimeout", "DirectionsTimeout", "LogLevel")
}

// RequireISS validates the fields used by the iss command.
func (c Config) RequireISS() error {
	return c.validateFields("ISSURL", "LogLevel")
}

func (c Config) validateFields(fields ...string) error {
	err := validate.StructPartial(c, fields...)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate config: %w", err)
	}

	fe := verrs[0]
	return &domain.ConfigError{Key: envName(fe.StructField()), Reason: reason(fe)}
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &domain.ConfigError{Key: key, Reason: fmt.Sprintf("not a number: %q", v)}
	}
	return f, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, &domain.ConfigError{Key: key, Reason: fmt.Sprintf("not a duration: %q", v)}
	}
	return d, nil
}

var envNames = map[string]string{
	"ORSKey":            "ORS_KEY",
	"ORSBaseURL":        "ORS_BASE_URL",
	"Profile":           "ORS_PROFILE",
	"Language":          "ORS_LANGUAGE",
	"FuelRate":          "FUEL_RATE_L_PER_KM",
	"GeocodeTimeout":    "GEOCODE_TIMEOUT",
	"DirectionsTimeout": "DIRECTIONS_TIMEOUT",
	"ISSURL":            "ISS_URL",
	"LogLevel":          "LOG_LEVEL",
}

func envName(field string) string {
	if n, ok := envNames[field]; ok {
		return n
	}
	return field
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return fmt.Sprintf("must be a URL, got %q", fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
