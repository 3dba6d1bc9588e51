package app

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Output formats.
const (
	FormatParadox = "paradox"
	FormatHCL     = "hcl"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CorpusPaths       []string `validate:"required,min=1,dive,required"`
	WorldPath         string   `validate:"required"`
	RulesPath         string
	LocalisationPaths []string `validate:"dive,required"`
	OutputDir         string   `validate:"required"`
	OutputFormat      string   `validate:"oneof=paradox hcl"`
	// Countries restricts the run to these tags. Empty means every country.
	Countries []string `validate:"dive,country_tag"`

	LogFormat       string `validate:"oneof=text json"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	HealthcheckPort int    `validate:"min=0,max=65535"`
	WorkerCount     int    `validate:"min=1"`
	PublishURL      string `validate:"omitempty,url"`
}

var countryTag = regexp.MustCompile(`^[A-Z][A-Z0-9]{2}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("country_tag", func(fl validator.FieldLevel) bool {
		return countryTag.MatchString(fl.Field().String())
	})
	return v
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fieldMessage(fe))
			}
			return nil, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value())
	case "min", "max":
		return fmt.Sprintf("%s is out of range (%s %s)", fe.Namespace(), fe.Tag(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Namespace())
	case "country_tag":
		return fmt.Sprintf("%s: %q is not a country tag", fe.Namespace(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag())
	}
}

// Environment variables read by EnvDefaults.
const (
	EnvCorpus       = "FOCUSGRID_CORPUS"
	EnvWorld        = "FOCUSGRID_WORLD"
	EnvRules        = "FOCUSGRID_RULES"
	EnvLocalisation = "FOCUSGRID_LOCALISATION"
	EnvOut          = "FOCUSGRID_OUT"
	EnvFormat       = "FOCUSGRID_FORMAT"
	EnvCountries    = "FOCUSGRID_COUNTRIES"
	EnvLogFormat    = "FOCUSGRID_LOG_FORMAT"
	EnvLogLevel     = "FOCUSGRID_LOG_LEVEL"
	EnvWorkers      = "FOCUSGRID_WORKERS"
	EnvPublishURL   = "FOCUSGRID_PUBLISH_URL"
)

// EnvDefaults returns the configuration defaults, overridden by FOCUSGRID_*
// environment variables. Variables from the given .env files are loaded
// first; a missing file is not an error, and variables already set in the
// process environment are never overwritten. List values are comma
// separated.
func EnvDefaults(envFiles ...string) Config {
	existing := envFiles[:0:0]
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		_ = godotenv.Load(existing...)
	}

	return Config{
		CorpusPaths:       envList(EnvCorpus, nil),
		WorldPath:         os.Getenv(EnvWorld),
		RulesPath:         os.Getenv(EnvRules),
		LocalisationPaths: envList(EnvLocalisation, nil),
		OutputDir:         envString(EnvOut, "output"),
		OutputFormat:      envString(EnvFormat, FormatParadox),
		Countries:         envList(EnvCountries, nil),
		LogFormat:         envString(EnvLogFormat, "json"),
		LogLevel:          envString(EnvLogLevel, "info"),
		WorkerCount:       envInt(EnvWorkers, 4),
		PublishURL:        os.Getenv(EnvPublishURL),
	}
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
