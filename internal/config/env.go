package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

var validate = newValidator()

// newValidator reports fields by their environment variable name
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("envconfig")
	})
	return v
}

// Env holds settings read from environment variables
type Env struct {
	GitHubToken   string        `envconfig:"GITHUB_TOKEN"`
	Debug         bool          `envconfig:"GUP_DEBUG" default:"false"`
	LogFile       string        `envconfig:"GUP_LOG_FILE"`
	LogMaxSize    int           `envconfig:"GUP_LOG_MAX_SIZE" default:"1" validate:"gt=0"`
	LogMaxBackups int           `envconfig:"GUP_LOG_MAX_BACKUPS" default:"2" validate:"gte=0"`
	LogMaxAge     int           `envconfig:"GUP_LOG_MAX_AGE" default:"30" validate:"gt=0"`
	EditAttempts  int           `envconfig:"GUP_EDIT_ATTEMPTS" default:"1" validate:"gte=0"`
	PollInterval  time.Duration `envconfig:"GUP_POLL_INTERVAL" default:"10s" validate:"gt=0"`
	NoInteractive bool          `envconfig:"GUP_NO_INTERACTIVE" default:"false"`
}

// LoadEnv reads and validates the environment configuration
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := validate.Struct(&env); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	return &env, nil
}
