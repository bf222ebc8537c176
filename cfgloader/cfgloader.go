// Package cfgloader provides a simple way to load and validate configuration at the start of an application.
package cfgloader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rise-and-shine/mediadevice/val"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"

	CodeInvalidConfig = "INVALID_CONFIG"
)

// MustLoad loads and validates configuration from a YAML file based on the ENVIRONMENT variable.
// The files must be named ${ENVIRONMENT}.yaml and live in the config directory
// (./config unless WithDir is given). Any failure is logged and terminates the process.
//
// The configuration struct should use `yaml` struct tags to map fields to the YAML file structure.
// Default values can be set with the `default` struct tag; they are applied before validation
// for fields the file leaves unset. Validation uses go-playground/validator tags.
//
// Example:
//
//	type Config struct {
//	    Logger logger.Config         `yaml:"logger"`
//	    Pool   scheduler.PoolConfig  `yaml:"pool"`
//	    Retry  camera.RetryConfig    `yaml:"retry"`
//	}
func MustLoad[T any](opts ...Option) T {
	config, err := Load[T](opts...)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	return config
}

// Load is MustLoad without the process exit.
func Load[T any](opts ...Option) (T, error) {
	var config T

	o := Options{Dir: "./config"}
	for _, opt := range opts {
		opt(&o)
	}

	if reflect.ValueOf(config).Kind() == reflect.Ptr {
		return config, errx.New("[cfgloader]: type argument must not be a pointer", errx.WithCode(CodeInvalidConfig))
	}

	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		return config, errx.New(
			"[cfgloader]: ENVIRONMENT env variable is not set or invalid. Choices are: production, staging, dev, local, test",
			errx.WithCode(CodeInvalidConfig),
		)
	}

	path := filepath.Join(o.Dir, env+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return config, errx.Wrap(err, errx.WithCode(CodeInvalidConfig), errx.WithDetails(errx.D{"path": path}))
	}

	if err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config); err != nil {
		return config, errx.Wrap(err, errx.WithCode(CodeInvalidConfig), errx.WithDetails(errx.D{"env": env}))
	}

	if err = defaults.Set(&config); err != nil {
		return config, errx.Wrap(err, errx.WithCode(CodeInvalidConfig))
	}

	if err = validateConfig(&config, env); err != nil {
		return config, err
	}

	if !o.Silent {
		printConfig(config)
	}

	return config, nil
}

func validateConfig(config any, env string) error {
	err := val.Validator().Struct(config)
	if err == nil {
		return nil
	}

	failedFields := make([]string, 0)
	if errs, ok := err.(validator.ValidationErrors); ok { //nolint: errorlint // Using type assertion for validator errors handling
		for _, fieldErr := range errs {
			tagErr := fieldErr.Tag()
			if fieldErr.Param() != "" {
				tagErr += fmt.Sprintf("=%s", fieldErr.Param())
			}
			failedFields = append(failedFields, fmt.Sprintf("%s: %s", fieldErr.Namespace(), tagErr))
		}
	}

	return errx.New(
		fmt.Sprintf("[cfgloader]: invalid fields in %s config -> %s", env, strings.Join(failedFields, ",  ")),
		errx.WithCode(CodeInvalidConfig),
		errx.WithType(errx.T_Validation),
	)
}
