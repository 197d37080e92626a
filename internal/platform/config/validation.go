package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their configuration key, e.g. server.read_timeout.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("koanf"); name != "" {
			return name
		}

		return strings.ToLower(f.Name)
	})

	v.RegisterStructValidation(validateStore, StoreConfig{})
	v.RegisterStructValidation(validateEnvironment, Config{})

	return v
}

// validateStore requires the connection setting of the selected driver.
func validateStore(sl validator.StructLevel) {
	store, ok := sl.Current().Interface().(StoreConfig)
	if !ok {
		return
	}

	switch {
	case store.Driver == DriverSQLite && store.SQLite.Path == "":
		sl.ReportError(store.SQLite.Path, "sqlite.path", "Path", "required_if", "driver sqlite")
	case store.Driver == DriverPostgres && store.Postgres.DSN == "":
		sl.ReportError(store.Postgres.DSN, "postgres.dsn", "DSN", "required_if", "driver postgres")
	}
}

// validateEnvironment rejects the pretty log format in prod. Pretty output
// bypasses redaction.
func validateEnvironment(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}

	if cfg.App.Environment == "prod" && cfg.Log.Format == "pretty" {
		sl.ReportError(cfg.Log.Format, "log.format", "Format", "oneof", "json text")
	}
}

// Validate checks every setting and reports all violations at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, describe(fe))
	}

	return fmt.Errorf("invalid configuration:\n  %s", strings.Join(lines, "\n  "))
}

func describe(fe validator.FieldError) string {
	key := configKey(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", key, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, fe.Param())
	case "url":
		return key + " must be a valid URL"
	default:
		return fmt.Sprintf("%s fails %q", key, fe.Tag())
	}
}

// configKey strips the root type from a validator namespace, turning
// "Config.server.port" into "server.port".
func configKey(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}
