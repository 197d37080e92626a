package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation wraps field rule violations in a request body.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps bodies that are not JSON or have mistyped fields.
	ErrBinding = errors.New("binding failed")
)

// requestValidator reports fields by their JSON names so that details line
// up with what the caller sent.
var requestValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("notempty", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
})

// Validate checks v against its validate tags.
func Validate(v any) error {
	if err := requestValidator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes the JSON body into v, then validates it.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// IsValidationError reports whether err carries field rule violations.
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// ValidationErrors maps each offending field to a readable message.
func ValidationErrors(err error) map[string]string {
	details := make(map[string]string)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return details
	}

	for _, fe := range fieldErrs {
		details[fe.Field()] = ruleMessage(fe)
	}

	return details
}

func ruleMessage(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "notempty":
		return "must not be empty"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "oneof":
		return "must be one of: " + param
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + param + " characters"
		}

		return "must be at most " + param
	default:
		return "failed validation: " + fe.Tag()
	}
}

// BindingDetails returns field-level messages for a JSON type mismatch, or
// nil when err carries no field information.
func BindingDetails(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}

	return map[string]string{typeErr.Field: "must be a " + jsonKind(typeErr.Type.Kind())}
}

func jsonKind(kind reflect.Kind) string {
	switch kind {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return kind.String()
	}
}
