// File: internal/config/arguments.go
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"scriptkit/internal/logger"
)

// ErrInvalidArguments is returned when the resolved arguments fail validation
var ErrInvalidArguments = errors.New("invalid arguments")

// Arguments is the resolved command line. It is built once by Resolve and
// passed by value afterwards. Presence of the input and output paths is
// enforced when flags are parsed; an explicitly empty path is accepted.
type Arguments struct {
	InputFile  string `mapstructure:"input_file"`
	OutputFile string `mapstructure:"output_file"`
	LogFile    string `mapstructure:"log_file"`
	Debug      string `mapstructure:"debug" validate:"loglevel"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their flag names rather than Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logger.ParseLevel(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("registering loglevel validation: %v", err))
	}

	return v
}

// Validate checks the severity name. An unknown severity yields the same
// error logger.Configure would.
func (a Arguments) Validate() error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}

	invalid := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "loglevel" {
			_, levelErr := logger.ParseLevel(a.Debug)
			return levelErr
		}
		invalid = append(invalid, fe.Field())
	}
	return fmt.Errorf("%w: %s", ErrInvalidArguments, strings.Join(invalid, ", "))
}
