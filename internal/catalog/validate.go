package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/potioncraft/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report field names as they appear in catalog files
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
			return domain.Grade(fl.Field().String()).Valid()
		})

		validate = v
	})
	return validate
}

// validateRecipe applies the catalog rules to a single recipe
func validateRecipe(r domain.Recipe) error {
	return validateDef(defFromRecipe(r))
}

func validateDef(def RecipeDef) error {
	if err := getValidator().Struct(def); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRecipe, formatValidationError(err))
	}
	return nil
}

// formatValidationError flattens validator errors into "field: reason" pairs
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}

		var reason string
		switch e.Tag() {
		case "required":
			reason = "is required"
		case "min":
			reason = fmt.Sprintf("must be at least %s", e.Param())
		case "max":
			reason = fmt.Sprintf("must be at most %s", e.Param())
		case "grade":
			reason = fmt.Sprintf("unknown grade %q", e.Value())
		default:
			reason = "is invalid"
		}
		msgs = append(msgs, field+" "+reason)
	}
	return strings.Join(msgs, "; ")
}
