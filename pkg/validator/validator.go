package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// pastdate: a 2006-01-02 date string that must not be in the future.
	// Unparseable values pass here so the datetime tag reports them once.
	v.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok || value == "" {
			return true
		}
		date, err := time.Parse("2006-01-02", value)
		if err != nil {
			return true
		}
		return !date.After(time.Now())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors aggregates violations into a field -> messages map.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string][]string {
	violations := make(map[string][]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			var message string
			switch e.Tag() {
			case "required":
				message = field + " is required"
			case "min":
				message = field + " must be at least " + e.Param() + " characters"
			case "max":
				message = field + " must be at most " + e.Param() + " characters"
			case "len":
				message = field + " must be exactly " + e.Param() + " characters"
			case "numeric":
				message = field + " must contain only digits"
			case "datetime":
				message = field + " must be a valid date (" + e.Param() + ")"
			case "pastdate":
				message = field + " must not be in the future"
			default:
				message = field + " is invalid"
			}
			violations[field] = append(violations[field], message)
		}
	}

	return violations
}
