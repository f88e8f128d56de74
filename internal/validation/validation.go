// Package validation wraps validator/v10 with the rules and messages shared
// by the service layer.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their json names and knows
// the notblank and cents rules.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("cents", cents)
	return v
}

// Problems validates s and returns one message per failed rule. A non-nil
// error means s could not be validated at all.
func Problems(v *validator.Validate, s any) ([]string, error) {
	err := v.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, Describe(fe))
	}
	return problems, nil
}

// Describe renders a field error as "<field> <reason>".
func Describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color", fe.Field())
	case "cents":
		return fmt.Sprintf("%s must have at most 2 decimal places", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// cents accepts floats whose shortest decimal form has at most two
// fractional digits, matching a NUMERIC(12,2) column.
func cents(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
	default:
		return false
	}
	s := strconv.FormatFloat(fl.Field().Float(), 'f', -1, 64)
	_, frac, _ := strings.Cut(s, ".")
	return len(frac) <= 2
}
