// Package validation turns validator/v10 struct tags into per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s and returns the violations keyed by json field name.
// The result is empty when s is valid.
func Struct(s any) domain.FieldErrors {
	res := domain.FieldErrors{}

	err := validate.Struct(s)
	if err == nil {
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.Add("non_field_errors", err.Error())
		return res
	}

	for _, fe := range verrs {
		res.Add(fe.Field(), message(fe))
	}
	return res
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gtfield":
		return fmt.Sprintf("must be after %s", toSnake(fe.Param()))
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "min", "max":
		return lengthMessage(fe)
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func lengthMessage(fe validator.FieldError) string {
	bound := "no more than"
	if fe.Tag() == "min" {
		bound = "at least"
	}

	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("ensure this field has %s %s characters", bound, fe.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("ensure this field has %s %s elements", bound, fe.Param())
	default:
		if fe.Tag() == "min" {
			return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
		}
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	}
}

// toSnake converts a Go field name such as CheckInDate to check_in_date.
func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
