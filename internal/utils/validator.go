// internal/utils/validator.go
package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName reports violations under the wire name of the field, so the
// caller sees "stockQty" rather than "StockQty".
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// GetViolations flattens validator output into one ordered list of
// human-readable violations, in struct field order.
func GetViolations(err error) []string {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		violations = append(violations, violationMessage(e))
	}
	return violations
}

func violationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must contain at least " + e.Param() + " item(s)"
	case "email":
		return e.Field() + " must be a valid email address"
	default:
		return e.Field() + " is invalid"
	}
}
