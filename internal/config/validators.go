package config

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// register adds the custom validations with their messages
// and reports fields by their flag label.
func register(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive with {1}",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	if err := validator.RegisterValidationAndTranslation(
		"iv",
		validateIV,
		`{0} must be "random", "zero" or 32 hex characters`,
	); err != nil {
		return fmt.Errorf("registering iv validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks that the field and the field named by the parameter
// are not both set.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	otherField := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return field.String() == "" || otherField.String() == ""
	}

	return true
}

// validateIV accepts "random", "zero" and 16 hex-encoded bytes.
func validateIV(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	switch strings.ToLower(value) {
	case "", "random", "zero":
		return true
	}

	const ivSize = 16

	decoded, err := hex.DecodeString(value)

	return err == nil && len(decoded) == ivSize
}
