package mstio

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// validateDocument runs struct-tag validation and reports the first failure
// wrapped with ErrInvalidDocument.
func validateDocument(doc any) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	e := validationErrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s: field is required", ErrInvalidDocument, e.Namespace())
	case "min":
		return fmt.Errorf("%w: %s: must be at least %s", ErrInvalidDocument, e.Namespace(), e.Param())
	default:
		return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalidDocument, e.Namespace(), e.Tag())
	}
}
