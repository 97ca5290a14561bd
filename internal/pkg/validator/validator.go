// Package validator wraps go-playground/validator so configuration structs
// can be checked through `validate` tags and reported with one readable
// message per offending field.
//
// Besides the stock tags it registers "gitref", which accepts the branch and
// tag names a raw source host can resolve.
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

var (
	validator     *gvalidator.Validate
	validatorOnce sync.Once
)

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Branch': value 'a b' does not meet the requirements for the 'gitref' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// gitRefPattern is the allowed character set of a branch or tag name.
var gitRefPattern = regexp.MustCompile(`^[A-Za-z0-9._/\-]+$`)

// isGitRef rejects names git itself refuses, such as ones containing "..".
func isGitRef(fl gvalidator.FieldLevel) bool {
	ref := fl.Field().String()
	if !gitRefPattern.MatchString(ref) {
		return false
	}

	return !strings.Contains(ref, "..") &&
		!strings.HasPrefix(ref, "/") &&
		!strings.HasSuffix(ref, "/") &&
		!strings.HasSuffix(ref, ".lock")
}

func instance() *gvalidator.Validate {
	validatorOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
		if err := validator.RegisterValidation("gitref", isGitRef); err != nil {
			panic(err)
		}
	})
	return validator
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass. Otherwise the returned error matches
// ErrValidationFailed through errors.Is and lists every failing field.
func Validate(v any) error {
	if err := instance().Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
