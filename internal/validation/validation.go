// Package validation holds the shared validator instance and its custom tags,
// used by component definitions and registry documents alike.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	jsxerrors "github.com/alexisbeaulieu97/jsxify/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	componentIDPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.:-]*$`)
	tagNamePattern     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)
	attrNamePattern    = regexp.MustCompile(`^[^\s"'>/=]+$`)
)

// Instance configures and returns the shared validator. Fields carrying a
// yaml tag are named by their YAML key in FieldError.Namespace; the struct
// namespace always keeps Go field names.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_id", func(fl validator.FieldLevel) bool {
			return componentIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("tag_name", func(fl validator.FieldLevel) bool {
			return tagNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("attr_name", func(fl validator.FieldLevel) bool {
			return attrNamePattern.MatchString(fl.Field().String())
		})

		// A class token is one whitespace-free word; lists of tokens are split
		// before they reach the validator.
		_ = v.RegisterValidation("class_token", func(fl validator.FieldLevel) bool {
			token := fl.Field().String()
			return token != "" && strings.IndexFunc(token, unicode.IsSpace) < 0
		})

		validateInst = v
	})

	return validateInst
}

// Errors turns validator output into ValidationErrors combined with multierr.
// Each Field is prefix joined with name(fe). An error that is not validator
// output is reported once under fallback.
func Errors(prefix, fallback string, err error, name func(validator.FieldError) string) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return jsxerrors.NewValidationError(fallback, err.Error(), err)
	}

	var combined error
	for _, fe := range ves {
		msg := fmt.Sprintf("value %q failed validation for tag '%s'", fmt.Sprint(fe.Value()), fe.Tag())
		combined = multierr.Append(combined, jsxerrors.NewValidationError(JoinField(prefix, name(fe)), msg, fe))
	}
	return combined
}

// JoinField joins two dotted field paths, either of which may be empty.
func JoinField(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	default:
		return prefix + "." + field
	}
}

// TrimRoot drops the root struct name from a dotted namespace.
func TrimRoot(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
