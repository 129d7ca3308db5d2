package component

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/jsxify/internal/validation"
)

// convertValidationError turns validator output into ValidationErrors whose
// Field is rooted at prefix.
func convertValidationError(prefix string, err error) error {
	return validation.Errors(prefix, prefix, err, snakeNamespace)
}

// snakeNamespace renders "DefinitionSpec.Axes[0].Variants[1].Classes[2]" as
// "axes[0].variants[1].classes[2]".
func snakeNamespace(fe validator.FieldError) string {
	parts := strings.Split(validation.TrimRoot(fe.StructNamespace()), ".")
	for i, part := range parts {
		parts[i] = toSnake(part)
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	prev := rune(0)
	for _, r := range s {
		if unicode.IsUpper(r) {
			if unicode.IsLower(prev) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
