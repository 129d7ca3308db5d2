package registry

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/jsxify/internal/validation"
	jsxerrors "github.com/alexisbeaulieu97/jsxify/pkg/errors"
)

// ValidateDocument checks the document header and the authoring shape of every
// component. Definition level rules, such as unknown default variants, are
// checked later when the registry is built. Every problem is reported.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return jsxerrors.NewValidationError("document", "registry document is nil", nil)
	}

	errs := convertValidationError("", validation.Instance().Struct(doc))
	for i := range doc.Components {
		errs = multierr.Append(errs, validateComponent(i, &doc.Components[i]))
	}
	return errs
}

func validateComponent(index int, c *Component) error {
	field := fieldForComponent(index, c.ID)

	var errs error
	if err := validation.Instance().Struct(c); err != nil {
		errs = multierr.Append(errs, convertValidationError(field, err))
	}

	for _, named := range c.classLists() {
		if named.list.Invalid != "" {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(field+"."+named.path,
				fmt.Sprintf("line %d: classes must be a string or a list of strings, got %s", named.list.Line, named.list.Invalid), nil))
		}
	}

	switch c.format() {
	case FormatCanonical:
		if c.CVA != nil {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(field+".cva", "only allowed with format cva", nil))
		}
		if len(c.BaseClasses.Tokens) > 0 {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(field+".base_classes", "only allowed with format base", nil))
		}
	case FormatCVA:
		if c.CVA == nil {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(field+".cva", "required with format cva", nil))
		}
		if c.hasCanonicalClasses() {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(field, "format cva takes its classes from the cva block", nil))
		}
	case FormatBase:
		if c.CVA != nil {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(field+".cva", "only allowed with format cva", nil))
		}
		if c.hasCanonicalClasses() {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(field, "format base takes its classes from base_classes", nil))
		}
	}

	return errs
}

type namedClassList struct {
	path string
	list ClassList
}

// classLists returns every class field of the component in document order,
// keyed by its path relative to the component.
func (c *Component) classLists() []namedClassList {
	lists := []namedClassList{
		{"signature_classes", c.SignatureClasses},
		{"style_classes", c.StyleClasses},
		{"base_classes", c.BaseClasses},
	}
	lists = appendAxisLists(lists, "variants", c.Variants)
	if c.CVA != nil {
		lists = append(lists, namedClassList{"cva.base_classes", c.CVA.BaseClasses})
		lists = appendAxisLists(lists, "cva.variants", c.CVA.Variants)
	}
	return lists
}

func appendAxisLists(lists []namedClassList, prefix string, axes Axes) []namedClassList {
	for _, axis := range axes {
		for _, variant := range axis.Variants {
			lists = append(lists, namedClassList{fmt.Sprintf("%s.%s.%s", prefix, axis.Name, variant.Name), variant.Classes})
		}
	}
	return lists
}

func (c *Component) hasCanonicalClasses() bool {
	return len(c.SignatureClasses.Tokens) > 0 || len(c.StyleClasses.Tokens) > 0 ||
		len(c.Variants) > 0 || len(c.DefaultVariants) > 0
}

func (c *Component) format() string {
	if c.Format == "" {
		return FormatCanonical
	}
	return c.Format
}

func convertValidationError(prefix string, err error) error {
	return validation.Errors(prefix, prefixOr(prefix, "document"), err, yamlishFieldName)
}

// yamlishFieldName drops the root struct name from the namespace, which the
// tag name func has already rendered with YAML keys.
func yamlishFieldName(fe validator.FieldError) string {
	return validation.TrimRoot(fe.Namespace())
}

func fieldForComponent(index int, id string) string {
	return fmt.Sprintf("components[%d](%s)", index, id)
}

func prefixOr(prefix, fallback string) string {
	if prefix == "" {
		return fallback
	}
	return prefix
}
