package component

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/jsxify/internal/validation"
	jsxerrors "github.com/alexisbeaulieu97/jsxify/pkg/errors"
)

// DefinitionSpec is the authoring shape of a component definition. Loaders
// fill one in and NewDefinition validates it into an immutable Definition.
type DefinitionSpec struct {
	ID                 string            `validate:"required,component_id"`
	Name               string            `validate:"omitempty,component_id"`
	Tag                string            `validate:"required,tag_name"`
	SignatureClasses   []string          `validate:"dive,class_token"`
	DataAttributes     map[string]string `validate:"dive,keys,attr_name,endkeys"`
	Axes               []AxisSpec        `validate:"dive"`
	DefaultVariants    map[string]string `validate:"dive,keys,required,endkeys,required"`
	StyleClasses       []string          `validate:"dive,class_token"`
	AttributeBlacklist []string          `validate:"dive,attr_name"`
	SelfClosing        bool
	IgnoreChildren     bool
	SkipThisElement    bool
}

// AxisSpec is one variant dimension, such as "variant" or "size".
type AxisSpec struct {
	Name     string        `validate:"required,attr_name"`
	Variants []VariantSpec `validate:"required,min=1,dive"`
}

// VariantSpec names one option of an axis and the classes that identify it.
type VariantSpec struct {
	Name    string   `validate:"required"`
	Classes []string `validate:"required,min=1,dive,class_token"`
}

// Variant is a validated variant option.
type Variant struct {
	Name    string
	Classes ClassSet
}

// Axis is a validated variant dimension with its options in authoring order.
type Axis struct {
	Name     string
	Variants []Variant
}

// Definition is the immutable description of one recognisable component.
type Definition struct {
	id              string
	name            string
	tag             string
	signature       ClassSet
	dataAttributes  map[string]string
	axes            []Axis
	defaultVariants map[string]string
	style           ClassSet
	blacklist       map[string]struct{}
	managed         ClassSet

	selfClosing     bool
	ignoreChildren  bool
	skipThisElement bool
}

// NewDefinition validates spec and returns the immutable Definition.
func NewDefinition(spec DefinitionSpec) (*Definition, error) {
	def, _, err := buildDefinition(spec, spec.ID)
	return def, err
}

// buildDefinition returns the definition plus the overlap notices produced
// while applying signature precedence. field prefixes every error.
func buildDefinition(spec DefinitionSpec, field string) (*Definition, []string, error) {
	if err := validation.Instance().Struct(spec); err != nil {
		return nil, nil, convertValidationError(field, err)
	}

	var errs error
	var notices []string
	signature := NewClassSet(spec.SignatureClasses...)

	axes := make([]Axis, 0, len(spec.Axes))
	axisIndex := make(map[string]int, len(spec.Axes))
	for i, axisSpec := range spec.Axes {
		axisField := fmt.Sprintf("%s.variants.%s", field, axisSpec.Name)
		if _, dup := axisIndex[axisSpec.Name]; dup {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(axisField, "duplicate axis", nil))
			continue
		}
		axisIndex[axisSpec.Name] = i

		axis := Axis{Name: axisSpec.Name}
		seen := make(map[string]struct{}, len(axisSpec.Variants))
		for _, variantSpec := range axisSpec.Variants {
			variantField := axisField + "." + variantSpec.Name
			if _, dup := seen[variantSpec.Name]; dup {
				errs = multierr.Append(errs, jsxerrors.NewValidationError(variantField, "duplicate variant", nil))
				continue
			}
			seen[variantSpec.Name] = struct{}{}

			declared := NewClassSet(variantSpec.Classes...)
			classes := declared.Without(signature)
			if classes.Len() != declared.Len() {
				overlap := declared.Without(classes)
				notices = append(notices, fmt.Sprintf("%s: signature classes take precedence over %s", variantField, overlap))
			}
			if classes.Len() == 0 {
				errs = multierr.Append(errs, jsxerrors.NewValidationError(variantField,
					"every class is also a signature class, variant would match any element", nil))
				continue
			}
			axis.Variants = append(axis.Variants, Variant{Name: variantSpec.Name, Classes: classes})
		}
		axes = append(axes, axis)
	}

	defaults := make(map[string]string, len(spec.DefaultVariants))
	for _, axisName := range sortedKeys(spec.DefaultVariants) {
		variantName := spec.DefaultVariants[axisName]
		defaultField := fmt.Sprintf("%s.default_variants.%s", field, axisName)
		idx, ok := axisIndex[axisName]
		if !ok {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(defaultField, fmt.Sprintf("unknown axis %q", axisName), nil))
			continue
		}
		if !axisHasVariant(spec.Axes[idx], variantName) {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(defaultField, fmt.Sprintf("unknown variant %q", variantName), nil))
			continue
		}
		defaults[axisName] = variantName
	}

	if errs != nil {
		return nil, notices, errs
	}

	name := spec.Name
	if name == "" {
		name = spec.ID
	}

	def := &Definition{
		id:              spec.ID,
		name:            name,
		tag:             strings.ToLower(spec.Tag),
		signature:       signature,
		dataAttributes:  copyStringMap(spec.DataAttributes),
		axes:            axes,
		defaultVariants: defaults,
		style:           NewClassSet(spec.StyleClasses...),
		blacklist:       make(map[string]struct{}, len(spec.AttributeBlacklist)),
		selfClosing:     spec.SelfClosing,
		ignoreChildren:  spec.IgnoreChildren,
		skipThisElement: spec.SkipThisElement,
	}
	for _, attr := range spec.AttributeBlacklist {
		def.blacklist[attr] = struct{}{}
	}

	variantSets := make([]ClassSet, 0)
	for _, axis := range axes {
		for _, variant := range axis.Variants {
			variantSets = append(variantSets, variant.Classes)
		}
	}
	def.managed = signature.Union(append([]ClassSet{def.style}, variantSets...)...)

	return def, notices, nil
}

// ID returns the unique registry key.
func (d *Definition) ID() string { return d.id }

// Name returns the output tag name.
func (d *Definition) Name() string { return d.name }

// Tag returns the source tag this definition matches.
func (d *Definition) Tag() string { return d.tag }

// SignatureClasses returns the classes required for a match.
func (d *Definition) SignatureClasses() ClassSet { return d.signature }

// StyleClasses returns the managed but optional classes.
func (d *Definition) StyleClasses() ClassSet { return d.style }

// ManagedClasses returns every class the component owns: signature, style
// and the classes of every variant of every axis.
func (d *Definition) ManagedClasses() ClassSet { return d.managed }

// DataAttributes returns a copy of the required attribute values.
func (d *Definition) DataAttributes() map[string]string {
	return copyStringMap(d.dataAttributes)
}

// Axes returns a copy of the variant axes in authoring order.
func (d *Definition) Axes() []Axis {
	out := make([]Axis, len(d.axes))
	for i, axis := range d.axes {
		out[i] = Axis{Name: axis.Name, Variants: append([]Variant(nil), axis.Variants...)}
	}
	return out
}

// DefaultVariant returns the default variant configured for axis.
func (d *Definition) DefaultVariant(axis string) (string, bool) {
	v, ok := d.defaultVariants[axis]
	return v, ok
}

// Blacklisted reports whether attr is suppressed from output.
func (d *Definition) Blacklisted(attr string) bool {
	_, ok := d.blacklist[attr]
	return ok
}

// Blacklist returns the suppressed attribute names, sorted.
func (d *Definition) Blacklist() []string {
	out := make([]string, 0, len(d.blacklist))
	for attr := range d.blacklist {
		out = append(out, attr)
	}
	sort.Strings(out)
	return out
}

// Unfingerprinted reports whether the definition has neither signature
// classes nor data attributes and so matches every element with its tag.
func (d *Definition) Unfingerprinted() bool {
	return d.signature.Len() == 0 && len(d.dataAttributes) == 0
}

// SelfClosing reports whether the component never renders children.
func (d *Definition) SelfClosing() bool { return d.selfClosing }

// IgnoreChildren reports whether source children are discarded.
func (d *Definition) IgnoreChildren() bool { return d.ignoreChildren }

// SkipThisElement reports whether the element is elided and its children
// spliced into the parent.
func (d *Definition) SkipThisElement() bool { return d.skipThisElement }

func axisHasVariant(axis AxisSpec, name string) bool {
	for _, v := range axis.Variants {
		if v.Name == name {
			return true
		}
	}
	return false
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
