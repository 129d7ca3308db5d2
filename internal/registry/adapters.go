package registry

import (
	"github.com/alexisbeaulieu97/jsxify/internal/component"
)

// cvaDefaultAxis is the axis a cva block's default_variant applies to.
const cvaDefaultAxis = "variant"

// toSpec adapts one authored component to the definition spec of its format.
// The document must already have passed ValidateDocument.
func toSpec(c Component) component.DefinitionSpec {
	spec := component.DefinitionSpec{
		ID:                 c.ID,
		Name:               c.Name,
		Tag:                c.Tag,
		DataAttributes:     c.DataAttributes,
		AttributeBlacklist: c.Blacklist,
		SelfClosing:        c.SelfClosing,
		IgnoreChildren:     c.IgnoreChildren,
		SkipThisElement:    c.Skip,
	}

	switch c.format() {
	case FormatCVA:
		adaptCVA(&spec, c.CVA)
	case FormatBase:
		spec.SignatureClasses = c.BaseClasses.Tokens
	default:
		spec.SignatureClasses = c.SignatureClasses.Tokens
		spec.StyleClasses = c.StyleClasses.Tokens
		spec.Axes = toAxisSpecs(c.Variants)
		spec.DefaultVariants = c.DefaultVariants
	}

	return spec
}

// adaptCVA maps a class-variance-authority block: base classes become the
// signature and a single default_variant applies to the "variant" axis.
// default_variants entries win over default_variant for the same axis.
func adaptCVA(spec *component.DefinitionSpec, cva *CVAConfig) {
	if cva == nil {
		return
	}

	spec.SignatureClasses = cva.BaseClasses.Tokens
	spec.Axes = toAxisSpecs(cva.Variants)

	defaults := make(map[string]string, len(cva.DefaultVariants)+1)
	if cva.DefaultVariant != "" {
		defaults[cvaDefaultAxis] = cva.DefaultVariant
	}
	for axis, variant := range cva.DefaultVariants {
		defaults[axis] = variant
	}
	if len(defaults) > 0 {
		spec.DefaultVariants = defaults
	}
}

func toAxisSpecs(axes Axes) []component.AxisSpec {
	if len(axes) == 0 {
		return nil
	}

	out := make([]component.AxisSpec, 0, len(axes))
	for _, axis := range axes {
		spec := component.AxisSpec{Name: axis.Name, Variants: make([]component.VariantSpec, 0, len(axis.Variants))}
		for _, variant := range axis.Variants {
			spec.Variants = append(spec.Variants, component.VariantSpec{Name: variant.Name, Classes: variant.Classes.Tokens})
		}
		out = append(out, spec)
	}
	return out
}
