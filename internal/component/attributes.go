package component

// DefaultClassAttribute is the class attribute name used in JSX output.
const DefaultClassAttribute = "className"

// ProjectionOptions controls the names of emitted attributes.
type ProjectionOptions struct {
	// ClassAttribute names the custom-class attribute; empty means className.
	ClassAttribute string
	// VariantPrefix is prepended to every axis attribute name, which keeps
	// them apart from passthrough attributes of the same name.
	VariantPrefix string
}

func (o ProjectionOptions) classAttribute() string {
	if o.ClassAttribute == "" {
		return DefaultClassAttribute
	}
	return o.ClassAttribute
}

// ProjectAttributes lists the attributes of a matched component tag in output
// order: the custom class attribute when custom is non-empty, one attribute per
// selected axis, then every source attribute that is neither the class
// attribute nor blacklisted, in source order. Nothing is de-duplicated.
func ProjectAttributes(m Match, custom string, el Element, opts ProjectionOptions) []Attribute {
	attrs := make([]Attribute, 0, 1+len(m.Variants)+len(el.Attributes))

	if custom != "" {
		attrs = append(attrs, Attribute{Name: opts.classAttribute(), Value: custom})
	}

	for _, sel := range m.Variants {
		attrs = append(attrs, Attribute{Name: opts.VariantPrefix + sel.Axis, Value: sel.Variant})
	}

	for _, attr := range el.Attributes {
		if attr.Name == ClassAttribute {
			continue
		}
		if m.Definition != nil && m.Definition.Blacklisted(attr.Name) {
			continue
		}
		attrs = append(attrs, attr)
	}

	return attrs
}

// GenericAttributes lists the attributes of an unmatched element: the merged
// class attribute when non-empty, then every other source attribute in order.
func GenericAttributes(merged string, el Element, opts ProjectionOptions) []Attribute {
	attrs := make([]Attribute, 0, len(el.Attributes))
	if merged != "" {
		attrs = append(attrs, Attribute{Name: opts.classAttribute(), Value: merged})
	}
	for _, attr := range el.Attributes {
		if attr.Name == ClassAttribute {
			continue
		}
		attrs = append(attrs, attr)
	}
	return attrs
}
