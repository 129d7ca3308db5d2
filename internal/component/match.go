package component

// VariantSelection is the variant chosen for one axis of a matched element.
type VariantSelection struct {
	Axis    string
	Variant string
	// Defaulted is set when no variant's classes were present and the axis
	// default was used instead.
	Defaulted bool
}

// Match is the result of matching one element: the definition and the
// selected variant per axis, in axis order. Axes with neither a matching
// variant nor a default are absent.
type Match struct {
	Definition *Definition
	Variants   []VariantSelection
}

// Variant returns the variant selected for axis.
func (m Match) Variant(axis string) (string, bool) {
	for _, sel := range m.Variants {
		if sel.Axis == axis {
			return sel.Variant, true
		}
	}
	return "", false
}

// Match returns the first definition, in registry order, whose tag, data
// attributes and signature classes are all satisfied by el.
func (r *Registry) Match(el Element) (Match, bool) {
	if r == nil {
		return Match{}, false
	}

	for _, def := range r.defs {
		if def.accepts(el) {
			return Match{Definition: def, Variants: def.detectVariants(el.Classes)}, true
		}
	}
	return Match{}, false
}

func (d *Definition) accepts(el Element) bool {
	if el.Tag != d.tag {
		return false
	}
	for name, want := range d.dataAttributes {
		got, ok := el.Attr(name)
		if !ok || got != want {
			return false
		}
	}
	return d.signature.SubsetOf(el.Classes)
}

// detectVariants scans each axis independently; the first variant whose
// classes are all present wins, then the axis default.
func (d *Definition) detectVariants(classes ClassSet) []VariantSelection {
	var selections []VariantSelection
	for _, axis := range d.axes {
		selected := false
		for _, variant := range axis.Variants {
			if variant.Classes.SubsetOf(classes) {
				selections = append(selections, VariantSelection{Axis: axis.Name, Variant: variant.Name})
				selected = true
				break
			}
		}
		if selected {
			continue
		}
		if name, ok := d.defaultVariants[axis.Name]; ok {
			selections = append(selections, VariantSelection{Axis: axis.Name, Variant: name, Defaulted: true})
		}
	}
	return selections
}
