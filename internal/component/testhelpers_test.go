package component

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// joinMerger stands in for a real class merger: it keeps the input as-is.
type joinMerger struct {
	calls []string
}

func (m *joinMerger) Merge(classes string) (string, error) {
	m.calls = append(m.calls, classes)
	return strings.Join(strings.Fields(classes), " "), nil
}

type failingMerger struct{ err error }

func (m failingMerger) Merge(string) (string, error) { return "", m.err }

func buttonSpec() DefinitionSpec {
	return DefinitionSpec{
		ID:  "Button",
		Tag: "button",
		SignatureClasses: strings.Fields("ring-offset-background disabled:pointer-events-none disabled:opacity-50 " +
			"[&_svg]:pointer-events-none [&_svg]:size-4 focus-visible:ring-ring focus-visible:ring-offset-2 [&_svg]:shrink-0"),
		Axes: []AxisSpec{
			{
				Name: "variant",
				Variants: []VariantSpec{
					{Name: "default", Classes: strings.Fields("bg-primary text-primary-foreground hover:bg-primary/90")},
					{Name: "destructive", Classes: strings.Fields("bg-destructive text-destructive-foreground hover:bg-destructive/90")},
					{Name: "outline", Classes: strings.Fields("border border-input bg-background hover:bg-accent hover:text-accent-foreground")},
					{Name: "ghost", Classes: strings.Fields("hover:bg-accent hover:text-accent-foreground")},
				},
			},
			{
				Name: "size",
				Variants: []VariantSpec{
					{Name: "default", Classes: strings.Fields("h-10 px-4 py-2")},
					{Name: "sm", Classes: strings.Fields("h-9 px-3")},
					{Name: "lg", Classes: strings.Fields("h-11 px-8")},
					{Name: "icon", Classes: strings.Fields("h-10 w-10")},
				},
			},
		},
		DefaultVariants: map[string]string{"variant": "default", "size": "default"},
		StyleClasses:    strings.Fields("focus-visible:outline-none focus-visible:ring-2 rounded-md text-sm font-medium inline-flex items-center justify-center"),
	}
}

const buttonSignature = "ring-offset-background disabled:pointer-events-none disabled:opacity-50 " +
	"[&_svg]:pointer-events-none [&_svg]:size-4 focus-visible:ring-ring focus-visible:ring-offset-2 [&_svg]:shrink-0"

func mustRegistry(t *testing.T, specs ...DefinitionSpec) *Registry {
	t.Helper()
	reg, err := NewRegistry(specs, nil)
	require.NoError(t, err)
	return reg
}

func element(tag, class string, extra ...Attribute) Element {
	attrs := []Attribute{}
	if class != "" {
		attrs = append(attrs, Attribute{Name: "class", Value: class})
	}
	attrs = append(attrs, extra...)
	return NewElement(tag, attrs)
}
