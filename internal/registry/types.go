package registry

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names accepted in a component's format field.
const (
	FormatCanonical = "canonical"
	FormatCVA       = "cva"
	FormatBase      = "base"
)

// Document represents a full registry document.
type Document struct {
	Version     string      `yaml:"version" validate:"required,semver"`
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty"`
	Settings    Settings    `yaml:"settings,omitempty"`
	Components  []Component `yaml:"components" validate:"required,min=1"`
}

// Settings holds rendering defaults shipped with a registry. CLI flags take
// precedence over every value here.
type Settings struct {
	ClassAttribute string `yaml:"class_attribute,omitempty" validate:"omitempty,attr_name"`
	VariantPrefix  string `yaml:"variant_prefix,omitempty" validate:"omitempty,attr_name"`
	Indent         int    `yaml:"indent,omitempty" validate:"omitempty,min=1,max=8"`
	MaxDepth       int    `yaml:"max_depth,omitempty" validate:"omitempty,min=1,max=100000"`
}

// Component is one authored component entry. Which fields are read depends on
// Format; see adapters.go.
type Component struct {
	ID               string            `yaml:"id" validate:"required"`
	Name             string            `yaml:"name,omitempty"`
	Tag              string            `yaml:"tag" validate:"required"`
	Format           string            `yaml:"format,omitempty" validate:"omitempty,oneof=canonical cva base"`
	SignatureClasses ClassList         `yaml:"signature_classes,omitempty"`
	DataAttributes   map[string]string `yaml:"data_attributes,omitempty"`
	Variants         Axes              `yaml:"variants,omitempty"`
	DefaultVariants  map[string]string `yaml:"default_variants,omitempty"`
	StyleClasses     ClassList         `yaml:"style_classes,omitempty"`
	Blacklist        []string          `yaml:"blacklist,omitempty"`
	SelfClosing      bool              `yaml:"self_closing,omitempty"`
	IgnoreChildren   bool              `yaml:"ignore_children,omitempty"`
	Skip             bool              `yaml:"skip,omitempty"`
	CVA              *CVAConfig        `yaml:"cva,omitempty"`
	BaseClasses      ClassList         `yaml:"base_classes,omitempty"`

	// Line is the document line the entry starts on.
	Line int `yaml:"-"`
}

// UnmarshalYAML records the entry line and flags class fields written as an
// explicit null, which the decoder would otherwise leave empty.
func (c *Component) UnmarshalYAML(value *yaml.Node) error {
	type rawComponent Component

	var raw rawComponent
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*c = Component(raw)
	c.Line = value.Line
	markNullClasses(value, map[string]*ClassList{
		"signature_classes": &c.SignatureClasses,
		"style_classes":     &c.StyleClasses,
		"base_classes":      &c.BaseClasses,
	})
	return nil
}

// CVAConfig is the class-variance-authority style authoring block.
type CVAConfig struct {
	BaseClasses     ClassList         `yaml:"base_classes,omitempty"`
	Variants        Axes              `yaml:"variants,omitempty"`
	DefaultVariant  string            `yaml:"default_variant,omitempty"`
	DefaultVariants map[string]string `yaml:"default_variants,omitempty"`
}

// UnmarshalYAML flags an explicit null base_classes.
func (c *CVAConfig) UnmarshalYAML(value *yaml.Node) error {
	type rawCVA CVAConfig

	var raw rawCVA
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*c = CVAConfig(raw)
	markNullClasses(value, map[string]*ClassList{"base_classes": &c.BaseClasses})
	return nil
}

// ClassList is a class field written either as one space separated string or
// as a list of strings. Any other YAML value is kept as Invalid and reported by
// validation together with the component it belongs to.
type ClassList struct {
	Tokens  []string
	Invalid string
	Line    int
}

// UnmarshalYAML decodes a string or a sequence of strings.
func (c *ClassList) UnmarshalYAML(node *yaml.Node) error {
	c.Line = node.Line

	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() != "!!str" {
			c.Invalid = describeNode(node)
			return nil
		}
		c.Tokens = strings.Fields(node.Value)
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
				c.Tokens = nil
				c.Invalid = "list containing " + describeNode(item)
				c.Line = item.Line
				return nil
			}
			c.Tokens = append(c.Tokens, strings.Fields(item.Value)...)
		}
	default:
		c.Invalid = describeNode(node)
	}

	return nil
}

// Axes is the ordered variants mapping: axis name to an ordered mapping of
// variant name to classes.
type Axes []AxisEntry

// AxisEntry is one authored axis.
type AxisEntry struct {
	Name     string
	Variants []VariantEntry
}

// VariantEntry is one authored variant.
type VariantEntry struct {
	Name    string
	Classes ClassList
}

// UnmarshalYAML keeps the authoring order of axes and variants, which plain
// map decoding would lose.
func (a *Axes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variants must be a mapping of axis names to variants", node.Line)
	}

	axes := make(Axes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: axis %q must be a mapping of variant names to classes", value.Line, key.Value)
		}

		axis := AxisEntry{Name: key.Value, Variants: make([]VariantEntry, 0, len(value.Content)/2)}
		for j := 0; j+1 < len(value.Content); j += 2 {
			variantKey, variantValue := value.Content[j], value.Content[j+1]

			var classes ClassList
			if variantValue.ShortTag() == "!!null" {
				classes = ClassList{Invalid: "null", Line: variantValue.Line}
			} else if err := variantValue.Decode(&classes); err != nil {
				return err
			}
			axis.Variants = append(axis.Variants, VariantEntry{Name: variantKey.Value, Classes: classes})
		}
		axes = append(axes, axis)
	}

	*a = axes
	return nil
}

func markNullClasses(mapping *yaml.Node, fields map[string]*ClassList) {
	if mapping.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		list, ok := fields[mapping.Content[i].Value]
		if !ok {
			continue
		}
		if value := mapping.Content[i+1]; value.ShortTag() == "!!null" {
			*list = ClassList{Invalid: "null", Line: value.Line}
		}
	}
}

func describeNode(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.AliasNode:
		return "alias"
	}

	tag := strings.TrimPrefix(node.ShortTag(), "!!")
	if tag == "null" {
		return "null"
	}
	return fmt.Sprintf("%s %q", tag, node.Value)
}
