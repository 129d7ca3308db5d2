// Package convert walks parsed markup and renders it as JSX, turning elements
// recognised by a component registry into component tags.
package convert

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/jsxify/internal/classmerge"
	"github.com/alexisbeaulieu97/jsxify/internal/component"
	"github.com/alexisbeaulieu97/jsxify/internal/logger"
	"github.com/alexisbeaulieu97/jsxify/internal/markup"
	jsxerrors "github.com/alexisbeaulieu97/jsxify/pkg/errors"
)

const (
	// DefaultIndent is the number of spaces per nesting level.
	DefaultIndent = 2
	// DefaultMaxDepth bounds element nesting.
	DefaultMaxDepth = 512
)

// Options controls rendering. Zero values select the defaults.
type Options struct {
	// ClassAttribute names the emitted class attribute; empty means className.
	ClassAttribute string
	// VariantPrefix is prepended to every variant axis attribute.
	VariantPrefix string
	// Indent is the number of spaces per nesting level.
	Indent int
	// MaxDepth is the deepest element nesting accepted before the conversion
	// fails with ErrDepthExceeded.
	MaxDepth int
}

func (o Options) withDefaults() Options {
	if o.ClassAttribute == "" {
		o.ClassAttribute = component.DefaultClassAttribute
	}
	if o.Indent <= 0 {
		o.Indent = DefaultIndent
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// Converter renders markup against one registry. It holds no per-call state,
// so a single Converter may serve concurrent Convert calls as long as its
// merger is safe for concurrent use.
type Converter struct {
	registry   *component.Registry
	merger     component.ClassMerger
	opts       Options
	projection component.ProjectionOptions
	indentUnit string
	log        *logger.Logger
}

// New returns a Converter. A nil merger falls back to classmerge.Verbatim.
func New(reg *component.Registry, merger component.ClassMerger, opts Options, log *logger.Logger) *Converter {
	if merger == nil {
		merger = classmerge.Verbatim
	}
	opts = opts.withDefaults()

	return &Converter{
		registry: reg,
		merger:   merger,
		opts:     opts,
		projection: component.ProjectionOptions{
			ClassAttribute: opts.ClassAttribute,
			VariantPrefix:  opts.VariantPrefix,
		},
		indentUnit: strings.Repeat(" ", opts.Indent),
		log:        log,
	}
}

// Options returns the effective options, defaults applied.
func (c *Converter) Options() Options {
	return c.opts
}

// Report summarises one conversion.
type Report struct {
	Output string
	// Elements counts rendered source elements, skipped wrappers included.
	Elements int
	// Components counts matches per definition ID in first-seen order.
	Components []ComponentCount
}

// ComponentCount is the number of elements matched by one definition.
type ComponentCount struct {
	ID    string
	Count int
}

// Matched returns the total number of matched elements.
func (r Report) Matched() int {
	total := 0
	for _, cc := range r.Components {
		total += cc.Count
	}
	return total
}

// Convert parses src and renders every top-level node, dropping those that
// render empty. Output lines are joined with "\n". Either the whole input
// converts or an error is returned.
func (c *Converter) Convert(src string) (string, error) {
	report, err := c.ConvertReport(src)
	if err != nil {
		return "", err
	}
	return report.Output, nil
}

// ConvertReport is Convert plus match statistics.
func (c *Converter) ConvertReport(src string) (Report, error) {
	nodes, err := markup.Parse(src)
	if err != nil {
		return Report{}, jsxerrors.NewConversionError(jsxerrors.StageParse, "", err)
	}

	w := &walk{Converter: c, index: make(map[string]int)}
	out, err := w.renderNodes(nodes, 0, 1)
	if err != nil {
		return Report{}, err
	}

	w.report.Output = strings.Join(out, "\n")
	return w.report, nil
}

// walk holds the state of a single conversion.
type walk struct {
	*Converter
	report Report
	index  map[string]int
}

func (w *walk) count(id string) {
	if i, ok := w.index[id]; ok {
		w.report.Components[i].Count++
		return
	}
	w.index[id] = len(w.report.Components)
	w.report.Components = append(w.report.Components, ComponentCount{ID: id, Count: 1})
}

// renderNodes renders siblings at level and returns the non-empty outputs.
// level drives indentation, depth counts element nesting including skipped
// wrappers.
func (w *walk) renderNodes(nodes []*markup.Node, level, depth int) ([]string, error) {
	var out []string
	for _, n := range nodes {
		rendered, err := w.render(n, level, depth)
		if err != nil {
			return nil, err
		}
		if rendered != "" {
			out = append(out, rendered)
		}
	}
	return out, nil
}

func (w *walk) render(n *markup.Node, level, depth int) (string, error) {
	switch n.Kind {
	case markup.KindDoctype:
		return "<!DOCTYPE html>", nil
	case markup.KindText:
		text := strings.TrimSpace(n.Text)
		if text == "" {
			return "", nil
		}
		return w.indent(level) + escapeText(text), nil
	case markup.KindComment:
		text := strings.TrimSpace(n.Text)
		if text == "" {
			return "", nil
		}
		return w.indent(level) + "{/* " + escapeComment(text) + " */}", nil
	case markup.KindElement:
		if depth > w.opts.MaxDepth {
			return "", jsxerrors.NewConversionError(jsxerrors.StageRender,
				fmt.Sprintf("<%s> at depth %d, limit %d", n.Tag, depth, w.opts.MaxDepth), jsxerrors.ErrDepthExceeded)
		}
		return w.renderElement(n, level, depth)
	default:
		return "", nil
	}
}

func (w *walk) renderElement(n *markup.Node, level, depth int) (string, error) {
	w.report.Elements++
	el := component.NewElement(n.Tag, toAttributes(n.Attributes))

	m, ok := w.registry.Match(el)
	if !ok {
		return w.renderGeneric(n, el, level, depth)
	}

	def := m.Definition
	w.count(def.ID())
	if w.log.DebugEnabled() {
		w.log.WithFields(map[string]any{
			"component": def.ID(),
			"tag":       n.Tag,
			"variants":  describeVariants(m.Variants),
		}).Debug("matched component")
	}

	if def.SkipThisElement() {
		children, err := w.renderNodes(n.Children, level, depth+1)
		if err != nil {
			return "", err
		}
		return strings.Join(children, "\n"), nil
	}

	custom, err := component.CustomClasses(m, el, w.merger)
	if err != nil {
		return "", err
	}

	open := w.indent(level) + "<" + def.Name() + formatAttributes(component.ProjectAttributes(m, custom, el, w.projection))
	if def.SelfClosing() || def.IgnoreChildren() {
		return open + " />", nil
	}

	children, err := w.renderNodes(n.Children, level+1, depth+1)
	if err != nil {
		return "", err
	}
	if len(children) == 0 {
		return open + " />", nil
	}

	return open + ">\n" + strings.Join(children, "\n") + "\n" + w.indent(level) + "</" + def.Name() + ">", nil
}

func (w *walk) renderGeneric(n *markup.Node, el component.Element, level, depth int) (string, error) {
	var merged string
	if raw, ok := el.Attr(component.ClassAttribute); ok && strings.TrimSpace(raw) != "" {
		var err error
		merged, err = w.merger.Merge(strings.Join(strings.Fields(raw), " "))
		if err != nil {
			return "", jsxerrors.NewConversionError(jsxerrors.StageMerge, fmt.Sprintf("classes of <%s>", n.Tag), err)
		}
	}

	open := w.indent(level) + "<" + n.Tag + formatAttributes(component.GenericAttributes(merged, el, w.projection))

	children, err := w.renderNodes(n.Children, level+1, depth+1)
	if err != nil {
		return "", err
	}

	if len(children) == 0 {
		if isVoidElement(n.Tag) {
			return open + " />", nil
		}
		return open + "></" + n.Tag + ">", nil
	}

	return open + ">\n" + strings.Join(children, "\n") + "\n" + w.indent(level) + "</" + n.Tag + ">", nil
}

func (c *Converter) indent(level int) string {
	return strings.Repeat(c.indentUnit, level)
}

func toAttributes(attrs []markup.Attribute) []component.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]component.Attribute, len(attrs))
	for i, attr := range attrs {
		out[i] = component.Attribute{Name: attr.Name, Value: attr.Value}
	}
	return out
}

func describeVariants(selections []component.VariantSelection) string {
	parts := make([]string, 0, len(selections))
	for _, sel := range selections {
		part := sel.Axis + "=" + sel.Variant
		if sel.Defaulted {
			part += "(default)"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}
