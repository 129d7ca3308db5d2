package registry

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/jsxify/internal/component"
	"github.com/alexisbeaulieu97/jsxify/internal/logger"
	jsxerrors "github.com/alexisbeaulieu97/jsxify/pkg/errors"
)

const header = `version: "1.0"
name: test
`

func TestLoadBuiltin(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	bundle, err := LoadBuiltin(log)
	require.NoError(t, err)
	require.Empty(t, buf.String(), "built-in registry should load without warnings")

	require.Equal(t, BuiltinSource, bundle.Source)
	require.Equal(t, "shadcn", bundle.Name)
	require.Equal(t, "className", bundle.Settings.ClassAttribute)
	require.Equal(t, 2, bundle.Settings.Indent)
	require.Equal(t, 42, bundle.Registry.Len())

	defs := bundle.Registry.Definitions()
	require.Equal(t, "Button", defs[0].ID())
	require.Equal(t, "TabsContent", defs[len(defs)-1].ID())

	legacy, ok := bundle.Registry.Lookup("BadgeLegacy")
	require.True(t, ok)
	require.Equal(t, "Badge", legacy.Name())

	closeButton, ok := bundle.Registry.Lookup("DialogContentClose")
	require.True(t, ok)
	require.Equal(t, "DialogClose", closeButton.Name())
	require.True(t, closeButton.SkipThisElement())

	slotClose, ok := bundle.Registry.Lookup("DialogClose")
	require.True(t, ok)
	require.Equal(t, map[string]string{"data-slot": "dialog-close"}, slotClose.DataAttributes())
	require.False(t, slotClose.SkipThisElement())
	require.Less(t, registryIndex(defs, "DialogContentClose"), registryIndex(defs, "DialogClose"))

	control, ok := bundle.Registry.Lookup("FormControl")
	require.True(t, ok)
	require.Equal(t, "slot", control.Tag())

	button, ok := bundle.Registry.Lookup("Button")
	require.True(t, ok)
	variant, ok := button.DefaultVariant("size")
	require.True(t, ok)
	require.Equal(t, "default", variant)
}

func TestParseCanonicalKeepsAuthoringOrder(t *testing.T) {
	t.Parallel()

	doc := header + `settings:
  variant_prefix: data-
components:
  - id: Alert
    tag: div
    signature_classes: [relative, "w-full rounded-lg"]
    data_attributes:
      role: alert
    variants:
      variant:
        default: bg-background text-foreground
        destructive: [border-destructive/50, text-destructive]
      size:
        sm: p-2
    default_variants:
      variant: default
    style_classes: border px-4
    blacklist: [role]
    ignore_children: true
`

	bundle, err := Parse([]byte(doc), "alert.yaml", nil)
	require.NoError(t, err)
	require.Equal(t, "data-", bundle.Settings.VariantPrefix)

	def, ok := bundle.Registry.Lookup("Alert")
	require.True(t, ok)
	require.Equal(t, "relative w-full rounded-lg", def.SignatureClasses().String())
	require.Equal(t, "border px-4", def.StyleClasses().String())
	require.Equal(t, map[string]string{"role": "alert"}, def.DataAttributes())
	require.True(t, def.Blacklisted("role"))
	require.True(t, def.IgnoreChildren())

	axes := def.Axes()
	require.Len(t, axes, 2)
	require.Equal(t, "variant", axes[0].Name)
	require.Equal(t, "size", axes[1].Name)
	require.Equal(t, "default", axes[0].Variants[0].Name)
	require.Equal(t, "destructive", axes[0].Variants[1].Name)
	require.Equal(t, "border-destructive/50 text-destructive", axes[0].Variants[1].Classes.String())
}

func TestParseAuthoringFormats(t *testing.T) {
	t.Parallel()

	doc := header + `components:
  - id: Toggle
    tag: button
    format: cva
    cva:
      base_classes: inline-flex items-center
      variants:
        variant:
          default: bg-transparent
          outline: border border-input
        size:
          sm: h-9
          lg: h-11
      default_variant: outline
      default_variants:
        size: sm
  - id: Skeleton
    tag: div
    format: base
    base_classes: animate-pulse rounded-md bg-muted
    self_closing: true
`

	bundle, err := Parse([]byte(doc), "formats.yaml", nil)
	require.NoError(t, err)

	toggle, ok := bundle.Registry.Lookup("Toggle")
	require.True(t, ok)
	require.Equal(t, "inline-flex items-center", toggle.SignatureClasses().String())
	require.Len(t, toggle.Axes(), 2)
	variant, ok := toggle.DefaultVariant("variant")
	require.True(t, ok)
	require.Equal(t, "outline", variant)
	size, ok := toggle.DefaultVariant("size")
	require.True(t, ok)
	require.Equal(t, "sm", size)

	skeleton, ok := bundle.Registry.Lookup("Skeleton")
	require.True(t, ok)
	require.Equal(t, "animate-pulse rounded-md bg-muted", skeleton.SignatureClasses().String())
	require.Empty(t, skeleton.Axes())
	require.True(t, skeleton.SelfClosing())

	m, ok := bundle.Registry.Match(component.NewElement("div", []component.Attribute{
		{Name: "class", Value: "bg-muted rounded-md animate-pulse h-4"},
	}))
	require.True(t, ok)
	require.Equal(t, "Skeleton", m.Definition.ID())
}

func TestParseRejectsNonStringClasses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		component string
		wantField string
		wantMsg   string
	}{
		{
			name:      "integer signature",
			component: "    signature_classes: 42\n",
			wantField: "components[0](Thing).signature_classes",
			wantMsg:   `got int "42"`,
		},
		{
			name:      "boolean style",
			component: "    signature_classes: flex\n    style_classes: true\n",
			wantField: "components[0](Thing).style_classes",
			wantMsg:   `got bool "true"`,
		},
		{
			name:      "mapping",
			component: "    signature_classes: {flex: grid}\n",
			wantField: "components[0](Thing).signature_classes",
			wantMsg:   "got mapping",
		},
		{
			name:      "explicit null",
			component: "    signature_classes: ~\n",
			wantField: "components[0](Thing).signature_classes",
			wantMsg:   "got null",
		},
		{
			name:      "list with number",
			component: "    signature_classes: [flex, 7]\n",
			wantField: "components[0](Thing).signature_classes",
			wantMsg:   `got list containing int "7"`,
		},
		{
			name:      "variant value",
			component: "    signature_classes: flex\n    variants:\n      size:\n        sm: 3\n",
			wantField: "components[0](Thing).variants.size.sm",
			wantMsg:   `got int "3"`,
		},
		{
			name:      "null variant",
			component: "    signature_classes: flex\n    variants:\n      size:\n        sm:\n",
			wantField: "components[0](Thing).variants.size.sm",
			wantMsg:   "got null",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := header + "components:\n  - id: Thing\n    tag: div\n" + tc.component
			bundle, err := Parse([]byte(doc), "bad.yaml", nil)
			require.Nil(t, bundle)
			require.Error(t, err)

			var validationErr *jsxerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
			require.Contains(t, validationErr.Message, tc.wantMsg)
		})
	}
}

func TestParseDocumentErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, err error)
	}{
		{
			name:     "invalid yaml returns parse error",
			contents: "version: [1, 0]\nname: broken\n",
			assert: func(t *testing.T, err error) {
				var parseErr *jsxerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "doc.yaml", parseErr.Path)
				require.Equal(t, 1, parseErr.Line)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "variants must be a mapping",
			contents: header + "components:\n  - id: A\n    tag: div\n    variants: [a, b]\n",
			assert: func(t *testing.T, err error) {
				var parseErr *jsxerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 6, parseErr.Line)
				require.Contains(t, parseErr.Message, "variants must be a mapping")
			},
		},
		{
			name:     "missing header fields",
			contents: "components:\n  - id: A\n    tag: div\n    signature_classes: a\n",
			assert: func(t *testing.T, err error) {
				errs := multierr.Errors(err)
				require.Len(t, errs, 2)
				require.Contains(t, errs[0].Error(), "version")
				require.Contains(t, errs[1].Error(), "name")
			},
		},
		{
			name:     "component errors are reported once",
			contents: header + "components:\n  - id: A\n    signature_classes: a\n",
			assert: func(t *testing.T, err error) {
				errs := multierr.Errors(err)
				require.Len(t, errs, 1)

				var validationErr *jsxerrors.ValidationError
				require.ErrorAs(t, errs[0], &validationErr)
				require.Equal(t, "components[0](A).tag", validationErr.Field)
				require.Contains(t, validationErr.Message, "'required'")
			},
		},
		{
			name:     "bad version",
			contents: "version: beta\nname: x\ncomponents:\n  - id: A\n    tag: div\n",
			assert: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "'semver'")
			},
		},
		{
			name:     "no components",
			contents: header,
			assert: func(t *testing.T, err error) {
				var validationErr *jsxerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "components", validationErr.Field)
			},
		},
		{
			name:     "unknown format",
			contents: header + "components:\n  - id: A\n    tag: div\n    format: tailwind\n",
			assert: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "components[0](A).format")
				require.Contains(t, err.Error(), "'oneof'")
			},
		},
		{
			name:     "cva format without block",
			contents: header + "components:\n  - id: A\n    tag: div\n    format: cva\n",
			assert: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "components[0](A).cva: required with format cva")
			},
		},
		{
			name:     "base format with canonical classes",
			contents: header + "components:\n  - id: A\n    tag: div\n    format: base\n    base_classes: a\n    signature_classes: b\n",
			assert: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "format base takes its classes from base_classes")
			},
		},
		{
			name:     "definition errors carry the component path",
			contents: header + "components:\n  - id: A\n    tag: div\n    signature_classes: a\n    variants:\n      size:\n        sm: h-9\n    default_variants:\n      size: xl\n",
			assert: func(t *testing.T, err error) {
				var validationErr *jsxerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "components[0](A).default_variants.size", validationErr.Field)
				require.Contains(t, validationErr.Message, `unknown variant "xl"`)
			},
		},
		{
			name:     "duplicate ids",
			contents: header + "components:\n  - id: A\n    tag: div\n    signature_classes: a\n  - id: A\n    tag: span\n    signature_classes: b\n",
			assert: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), `duplicate component id "A"`)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bundle, err := Parse([]byte(tc.contents), "doc.yaml", nil)
			require.Nil(t, bundle)
			require.Error(t, err)
			tc.assert(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	contents := header + "components:\n  - id: Kbd\n    tag: kbd\n    signature_classes: font-mono\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	bundle, err := LoadFile(path, logger.Nop())
	require.NoError(t, err)
	require.Equal(t, path, bundle.Source)
	require.Equal(t, 1, bundle.Registry.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"), nil)
	var parseErr *jsxerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.True(t, strings.HasSuffix(parseErr.Path, "missing.yaml"))
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 12, extractLine(errors.New("yaml: line 12: did not find expected key")))
	require.Equal(t, 0, extractLine(errors.New("no position")))
}

func registryIndex(defs []*component.Definition, id string) int {
	for i, def := range defs {
		if def.ID() == id {
			return i
		}
	}
	return -1
}
