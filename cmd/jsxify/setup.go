package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/jsxify/internal/classmerge"
	"github.com/alexisbeaulieu97/jsxify/internal/convert"
	"github.com/alexisbeaulieu97/jsxify/internal/logger"
	"github.com/alexisbeaulieu97/jsxify/internal/registry"
)

const stdinName = "stdin"

var errInteractiveStdin = errors.New("stdin is a terminal")

// conversionFlags are shared by every command that converts markup. Values
// set on the command line win over the registry document settings.
type conversionFlags struct {
	registryPath  string
	classAttr     string
	variantPrefix string
	indent        int
	maxDepth      int
}

func (f *conversionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.registryPath, "registry", "r", "", "Registry YAML document (defaults to the built-in shadcn/ui registry)")
	cmd.Flags().StringVar(&f.classAttr, "class-attr", "", "Attribute name that receives custom classes (default className)")
	cmd.Flags().StringVar(&f.variantPrefix, "variant-prefix", "", "Prefix for emitted variant attributes")
	cmd.Flags().IntVar(&f.indent, "indent", convert.DefaultIndent, "Spaces per indentation level")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", convert.DefaultMaxDepth, "Maximum element nesting depth")
}

func loadBundle(path string, log *logger.Logger) (*registry.Bundle, error) {
	if strings.TrimSpace(path) == "" {
		return registry.LoadBuiltin(log)
	}
	return registry.LoadFile(path, log)
}

func (f *conversionFlags) options(cmd *cobra.Command, settings registry.Settings) convert.Options {
	opts := convert.Options{
		ClassAttribute: settings.ClassAttribute,
		VariantPrefix:  settings.VariantPrefix,
		Indent:         settings.Indent,
		MaxDepth:       settings.MaxDepth,
	}

	changed := cmd.Flags().Changed
	if changed("class-attr") {
		opts.ClassAttribute = f.classAttr
	}
	if changed("variant-prefix") {
		opts.VariantPrefix = f.variantPrefix
	}
	if changed("indent") {
		opts.Indent = f.indent
	}
	if changed("max-depth") {
		opts.MaxDepth = f.maxDepth
	}

	return opts
}

// newConverter loads the registry and builds a converter backed by a cached
// Tailwind merger.
func newConverter(cmd *cobra.Command, op string, f *conversionFlags, log *logger.Logger) (*convert.Converter, *registry.Bundle, error) {
	bundle, err := loadBundle(f.registryPath, log)
	if err != nil {
		return nil, nil, newCommandError(op, "loading component registry", err, "Check the registry document for syntax and validation errors.")
	}

	if f.indent < 1 {
		return nil, nil, newCommandError(op, "reading flags", fmt.Errorf("indent must be positive, got %d", f.indent), "")
	}
	if f.maxDepth < 1 {
		return nil, nil, newCommandError(op, "reading flags", fmt.Errorf("max-depth must be positive, got %d", f.maxDepth), "")
	}

	merger, err := classmerge.NewCached(classmerge.NewTailwind(), classmerge.DefaultCacheSize)
	if err != nil {
		return nil, nil, newCommandError(op, "creating class merger", err, "")
	}

	log.WithFields(map[string]any{
		"registry":   bundle.Source,
		"components": bundle.Registry.Len(),
	}).Debug("converter ready")

	return convert.New(bundle.Registry, merger, f.options(cmd, bundle.Settings), log), bundle, nil
}

// readInput returns the markup named by args, or stdin when no file (or "-")
// is given. An interactive stdin is refused instead of blocking on it.
func readInput(cmd *cobra.Command, args []string) (source, name string, err error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", "", errInteractiveStdin
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", "", err
	}
	return string(data), stdinName, nil
}
