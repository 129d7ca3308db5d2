package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/jsxify/internal/component"
	"github.com/alexisbeaulieu97/jsxify/internal/registry"
)

type componentsOptions struct {
	registryPath string
	jsonOutput   bool
}

func newComponentsCmd(root *rootFlags) *cobra.Command {
	opts := &componentsOptions{}

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the components of a registry in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := loadBundle(opts.registryPath, root.log)
			if err != nil {
				return newCommandError("list components", "loading component registry", err, "Check the registry document for syntax and validation errors.")
			}

			if opts.jsonOutput {
				return renderComponentsJSON(cmd, bundle)
			}
			return renderComponentsTable(cmd, bundle)
		},
	}

	cmd.Flags().StringVarP(&opts.registryPath, "registry", "r", "", "Registry YAML document (defaults to the built-in shadcn/ui registry)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderComponentsTable(cmd *cobra.Command, bundle *registry.Bundle) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n\n", bundle.Name, bundle.Source)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tTAG\tMATCHES\tVARIANTS\tFLAGS")

	for _, def := range bundle.Registry.Definitions() {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
			def.ID(),
			def.Name(),
			def.Tag(),
			describeFingerprint(def),
			valueOrFallback(describeAxes(def), "-"),
			valueOrFallback(strings.Join(definitionFlags(def), ","), "-"),
		)
	}

	return writer.Flush()
}

type componentsJSONAxis struct {
	Name     string   `json:"name"`
	Variants []string `json:"variants"`
	Default  string   `json:"default,omitempty"`
}

type componentsJSONComponent struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Tag            string               `json:"tag"`
	Signature      []string             `json:"signature_classes"`
	DataAttributes map[string]string    `json:"data_attributes,omitempty"`
	Style          []string             `json:"style_classes,omitempty"`
	Axes           []componentsJSONAxis `json:"variants,omitempty"`
	Blacklist      []string             `json:"blacklist,omitempty"`
	Flags          []string             `json:"flags,omitempty"`
}

type componentsJSONPayload struct {
	Version    string                    `json:"version"`
	Registry   string                    `json:"registry"`
	Source     string                    `json:"source"`
	Count      int                       `json:"count"`
	Components []componentsJSONComponent `json:"components"`
}

func renderComponentsJSON(cmd *cobra.Command, bundle *registry.Bundle) error {
	defs := bundle.Registry.Definitions()
	payload := componentsJSONPayload{
		Version:    "1.0",
		Registry:   bundle.Name,
		Source:     bundle.Source,
		Count:      len(defs),
		Components: make([]componentsJSONComponent, len(defs)),
	}

	for i, def := range defs {
		entry := componentsJSONComponent{
			ID:        def.ID(),
			Name:      def.Name(),
			Tag:       def.Tag(),
			Signature: def.SignatureClasses().Tokens(),
			Style:     def.StyleClasses().Tokens(),
			Blacklist: def.Blacklist(),
			Flags:     definitionFlags(def),
		}
		if attrs := def.DataAttributes(); len(attrs) > 0 {
			entry.DataAttributes = attrs
		}
		for _, axis := range def.Axes() {
			jsonAxis := componentsJSONAxis{Name: axis.Name}
			for _, variant := range axis.Variants {
				jsonAxis.Variants = append(jsonAxis.Variants, variant.Name)
			}
			jsonAxis.Default, _ = def.DefaultVariant(axis.Name)
			entry.Axes = append(entry.Axes, jsonAxis)
		}
		payload.Components[i] = entry
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// describeFingerprint shows what an element needs, beyond its tag, to match.
func describeFingerprint(def *component.Definition) string {
	if def.Unfingerprinted() {
		return "(any <" + def.Tag() + ">)"
	}

	var parts []string
	attrs := def.DataAttributes()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%q", name, attrs[name]))
	}
	if sig := def.SignatureClasses(); sig.Len() > 0 {
		parts = append(parts, sig.String())
	}
	return strings.Join(parts, " ")
}

func describeAxes(def *component.Definition) string {
	parts := make([]string, 0, len(def.Axes()))
	for _, axis := range def.Axes() {
		parts = append(parts, fmt.Sprintf("%s(%d)", axis.Name, len(axis.Variants)))
	}
	return strings.Join(parts, " ")
}

func definitionFlags(def *component.Definition) []string {
	var flags []string
	if def.SkipThisElement() {
		flags = append(flags, "skip")
	}
	if def.SelfClosing() {
		flags = append(flags, "self-closing")
	}
	if def.IgnoreChildren() {
		flags = append(flags, "ignore-children")
	}
	return flags
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
