// Package registry loads component registries from YAML documents and ships
// the built-in shadcn/ui registry.
package registry

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/jsxify/internal/component"
	"github.com/alexisbeaulieu97/jsxify/internal/logger"
	jsxerrors "github.com/alexisbeaulieu97/jsxify/pkg/errors"
)

// BuiltinSource is the path reported for the embedded registry.
const BuiltinSource = "builtin:shadcn.yaml"

//go:embed builtin/shadcn.yaml
var builtinDocument []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Bundle is a loaded registry together with its document metadata.
type Bundle struct {
	Source      string
	Name        string
	Version     string
	Description string
	Settings    Settings
	Registry    *component.Registry
}

// LoadBuiltin loads the embedded shadcn/ui registry.
func LoadBuiltin(log *logger.Logger) (*Bundle, error) {
	return Parse(builtinDocument, BuiltinSource, log)
}

// LoadFile reads a registry document from disk.
func LoadFile(path string, log *logger.Logger) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, jsxerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path, log)
}

// Parse decodes, validates and builds a registry document. source names the
// document in errors and logs.
func Parse(data []byte, source string, log *logger.Logger) (*Bundle, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, jsxerrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	specs := make([]component.DefinitionSpec, 0, len(doc.Components))
	for _, c := range doc.Components {
		specs = append(specs, toSpec(c))
	}

	reg, err := component.NewRegistry(specs, log.WithFields(map[string]any{"registry": source}))
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{
		"registry":   source,
		"name":       doc.Name,
		"version":    doc.Version,
		"components": reg.Len(),
	}).Debug("registry loaded")

	return &Bundle{
		Source:      source,
		Name:        doc.Name,
		Version:     doc.Version,
		Description: doc.Description,
		Settings:    doc.Settings,
		Registry:    reg,
	}, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
