package component

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/jsxify/internal/logger"
	jsxerrors "github.com/alexisbeaulieu97/jsxify/pkg/errors"
)

// Registry is the ordered, immutable list of component definitions. Order is
// significant: the first definition that matches an element wins.
type Registry struct {
	defs []*Definition
	byID map[string]*Definition
}

// NewRegistry validates every spec and builds a Registry in spec order. All
// problems are reported together; no registry is returned if any spec is
// malformed.
func NewRegistry(specs []DefinitionSpec, log *logger.Logger) (*Registry, error) {
	reg := &Registry{
		defs: make([]*Definition, 0, len(specs)),
		byID: make(map[string]*Definition, len(specs)),
	}

	var errs error
	for i, spec := range specs {
		field := fmt.Sprintf("components[%d](%s)", i, spec.ID)

		def, notices, err := buildDefinition(spec, field)
		for _, notice := range notices {
			log.WithFields(map[string]any{"component": spec.ID}).Warn(notice)
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		if _, dup := reg.byID[def.ID()]; dup {
			errs = multierr.Append(errs, jsxerrors.NewValidationError(field+".id",
				fmt.Sprintf("duplicate component id %q", def.ID()), nil))
			continue
		}

		if def.Unfingerprinted() {
			log.WithFields(map[string]any{"component": def.ID()}).
				Debug(fmt.Sprintf("%s matches every <%s> element", field, def.Tag()))
		}

		reg.defs = append(reg.defs, def)
		reg.byID[def.ID()] = def
	}

	if errs != nil {
		return nil, errs
	}
	return reg, nil
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.defs)
}

// Definitions returns the definitions in match order.
func (r *Registry) Definitions() []*Definition {
	if r == nil {
		return nil
	}
	return append([]*Definition(nil), r.defs...)
}

// Lookup returns the definition registered under id.
func (r *Registry) Lookup(id string) (*Definition, bool) {
	if r == nil {
		return nil, false
	}
	def, ok := r.byID[id]
	return def, ok
}
