package component

import (
	"fmt"

	jsxerrors "github.com/alexisbeaulieu97/jsxify/pkg/errors"
)

// ClassMerger resolves conflicting utility classes in a space-separated list.
type ClassMerger interface {
	Merge(classes string) (string, error)
}

// CustomClasses returns the element's classes that the matched component does
// not own, in source order and passed through merger. It returns "" without
// calling merger when nothing is left over.
//
// Ownership covers every variant of every axis, not just the selected ones,
// so switching variants in the source never leaks classes into the result.
func CustomClasses(m Match, el Element, merger ClassMerger) (string, error) {
	if m.Definition == nil {
		return "", fmt.Errorf("custom classes: no definition matched")
	}

	residual := el.Classes.Without(m.Definition.ManagedClasses())
	if residual.Len() == 0 {
		return "", nil
	}

	merged, err := merger.Merge(residual.String())
	if err != nil {
		return "", jsxerrors.NewConversionError(jsxerrors.StageMerge,
			fmt.Sprintf("custom classes of %s", m.Definition.ID()), err)
	}
	return merged, nil
}
