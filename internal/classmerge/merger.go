// Package classmerge resolves conflicting utility classes. The conflict rules
// live in the underlying merger; this package only adapts it to an
// error-returning interface and adds caching.
package classmerge

import (
	"fmt"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Merger turns a space-separated class list into its canonical,
// conflict-resolved form.
type Merger interface {
	Merge(classes string) (string, error)
}

// Func adapts a plain function to Merger.
type Func func(classes string) (string, error)

// Merge calls f.
func (f Func) Merge(classes string) (string, error) {
	return f(classes)
}

// Tailwind merges Tailwind CSS utilities: the later of two conflicting
// utilities wins and duplicates collapse. Surviving tokens keep source order.
type Tailwind struct {
	merge func(args ...string) string
}

// NewTailwind returns a merger backed by tailwind-merge-go's default config.
func NewTailwind() *Tailwind {
	return &Tailwind{merge: twmerge.Merge}
}

// Merge implements Merger. A panic inside the merger is reported as an error
// so a bad class string fails the conversion instead of the process.
func (t *Tailwind) Merge(classes string) (merged string, err error) {
	if strings.TrimSpace(classes) == "" {
		return "", nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tailwind merge %q: %v", classes, r)
		}
	}()

	return inSourceOrder(classes, t.merge(classes)), nil
}

// inSourceOrder re-emits the tokens kept by merged in the order they appear in
// source, each at its last occurrence. The underlying merger builds its result
// from a map, so its own ordering differs between processes.
func inSourceOrder(source, merged string) string {
	kept := make(map[string]struct{})
	for _, token := range strings.Fields(merged) {
		kept[token] = struct{}{}
	}

	tokens := strings.Fields(source)
	last := make(map[string]int, len(tokens))
	for i, token := range tokens {
		last[token] = i
	}

	out := make([]string, 0, len(kept))
	for i, token := range tokens {
		if _, ok := kept[token]; !ok || last[token] != i {
			continue
		}
		out = append(out, token)
	}
	return strings.Join(out, " ")
}

// Verbatim collapses whitespace and drops duplicate tokens without resolving
// conflicts. It is used when conflict resolution is switched off.
var Verbatim = Func(func(classes string) (string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, token := range strings.Fields(classes) {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return strings.Join(out, " "), nil
})
