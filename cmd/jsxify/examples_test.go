package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExamplesVerify converts every examples/<name>/input.html with the
// built-in registry and compares it with the neighbouring expected.jsx.
func TestExamplesVerify(t *testing.T) {
	t.Parallel()

	dirs, err := filepath.Glob(filepath.Join("..", "..", "examples", "*"))
	require.NoError(t, err)
	require.NotEmpty(t, dirs)

	for _, dir := range dirs {
		dir := dir
		input := filepath.Join(dir, "input.html")
		if _, err := os.Stat(input); err != nil {
			continue
		}

		t.Run(filepath.Base(dir), func(t *testing.T) {
			t.Parallel()

			stdout, _, err := executeCommand(t, "", "verify", input, filepath.Join(dir, "expected.jsx"))
			require.NoError(t, err, stdout)
		})
	}
}
