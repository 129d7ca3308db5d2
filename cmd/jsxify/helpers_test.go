package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const cardRegistry = `version: "1.0"
name: cli-test
settings:
  indent: 4
components:
  - id: Card
    tag: div
    signature_classes: card
    variants:
      tone:
        muted: bg-muted
        loud: bg-primary
    default_variants:
      tone: muted
  - id: Spacer
    tag: hr
    data_attributes:
      data-slot: spacer
    self_closing: true
`

func executeCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := newRootCmd()
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
