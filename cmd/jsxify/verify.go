package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/jsxify/pkg/diff"
)

func newVerifyCmd(root *rootFlags) *cobra.Command {
	opts := &conversionFlags{}

	cmd := &cobra.Command{
		Use:   "verify <input> <expected>",
		Short: "Check that converting input produces the expected JSX",
		Long: `Verify converts the input markup and compares the result with the expected
JSX file. Differences are printed as a unified diff and the command fails.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args[0], args[1], root, opts)
		},
	}

	opts.register(cmd)

	return cmd
}

func runVerify(cmd *cobra.Command, inputPath, expectedPath string, root *rootFlags, opts *conversionFlags) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return newCommandError("verify", "reading input", err, "Check the input path and permissions.")
	}
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return newCommandError("verify", "reading expected output", err, "Check the expected file path and permissions.")
	}

	converter, _, err := newConverter(cmd, "verify", opts, root.log)
	if err != nil {
		return err
	}

	actual, err := converter.Convert(string(source))
	if err != nil {
		return newCommandError("verify", "converting "+inputPath, err, "")
	}

	patch, stats := diff.Compare(expected, []byte(actual), expectedPath, inputPath+" (converted)")
	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s matches %s\n", inputPath, expectedPath)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), patch)
	root.log.WithFields(map[string]any{
		"expected": expectedPath,
		"added":    stats.Added,
		"removed":  stats.Removed,
	}).Debug("verification mismatch")

	return fmt.Errorf("converted %s differs from %s (%s)", inputPath, expectedPath, stats)
}
