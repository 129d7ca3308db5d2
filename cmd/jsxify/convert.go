package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type convertOptions struct {
	conversionFlags
	output string
}

func newConvertCmd(root *rootFlags) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert HTML markup to JSX",
		Long: `Convert reads HTML from a file (or stdin when no file is given), replaces
elements recognised by the component registry with their components and
writes the resulting JSX to stdout or --output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, root, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write JSX to this file instead of stdout")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, root *rootFlags, opts *convertOptions) error {
	source, name, err := readInput(cmd, args)
	if err != nil {
		suggestion := "Check the input path and permissions."
		if errors.Is(err, errInteractiveStdin) {
			suggestion = "Pass an HTML file or pipe markup into jsxify convert."
		}
		return newCommandError("convert", "reading input", err, suggestion)
	}

	converter, _, err := newConverter(cmd, "convert", &opts.conversionFlags, root.log)
	if err != nil {
		return err
	}

	report, err := converter.ConvertReport(source)
	if err != nil {
		return newCommandError("convert", "converting "+name, err, "")
	}

	root.log.WithFields(map[string]any{
		"input":    name,
		"elements": report.Elements,
		"matched":  report.Matched(),
	}).Info("conversion complete")

	out := report.Output + "\n"
	if opts.output == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return newCommandError("convert", "writing output", err, "Ensure the output directory exists and is writable.")
	}
	return nil
}
