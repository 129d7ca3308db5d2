package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/jsxify/internal/tui"
)

// previewRunner runs the previewer program; tests replace it to avoid a
// terminal.
var previewRunner = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &conversionFlags{}

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Browse the JSX produced for a file in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, name, err := readInput(cmd, args)
			if err != nil {
				return newCommandError("preview", "reading input", err, "Check the input path and permissions.")
			}

			converter, _, err := newConverter(cmd, "preview", opts, root.log)
			if err != nil {
				return err
			}

			report, err := converter.ConvertReport(source)
			if err != nil {
				return newCommandError("preview", "converting "+name, err, "")
			}

			root.log.WithFields(map[string]any{"input": name}).Info("launching preview")
			if err := previewRunner(tui.NewModel(name, source, report)); err != nil {
				return fmt.Errorf("failed to run preview: %w", err)
			}
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}
