package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/jsxify/internal/logger"
)

type rootFlags struct {
	verbose bool
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "jsxify",
		Short:         "jsxify rewrites HTML markup as JSX using a component registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if flags.verbose {
				level = "debug"
			}

			log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			flags.log = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newConvertCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newComponentsCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
