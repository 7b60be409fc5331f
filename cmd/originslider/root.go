package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose  bool
	logLevel string
	logFile  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "originslider",
		Short:         "Sliders whose origin can sit anywhere in their range",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, show the built-in scene.
			if len(args) == 0 {
				return runDemo(cmd, flags, demoOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
