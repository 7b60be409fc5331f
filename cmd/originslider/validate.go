package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/originslider/internal/config"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scene.yaml>",
		Short: "Check a scene file without opening it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := openLogger(flags, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			scene, err := config.ParseScene(args[0])
			if err != nil {
				log.Error(err, "scene rejected")
				return err
			}

			bindings := make(map[string]struct{}, len(scene.Sliders))
			for _, s := range scene.Sliders {
				bindings[s.BindName()] = struct{}{}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s is valid\n", args[0])
			fmt.Fprintf(out, "  sliders:  %d\n", len(scene.Sliders))
			fmt.Fprintf(out, "  bindings: %d\n", len(bindings))
			for _, s := range scene.Sliders {
				fmt.Fprintf(out, "  - %-12s [%g, %g] default %g bind %s\n", s.ID, s.Min, s.Max, s.Default, s.BindName())
			}
			return nil
		},
	}

	return cmd
}
