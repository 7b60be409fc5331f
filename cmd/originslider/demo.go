package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/originslider/internal/config"
	"github.com/alexisbeaulieu97/originslider/internal/tui/demo"
)

type demoOptions struct {
	ScenePath string
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Drag sliders interactively",
		Long:  `Open an interactive scene. Without --config the built-in scene is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ScenePath, "config", "c", "", "Scene file (YAML)")

	return cmd
}

func loadScene(path string) (*config.Scene, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.ParseScene(path)
}

func runDemo(cmd *cobra.Command, flags *rootFlags, opts demoOptions) error {
	log, closeLog, err := openLogger(flags, true, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	scene, err := loadScene(opts.ScenePath)
	if err != nil {
		log.Error(err, "scene rejected")
		return err
	}

	zones := zone.New()
	defer zones.Close()

	model, err := demo.New(scene, demo.WithZones(zones), demo.WithLogger(log))
	if err != nil {
		return err
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := program.Run(); err != nil {
		log.Error(err, "demo exited with error")
		return fmt.Errorf("run demo: %w", err)
	}
	log.Info("demo finished")
	return nil
}
