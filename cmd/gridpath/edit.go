package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/tui"
)

func newEditCmd(a *app) *cobra.Command {
	var (
		path  string
		size  int
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive board editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := editBoard(path, size)
			if err != nil {
				return err
			}
			cfg := tui.DefaultConfig()
			cfg.StepDelay = delay
			cfg.Logger = a.log
			cfg.Metrics = a.metrics

			_, err = tea.NewProgram(tui.New(g, cfg), tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&path, "scenario", "f", "", "start from this scenario file")
	cmd.Flags().IntVar(&size, "size", 20, "side of an empty board")
	cmd.Flags().DurationVar(&delay, "delay", tui.DefaultConfig().StepDelay, "pause after every search step")
	return cmd
}

func editBoard(path string, size int) (*grid.Grid, error) {
	if path == "" {
		return grid.New(size)
	}
	s, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	g, _, _, err := s.Build()
	return g, err
}
