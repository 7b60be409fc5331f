package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/originslider/internal/config"
	"github.com/alexisbeaulieu97/originslider/internal/slider"
	"github.com/alexisbeaulieu97/originslider/internal/tui/sliderview"
	sliderrors "github.com/alexisbeaulieu97/originslider/pkg/errors"
)

const fallbackWidth = 80

type renderOptions struct {
	Min       float64
	Max       float64
	Default   float64
	Value     float64
	Width     int
	Increment float64
	Snap      bool
	Labels    bool
	Report    bool
	DragTo    float64
	Drag      bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one slider and its geometry",
		Long: `Lay out a single slider for a container width and print it.

With --drag the pointer is first moved to the given column of the track,
which exercises the same path as an interactive drag.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Drag = cmd.Flags().Changed("drag")
			log, closeLog, err := openLogger(flags, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			if err := validateRenderOptions(opts); err != nil {
				log.Error(err, "render rejected")
				return err
			}
			if opts.Width == 0 {
				opts.Width = terminalWidth(cmd.OutOrStdout())
			}
			log.WithFields(map[string]any{"width": opts.Width, "min": opts.Min, "max": opts.Max}).Debug("rendering slider")
			return renderSlider(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Float64Var(&opts.Min, "min", 0, "Lower bound of the range")
	cmd.Flags().Float64Var(&opts.Max, "max", 100, "Upper bound of the range")
	cmd.Flags().Float64Var(&opts.Default, "default", 0, "Origin of the tracking bar (clamped into the range)")
	cmd.Flags().Float64Var(&opts.Value, "value", 0, "Current value")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Container width in cells (defaults to the terminal width)")
	cmd.Flags().Float64Var(&opts.Increment, "increment", 0, "Step size")
	cmd.Flags().BoolVar(&opts.Snap, "snap", false, "Snap dragged values to the increment")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "Print min/default/max under the slider")
	cmd.Flags().BoolVar(&opts.Report, "report", true, "Print the geometry report")
	cmd.Flags().Float64Var(&opts.DragTo, "drag", 0, "Drag the thumb to this offset from the start of the track")

	return cmd
}

func validateRenderOptions(opts renderOptions) error {
	for name, v := range map[string]float64{"min": opts.Min, "max": opts.Max, "default": opts.Default, "value": opts.Value, "increment": opts.Increment, "drag": opts.DragTo} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return sliderrors.NewFlagError(name, "must be a finite number")
		}
	}
	if opts.Max < opts.Min {
		return sliderrors.NewFlagError("max", fmt.Sprintf("%g is below --min %g", opts.Max, opts.Min))
	}
	if opts.Width < 0 {
		return sliderrors.NewFlagError("width", "must not be negative")
	}
	if opts.Width > config.MaxWidth {
		return sliderrors.NewFlagError("width", fmt.Sprintf("%d exceeds the maximum of %d", opts.Width, config.MaxWidth))
	}
	if opts.Increment < 0 {
		return sliderrors.NewFlagError("increment", "must not be negative")
	}
	return nil
}

func terminalWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return min(w, config.MaxWidth)
		}
	}
	return fallbackWidth
}

func renderSlider(out io.Writer, opts renderOptions) error {
	s := slider.New(opts.Min, opts.Max, opts.Value).
		WithDefault(opts.Default).
		WithIncrement(opts.Increment).
		WithSnapping(opts.Snap)
	s.Resize(float64(opts.Width))

	if opts.Drag {
		s.DragTo(slider.SidePadding+opts.DragTo, slider.SidePadding)
	}

	view := sliderview.New("render", s).WithLabels(opts.Labels)
	if _, err := fmt.Fprintln(out, view.View()); err != nil {
		return err
	}
	if !opts.Report {
		return nil
	}

	desc := s.Layout()
	fmt.Fprintf(out, "value:          %g\n", s.Value())
	fmt.Fprintf(out, "default:        %g\n", s.Default())
	fmt.Fprintf(out, "drawable width: %g\n", desc.DrawableWidth)
	fmt.Fprintf(out, "default offset: %g\n", desc.DefaultOffset)
	fmt.Fprintf(out, "value offset:   %g\n", desc.ValueOffset)
	if desc.Tracking != nil {
		from := desc.Tracking.X - desc.SidePadding
		fmt.Fprintf(out, "tracking:       [%g, %g]\n", from, from+desc.Tracking.Width)
	} else {
		fmt.Fprintln(out, "tracking:       none")
	}
	if desc.Thumb != nil {
		fmt.Fprintf(out, "thumb offset:   %g\n", desc.Thumb.Offset)
	} else {
		fmt.Fprintln(out, "thumb:          none")
	}
	return nil
}
