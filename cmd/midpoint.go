package cmd

import (
	"fmt"
	"io"

	"github.com/USA-RedDragon/greatcircle/pkg/greatcircle"
	"github.com/spf13/cobra"
)

type midpointResult struct {
	From          greatcircle.Point `json:"from" yaml:"from"`
	To            greatcircle.Point `json:"to" yaml:"to"`
	Midpoint      greatcircle.Point `json:"midpoint" yaml:"midpoint"`
	Azimuth       float64           `json:"azimuth" yaml:"azimuth"`
	InitialCourse float64           `json:"initial_course" yaml:"initial_course"`
	Degenerate    string            `json:"degenerate,omitempty" yaml:"degenerate,omitempty"`
}

func newMidpointCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "midpoint",
		Short: "Midpoint and azimuth of the great-circle arc between two points",
		Args:  cobra.NoArgs,
		RunE:  runMidpoint,
	}
	registerPointFlags(cmd)
	return cmd
}

func runMidpoint(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	arc := greatcircle.Solve(s.from, s.to)
	s.metrics.IncrementComputations("midpoint")

	result := midpointResult{
		From:          s.from,
		To:            s.to,
		Midpoint:      arc.Midpoint,
		Azimuth:       arc.MidpointAzimuth,
		InitialCourse: arc.InitialCourse,
	}

	if kind := greatcircle.Degenerate(s.from, s.to); kind != greatcircle.DegenerateNone {
		s.logger.Warn("Points do not define a unique great circle, azimuths are arbitrary", "kind", kind.String())
		s.metrics.IncrementDegenerate(kind.String())
		result.Degenerate = kind.String()
	}

	return s.finish(cmd, result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%.8f,%.8f azimuth=%.8f\n", result.Midpoint.Lat, result.Midpoint.Lon, result.Azimuth)
		return err
	})
}
