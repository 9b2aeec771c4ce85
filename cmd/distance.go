package cmd

import (
	"fmt"
	"io"

	"github.com/USA-RedDragon/greatcircle/internal/config"
	"github.com/USA-RedDragon/greatcircle/pkg/greatcircle"
	"github.com/spf13/cobra"
)

type distanceResult struct {
	From     greatcircle.Point `json:"from" yaml:"from"`
	To       greatcircle.Point `json:"to" yaml:"to"`
	Distance float64           `json:"distance" yaml:"distance"`
	Unit     greatcircle.Unit  `json:"unit" yaml:"unit"`
	Formula  config.Formula    `json:"formula" yaml:"formula"`
}

func newDistanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Great-circle distance between two points",
		Args:  cobra.NoArgs,
		RunE:  runDistance,
	}
	registerPointFlags(cmd)
	return cmd
}

func runDistance(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	var miles float64
	switch s.config.Formula {
	case config.FormulaHaversine:
		miles = greatcircle.Haversine(s.from.Lat, s.from.Lon, s.to.Lat, s.to.Lon)
	default:
		miles = greatcircle.Distance(s.from.Lat, s.from.Lon, s.to.Lat, s.to.Lon)
	}
	s.metrics.IncrementComputations("distance")

	result := distanceResult{
		From:     s.from,
		To:       s.to,
		Distance: s.config.Unit.Scale(miles),
		Unit:     s.config.Unit,
		Formula:  s.config.Formula,
	}
	s.logger.Debug("Computed distance", "from", s.from.String(), "to", s.to.String(), "miles", miles)

	return s.finish(cmd, result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%.6f %s\n", result.Distance, result.Unit.Abbrev())
		return err
	})
}
