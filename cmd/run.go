package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/USA-RedDragon/greatcircle/internal/config"
	"github.com/USA-RedDragon/greatcircle/internal/metrics"
	"github.com/USA-RedDragon/greatcircle/pkg/greatcircle"
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	fromKey = "from"
	toKey   = "to"
)

var ErrInvalidPoint = errors.New("Point must be given as LAT,LON")

// session is the per-invocation state shared by the subcommands.
type session struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	from    greatcircle.Point
	to      greatcircle.Point
}

func registerPointFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Slice(fromKey, nil, "Start point as LAT,LON in decimal degrees")
	cmd.Flags().Float64Slice(toKey, nil, "End point as LAT,LON in decimal degrees")
	for _, key := range []string{fromKey, toKey} {
		// Only fails if the flag above was not registered.
		if err := cmd.MarkFlagRequired(key); err != nil {
			panic(fmt.Errorf("failed to mark --%s required: %w", key, err))
		}
	}
}

func newSession(cmd *cobra.Command) (*session, error) {
	config, err := config.LoadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: config.SlogLevel()}))
	logger.Debug("greatcircle", "version", cmd.Root().Annotations["version"], "commit", cmd.Root().Annotations["commit"])

	s := &session{
		config:  config,
		logger:  logger,
		metrics: metrics.NewMetrics(),
	}

	s.from, err = s.point(cmd, fromKey)
	if err != nil {
		return nil, err
	}
	s.to, err = s.point(cmd, toKey)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *session) point(cmd *cobra.Command, key string) (greatcircle.Point, error) {
	values, err := cmd.Flags().GetFloat64Slice(key)
	if err != nil {
		return greatcircle.Point{}, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if len(values) != 2 {
		return greatcircle.Point{}, fmt.Errorf("--%s: %w", key, ErrInvalidPoint)
	}

	p := greatcircle.Point{Lat: values[0], Lon: values[1]}
	if !p.Valid() {
		s.logger.Warn("Point is outside the valid range, computing anyway", "flag", key, "point", p.String())
		s.metrics.IncrementInvalidPoints()
	}
	return p, nil
}

// finish writes the result in the configured format and, if enabled, the
// collected metrics.
func (s *session) finish(cmd *cobra.Command, result any, text func(w io.Writer) error) error {
	out := cmd.OutOrStdout()

	var err error
	switch s.config.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(result)
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		err = enc.Encode(result)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = text(out)
	}
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if s.config.Metrics.Enabled {
		if err := s.metrics.WriteText(cmd.ErrOrStderr()); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
