package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/USA-RedDragon/greatcircle/pkg/greatcircle"
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Unit     greatcircle.Unit `json:"unit"`
	Formula  Formula          `json:"formula"`
	Output   Output           `json:"output"`
	LogLevel LogLevel         `json:"log_level" yaml:"log_level"`
	Metrics  Metrics          `json:"metrics"`
}

type Metrics struct {
	Enabled bool `json:"enabled"`
}

type Formula string

const (
	FormulaCosines   Formula = "cosines"
	FormulaHaversine Formula = "haversine"
)

type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

//nolint:golint,gochecknoglobals
var (
	ConfigFileKey     = "config"
	UnitKey           = "unit"
	FormulaKey        = "formula"
	OutputKey         = "output"
	LogLevelKey       = "log_level"
	MetricsEnabledKey = "metrics.enabled"
)

const (
	DefaultConfigPath = "config.yaml"
	DefaultUnit       = greatcircle.UnitMiles
	DefaultFormula    = FormulaCosines
	DefaultOutput     = OutputText
	DefaultLogLevel   = LogLevelInfo
)

// RegisterFlags adds the configuration flags to cmd as persistent flags so
// every subcommand shares them.
func RegisterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(ConfigFileKey, "c", DefaultConfigPath, "Config file path")
	cmd.PersistentFlags().String(UnitKey, string(DefaultUnit), "Distance unit (miles, kilometers, meters, nautical_miles)")
	cmd.PersistentFlags().String(FormulaKey, string(DefaultFormula), "Distance formula (cosines, haversine)")
	cmd.PersistentFlags().StringP(OutputKey, "o", string(DefaultOutput), "Output format (text, json, yaml)")
	cmd.PersistentFlags().String(LogLevelKey, string(DefaultLogLevel), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool(MetricsEnabledKey, false, "Write Prometheus metrics to stderr when done")
}

var (
	ErrInvalidUnit     = errors.New("Unit must be one of miles, kilometers, meters, nautical_miles")
	ErrInvalidFormula  = errors.New("Formula must be one of cosines, haversine")
	ErrInvalidOutput   = errors.New("Output must be one of text, json, yaml")
	ErrInvalidLogLevel = errors.New("Log level must be one of debug, info, warn, error")
)

func (c *Config) Validate() error {
	switch c.Unit {
	case greatcircle.UnitMiles, greatcircle.UnitKilometers, greatcircle.UnitMeters, greatcircle.UnitNauticalMiles:
	default:
		return ErrInvalidUnit
	}
	switch c.Formula {
	case FormulaCosines, FormulaHaversine:
	default:
		return ErrInvalidFormula
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return ErrInvalidOutput
	}
	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return ErrInvalidLogLevel
	}

	return nil
}

// SlogLevel maps the configured level onto log/slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig builds the configuration from, in increasing precedence, the
// defaults, the YAML config file, environment variables and flags.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	var config Config

	// Load flags from envs
	ctx, cancel := context.WithCancelCause(cmd.Context())
	defer cancel(nil)
	cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if ctx.Err() != nil {
			return
		}
		optName := strings.ReplaceAll(strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_"), ".", "__")
		if val, ok := os.LookupEnv(optName); !f.Changed && ok {
			if err := f.Value.Set(val); err != nil {
				cancel(err)
			}
			f.Changed = true
		}
	})
	if ctx.Err() != nil {
		return &config, fmt.Errorf("failed to load env: %w", context.Cause(ctx))
	}

	configPath, err := cmd.Flags().GetString(ConfigFileKey)
	if err != nil {
		return &config, fmt.Errorf("failed to get config path: %w", err)
	}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return &config, fmt.Errorf("failed to read config: %w", err)
		} else if err == nil {
			if err := yaml.Unmarshal(data, &config); err != nil {
				return &config, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	err = overrideFlags(&config, cmd)
	if err != nil {
		return &config, fmt.Errorf("failed to override flags: %w", err)
	}

	// Defaults
	if config.Unit == "" {
		config.Unit = DefaultUnit
	}
	if config.Formula == "" {
		config.Formula = DefaultFormula
	}
	if config.Output == "" {
		config.Output = DefaultOutput
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}

	// Accept the short unit spellings wherever the unit came from.
	if unit, err := greatcircle.ParseUnit(string(config.Unit)); err == nil {
		config.Unit = unit
	}

	return &config, nil
}

func overrideFlags(config *Config, cmd *cobra.Command) error {
	var err error
	if cmd.Flags().Changed(UnitKey) {
		unit, err := cmd.Flags().GetString(UnitKey)
		if err != nil {
			return fmt.Errorf("failed to get unit: %w", err)
		}
		config.Unit = greatcircle.Unit(strings.ToLower(unit))
	}

	if cmd.Flags().Changed(FormulaKey) {
		formula, err := cmd.Flags().GetString(FormulaKey)
		if err != nil {
			return fmt.Errorf("failed to get formula: %w", err)
		}
		config.Formula = Formula(strings.ToLower(formula))
	}

	if cmd.Flags().Changed(OutputKey) {
		output, err := cmd.Flags().GetString(OutputKey)
		if err != nil {
			return fmt.Errorf("failed to get output: %w", err)
		}
		config.Output = Output(strings.ToLower(output))
	}

	if cmd.Flags().Changed(LogLevelKey) {
		level, err := cmd.Flags().GetString(LogLevelKey)
		if err != nil {
			return fmt.Errorf("failed to get log level: %w", err)
		}
		config.LogLevel = LogLevel(strings.ToLower(level))
	}

	if cmd.Flags().Changed(MetricsEnabledKey) {
		config.Metrics.Enabled, err = cmd.Flags().GetBool(MetricsEnabledKey)
		if err != nil {
			return fmt.Errorf("failed to get metrics enabled: %w", err)
		}
	}

	return nil
}
