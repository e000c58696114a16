package index

import (
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Options configures an Index.
type Options struct {
	// MinChildren and MaxChildren bound the fan-out of R-tree nodes.
	// MaxChildren must be at least twice MinChildren.
	MinChildren int `envconfig:"MIN_CHILDREN" default:"25"`
	MaxChildren int `envconfig:"MAX_CHILDREN" default:"50"`

	// PointTolerance pads boxes and query points in the tree so that
	// zero-width boxes can be stored (scaled up for large coordinates).
	// Results are always filtered against the exact geometry, so it only
	// affects candidate selection.
	PointTolerance float64 `envconfig:"POINT_TOLERANCE" default:"1e-9"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// Logger receives insert/delete events. Nil disables logging.
	Logger *zap.Logger `ignored:"true"`
}

// DefaultOptions returns the options used by most callers.
func DefaultOptions() Options {
	return Options{
		MinChildren:    25,
		MaxChildren:    50,
		PointTolerance: 1e-9,
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

// LoadOptions reads options from the environment, e.g. PREFIX_MIN_CHILDREN,
// and builds a logger from PREFIX_LOG_LEVEL and PREFIX_LOG_FORMAT.
// Unset variables keep their defaults.
func LoadOptions(prefix string) (Options, error) {
	var opts Options
	if err := envconfig.Process(prefix, &opts); err != nil {
		return Options{}, fmt.Errorf("loading index options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	logger, err := NewLogger(opts.LogLevel, opts.LogFormat)
	if err != nil {
		return Options{}, err
	}
	opts.Logger = logger
	return opts, nil
}

// Validate checks the tree parameters.
func (o Options) Validate() error {
	if o.MinChildren < 1 {
		return fmt.Errorf("%w: min children must be >= 1, got %d", ErrInvalidOptions, o.MinChildren)
	}
	if o.MaxChildren < 2*o.MinChildren {
		return fmt.Errorf("%w: max children %d must be >= 2 * min children %d",
			ErrInvalidOptions, o.MaxChildren, o.MinChildren)
	}
	if !(o.PointTolerance > 0) || math.IsInf(o.PointTolerance, 0) {
		return fmt.Errorf("%w: point tolerance must be positive and finite, got %g",
			ErrInvalidOptions, o.PointTolerance)
	}
	return nil
}
