package batch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/rnashape/ted"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("batch: invalid option supplied")

// Option configures a batch run.
type Option func(*Options)

// Options holds the run parameters. An invalid Option is recorded and
// surfaced as ErrOptionViolation when the run starts.
type Options struct {
	Workers int
	Costs   ted.Costs
	Metrics *Metrics
	Logger  *slog.Logger

	err error
}

// DefaultOptions returns one worker per CPU, unit costs, no metrics and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Costs:   ted.UnitCosts(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers bounds the number of concurrent tasks; n must be >= 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers=%d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithCosts sets the edit costs.
func WithCosts(c ted.Costs) Option {
	return func(o *Options) { o.Costs = c }
}

// WithMetrics records run statistics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithLogger sets the run logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func gather(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
