package solver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Defaults applied to zero-valued options.
const (
	DefaultMaxDepth = 50
	DefaultMaxTime  = 30 * time.Second
)

// Options configures a strategy instance.
type Options struct {
	// MaxDepth bounds the number of coarse moves DFS explores along one path.
	// Ignored by the other strategies.
	MaxDepth int

	// MaxTime is the wall-clock budget of a single Solve call.
	MaxTime time.Duration

	// PackedTable stores parent entries as sentinel-separated byte strings
	// instead of typed records, trading decode time for memory.
	PackedTable bool

	// Logger receives debug output about each search. Nil discards it.
	Logger *log.Logger
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		MaxTime:  DefaultMaxTime,
	}
}

// withDefaults fills zero fields.
func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxTime <= 0 {
		o.MaxTime = DefaultMaxTime
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}
