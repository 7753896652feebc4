package runtime

import (
	"io"
	"log/slog"
)

// Options configures the evaluators created for a task.
type Options struct {
	// Logger receives debug events from evaluator construction and
	// evaluation. Default: discards everything.
	Logger *slog.Logger

	// ValidateArguments runs xdm.Validate over every argument before an
	// evaluator reads it. Malformed regions then fail with SYSE0001 instead
	// of being read out of bounds. Default: true
	ValidateArguments bool
}

// DefaultOptions returns the default evaluator options.
func DefaultOptions() *Options {
	return &Options{
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		ValidateArguments: true,
	}
}

// TaskContext is the per-partition context handed to factories.
type TaskContext struct {
	Partition int
	Options   *Options
	Logger    *slog.Logger
}

// NewTaskContext returns a context for partition. nil opts uses DefaultOptions.
func NewTaskContext(partition int, opts *Options) *TaskContext {
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = DefaultOptions().Logger
	}
	return &TaskContext{
		Partition: partition,
		Options:   opts,
		Logger:    logger.With("partition", partition),
	}
}
