package profiler

import (
	"github.com/D13ya/miniprofiler/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Option configures a Registry created with New.
type Option func(*options)

type options struct {
	logger logrus.Ext1FieldLogger
	clock  Clock
}

// WithLogger routes quote, report and warning lines to l instead of the
// standard logrus logger.
func WithLogger(l logrus.Ext1FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClock replaces the monotonic stopwatch. Reset restarts it.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: logger.New("miniprofiler"),
		clock:  StartStopwatch(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
