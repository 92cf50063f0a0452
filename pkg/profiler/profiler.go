// Package profiler is a debug-only call-stack profiler. It attributes elapsed
// time between paired start/stop events to a key derived from the calling
// method and reports per-key aggregates as trace lines.
//
// The profiler is compiled in only with the "dev" build tag:
//
//	go build -tags=dev
//
// Without the tag every operation is an empty function the compiler inlines
// away, so instrumentation can stay in the code.
//
// Typical use:
//
//	profiler.Reset("Indexer,Fetcher")
//
//	func (f *Fetcher) Fetch() {
//		defer profiler.Start().Stop()
//		...
//	}
//
//	profiler.Report()
package profiler

import (
	"time"

	"github.com/pkg/errors"
)

// UnknownKey collects measurements taken outside any suspect type.
const UnknownKey = "Unknown"

var (
	// ErrNotConfigured is the panic value (wrapped) when timing is used before Reset.
	ErrNotConfigured = errors.New("profiler: not configured, call Reset first")
	// ErrUnbalancedStop is returned when a stop has no matching start.
	ErrUnbalancedStop = errors.New("profiler: stop without matching start")
)

// Summary is the aggregate recorded for one profile key.
type Summary struct {
	Key string
	// Measurements are the completed intervals in stop order.
	Measurements []time.Duration
	// Pending is the number of starts not yet stopped.
	Pending int
}

// Count returns the number of completed intervals.
func (s Summary) Count() int {
	return len(s.Measurements)
}

// Total returns the sum of all completed intervals.
func (s Summary) Total() time.Duration {
	var total time.Duration
	for _, m := range s.Measurements {
		total += m
	}
	return total
}
