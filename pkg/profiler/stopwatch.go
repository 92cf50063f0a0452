package profiler

import "time"

// Clock is the monotonic elapsed-time source a Registry measures with.
type Clock interface {
	Restart()
	Elapsed() time.Duration
}

// Stopwatch is a Clock backed by the runtime's monotonic clock.
type Stopwatch struct {
	start time.Time
}

func StartStopwatch() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

func (s *Stopwatch) Restart() {
	s.start = time.Now()
}

func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}
