package profiler

var std = New()

// Default returns the process-wide registry used by the package-level functions.
func Default() *Registry {
	return std
}

func Reset(suspectTypes string) { std.Reset(suspectTypes) }

func Teardown() { std.Teardown() }

func Key() string { return std.Key() }

func StartTiming() { std.StartTiming() }

func StopTiming() error { return std.StopTiming() }

func Quote() { std.Quote() }

func Report() { std.Report() }

func Snapshot() []Summary { return std.Snapshot() }

// Start acquires a Guard on the default registry.
func Start() *Guard { return std.Start() }
