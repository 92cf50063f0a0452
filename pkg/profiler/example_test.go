package profiler_test

import (
	"time"

	"github.com/D13ya/miniprofiler/pkg/profiler"
)

type Indexer struct{}

func (ix *Indexer) Rebuild() {
	defer profiler.Start().Stop()
	time.Sleep(time.Millisecond)
}

func Example() {
	profiler.Reset("Indexer")
	defer profiler.Teardown()

	ix := &Indexer{}
	for i := 0; i < 3; i++ {
		ix.Rebuild()
	}

	// Logs "Mini Profiler: Indexer.Rebuild * 3 = ..." at trace level in dev builds.
	profiler.Report()
}
