package profiler

import (
	"testing"
	"time"
)

func TestStopwatchElapsedGrows(t *testing.T) {
	sw := StartStopwatch()
	first := sw.Elapsed()
	time.Sleep(2 * time.Millisecond)
	second := sw.Elapsed()
	if second < first || second < 2*time.Millisecond {
		t.Errorf("elapsed did not advance: first=%v second=%v", first, second)
	}
}

func TestStopwatchRestart(t *testing.T) {
	sw := StartStopwatch()
	time.Sleep(5 * time.Millisecond)
	before := sw.Elapsed()
	sw.Restart()
	if after := sw.Elapsed(); after >= before {
		t.Errorf("restart should rewind: before=%v after=%v", before, after)
	}
}
