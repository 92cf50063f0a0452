//go:build dev
// +build dev

package profiler

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Enabled is true in builds made with the "dev" tag.
const Enabled = true

type entry struct {
	startTimes   []time.Duration
	measurements []time.Duration
}

// Registry attributes elapsed time to caller-derived keys and aggregates
// repeated measurements per key. A Registry is unusable until Reset.
type Registry struct {
	mu  sync.Mutex
	log logrus.Ext1FieldLogger

	clock    Clock
	suspects map[string]struct{} // nil until Reset
	journal  map[string]*entry
}

// New returns an unconfigured registry.
func New(opts ...Option) *Registry {
	o := buildOptions(opts)
	return &Registry{
		log:     o.logger,
		clock:   o.clock,
		journal: make(map[string]*entry),
	}
}

// Reset restarts the clock, replaces the suspect types with the parsed
// comma-separated list and drops every recorded entry.
func (r *Registry) Reset(suspectTypes string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clock.Restart()
	r.suspects = parseSuspectTypes(suspectTypes)
	r.journal = make(map[string]*entry)
}

// Teardown returns the registry to its unconfigured state.
func (r *Registry) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.suspects = nil
	r.journal = make(map[string]*entry)
}

// SuspectTypes returns the configured type names in sorted order.
func (r *Registry) SuspectTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.suspects == nil {
		return nil
	}
	return sortedNames(r.suspects)
}

// Key returns the profile key for the calling frame.
func (r *Registry) Key() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mustBeConfigured("derive key")
	return deriveKey(r.suspects)
}

// StartTiming pushes the current elapsed time onto the caller's key.
func (r *Registry) StartTiming() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mustBeConfigured("start timing")
	r.start(deriveKey(r.suspects))
}

// StopTiming pops the most recent start of the caller's key and records the
// interval. It is a no-op while nothing has been started since Reset. A stop
// with no matching start changes nothing, logs a warning and returns an error
// wrapping ErrUnbalancedStop.
func (r *Registry) StopTiming() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mustBeConfigured("stop timing")
	now := r.clock.Elapsed()
	return r.stop(deriveKey(r.suspects), now)
}

// Quote logs the caller's key with the current elapsed time.
func (r *Registry) Quote() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mustBeConfigured("quote")
	r.log.Tracef("Mini Profiler: %s: %d", deriveKey(r.suspects), r.clock.Elapsed().Milliseconds())
}

// Report logs one line per key with its measurement count and total.
func (r *Registry) Report() {
	for _, s := range r.Snapshot() {
		r.log.Tracef("Mini Profiler: %s * %d = %d", s.Key, s.Count(), s.Total().Milliseconds())
	}
}

// Snapshot returns a copy of every entry, sorted by key.
func (r *Registry) Snapshot() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.journal))
	for key := range r.journal {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Summary, 0, len(keys))
	for _, key := range keys {
		e := r.journal[key]
		out = append(out, Summary{
			Key:          key,
			Measurements: append([]time.Duration(nil), e.measurements...),
			Pending:      len(e.startTimes),
		})
	}
	return out
}

// Start begins timing the caller's key and returns a Guard that stops it.
//
//	defer profiler.Start().Stop()
func (r *Registry) Start() *Guard {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mustBeConfigured("start guard")
	key := deriveKey(r.suspects)
	r.start(key)
	return &Guard{registry: r, key: key}
}

func (r *Registry) mustBeConfigured(op string) {
	if r.suspects == nil {
		panic(errors.Wrap(ErrNotConfigured, op))
	}
}

func (r *Registry) start(key string) {
	e, ok := r.journal[key]
	if !ok {
		e = &entry{}
		r.journal[key] = e
	}
	e.startTimes = append(e.startTimes, r.clock.Elapsed())
}

func (r *Registry) stop(key string, now time.Duration) error {
	if len(r.journal) == 0 {
		return nil
	}
	e, ok := r.journal[key]
	if !ok || len(e.startTimes) == 0 {
		r.log.WithField("key", key).Warn("Mini Profiler: stop without matching start")
		return errors.Wrapf(ErrUnbalancedStop, "key %s", key)
	}

	last := len(e.startTimes) - 1
	started := e.startTimes[last]
	e.startTimes = e.startTimes[:last]
	e.measurements = append(e.measurements, now-started)
	return nil
}

// Guard brackets a scope with a start and exactly one stop. The key is fixed
// when the guard is acquired.
type Guard struct {
	registry *Registry
	key      string
	once     sync.Once
}

// Stop records the interval. Calls after the first do nothing.
func (g *Guard) Stop() {
	g.once.Do(func() {
		r := g.registry
		r.mu.Lock()
		defer r.mu.Unlock()

		// Teardown since acquisition leaves nothing to stop.
		if r.suspects == nil {
			return
		}
		// stop already logs an unbalanced release.
		_ = r.stop(g.key, r.clock.Elapsed())
	})
}
