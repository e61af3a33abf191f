package recordsnap

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"go.uber.org/atomic"
)

// Recorder is a slog.Handler that snapshots every record it receives
// and optionally forwards the record to a next handler. It is the
// interception point: install it as a logger's handler (or wrap an
// existing one) and read the captured snapshots back with Snapshots.
//
// Capturing can be toggled at runtime with Enable/Disable; forwarding
// is unaffected by the toggle. Recorder is safe for concurrent use.
type Recorder struct {
	state  *recorderState
	next   slog.Handler
	attrs  []slog.Attr
	groups []string
}

// recorderState is shared across the handler copies WithAttrs and
// WithGroup return, so every derived handler feeds one buffer.
type recorderState struct {
	mu       sync.Mutex
	snaps    []Snapshot
	enabled  atomic.Bool
	captured atomic.Int64
}

// NewRecorder returns a capturing Recorder. next may be nil for a
// capture-only sink.
func NewRecorder(next slog.Handler) *Recorder {
	r := &Recorder{state: &recorderState{}, next: next}
	r.state.enabled.Store(true)
	return r
}

// Enabled reports whether the record would be captured or forwarded.
func (r *Recorder) Enabled(ctx context.Context, level slog.Level) bool {
	if r.state.enabled.Load() {
		return true
	}
	return r.next != nil && r.next.Enabled(ctx, level)
}

// Handle snapshots the record and forwards it to the next handler.
// The snapshot is taken from a clone so pre-bound attrs can be applied
// without mutating the record the next handler sees.
func (r *Recorder) Handle(ctx context.Context, rec slog.Record) error {
	if r.state.enabled.Load() {
		clone := rec.Clone()
		if len(r.attrs) > 0 {
			clone.AddAttrs(r.attrs...)
		}
		snap := FromRecord(clone)

		r.state.mu.Lock()
		r.state.snaps = append(r.state.snaps, snap)
		r.state.mu.Unlock()
		r.state.captured.Inc()
	}

	if r.next != nil && r.next.Enabled(ctx, rec.Level) {
		return r.next.Handle(ctx, rec)
	}
	return nil
}

// WithAttrs returns a Recorder whose captured snapshots see the given
// attrs (group-qualified), sharing this Recorder's buffer.
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return r
	}
	nr := *r
	nr.attrs = append(r.attrs[:len(r.attrs):len(r.attrs)], qualifyAttrs(r.groups, attrs)...)
	if r.next != nil {
		nr.next = r.next.WithAttrs(attrs)
	}
	return &nr
}

// WithGroup returns a Recorder that qualifies subsequent attrs with
// the group name, sharing this Recorder's buffer. A target attribute
// bound inside a group intentionally no longer resolves as the target.
func (r *Recorder) WithGroup(name string) slog.Handler {
	if name == emptyString {
		return r
	}
	nr := *r
	nr.groups = append(r.groups[:len(r.groups):len(r.groups)], name)
	if r.next != nil {
		nr.next = r.next.WithGroup(name)
	}
	return &nr
}

// Snapshots returns a copy of the captured snapshots in arrival order.
func (r *Recorder) Snapshots() []Snapshot {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]Snapshot, len(r.state.snaps))
	copy(out, r.state.snaps)
	return out
}

// Reset discards the captured snapshots. The captured counter keeps
// counting across resets.
func (r *Recorder) Reset() {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.snaps = nil
}

// Captured returns the total number of records captured so far.
func (r *Recorder) Captured() int64 {
	return r.state.captured.Load()
}

// Enable resumes capturing.
func (r *Recorder) Enable() { r.state.enabled.Store(true) }

// Disable pauses capturing; forwarding continues.
func (r *Recorder) Disable() { r.state.enabled.Store(false) }

// Capturing reports whether records are currently being captured.
func (r *Recorder) Capturing() bool { return r.state.enabled.Load() }

func qualifyAttrs(groups []string, attrs []slog.Attr) []slog.Attr {
	if len(groups) == 0 {
		return attrs
	}
	prefix := strings.Join(groups, ".") + "."
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}
	return out
}
