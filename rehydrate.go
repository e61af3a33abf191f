package recordsnap

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Replay rebuilds a transient record from the snapshot and hands it to
// the consumer synchronously. The record exists only for the duration
// of the callback; consumers that need it longer must Clone it. This
// is the only shape the reverse path comes in, so a rehydrated record
// can never be stored by accident.
//
// The record's timestamp is the replay time; snapshots do not carry
// one. An unrecognized severity label replays at FallbackSeverity.
func Replay(snap Snapshot, consume func(slog.Record)) {
	if consume == nil {
		return
	}
	consume(newRecord(snap))
}

// Emit rebuilds a record from the snapshot and hands it directly to
// the handler. Records below the handler's enabled level are dropped
// without building attrs. The only error is the handler's own.
func Emit(ctx context.Context, h slog.Handler, snap Snapshot) error {
	if h == nil {
		return nil
	}
	level := snap.Severity().Slog()
	if !h.Enabled(ctx, level) {
		return nil
	}
	return h.Handle(ctx, newRecord(snap))
}

// EmitZerolog replays the snapshot into a zerolog logger using
// zerolog's canonical field names: the module path under "module" and
// the source location under the caller field as "file:line". Events
// below the logger's level are discarded by zerolog itself.
func EmitZerolog(logger *zerolog.Logger, snap Snapshot) {
	if logger == nil {
		return
	}
	ev := logger.WithLevel(snap.Severity().Zerolog())
	if snap.target != emptyString {
		ev = ev.Str(TargetKey, snap.target)
	}
	if snap.modulePath != emptyString {
		ev = ev.Str(moduleFieldName, snap.modulePath)
	}
	if snap.file != emptyString {
		caller := snap.file
		if snap.line > 0 {
			caller += ":" + strconv.Itoa(snap.line)
		}
		ev = ev.Str(zerolog.CallerFieldName, caller)
	}
	ev.Msg(snap.message)
}

// newRecord builds the transient record for the reverse path. The
// snapshot's source location travels as a "source" attr (a PC cannot
// be fabricated) and FromRecord resolves it back, so replayed records
// re-snapshot to an equal value.
func newRecord(snap Snapshot) slog.Record {
	rec := slog.NewRecord(time.Now(), snap.Severity().Slog(), snap.message, 0)
	attrs := make([]slog.Attr, 0, 2)
	if snap.target != emptyString {
		attrs = append(attrs, slog.String(TargetKey, snap.target))
	}
	if snap.modulePath != emptyString || snap.file != emptyString || snap.line != 0 {
		attrs = append(attrs, slog.Any(slog.SourceKey, &slog.Source{
			Function: snap.modulePath,
			File:     snap.file,
			Line:     snap.line,
		}))
	}
	rec.AddAttrs(attrs...)
	return rec
}
