// Package recordsnap mirrors transient slog records into owned,
// serializable snapshot values and replays them into log sinks.
//
// A slog.Record handed to a Handler is only valid for the duration of
// that Handle call; it also carries a program counter instead of plain
// source-location data, so it cannot be marshaled as-is. FromRecord
// collapses a record into a Snapshot: six owned scalar fields (level,
// message, target, module path, file, line) with no reference back to
// the record. Snapshots are immutable, comparable with ==, usable as
// map keys, and round-trip through JSON.
//
// The reverse path never hands out a storable record. Replay invokes a
// consumer callback with a freshly built record, Emit hands one
// directly to a slog.Handler, and EmitZerolog replays a snapshot into
// a zerolog logger. An unrecognized severity label degrades silently
// to WARN on replay; use ParseSeverity or Snapshot.Validate when
// strict checking is needed.
//
// Typical usage
//
//	rec := recordsnap.NewRecorder(next)
//	logger := slog.New(rec)
//	logger.Info("processed", "target", "worker")
//
//	for _, snap := range rec.Snapshots() {
//		recordsnap.EmitZerolog(&zl, snap)
//	}
package recordsnap
