package recordsnap

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// levelGateHandler collects records above a minimum level; just enough
// handler to observe what Emit hands over.
type levelGateHandler struct {
	min  slog.Level
	recs []slog.Record
}

func (h *levelGateHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.min }

func (h *levelGateHandler) Handle(_ context.Context, rec slog.Record) error {
	h.recs = append(h.recs, rec.Clone())
	return nil
}

func (h *levelGateHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *levelGateHandler) WithGroup(string) slog.Handler      { return h }

func TestReplay(t *testing.T) {
	t.Run("round trip preserves every field", func(t *testing.T) {
		for _, snap := range []Snapshot{
			New(SeverityInfo, "hello", "worker", "example.com/pkg", "run.go", 7),
			New(SeverityTrace, "deep", "worker", emptyString, emptyString, 0),
			New(SeverityError, "boom", emptyString, emptyString, "run.go", 0),
		} {
			var again Snapshot
			Replay(snap, func(rec slog.Record) {
				again = FromRecord(rec)
			})
			assert.Equal(t, snap, again)
		}
	})

	t.Run("record carries the snapshot's level and message", func(t *testing.T) {
		snap := New(SeverityDebug, "hello", "worker", emptyString, emptyString, 0)
		called := false
		Replay(snap, func(rec slog.Record) {
			called = true
			assert.Equal(t, slog.LevelDebug, rec.Level)
			assert.Equal(t, "hello", rec.Message)
		})
		assert.True(t, called)
	})

	t.Run("nil consumer is a no-op", func(t *testing.T) {
		Replay(New(SeverityInfo, "hello", "worker", emptyString, emptyString, 0), nil)
	})
}

func TestEmit(t *testing.T) {
	t.Run("hands the record to the handler", func(t *testing.T) {
		h := &levelGateHandler{min: slog.LevelDebug}
		snap := New(SeverityInfo, "hello", "worker", emptyString, emptyString, 0)

		require.NoError(t, Emit(context.Background(), h, snap))
		require.Len(t, h.recs, 1)
		assert.Equal(t, snap, FromRecord(h.recs[0]))
	})

	t.Run("respects the handler's enabled level", func(t *testing.T) {
		h := &levelGateHandler{min: slog.LevelError}
		snap := New(SeverityInfo, "hello", "worker", emptyString, emptyString, 0)

		require.NoError(t, Emit(context.Background(), h, snap))
		assert.Empty(t, h.recs)
	})

	t.Run("nil handler is a no-op", func(t *testing.T) {
		require.NoError(t, Emit(context.Background(), nil, New(SeverityInfo, "x", "y", emptyString, emptyString, 0)))
	})
}

func TestEmitZerolog(t *testing.T) {
	decode := func(t *testing.T, buf *bytes.Buffer) map[string]any {
		t.Helper()
		var entry map[string]any
		require.NoError(t, json.NewDecoder(buf).Decode(&entry))
		return entry
	}

	t.Run("full snapshot", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)

		EmitZerolog(&logger, New(SeverityInfo, "Hello", "my_target", "example.com/pkg", "lib.go", 10))

		entry := decode(t, &buf)
		assert.Equal(t, "info", entry[zerolog.LevelFieldName])
		assert.Equal(t, "Hello", entry[zerolog.MessageFieldName])
		assert.Equal(t, "my_target", entry[TargetKey])
		assert.Equal(t, "example.com/pkg", entry[moduleFieldName])
		assert.Equal(t, "lib.go:10", entry[zerolog.CallerFieldName])
	})

	t.Run("absent fields stay absent", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)

		EmitZerolog(&logger, New(SeverityError, "boom", "worker", emptyString, emptyString, 0))

		entry := decode(t, &buf)
		assert.Equal(t, "error", entry[zerolog.LevelFieldName])
		assert.NotContains(t, entry, moduleFieldName)
		assert.NotContains(t, entry, zerolog.CallerFieldName)
	})

	t.Run("corrupted level replays at warn", func(t *testing.T) {
		var snap Snapshot
		require.NoError(t, json.Unmarshal([]byte(`{"level":"BOGUS","message":"hi","target":"t"}`), &snap))

		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		EmitZerolog(&logger, snap)

		entry := decode(t, &buf)
		assert.Equal(t, "warn", entry[zerolog.LevelFieldName])
	})

	t.Run("logger level filters the event", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.ErrorLevel)

		EmitZerolog(&logger, New(SeverityDebug, "quiet", "worker", emptyString, emptyString, 0))
		assert.Zero(t, buf.Len())
	})

	t.Run("nil logger is a no-op", func(t *testing.T) {
		EmitZerolog(nil, New(SeverityInfo, "x", "y", emptyString, emptyString, 0))
	})
}
