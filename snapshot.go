package recordsnap

import (
	"log/slog"
	"runtime"
	"strconv"
	"strings"
)

// Snapshot is an owned copy of a transient log record. Unlike a
// slog.Record it holds no program counter and no shared attr state, so
// it can be stored, compared, used as a map key, and marshaled freely.
//
// Fields are unexported so a Snapshot cannot be built from a field
// literal; construct one with New or FromRecord. The zero values of
// the three optional fields (module path, file, line) mean "absent".
// A Snapshot is immutable after construction.
type Snapshot struct {
	level      string
	message    string
	target     string
	modulePath string
	file       string
	line       int
}

// New builds a Snapshot from explicit field values. The severity is
// stored as its canonical label; the remaining fields are copied
// verbatim. Use FromRecord to snapshot a live slog.Record.
func New(sev Severity, message, target, modulePath, file string, line int) Snapshot {
	return Snapshot{
		level:      sev.String(),
		message:    message,
		target:     target,
		modulePath: modulePath,
		file:       file,
		line:       line,
	}
}

// FromRecord snapshots a transient slog.Record. It never fails and the
// result holds no reference back to the record, so it may outlive the
// Handle call that produced the record.
//
// Source location is resolved from the record's PC the way slog
// handlers do. A "source" attribute carrying a slog.Source takes
// precedence over the PC; replayed records use this to carry their
// original location. The target comes from the TargetKey attribute and
// defaults to the module path when no such attribute is present.
func FromRecord(rec slog.Record) Snapshot {
	snap := Snapshot{
		level:   SeverityFromSlog(rec.Level).String(),
		message: rec.Message,
	}

	if rec.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{rec.PC}).Next()
		snap.modulePath = packagePath(frame.Function)
		snap.file = frame.File
		snap.line = frame.Line
	}

	rec.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case TargetKey:
			if a.Value.Kind() == slog.KindString {
				snap.target = a.Value.String()
			}
		case slog.SourceKey:
			if src, ok := sourceFromValue(a.Value); ok {
				snap.modulePath = packagePath(src.Function)
				snap.file = src.File
				snap.line = src.Line
			}
		}
		return true
	})

	if snap.target == emptyString {
		snap.target = snap.modulePath
	}
	return snap
}

// Level returns the canonical severity label, e.g. "INFO".
func (s Snapshot) Level() string { return s.level }

// Severity parses the stored label, degrading unknown labels to
// FallbackSeverity.
func (s Snapshot) Severity() Severity { return SeverityOrWarn(s.level) }

// Message returns the fully formatted message text.
func (s Snapshot) Message() string { return s.message }

// Target returns the logical source of the record.
func (s Snapshot) Target() string { return s.target }

// ModulePath returns the originating package path, or "" when absent.
func (s Snapshot) ModulePath() string { return s.modulePath }

// File returns the originating source file, or "" when absent.
func (s Snapshot) File() string { return s.file }

// Line returns the originating source line, or 0 when absent.
func (s Snapshot) Line() int { return s.line }

// String returns a compact single-line debug form.
func (s Snapshot) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(s.level)
	b.WriteString("] ")
	if s.target != emptyString {
		b.WriteString(s.target)
		b.WriteString(": ")
	}
	b.WriteString(s.message)
	if s.file != emptyString {
		b.WriteString(" (")
		b.WriteString(s.file)
		if s.line > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(s.line))
		}
		b.WriteByte(')')
	}
	return b.String()
}

// packagePath strips the function name from a runtime frame's
// fully-qualified function, leaving the package import path. Input
// that already is a bare package path passes through unchanged.
func packagePath(fn string) string {
	if fn == emptyString {
		return emptyString
	}
	slash := strings.LastIndexByte(fn, '/')
	if dot := strings.IndexByte(fn[slash+1:], '.'); dot >= 0 {
		return fn[:slash+1+dot]
	}
	return fn
}

func sourceFromValue(v slog.Value) (slog.Source, bool) {
	if v.Kind() != slog.KindAny {
		return slog.Source{}, false
	}
	switch src := v.Any().(type) {
	case *slog.Source:
		if src != nil {
			return *src, true
		}
	case slog.Source:
		return src, true
	}
	return slog.Source{}, false
}
