package recordsnap

import (
	"log/slog"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// Severity is the fixed set of levels a Snapshot can carry. Ordering
// follows urgency: Error is the most severe, Trace the least.
type Severity int8

const (
	SeverityError Severity = iota + 1
	SeverityWarn
	SeverityInfo
	SeverityDebug
	SeverityTrace
)

// FallbackSeverity is what an unrecognized label degrades to on the
// reverse path. Documented contract, not an accident: replay must be
// infallible, so corrupted level data downgrades instead of failing.
const FallbackSeverity = SeverityWarn

// LevelTrace is the slog level a trace snapshot replays at. slog has no
// trace constant of its own; one step below Debug is the usual extension.
const LevelTrace = slog.LevelDebug - 4

// String returns the canonical uppercase label. Out-of-range values
// take the fallback label.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarn:
		return "WARN"
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBUG"
	case SeverityTrace:
		return "TRACE"
	default:
		return "WARN"
	}
}

// MarshalText implements encoding.TextMarshaler using the canonical label.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails;
// unknown labels become FallbackSeverity.
func (s *Severity) UnmarshalText(text []byte) error {
	*s = SeverityOrWarn(string(text))
	return nil
}

// ParseSeverity maps a canonical label back to its Severity. Matching is
// exact: anything other than the five uppercase labels is an error.
// This is the strict variant; most callers want SeverityOrWarn.
func ParseSeverity(label string) (Severity, error) {
	const op errors.Op = "recordsnap.ParseSeverity"
	switch label {
	case "ERROR":
		return SeverityError, nil
	case "WARN":
		return SeverityWarn, nil
	case "INFO":
		return SeverityInfo, nil
	case "DEBUG":
		return SeverityDebug, nil
	case "TRACE":
		return SeverityTrace, nil
	}
	return FallbackSeverity, errors.New(op).Msg(errMsgUnknownLabel)
}

// SeverityOrWarn maps a canonical label back to its Severity, degrading
// any unrecognized input to FallbackSeverity. It signals no error.
func SeverityOrWarn(label string) Severity {
	sev, err := ParseSeverity(label)
	if err != nil {
		return FallbackSeverity
	}
	return sev
}

// Slog converts the severity to its slog.Level.
func (s Severity) Slog() slog.Level {
	switch s {
	case SeverityError:
		return slog.LevelError
	case SeverityWarn:
		return slog.LevelWarn
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityTrace:
		return LevelTrace
	default:
		return slog.LevelWarn
	}
}

// SeverityFromSlog buckets a slog level into the fixed severity set.
// Custom levels map to the nearest bucket at or above them, mirroring
// how slog.Level.String labels in-between values.
func SeverityFromSlog(l slog.Level) Severity {
	switch {
	case l < slog.LevelDebug:
		return SeverityTrace
	case l < slog.LevelInfo:
		return SeverityDebug
	case l < slog.LevelWarn:
		return SeverityInfo
	case l < slog.LevelError:
		return SeverityWarn
	default:
		return SeverityError
	}
}

// Zerolog converts the severity to its zerolog.Level.
func (s Severity) Zerolog() zerolog.Level {
	switch s {
	case SeverityError:
		return zerolog.ErrorLevel
	case SeverityWarn:
		return zerolog.WarnLevel
	case SeverityInfo:
		return zerolog.InfoLevel
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityTrace:
		return zerolog.TraceLevel
	default:
		return zerolog.WarnLevel
	}
}

// SeverityFromZerolog buckets a zerolog level into the fixed severity
// set. Fatal and Panic collapse into Error; NoLevel and Disabled take
// the fallback.
func SeverityFromZerolog(l zerolog.Level) Severity {
	switch l {
	case zerolog.TraceLevel:
		return SeverityTrace
	case zerolog.DebugLevel:
		return SeverityDebug
	case zerolog.InfoLevel:
		return SeverityInfo
	case zerolog.WarnLevel:
		return SeverityWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return SeverityError
	default:
		return FallbackSeverity
	}
}
