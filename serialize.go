package recordsnap

import (
	"github.com/Station-Manager/errors"
	json "github.com/goccy/go-json"
)

// SnapshotJSON is the wire form of a Snapshot. Optional fields are
// omitted when absent. The validate tags back Snapshot.Validate.
type SnapshotJSON struct {
	Level      string `json:"level" validate:"required,oneof=ERROR WARN INFO DEBUG TRACE"`
	Message    string `json:"message" validate:"required"`
	Target     string `json:"target" validate:"required"`
	ModulePath string `json:"module_path,omitempty"`
	File       string `json:"file,omitempty"`
	Line       int    `json:"line,omitempty" validate:"min=0"`
}

// ToJSON returns the snapshot's wire form.
func (s Snapshot) ToJSON() SnapshotJSON {
	return SnapshotJSON{
		Level:      s.level,
		Message:    s.message,
		Target:     s.target,
		ModulePath: s.modulePath,
		File:       s.file,
		Line:       s.line,
	}
}

// Snapshot converts the wire form back into a Snapshot. The conversion
// is verbatim and total; run Snapshot.Validate for strict checking.
func (j SnapshotJSON) Snapshot() Snapshot {
	return Snapshot{
		level:      j.Level,
		message:    j.Message,
		target:     j.Target,
		modulePath: j.ModulePath,
		file:       j.File,
		line:       j.Line,
	}
}

// MarshalJSON implements json.Marshaler.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToJSON())
}

// UnmarshalJSON implements json.Unmarshaler. It fails only on
// malformed JSON; field contents are accepted verbatim, including
// unrecognized severity labels (those degrade to WARN at replay time).
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	const op errors.Op = "recordsnap.UnmarshalJSON"
	var j SnapshotJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return errors.New(op).Err(err).Msg(errMsgMalformedJSON)
	}
	*s = j.Snapshot()
	return nil
}
