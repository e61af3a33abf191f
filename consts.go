package recordsnap

const (
	// TargetKey is the record attribute consulted for the snapshot's
	// target and attached to replayed records.
	TargetKey = "target"

	// moduleFieldName is the zerolog field carrying the module path on replay.
	moduleFieldName = "module"

	emptyString = ""
)

const (
	errMsgUnknownLabel    = "Unknown severity label."
	errMsgSnapshotInvalid = "Snapshot is invalid."
	errMsgMalformedJSON   = "Malformed snapshot JSON."
)
