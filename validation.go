package recordsnap

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

// Validate strictly checks the snapshot: the level must be one of the
// five canonical labels, message and target must be non-empty, and the
// line must be non-negative. Snapshot construction and decoding never
// run this; callers that cannot tolerate the silent severity fallback
// opt in here.
func (s Snapshot) Validate() error {
	const op errors.Op = "recordsnap.Validate"

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(s.ToJSON()); err != nil {
		return errors.New(op).Err(err).Msg(errMsgSnapshotInvalid)
	}

	return nil
}
