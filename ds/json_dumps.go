package ds

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DumpJSON is meant for error messages; a value that cannot be marshalled
// is described by the marshal error instead.
func DumpJSON[T any](t T) string {
	bs, err := json.Marshal(t)
	if err != nil {
		return errors.Wrapf(err, "ds.DumpJSON error marshalling %T", t).Error()
	}
	return string(bs)
}
