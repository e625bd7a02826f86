package dquests

import (
	"fmt"

	"github.com/shadowevil/D2SLib-Resurrected/ds"
)

type (
	ErrInvalidHeaderField struct {
		Caller string
		Name   string
		Value  any
	}
)

func (r ErrInvalidHeaderField) Error() string {
	return fmt.Sprintf(`%s: invalid value %s for header field "%s"`, r.Caller, ds.DumpJSON(r.Value), r.Name)
}
