package lbytes

import (
	"fmt"
)

type (
	ErrNotEnoughBytes struct {
		Caller    string
		Expected  int
		Remaining int
	}
)

func (r ErrNotEnoughBytes) Error() string {
	return fmt.Sprintf(
		`%s: not enough bytes: expected %d, remaining %d`,
		r.Caller, r.Expected, r.Remaining,
	)
}
