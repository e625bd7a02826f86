package dquests

import (
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/ddifficulty"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dheader"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
)

// Decode reads a whole section from the reader. A short read aborts the
// decode and no partial section is returned.
func Decode(reader lbytes.BitReader) (*Section, error) {
	section := Section{}

	header, err := dheader.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "dquests.Decode error")
	}
	section.Header = *header

	for i := range section.Difficulties {
		difficulty, err := ddifficulty.Decode(reader)
		if err != nil {
			err := errors.Wrapf(err, `dquests.Decode error reading difficulty "%s"`, DifficultyNames[i])
			return nil, err
		}
		section.Difficulties[i] = *difficulty
	}

	return &section, nil
}
