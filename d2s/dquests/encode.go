package dquests

import (
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/ddifficulty"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dheader"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
)

func Encode(writer lbytes.BitWriter, section Section) error {
	if err := dheader.Encode(writer, section.Header); err != nil {
		return errors.Wrap(err, "dquests.Encode error")
	}
	for i, difficulty := range section.Difficulties {
		if err := ddifficulty.Encode(writer, difficulty); err != nil {
			err := errors.Wrapf(err, `dquests.Encode error writing difficulty "%s"`, DifficultyNames[i])
			return err
		}
	}
	return nil
}

// EncodeBytes writes the section into a fresh buffer of DefaultSectionSize bytes.
func EncodeBytes(section Section) ([]byte, error) {
	writer := lbytes.NewBytesWriter()
	if err := Encode(writer, section); err != nil {
		return nil, err
	}
	return writer.Bytes(), nil
}
