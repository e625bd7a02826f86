package dheader

import (
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
)

func Encode(writer lbytes.BitWriter, header Header) error {
	magicNumber := lbytes.EncodeFixedBytes(header.MagicNumber, MagicNumberSize)
	if err := writer.WriteBytes(magicNumber); err != nil {
		return errors.Wrap(err, `dheader.Encode error writing "magic_number"`)
	}
	if err := writer.WriteUInt32(header.VersionOrDefault()); err != nil {
		return errors.Wrap(err, `dheader.Encode error writing "version"`)
	}
	if err := writer.WriteUInt16(header.LengthOrDefault()); err != nil {
		return errors.Wrap(err, `dheader.Encode error writing "length"`)
	}
	return nil
}
