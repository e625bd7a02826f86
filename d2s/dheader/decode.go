package dheader

import (
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
)

// Decode reads the magic number, version and length. Nothing is validated here;
// see Validate.
func Decode(reader lbytes.BitReader) (*Header, error) {
	magicNumber, err := reader.ReadBytes(MagicNumberSize)
	if err != nil {
		return nil, errors.Wrap(err, `dheader.Decode error reading "magic_number"`)
	}
	version, err := reader.ReadUInt32()
	if err != nil {
		return nil, errors.Wrap(err, `dheader.Decode error reading "version"`)
	}
	length, err := reader.ReadUInt16()
	if err != nil {
		return nil, errors.Wrap(err, `dheader.Decode error reading "length"`)
	}

	header := Header{
		MagicNumber: magicNumber,
		Version:     &version,
		Length:      &length,
	}
	return &header, nil
}
