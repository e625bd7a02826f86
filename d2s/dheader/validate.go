package dheader

import (
	"bytes"
	"fmt"
)

type (
	ErrInvalidMagicNumber struct {
		Expected []byte
		Actual   []byte
	}
	ErrUnexpectedValue struct {
		Field    string
		Expected uint32
		Actual   uint32
	}
)

func (r ErrInvalidMagicNumber) Error() string {
	return fmt.Sprintf(`invalid magic number: expected %q, got %q`, r.Expected, r.Actual)
}

func (r ErrUnexpectedValue) Error() string {
	return fmt.Sprintf(`unexpected %s: expected 0x%X, got 0x%X`, r.Field, r.Expected, r.Actual)
}

func IsValidMagicNumber(bs []byte) bool {
	return len(bs) >= MagicNumberSize && bytes.Equal(bs[:MagicNumberSize], MagicNumberBytes)
}

// Validate compares a header against the values the game writes.
// The codec never calls it.
func Validate(header Header) error {
	if !bytes.Equal(header.MagicNumber, MagicNumberBytes) {
		return ErrInvalidMagicNumber{
			Expected: MagicNumberBytes,
			Actual:   header.MagicNumber,
		}
	}
	if version := header.VersionOrDefault(); version != DefaultVersion {
		return ErrUnexpectedValue{
			Field:    "version",
			Expected: DefaultVersion,
			Actual:   version,
		}
	}
	if length := header.LengthOrDefault(); length != DefaultLength {
		return ErrUnexpectedValue{
			Field:    "length",
			Expected: uint32(DefaultLength),
			Actual:   uint32(length),
		}
	}
	return nil
}
