// Package lbytes holds the little-endian cursor the save records are read from and written to.
package lbytes

import (
	"bytes"
)

type (
	// BitReader is a sequential cursor over a byte range.
	// Position is reported in bits.
	BitReader interface {
		ReadBytes(n int) ([]byte, error)
		ReadByte() (byte, error)
		ReadUInt16() (uint16, error)
		ReadUInt32() (uint32, error)
		ReadString(n int) (string, error)
		Position() int
	}
	// BitWriter is the mirror of BitReader. Writes grow the underlying buffer.
	BitWriter interface {
		WriteBytes(bs []byte) error
		WriteByte(b byte) error
		WriteUInt16(value uint16) error
		WriteUInt32(value uint32) error
		WriteString(s string, n int) error
		Position() int
	}
	Reader struct {
		bytes.Reader
	}
	Writer struct {
		buffer bytes.Buffer
	}
)
