package lbytes

import (
	"encoding/binary"

	"github.com/shadowevil/D2SLib-Resurrected/ds"
)

func EncodeUInt16(value uint16) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, value)
	return bs
}

func EncodeUInt32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

// EncodeFixedString lays s out in exactly n bytes: longer strings are cut,
// shorter ones are padded with zero bytes.
func EncodeFixedString(s string, n int) []byte {
	return EncodeFixedBytes([]byte(s), n)
}

// EncodeFixedBytes is EncodeFixedString for raw bytes. A nil slice
// becomes n zero bytes.
func EncodeFixedBytes(bs []byte, n int) []byte {
	fixed := CreateZeroBytes(n)
	copy(fixed, bs)
	return fixed
}

// EncodeBool returns the single byte form of a flag: 0x01 or 0x00.
func EncodeBool(value bool) byte {
	if value {
		return 0x01
	}
	return 0x00
}

func CreateZeroBytes(n int) []byte {
	return ds.Repeat[byte](n, 0x00)
}
