package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Position returns the number of bits consumed so far.
func (b *Reader) Position() int {
	return int(b.Size()-int64(b.Len())) * 8
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	if b.Len() < n {
		return nil, ErrNotEnoughBytes{
			Caller:    "Reader.ReadBytes",
			Expected:  n,
			Remaining: b.Len(),
		}
	}
	_, err := io.ReadFull(&b.Reader, bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadByte() (byte, error) {
	bs, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (b *Reader) ReadUInt16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadUInt32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

// ReadString reads a fixed-width string. Trailing zero bytes are padding and get trimmed.
func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(bs), "\u0000"), nil
}
