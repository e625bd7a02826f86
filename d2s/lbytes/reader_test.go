package lbytes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadUInt32(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
	)

	resultInt1, err := reader.ReadUInt32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(50594051), resultInt1)

	resultInt2, err := reader.ReadUInt32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(1312301580), resultInt2)
	assert.Equal(t, 64, reader.Position())
}

func TestReader_ReadUInt16(t *testing.T) {
	reader := NewBytesReader([]byte{0x2A, 0x01})

	result, err := reader.ReadUInt16()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x012A), result)
}

func TestReader_ReadString(t *testing.T) {
	reader := NewBytesReader([]byte{'W', 'o', 'o', '!', 'a', 'b', 0, 0})

	s1, err := reader.ReadString(4)
	assert.NoError(t, err)
	assert.Equal(t, "Woo!", s1)

	s2, err := reader.ReadString(4)
	assert.NoError(t, err)
	assert.Equal(t, "ab", s2)
}

func TestReader_ReadBytes_NotEnough(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})

	_, err := reader.ReadBytes(4)
	require.Error(t, err)

	errNotEnough := ErrNotEnoughBytes{}
	require.True(t, errors.As(err, &errNotEnough))
	assert.Equal(t, 4, errNotEnough.Expected)
	assert.Equal(t, 3, errNotEnough.Remaining)
	assert.Equal(t, 0, reader.Position())

	bs, err := reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Empty(t, bs)
}

func TestReader_ReadByte_EndOfData(t *testing.T) {
	reader := NewBytesReader([]byte{0x80})

	b, err := reader.ReadByte()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x80), b)

	_, err = reader.ReadByte()
	assert.ErrorAs(t, err, &ErrNotEnoughBytes{})
}
