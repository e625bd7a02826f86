package lbytes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	writer := NewBytesWriter()

	require.NoError(t, writer.WriteString("Woo!", 4))
	require.NoError(t, writer.WriteUInt32(6))
	require.NoError(t, writer.WriteUInt16(0x012A))
	require.NoError(t, writer.WriteByte(0x80))
	require.NoError(t, writer.WriteBytes(CreateZeroBytes(3)))

	assert.Equal(
		t,
		[]byte{
			'W', 'o', 'o', '!',
			0x06, 0x00, 0x00, 0x00,
			0x2A, 0x01,
			0x80,
			0x00, 0x00, 0x00,
		},
		writer.Bytes(),
	)
	assert.Equal(t, 14*8, writer.Position())
}

func TestEncodeFixedString(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0}, EncodeFixedString("", 4))
	assert.Equal(t, []byte{'a', 'b', 0, 0}, EncodeFixedString("ab", 4))
	assert.Equal(t, []byte{'a', 'b', 'c', 'd'}, EncodeFixedString("abcdef", 4))
}

func TestEncodeFixedBytes(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0}, EncodeFixedBytes(nil, 4))
	assert.Equal(t, []byte{0xFF, 0xFE, 0, 0}, EncodeFixedBytes([]byte{0xFF, 0xFE}, 4))
	assert.Equal(t, []byte{0xFF, 0xFE, 'o', '!'}, EncodeFixedBytes([]byte{0xFF, 0xFE, 'o', '!', 0x06}, 4))
}

func TestReaderWriter_Interfaces(t *testing.T) {
	var _ BitReader = NewBytesReader(nil)
	var _ BitWriter = NewBytesWriter()
}
