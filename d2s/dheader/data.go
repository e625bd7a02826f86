// Package dheader holds the ten byte header in front of the quest blocks.
package dheader

type (
	// Header keeps Version and Length optional. Defaults are applied on
	// write only, so a decoded header reports exactly what was read.
	// MagicNumber holds the raw bytes and is base64 in JSON.
	Header struct {
		MagicNumber []byte  `json:"magic_number"`
		Version     *uint32 `json:"version,omitempty"`
		Length      *uint16 `json:"length,omitempty"`
	}
)

const (
	MagicNumberSize   = 4
	DefaultHeaderSize = MagicNumberSize + 4 + 2

	DefaultVersion uint32 = 0x06
	DefaultLength  uint16 = 0x012A
)

// MagicNumber is the identifier the game writes ("Woo!").
const MagicNumber = "Woo!"

var MagicNumberBytes = []byte(MagicNumber)

func (h Header) VersionOrDefault() uint32 {
	if h.Version == nil {
		return DefaultVersion
	}
	return *h.Version
}

func (h Header) LengthOrDefault() uint16 {
	if h.Length == nil {
		return DefaultLength
	}
	return *h.Length
}
