package dquest

import (
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
)

// Decode consumes exactly two bytes. Bit 0 is the lowest bit of the first byte.
func Decode(reader lbytes.BitReader) (Quest, error) {
	value, err := reader.ReadUInt16()
	if err != nil {
		err := errors.Wrap(err, "dquest.Decode error")
		return 0, err
	}
	return Quest(value), nil
}

func DecodeBlock(reader lbytes.BitReader, quests []Quest) error {
	for i := range quests {
		quest, err := Decode(reader)
		if err != nil {
			err := errors.Wrapf(err, "dquest.DecodeBlock error reading quest %d", i)
			return err
		}
		quests[i] = quest
	}
	return nil
}
