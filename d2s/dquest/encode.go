package dquest

import (
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
)

func Encode(writer lbytes.BitWriter, quest Quest) error {
	if err := writer.WriteUInt16(quest.Uint16()); err != nil {
		return errors.Wrap(err, "dquest.Encode error")
	}
	return nil
}

func EncodeBlock(writer lbytes.BitWriter, quests []Quest) error {
	for i, quest := range quests {
		if err := Encode(writer, quest); err != nil {
			return errors.Wrapf(err, "dquest.EncodeBlock error writing quest %d", i)
		}
	}
	return nil
}
