// Package d2s stores byte slice helpers around the quests section of a
// character save: decoding, encoding, and splicing it in and out of a whole file.
package d2s

import (
	"bytes"

	"github.com/shadowevil/D2SLib-Resurrected/d2s/dheader"
)

// ReferenceQuestsOffset is where the quests section starts in saves written by the game.
const ReferenceQuestsOffset = 0x14F

func IsQuestsSection(bs []byte) bool {
	return dheader.IsValidMagicNumber(bs)
}

// QuestsOffset finds the quests section inside a whole save file by its magic number.
func QuestsOffset(file []byte) (int, bool) {
	if len(file) > ReferenceQuestsOffset && IsQuestsSection(file[ReferenceQuestsOffset:]) {
		return ReferenceQuestsOffset, true
	}
	offset := bytes.Index(file, []byte(dheader.MagicNumber))
	return offset, offset != -1
}
