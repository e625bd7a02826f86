package d2s

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/ddifficulty"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquest"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquests"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
	"github.com/shadowevil/D2SLib-Resurrected/ds"
)

func EncodeQuests(section dquests.Section) ([]byte, error) {
	return dquests.EncodeBytes(section)
}

func EncodeDifficulty(difficulty ddifficulty.Difficulty) ([]byte, error) {
	writer := lbytes.NewBytesWriter()
	if err := ddifficulty.Encode(writer, difficulty); err != nil {
		return nil, err
	}
	return writer.Bytes(), nil
}

func EncodeQuest(quest dquest.Quest) ([]byte, error) {
	writer := lbytes.NewBytesWriter()
	if err := dquest.Encode(writer, quest); err != nil {
		return nil, err
	}
	return writer.Bytes(), nil
}

// PatchQuestsInFile returns a copy of file with the section at offset replaced.
// The file checksum is left alone; fixing it belongs to the container.
func PatchQuestsInFile(file []byte, offset int, section dquests.Section) ([]byte, error) {
	offset, err := ResolveOffset(file, offset)
	if err != nil {
		return nil, err
	}
	if offset+dquests.DefaultSectionSize > len(file) {
		return nil, lbytes.ErrNotEnoughBytes{
			Caller:    "PatchQuestsInFile",
			Expected:  offset + dquests.DefaultSectionSize,
			Remaining: len(file),
		}
	}
	sectionBytes, err := EncodeQuests(section)
	if err != nil {
		return nil, errors.Wrap(err, "PatchQuestsInFile error")
	}

	patched := ds.ShallowCopy(file)
	copy(patched[offset:], sectionBytes)
	return patched, nil
}

// ParseQuestsJSON accepts either JSON form DecodeQuestsJSON produces.
func ParseQuestsJSON(jsonBytes []byte) (*dquests.Section, error) {
	lhm := orderedmap.New()
	if err := json.Unmarshal(jsonBytes, lhm); err != nil {
		return nil, errors.Wrap(err, "ParseQuestsJSON error")
	}
	if _, isStructForm := lhm.Get("difficulties"); isStructForm {
		section := dquests.Section{}
		if err := json.Unmarshal(jsonBytes, &section); err != nil {
			return nil, errors.Wrap(err, "ParseQuestsJSON error")
		}
		return &section, nil
	}
	return dquests.FromLinkedHashMap(*lhm)
}

func EncodeQuestsJSON(jsonBytes []byte) ([]byte, error) {
	section, err := ParseQuestsJSON(jsonBytes)
	if err != nil {
		return nil, err
	}
	return EncodeQuests(*section)
}
