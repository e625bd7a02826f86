package d2s

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/ddifficulty"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquest"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquests"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
)

type (
	ErrSectionNotFound struct {
		Caller string
	}
)

func (r ErrSectionNotFound) Error() string {
	return r.Caller + ": quests section not found"
}

func DecodeQuests(bs []byte) (*dquests.Section, error) {
	return dquests.Decode(lbytes.NewBytesReader(bs))
}

func DecodeDifficulty(bs []byte) (*ddifficulty.Difficulty, error) {
	return ddifficulty.Decode(lbytes.NewBytesReader(bs))
}

func DecodeQuest(bs []byte) (dquest.Quest, error) {
	return dquest.Decode(lbytes.NewBytesReader(bs))
}

// ResolveOffset returns offset when it is not negative, otherwise the located section offset.
func ResolveOffset(file []byte, offset int) (int, error) {
	if offset >= 0 {
		return offset, nil
	}
	located, ok := QuestsOffset(file)
	if !ok {
		return 0, ErrSectionNotFound{Caller: "ResolveOffset"}
	}
	return located, nil
}

// ReadQuestsFromFile decodes the section at offset. A negative offset means
// the section is located by its magic number.
func ReadQuestsFromFile(file []byte, offset int) (*dquests.Section, error) {
	offset, err := ResolveOffset(file, offset)
	if err != nil {
		return nil, err
	}
	if offset > len(file) {
		return nil, lbytes.ErrNotEnoughBytes{
			Caller:    "ReadQuestsFromFile",
			Expected:  offset + dquests.DefaultSectionSize,
			Remaining: len(file),
		}
	}
	section, err := DecodeQuests(file[offset:])
	if err != nil {
		return nil, errors.Wrapf(err, "ReadQuestsFromFile error at offset %d", offset)
	}
	return section, nil
}

// DecodeQuestsJSON turns section bytes into JSON. With debug the struct form
// is produced, otherwise the named form keyed in wire order.
func DecodeQuestsJSON(bs []byte, debug bool) ([]byte, error) {
	section, err := DecodeQuests(bs)
	if err != nil {
		return nil, err
	}

	if debug {
		return json.MarshalIndent(section, "", "  ")
	}

	lhm := dquests.ToLinkedHashMap(*section)
	return json.MarshalIndent(lhm, "", "  ")
}
