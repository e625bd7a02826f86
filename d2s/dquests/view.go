package dquests

import (
	"encoding/base64"
	"math"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dact"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/ddifficulty"
	"github.com/shadowevil/D2SLib-Resurrected/ds"
)

const (
	FieldNameMagicNumber = "magic_number"
	FieldNameVersion     = "version"
	FieldNameLength      = "length"
)

// ToLinkedHashMap lays the section out with named keys in wire order:
// header fields first, then one object per difficulty. The magic number
// is kept as raw bytes, so it is base64 once marshalled.
func ToLinkedHashMap(section Section) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set(FieldNameMagicNumber, section.Header.MagicNumber)
	if section.Header.Version != nil {
		lhm.Set(FieldNameVersion, *section.Header.Version)
	}
	if section.Header.Length != nil {
		lhm.Set(FieldNameLength, *section.Header.Length)
	}
	for i, difficulty := range section.Difficulties {
		lhm.Set(DifficultyNames[i], ddifficulty.ToLinkedHashMap(difficulty))
	}
	return lhm
}

// FromLinkedHashMap reads back what ToLinkedHashMap produced after a JSON round trip.
func FromLinkedHashMap(lhm orderedmap.OrderedMap) (*Section, error) {
	const caller = "dquests.FromLinkedHashMap"
	section := Section{}
	for _, key := range lhm.Keys() {
		value, _ := lhm.Get(key)
		switch key {
		case FieldNameMagicNumber:
			if value == nil {
				continue
			}
			encoded, ok := value.(string)
			if !ok {
				return nil, ErrInvalidHeaderField{Caller: caller, Name: key, Value: value}
			}
			magicNumber, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return nil, ErrInvalidHeaderField{Caller: caller, Name: key, Value: value}
			}
			section.Header.MagicNumber = magicNumber
		case FieldNameVersion:
			number, ok := value.(float64)
			if !ok || !isWholeNumber(number, float64(^uint32(0))) {
				return nil, ErrInvalidHeaderField{Caller: caller, Name: key, Value: value}
			}
			version := uint32(number)
			section.Header.Version = &version
		case FieldNameLength:
			number, ok := value.(float64)
			if !ok || !isWholeNumber(number, float64(^uint16(0))) {
				return nil, ErrInvalidHeaderField{Caller: caller, Name: key, Value: value}
			}
			length := uint16(number)
			section.Header.Length = &length
		default:
			index := indexOfDifficulty(key)
			if index == -1 {
				return nil, dact.ErrUnknownField{Caller: caller, Act: "section", Name: key}
			}
			difficultyLhm, ok := ds.Deref(value)
			if !ok {
				return nil, ddifficulty.ErrNotAnObject{Value: value}
			}
			difficulty, err := ddifficulty.FromLinkedHashMap(difficultyLhm)
			if err != nil {
				return nil, errors.Wrapf(err, `%s error reading "%s"`, caller, key)
			}
			section.Difficulties[index] = *difficulty
		}
	}
	return &section, nil
}

func isWholeNumber(number float64, limit float64) bool {
	return number >= 0 && number <= limit && number == math.Trunc(number)
}
