package dact

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shadowevil/D2SLib-Resurrected/ds"
)

type (
	ErrUnknownField struct {
		Caller string
		Act    string
		Name   string
	}
	ErrInvalidFlag struct {
		Caller string
		Name   string
		Value  any
	}
)

func (r ErrUnknownField) Error() string {
	return fmt.Sprintf(`%s: unknown field "%s" in "%s"`, r.Caller, r.Name, r.Act)
}

func (r ErrInvalidFlag) Error() string {
	return fmt.Sprintf(`%s: flag "%s" expects a boolean, got %s`, r.Caller, r.Name, ds.DumpJSON(r.Value))
}

// ToLinkedHashMap lays an act out field by field in wire order.
func ToLinkedHashMap(act Act) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	for _, field := range act.Fields() {
		if field.Flag != nil {
			lhm.Set(field.Name, *field.Flag)
		} else {
			lhm.Set(field.Name, *field.Quest)
		}
	}
	return lhm
}

// FromLinkedHashMap is the reverse of ToLinkedHashMap. Missing keys leave the
// act untouched; unknown keys are rejected.
func FromLinkedHashMap(act Act, lhm orderedmap.OrderedMap) error {
	const caller = "dact.FromLinkedHashMap"
	fields := act.Fields()
	for _, key := range lhm.Keys() {
		field, ok := lo.Find(
			fields,
			func(field Field) bool { return field.Name == key },
		)
		if !ok {
			return ErrUnknownField{Caller: caller, Act: act.Name(), Name: key}
		}
		value, _ := lhm.Get(key)
		if field.Flag != nil {
			flag, ok := value.(bool)
			if !ok {
				return ErrInvalidFlag{Caller: caller, Name: key, Value: value}
			}
			*field.Flag = flag
			continue
		}
		// nested objects come back as orderedmap values, so go through JSON again
		if lhmValue, ok := ds.Deref(value); ok {
			value = &lhmValue
		}
		questBytes, err := json.Marshal(value)
		if err != nil {
			return errors.Wrapf(err, `%s error marshalling quest "%s"`, caller, key)
		}
		if err := json.Unmarshal(questBytes, field.Quest); err != nil {
			return errors.Wrapf(err, `%s error reading quest "%s"`, caller, key)
		}
	}
	return nil
}
