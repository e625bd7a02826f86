package ddifficulty

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dact"
	"github.com/shadowevil/D2SLib-Resurrected/ds"
)

type ErrNotAnObject struct {
	Value any
}

func (r ErrNotAnObject) Error() string {
	return fmt.Sprintf("expected a JSON object, got %T", r.Value)
}

func ToLinkedHashMap(difficulty Difficulty) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	for _, act := range difficulty.Acts() {
		lhm.Set(act.Name(), dact.ToLinkedHashMap(act))
	}
	return lhm
}

func FromLinkedHashMap(lhm orderedmap.OrderedMap) (*Difficulty, error) {
	const caller = "ddifficulty.FromLinkedHashMap"
	difficulty := Difficulty{}
	acts := difficulty.Acts()
	for _, key := range lhm.Keys() {
		act, ok := lo.Find(
			acts,
			func(act dact.Act) bool { return act.Name() == key },
		)
		if !ok {
			return nil, dact.ErrUnknownField{Caller: caller, Act: "difficulty", Name: key}
		}
		value, _ := lhm.Get(key)
		actLhm, ok := ds.Deref(value)
		if !ok {
			return nil, ErrNotAnObject{Value: value}
		}
		if err := dact.FromLinkedHashMap(act, actLhm); err != nil {
			return nil, errors.Wrapf(err, `%s error reading "%s"`, caller, key)
		}
	}
	return &difficulty, nil
}
