package ds

import (
	"encoding/json"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestDeref(t *testing.T) {
	lhm := orderedmap.New()
	err := json.Unmarshal([]byte(`{"one":{"a":1},"two":{"b":2}}`), lhm)
	assert.NoError(t, err)
	lhm.Set("three", orderedmap.New())

	assert.True(
		t,
		lo.EveryBy(
			lhm.Keys(),
			func(key string) bool {
				value, _ := lhm.Get(key)
				_, ok := Deref(value)
				return ok
			},
		),
	)

	_, ok := Deref(1.0)
	assert.False(t, ok)
	_, ok = Deref((*orderedmap.OrderedMap)(nil))
	assert.False(t, ok)
}
