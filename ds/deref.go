package ds

import (
	"github.com/iancoleman/orderedmap"
)

// Deref unwraps a decoded JSON object. orderedmap stores nested objects as
// values while callers usually hold pointers, so both are accepted.
func Deref(value any) (orderedmap.OrderedMap, bool) {
	switch lhm := value.(type) {
	case orderedmap.OrderedMap:
		return lhm, true
	case *orderedmap.OrderedMap:
		if lhm == nil {
			return orderedmap.OrderedMap{}, false
		}
		return *lhm, true
	}
	return orderedmap.OrderedMap{}, false
}
