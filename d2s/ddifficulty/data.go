// Package ddifficulty holds the quest state of one difficulty tier: the five act records in order.
package ddifficulty

import (
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dact"
)

type (
	Difficulty struct {
		ActI   dact.ActI   `json:"act_i"`
		ActII  dact.ActII  `json:"act_ii"`
		ActIII dact.ActIII `json:"act_iii"`
		ActIV  dact.ActIV  `json:"act_iv"`
		ActV   dact.ActV   `json:"act_v"`
	}
)

const (
	DefaultBlockSize = dact.DefaultActISize +
		dact.DefaultActIISize +
		dact.DefaultActIIISize +
		dact.DefaultActIVSize +
		dact.DefaultActVSize
)

// Acts returns the five acts in wire order. Changes made through them land in d.
func (d *Difficulty) Acts() []dact.Act {
	return []dact.Act{&d.ActI, &d.ActII, &d.ActIII, &d.ActIV, &d.ActV}
}
