// Package dquests decodes and encodes the whole quests section: the header
// followed by one block per difficulty.
package dquests

import (
	"github.com/samber/lo"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/ddifficulty"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dheader"
	"github.com/shadowevil/D2SLib-Resurrected/ds"
)

type (
	Section struct {
		Header       dheader.Header                          `json:"header"`
		Difficulties [NumDifficulties]ddifficulty.Difficulty `json:"difficulties"`
	}
)

const (
	DifficultyNormal = iota
	DifficultyNightmare
	DifficultyHell
	NumDifficulties
)

const (
	DefaultSectionSize = dheader.DefaultHeaderSize + NumDifficulties*ddifficulty.DefaultBlockSize
)

// DifficultyNames is indexed by difficulty slot.
var DifficultyNames = []string{"normal", "nightmare", "hell"}

func indexOfDifficulty(name string) int {
	return lo.IndexOf(DifficultyNames, name)
}

// New returns a section for a fresh character. Version and length stay unset
// and fall back to their defaults when written.
func New() *Section {
	return &Section{
		Header: dheader.Header{
			MagicNumber: ds.ShallowCopy(dheader.MagicNumberBytes),
		},
	}
}

func (s *Section) Difficulty(index int) *ddifficulty.Difficulty {
	return &s.Difficulties[index]
}

func (s *Section) Normal() *ddifficulty.Difficulty    { return s.Difficulty(DifficultyNormal) }
func (s *Section) Nightmare() *ddifficulty.Difficulty { return s.Difficulty(DifficultyNightmare) }
func (s *Section) Hell() *ddifficulty.Difficulty      { return s.Difficulty(DifficultyHell) }
