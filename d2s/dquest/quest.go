package dquest

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
)

type (
	ErrUnknownFlag struct {
		Name string
	}
)

func (r ErrUnknownFlag) Error() string {
	return fmt.Sprintf(`unknown quest flag "%s"`, r.Name)
}

func FromUint16(value uint16) Quest {
	return Quest(value)
}

func (q Quest) Uint16() uint16 {
	return uint16(q)
}

func (q Quest) Has(flag Flag) bool {
	return q&(1<<flag) != 0
}

func (q *Quest) Set(flag Flag, value bool) {
	if value {
		*q |= 1 << flag
	} else {
		*q &^= 1 << flag
	}
}

func (q Quest) RewardGranted() bool           { return q.Has(FlagRewardGranted) }
func (q Quest) RewardPending() bool           { return q.Has(FlagRewardPending) }
func (q Quest) Started() bool                 { return q.Has(FlagStarted) }
func (q Quest) LeftTown() bool                { return q.Has(FlagLeftTown) }
func (q Quest) EnterArea() bool               { return q.Has(FlagEnterArea) }
func (q Quest) Custom1() bool                 { return q.Has(FlagCustom1) }
func (q Quest) DrankPotionOfLife() bool       { return q.Has(FlagDrankPotionOfLife) }
func (q Quest) Custom2() bool                 { return q.Has(FlagCustom2) }
func (q Quest) ReadScrollOfResistance() bool  { return q.Has(FlagReadScrollOfResistance) }
func (q Quest) Custom3() bool                 { return q.Has(FlagCustom3) }
func (q Quest) Custom4() bool                 { return q.Has(FlagCustom4) }
func (q Quest) SecretCowLevelCompleted() bool { return q.Has(FlagSecretCowLevelCompleted) }
func (q Quest) QuestLog() bool                { return q.Has(FlagQuestLog) }
func (q Quest) PrimaryGoalAchieved() bool     { return q.Has(FlagPrimaryGoalAchieved) }
func (q Quest) CompletedNow() bool            { return q.Has(FlagCompletedNow) }
func (q Quest) CompletedBefore() bool         { return q.Has(FlagCompletedBefore) }

// SetFlagNames returns the names of the flags that are on, in bit order.
func (q Quest) SetFlagNames() []string {
	return lo.Filter(
		FlagNames,
		func(_ string, i int) bool {
			return q.Has(Flag(i))
		},
	)
}

func (q Quest) ToLinkedHashMap() *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	for i, name := range FlagNames {
		lhm.Set(name, q.Has(Flag(i)))
	}
	return lhm
}

func (q Quest) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.ToLinkedHashMap())
}

// UnmarshalJSON accepts an object of flag names to booleans. Missing flags are off.
func (q *Quest) UnmarshalJSON(bs []byte) error {
	flags := map[string]bool{}
	if err := json.Unmarshal(bs, &flags); err != nil {
		return err
	}
	result := Quest(0)
	for name, value := range flags {
		index := lo.IndexOf(FlagNames, name)
		if index == -1 {
			return ErrUnknownFlag{Name: name}
		}
		result.Set(Flag(index), value)
	}
	*q = result
	return nil
}
