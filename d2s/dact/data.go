// Package dact holds the five per-act quest records. Each act has a fixed
// byte layout; filler bytes are discarded on read and written back as zeroes.
package dact

import (
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquest"
)

type (
	ActI struct {
		TalkedToWarriv bool                        `json:"talked_to_warriv"`
		Quests         [NumActIQuests]dquest.Quest `json:"quests"`
	}
	ActII struct {
		TraveledToAct  bool                         `json:"traveled_to_act"`
		TalkedToJerhyn bool                         `json:"talked_to_jerhyn"`
		Quests         [NumActIIQuests]dquest.Quest `json:"quests"`
	}
	ActIII struct {
		TraveledToAct  bool                          `json:"traveled_to_act"`
		TalkedToHratli bool                          `json:"talked_to_hratli"`
		Quests         [NumActIIIQuests]dquest.Quest `json:"quests"`
	}
	ActIV struct {
		TraveledToAct  bool                         `json:"traveled_to_act"`
		TalkedToTyreal bool                         `json:"talked_to_tyreal"`
		Quests         [NumActIVQuests]dquest.Quest `json:"quests"`
	}
	ActV struct {
		TraveledToAct       bool                        `json:"traveled_to_act"`
		TalkedToCain        bool                        `json:"talked_to_cain"`
		Quests              [NumActVQuests]dquest.Quest `json:"quests"`
		ResetStats          bool                        `json:"reset_stats"`
		CompletedDifficulty bool                        `json:"completed_difficulty"`
	}

	// Field points at one named value of an act: a flag or a quest.
	Field struct {
		Name  string
		Flag  *bool
		Quest *dquest.Quest
	}
	// Act is the named view shared by the five act records, in wire order.
	Act interface {
		Name() string
		Fields() []Field
	}
)

const (
	NumActIQuests   = 6
	NumActIIQuests  = 6
	NumActIIIQuests = 6
	NumActIVQuests  = 3
	NumActVQuests   = 6

	// Bool2Size is the width of a two byte flag: low byte 0x00/0x01, high byte 0x00.
	Bool2Size        = 2
	ActIVPaddingSize = 6
	ActVJunkSize     = 4
	ActVPaddingSize  = 12

	DefaultActISize   = Bool2Size + NumActIQuests*dquest.DefaultQuestSize
	DefaultActIISize  = 2*Bool2Size + NumActIIQuests*dquest.DefaultQuestSize
	DefaultActIIISize = 2*Bool2Size + NumActIIIQuests*dquest.DefaultQuestSize
	DefaultActIVSize  = 2*Bool2Size + NumActIVQuests*dquest.DefaultQuestSize + ActIVPaddingSize
	DefaultActVSize   = 2*Bool2Size + ActVJunkSize + NumActVQuests*dquest.DefaultQuestSize + 2 + ActVPaddingSize
)

const (
	Bool2True               byte = 0x01
	ResetStatsTrue          byte = 0x01
	CompletedDifficultyTrue byte = 0x80
)

// Quest indexes within their act.
const (
	IndexDenOfEvil = iota
	IndexSistersBurialGrounds
	IndexToolsOfTheTrade
	IndexTheSearchForCain
	IndexTheForgottenTower
	IndexSistersToTheSlaughter
)

const (
	IndexRadamentsLair = iota
	IndexTheHoradricStaff
	IndexTaintedSun
	IndexArcaneSanctuary
	IndexTheSummoner
	IndexTheSevenTombs
)

const (
	IndexLamEsensTome = iota
	IndexKhalimsWill
	IndexBladeOfTheOldReligion
	IndexTheGoldenBird
	IndexTheBlackenedTemple
	IndexTheGuardian
)

const (
	IndexTheFallenAngel = iota
	IndexTerrorsEnd
	IndexHellforge
)

const (
	IndexSiegeOnHarrogath = iota
	IndexRescueOnMountArreat
	IndexPrisonOfIce
	IndexBetrayalOfHarrogath
	IndexRiteOfPassage
	IndexEveOfDestruction
)

var (
	ActNames = []string{"act_i", "act_ii", "act_iii", "act_iv", "act_v"}

	ActIQuestNames = []string{
		"den_of_evil",
		"sisters_burial_grounds",
		"tools_of_the_trade",
		"the_search_for_cain",
		"the_forgotten_tower",
		"sisters_to_the_slaughter",
	}
	ActIIQuestNames = []string{
		"radaments_lair",
		"the_horadric_staff",
		"tainted_sun",
		"arcane_sanctuary",
		"the_summoner",
		"the_seven_tombs",
	}
	ActIIIQuestNames = []string{
		"lam_esens_tome",
		"khalims_will",
		"blade_of_the_old_religion",
		"the_golden_bird",
		"the_blackened_temple",
		"the_guardian",
	}
	ActIVQuestNames = []string{
		"the_fallen_angel",
		"terrors_end",
		"hellforge",
	}
	ActVQuestNames = []string{
		"siege_on_harrogath",
		"rescue_on_mount_arreat",
		"prison_of_ice",
		"betrayal_of_harrogath",
		"rite_of_passage",
		"eve_of_destruction",
	}
)
