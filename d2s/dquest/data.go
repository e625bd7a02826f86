// Package dquest decodes and encodes the 16-bit state of a single quest.
package dquest

type (
	// Quest packs sixteen named flags. Flag i is stored as 1 << i.
	Quest uint16
	Flag  uint8
)

const (
	FlagRewardGranted Flag = iota
	FlagRewardPending
	FlagStarted
	FlagLeftTown
	FlagEnterArea
	FlagCustom1
	FlagDrankPotionOfLife
	FlagCustom2
	FlagReadScrollOfResistance
	FlagCustom3
	FlagCustom4
	FlagSecretCowLevelCompleted
	FlagQuestLog
	FlagPrimaryGoalAchieved
	FlagCompletedNow
	FlagCompletedBefore
)

const (
	NumFlags         = 16
	DefaultQuestSize = 2
)

// FlagNames is indexed by Flag.
var FlagNames = []string{
	"reward_granted",
	"reward_pending",
	"started",
	"left_town",
	"enter_area",
	"custom_1",
	"drank_potion_of_life",
	"custom_2",
	"read_scroll_of_resistance",
	"custom_3",
	"custom_4",
	"secret_cow_level_completed",
	"quest_log",
	"primary_goal_achieved",
	"completed_now",
	"completed_before",
}
