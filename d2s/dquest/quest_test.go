package dquest

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
	"github.com/shadowevil/D2SLib-Resurrected/ds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncode_AllValues(t *testing.T) {
	values := ds.MakeRange(0, 1<<16, 1)
	require.Len(t, values, 1<<16)

	for _, value := range values {
		bs := lbytes.EncodeUInt16(uint16(value))
		quest, err := Decode(lbytes.NewBytesReader(bs))
		require.NoError(t, err)

		writer := lbytes.NewBytesWriter()
		require.NoError(t, Encode(writer, quest))
		require.Equal(t, bs, writer.Bytes())
		require.Equal(t, DefaultQuestSize*8, writer.Position())
	}
}

func TestDecode_BitOrder(t *testing.T) {
	quest, err := Decode(lbytes.NewBytesReader([]byte{0x01, 0x80}))
	require.NoError(t, err)

	assert.True(t, quest.RewardGranted())
	assert.True(t, quest.CompletedBefore())
	assert.Equal(t, []string{"reward_granted", "completed_before"}, quest.SetFlagNames())
}

func TestDecode_Truncated(t *testing.T) {
	_, err := Decode(lbytes.NewBytesReader([]byte{0x01}))
	assert.ErrorAs(t, err, &lbytes.ErrNotEnoughBytes{})
}

func TestQuest_NamedAccessors(t *testing.T) {
	accessors := []func(Quest) bool{
		Quest.RewardGranted,
		Quest.RewardPending,
		Quest.Started,
		Quest.LeftTown,
		Quest.EnterArea,
		Quest.Custom1,
		Quest.DrankPotionOfLife,
		Quest.Custom2,
		Quest.ReadScrollOfResistance,
		Quest.Custom3,
		Quest.Custom4,
		Quest.SecretCowLevelCompleted,
		Quest.QuestLog,
		Quest.PrimaryGoalAchieved,
		Quest.CompletedNow,
		Quest.CompletedBefore,
	}
	require.Len(t, accessors, NumFlags)
	require.Len(t, FlagNames, NumFlags)

	lo.ForEach(
		accessors,
		func(accessor func(Quest) bool, i int) {
			quest := Quest(0)
			quest.Set(Flag(i), true)
			assert.Equal(t, uint16(1<<i), quest.Uint16())
			assert.True(t, accessor(quest), FlagNames[i])

			others := lo.Filter(
				accessors,
				func(_ func(Quest) bool, j int) bool { return j != i },
			)
			assert.True(
				t,
				lo.EveryBy(others, func(other func(Quest) bool) bool { return !other(quest) }),
				FlagNames[i],
			)

			quest.Set(Flag(i), false)
			assert.Equal(t, Quest(0), quest)
		},
	)
}

func TestQuest_JSON(t *testing.T) {
	quest := FromUint16(0)
	quest.Set(FlagStarted, true)
	quest.Set(FlagCompletedNow, true)

	bs, err := json.Marshal(quest)
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"started":true`)
	assert.Contains(t, string(bs), `"completed_now":true`)

	decoded := Quest(0xFFFF)
	require.NoError(t, json.Unmarshal(bs, &decoded))
	assert.Equal(t, quest, decoded)

	err = json.Unmarshal([]byte(`{"unknown":true}`), &decoded)
	assert.ErrorAs(t, err, &ErrUnknownFlag{})
}
