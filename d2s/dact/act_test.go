package dact

import (
	"encoding/json"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquest"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSizes(t *testing.T) {
	assert.Equal(t, 14, DefaultActISize)
	assert.Equal(t, 16, DefaultActIISize)
	assert.Equal(t, 16, DefaultActIIISize)
	assert.Equal(t, 16, DefaultActIVSize)
	assert.Equal(t, 34, DefaultActVSize)
}

func TestActI_DecodeEncode(t *testing.T) {
	bs := []byte{
		0x01, 0x00,
		0x01, 0x80,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0xFF, 0xFF,
	}
	reader := lbytes.NewBytesReader(bs)
	act, err := DecodeActI(reader)
	require.NoError(t, err)
	assert.Equal(t, DefaultActISize*8, reader.Position())

	assert.True(t, act.TalkedToWarriv)
	assert.True(t, act.DenOfEvil().RewardGranted())
	assert.True(t, act.DenOfEvil().CompletedBefore())
	assert.Equal(t, dquest.Quest(0xFFFF), *act.SistersToTheSlaughter())

	writer := lbytes.NewBytesWriter()
	require.NoError(t, EncodeActI(writer, *act))
	assert.Equal(t, bs, writer.Bytes())
}

func TestDecodeBool2_OnlyLowByte(t *testing.T) {
	bs := append([]byte{0x01, 0xFF}, lbytes.CreateZeroBytes(12)...)
	act, err := DecodeActI(lbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.True(t, act.TalkedToWarriv)

	writer := lbytes.NewBytesWriter()
	require.NoError(t, EncodeActI(writer, *act))
	assert.Equal(t, []byte{0x01, 0x00}, writer.Bytes()[:2])

	bs[0] = 0x02
	act, err = DecodeActI(lbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.False(t, act.TalkedToWarriv)
}

func TestActII_ActIII_DecodeEncode(t *testing.T) {
	bs := lbytes.CreateZeroBytes(DefaultActIISize)
	bs[0] = 0x01
	bs[2] = 0x01
	bs[4+2*IndexTheSevenTombs] = 0x04

	actII, err := DecodeActII(lbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.True(t, actII.TraveledToAct)
	assert.True(t, actII.TalkedToJerhyn)
	assert.True(t, actII.TheSevenTombs().Started())
	assert.False(t, actII.RadamentsLair().Started())

	actIII, err := DecodeActIII(lbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.True(t, actIII.TalkedToHratli)
	assert.True(t, actIII.TheGuardian().Started())

	writer := lbytes.NewBytesWriter()
	require.NoError(t, EncodeActII(writer, *actII))
	require.NoError(t, EncodeActIII(writer, *actIII))
	assert.Equal(t, append(append([]byte{}, bs...), bs...), writer.Bytes())
}

func TestActIV_PaddingNormalized(t *testing.T) {
	bs := lbytes.CreateZeroBytes(DefaultActIVSize)
	bs[2] = 0x01
	bs[4+2*IndexHellforge+1] = 0x20
	for i := DefaultActIVSize - ActIVPaddingSize; i < DefaultActIVSize; i++ {
		bs[i] = 0xAB
	}

	reader := lbytes.NewBytesReader(bs)
	act, err := DecodeActIV(reader)
	require.NoError(t, err)
	assert.Equal(t, DefaultActIVSize*8, reader.Position())
	assert.True(t, act.TalkedToTyreal)
	assert.True(t, act.Hellforge().PrimaryGoalAchieved())

	writer := lbytes.NewBytesWriter()
	require.NoError(t, EncodeActIV(writer, *act))
	expected := lbytes.CreateZeroBytes(DefaultActIVSize)
	expected[2] = 0x01
	expected[4+2*IndexHellforge+1] = 0x20
	assert.Equal(t, expected, writer.Bytes())
}

func createActVBytes(resetStats byte, completedDifficulty byte) []byte {
	bs := lbytes.CreateZeroBytes(DefaultActVSize)
	bs[0] = 0x01
	bs[4] = 0xDE
	bs[5] = 0xAD
	bs[8+2*IndexEveOfDestruction] = 0x01
	bs[20] = resetStats
	bs[21] = completedDifficulty
	bs[DefaultActVSize-1] = 0x7F
	return bs
}

func TestActV_Sentinels(t *testing.T) {
	tests := map[string]struct {
		resetStats                  byte
		completedDifficulty         byte
		expectedResetStats          bool
		expectedCompletedDifficulty bool
	}{
		"both set":               {0x01, 0x80, true, true},
		"both clear":             {0x00, 0x00, false, false},
		"reset stats invalid":    {0x02, 0x80, false, true},
		"completed as bool":      {0x01, 0x01, true, false},
		"completed high bits":    {0xFF, 0x81, false, false},
		"reset stats high value": {0x80, 0x00, false, false},
	}

	for name, test := range tests {
		bs := createActVBytes(test.resetStats, test.completedDifficulty)
		act, err := DecodeActV(lbytes.NewBytesReader(bs))
		require.NoError(t, err, name)
		assert.Equal(t, test.expectedResetStats, act.ResetStats, name)
		assert.Equal(t, test.expectedCompletedDifficulty, act.CompletedDifficulty, name)
		assert.True(t, act.TraveledToAct, name)
		assert.True(t, act.EveOfDestruction().RewardGranted(), name)
	}
}

func TestActV_EncodeNormalizes(t *testing.T) {
	act, err := DecodeActV(lbytes.NewBytesReader(createActVBytes(0x02, 0x80)))
	require.NoError(t, err)
	assert.False(t, act.ResetStats)

	writer := lbytes.NewBytesWriter()
	require.NoError(t, EncodeActV(writer, *act))
	bs := writer.Bytes()
	require.Len(t, bs, DefaultActVSize)

	assert.Equal(t, byte(0x00), bs[20])
	assert.Equal(t, byte(0x80), bs[21])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, bs[4:8])
	assert.Equal(t, lbytes.CreateZeroBytes(ActVPaddingSize), bs[22:])
	assert.Equal(t, byte(0x01), bs[8+2*IndexEveOfDestruction])
}

func TestDecode_Truncated(t *testing.T) {
	_, err := DecodeActV(lbytes.NewBytesReader(lbytes.CreateZeroBytes(DefaultActVSize - 1)))
	assert.ErrorAs(t, err, &lbytes.ErrNotEnoughBytes{})

	_, err = DecodeActIV(lbytes.NewBytesReader(lbytes.CreateZeroBytes(DefaultActIVSize - 1)))
	assert.ErrorAs(t, err, &lbytes.ErrNotEnoughBytes{})
}

func TestToLinkedHashMap(t *testing.T) {
	act := ActV{ResetStats: true}
	act.RiteOfPassage().Set(dquest.FlagStarted, true)

	lhm := ToLinkedHashMap(&act)
	assert.Equal(
		t,
		[]string{
			"traveled_to_act",
			"talked_to_cain",
			"siege_on_harrogath",
			"rescue_on_mount_arreat",
			"prison_of_ice",
			"betrayal_of_harrogath",
			"rite_of_passage",
			"eve_of_destruction",
			"reset_stats",
			"completed_difficulty",
		},
		lhm.Keys(),
	)
	quest, ok := lhm.Get("rite_of_passage")
	require.True(t, ok)
	assert.True(t, quest.(dquest.Quest).Started())
}

func TestFromLinkedHashMap(t *testing.T) {
	source := ActIV{TalkedToTyreal: true}
	source.TerrorsEnd().Set(dquest.FlagCompletedBefore, true)
	source.TerrorsEnd().Set(dquest.FlagQuestLog, true)

	bs, err := json.Marshal(ToLinkedHashMap(&source))
	require.NoError(t, err)

	lhm := orderedmap.New()
	require.NoError(t, json.Unmarshal(bs, lhm))

	target := ActIV{}
	require.NoError(t, FromLinkedHashMap(&target, *lhm))
	assert.Equal(t, source, target)
}

func TestFromLinkedHashMap_Rejects(t *testing.T) {
	lhm := orderedmap.New()
	lhm.Set("talked_to_cain", true)
	err := FromLinkedHashMap(&ActI{}, *lhm)
	assert.ErrorAs(t, err, &ErrUnknownField{})

	lhm = orderedmap.New()
	lhm.Set("talked_to_warriv", "yes")
	err = FromLinkedHashMap(&ActI{}, *lhm)
	assert.ErrorAs(t, err, &ErrInvalidFlag{})
}
