package dact

import (
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquest"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
)

func encodeBool2(writer lbytes.BitWriter, caller string, key string, value bool) error {
	bs := []byte{lbytes.EncodeBool(value), 0x00}
	if err := writer.WriteBytes(bs); err != nil {
		return errors.Wrapf(err, `%s error writing "%s"`, caller, key)
	}
	return nil
}

func encodeSentinel(writer lbytes.BitWriter, caller string, key string, sentinel byte, value bool) error {
	b := byte(0x00)
	if value {
		b = sentinel
	}
	if err := writer.WriteByte(b); err != nil {
		return errors.Wrapf(err, `%s error writing "%s"`, caller, key)
	}
	return nil
}

func encodeZeroes(writer lbytes.BitWriter, caller string, key string, n int) error {
	if err := writer.WriteBytes(lbytes.CreateZeroBytes(n)); err != nil {
		return errors.Wrapf(err, `%s error writing "%s"`, caller, key)
	}
	return nil
}

func encodeQuests(writer lbytes.BitWriter, caller string, quests []dquest.Quest) error {
	if err := dquest.EncodeBlock(writer, quests); err != nil {
		return errors.Wrapf(err, "%s error", caller)
	}
	return nil
}

func EncodeActI(writer lbytes.BitWriter, act ActI) error {
	const caller = "dact.EncodeActI"
	if err := encodeBool2(writer, caller, "talked_to_warriv", act.TalkedToWarriv); err != nil {
		return err
	}
	return encodeQuests(writer, caller, act.Quests[:])
}

func EncodeActII(writer lbytes.BitWriter, act ActII) error {
	const caller = "dact.EncodeActII"
	if err := encodeBool2(writer, caller, "traveled_to_act", act.TraveledToAct); err != nil {
		return err
	}
	if err := encodeBool2(writer, caller, "talked_to_jerhyn", act.TalkedToJerhyn); err != nil {
		return err
	}
	return encodeQuests(writer, caller, act.Quests[:])
}

func EncodeActIII(writer lbytes.BitWriter, act ActIII) error {
	const caller = "dact.EncodeActIII"
	if err := encodeBool2(writer, caller, "traveled_to_act", act.TraveledToAct); err != nil {
		return err
	}
	if err := encodeBool2(writer, caller, "talked_to_hratli", act.TalkedToHratli); err != nil {
		return err
	}
	return encodeQuests(writer, caller, act.Quests[:])
}

func EncodeActIV(writer lbytes.BitWriter, act ActIV) error {
	const caller = "dact.EncodeActIV"
	if err := encodeBool2(writer, caller, "traveled_to_act", act.TraveledToAct); err != nil {
		return err
	}
	if err := encodeBool2(writer, caller, "talked_to_tyreal", act.TalkedToTyreal); err != nil {
		return err
	}
	if err := encodeQuests(writer, caller, act.Quests[:]); err != nil {
		return err
	}
	return encodeZeroes(writer, caller, "padding", ActIVPaddingSize)
}

func EncodeActV(writer lbytes.BitWriter, act ActV) error {
	const caller = "dact.EncodeActV"
	if err := encodeBool2(writer, caller, "traveled_to_act", act.TraveledToAct); err != nil {
		return err
	}
	if err := encodeBool2(writer, caller, "talked_to_cain", act.TalkedToCain); err != nil {
		return err
	}
	if err := encodeZeroes(writer, caller, "junk", ActVJunkSize); err != nil {
		return err
	}
	if err := encodeQuests(writer, caller, act.Quests[:]); err != nil {
		return err
	}
	if err := encodeSentinel(writer, caller, "reset_stats", ResetStatsTrue, act.ResetStats); err != nil {
		return err
	}
	if err := encodeSentinel(writer, caller, "completed_difficulty", CompletedDifficultyTrue, act.CompletedDifficulty); err != nil {
		return err
	}
	return encodeZeroes(writer, caller, "padding", ActVPaddingSize)
}
