package dact

import (
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquest"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
)

// decodeBool2 reads a two byte flag. Only the low byte is inspected.
func decodeBool2(reader lbytes.BitReader, caller string, key string) (bool, error) {
	bs, err := reader.ReadBytes(Bool2Size)
	if err != nil {
		err := errors.Wrapf(err, `%s error reading "%s"`, caller, key)
		return false, err
	}
	return bs[0] == Bool2True, nil
}

func decodeSentinel(reader lbytes.BitReader, caller string, key string, sentinel byte) (bool, error) {
	b, err := reader.ReadByte()
	if err != nil {
		err := errors.Wrapf(err, `%s error reading "%s"`, caller, key)
		return false, err
	}
	return b == sentinel, nil
}

func skipBytes(reader lbytes.BitReader, caller string, key string, n int) error {
	if _, err := reader.ReadBytes(n); err != nil {
		return errors.Wrapf(err, `%s error skipping "%s"`, caller, key)
	}
	return nil
}

func decodeQuests(reader lbytes.BitReader, caller string, quests []dquest.Quest) error {
	if err := dquest.DecodeBlock(reader, quests); err != nil {
		return errors.Wrapf(err, "%s error", caller)
	}
	return nil
}

func DecodeActI(reader lbytes.BitReader) (*ActI, error) {
	const caller = "dact.DecodeActI"
	act := ActI{}
	err := error(nil)

	act.TalkedToWarriv, err = decodeBool2(reader, caller, "talked_to_warriv")
	if err != nil {
		return nil, err
	}
	if err := decodeQuests(reader, caller, act.Quests[:]); err != nil {
		return nil, err
	}

	return &act, nil
}

func DecodeActII(reader lbytes.BitReader) (*ActII, error) {
	const caller = "dact.DecodeActII"
	act := ActII{}
	err := error(nil)

	act.TraveledToAct, err = decodeBool2(reader, caller, "traveled_to_act")
	if err != nil {
		return nil, err
	}
	act.TalkedToJerhyn, err = decodeBool2(reader, caller, "talked_to_jerhyn")
	if err != nil {
		return nil, err
	}
	if err := decodeQuests(reader, caller, act.Quests[:]); err != nil {
		return nil, err
	}

	return &act, nil
}

func DecodeActIII(reader lbytes.BitReader) (*ActIII, error) {
	const caller = "dact.DecodeActIII"
	act := ActIII{}
	err := error(nil)

	act.TraveledToAct, err = decodeBool2(reader, caller, "traveled_to_act")
	if err != nil {
		return nil, err
	}
	act.TalkedToHratli, err = decodeBool2(reader, caller, "talked_to_hratli")
	if err != nil {
		return nil, err
	}
	if err := decodeQuests(reader, caller, act.Quests[:]); err != nil {
		return nil, err
	}

	return &act, nil
}

func DecodeActIV(reader lbytes.BitReader) (*ActIV, error) {
	const caller = "dact.DecodeActIV"
	act := ActIV{}
	err := error(nil)

	act.TraveledToAct, err = decodeBool2(reader, caller, "traveled_to_act")
	if err != nil {
		return nil, err
	}
	act.TalkedToTyreal, err = decodeBool2(reader, caller, "talked_to_tyreal")
	if err != nil {
		return nil, err
	}
	if err := decodeQuests(reader, caller, act.Quests[:]); err != nil {
		return nil, err
	}
	if err := skipBytes(reader, caller, "padding", ActIVPaddingSize); err != nil {
		return nil, err
	}

	return &act, nil
}

func DecodeActV(reader lbytes.BitReader) (*ActV, error) {
	const caller = "dact.DecodeActV"
	act := ActV{}
	err := error(nil)

	act.TraveledToAct, err = decodeBool2(reader, caller, "traveled_to_act")
	if err != nil {
		return nil, err
	}
	act.TalkedToCain, err = decodeBool2(reader, caller, "talked_to_cain")
	if err != nil {
		return nil, err
	}
	if err := skipBytes(reader, caller, "junk", ActVJunkSize); err != nil {
		return nil, err
	}
	if err := decodeQuests(reader, caller, act.Quests[:]); err != nil {
		return nil, err
	}
	act.ResetStats, err = decodeSentinel(reader, caller, "reset_stats", ResetStatsTrue)
	if err != nil {
		return nil, err
	}
	act.CompletedDifficulty, err = decodeSentinel(reader, caller, "completed_difficulty", CompletedDifficultyTrue)
	if err != nil {
		return nil, err
	}
	if err := skipBytes(reader, caller, "padding", ActVPaddingSize); err != nil {
		return nil, err
	}

	return &act, nil
}
