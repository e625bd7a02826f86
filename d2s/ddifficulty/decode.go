package ddifficulty

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dact"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
	"github.com/shadowevil/D2SLib-Resurrected/ds"
)

func Decode(reader lbytes.BitReader) (*Difficulty, error) {
	start := reader.Position()
	difficulty := Difficulty{}

	actI, err := dact.DecodeActI(reader)
	if err != nil {
		return nil, errors.Wrap(err, "ddifficulty.Decode error")
	}
	actII, err := dact.DecodeActII(reader)
	if err != nil {
		return nil, errors.Wrap(err, "ddifficulty.Decode error")
	}
	actIII, err := dact.DecodeActIII(reader)
	if err != nil {
		return nil, errors.Wrap(err, "ddifficulty.Decode error")
	}
	actIV, err := dact.DecodeActIV(reader)
	if err != nil {
		return nil, errors.Wrap(err, "ddifficulty.Decode error")
	}
	actV, err := dact.DecodeActV(reader)
	if err != nil {
		return nil, errors.Wrap(err, "ddifficulty.Decode error")
	}
	if read := reader.Position() - start; read != DefaultBlockSize*8 {
		return nil, ds.ErrUnreachableCode{
			Caller: "ddifficulty.Decode",
			Detail: fmt.Sprintf("block took %d bits instead of %d", read, DefaultBlockSize*8),
		}
	}

	difficulty.ActI = *actI
	difficulty.ActII = *actII
	difficulty.ActIII = *actIII
	difficulty.ActIV = *actIV
	difficulty.ActV = *actV
	return &difficulty, nil
}
