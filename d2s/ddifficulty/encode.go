package ddifficulty

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dact"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/lbytes"
	"github.com/shadowevil/D2SLib-Resurrected/ds"
)

// Encode writes the five acts and checks that exactly DefaultBlockSize bytes went out.
func Encode(writer lbytes.BitWriter, difficulty Difficulty) error {
	start := writer.Position()

	if err := dact.EncodeActI(writer, difficulty.ActI); err != nil {
		return errors.Wrap(err, "ddifficulty.Encode error")
	}
	if err := dact.EncodeActII(writer, difficulty.ActII); err != nil {
		return errors.Wrap(err, "ddifficulty.Encode error")
	}
	if err := dact.EncodeActIII(writer, difficulty.ActIII); err != nil {
		return errors.Wrap(err, "ddifficulty.Encode error")
	}
	if err := dact.EncodeActIV(writer, difficulty.ActIV); err != nil {
		return errors.Wrap(err, "ddifficulty.Encode error")
	}
	if err := dact.EncodeActV(writer, difficulty.ActV); err != nil {
		return errors.Wrap(err, "ddifficulty.Encode error")
	}

	if written := writer.Position() - start; written != DefaultBlockSize*8 {
		return ds.ErrUnreachableCode{
			Caller: "ddifficulty.Encode",
			Detail: fmt.Sprintf("block took %d bits instead of %d", written, DefaultBlockSize*8),
		}
	}
	return nil
}
