package ledger

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/lugondev/go-amm/internal/errors"
)

// UnpackTokenAccount decodes the SPL token account layout from raw
// account bytes. The engine uses it to read the mint recorded on the
// pool's reserve accounts.
func UnpackTokenAccount(data []byte) (*token.Account, error) {
	acc := new(token.Account)
	if err := bin.NewBinDecoder(data).Decode(acc); err != nil {
		return nil, errors.ErrAssetMismatch.Wrap(err)
	}
	return acc, nil
}
