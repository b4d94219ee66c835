package pool

import (
	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/pkg/types"
)

// DecodeAccount decodes a fetched account into a Pool record, checking
// that the account is owned by the amm program first. Used off-chain
// (inspection, quoting) where ownership is not already guaranteed by
// request validation.
func DecodeAccount(programID types.Pubkey, account *types.Account) (*Pool, error) {
	if account.Owner != programID {
		return nil, errors.ErrInvalidAccountOwner.Wrapf("pool account owned by %s", account.Owner)
	}
	p, err := Decode(account.Data)
	if err != nil {
		return nil, err
	}
	if !p.IsInitialized {
		return nil, errors.ErrNotInitialized
	}
	return p, nil
}
