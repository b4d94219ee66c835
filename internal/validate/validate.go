// Package validate binds and checks the ordered account list supplied
// with every amm request.
//
// Binding and validation run once, before opcode dispatch, and have no
// side effects. Every check failure is terminal for the request.
package validate

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/pkg/types"
)

// AccountCount is the fixed length of the request account list.
const AccountCount = 10

// Accounts is the bound account list of one request, in wire order.
type Accounts struct {
	// User is the primary caller. Must sign.
	User *types.AccountInfo

	// Pool is the pool record account.
	Pool *types.AccountInfo

	// PoolTokenA and PoolTokenB hold the pool's reserves.
	PoolTokenA *types.AccountInfo
	PoolTokenB *types.AccountInfo

	// UserAuthorityA and UserAuthorityB authorize debits from the
	// user's token accounts. Must sign.
	UserAuthorityA *types.AccountInfo
	UserAuthorityB *types.AccountInfo

	// UserTokenA and UserTokenB are the caller's token accounts.
	UserTokenA *types.AccountInfo
	UserTokenB *types.AccountInfo

	// TokenProgram is the external token ledger program reference.
	TokenProgram *types.AccountInfo

	// SystemProgram is the funding/system capability reference.
	SystemProgram *types.AccountInfo
}

// Bind maps the ordered request account list onto named slots.
// Anything other than exactly AccountCount accounts fails.
func Bind(list []*types.AccountInfo) (*Accounts, error) {
	if len(list) != AccountCount {
		return nil, errors.ErrMissingAccount.Wrapf("got %d accounts, want %d", len(list), AccountCount)
	}
	return &Accounts{
		User:           list[0],
		Pool:           list[1],
		PoolTokenA:     list[2],
		PoolTokenB:     list[3],
		UserAuthorityA: list[4],
		UserAuthorityB: list[5],
		UserTokenA:     list[6],
		UserTokenB:     list[7],
		TokenProgram:   list[8],
		SystemProgram:  list[9],
	}, nil
}

// Validate runs the binding checks shared by every opcode:
//
//   - the four token accounts must be owned by the token program
//   - the caller and both transfer authorities must be signers
//   - the supplied token program must be the known token program
func (a *Accounts) Validate() error {
	if a.PoolTokenA.Owner != solana.TokenProgramID || a.PoolTokenB.Owner != solana.TokenProgramID {
		return errors.ErrInvalidAccountOwner.Wrapf("pool token accounts must be owned by the token program")
	}
	if !a.User.IsSigner {
		return errors.ErrMissingSignature.Wrapf("caller %s", a.User.Pubkey)
	}
	if a.UserTokenA.Owner != solana.TokenProgramID || a.UserTokenB.Owner != solana.TokenProgramID {
		return errors.ErrInvalidAccountOwner.Wrapf("user token accounts must be owned by the token program")
	}
	if a.TokenProgram.Pubkey != solana.TokenProgramID {
		return errors.ErrWrongProgramID.Wrapf("token program %s", a.TokenProgram.Pubkey)
	}
	if !a.UserAuthorityA.IsSigner || !a.UserAuthorityB.IsSigner {
		return errors.ErrMissingSignature.Wrapf("transfer authorities must sign")
	}
	return nil
}
