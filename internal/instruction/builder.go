package instruction

import (
	"github.com/lugondev/go-amm/pkg/types"

	"github.com/gagliardetto/solana-go"
)

// AccountSet names the eight caller-specific accounts of a request.
// The token and system program references are appended automatically.
type AccountSet struct {
	// User is the primary caller and fee payer. Must sign.
	User types.Pubkey

	// Pool is the pool record account (the derived pool address).
	Pool types.Pubkey

	// PoolTokenA and PoolTokenB hold the pool's reserves.
	PoolTokenA types.Pubkey
	PoolTokenB types.Pubkey

	// UserAuthorityA and UserAuthorityB authorize debits from the
	// user's token accounts. Must sign.
	UserAuthorityA types.Pubkey
	UserAuthorityB types.Pubkey

	// UserTokenA and UserTokenB are the caller's token accounts.
	UserTokenA types.Pubkey
	UserTokenB types.Pubkey
}

// Metas returns the full ten-account list in the order the engine
// validates: caller, pool, pool reserves, user authorities, user token
// accounts, token program, system program.
func (s AccountSet) Metas() []types.AccountMeta {
	return []types.AccountMeta{
		{Pubkey: s.User, IsSigner: true, IsWritable: true},
		{Pubkey: s.Pool, IsSigner: false, IsWritable: true},
		{Pubkey: s.PoolTokenA, IsSigner: false, IsWritable: true},
		{Pubkey: s.PoolTokenB, IsSigner: false, IsWritable: true},
		{Pubkey: s.UserAuthorityA, IsSigner: true, IsWritable: false},
		{Pubkey: s.UserAuthorityB, IsSigner: true, IsWritable: false},
		{Pubkey: s.UserTokenA, IsSigner: false, IsWritable: true},
		{Pubkey: s.UserTokenB, IsSigner: false, IsWritable: true},
		{Pubkey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{Pubkey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}
}

// Build assembles a ready-to-send instruction for the given operation.
func Build(programID types.Pubkey, accounts AccountSet, inst Instruction) types.Instruction {
	return types.Instruction{
		ProgramID: programID,
		Accounts:  accounts.Metas(),
		Data:      inst.Data(),
	}
}
