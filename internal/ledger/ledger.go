// Package ledger defines the engine's view of the external asset
// ledger: token transfers under either the caller's or the pool's
// derived authority, and the system-level capabilities used to
// bootstrap the pool account.
//
// Every call is synchronous; a failure aborts the whole request before
// any pool state is persisted. The engine never retries.
package ledger

import (
	"context"

	"github.com/lugondev/go-amm/pkg/types"
)

// TokenLedger is the external token transfer capability.
type TokenLedger interface {
	// Transfer moves amount from source to dest under the given signed
	// user authority.
	Transfer(ctx context.Context, source, dest, authority types.Pubkey, amount uint64) error

	// TransferSigned moves amount from source to dest under the pool's
	// derived authority. The seeds are the pool's derivation seeds,
	// bump included; presenting them is what proves the pool's right
	// to sign without a private key.
	TransferSigned(ctx context.Context, source, dest, authority types.Pubkey, amount uint64, seeds [][]byte) error
}

// SystemLedger is the system-program capability used by the Initialize
// bootstrap when the pool account has no funding yet.
type SystemLedger interface {
	// FundAccount transfers lamports from the caller to the target.
	FundAccount(ctx context.Context, from, to types.Pubkey, lamports uint64) error

	// Allocate sizes the target's data region, signed by the derived
	// address via seeds.
	Allocate(ctx context.Context, target types.Pubkey, space uint64, seeds [][]byte) error

	// Assign hands ownership of the target to the given program,
	// signed by the derived address via seeds.
	Assign(ctx context.Context, target, owner types.Pubkey, seeds [][]byte) error
}

// Rent reports the minimum lamport balance that keeps an account of the
// given size alive.
type Rent interface {
	MinimumBalance(size int) uint64
}

// RentFunc adapts a function to the Rent interface.
type RentFunc func(size int) uint64

// MinimumBalance implements Rent.
func (f RentFunc) MinimumBalance(size int) uint64 {
	return f(size)
}
