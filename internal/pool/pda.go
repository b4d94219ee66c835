package pool

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/pkg/types"
)

// SeedTag is the domain-separation tag prefixing every pool address
// derivation.
const SeedTag = "amm"

// Derive computes the pool's deterministic address for an ordered mint
// pair, together with the bump that keeps the address off the ed25519
// curve. The same pair always derives the same address; two distinct
// pairs can never collide.
func Derive(programID, mintA, mintB types.Pubkey) (types.Pubkey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress(
		[][]byte{[]byte(SeedTag), mintA[:], mintB[:]},
		programID,
	)
	if err != nil {
		// Exhausting the bump space is a configuration-level failure,
		// not expected for any real mint pair.
		return types.Pubkey{}, 0, errors.ErrAddressMismatch.Wrap(err)
	}
	return addr, bump, nil
}

// Seeds returns the derivation seeds, bump included, that prove the
// pool's authority over its derived address when signing outgoing
// transfers.
func Seeds(mintA, mintB types.Pubkey, bump uint8) [][]byte {
	return [][]byte{
		[]byte(SeedTag),
		mintA[:],
		mintB[:],
		{bump},
	}
}
