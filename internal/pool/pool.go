// Package pool defines the persistent pool record, its serialized
// layout, and the deterministic derivation of pool addresses.
//
// One Pool record exists per traded mint pair. The record lives in a
// fixed-size program-owned account and is rewritten in full, exactly
// once, at the end of every successful mutating operation.
package pool

import (
	"bytes"

	bin "github.com/gagliardetto/binary"

	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/pkg/buffer"
	"github.com/lugondev/go-amm/pkg/types"
)

// RecordSize is the serialized size of a Pool record in bytes:
// 1 (is_initialized) + 32 + 32 (mints) + 3*16 (u128 reserves and k).
const RecordSize = 1 + 32 + 32 + 16 + 16 + 16

// Pool is the persistent record backing one trading pair.
//
// InvariantK is always reserve_a * reserve_b; it is recomputed after
// every mutating operation and never stored stale.
type Pool struct {
	// IsInitialized guards against re-initialization and against
	// operating on an empty record.
	IsInitialized bool

	// MintA and MintB identify the two traded assets. Immutable after
	// initialization.
	MintA types.Pubkey
	MintB types.Pubkey

	// ReserveA and ReserveB are the pool's current holdings, in each
	// asset's native smallest unit.
	ReserveA bin.Uint128
	ReserveB bin.Uint128

	// InvariantK is the product of the two reserves.
	InvariantK bin.Uint128
}

// Decode deserializes a Pool record from account bytes.
// An all-zero region decodes to the zero Pool, which is how a freshly
// allocated account reads before Initialize runs.
func Decode(data []byte) (*Pool, error) {
	p := new(Pool)
	if err := bin.NewBorshDecoder(data).Decode(p); err != nil {
		return nil, errors.ErrMalformedPayload.Wrap(err)
	}
	return p, nil
}

// Encode serializes the Pool record.
func (p *Pool) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(p); err != nil {
		return nil, errors.ErrRecordTooLarge.Wrap(err)
	}
	return buf.Bytes(), nil
}

// Store serializes the Pool record into the account byte region.
// A serialization longer than the region fails with ErrRecordTooLarge
// and leaves the region untouched. Serialization runs through pooled
// scratch space since Store sits on every mutating operation's path.
func (p *Pool) Store(dst []byte) error {
	scratch := buffer.GetBuffer(RecordSize)
	defer buffer.PutBuffer(scratch)

	buf := bytes.NewBuffer(scratch[:0])
	if err := bin.NewBorshEncoder(buf).Encode(p); err != nil {
		return errors.ErrRecordTooLarge.Wrap(err)
	}
	if buf.Len() > len(dst) {
		return errors.ErrRecordTooLarge.Wrapf("%d bytes into %d", buf.Len(), len(dst))
	}
	copy(dst, buf.Bytes())
	return nil
}
