// Package instruction defines the wire format of amm requests and the
// closed set of decoded operations.
//
// A request is a single opcode byte followed by a fixed-width
// little-endian payload. Decoding produces one of the Instruction
// variants; anything else fails with ErrMalformedPayload. The package
// also provides the encode direction so clients can build the exact
// instruction bytes the engine expects.
package instruction

import (
	"github.com/lugondev/go-amm/internal/errors"
	"github.com/lugondev/go-amm/pkg/types"
	"github.com/lugondev/go-amm/pkg/u128"

	"github.com/gagliardetto/solana-go"
)

// Opcode selects the operation encoded in the first byte of a request.
type Opcode uint8

const (
	// OpInitialize creates the pool record for a mint pair.
	OpInitialize Opcode = 0

	// OpAddLiquidity deposits both assets into the pool.
	OpAddLiquidity Opcode = 1

	// OpSwapAToB sells asset A for asset B.
	OpSwapAToB Opcode = 2

	// OpSwapBToA sells asset B for asset A.
	OpSwapBToA Opcode = 3
)

// Payload sizes per opcode, excluding the opcode byte.
const (
	initializeSize   = 32 + 32
	addLiquiditySize = 16 + 16
	swapSize         = 16
)

// Direction identifies which asset a swap sells.
type Direction uint8

const (
	// AToB sells asset A for asset B.
	AToB Direction = iota

	// BToA sells asset B for asset A.
	BToA
)

// String returns a short human-readable direction name.
func (d Direction) String() string {
	if d == AToB {
		return "a_to_b"
	}
	return "b_to_a"
}

// Instruction is a decoded amm request. The variant set is closed:
// Initialize, AddLiquidity, and Swap are the only implementations.
type Instruction interface {
	// Opcode returns the opcode this instruction encodes as.
	Opcode() Opcode

	// Data returns the full wire encoding, opcode byte included.
	Data() []byte

	isInstruction()
}

// Initialize creates the pool record for an ordered mint pair.
type Initialize struct {
	// MintA is the mint of the pool's first asset.
	MintA types.Pubkey

	// MintB is the mint of the pool's second asset.
	MintB types.Pubkey
}

// Opcode implements Instruction.
func (Initialize) Opcode() Opcode { return OpInitialize }

// Data implements Instruction.
func (i Initialize) Data() []byte {
	data := make([]byte, 1+initializeSize)
	data[0] = byte(OpInitialize)
	copy(data[1:33], i.MintA[:])
	copy(data[33:65], i.MintB[:])
	return data
}

func (Initialize) isInstruction() {}

// AddLiquidity deposits amounts of both assets into the pool.
type AddLiquidity struct {
	// AmountA is the deposit of asset A, in native units.
	AmountA u128.Uint128

	// AmountB is the deposit of asset B, in native units.
	AmountB u128.Uint128
}

// Opcode implements Instruction.
func (AddLiquidity) Opcode() Opcode { return OpAddLiquidity }

// Data implements Instruction.
func (a AddLiquidity) Data() []byte {
	data := make([]byte, 1+addLiquiditySize)
	data[0] = byte(OpAddLiquidity)
	u128.PutLE(data[1:17], a.AmountA)
	u128.PutLE(data[17:33], a.AmountB)
	return data
}

func (AddLiquidity) isInstruction() {}

// Swap sells AmountIn of one asset for the other.
type Swap struct {
	// Direction selects which asset is being sold.
	Direction Direction

	// AmountIn is the input amount, in native units.
	AmountIn u128.Uint128
}

// Opcode implements Instruction.
func (s Swap) Opcode() Opcode {
	if s.Direction == AToB {
		return OpSwapAToB
	}
	return OpSwapBToA
}

// Data implements Instruction.
func (s Swap) Data() []byte {
	data := make([]byte, 1+swapSize)
	data[0] = byte(s.Opcode())
	u128.PutLE(data[1:17], s.AmountIn)
	return data
}

func (Swap) isInstruction() {}

// Decode parses raw request bytes into an Instruction.
//
// An empty request, an unknown opcode, or a payload whose length does
// not exactly match the opcode's layout fails with ErrMalformedPayload.
func Decode(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, errors.ErrMalformedPayload.Wrapf("empty request")
	}

	payload := data[1:]
	switch Opcode(data[0]) {
	case OpInitialize:
		if len(payload) != initializeSize {
			return nil, errors.ErrMalformedPayload.Wrapf("initialize payload is %d bytes, want %d", len(payload), initializeSize)
		}
		return Initialize{
			MintA: solana.PublicKeyFromBytes(payload[0:32]),
			MintB: solana.PublicKeyFromBytes(payload[32:64]),
		}, nil

	case OpAddLiquidity:
		if len(payload) != addLiquiditySize {
			return nil, errors.ErrMalformedPayload.Wrapf("add-liquidity payload is %d bytes, want %d", len(payload), addLiquiditySize)
		}
		return AddLiquidity{
			AmountA: u128.FromLE(payload[0:16]),
			AmountB: u128.FromLE(payload[16:32]),
		}, nil

	case OpSwapAToB, OpSwapBToA:
		if len(payload) != swapSize {
			return nil, errors.ErrMalformedPayload.Wrapf("swap payload is %d bytes, want %d", len(payload), swapSize)
		}
		dir := AToB
		if Opcode(data[0]) == OpSwapBToA {
			dir = BToA
		}
		return Swap{
			Direction: dir,
			AmountIn:  u128.FromLE(payload[0:16]),
		}, nil

	default:
		return nil, errors.ErrMalformedPayload.Wrapf("unknown opcode %d", data[0])
	}
}
