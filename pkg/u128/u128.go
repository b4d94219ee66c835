// Package u128 provides checked 128-bit unsigned arithmetic for pool
// reserves and trade amounts.
//
// Values are lukechampine.com/uint128 magnitudes. Every operation either
// returns an exact result or an explicit error; nothing wraps or
// truncates silently. The package also converts between the arithmetic
// representation, the bin.Uint128 serialization width used by the pool
// record, and the uint64 width of SPL token transfers.
package u128

import (
	"errors"
	"math/bits"

	bin "github.com/gagliardetto/binary"
	"lukechampine.com/uint128"
)

// Uint128 is a 128-bit unsigned integer.
type Uint128 = uint128.Uint128

// Zero is the zero value.
var Zero = uint128.Zero

// Max is the largest representable value, 2^128 - 1.
var Max = uint128.Max

var (
	// ErrOverflow is returned when a result does not fit in 128 bits,
	// or when a subtraction would go below zero.
	ErrOverflow = errors.New("u128: arithmetic overflow")

	// ErrDivideByZero is returned on division by zero.
	ErrDivideByZero = errors.New("u128: division by zero")

	// ErrValueTooLarge is returned when a value does not fit in the
	// narrower width requested.
	ErrValueTooLarge = errors.New("u128: value exceeds target width")
)

// From64 converts a uint64 to a Uint128.
func From64(v uint64) Uint128 {
	return uint128.From64(v)
}

// New returns the Uint128 with the given low and high words.
func New(lo, hi uint64) Uint128 {
	return uint128.New(lo, hi)
}

// FromString parses a decimal string.
func FromString(s string) (Uint128, error) {
	return uint128.FromString(s)
}

// FromLE decodes a 16-byte little-endian value.
func FromLE(b []byte) Uint128 {
	return uint128.FromBytes(b)
}

// PutLE encodes v into b as 16 little-endian bytes.
func PutLE(b []byte, v Uint128) {
	v.PutBytes(b)
}

// Add returns a+b, or ErrOverflow if the sum exceeds 128 bits.
func Add(a, b Uint128) (Uint128, error) {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, carry := bits.Add64(a.Hi, b.Hi, carry)
	if carry != 0 {
		return Zero, ErrOverflow
	}
	return uint128.New(lo, hi), nil
}

// Sub returns a-b, or ErrOverflow if b > a.
func Sub(a, b Uint128) (Uint128, error) {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, borrow := bits.Sub64(a.Hi, b.Hi, borrow)
	if borrow != 0 {
		return Zero, ErrOverflow
	}
	return uint128.New(lo, hi), nil
}

// Mul returns a*b, or ErrOverflow if the product exceeds 128 bits.
func Mul(a, b Uint128) (Uint128, error) {
	if a.Hi != 0 && b.Hi != 0 {
		return Zero, ErrOverflow
	}
	hi, lo := bits.Mul64(a.Lo, b.Lo)
	p1hi, p1lo := bits.Mul64(a.Lo, b.Hi)
	p2hi, p2lo := bits.Mul64(a.Hi, b.Lo)
	if p1hi != 0 || p2hi != 0 {
		return Zero, ErrOverflow
	}
	hi, carry := bits.Add64(hi, p1lo, 0)
	if carry != 0 {
		return Zero, ErrOverflow
	}
	hi, carry = bits.Add64(hi, p2lo, 0)
	if carry != 0 {
		return Zero, ErrOverflow
	}
	return uint128.New(lo, hi), nil
}

// Div returns a/b rounded toward zero, or ErrDivideByZero if b is zero.
func Div(a, b Uint128) (Uint128, error) {
	if b.IsZero() {
		return Zero, ErrDivideByZero
	}
	return a.Div(b), nil
}

// ToUint64 narrows v to a uint64, or returns ErrValueTooLarge if the
// value does not fit in the external transfer width.
func ToUint64(v Uint128) (uint64, error) {
	if v.Hi != 0 {
		return 0, ErrValueTooLarge
	}
	return v.Lo, nil
}

// FromBin converts from the serialization representation.
func FromBin(v bin.Uint128) Uint128 {
	return uint128.New(v.Lo, v.Hi)
}

// ToBin converts to the serialization representation.
func ToBin(v Uint128) bin.Uint128 {
	return bin.Uint128{Lo: v.Lo, Hi: v.Hi}
}
