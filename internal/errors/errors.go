// Package errors defines error types used throughout the amm engine.
//
// Every failure surfaced by the engine carries a code identifying its
// category, so callers can tell a binding failure from an arithmetic
// overflow from a liquidity shortfall. Errors are terminal for the
// request that produced them; there is no retry or partial recovery.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for the amm engine, grouped by category.
const (
	// Binding errors.
	ErrCodeInvalidAccountOwner = "INVALID_ACCOUNT_OWNER"
	ErrCodeMissingSignature    = "MISSING_SIGNATURE"
	ErrCodeWrongProgramID      = "WRONG_PROGRAM_ID"
	ErrCodeAddressMismatch     = "ADDRESS_MISMATCH"
	ErrCodeMissingAccount      = "MISSING_ACCOUNT"

	// Payload errors.
	ErrCodeMalformedPayload = "MALFORMED_PAYLOAD"

	// Domain errors.
	ErrCodeNotInitialized     = "NOT_INITIALIZED"
	ErrCodeAlreadyInitialized = "ALREADY_INITIALIZED"
	ErrCodeAssetMismatch      = "ASSET_MISMATCH"
	ErrCodeInvalidAmount      = "INVALID_AMOUNT"

	// Arithmetic errors.
	ErrCodeAmountTooLarge     = "AMOUNT_TOO_LARGE"
	ErrCodeArithmeticOverflow = "ARITHMETIC_OVERFLOW"

	// Liquidity errors.
	ErrCodeInsufficientLiquidity = "INSUFFICIENT_LIQUIDITY"

	// Persistence errors.
	ErrCodeRecordTooLarge = "RECORD_TOO_LARGE"

	// External ledger errors.
	ErrCodeTransferFailed  = "TRANSFER_FAILED"
	ErrCodeBootstrapFailed = "BOOTSTRAP_FAILED"
)

// AmmError represents an error in the amm engine.
type AmmError struct {
	// Code is a unique error code for this error type.
	Code string

	// Message is a human-readable error message.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *AmmError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AmmError) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches the target.
// Two AmmErrors match when their codes are equal.
func (e *AmmError) Is(target error) bool {
	t, ok := target.(*AmmError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap returns a copy of the error carrying the given cause. The
// receiver is left untouched so the predeclared errors stay immutable.
func (e *AmmError) Wrap(cause error) *AmmError {
	return &AmmError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   cause,
	}
}

// Wrapf returns a copy of the error with extra message context.
func (e *AmmError) Wrapf(format string, args ...any) *AmmError {
	return &AmmError{
		Code:    e.Code,
		Message: fmt.Sprintf("%s: %s", e.Message, fmt.Sprintf(format, args...)),
		Cause:   e.Cause,
	}
}

// NewError creates a new AmmError.
func NewError(code, message string) *AmmError {
	return &AmmError{
		Code:    code,
		Message: message,
	}
}

// Pre-defined errors, one per failure category.
var (
	// ErrInvalidAccountOwner is returned when a token account is not owned by the token program.
	ErrInvalidAccountOwner = NewError(ErrCodeInvalidAccountOwner, "account not owned by expected program")

	// ErrMissingSignature is returned when a required signer did not sign.
	ErrMissingSignature = NewError(ErrCodeMissingSignature, "required signature missing")

	// ErrWrongProgramID is returned when the supplied ledger program is not the known token program.
	ErrWrongProgramID = NewError(ErrCodeWrongProgramID, "wrong program id")

	// ErrAddressMismatch is returned when a supplied pool account does not match its derived address.
	ErrAddressMismatch = NewError(ErrCodeAddressMismatch, "pool address does not match derivation")

	// ErrMissingAccount is returned when the request account list is incomplete.
	ErrMissingAccount = NewError(ErrCodeMissingAccount, "missing account in request")

	// ErrMalformedPayload is returned for an unknown opcode or wrong payload length.
	ErrMalformedPayload = NewError(ErrCodeMalformedPayload, "malformed instruction payload")

	// ErrNotInitialized is returned when operating on an uninitialized pool.
	ErrNotInitialized = NewError(ErrCodeNotInitialized, "pool not initialized")

	// ErrAlreadyInitialized is returned when re-initializing a pool.
	ErrAlreadyInitialized = NewError(ErrCodeAlreadyInitialized, "pool already initialized")

	// ErrAssetMismatch is returned when a token account's mint differs from the pool's recorded mint.
	ErrAssetMismatch = NewError(ErrCodeAssetMismatch, "token account mint mismatch")

	// ErrInvalidAmount is returned for zero amounts.
	ErrInvalidAmount = NewError(ErrCodeInvalidAmount, "amount must be positive")

	// ErrAmountTooLarge is returned when an amount exceeds the external transfer width.
	ErrAmountTooLarge = NewError(ErrCodeAmountTooLarge, "amount exceeds transfer width")

	// ErrArithmeticOverflow is returned when a checked operation overflows or underflows.
	ErrArithmeticOverflow = NewError(ErrCodeArithmeticOverflow, "arithmetic overflow")

	// ErrInsufficientLiquidity is returned when a swap quote is zero or exceeds the opposite reserve.
	ErrInsufficientLiquidity = NewError(ErrCodeInsufficientLiquidity, "insufficient liquidity")

	// ErrRecordTooLarge is returned when a serialized pool record exceeds its account space.
	ErrRecordTooLarge = NewError(ErrCodeRecordTooLarge, "record exceeds account space")

	// ErrTransferFailed is returned when the external ledger rejects a transfer leg.
	ErrTransferFailed = NewError(ErrCodeTransferFailed, "ledger transfer failed")

	// ErrBootstrapFailed is returned when funding, allocating, or assigning the pool account fails.
	ErrBootstrapFailed = NewError(ErrCodeBootstrapFailed, "pool account bootstrap failed")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
