package errors

import (
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := NewError("SOME_CODE", "something broke")
	if got := err.Error(); got != "SOME_CODE: something broke" {
		t.Fatalf("Error() = %q", got)
	}

	wrapped := err.Wrap(fmt.Errorf("underlying"))
	if got := wrapped.Error(); got != "SOME_CODE: something broke: underlying" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	if !Is(ErrInvalidAmount.Wrapf("extra context"), ErrInvalidAmount) {
		t.Fatal("Wrapf must preserve code identity")
	}
	if !Is(ErrTransferFailed.Wrap(fmt.Errorf("rpc down")), ErrTransferFailed) {
		t.Fatal("Wrap must preserve code identity")
	}
	if Is(ErrInvalidAmount, ErrTransferFailed) {
		t.Fatal("distinct codes must not match")
	}
}

func TestWrapLeavesOriginalUntouched(t *testing.T) {
	wrapped := ErrBootstrapFailed.Wrap(fmt.Errorf("no funds"))
	if ErrBootstrapFailed.Cause != nil {
		t.Fatal("Wrap mutated the predeclared error")
	}
	if wrapped.Cause == nil {
		t.Fatal("Wrap dropped the cause")
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	wrapped := ErrTransferFailed.Wrap(cause)
	if !Is(wrapped, cause) {
		t.Fatal("wrapped error must match its cause in the chain")
	}
}
