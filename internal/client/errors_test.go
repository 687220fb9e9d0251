// ABOUTME: Tests for the tagged error kinds
// ABOUTME: Verifies classification helpers and error formatting

package client

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNetwork, "network"},
		{KindServerRejected, "server_rejected"},
		{KindUnexpected, "unexpected"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorFormatting(t *testing.T) {
	e := &Error{Kind: KindNetwork, Message: "cannot connect"}
	if e.Error() != "cannot connect" {
		t.Errorf("expected bare message, got %q", e.Error())
	}

	cause := errors.New("dial tcp: refused")
	e = &Error{Kind: KindNetwork, Message: "cannot connect", Err: cause}
	if e.Error() != "cannot connect: dial tcp: refused" {
		t.Errorf("expected wrapped message, got %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(&Error{Kind: KindServerRejected}); got != KindServerRejected {
		t.Errorf("expected KindServerRejected, got %s", got)
	}
	// Errors from outside the client fall in the unexpected bucket.
	if got := KindOf(fmt.Errorf("some other error")); got != KindUnexpected {
		t.Errorf("expected KindUnexpected for foreign error, got %s", got)
	}
}

func TestServerMessage(t *testing.T) {
	if got := ServerMessage(&Error{Kind: KindServerRejected, Message: "Invalid credentials"}); got != "Invalid credentials" {
		t.Errorf("expected server message, got %q", got)
	}
	if got := ServerMessage(&Error{Kind: KindNetwork, Message: "timeout"}); got != "" {
		t.Errorf("expected empty for network error, got %q", got)
	}
	if got := ServerMessage(fmt.Errorf("plain")); got != "" {
		t.Errorf("expected empty for foreign error, got %q", got)
	}
}
