// ABOUTME: Tests for the session token store
// ABOUTME: Verifies slot isolation, fail-open reads, and clear semantics

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	store := New(t.TempDir())

	if err := store.Save(ScopeUser, "token-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.Load(ScopeUser); got != "token-123" {
		t.Errorf("expected token-123, got %q", got)
	}
}

func TestScopesAreIndependent(t *testing.T) {
	store := New(t.TempDir())

	if err := store.Save(ScopeUser, "user-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(ScopeONG, "ong-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.Load(ScopeUser); got != "user-token" {
		t.Errorf("expected user-token, got %q", got)
	}
	if got := store.Load(ScopeONG); got != "ong-token" {
		t.Errorf("expected ong-token, got %q", got)
	}

	// Clearing one scope leaves the other untouched.
	if err := store.Clear(ScopeUser); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.Load(ScopeUser); got != "" {
		t.Errorf("expected cleared user slot, got %q", got)
	}
	if got := store.Load(ScopeONG); got != "ong-token" {
		t.Errorf("expected ong slot intact, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := New(t.TempDir())

	if got := store.Load(ScopeUser); got != "" {
		t.Errorf("expected empty token for missing file, got %q", got)
	}
}

func TestLoadCorruptFileFailsOpen(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	store := New(dir)
	if got := store.Load(ScopeUser); got != "" {
		t.Errorf("expected empty token for corrupt file, got %q", got)
	}
}

func TestClearAbsentTokenIsNoop(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	if err := store.Clear(ScopeUser); err != nil {
		t.Fatalf("expected no error clearing absent token, got %v", err)
	}
	// No file should have been created by the no-op.
	if _, err := os.Stat(filepath.Join(dir, "session.json")); !os.IsNotExist(err) {
		t.Error("expected no session file after no-op clear")
	}
}

func TestOverwriteToken(t *testing.T) {
	store := New(t.TempDir())

	if err := store.Save(ScopeUser, "old-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(ScopeUser, "new-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.Load(ScopeUser); got != "new-token" {
		t.Errorf("expected new-token, got %q", got)
	}
}

func TestActive(t *testing.T) {
	store := New(t.TempDir())

	if store.Active(ScopeUser) {
		t.Error("expected inactive before save")
	}
	if err := store.Save(ScopeUser, "token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.Active(ScopeUser) {
		t.Error("expected active after save")
	}
	if store.Active(ScopeONG) {
		t.Error("expected ong scope inactive")
	}
}

func TestSlotNames(t *testing.T) {
	if ScopeUser.Slot() != "authToken" {
		t.Errorf("expected authToken, got %s", ScopeUser.Slot())
	}
	if ScopeONG.Slot() != "authOngToken" {
		t.Errorf("expected authOngToken, got %s", ScopeONG.Slot())
	}
}

func TestScopeString(t *testing.T) {
	if ScopeUser.String() != "user" {
		t.Errorf("expected user, got %s", ScopeUser.String())
	}
	if ScopeONG.String() != "ong" {
		t.Errorf("expected ong, got %s", ScopeONG.String())
	}
}
