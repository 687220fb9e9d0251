// ABOUTME: Persistent session token store for the two auth role-scopes
// ABOUTME: Keeps tokens as JSON slots in the XDG config directory

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Scope identifies which of the two parallel identities a token belongs to
type Scope int

const (
	ScopeUser Scope = iota
	ScopeONG
)

// Slot returns the storage slot name for the scope
func (s Scope) Slot() string {
	switch s {
	case ScopeONG:
		return "authOngToken"
	default:
		return "authToken"
	}
}

// String returns the string representation of a Scope
func (s Scope) String() string {
	switch s {
	case ScopeUser:
		return "user"
	case ScopeONG:
		return "ong"
	default:
		return "unknown"
	}
}

// Store is the session-context object screens load tokens through. At most
// one token is kept per scope; presence implies "authenticated for that
// role".
type Store struct {
	configDir string
}

// New creates a Store persisting under the given config directory
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hero")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hero")
}

// sessionFile returns the path to the session JSON
func (s *Store) sessionFile() string {
	return filepath.Join(s.configDir, "session.json")
}

// read loads the slot map from disk. Missing or corrupt files yield an
// empty map so the session gate fails open to the unauthenticated view.
func (s *Store) read() map[string]string {
	data, err := os.ReadFile(s.sessionFile())
	if err != nil {
		return map[string]string{}
	}

	var slots map[string]string
	if err := json.Unmarshal(data, &slots); err != nil {
		return map[string]string{}
	}
	return slots
}

// write persists the slot map, creating the config directory if needed
func (s *Store) write(slots map[string]string) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.sessionFile(), data, 0600)
}

// Load returns the token stored for the scope, or the empty string when no
// token is present. Read failures behave as absence.
func (s *Store) Load(scope Scope) string {
	return s.read()[scope.Slot()]
}

// Save stores the token under the scope's slot
func (s *Store) Save(scope Scope, token string) error {
	slots := s.read()
	slots[scope.Slot()] = token
	return s.write(slots)
}

// Clear removes the scope's token. Clearing an absent token is a no-op.
func (s *Store) Clear(scope Scope) error {
	slots := s.read()
	if _, ok := slots[scope.Slot()]; !ok {
		return nil
	}
	delete(slots, scope.Slot())
	return s.write(slots)
}

// Active reports whether a non-empty token is stored for the scope
func (s *Store) Active(scope Scope) bool {
	return s.Load(scope) != ""
}
