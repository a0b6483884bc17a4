package winja

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminUser is the authenticated administrator attached to a session.
type AdminUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the result of a successful login: an opaque bearer token and
// the user it belongs to. The two always travel together; a session is never
// persisted with one half missing.
type Session struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

// Valid reports whether the session holds a token.
func (s Session) Valid() bool {
	return s.Token != ""
}

// Expired inspects the token's exp claim without verifying the signature
// (the server is the authority on validity; this is only an early exit
// before issuing a doomed request batch). A token that is not a JWT, or one
// without an exp claim, is treated as unexpired.
func (s Session) Expired() bool {
	if s.Token == "" {
		return true
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}

// ErrNoSession is returned by SessionStore.Load when no session is persisted.
var ErrNoSession = errors.New("no stored session")

// SessionStore persists a session across process runs, the way the original
// client kept its token and user under fixed keys in local storage. Save and
// Clear operate on the token and user as a unit: there is no state where one
// is present and the other absent.
type SessionStore struct {
	path string
}

// NewSessionStore returns a store backed by the given file path. If path is
// empty, the session lives under the user config directory.
func NewSessionStore(path string) (*SessionStore, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		path = filepath.Join(configDir, "winja", "session.json")
	}
	return &SessionStore{path: path}, nil
}

// Load returns the persisted session, or ErrNoSession when none exists.
func (s *SessionStore) Load() (Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	if !session.Valid() {
		return Session{}, ErrNoSession
	}
	return session, nil
}

// Save persists the session atomically: the file is written aside and
// renamed into place, so a crash mid-write never leaves a half session.
func (s *SessionStore) Save(session Session) error {
	if !session.Valid() {
		return errors.New("refusing to persist a session without a token")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is not an
// error.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// TokenSource adapts the store to WithTokenSource: it reads the current
// token before every request, so logins and logouts take effect without
// rebuilding the client.
func (s *SessionStore) TokenSource() func() string {
	return func() string {
		session, err := s.Load()
		if err != nil {
			return ""
		}
		return session.Token
	}
}
