package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// FileStore persists the session as a JSON file named after PersistKey in a
// state directory — the server-side analog of the browser's local storage.
type FileStore struct {
	path string
	log  zerolog.Logger

	mu      sync.RWMutex
	current domain.Session
	present bool
}

// NewFileStore creates the state directory if needed and returns the store.
// The caller should invoke Load before first use.
func NewFileStore(stateDir string, log zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return nil, fmt.Errorf("session state dir: %w", err)
	}
	return &FileStore{
		path: filepath.Join(stateDir, PersistKey+".json"),
		log:  log,
	}, nil
}

// Load adopts the persisted session if present and well-formed. Any read or
// parse failure leaves the store empty; Load never fails the caller.
func (f *FileStore) Load(_ context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.log.Warn().Err(err).Str("path", f.path).Msg("session file unreadable, starting signed out")
		}
		f.current, f.present = domain.Session{}, false
		return
	}

	s, ok := decode(raw)
	if !ok {
		f.log.Warn().Str("path", f.path).Msg("malformed session file, starting signed out")
		f.current, f.present = domain.Session{}, false
		return
	}

	f.current, f.present = s, true
	f.log.Debug().Str("email", s.Email).Msg("session rehydrated")
}

// Set replaces the in-memory session and overwrites the persisted copy.
func (f *FileStore) Set(_ context.Context, s domain.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Write-then-rename so a crash mid-write leaves either the old session
	// or none, never a torn file.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	f.current, f.present = s, true
	return nil
}

// Clear removes the session from memory and deletes the persisted entry.
func (f *FileStore) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.current, f.present = domain.Session{}, false
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (f *FileStore) Current() (domain.Session, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current, f.present
}
