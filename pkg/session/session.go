// Package session persists the authenticated user and bearer token across
// process runs, the client-side equivalent of browser local storage.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

const sessionKey = "session"

// User identifies the authenticated account.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Session is the durable record: the user plus the opaque bearer credential.
// The token is never parsed client-side.
type Session struct {
	User  *User  `json:"user,omitempty"`
	Token string `json:"token,omitempty"`
}

// IsAuthenticated derives the signed-in state from token presence.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// Keeper owns the session record. The API gateway only reads it; auth
// operations and the gateway's unauthorized hook write through it.
type Keeper interface {
	Current() Session
	Token() string
	Save(Session) error
	Clear() error
}

// Config supplies the on-disk location for the session store.
type Config interface {
	BasePath() string
}

// Load opens (or creates) the diskv-backed keeper at the configured path.
func Load(cfg Config) (Keeper, error) {
	if cfg == nil {
		return nil, errors.New("session: config required")
	}
	base := strings.TrimSpace(cfg.BasePath())
	if base == "" {
		return nil, errors.New("session: base path required")
	}
	k := &keeper{d: diskv.New(diskv.Options{
		BasePath:     base,
		CacheSizeMax: 64 * 1024,
	})}
	k.load()
	return k, nil
}

type keeper struct {
	d *diskv.Diskv

	mu      sync.RWMutex
	current Session
}

func (k *keeper) load() {
	data, err := k.d.Read(sessionKey)
	if err != nil {
		return
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		// Unreadable record: treat as signed out rather than failing startup.
		_ = k.d.Erase(sessionKey)
		return
	}
	k.current = s
}

func (k *keeper) Current() Session {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.current
}

func (k *keeper) Token() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.current.Token
}

func (k *keeper) Save(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.d.Write(sessionKey, data); err != nil {
		return err
	}
	k.current = s
	return nil
}

func (k *keeper) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.current = Session{}
	if err := k.d.Erase(sessionKey); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
