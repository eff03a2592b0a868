package prefs

import (
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// Keys persisted by the dashboard. All values are plain strings scoped to
// the local machine, the Go equivalent of the browser's localStorage.
const (
	KeyAPIToken         = "api_token"
	KeyTheme            = "theme"
	KeyCustomBackground = "custom_background"
	KeyCardsPerRow      = "cards_per_row"
	KeyAccessPass       = "access_pass"
)

// Store is a small file-backed preference store. Missing keys read as the
// empty string; only Set and Delete can fail.
type Store struct {
	d *diskv.Diskv
}

// Open creates (or reopens) a preference store rooted at dir.
func Open(dir string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    func(s string) []string { return nil },
			CacheSizeMax: 64 * 1024,
		}),
	}
}

// Get returns the stored value for key, or "" when unset.
func (s *Store) Get(key string) string {
	data, err := s.d.Read(key)
	if err != nil {
		return ""
	}
	return string(data)
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Tokens adapts a Store to the API client's token cache.
type Tokens struct {
	Store *Store
}

func (t Tokens) Token() string { return t.Store.Get(KeyAPIToken) }

func (t Tokens) SetToken(token string) error { return t.Store.Set(KeyAPIToken, token) }

func (t Tokens) ClearToken() error { return t.Store.Delete(KeyAPIToken) }
