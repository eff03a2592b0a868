package dashboard

import (
	"encoding/json"
	"time"

	"github.com/winterhq/navhome/internal/prefs"
)

// AccessTTL is how long a granted access pass stays valid.
const AccessTTL = 24 * time.Hour

// accessPass is the persisted proof of a successful unlock. Times are
// unix milliseconds.
type accessPass struct {
	Timestamp int64 `json:"timestamp"`
	Expiry    int64 `json:"expiry"`
}

// Gate is the optional password screen shown before the dashboard. A
// successful unlock is remembered locally until the pass expires.
type Gate struct {
	password string
	store    *prefs.Store
	now      func() time.Time
}

// NewGate builds a gate for the given password. An empty password
// disables the gate entirely.
func NewGate(password string, store *prefs.Store) *Gate {
	return &Gate{password: password, store: store, now: time.Now}
}

// Required reports whether the gate is enabled at all.
func (g *Gate) Required() bool { return g.password != "" }

// Granted reports whether a valid, unexpired pass is stored. A disabled
// gate always grants.
func (g *Gate) Granted() bool {
	if !g.Required() {
		return true
	}

	raw := g.store.Get(prefs.KeyAccessPass)
	if raw == "" {
		return false
	}

	var pass accessPass
	if err := json.Unmarshal([]byte(raw), &pass); err != nil {
		return false
	}
	return g.now().UnixMilli() < pass.Expiry
}

// Unlock checks the candidate password and, when correct, stores a fresh
// pass valid for AccessTTL.
func (g *Gate) Unlock(candidate string) bool {
	if !g.Required() {
		return true
	}
	if candidate != g.password {
		return false
	}

	now := g.now()
	pass := accessPass{
		Timestamp: now.UnixMilli(),
		Expiry:    now.Add(AccessTTL).UnixMilli(),
	}
	raw, err := json.Marshal(pass)
	if err != nil {
		return false
	}
	return g.store.Set(prefs.KeyAccessPass, string(raw)) == nil
}

// Revoke drops the stored pass, forcing the next visit back through the
// gate.
func (g *Gate) Revoke() error {
	return g.store.Delete(prefs.KeyAccessPass)
}
