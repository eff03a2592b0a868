package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/winterhq/navhome/internal/kv"
)

// Token sources, reported for diagnostics only.
const (
	SourceEnv   = "env"
	SourceStore = "store"
	SourceNone  = "none"
)

// Result is the outcome of a credential check. Reason is a human-readable
// diagnostic for the failure side; it never contains token material.
type Result struct {
	Valid  bool
	Reason string
	Source string
}

// Validator compares bearer credentials against the configured admin token.
// An environment-supplied token takes precedence: when set, the stored one
// is never consulted.
type Validator struct {
	envToken string
	store    kv.Store
}

// NewValidator creates a validator. envToken may be empty, in which case the
// token is read from the store on every check.
func NewValidator(envToken string, store kv.Store) *Validator {
	return &Validator{envToken: envToken, store: store}
}

// Validate checks a raw Authorization header value. Only the exact form
// "Bearer <token>" is accepted.
func (v *Validator) Validate(ctx context.Context, authHeader string) Result {
	candidate, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || candidate == "" {
		return Result{Valid: false, Reason: "missing or malformed credential", Source: SourceNone}
	}

	stored, source, err := v.storedToken(ctx)
	if err != nil {
		return Result{Valid: false, Reason: "failed to read admin token", Source: source}
	}
	if stored == "" {
		return Result{Valid: false, Reason: "admin token not configured", Source: source}
	}

	// Length check before character comparison. Not cryptographically
	// constant-time, but avoids the naive short-circuit leak.
	if len(candidate) != len(stored) || candidate != stored {
		return Result{Valid: false, Reason: "token mismatch", Source: source}
	}

	return Result{Valid: true, Source: source}
}

func (v *Validator) storedToken(ctx context.Context) (string, string, error) {
	if v.envToken != "" {
		return v.envToken, SourceEnv, nil
	}
	stored, err := v.store.Get(ctx, kv.KeyAdminToken)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return "", SourceStore, nil
		}
		return "", SourceStore, err
	}
	return stored, SourceStore, nil
}

// TokenInfo describes the configuration state of the admin token without
// exposing its value.
type TokenInfo struct {
	EnvSet       bool   `json:"env_set"`
	EnvLength    int    `json:"env_length,omitempty"`
	StoreSet     bool   `json:"store_set"`
	StoreLength  int    `json:"store_length,omitempty"`
	ActiveSource string `json:"active_source"`
}

// Info reports which token sources are populated and which one wins.
func (v *Validator) Info(ctx context.Context) TokenInfo {
	info := TokenInfo{ActiveSource: SourceNone}

	if v.envToken != "" {
		info.EnvSet = true
		info.EnvLength = len(v.envToken)
		info.ActiveSource = SourceEnv
	}

	stored, err := v.store.Get(ctx, kv.KeyAdminToken)
	if err == nil && stored != "" {
		info.StoreSet = true
		info.StoreLength = len(stored)
		if info.ActiveSource == SourceNone {
			info.ActiveSource = SourceStore
		}
	}

	return info
}
