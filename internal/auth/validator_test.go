package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/winterhq/navhome/internal/kv"
	"github.com/winterhq/navhome/internal/store/memory"
)

func TestValidateAgainstStoredToken(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	if err := store.Put(ctx, kv.KeyAdminToken, "supersecret"); err != nil {
		t.Fatalf("seeding store failed: %v", err)
	}
	v := NewValidator("", store)

	tests := []struct {
		name       string
		header     string
		wantValid  bool
		wantReason string
	}{
		{name: "exact match", header: "Bearer supersecret", wantValid: true},
		{name: "wrong token same length", header: "Bearer supersecreX", wantValid: false, wantReason: "token mismatch"},
		{name: "wrong length", header: "Bearer short", wantValid: false, wantReason: "token mismatch"},
		{name: "missing header", header: "", wantValid: false, wantReason: "missing or malformed credential"},
		{name: "wrong scheme", header: "Basic supersecret", wantValid: false, wantReason: "missing or malformed credential"},
		{name: "bearer with no token", header: "Bearer ", wantValid: false, wantReason: "missing or malformed credential"},
		{name: "lowercase bearer rejected", header: "bearer supersecret", wantValid: false, wantReason: "missing or malformed credential"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(ctx, tt.header)
			if got.Valid != tt.wantValid {
				t.Errorf("Validate(%q).Valid = %v, want %v", tt.header, got.Valid, tt.wantValid)
			}
			if !tt.wantValid && got.Reason != tt.wantReason {
				t.Errorf("Validate(%q).Reason = %q, want %q", tt.header, got.Reason, tt.wantReason)
			}
		})
	}
}

func TestEnvTokenTakesPrecedence(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	if err := store.Put(ctx, kv.KeyAdminToken, "stored-token"); err != nil {
		t.Fatalf("seeding store failed: %v", err)
	}
	v := NewValidator("env-token", store)

	if got := v.Validate(ctx, "Bearer env-token"); !got.Valid || got.Source != SourceEnv {
		t.Errorf("env token should win: %+v", got)
	}
	// The stored token is never consulted while the env token is set.
	if got := v.Validate(ctx, "Bearer stored-token"); got.Valid {
		t.Errorf("stored token accepted despite env override: %+v", got)
	}
}

func TestValidateUnconfigured(t *testing.T) {
	v := NewValidator("", memory.NewStore())

	got := v.Validate(context.Background(), "Bearer anything")
	if got.Valid {
		t.Fatal("Validate() accepted a token with no admin token configured")
	}
	if got.Reason != "admin token not configured" {
		t.Errorf("Reason = %q", got.Reason)
	}
}

func TestValidateStoreFailure(t *testing.T) {
	store := memory.NewStore()
	store.FailWith = errors.New("redis down")
	v := NewValidator("", store)

	got := v.Validate(context.Background(), "Bearer anything")
	if got.Valid {
		t.Fatal("Validate() accepted a token while the store was failing")
	}
	if got.Reason != "failed to read admin token" {
		t.Errorf("Reason = %q", got.Reason)
	}
}

func TestInfo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	if err := store.Put(ctx, kv.KeyAdminToken, "stored-token"); err != nil {
		t.Fatalf("seeding store failed: %v", err)
	}

	info := NewValidator("env-token", store).Info(ctx)
	if !info.EnvSet || info.EnvLength != len("env-token") {
		t.Errorf("env info = %+v", info)
	}
	if !info.StoreSet || info.StoreLength != len("stored-token") {
		t.Errorf("store info = %+v", info)
	}
	if info.ActiveSource != SourceEnv {
		t.Errorf("ActiveSource = %q, want %q", info.ActiveSource, SourceEnv)
	}

	info = NewValidator("", store).Info(ctx)
	if info.ActiveSource != SourceStore {
		t.Errorf("ActiveSource = %q, want %q", info.ActiveSource, SourceStore)
	}

	info = NewValidator("", memory.NewStore()).Info(ctx)
	if info.ActiveSource != SourceNone || info.EnvSet || info.StoreSet {
		t.Errorf("unconfigured info = %+v", info)
	}
}
