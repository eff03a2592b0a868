package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winterhq/navhome/internal/domain"
	"github.com/winterhq/navhome/internal/logger"
)

type fakeTokens struct {
	token   string
	saveErr error
}

func (f *fakeTokens) Token() string { return f.token }

func (f *fakeTokens) SetToken(token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token = token
	return nil
}

func (f *fakeTokens) ClearToken() error {
	f.token = ""
	return nil
}

func newTestClient(t *testing.T, handler http.Handler, tokens *fakeTokens) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", tokens, logger.Nop())
}

func TestFetchSites(t *testing.T) {
	collection := domain.Collection{
		{ID: "tools", Name: "Tools", Sites: []domain.Site{
			{ID: "github", Name: "GitHub", URL: "https://github.com"},
		}},
	}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sites", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(collection)
	}), &fakeTokens{})

	got := c.FetchSites(context.Background())
	assert.Equal(t, collection, got)
}

func TestFetchSitesDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
		},
		{
			name: "json null",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("null"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler, &fakeTokens{})
			got := c.FetchSites(context.Background())
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestFetchSitesUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(srv.URL+"/api", &fakeTokens{}, logger.Nop())
	got := c.FetchSites(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReplaceSites(t *testing.T) {
	var received domain.Collection
	var gotAuth string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}), &fakeTokens{token: "hunter2hunter2"})

	collection := domain.Collection{{ID: "tools", Name: "Tools", Sites: []domain.Site{}}}
	res, err := c.ReplaceSites(context.Background(), collection)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Bearer hunter2hunter2", gotAuth)
	assert.Equal(t, collection, received)
}

func TestReplaceSitesWithoutToken(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), &fakeTokens{})

	_, err := c.ReplaceSites(context.Background(), domain.Collection{})
	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, called, "no request should be sent without a token")
}

func TestReplaceSitesRejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "category 0: missing required field \"name\"",
		})
	}), &fakeTokens{token: "hunter2hunter2"})

	res, err := c.ReplaceSites(context.Background(), domain.Collection{{ID: "x"}})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "missing required field")
}

func TestVerifyTokenCachesOnSuccess(t *testing.T) {
	tokens := &fakeTokens{}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/verify", r.URL.Path)
		if r.Header.Get("Authorization") == "Bearer correct-horse" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "token mismatch"})
	}), tokens)

	res := c.VerifyToken(context.Background(), "wrong")
	assert.False(t, res.Success)
	assert.Equal(t, "token mismatch", res.Error)
	assert.Empty(t, tokens.token, "failed verification must not cache")

	res = c.VerifyToken(context.Background(), "correct-horse")
	assert.True(t, res.Success)
	assert.Equal(t, "correct-horse", tokens.token)
}

func TestVerifyTokenCacheFailure(t *testing.T) {
	tokens := &fakeTokens{saveErr: assert.AnError}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}), tokens)

	res := c.VerifyToken(context.Background(), "correct-horse")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "could not be cached")
}

func TestInitializeToken(t *testing.T) {
	var received map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/init", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "admin token initialized"})
	}), &fakeTokens{})

	res := c.InitializeToken(context.Background(), "longenough")
	assert.True(t, res.Success)
	assert.Equal(t, "longenough", received["token"])
}

func TestInitializeTokenTooShort(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), &fakeTokens{})

	res := c.InitializeToken(context.Background(), "short")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "at least 8 characters")
	assert.False(t, called, "short tokens are rejected without a request")
}

func TestClearToken(t *testing.T) {
	tokens := &fakeTokens{token: "hunter2hunter2"}
	c := newTestClient(t, http.NotFoundHandler(), tokens)

	assert.Equal(t, "hunter2hunter2", c.Token())
	require.NoError(t, c.ClearToken())
	assert.Empty(t, c.Token())
}
