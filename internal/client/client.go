package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/winterhq/navhome/internal/domain"
	"github.com/winterhq/navhome/internal/logger"
	"github.com/winterhq/navhome/internal/utils"
)

// ErrNoToken is returned by ReplaceSites when no admin token is cached.
// It is the one error this layer lets escape; everything else is folded
// into a Result.
var ErrNoToken = errors.New("client: no cached admin token")

// MinTokenLength mirrors the server-side minimum for InitializeToken's
// pre-check.
const MinTokenLength = 8

// TokenStore is the persistent cache for a previously validated admin
// token. Presence alone is what toggles admin affordances in the UI;
// the server re-validates on every privileged call.
type TokenStore interface {
	Token() string
	SetToken(token string) error
	ClearToken() error
}

// Result is the uniform outcome shape for API calls. Network, HTTP and
// parse failures all land here instead of propagating as errors.
type Result struct {
	Success bool
	Error   string
}

func failure(format string, args ...interface{}) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// Client wraps all network calls to the dashboard API.
type Client struct {
	baseURL string // ex: "https://nav.example.com/api"
	httpc   *http.Client
	tokens  TokenStore
	logger  logger.Logger
}

// New creates an API client. baseURL is the API root including the /api
// prefix, without a trailing slash.
func New(baseURL string, tokens TokenStore, log logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   http.DefaultClient,
		tokens:  tokens,
		logger:  log,
	}
}

// Token returns the cached admin token, or "" when none is cached.
func (c *Client) Token() string { return c.tokens.Token() }

// ClearToken drops the cached admin token.
func (c *Client) ClearToken() error { return c.tokens.ClearToken() }

// FetchSites loads the category collection. Public endpoint, no auth. Any
// failure degrades to an empty collection so the dashboard still renders.
func (c *Client) FetchSites(ctx context.Context) domain.Collection {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sites", http.NoBody)
	if err != nil {
		return domain.Collection{}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("failed to fetch sites", logger.Error(err))
		return domain.Collection{}
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("unexpected status fetching sites",
			logger.Int("status", resp.StatusCode))
		return domain.Collection{}
	}

	var collection domain.Collection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		c.logger.Warn("malformed sites payload", logger.Error(err))
		return domain.Collection{}
	}
	if collection == nil {
		collection = domain.Collection{}
	}
	return collection
}

// ReplaceSites submits the complete desired collection as a full-replace
// write. Returns ErrNoToken when no admin token is cached; all other
// failures come back as a Result.
func (c *Client) ReplaceSites(ctx context.Context, collection domain.Collection) (Result, error) {
	token := c.tokens.Token()
	if token == "" {
		return Result{}, ErrNoToken
	}

	body, err := json.Marshal(collection)
	if err != nil {
		return failure("failed to serialize collection: %v", err), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sites", bytes.NewReader(body))
	if err != nil {
		return failure("failed to build request: %v", err), nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req), nil
}

// VerifyToken checks a candidate token against the server and caches it on
// success. On any non-success the cache is left untouched.
func (c *Client) VerifyToken(ctx context.Context, candidate string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/verify", http.NoBody)
	if err != nil {
		return failure("failed to build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+candidate)

	result := c.do(req)
	if !result.Success {
		return result
	}

	if err := c.tokens.SetToken(candidate); err != nil {
		return failure("token valid but could not be cached: %v", err)
	}
	return result
}

// InitializeToken performs the one-time admin token setup. The length rule
// is checked locally first to save the round trip.
func (c *Client) InitializeToken(ctx context.Context, candidate string) Result {
	if len(candidate) < MinTokenLength {
		return failure("token must be at least %d characters", MinTokenLength)
	}

	body, err := json.Marshal(map[string]string{"token": candidate})
	if err != nil {
		return failure("failed to serialize request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/init", bytes.NewReader(body))
	if err != nil {
		return failure("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do executes a request and folds every failure mode into a Result.
func (c *Client) do(req *http.Request) Result {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return failure("request failed: %v", err)
	}
	defer utils.Close(resp.Body)

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return failure("malformed response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || !parsed.Success {
		msg := parsed.Error
		if msg == "" {
			msg = fmt.Sprintf("request rejected (status %d)", resp.StatusCode)
		}
		return Result{Success: false, Error: msg}
	}

	return Result{Success: true}
}
