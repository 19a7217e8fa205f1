package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultTimeout = 30 * time.Second

// TokenSource supplies the persisted bearer token. An empty token is the
// normal logged-out state, not an error: the call proceeds unauthenticated
// and the server decides.
type TokenSource interface {
	Token() (string, error)
}

// Client is the single choke point for backend calls. It owns auth-header
// attachment, the per-request cancellation bound, and the failure taxonomy;
// nothing else in the client talks HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	timeout    time.Duration
	onAuthLost func()
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		tokens:     tokens,
		timeout:    DefaultTimeout,
	}
}

func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// OnAuthLost registers the session-eviction hook invoked when any call
// answers 401. The session store is the expected subscriber.
func (c *Client) OnAuthLost(fn func()) {
	c.onAuthLost = fn
}

type RequestOptions struct {
	Method   string // default GET
	Body     any    // marshaled to JSON when non-nil
	SkipAuth bool
	Timeout  time.Duration // overrides the client default when > 0
}

type errorBody struct {
	Detail string `json:"detail"`
}

// Request performs one backend call and decodes the JSON response into
// result when non-nil. A call whose parent context is canceled mid-flight
// (the caller tore down) settles to a suppressed nil result, never a
// user-visible error.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions, result any) error {
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = http.MethodGet
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	var reqBody io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("marshal request for %s: %w", endpoint, err)
		}
		reqBody = bytes.NewReader(data)
	}

	timeout := c.timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if !opts.SkipAuth && c.tokens != nil {
		token, tokenErr := c.tokens.Token()
		if tokenErr != nil {
			return fmt.Errorf("read token: %w", tokenErr)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.Canceled {
			return nil
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s %s: %w", method, endpoint, ErrTimeout)
		}
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() == context.Canceled {
			return nil
		}
		return fmt.Errorf("read response for %s: %w", endpoint, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onAuthLost != nil {
			c.onAuthLost()
		}
		if ctx.Err() == context.Canceled {
			return nil
		}
		return fmt.Errorf("%s %s: %w", method, endpoint, ErrAuthRequired)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var parsed errorBody
		detail := ""
		if json.Unmarshal(respBody, &parsed) == nil {
			detail = strings.TrimSpace(parsed.Detail)
		}
		return &RequestError{Status: resp.StatusCode, Detail: detail}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decode response for %s: %w", endpoint, err)
		}
	}
	return nil
}
