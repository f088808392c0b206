package lark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/teemow/lark-mcp/internal/catalog"
	"github.com/teemow/lark-mcp/internal/instrumentation"
	"github.com/teemow/lark-mcp/internal/logging"
)

// FeishuDomain is the default OpenAPI domain.
const FeishuDomain = "https://open.feishu.cn"

// tenantTokenMargin is subtracted from the advertised token lifetime so
// a token is never used right at its expiry edge.
const tenantTokenMargin = 5 * time.Minute

// Config holds the settings for constructing a Client.
type Config struct {
	AppID     string
	AppSecret string
	// Domain is the OpenAPI base URL. Defaults to FeishuDomain.
	Domain string
	// Timeout bounds each HTTP request. Defaults to 30s.
	Timeout time.Duration
	// HTTPClient overrides the underlying http.Client, used in tests.
	HTTPClient *http.Client
	// Metrics records tenant token fetches. Optional.
	Metrics *instrumentation.Metrics
	Logger  *slog.Logger
}

// Client calls the Lark OpenAPI on behalf of one application identity.
type Client struct {
	appID     string
	appSecret string
	domain    string
	httpc     *http.Client
	metrics   *instrumentation.Metrics
	logger    *slog.Logger

	mu           sync.Mutex
	tenantToken  string
	tenantExpiry time.Time
}

// NewClient creates a client for the given application identity.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AppID == "" || cfg.AppSecret == "" {
		return nil, fmt.Errorf("appID and appSecret are required")
	}
	domain := strings.TrimRight(cfg.Domain, "/")
	if domain == "" {
		domain = FeishuDomain
	}
	httpc := cfg.HTTPClient
	if httpc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpc = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		appID:     cfg.AppID,
		appSecret: cfg.AppSecret,
		domain:    domain,
		httpc:     httpc,
		metrics:   cfg.Metrics,
		logger:    logging.WithAppID(logger, cfg.AppID),
	}, nil
}

// AppID returns the application id the client was constructed with.
func (c *Client) AppID() string {
	return c.appID
}

// Domain returns the OpenAPI base URL the client talks to.
func (c *Client) Domain() string {
	return c.domain
}

// envelope is the standard OpenAPI response wrapper.
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// Do performs one OpenAPI call and returns the unwrapped data payload.
// Path segments starting with ':' must already be substituted by the
// caller. Authorization selects user-level when a user token is set,
// tenant-level otherwise.
func (c *Client) Do(ctx context.Context, method, path string, query map[string]string, body any, auth catalog.Authorization) (json.RawMessage, error) {
	token := auth.UserAccessToken
	if token == "" {
		var err error
		token, err = c.TenantAccessToken(ctx)
		if err != nil {
			return nil, err
		}
	}

	respBody, status, err := c.roundTrip(ctx, method, path, query, body, token)
	if err != nil {
		return nil, &APIError{Op: method + " " + path, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		// Not every endpoint wraps its response (media download returns
		// raw bytes). Surface the body as a JSON string in that case.
		if status >= 200 && status < 300 {
			return json.Marshal(string(respBody))
		}
		return nil, &APIError{Op: method + " " + path, HTTPStatus: status,
			Err: fmt.Errorf("unexpected response: %s", truncateBody(respBody))}
	}
	if env.Code != 0 {
		return nil, &APIError{Op: method + " " + path, HTTPStatus: status, Code: env.Code, Msg: env.Msg}
	}
	if status < 200 || status >= 300 {
		return nil, &APIError{Op: method + " " + path, HTTPStatus: status, Msg: env.Msg}
	}
	if len(env.Data) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return env.Data, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query map[string]string, body any, bearer string) ([]byte, int, error) {
	u := c.domain + path
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		u += "?" + values.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("openapi call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration(logging.KeyDuration, time.Since(start)))

	return respBody, resp.StatusCode, nil
}

// tenantTokenResponse is the auth endpoint's flat (non-enveloped) body.
type tenantTokenResponse struct {
	Code              int    `json:"code"`
	Msg               string `json:"msg"`
	TenantAccessToken string `json:"tenant_access_token"`
	Expire            int    `json:"expire"`
}

// TenantAccessToken returns a live tenant access token, fetching a new
// one from the auth endpoint when the cached token is missing or close
// to expiry.
func (c *Client) TenantAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tenantToken != "" && time.Now().Before(c.tenantExpiry) {
		return c.tenantToken, nil
	}

	token, expire, err := c.fetchTenantToken(ctx)
	if c.metrics != nil {
		c.metrics.RecordAuthOperation(ctx, "tenant_token_fetch", err)
	}
	if err != nil {
		return "", err
	}

	c.tenantToken = token
	c.tenantExpiry = time.Now().Add(time.Duration(expire)*time.Second - tenantTokenMargin)
	return c.tenantToken, nil
}

func (c *Client) fetchTenantToken(ctx context.Context) (string, int, error) {
	body := map[string]string{
		"app_id":     c.appID,
		"app_secret": c.appSecret,
	}
	respBody, status, err := c.roundTrip(ctx, "POST", "/open-apis/auth/v3/tenant_access_token/internal", nil, body, "")
	if err != nil {
		return "", 0, &APIError{Op: "tenant_access_token", Err: err}
	}

	var resp tenantTokenResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", 0, &APIError{Op: "tenant_access_token", HTTPStatus: status,
			Err: fmt.Errorf("unexpected response: %s", truncateBody(respBody))}
	}
	if resp.Code != 0 || resp.TenantAccessToken == "" {
		return "", 0, &APIError{Op: "tenant_access_token", HTTPStatus: status, Code: resp.Code, Msg: resp.Msg}
	}
	return resp.TenantAccessToken, resp.Expire, nil
}

func truncateBody(b []byte) string {
	const limit = 256
	if len(b) <= limit {
		return string(b)
	}
	return string(b[:limit]) + "..."
}
