package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/teemow/lark-mcp/internal/logging"
)

const (
	authorizePath = "/open-apis/authen/v1/authorize"
	tokenPath     = "/open-apis/authen/v2/oauth/token"
	callbackPath  = "/callback"

	// defaultLoginTimeout bounds the wait for the browser redirect.
	defaultLoginTimeout = 5 * time.Minute
)

// LoginOptions configures one OAuth authorization-code flow.
type LoginOptions struct {
	AppID     string
	AppSecret string
	// Domain is the OpenAPI base URL. Defaults to the Feishu domain.
	Domain string
	// Scopes restrict the issued token. Empty means every permission
	// granted to the app.
	Scopes []string
	// Host and Port are where the local callback listener binds.
	Host string
	Port int
	// Timeout bounds the wait for the callback. Defaults to 5 minutes.
	Timeout time.Duration
	// OnAuthURL receives the authorization URL the user has to visit.
	// Required: the caller decides how to present it.
	OnAuthURL func(url string)
}

// Authenticator runs login flows and writes the resulting records to
// the store. Logins for distinct app ids proceed independently; a
// second login for an app id whose flow is still pending is rejected.
type Authenticator struct {
	store  *Store
	logger *slog.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

// NewAuthenticator creates an Authenticator writing to store.
func NewAuthenticator(store *Store, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{
		store:   store,
		logger:  logger,
		pending: make(map[string]struct{}),
	}
}

// callbackResult carries the outcome of the redirect back to Login.
type callbackResult struct {
	code string
	err  error
}

// Login runs the OAuth authorization-code flow for one application id
// and persists the issued token. It fails with an *AuthError when the
// listener cannot bind, the user denies consent, the exchange fails,
// the wait times out, or a login for the same app id is already
// pending.
func (a *Authenticator) Login(ctx context.Context, opts LoginOptions) (*TokenRecord, error) {
	if opts.AppID == "" || opts.AppSecret == "" {
		return nil, &AuthError{AppID: opts.AppID, Err: fmt.Errorf("appID and appSecret are required")}
	}
	if opts.OnAuthURL == nil {
		return nil, &AuthError{AppID: opts.AppID, Err: fmt.Errorf("OnAuthURL callback is required")}
	}

	if err := a.begin(opts.AppID); err != nil {
		return nil, &AuthError{AppID: opts.AppID, Err: err}
	}
	defer a.end(opts.AppID)

	rec, err := a.run(ctx, opts)
	if err != nil {
		a.logger.Warn("login failed", logging.AppID(opts.AppID), logging.Err(err))
		return nil, &AuthError{AppID: opts.AppID, Err: err}
	}

	if err := a.store.Put(*rec); err != nil {
		return nil, &AuthError{AppID: opts.AppID, Err: err}
	}
	a.logger.Info("login succeeded", logging.AppID(opts.AppID),
		slog.Time("expires_at", rec.ExpiresAt))
	return rec, nil
}

func (a *Authenticator) begin(appID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, busy := a.pending[appID]; busy {
		return ErrLoginInProgress
	}
	a.pending[appID] = struct{}{}
	return nil
}

func (a *Authenticator) end(appID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.pending, appID)
}

func (a *Authenticator) run(ctx context.Context, opts LoginOptions) (*TokenRecord, error) {
	domain := strings.TrimRight(opts.Domain, "/")
	if domain == "" {
		domain = "https://open.feishu.cn"
	}
	host := opts.Host
	if host == "" {
		host = "localhost"
	}
	port := opts.Port
	if port == 0 {
		port = 3000
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultLoginTimeout
	}

	conf := &oauth2.Config{
		ClientID:     opts.AppID,
		ClientSecret: opts.AppSecret,
		RedirectURL:  fmt.Sprintf("http://%s:%d%s", host, port, callbackPath),
		Scopes:       opts.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   domain + authorizePath,
			TokenURL:  domain + tokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind callback listener: %w", err)
	}

	state := uuid.NewString()
	results := make(chan callbackResult, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		result := callbackFromRequest(r, state)
		if result.err != nil {
			http.Error(w, result.err.Error(), http.StatusBadRequest)
		} else {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, "<html><body><h3>Login successful.</h3><p>You can close this window.</p></body></html>")
		}
		select {
		case results <- result:
		default:
		}
	})
	srv := &http.Server{Handler: mux}
	go func() {
		// Shutdown below closes the listener; that error is expected.
		_ = srv.Serve(listener)
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	opts.OnAuthURL(conf.AuthCodeURL(state))

	var result callbackResult
	select {
	case result = <-results:
	case <-time.After(timeout):
		return nil, fmt.Errorf("timed out waiting for authorization callback after %s", timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if result.err != nil {
		return nil, result.err
	}

	token, err := conf.Exchange(ctx, result.code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	expiry := token.Expiry
	if expiry.IsZero() {
		// The token endpoint always reports expires_in; guard against
		// a missing value rather than storing a token that never ages.
		expiry = time.Now().Add(2 * time.Hour)
	}

	return &TokenRecord{
		AppID:        opts.AppID,
		Token:        token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiry,
		CreatedAt:    time.Now(),
	}, nil
}

func callbackFromRequest(r *http.Request, wantState string) callbackResult {
	q := r.URL.Query()
	if errCode := q.Get("error"); errCode != "" {
		return callbackResult{err: fmt.Errorf("authorization denied: %s", errCode)}
	}
	if state := q.Get("state"); state != wantState {
		return callbackResult{err: fmt.Errorf("state mismatch in authorization callback")}
	}
	code := q.Get("code")
	if code == "" {
		return callbackResult{err: fmt.Errorf("authorization callback carried no code")}
	}
	return callbackResult{code: code}
}
