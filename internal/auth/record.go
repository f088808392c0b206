package auth

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for credential lookups and the login flow.
var (
	// ErrNoToken means no record exists for the application id.
	ErrNoToken = errors.New("no stored token")
	// ErrTokenExpired means a record exists but its expiry has passed.
	ErrTokenExpired = errors.New("stored token has expired")
	// ErrLoginInProgress means a login for the same application id is
	// already waiting for its callback.
	ErrLoginInProgress = errors.New("a login for this app is already in progress")
)

// AuthError wraps a failure of the login flow (AuthFailure in the
// credential lifecycle). The user has to retry login manually.
type AuthError struct {
	AppID string
	Err   error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed for app %s: %v", e.AppID, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// TokenRecord is the persisted credential state for one application id.
type TokenRecord struct {
	AppID        string    `json:"app_id"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// Valid reports whether the record's token is still live.
func (r *TokenRecord) Valid() bool {
	return r.Token != "" && time.Now().Before(r.ExpiresAt)
}

// DisplayToken returns a truncated token value safe for display.
func (r *TokenRecord) DisplayToken() string {
	const keep = 8
	if len(r.Token) <= keep {
		return r.Token
	}
	return r.Token[:keep] + "..."
}

// Session is the whoami view of one stored record.
type Session struct {
	AppID     string    `json:"app_id"`
	Token     string    `json:"token"`
	Valid     bool      `json:"valid"`
	ExpiresAt time.Time `json:"expires_at"`
}
