package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "tokens.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testRecord(appID string, expiresIn time.Duration) TokenRecord {
	return TokenRecord{
		AppID:     appID,
		Token:     "token-for-" + appID,
		ExpiresAt: time.Now().Add(expiresIn),
		CreatedAt: time.Now(),
	}
}

func TestStorePutAndGet(t *testing.T) {
	store := openTestStore(t)

	rec := testRecord("cli_a", time.Hour)
	require.NoError(t, store.Put(rec))

	key, ok := store.GetLocalAccessToken("cli_a")
	require.True(t, ok)

	got, err := store.GetToken(key)
	require.NoError(t, err)
	assert.Equal(t, rec.Token, got.Token)
	assert.Equal(t, rec.AppID, got.AppID)
}

func TestStorePutSupersedesPreviousRecord(t *testing.T) {
	store := openTestStore(t)

	first := testRecord("cli_a", time.Hour)
	require.NoError(t, store.Put(first))

	second := first
	second.Token = "newer-token"
	require.NoError(t, store.Put(second))

	got, err := store.GetToken("cli_a")
	require.NoError(t, err)
	assert.Equal(t, "newer-token", got.Token)

	sessions, err := store.List()
	require.NoError(t, err)
	assert.Len(t, sessions, 1, "one record per app id at most")
}

func TestStoreGetTokenMissing(t *testing.T) {
	store := openTestStore(t)

	_, ok := store.GetLocalAccessToken("cli_missing")
	assert.False(t, ok)

	_, err := store.GetToken("cli_missing")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestStoreGetTokenExpired(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put(testRecord("cli_old", -time.Minute)))

	// The key still resolves: expiry is checked at the point of use.
	key, ok := store.GetLocalAccessToken("cli_old")
	require.True(t, ok)

	_, err := store.GetToken(key)
	assert.ErrorIs(t, err, ErrTokenExpired)

	// whoami still sees the record, flagged invalid.
	sessions, err := store.List()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.False(t, sessions[0].Valid)
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put(testRecord("cli_a", time.Hour)))
	require.NoError(t, store.Delete("cli_a"))

	_, ok := store.GetLocalAccessToken("cli_a")
	assert.False(t, ok)

	// Deleting an absent record is a no-op, not an error.
	assert.NoError(t, store.Delete("cli_a"))
	assert.NoError(t, store.Delete("cli_never_existed"))
}

func TestStoreDeleteAll(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put(testRecord("cli_a", time.Hour)))
	require.NoError(t, store.Put(testRecord("cli_b", time.Hour)))

	require.NoError(t, store.DeleteAll())

	sessions, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, sessions)

	// The store stays usable after a full wipe.
	require.NoError(t, store.Put(testRecord("cli_c", time.Hour)))
	_, ok := store.GetLocalAccessToken("cli_c")
	assert.True(t, ok)
}

func TestStorePutValidation(t *testing.T) {
	store := openTestStore(t)

	err := store.Put(TokenRecord{Token: "x"})
	assert.Error(t, err)

	err = store.Put(TokenRecord{AppID: "cli_a"})
	assert.Error(t, err)
}

func TestDisplayToken(t *testing.T) {
	rec := TokenRecord{Token: "u-abcdefghijklmnop"}
	assert.Equal(t, "u-abcdef...", rec.DisplayToken())

	short := TokenRecord{Token: "u-ab"}
	assert.Equal(t, "u-ab", short.DisplayToken())
}
