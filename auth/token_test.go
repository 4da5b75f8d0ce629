package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnatill0raimov/luxe/config"
)

func newTokens() *TokenService {
	return NewTokenService(config.JWTConfig{Secret: "test-secret", Expiration: time.Hour})
}

func TestIssueAndVerifyJWT(t *testing.T) {
	tokens := newTokens()

	token, err := tokens.Issue("user-1", false)
	require.NoError(t, err)

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.False(t, identity.IsAdmin)
}

func TestVerifyCarriesAdminFlag(t *testing.T) {
	tokens := newTokens()

	token, err := tokens.Issue("user-2", true)
	require.NoError(t, err)

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	other := NewTokenService(config.JWTConfig{Secret: "different", Expiration: time.Hour})
	token, err := other.Issue("user-1", false)
	require.NoError(t, err)

	_, err = newTokens().Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	expired := NewTokenService(config.JWTConfig{Secret: "test-secret", Expiration: -time.Minute})
	token, err := expired.Issue("user-1", false)
	require.NoError(t, err)

	_, err = newTokens().Verify(token)
	assert.Error(t, err)
}

func TestVerifyAcceptsFabricatedAdminToken(t *testing.T) {
	identity, err := newTokens().Verify(FabricateAdminToken())
	require.NoError(t, err)
	assert.Equal(t, AdminUserID, identity.UserID)
	assert.True(t, identity.IsAdmin)
}

func TestVerifyRejectsForgedAdminBlob(t *testing.T) {
	tokens := newTokens()

	// Right shape, wrong ID.
	forged := base64.StdEncoding.EncodeToString([]byte(`{"id":"someone-else","isAdmin":true}`))
	_, err := tokens.Verify(forged)
	assert.Error(t, err)

	// Right ID, no admin flag.
	forged = base64.StdEncoding.EncodeToString([]byte(`{"id":"admin-user-id","isAdmin":false}`))
	_, err = tokens.Verify(forged)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := newTokens()
	for _, token := range []string{"", "garbage", "a.b.c", base64.StdEncoding.EncodeToString([]byte("not json"))} {
		_, err := tokens.Verify(token)
		assert.Error(t, err, "token %q", token)
	}
}
