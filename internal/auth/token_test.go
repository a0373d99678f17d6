package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("super-secret", time.Hour)

	token, err := issuer.Issue("user-123", models.RoleAdmin)
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestTokenIssuer_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("secret", -time.Second)

	token, err := issuer.Issue("u1", models.RoleUser)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("right-secret", time.Hour)
	token, err := issuer.Issue("u2", models.RoleUser)
	require.NoError(t, err)

	other := NewTokenIssuer("wrong-secret", time.Hour)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Tampered(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue("u3", models.RoleUser)
	require.NoError(t, err)

	// Flip a byte inside the signed payload.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("secret", time.Hour)

	_, err := issuer.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
