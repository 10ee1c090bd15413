package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recruitment-tracker/pkg/auth"
)

func TestTokenIssuer(t *testing.T) {
	t.Run("Should round-trip user ID and role", func(t *testing.T) {
		issuer := auth.NewTokenIssuer("secret", time.Hour)

		token, err := issuer.Issue(42, "recruiter")
		require.NoError(t, err)

		claims, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "recruiter", claims.Role)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		issuer := auth.NewTokenIssuer("secret", time.Hour)
		other := auth.NewTokenIssuer("different", time.Hour)

		token, err := other.Issue(42, "recruiter")
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		issuer := auth.NewTokenIssuer("secret", -time.Minute)

		token, err := issuer.Issue(42, "recruiter")
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})
}
