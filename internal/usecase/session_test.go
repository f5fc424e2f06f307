//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"miccheck-web/internal/pkg/jwt"
	"miccheck-web/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokens(t *testing.T) {
	tokens := usecase.NewSessionTokens(jwt.NewService("secret", 2*time.Hour))

	t.Run("issued token resolves to its session", func(t *testing.T) {
		id, token, err := tokens.Issue()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		got, err := tokens.Resolve(token)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("refresh keeps the session id", func(t *testing.T) {
		id := uuid.New()
		token, err := tokens.Refresh(id)
		require.NoError(t, err)

		got, err := tokens.Resolve(token)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, token, err := tokens.Issue()
		require.NoError(t, err)

		_, err = tokens.Resolve(token + "x")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	assert.Equal(t, 2*time.Hour, tokens.TokenDuration())
}
