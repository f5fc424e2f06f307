//go:build unit || e2e

package sessiontest

import (
	"net/http"
	"testing"
	"time"

	"miccheck-web/internal/pkg/config"
	"miccheck-web/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Helper struct {
	cfg config.SessionConfig
}

func NewHelper(cfg config.SessionConfig) *Helper {
	return &Helper{cfg: cfg}
}

// Cookie returns a session cookie signed with the configured secret.
func (h *Helper) Cookie(t *testing.T, sessionID uuid.UUID) *http.Cookie {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.TTL).GenerateToken(sessionID)
	require.NoError(t, err)
	return &http.Cookie{Name: h.cfg.CookieName, Value: token}
}

func (h *Helper) ExpiredCookie(t *testing.T, sessionID uuid.UUID) *http.Cookie {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(sessionID)
	require.NoError(t, err)
	return &http.Cookie{Name: h.cfg.CookieName, Value: token}
}

// WithSession stands in for the session middleware, attaching a fixed session id.
func WithSession(sessionID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session_id", sessionID)
		c.Next()
	}
}
