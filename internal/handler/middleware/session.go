package middleware

import (
	"log/slog"
	"net/http"

	"miccheck-web/internal/handler/httperr"
	"miccheck-web/internal/pkg/config"
	"miccheck-web/internal/pkg/cookie"
	"miccheck-web/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

type SessionMiddleware struct {
	tokens usecase.SessionTokens
	cfg    config.SessionConfig
}

func NewSessionMiddleware(tokens usecase.SessionTokens, cfg config.SessionConfig) *SessionMiddleware {
	return &SessionMiddleware{
		tokens: tokens,
		cfg:    cfg,
	}
}

// EnsureSession resolves the visitor's session from the cookie, issuing a new one when the cookie
// is missing, tampered with or expired. The cookie is refreshed on every request.
func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c, m.cfg)

		var sessionID uuid.UUID
		if token != "" {
			id, err := m.tokens.Resolve(token)
			if err != nil {
				slog.Debug("Session token rejected, issuing a new one", "error", err.Error())
			} else {
				sessionID = id
			}
		}

		if sessionID == uuid.Nil {
			id, fresh, err := m.tokens.Issue()
			if err != nil {
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
				return
			}
			sessionID = id
			token = fresh
		} else if refreshed, err := m.tokens.Refresh(sessionID); err == nil {
			token = refreshed
		}

		cookie.SetSessionCookie(c, m.cfg, token, m.tokens.TokenDuration())
		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}
