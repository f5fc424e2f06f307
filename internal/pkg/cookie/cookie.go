package cookie

import (
	"net/http"
	"strings"
	"time"

	"miccheck-web/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.CookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func GetSessionToken(c *gin.Context, cfg config.SessionConfig) string {
	token, _ := c.Cookie(cfg.CookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch strings.ToLower(sameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
