//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"miccheck-web/internal/handler/httperr"
	"miccheck-web/internal/handler/middleware"
	"miccheck-web/internal/pkg/config"
	"miccheck-web/tests/common/httptest"
	"miccheck-web/tests/common/sessiontest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	sessionID := uuid.New()

	router := gin.New()
	router.Use(middleware.LoggingMiddleware(logger, config.NewTestConfig().Log))
	router.GET("/book", sessiontest.WithSession(sessionID), func(c *gin.Context) {
		assert.NotEmpty(t, middleware.GetRequestID(c))
		c.String(http.StatusOK, "ok")
	})
	router.GET("/broken", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadGateway, errors.New("upstream"), "Booking failed", nil)
	})

	t.Run("completed request carries the session", func(t *testing.T) {
		buf.Reset()
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/book", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		lines := decodeLogLines(t, &buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "Request started", lines[0]["msg"])
		assert.Equal(t, "Request completed", lines[1]["msg"])
		assert.Equal(t, "INFO", lines[1]["level"])
		assert.Equal(t, sessionID.String(), lines[1]["session_id"])
		assert.Equal(t, lines[0]["request_id"], lines[1]["request_id"])
	})

	t.Run("upstream failure logs at error level", func(t *testing.T) {
		buf.Reset()
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/broken", nil)
		require.Equal(t, http.StatusBadGateway, rec.Code)

		lines := decodeLogLines(t, &buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "ERROR", lines[1]["level"])
		assert.Contains(t, lines[1]["errors"], "upstream")
		assert.NotContains(t, lines[1], "session_id")
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("forgot to respond"))
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
