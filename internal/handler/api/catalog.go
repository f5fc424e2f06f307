package api

import (
	"net/http"

	resdto "miccheck-web/internal/handler/dto/response"
	"miccheck-web/internal/handler/httperr"
	"miccheck-web/internal/pkg/errs"
	"miccheck-web/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List spots
// @Description All spots as reported by the booking backend
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.SpotResponse
// @Failure 502 {object} httperr.Response
// @Router /spots [get]
func (h *CatalogHandler) ListSpots(c *gin.Context) {
	spots, err := h.q.ListSpots(c.Request.Context())
	if err != nil {
		h.abort(c, err, "Failed to load spots")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpots(spots))
}

// @Summary List shows
// @Description Shows with their nested spots
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ShowResponse
// @Failure 502 {object} httperr.Response
// @Router /shows [get]
func (h *CatalogHandler) ListShows(c *gin.Context) {
	shows, err := h.q.ListShows(c.Request.Context())
	if err != nil {
		h.abort(c, err, "Failed to load shows")
		return
	}
	c.JSON(http.StatusOK, resdto.FromShows(shows))
}

// @Summary Backend health
// @Description Reports whether the booking backend answers its health endpoint
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health/backend [get]
func (h *CatalogHandler) BackendHealth(c *gin.Context) {
	if err := h.q.BackendHealth(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Booking backend unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Booking backend is reachable",
	})
}

func (h *CatalogHandler) abort(c *gin.Context, err error, msg string) {
	if errs.Is(err, queries.ErrCatalogUnavailable) {
		httperr.AbortWithError(c, http.StatusBadGateway, err, msg, nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
