package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	reqdto "miccheck-web/internal/handler/dto/request"
	"miccheck-web/internal/handler/httperr"
	"miccheck-web/internal/handler/middleware"
	"miccheck-web/internal/pkg/errs"
	"miccheck-web/internal/usecase/commands"
	"miccheck-web/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/google/uuid"
)

const (
	pagePath     = "/book"
	pageTemplate = "book.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var errSessionMissing = errs.New("session missing from context")

// BookingPageHandler serves the server-rendered booking page. Every form action redirects back to the page.
type BookingPageHandler struct {
	cmds   commands.BookingFormCommands
	q      queries.BookingFormQueries
	tmpl   *template.Template
	logger *slog.Logger
}

func NewBookingPageHandler(cmds commands.BookingFormCommands, q queries.BookingFormQueries, logger *slog.Logger) (*BookingPageHandler, error) {
	tmpl, err := template.New(pageTemplate).Funcs(template.FuncMap{
		"deref": func(b *bool) bool { return b != nil && *b },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errs.Wrap(err, "parse booking page template")
	}
	return &BookingPageHandler{cmds: cmds, q: q, tmpl: tmpl, logger: logger}, nil
}

func (h *BookingPageHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, pagePath)
}

func (h *BookingPageHandler) Page(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := h.cmds.Load(ctx, sessionID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking form", nil)
		return
	}
	view, err := h.q.Get(ctx, sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking form", nil)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Render(http.StatusOK, render.HTML{Template: h.tmpl, Name: pageTemplate, Data: view})
}

func (h *BookingPageHandler) Toggle(c *gin.Context) {
	h.act(c, func(sessionID uuid.UUID) error {
		h.saveDetails(c, sessionID)
		var req reqdto.ToggleSpotRequest
		if err := c.ShouldBind(&req); err != nil {
			return err
		}
		return h.cmds.ToggleSpot(c.Request.Context(), sessionID, req.SpotID)
	})
}

func (h *BookingPageHandler) ApplyCoupon(c *gin.Context) {
	h.act(c, func(sessionID uuid.UUID) error {
		h.saveDetails(c, sessionID)
		return h.cmds.ApplyCoupon(c.Request.Context(), sessionID, c.PostForm("coupon_code"))
	})
}

func (h *BookingPageHandler) Submit(c *gin.Context) {
	h.act(c, func(sessionID uuid.UUID) error {
		_, err := h.cmds.Submit(c.Request.Context(), sessionID, detailsFromForm(c))
		return err
	})
}

func (h *BookingPageHandler) Reload(c *gin.Context) {
	h.act(c, func(sessionID uuid.UUID) error {
		h.saveDetails(c, sessionID)
		return h.cmds.Reload(c.Request.Context(), sessionID)
	})
}

// act runs a form action and always lands back on the page; outcomes the visitor should see are
// recorded on the form itself.
func (h *BookingPageHandler) act(c *gin.Context, fn func(sessionID uuid.UUID) error) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	if err := fn(sessionID); err != nil {
		h.logger.InfoContext(c.Request.Context(), "booking page action not applied",
			"path", c.Request.URL.Path, "session_id", sessionID, "request_id", middleware.GetRequestID(c), "error", err)
	}
	c.Redirect(http.StatusSeeOther, pagePath)
}

func (h *BookingPageHandler) saveDetails(c *gin.Context, sessionID uuid.UUID) {
	if err := h.cmds.SaveDetails(c.Request.Context(), sessionID, detailsFromForm(c)); err != nil {
		h.logger.WarnContext(c.Request.Context(), "failed to keep performer details", "session_id", sessionID, "error", err)
	}
}

func (h *BookingPageHandler) session(c *gin.Context) (uuid.UUID, bool) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSessionMissing, "Internal server error", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}

func detailsFromForm(c *gin.Context) reqdto.SubmitBookingRequest {
	req := reqdto.SubmitBookingRequest{
		PerformerName: c.PostForm("performer_name"),
		Email:         c.PostForm("email"),
		Phone:         c.PostForm("phone"),
	}
	if code, ok := c.GetPostForm("coupon_code"); ok {
		req.CouponCode = &code
	}
	return req
}
