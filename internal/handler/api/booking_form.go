package api

import (
	"net/http"
	"strconv"

	"miccheck-web/internal/domain/booking"
	reqdto "miccheck-web/internal/handler/dto/request"
	resdto "miccheck-web/internal/handler/dto/response"
	"miccheck-web/internal/handler/httperr"
	"miccheck-web/internal/handler/middleware"
	"miccheck-web/internal/pkg/errs"
	"miccheck-web/internal/usecase/commands"
	"miccheck-web/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingFormHandler struct {
	cmds commands.BookingFormCommands
	q    queries.BookingFormQueries
}

func NewBookingFormHandler(cmds commands.BookingFormCommands, q queries.BookingFormQueries) *BookingFormHandler {
	return &BookingFormHandler{cmds: cmds, q: q}
}

// @Summary Get booking form
// @Description Current spot selection, price and messages for this browser session
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.FormResponse
// @Failure 500 {object} httperr.Response
// @Router /form [get]
func (h *BookingFormHandler) Get(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.cmds.Load(c.Request.Context(), sessionID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking form", nil)
		return
	}
	h.respondForm(c, sessionID, http.StatusOK)
}

// @Summary Toggle spot
// @Description Select or release a spot. Any applied coupon is dropped.
// @Tags booking
// @Produce json
// @Param id path int true "Spot ID"
// @Success 200 {object} resdto.FormResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /form/spots/{id}/toggle [post]
func (h *BookingFormHandler) ToggleSpot(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	spotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || spotID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid spot id"), "Invalid spot id", nil)
		return
	}

	if err := h.cmds.ToggleSpot(c.Request.Context(), sessionID, spotID); err != nil {
		switch {
		case errs.Is(err, commands.ErrSpotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot not found", nil)
		case errs.Is(err, commands.ErrSpotFull):
			httperr.AbortWithError(c, http.StatusConflict, err, "Spots Full", nil)
		case errs.Is(err, commands.ErrSessionExpired):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking session expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	h.respondForm(c, sessionID, http.StatusOK)
}

// @Summary Apply coupon
// @Description Validate a coupon code against the current selection. The verdict is part of the returned form.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.FormResponse
// @Failure 400 {object} httperr.Response
// @Router /form/coupon [post]
func (h *BookingFormHandler) ApplyCoupon(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.ApplyCoupon(c.Request.Context(), sessionID, req.Code); err != nil {
		switch {
		case errs.Is(err, commands.ErrNoSpotsSelected):
			httperr.AbortWithError(c, http.StatusBadRequest, err, booking.MsgSelectAtLeastOne, nil)
		case errs.Is(err, commands.ErrSessionExpired):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking session expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	h.respondForm(c, sessionID, http.StatusOK)
}

// @Summary Submit booking
// @Description Book the selected spots for the performer
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitBookingRequest true "Performer details"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /form/submit [post]
func (h *BookingFormHandler) Submit(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), sessionID, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrNoSpotsSelected):
			httperr.AbortWithError(c, http.StatusBadRequest, err, booking.MsgSelectAtLeastOne, nil)
		case errs.Is(err, commands.ErrInvalidPerformer):
			var pe *booking.PerformerError
			msg := "Invalid performer details"
			if errs.As(err, &pe) {
				msg = pe.Message
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		case errs.Is(err, commands.ErrBookingRejected):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, h.submitError(c, sessionID), nil)
		case errs.Is(err, commands.ErrBackendUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, h.submitError(c, sessionID), nil)
		case errs.Is(err, commands.ErrSessionExpired):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking session expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	// form is informational here; the booking already went through
	view, _ := h.q.Get(c.Request.Context(), sessionID)
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result, view))
}

// @Summary Reload spots
// @Description Refetch spots, keeping selected spots that are still available
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.FormResponse
// @Failure 502 {object} httperr.Response
// @Router /form/reload [post]
func (h *BookingFormHandler) Reload(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.cmds.Reload(c.Request.Context(), sessionID); err != nil {
		switch {
		case errs.Is(err, commands.ErrSpotsUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, booking.MsgLoadFailed, nil)
		case errs.Is(err, commands.ErrSessionExpired):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking session expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	h.respondForm(c, sessionID, http.StatusOK)
}

func (h *BookingFormHandler) session(c *gin.Context) (uuid.UUID, bool) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("session missing from context"), "Internal server error", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}

func (h *BookingFormHandler) respondForm(c *gin.Context, sessionID uuid.UUID, status int) {
	view, err := h.q.Get(c.Request.Context(), sessionID)
	if err != nil {
		if errs.Is(err, queries.ErrFormNotFound) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking session expired", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking form", nil)
		return
	}
	c.JSON(status, resdto.FromFormView(view))
}

// submitError reads back the message recorded on the form for a failed submission.
func (h *BookingFormHandler) submitError(c *gin.Context, sessionID uuid.UUID) string {
	view, err := h.q.Get(c.Request.Context(), sessionID)
	if err != nil || view.SubmitError == "" {
		return booking.MsgBookingFailed
	}
	return view.SubmitError
}
