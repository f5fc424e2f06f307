package api

import (
	"net/http"

	reqdto "miccheck-web/internal/handler/dto/request"
	resdto "miccheck-web/internal/handler/dto/response"
	"miccheck-web/internal/handler/httperr"
	"miccheck-web/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	cmds commands.QuoteCommands
}

func NewPricingHandler(cmds commands.QuoteCommands) *PricingHandler {
	return &PricingHandler{cmds: cmds}
}

// @Summary Quote price
// @Description Price a list of spots with an optional coupon verdict. Nothing is stored.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Spots and coupon"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteResult(h.cmds.Quote(req)))
}
