//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"miccheck-web/internal/domain/pricing"
	"miccheck-web/internal/handler/api"
	reqdto "miccheck-web/internal/handler/dto/request"
	resdto "miccheck-web/internal/handler/dto/response"
	"miccheck-web/internal/usecase/commands"
	"miccheck-web/tests/common/httptest"
	commandsmock "miccheck-web/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newPricingRouter(h *api.PricingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/pricing/quote", h.Quote)
	return router
}

func TestPricingHandler_Quote(t *testing.T) {
	t.Run("prices the posted selection", func(t *testing.T) {
		router := newPricingRouter(api.NewPricingHandler(commands.NewQuoteCommands(pricing.NewDefaultPriceCalculator())))
		req := map[string]any{
			"spots": []map[string]any{
				{"price": "150.00", "selected": true},
				{"price": "150.00", "selected": true},
				{"price": "250.00", "selected": false},
			},
			"coupon": map[string]any{"valid": true, "discount_type": "percent", "discount_value": "10"},
		}

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/pricing/quote", req)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, resdto.QuoteResponse{
			SelectedCount: 2, RawTotal: "300.00", Total: "270.00", TotalText: "₹270", CouponApplied: true,
		}, body)
	})

	t.Run("passes the request through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockQuoteCommands(ctrl)
		want := reqdto.QuoteRequest{Spots: []reqdto.QuoteSpot{{Price: "99.50", Selected: true}}}
		cmds.EXPECT().Quote(want).Return(&commands.QuoteResult{SelectedCount: 1, TotalText: "₹100"}).Times(1)

		rec := httptest.PerformRequest(t, newPricingRouter(api.NewPricingHandler(cmds)), http.MethodPost, "/api/pricing/quote", want)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "₹100", body.TotalText)
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := newPricingRouter(api.NewPricingHandler(commandsmock.NewMockQuoteCommands(ctrl)))

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/pricing/quote", "not an object")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})
}
