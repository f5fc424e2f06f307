package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"miccheck-web/internal/handler/api"
	"miccheck-web/internal/handler/middleware"
	"miccheck-web/internal/handler/web"
	"miccheck-web/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	bookingFormHandler *api.BookingFormHandler,
	catalogHandler *api.CatalogHandler,
	pricingHandler *api.PricingHandler,
	pageHandler *web.BookingPageHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingFormHandler, catalogHandler, pricingHandler, pageHandler, sessionMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingFormHandler *api.BookingFormHandler,
	catalogHandler *api.CatalogHandler,
	pricingHandler *api.PricingHandler,
	pageHandler *web.BookingPageHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	limit := rateLimiter.Middleware()

	engine.GET("/health", healthCheck)
	engine.GET("/health/backend", catalogHandler.BackendHealth)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/", pageHandler.Index)
	page := engine.Group("/book")
	page.Use(sessionMiddleware.EnsureSession())
	{
		addRoutes(page, []route{
			{Method: http.MethodGet, Path: "", Handler: pageHandler.Page},
			{Method: http.MethodPost, Path: "/toggle", Handler: pageHandler.Toggle, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodPost, Path: "/coupon", Handler: pageHandler.ApplyCoupon, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodPost, Path: "/submit", Handler: pageHandler.Submit, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodPost, Path: "/reload", Handler: pageHandler.Reload, Mw: []gin.HandlerFunc{limit}},
		})
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(limit)
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/spots", Handler: catalogHandler.ListSpots},
			{Method: http.MethodGet, Path: "/shows", Handler: catalogHandler.ListShows},
			{Method: http.MethodPost, Path: "/pricing/quote", Handler: pricingHandler.Quote},
		})

		form := apiGroup.Group("/form")
		form.Use(sessionMiddleware.EnsureSession())
		{
			addRoutes(form, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingFormHandler.Get},
				{Method: http.MethodPost, Path: "/spots/:id/toggle", Handler: bookingFormHandler.ToggleSpot},
				{Method: http.MethodPost, Path: "/coupon", Handler: bookingFormHandler.ApplyCoupon},
				{Method: http.MethodPost, Path: "/submit", Handler: bookingFormHandler.Submit},
				{Method: http.MethodPost, Path: "/reload", Handler: bookingFormHandler.Reload},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
