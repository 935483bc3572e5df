package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-ops/internal/handler/api"
	"venue-ops/internal/handler/middleware"
	"venue-ops/internal/pkg/config"
	"venue-ops/internal/pkg/jwt"
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
	bookingHandler *api.BookingHandler,
	pricingHandler *api.PricingHandler,
	resaleHandler *api.ResaleHandler,
	checkInHandler *api.CheckInHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, pricingHandler, resaleHandler, checkInHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	pricingHandler *api.PricingHandler,
	resaleHandler *api.ResaleHandler,
	checkInHandler *api.CheckInHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "/:id/quote", Handler: pricingHandler.Quote},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/capture", Handler: bookingHandler.CapturePayment},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}

		resale := apiGroup.Group("/resale")
		resale.Use(authMiddleware.RequireAuth())
		{
			addRoutes(resale, []route{
				{Method: http.MethodPost, Path: "/offers", Handler: resaleHandler.PublishOffer},
				{Method: http.MethodGet, Path: "/tickets/:id/cap", Handler: resaleHandler.GetPriceCap},
			})
		}

		checkin := apiGroup.Group("/checkin")
		checkin.Use(authMiddleware.RequireAuth())
		checkin.Use(authMiddleware.RequireRole(jwt.RoleStaff, jwt.RoleManager))
		{
			addRoutes(checkin, []route{
				{Method: http.MethodPost, Path: "/scans", Handler: checkInHandler.RecordScan},
				{Method: http.MethodPost, Path: "/flush", Handler: checkInHandler.FlushOffline},
				{Method: http.MethodPost, Path: "/bind", Handler: checkInHandler.BindDevice},
				{Method: http.MethodGet, Path: "/recent", Handler: checkInHandler.RecentScans},
				{Method: http.MethodPost, Path: "/reachability", Handler: checkInHandler.SetReachability},
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
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
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
