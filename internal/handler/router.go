package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/validation"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers groups the API handlers wired into the router.
type Handlers struct {
	Service      *api.ServiceHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Draft        *api.DraftHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) error {
	if err := validation.RegisterGinBinding(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Service.List},
			{Method: http.MethodGet, Path: "/services/:id", Handler: h.Service.Get},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.List},
			{Method: http.MethodGet, Path: "/availability/:id", Handler: h.Availability.Get},
			{Method: http.MethodGet, Path: "/slots", Handler: h.Availability.Slots},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
		})

		draft := apiGroup.Group("/booking/draft")
		{
			addRoutes(draft, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Draft.Get},
				{Method: http.MethodPatch, Path: "", Handler: h.Draft.Update},
				{Method: http.MethodDelete, Path: "", Handler: h.Draft.Reset},
				{Method: http.MethodPut, Path: "/payment-slip", Handler: h.Draft.UploadPaymentSlip},
				{Method: http.MethodDelete, Path: "/payment-slip", Handler: h.Draft.RemovePaymentSlip},
				{Method: http.MethodPost, Path: "/submit", Handler: h.Booking.SubmitDraft},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin.Group("/bookings"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Booking.Summary},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Booking.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Booking.Reject},
			})
			addRoutes(admin.Group("/availability"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Availability.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Availability.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Availability.Delete},
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
