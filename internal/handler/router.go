package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"octo-mock/internal/handler/api"
	"octo-mock/internal/handler/middleware"
	"octo-mock/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	productHandler *api.ProductHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, productHandler, availabilityHandler, bookingHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Capabilities())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	productHandler *api.ProductHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/ping", ping)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine, []route{
		{Method: http.MethodGet, Path: "/products", Handler: productHandler.GetProducts},
		{Method: http.MethodGet, Path: "/products/:productId", Handler: productHandler.GetProduct},
		{Method: http.MethodPost, Path: "/availability", Handler: availabilityHandler.GetAvailability},
		{Method: http.MethodPost, Path: "/availability/calendar", Handler: availabilityHandler.GetCalendar},
		{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.CreateBooking},
		{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.GetBookings},
		{Method: http.MethodGet, Path: "/bookings/:uuid", Handler: bookingHandler.GetBooking},
		{Method: http.MethodPost, Path: "/bookings/:uuid/cancel", Handler: bookingHandler.CancelBooking},
	})
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

// @Summary Ping
// @Description Echo the current server time
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"serverTime": time.Now().UTC().Format(time.RFC3339),
	})
}

func addRoutes(engine *gin.Engine, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			engine.GET(r.Path, r.Handler)
		case http.MethodPost:
			engine.POST(r.Path, r.Handler)
		case http.MethodPut:
			engine.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			engine.DELETE(r.Path, r.Handler)
		default:
			engine.Any(r.Path, r.Handler)
		}
	}
}
