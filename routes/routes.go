package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"stayfinder-backend/config"
	"stayfinder-backend/controllers"
	"stayfinder-backend/middleware"
)

// SetupRouter wires middleware and the API route table.
func SetupRouter(
	cfg *config.Config,
	logger zerolog.Logger,
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	bc *controllers.BookingController,
	adc *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	allowCredentials := true
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.Auth(cfg.JWTSecret)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/logout", ac.Logout)
			auth.GET("/user", requireAuth, ac.CurrentUser)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.GET("/:id", hc.GetHotel)
			hotels.POST("", requireAuth, hc.CreateHotel)
			hotels.POST("/:id/rooms", requireAuth, hc.CreateRoom)
		}

		bookings := api.Group("/bookings", requireAuth)
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.POST("/:id/cancel", bc.CancelBooking)
		}

		admin := api.Group("/admin", requireAuth)
		{
			admin.GET("/bookings/export", adc.ExportBookings)
		}
	}

	return r
}
