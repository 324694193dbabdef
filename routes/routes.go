package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-master/config"
	"hotel-master/controllers"
	"hotel-master/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the route tree: public browsing,
// session-guarded guest operations, and the admin group behind the role guard.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	rvc *controllers.ReviewController,
	adc *controllers.AdminController,
	logger zerolog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(logger), gin.Recovery())

	r.Static("/static/images", config.ImagesDir())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(config.SessionSecret()))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(config.SessionLifetime / time.Second),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("hotel_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/logout", ac.Logout)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoom)
			rooms.POST("/:id/reviews", middleware.RequireLogin(), rvc.CreateReview)
		}

		bookings := api.Group("/bookings", middleware.RequireLogin())
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/my", bc.MyBookings)
		}

		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/dashboard", adc.Dashboard)

			admin.GET("/rooms", rc.GetAllRooms)
			admin.POST("/rooms", rc.CreateRoom)
			admin.PUT("/rooms/:id", rc.UpdateRoom)
			admin.PATCH("/rooms/:id", rc.UpdateRoom)
			admin.DELETE("/rooms/:id", rc.DeleteRoom)

			admin.GET("/bookings", bc.GetBookings)
			admin.PATCH("/bookings/:id/status", bc.UpdateStatus)

			admin.GET("/users", adc.GetUsers)
			admin.DELETE("/users/:id", adc.DeleteUser)
		}
	}

	return r
}
