package routes

import (
	"time"

	"salonadmin/handlers"
	"salonadmin/middleware"
	"salonadmin/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPanelRoutes registers the HTML views and their form endpoints.
func RegisterPanelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.IndexHandler)
	r.POST("/login", middleware.RateLimitMiddleware(hb.LoginRatePerMin), hb.LoginHandler)
	r.POST("/logout", hb.LogoutHandler)

	panel := r.Group("/panel/bookings")
	{
		panel.Use(middleware.RequirePanelAdminMiddleware())
		panel.POST("/:id/status", hb.StatusFormHandler)
		panel.POST("/:id/date", hb.DateFormHandler)
		panel.POST("/:id/time", hb.TimeFormHandler)
		panel.POST("/:id/delete", hb.DeleteFormHandler)
	}
}

// RegisterAuthRoutes registers the JSON session endpoints. They are open to
// everyone since they are how a session becomes an admin session.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/session", hb.SessionStateHandler)
		api.POST("/login", middleware.RateLimitMiddleware(hb.LoginRatePerMin), hb.APILoginHandler)
		api.POST("/logout", hb.APILogoutHandler)
	}
}

// RegisterBookingRoutes registers the booking JSON API.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.RequireAdminMiddleware())
		bookingGroup.GET("", hb.ListBookingsHandler)
		bookingGroup.PATCH("/:id", hb.UpdateBookingHandler)
		bookingGroup.PUT("/:id/status", hb.SetStatusHandler)
		bookingGroup.PUT("/:id/date", hb.RescheduleDateHandler)
		bookingGroup.PUT("/:id/time", hb.RescheduleTimeHandler)
		bookingGroup.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin reporting.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.RequireAdminMiddleware())
		adminGroup.GET("/stats", hb.StatsHandler)
		adminGroup.GET("/audit", hb.AuditTrailHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/status", hb.StatusHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.SetHTMLTemplate(web.MustTemplates())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.SessionMiddleware())
	r.Use(middleware.AuthStateMiddleware(hb.Checker, hb.Store))

	RegisterHealthRoute(r, hb)
	RegisterPanelRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
