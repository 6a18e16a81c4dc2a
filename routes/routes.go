package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"agenda/handlers"
)

// RegisterCalendarRoutes registers the calendar feed endpoint.
func RegisterCalendarRoutes(r *gin.Engine, h *handlers.SchedulingHandler) {
	api := r.Group("/api/calendar")
	{
		api.GET("/events", h.GetCalendarEvents)
	}
}

// RegisterAppointmentRoutes registers appointment management endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.SchedulingHandler) {
	api := r.Group("/api/appointments")
	{
		api.POST("", h.CreateAppointment)
		api.PUT("/:id", h.UpdateAppointment)
		api.PATCH("/:id/status", h.UpdateAppointmentStatus)
		api.DELETE("/:id", h.DeleteAppointment)
	}
}

// RegisterBlockedSlotRoutes registers blocked slot endpoints.
func RegisterBlockedSlotRoutes(r *gin.Engine, h *handlers.SchedulingHandler) {
	api := r.Group("/api/blocked-slots")
	{
		api.POST("", h.CreateBlockedSlot)
		api.DELETE("/:id", h.DeleteBlockedSlot)
	}
}

// RegisterServiceRoutes registers service catalogue endpoints.
func RegisterServiceRoutes(r *gin.Engine, h *handlers.SchedulingHandler) {
	api := r.Group("/api/services")
	{
		api.GET("", h.GetServices)
		api.POST("", h.CreateService)
		api.PUT("/:id", h.UpdateService)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.SchedulingHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCalendarRoutes(r, h)
	RegisterAppointmentRoutes(r, h)
	RegisterBlockedSlotRoutes(r, h)
	RegisterServiceRoutes(r, h)
	RegisterHealthRoute(r)
}
