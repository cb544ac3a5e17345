package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты пользователей и ролей
	users := api.Group("/users")
	{
		users.POST("/register", h.registerUser)
		users.GET("/:address", h.getUserProfile)
		users.POST("/:address/verify", h.verifyUser)
		users.POST("/:address/first-responder", h.setFirstResponder)
	}
	api.POST("/emergency-services", h.addEmergencyService)

	// Маршруты жизненного цикла тревог
	alerts := api.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("/active", h.getActiveAlerts)
		alerts.GET("/:id", h.getAlert)
		alerts.GET("/:id/responders", h.getAlertResponders)
		alerts.POST("/:id/respond", h.respondToAlert)
		alerts.POST("/:id/resolve", h.resolveAlert)
	}

	// Маршруты районов
	neighborhoods := api.Group("/neighborhoods")
	{
		neighborhoods.POST("", h.createNeighborhood)
		neighborhoods.GET("/:id", h.getNeighborhood)
		neighborhoods.POST("/:id/join", h.joinNeighborhood)
	}

	// Статистика и журнал событий
	api.GET("/stats", h.getStats)
	api.GET("/events", h.listEvents)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
