package v1

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/incidentwatch/emergency_monitoring_system/internal/realtime"
)

// RegisterRoutes регистрирует все маршруты API, вебсокет дашборда и Swagger UI
func (h *Handler) RegisterRoutes(router *gin.Engine, hub *realtime.Hub) {
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.login)
		}

		api.GET("/emergency-contacts", h.listEmergencyContacts)

		incidents := api.Group("/incidents")
		{
			incidents.GET("", h.listIncidents)
			incidents.POST("", h.createIncident)
			incidents.GET("/active", h.listActiveIncidents)
			incidents.GET("/reports/:file", h.downloadReport)
			incidents.GET("/:id", h.getIncident)
			incidents.PATCH("/:id/status", h.updateIncidentStatus)
			incidents.POST("/:id/generate-report", h.generateReport)
			incidents.DELETE("/:id/delete-report", h.deleteReport)
		}

		system := api.Group("/system-status")
		{
			system.GET("", h.listSystemStatuses)
			system.PATCH("/:id", h.updateSystemStatus)
		}

		api.POST("/detect", h.detect)
		api.GET("/system/health", h.healthCheck)
	}

	router.GET("/ws/dashboard", DashboardWS(hub))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
