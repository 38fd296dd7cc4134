package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	gate := PasscodeGateMiddleware(h.cfg, h.logger)

	spots := api.Group("/spots")
	{
		spots.POST("", h.createSpot)
		spots.GET("", h.listSpots)
		spots.GET("/cards", h.listSpotCards)
		spots.GET("/geojson", h.spotsGeoJSON)
		spots.GET("/stats", h.getStats)
		spots.GET("/:id", h.getSpot)
		spots.PUT("/:id", h.updateSpot)
		// Удаление закрыто пасскодом
		spots.DELETE("/:id", gate, h.deleteSpot)
		spots.DELETE("", gate, h.clearSpots)
	}

	api.GET("/maps/link", h.mapLink)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
