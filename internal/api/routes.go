package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.POST("/valuations", handler.CreateValuation)
		api.GET("/districts", handler.GetDistricts)
		api.GET("/districts/geojson", handler.GetDistrictGeoJSON)
		api.GET("/districts/:name", handler.GetDistrict)
		api.GET("/districts/:name/comparables", handler.GetComparables)
		api.GET("/market/stats", handler.GetMarketStats)
		api.GET("/landmarks", handler.GetLandmarks)
		api.GET("/health", handler.HealthCheck)
	}
}
