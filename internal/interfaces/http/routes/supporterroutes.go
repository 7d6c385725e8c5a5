package routes

import (
	"github.com/gin-gonic/gin"

	supporterhandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/supporter"
)

type SupporterRouteConfig struct {
	SupporterHandler *supporterhandlers.SupporterHandler
}

func SetupSupporterRoutes(engine *gin.Engine, config *SupporterRouteConfig) {
	supporters := engine.Group("/supporters")
	{
		// Specific action endpoints before the generic /:id routes
		supporters.GET("/:id/donation-stats", config.SupporterHandler.GetDonationStats)
		supporters.POST("/:id/badge/recalculate", config.SupporterHandler.RecalculateBadge)

		supporters.GET("/:id", config.SupporterHandler.GetProfile)
		supporters.PUT("/:id", config.SupporterHandler.UpdateProfile)
	}
}
