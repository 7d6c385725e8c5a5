package routes

import (
	"github.com/gin-gonic/gin"

	donationhandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/donation"
)

type DonationRouteConfig struct {
	DonationHandler *donationhandlers.DonationHandler
}

func SetupDonationRoutes(engine *gin.Engine, config *DonationRouteConfig) {
	donations := engine.Group("/donations")
	{
		donations.POST("", config.DonationHandler.RecordDonation)
		donations.GET("", config.DonationHandler.ListDonations)
	}
}
