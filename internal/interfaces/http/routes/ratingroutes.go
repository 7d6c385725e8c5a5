package routes

import (
	"github.com/gin-gonic/gin"

	ratinghandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/rating"
)

type RatingRouteConfig struct {
	RatingHandler *ratinghandlers.RatingHandler
}

func SetupRatingRoutes(engine *gin.Engine, config *RatingRouteConfig) {
	jobSeekers := engine.Group("/job-seekers")
	{
		jobSeekers.POST("/:id/ratings", config.RatingHandler.RateJobSeeker)
		jobSeekers.GET("/:id/rating", config.RatingHandler.GetJobSeekerRating)
	}
}
