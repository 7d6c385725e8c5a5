package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rawad-inc/rawad/internal/infrastructure/config"
	"github.com/rawad-inc/rawad/internal/interfaces/http/routes"
)

// Router holds the gin engine with all application routes registered.
type Router struct {
	engine *gin.Engine
}

func NewRouter(cfg *config.Config, container *Container) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:   container.UserHandler,
		MobileHandler: container.MobileHandler,
	})
	routes.SetupSupporterRoutes(engine, &routes.SupporterRouteConfig{
		SupporterHandler: container.SupporterHandler,
	})
	routes.SetupDonationRoutes(engine, &routes.DonationRouteConfig{
		DonationHandler: container.DonationHandler,
	})
	routes.SetupRatingRoutes(engine, &routes.RatingRouteConfig{
		RatingHandler: container.RatingHandler,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler: container.TicketHandler,
	})
	routes.SetupWorkSpaceRoutes(engine, &routes.WorkSpaceRouteConfig{
		WorkSpaceHandler: container.WorkSpaceHandler,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
