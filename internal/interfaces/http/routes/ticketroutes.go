package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		// Using PATCH for state changes as per RESTful best practices
		tickets.PATCH("/:id/status", config.TicketHandler.ChangeStatus)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
