package routes

import (
	"github.com/gin-gonic/gin"

	workspacehandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/workspace"
)

type WorkSpaceRouteConfig struct {
	WorkSpaceHandler *workspacehandlers.WorkSpaceHandler
}

func SetupWorkSpaceRoutes(engine *gin.Engine, config *WorkSpaceRouteConfig) {
	workspaces := engine.Group("/workspaces")
	{
		workspaces.POST("", config.WorkSpaceHandler.CreateWorkSpace)
		workspaces.GET("", config.WorkSpaceHandler.ListWorkSpaces)
		workspaces.GET("/:id", config.WorkSpaceHandler.GetWorkSpace)
	}
}
