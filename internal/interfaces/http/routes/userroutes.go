package routes

import (
	"github.com/gin-gonic/gin"

	mobilehandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/mobile"
	userhandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/user"
)

type UserRouteConfig struct {
	UserHandler   *userhandlers.UserHandler
	MobileHandler *mobilehandlers.MobileHandler
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	{
		users.POST("", config.UserHandler.RegisterUser)

		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts
		users.POST("/:id/mobile-number/request-code", config.MobileHandler.RequestVerificationCode)
		users.POST("/:id/mobile-number/verify", config.MobileHandler.VerifyMobileCode)
		users.POST("/:id/mobile-number", config.MobileHandler.RegisterMobileNumber)
		users.GET("/:id/mobile-number", config.MobileHandler.GetMobileNumber)
		users.PUT("/:id/mobile-number", config.MobileHandler.UpdateMobileNumber)

		users.GET("/:id", config.UserHandler.GetUser)
	}
}
