package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "tracker/internal/interfaces/http/handlers/user"
)

type UserRouteConfig struct {
	UserHandler *userhandlers.UserHandler
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)
		users.GET("/:id", config.UserHandler.GetUser)
		users.DELETE("/:id", config.UserHandler.DeleteUser)
	}
}
