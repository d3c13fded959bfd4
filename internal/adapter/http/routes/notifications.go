package routes

import (
	"roads_authority/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathNotificationTokens = "/notifications/tokens"

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler, trackLimit gin.HandlerFunc) {
	tokens := rg.Group(PathNotificationTokens)
	{
		tokens.POST("", trackLimit, notificationHandler.RegisterToken)
		tokens.DELETE("/:token", notificationHandler.UnregisterToken)
	}
}
