package routes

import (
	"trustify_claims/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathNotifications = "/notifications"

func addNotificationRoutes(rg *gin.RouterGroup, handler *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("/my", handler.GetMyNotifications)
		notifications.GET("/my/unread", handler.GetMyUnreadNotifications)
		notifications.GET("/my/unread/count", handler.GetUnreadCount)
		notifications.PATCH("/:id/read", handler.MarkAsRead)
		notifications.PATCH("/read-all", handler.MarkAllAsRead)
	}
}
