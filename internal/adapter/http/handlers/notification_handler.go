package handlers

import (
	"errors"
	"net/http"

	"trustify_claims/internal/adapter/http/dto/response"
	"trustify_claims/internal/adapter/http/middleware"
	"trustify_claims/internal/usecase"
	"trustify_claims/pkg"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	notifications, err := h.usecase.ListForUser(c.Request.Context(), caller)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}

func (h *NotificationHandler) GetMyUnreadNotifications(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	notifications, err := h.usecase.ListUnread(c.Request.Context(), caller)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	count, err := h.usecase.UnreadCount(c.Request.Context(), caller)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UnreadCountResponse{UnreadCount: count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	notification, err := h.usecase.MarkAsRead(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(notification))
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	marked, err := h.usecase.MarkAllAsRead(c.Request.Context(), caller)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MarkAllReadResponse{MarkedRead: marked})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You don't have permission to access this notification", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidNotificationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid notification id", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
