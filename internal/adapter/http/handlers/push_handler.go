package handlers

import (
	"context"
	"time"

	"trustify_claims/internal/adapter/http/dto/response"
	"trustify_claims/internal/adapter/http/middleware"
	"trustify_claims/internal/infrastructure/push"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
)

const pushWriteTimeout = 5 * time.Second

// PushHandler upgrades an authenticated request to a WebSocket session and
// streams the caller's notifications as they arrive. Clients are not expected
// to send anything; the read pump only watches for the close frame.

type PushHandler struct {
	hub *push.Hub
}

func NewPushHandler(hub *push.Hub) *PushHandler {
	return &PushHandler{hub: hub}
}

func (h *PushHandler) StreamNotifications(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream closed")

	sub := h.hub.Subscribe(caller.SubjectID, 16)
	defer h.hub.Unsubscribe(sub)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Read pump: drains (and discards) client frames so pings are answered
	// and a client close ends the session.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case n, open := <-sub.C:
			if !open {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			writeCtx, writeCancel := context.WithTimeout(ctx, pushWriteTimeout)
			err := wsjson.Write(writeCtx, conn, response.FromNotification(n))
			writeCancel()
			if err != nil {
				return
			}
		}
	}
}
