package handlers

import (
	"net/http"

	"studybuddy/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type WSHandler struct {
	hub      *services.Hub
	guard    *services.AccessGuard
	upgrader websocket.Upgrader
}

// NewWSHandler accepts upgrades from the configured browser origins only.
// Requests without an Origin header are not from a browser and are allowed.
func NewWSHandler(hub *services.Hub, guard *services.AccessGuard, origins []string) *WSHandler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return &WSHandler{
		hub:   hub,
		guard: guard,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

// HandleWebSocket authenticates with the token query parameter, since
// browsers cannot set headers on a websocket handshake.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	user, err := h.guard.AuthenticateToken(c.Request.Context(), c.Query("token"))
	if err != nil {
		zap.L().Debug("websocket authentication failed", zap.Error(err))
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return
	}

	h.hub.RegisterClient(conn, user.ID)
}
