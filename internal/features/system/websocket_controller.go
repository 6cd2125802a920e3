package system

import (
	"sales-crm/pkg/utils"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type WebSocketController struct {
	Hub    *Hub
	Logger *zap.Logger
}

func NewWebSocketController(hub *Hub, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{Hub: hub, Logger: logger}
}

// HandleActivityStream keeps the connection registered with the hub
// until the peer goes away. Inbound frames are discarded; the stream
// is one-way.
func (ctrl *WebSocketController) HandleActivityStream(c *websocket.Conn) {
	claims, ok := c.Locals(string(utils.UserClaimsKey)).(*utils.UserClaims)
	if !ok {
		c.Close()
		return
	}

	ctrl.Hub.Register(claims.UserID, c)
	defer ctrl.Hub.Unregister(claims.UserID, c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
