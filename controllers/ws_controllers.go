package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/openfloor/planboard/hub"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LayoutStreamHandler -> websocket endpoint for layout viewers
func LayoutStreamHandler(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	hub.RegisterClient(ws)

	// drain until the client goes away
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	hub.UnregisterClient(ws)
}
