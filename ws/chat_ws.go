package ws

import (
	"log"
	"net/http"

	"store/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ChatSocket serves the storefront help widget over a websocket. Each
// connection is its own conversation with the bot; nothing is shared between
// connections.
type ChatSocket struct {
	service *services.ChatService
}

func NewChatSocket(service *services.ChatService) *ChatSocket {
	return &ChatSocket{service: service}
}

type inboundMessage struct {
	Message string `json:"message"`
}

// GET /ws/chat
func (s *ChatSocket) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var in inboundMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error: %v", err)
			}
			return
		}
		if in.Message == "" {
			continue
		}

		if err := conn.WriteJSON(s.service.Reply(in.Message)); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}
