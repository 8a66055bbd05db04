package controllers

import (
	"time"

	"store/pkg/resp"
	"store/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct{ Svc *services.ChatService }

func NewChatController(s *services.ChatService) *ChatController { return &ChatController{Svc: s} }

// POST /chat/message
func (h *ChatController) Message(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "message must not be empty")
		return
	}

	resp.OK(c, h.Svc.Reply(req.Message))
}

// GET /chat/health
func (h *ChatController) Health(c *gin.Context) {
	resp.OK(c, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}
