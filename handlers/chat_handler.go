package handlers

import (
	"errors"
	"log"
	"net/http"

	"newschat-backend/models"
	"newschat-backend/services"

	"github.com/gin-gonic/gin"
)

// fallbackReply replaces an empty generation result so the assistant always
// answers in natural language.
const fallbackReply = "I'm sorry, I couldn't come up with a response. Please try again."

type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat handles a conversational message, optionally enriched with news data
// POST /api/v1/chat
// Body: {"message": "...", "messages": [{"role": "user", "content": "..."}]}
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	text, err := h.chatService.Chat(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLLMKeyMissing):
			respondConfigError(c, "GEMINI_API_KEY is not configured")
		case errors.Is(err, services.ErrNewsKeyMissing):
			respondConfigError(c, "NEWS_API_KEY is not configured")
		default:
			log.Printf("Chat pipeline error: %v", err)
			respondInternalError(c, "Failed to process chat message")
		}
		return
	}

	if text == "" {
		text = fallbackReply
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: text})
}
