package models

// ChatMessage is a single turn of conversation history.
type ChatMessage struct {
	Role    string `json:"role" binding:"omitempty,oneof=user assistant"`
	Content string `json:"content"`
}

// ChatRequest is the caller-facing contract of the chat pipeline.
// Messages carries prior conversation turns; only the last exchange is kept.
type ChatRequest struct {
	Message  string        `json:"message" binding:"required"`
	Messages []ChatMessage `json:"messages"`
}

// LastExchange returns at most the final two prior messages.
func (r *ChatRequest) LastExchange() []ChatMessage {
	if len(r.Messages) <= 2 {
		return r.Messages
	}
	return r.Messages[len(r.Messages)-2:]
}

// ChatResponse is returned on success.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
