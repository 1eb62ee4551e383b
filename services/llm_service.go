package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"newschat-backend/config"
	"newschat-backend/prompts"

	openai "github.com/sashabaranov/go-openai"
)

// LLMService is the client for the external text-generation provider.
// Gemini is reached through its OpenAI-compatible endpoint, so both
// providers share one client library.
type LLMService struct {
	client       *openai.Client
	cfg          *config.Config
	summaryCache sync.Map // Cache for article summaries, keyed by title
}

// NewLLMService creates a new LLM service instance
func NewLLMService(cfg *config.Config) *LLMService {
	clientConfig := openai.DefaultConfig(cfg.LLMKey())
	if cfg.LLMProvider != "openai" {
		clientConfig.BaseURL = cfg.LLMBaseURL
	}

	return &LLMService{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}
}

// Generate runs a single-turn completion for the chat pipeline. The call is
// bounded by its own timeout budget, separate from news retrieval.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.cfg.LLMKey() == "" {
		return "", ErrLLMKeyMissing
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.GenTimeoutSec)*time.Second)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(s.cfg.ChatTemperature),
		MaxTokens:   s.cfg.ChatMaxTokens,
	})
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// SummarizeArticle creates a 2-3 sentence summary of an article using LLM
func (s *LLMService) SummarizeArticle(ctx context.Context, title, content string) (string, error) {
	if s.cfg.LLMKey() == "" {
		return "", ErrLLMKeyMissing
	}

	// Check cache first
	if cached, ok := s.summaryCache.Load(title); ok {
		return cached.(string), nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.GenTimeoutSec)*time.Second)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.SummaryModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompts.ForSummary(title, content)},
		},
		Temperature: float32(s.cfg.SummaryTemperature),
		MaxTokens:   s.cfg.SummaryMaxTokens,
	})
	if err != nil {
		log.Printf("LLM summarization error for %q: %v", title, err)
		return "", &GenerationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.summaryCache.Store(title, summary)
	return summary, nil
}
