package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"newschat-backend/config"
	"newschat-backend/models"
	"newschat-backend/prompts"
)

// NewsRetriever fetches filtered articles for a retrieval query.
type NewsRetriever interface {
	Retrieve(ctx context.Context, q models.RetrievalQuery) (*FetchResult, error)
}

// TextGenerator runs a single-turn prompt completion.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService turns a free-text chat message into a reply: it classifies the
// message, optionally retrieves news, composes exactly one prompt, and runs
// one generation call. Stateless per request; retrieval and generation are
// sequential because the prompt depends on the retrieved articles.
type ChatService struct {
	cfg    *config.Config
	intent *IntentService
	news   NewsRetriever
	llm    TextGenerator
}

// NewChatService creates a new chat service instance
func NewChatService(cfg *config.Config, intent *IntentService, news NewsRetriever, llm TextGenerator) *ChatService {
	return &ChatService{
		cfg:    cfg,
		intent: intent,
		news:   news,
		llm:    llm,
	}
}

// Chat handles one message end to end and returns the generated reply text.
func (s *ChatService) Chat(ctx context.Context, req *models.ChatRequest) (string, error) {
	// Short-circuit before any outbound call when the generation credential
	// is absent.
	if s.cfg.LLMKey() == "" {
		return "", ErrLLMKeyMissing
	}

	log.Printf("Chat request received: %q (%d prior messages kept)", req.Message, len(req.LastExchange()))

	prompt, err := s.composePrompt(ctx, req.Message)
	if err != nil {
		return "", err
	}

	return s.llm.Generate(ctx, prompt)
}

// composePrompt selects exactly one of the four templates for the message.
func (s *ChatService) composePrompt(ctx context.Context, message string) (string, error) {
	intent := s.intent.Classify(message)
	if !intent.IsNewsQuery {
		return prompts.ForGeneric(message), nil
	}

	dates := s.intent.ExtractDateRange(message)
	location := s.intent.ExtractLocation(message)
	query := s.intent.BuildQuery(message, intent, dates, location)

	result, err := s.news.Retrieve(ctx, query)
	if err != nil {
		// A missing provider credential is a configuration problem, fatal to
		// the request. Retrieval failures degrade to the fallback template.
		if errors.Is(err, ErrNewsKeyMissing) {
			return "", err
		}
		var re *RetrievalError
		if errors.As(err, &re) && re.Timeout {
			log.Printf("News retrieval timed out: %v", err)
		} else {
			log.Printf("News retrieval failed: %v", err)
		}
		return prompts.ForNewsUnavailable(message), nil
	}

	if len(result.Articles) == 0 {
		return prompts.ForNoArticles(message), nil
	}

	top := result.Articles
	if len(top) > s.cfg.MaxPromptArticles {
		top = top[:s.cfg.MaxPromptArticles]
	}
	return prompts.ForArticles(message, renderArticleContext(top)), nil
}

// renderArticleContext formats retrieved articles as bulleted prompt context.
func renderArticleContext(articles []models.Article) string {
	entries := make([]string, len(articles))
	for i, a := range articles {
		entries[i] = fmt.Sprintf("• %s\n  %s\n  Published: %s", a.Title, a.Description, a.PublishedAt)
	}
	return strings.Join(entries, "\n\n")
}
