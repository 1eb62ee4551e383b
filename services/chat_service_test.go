package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"newschat-backend/config"
	"newschat-backend/models"
)

// mockRetriever returns a fixed result or error and records calls.
type mockRetriever struct {
	result *FetchResult
	err    error
	calls  int
	lastQ  models.RetrievalQuery
}

func (m *mockRetriever) Retrieve(ctx context.Context, q models.RetrievalQuery) (*FetchResult, error) {
	m.calls++
	m.lastQ = q
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockGenerator echoes a fixed reply and records the prompt it was given.
type mockGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func chatTestConfig() *config.Config {
	return &config.Config{
		LLMProvider:       "gemini",
		GeminiKey:         "test-key",
		MaxPromptArticles: 4,
	}
}

func testArticles(n int) []models.Article {
	articles := make([]models.Article, n)
	for i := range articles {
		articles[i] = models.Article{
			Title:       "Headline number " + string(rune('A'+i)),
			Description: "Some description",
			URL:         "https://example.com",
			PublishedAt: "September 5, 2025 at 2:30 PM",
		}
	}
	return articles
}

// Template markers, one per prompt family. Prompt selection must be total
// and exclusive: exactly one marker appears in any composed prompt.
var templateMarkers = []string{
	"Based on these recent news articles",
	"couldn't find recent news articles",
	"temporary issue accessing news data",
	"Answer this question helpfully and briefly",
}

func assertSingleTemplate(t *testing.T, prompt, wantMarker string) {
	t.Helper()
	hits := 0
	for _, marker := range templateMarkers {
		if strings.Contains(prompt, marker) {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("prompt matched %d templates, expected exactly 1:\n%s", hits, prompt)
	}
	if !strings.Contains(prompt, wantMarker) {
		t.Errorf("prompt missing marker %q:\n%s", wantMarker, prompt)
	}
}

func TestChat_GenericQuestionSkipsRetrieval(t *testing.T) {
	news := &mockRetriever{}
	llm := &mockGenerator{reply: "Paris."}
	s := NewChatService(chatTestConfig(), NewIntentService(), news, llm)

	reply, err := s.Chat(context.Background(), &models.ChatRequest{Message: "What's the capital of France?"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if reply != "Paris." {
		t.Errorf("reply = %q, expected generator output verbatim", reply)
	}
	if news.calls != 0 {
		t.Errorf("retrieval called %d times for a non-news message, expected 0", news.calls)
	}
	if llm.calls != 1 {
		t.Fatalf("generation called %d times, expected 1", llm.calls)
	}
	assertSingleTemplate(t, llm.prompts[0], "Answer this question helpfully and briefly")
}

func TestChat_NewsQueryWithArticles(t *testing.T) {
	news := &mockRetriever{result: &FetchResult{Articles: testArticles(6), TotalResults: 6}}
	llm := &mockGenerator{reply: "Here is what happened."}
	s := NewChatService(chatTestConfig(), NewIntentService(), news, llm)

	_, err := s.Chat(context.Background(), &models.ChatRequest{Message: "Show me tech news from yesterday"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if news.calls != 1 {
		t.Fatalf("retrieval called %d times, expected 1", news.calls)
	}
	if news.lastQ.Category != models.CategoryGeneral {
		t.Errorf("category = %q, expected general for 'tech'", news.lastQ.Category)
	}
	if news.lastQ.SearchTerms != "tech" {
		t.Errorf("search terms = %q, expected %q", news.lastQ.SearchTerms, "tech")
	}
	if news.lastQ.DateFrom.IsZero() || !news.lastQ.DateFrom.Equal(news.lastQ.DateTo) {
		t.Errorf("date bounds = [%v, %v], expected equal yesterday bounds", news.lastQ.DateFrom, news.lastQ.DateTo)
	}

	prompt := llm.prompts[0]
	assertSingleTemplate(t, prompt, "Based on these recent news articles")
	if got := strings.Count(prompt, "• "); got != 4 {
		t.Errorf("prompt contains %d article bullets, expected at most 4", got)
	}
}

func TestChat_NewsQueryNoArticles(t *testing.T) {
	news := &mockRetriever{result: &FetchResult{}}
	llm := &mockGenerator{reply: "Nothing found."}
	s := NewChatService(chatTestConfig(), NewIntentService(), news, llm)

	_, err := s.Chat(context.Background(), &models.ChatRequest{Message: "latest sports news"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	assertSingleTemplate(t, llm.prompts[0], "couldn't find recent news articles")
}

func TestChat_RetrievalFailureDegrades(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"provider error", &RetrievalError{StatusCode: 502, Err: errors.New("bad gateway")}},
		{"timeout", &RetrievalError{Timeout: true, Err: context.DeadlineExceeded}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			news := &mockRetriever{err: tt.err}
			llm := &mockGenerator{reply: "Sorry, news is unavailable right now."}
			s := NewChatService(chatTestConfig(), NewIntentService(), news, llm)

			reply, err := s.Chat(context.Background(), &models.ChatRequest{Message: "latest news"})
			if err != nil {
				t.Fatalf("expected graceful degradation, got error %v", err)
			}
			if reply == "" {
				t.Error("expected a natural-language reply on retrieval failure")
			}
			if llm.calls != 1 {
				t.Fatalf("generation called %d times, expected exactly 1", llm.calls)
			}
			assertSingleTemplate(t, llm.prompts[0], "temporary issue accessing news data")
		})
	}
}

func TestChat_MissingLLMKeyShortCircuits(t *testing.T) {
	cfg := chatTestConfig()
	cfg.GeminiKey = ""
	news := &mockRetriever{result: &FetchResult{}}
	llm := &mockGenerator{reply: "should never run"}
	s := NewChatService(cfg, NewIntentService(), news, llm)

	_, err := s.Chat(context.Background(), &models.ChatRequest{Message: "latest news"})
	if !errors.Is(err, ErrLLMKeyMissing) {
		t.Fatalf("expected ErrLLMKeyMissing, got %v", err)
	}
	if news.calls != 0 || llm.calls != 0 {
		t.Errorf("outbound calls made despite missing credential: news=%d llm=%d", news.calls, llm.calls)
	}
}

func TestChat_MissingNewsKeyFailsRequest(t *testing.T) {
	news := &mockRetriever{err: ErrNewsKeyMissing}
	llm := &mockGenerator{reply: "should never run"}
	s := NewChatService(chatTestConfig(), NewIntentService(), news, llm)

	_, err := s.Chat(context.Background(), &models.ChatRequest{Message: "latest news"})
	if !errors.Is(err, ErrNewsKeyMissing) {
		t.Fatalf("expected ErrNewsKeyMissing, got %v", err)
	}
	if llm.calls != 0 {
		t.Errorf("generation called %d times after configuration error, expected 0", llm.calls)
	}
}

func TestChat_GenerationErrorSurfaces(t *testing.T) {
	news := &mockRetriever{result: &FetchResult{}}
	llm := &mockGenerator{err: &GenerationError{Err: errors.New("upstream 500")}}
	s := NewChatService(chatTestConfig(), NewIntentService(), news, llm)

	_, err := s.Chat(context.Background(), &models.ChatRequest{Message: "hello there"})
	var ge *GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}
