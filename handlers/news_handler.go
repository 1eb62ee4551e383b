package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"newschat-backend/models"
	"newschat-backend/services"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsService *services.NewsService
	llmService  *services.LLMService
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService *services.NewsService, llmService *services.LLMService) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		llmService:  llmService,
	}
}

// GetNews serves the article feed for the UI
// GET /api/v1/news?category=technology&country=us&sortBy=publishedAt&q=...&from=...&to=...&location=...
func (h *NewsHandler) GetNews(c *gin.Context) {
	var req struct {
		Category string `form:"category,default=general"`
		Country  string `form:"country"`
		SortBy   string `form:"sortBy,default=publishedAt" binding:"omitempty,oneof=publishedAt popularity relevancy"`
		Q        string `form:"q"`
		From     string `form:"from"`
		To       string `form:"to"`
		Location string `form:"location"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	query := models.RetrievalQuery{
		Category:    req.Category,
		Country:     req.Country,
		SearchTerms: req.Q,
		Location:    req.Location,
		SortBy:      req.SortBy,
	}
	var err error
	if query.DateFrom, err = parseDateParam(req.From); err != nil {
		respondBadRequest(c, "from must be a YYYY-MM-DD date")
		return
	}
	if query.DateTo, err = parseDateParam(req.To); err != nil {
		respondBadRequest(c, "to must be a YYYY-MM-DD date")
		return
	}

	result, err := h.newsService.Retrieve(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, services.ErrNewsKeyMissing) {
			respondConfigError(c, "NEWS_API_KEY is not configured")
			return
		}
		log.Printf("News feed error: %v", err)
		respondInternalError(c, "Failed to fetch news articles")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600, stale-while-revalidate=86400")
	c.JSON(http.StatusOK, models.NewsResponse{
		Status:       "ok",
		TotalResults: result.TotalResults,
		Articles:     result.Articles,
	})
}

// Summarize generates a short summary of a single article
// POST /api/v1/summarize
// Body: {"title": "...", "content": "..."}
func (h *NewsHandler) Summarize(c *gin.Context) {
	var req struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	summary, err := h.llmService.SummarizeArticle(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrLLMKeyMissing) {
			respondConfigError(c, "GEMINI_API_KEY is not configured")
			return
		}
		log.Printf("Summarization error: %v", err)
		respondInternalError(c, "Failed to generate summary")
		return
	}
	if summary == "" {
		summary = "Unable to generate summary"
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// HealthCheck is a simple health check endpoint
// GET /api/v1/health
func (h *NewsHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "newschat-backend",
		"version": "1.0.0",
	})
}

func parseDateParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
