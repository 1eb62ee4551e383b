package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"newschat-backend/models"
	"newschat-backend/services"

	"github.com/gin-gonic/gin"
)

type SavedHandler struct {
	savedService *services.SavedService
}

// NewSavedHandler creates a new saved-articles handler
func NewSavedHandler(savedService *services.SavedService) *SavedHandler {
	return &SavedHandler{
		savedService: savedService,
	}
}

// SaveArticle bookmarks an article for a user
// POST /api/v1/saved
// Body: {"user_id": "...", "title": "...", "url": "...", ...}
func (h *SavedHandler) SaveArticle(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		URL         string `json:"url" binding:"required,url"`
		URLToImage  string `json:"urlToImage"`
		SourceName  string `json:"source_name"`
		PublishedAt string `json:"publishedAt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	saved, err := h.savedService.Save(req.UserID, models.SavedArticle{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		URLToImage:  req.URLToImage,
		SourceName:  req.SourceName,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		respondInternalError(c, "Failed to save article")
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListSaved returns a user's bookmarks
// GET /api/v1/saved?user_id=...
func (h *SavedHandler) ListSaved(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondMissingParam(c, "user_id parameter")
		return
	}

	articles, err := h.savedService.List(userID)
	if err != nil {
		respondInternalError(c, "Failed to list saved articles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// DeleteSaved removes a bookmark
// DELETE /api/v1/saved/:id?user_id=...
func (h *SavedHandler) DeleteSaved(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondMissingParam(c, "user_id parameter")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "id must be numeric")
		return
	}

	if err := h.savedService.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, services.ErrSavedNotFound) {
			respondNotFound(c, err.Error())
			return
		}
		respondInternalError(c, "Failed to delete saved article")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Saved article removed",
	})
}
