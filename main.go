package main

import (
	"log"

	"newschat-backend/config"
	"newschat-backend/database"
	"newschat-backend/handlers"
	"newschat-backend/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	db := database.GetDB()

	intentService := services.NewIntentService()
	newsService := services.NewNewsService(cfg)
	llmService := services.NewLLMService(cfg)
	chatService := services.NewChatService(cfg, intentService, newsService, llmService)
	authService := services.NewAuthService(db)
	savedService := services.NewSavedService(db)

	chatHandler := handlers.NewChatHandler(chatService)
	newsHandler := handlers.NewNewsHandler(newsService, llmService)
	authHandler := handlers.NewAuthHandler(authService)
	savedHandler := handlers.NewSavedHandler(savedService)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		v1.POST("/chat", chatHandler.Chat)
		v1.GET("/news", newsHandler.GetNews)
		v1.POST("/summarize", newsHandler.Summarize)
		v1.GET("/health", newsHandler.HealthCheck)

		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/signin", authHandler.SignIn)
		}

		v1.POST("/saved", savedHandler.SaveArticle)
		v1.GET("/saved", savedHandler.ListSaved)
		v1.DELETE("/saved/:id", savedHandler.DeleteSaved)
	}

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
