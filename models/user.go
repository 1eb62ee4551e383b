package models

import "time"

// User represents a demo account. There is no password verification by
// design: the auth layer is a stand-in, not a security boundary.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedArticle is a user's bookmarked article.
type SavedArticle struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index:idx_saved_user" json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `gorm:"index:idx_saved_url" json:"url"`
	URLToImage  string    `json:"urlToImage,omitempty"`
	SourceName  string    `json:"source_name"`
	PublishedAt string    `json:"publishedAt"`
	SavedAt     time.Time `json:"saved_at"`
}
