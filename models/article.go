package models

// Source identifies the outlet an article came from, mirroring the news
// provider's nested source object.
type Source struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// Article represents a single news article as returned by the news provider.
// After filtering, PublishedAt holds a human-readable date string and
// Description is truncated for display and prompt composition.
type Article struct {
	Source      Source  `json:"source"`
	Author      *string `json:"author"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt string  `json:"publishedAt"`
	Content     *string `json:"content"`
}

// NewsResponse is the provider's envelope: {status, totalResults, articles}
// on success, or {status: "error", code, message} on failure.
type NewsResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
}
