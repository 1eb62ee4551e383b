package prompts

import "fmt"

// The chat pipeline composes exactly one of four prompt templates per request:
// answer-from-articles, no-articles-found, news-unavailable, or generic.

const articlesTemplate = `Based on these recent news articles, answer the user's question: "%s"

News Articles:
%s

Provide a comprehensive response with key details from the articles.`

const noArticlesTemplate = `The user asked: "%s". Explain that you couldn't find recent news articles matching their specific request. Suggest they try a different date range or location. Be helpful and brief.`

const newsUnavailableTemplate = `The user asked: "%s". Explain there's a temporary issue accessing news data. Be brief and helpful.`

const genericTemplate = `Answer this question helpfully and briefly: "%s"`

const summaryTemplate = `Please provide a concise 2-3 sentence summary of this news article. Focus on the key facts and main points.

Title: %s
Content: %s

Summary:`

// ForArticles instructs the model to answer from retrieved articles.
// articleContext is the pre-rendered bulleted article list.
func ForArticles(message, articleContext string) string {
	return fmt.Sprintf(articlesTemplate, message, articleContext)
}

// ForNoArticles is used when retrieval succeeded but matched nothing.
func ForNoArticles(message string) string {
	return fmt.Sprintf(noArticlesTemplate, message)
}

// ForNewsUnavailable is used when retrieval itself failed.
func ForNewsUnavailable(message string) string {
	return fmt.Sprintf(newsUnavailableTemplate, message)
}

// ForGeneric is used for messages with no news intent.
func ForGeneric(message string) string {
	return fmt.Sprintf(genericTemplate, message)
}

// ForSummary builds the standalone article summarization prompt.
func ForSummary(title, content string) string {
	return fmt.Sprintf(summaryTemplate, title, content)
}
