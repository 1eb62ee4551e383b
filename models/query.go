package models

import "time"

// News categories recognized by the provider. CategoryGeneral is the default
// when no category is detected in a message.
const (
	CategoryTechnology    = "technology"
	CategoryBusiness      = "business"
	CategorySports        = "sports"
	CategoryPolitics      = "politics"
	CategoryScience       = "science"
	CategoryEntertainment = "entertainment"
	CategoryHealth        = "health"
	CategoryGeneral       = "general"
)

// DetectableCategories lists the categories scanned for in user messages,
// in match-priority order. General is excluded: it is the fallback.
var DetectableCategories = []string{
	CategoryTechnology,
	CategoryBusiness,
	CategorySports,
	CategoryPolitics,
	CategoryScience,
	CategoryEntertainment,
	CategoryHealth,
}

// Sort orders accepted by the news provider.
const (
	SortPublishedAt = "publishedAt"
	SortPopularity  = "popularity"
	SortRelevancy   = "relevancy"
)

// Intent is the classifier's judgment of a chat message.
type Intent struct {
	IsNewsQuery bool
	Category    string
}

// DateRange bounds a retrieval by calendar date. Zero times mean unset.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether no date bound was extracted.
func (d DateRange) IsZero() bool {
	return d.From.IsZero() && d.To.IsZero()
}

// RetrievalQuery is the normalized parameter set sent to the news provider.
// Immutable once built.
type RetrievalQuery struct {
	Category    string
	Country     string // empty means the configured default
	SearchTerms string
	Location    string
	DateFrom    time.Time
	DateTo      time.Time
	SortBy      string
}

// NeedsSearch reports whether the query must use the provider's search mode
// instead of category-keyed top headlines.
func (q RetrievalQuery) NeedsSearch() bool {
	return q.SearchTerms != "" || q.Location != "" || !q.DateFrom.IsZero() || !q.DateTo.IsZero()
}
