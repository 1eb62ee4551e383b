package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"newschat-backend/models"
	"newschat-backend/utils"
)

// newsKeywords is the rule table for news-intent detection: any single
// whole-word hit is sufficient and decisive.
var newsKeywords = []string{
	"news", "latest", "headlines", "what's happening", "current events",
	"breaking", "today", "recent", "yesterday", "update", "happening",
}

// stopWords are stripped from the message when deriving free-text search
// terms for a date- or location-scoped retrieval.
var stopWords = []string{
	"news", "latest", "headlines", "give me", "show me", "from", "of",
	"yesterday", "today",
}

// gazetteer is the fixed list of recognized place names, scanned in order.
var gazetteer = []string{
	"bangalore", "mumbai", "delhi", "india", "usa", "uk", "london",
	"new york", "california",
}

var (
	newsKeywordPattern = utils.CompileWordPattern(newsKeywords)
	stopWordPattern    = utils.CompileWordPattern(stopWords)

	// <day><sep><month-name><sep><4-digit-year>, e.g. "5 sept 2025"
	explicitDatePattern = regexp.MustCompile(`(\d{1,2})[\s\-/](\w+)[\s\-/](\d{4})`)
)

var monthAbbrevs = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// IntentService interprets free-text chat messages: news intent, category,
// date range, location, and the normalized retrieval query built from them.
// All methods are pure; absence of a match is a normal outcome.
type IntentService struct{}

// NewIntentService creates a new intent service instance
func NewIntentService() *IntentService {
	return &IntentService{}
}

// Classify decides whether a message is news-seeking and which category it
// targets. Category matching is first-hit over the fixed list, accepting the
// name with its trailing character stripped as a naive singular form.
func (s *IntentService) Classify(message string) models.Intent {
	intent := models.Intent{
		IsNewsQuery: newsKeywordPattern.MatchString(message),
		Category:    models.CategoryGeneral,
	}

	lower := strings.ToLower(message)
	for _, cat := range models.DetectableCategories {
		if strings.Contains(lower, cat) || strings.Contains(lower, cat[:len(cat)-1]) {
			intent.Category = cat
			break
		}
	}
	return intent
}

// ExtractDateRange parses the message for a date expression relative to the
// current date. Exactly one rule applies, in order: yesterday, today,
// explicit date. No match leaves both bounds unset.
func (s *IntentService) ExtractDateRange(message string) models.DateRange {
	return extractDateRangeAt(message, time.Now())
}

func extractDateRangeAt(message string, now time.Time) models.DateRange {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "yesterday") {
		d := toDate(now.AddDate(0, 0, -1))
		return models.DateRange{From: d, To: d}
	}
	if strings.Contains(lower, "today") {
		d := toDate(now)
		return models.DateRange{From: d, To: d}
	}

	m := explicitDatePattern.FindStringSubmatch(message)
	if m == nil {
		return models.DateRange{}
	}
	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	monthToken := strings.ToLower(m[2])
	for i, abbrev := range monthAbbrevs {
		if strings.HasPrefix(monthToken, abbrev) {
			d := time.Date(year, time.Month(i+1), day, 0, 0, 0, 0, time.UTC)
			return models.DateRange{From: d, To: d}
		}
	}
	return models.DateRange{}
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ExtractLocation returns the first gazetteer entry contained in the
// message, or "" when none matches.
func (s *IntentService) ExtractLocation(message string) string {
	lower := strings.ToLower(message)
	for _, loc := range gazetteer {
		if strings.Contains(lower, loc) {
			return loc
		}
	}
	return ""
}

// BuildQuery combines classifier and extractor output into the normalized
// retrieval query. Search terms are derived only when a date bound or a
// location was found; sort order is pinned to recency for assistant answers.
func (s *IntentService) BuildQuery(message string, intent models.Intent, dates models.DateRange, location string) models.RetrievalQuery {
	q := models.RetrievalQuery{
		Category: intent.Category,
		Location: location,
		DateFrom: dates.From,
		DateTo:   dates.To,
		SortBy:   models.SortPublishedAt,
	}
	if location != "" || !dates.IsZero() {
		q.SearchTerms = utils.RemoveWords(message, stopWordPattern)
	}
	return q
}
