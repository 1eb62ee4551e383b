package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"newschat-backend/config"
	"newschat-backend/models"
	"newschat-backend/utils"
)

const (
	removedMarker  = "[Removed]"
	minTitleLength = 10
	maxDescLength  = 200
	dateOnlyFormat = "2006-01-02"
	displayFormat  = "January 2, 2006 at 3:04 PM"
)

// NewsService is the retrieval adapter for the external news provider.
type NewsService struct {
	cfg    *config.Config
	client *http.Client
}

// FetchResult contains filtered articles and provider metadata.
type FetchResult struct {
	Articles     []models.Article
	TotalResults int
}

// NewNewsService creates a new news service instance. The per-call timeout is
// enforced with context cancellation, not on the client.
func NewNewsService(cfg *config.Config) *NewsService {
	return &NewsService{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// Retrieve issues the retrieval query against the provider and filters the
// returned articles. Search mode is used whenever search terms, a location,
// or a date bound is present; otherwise top headlines keyed by category.
func (s *NewsService) Retrieve(ctx context.Context, q models.RetrievalQuery) (*FetchResult, error) {
	if s.cfg.NewsAPIKey == "" {
		return nil, ErrNewsKeyMissing
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.NewsTimeoutSec)*time.Second)
	defer cancel()

	fullURL := s.buildRequestURL(q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}
	req.Header.Set("User-Agent", "NewsChat/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &RetrievalError{Timeout: true, Err: err}
		}
		return nil, &RetrievalError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("News provider error response (%d): %s", resp.StatusCode, string(body))
		return nil, &RetrievalError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var data models.NewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &RetrievalError{Err: fmt.Errorf("decoding response: %w", err)}
	}
	if data.Status == "error" {
		return nil, &RetrievalError{Err: fmt.Errorf("provider error %s: %s", data.Code, data.Message)}
	}

	return &FetchResult{
		Articles:     filterArticles(data.Articles),
		TotalResults: data.TotalResults,
	}, nil
}

// buildRequestURL selects the provider endpoint and encodes the query.
func (s *NewsService) buildRequestURL(q models.RetrievalQuery) string {
	params := url.Values{}
	params.Set("apiKey", s.cfg.NewsAPIKey)
	params.Set("pageSize", strconv.Itoa(s.cfg.NewsPageSize))
	params.Set("sortBy", q.SortBy)

	endpoint := "/top-headlines"
	if q.NeedsSearch() {
		endpoint = "/everything"

		searchExpr := q.SearchTerms
		if q.Location != "" {
			if searchExpr != "" {
				searchExpr = searchExpr + " AND " + q.Location
			} else {
				searchExpr = q.Location
			}
		}
		if searchExpr != "" {
			params.Set("q", searchExpr)
		}
		if !q.DateFrom.IsZero() {
			params.Set("from", q.DateFrom.Format(dateOnlyFormat))
		}
		if !q.DateTo.IsZero() {
			params.Set("to", q.DateTo.Format(dateOnlyFormat))
		}
		params.Set("language", "en")
		params.Set("sortBy", models.SortPublishedAt)
	} else {
		if q.Category != "" && q.Category != "all" {
			params.Set("category", q.Category)
		}
		country := q.Country
		if country == "" {
			country = s.cfg.NewsCountry
		}
		params.Set("country", country)
	}

	return s.cfg.NewsBaseURL + endpoint + "?" + params.Encode()
}

// filterArticles drops unusable records and normalizes the survivors.
// An article is kept iff it has a title longer than 10 characters, a
// description, a URL, and no provider removal marker in either field.
func filterArticles(raw []models.Article) []models.Article {
	filtered := make([]models.Article, 0, len(raw))
	for _, a := range raw {
		if a.Title == "" || len(a.Title) <= minTitleLength || a.Description == "" || a.URL == "" {
			continue
		}
		if strings.Contains(a.Title, removedMarker) || strings.Contains(a.Description, removedMarker) {
			continue
		}
		a.Description = utils.TruncateWithEllipsis(a.Description, maxDescLength)
		a.PublishedAt = formatPublishedAt(a.PublishedAt)
		filtered = append(filtered, a)
	}
	return filtered
}

// formatPublishedAt turns the provider's RFC 3339 timestamp into a long
// display date. Unparseable values pass through untouched.
func formatPublishedAt(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format(displayFormat)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
