// Package websearch queries the Google Custom Search JSON API.
package websearch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://www.googleapis.com"

	pageSize   = 10
	maxResults = 100
)

// ErrNotConfigured is returned when no API key or engine id is set.
var ErrNotConfigured = errors.New("web search is not configured")

// Result is one web hit. Snippets never contain newlines.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

type Searcher interface {
	// Search returns up to limit results, paging as needed.
	Search(ctx context.Context, query string, limit int) ([]Result, error)
	// Image returns the link of the first image hit, or "" when there is none.
	Image(ctx context.Context, query string) (string, error)
}

type GoogleSearcher struct {
	apiKey   string
	engineID string
	client   *resty.Client
}

var _ Searcher = &GoogleSearcher{}

func NewGoogleSearcher(baseURL, apiKey, engineID string) *GoogleSearcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &GoogleSearcher{
		apiKey:   apiKey,
		engineID: engineID,
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second),
	}
}

type searchResponse struct {
	Items []Result `json:"items"`
}

type searchError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (g *GoogleSearcher) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if g.apiKey == "" || g.engineID == "" {
		return nil, ErrNotConfigured
	}
	if limit > maxResults {
		limit = maxResults
	}

	var all []Result
	for start := 1; start <= limit; start += pageSize {
		num := pageSize
		if rest := limit - start + 1; rest < num {
			num = rest
		}

		items, err := g.page(ctx, map[string]string{
			"q":     query,
			"num":   strconv.Itoa(num),
			"start": strconv.Itoa(start),
		})
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			it.Snippet = strings.ReplaceAll(it.Snippet, "\n", " ")
			all = append(all, it)
		}
		// A short page means there is nothing further
		if len(items) < num {
			break
		}
	}
	return all, nil
}

func (g *GoogleSearcher) Image(ctx context.Context, query string) (string, error) {
	if g.apiKey == "" || g.engineID == "" {
		return "", ErrNotConfigured
	}
	items, err := g.page(ctx, map[string]string{
		"q":          query,
		"searchType": "image",
		"num":        "1",
		"imgSize":    "medium",
	})
	if err != nil || len(items) == 0 {
		return "", err
	}
	return items[0].Link, nil
}

func (g *GoogleSearcher) page(ctx context.Context, params map[string]string) ([]Result, error) {
	var out searchResponse
	var apiErr searchError
	res, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetQueryParam("cx", g.engineID).
		SetQueryParams(params).
		SetResult(&out).
		SetError(&apiErr).
		Get("/customsearch/v1")
	if err != nil {
		return nil, fmt.Errorf("web search request failed: %w", err)
	}
	if !res.IsSuccess() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = res.Status()
		}
		return nil, fmt.Errorf("web search error: %s", msg)
	}
	return out.Items, nil
}
