package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type SearchQuery struct {
	Query       string                 `json:"query"`
	Filters     map[string]interface{} `json:"filters"`
	Page        int                    `json:"page"`
	HitsPerPage int                    `json:"hitsPerPage"`
}

type SearchResult struct {
	Hits   []map[string]interface{} `json:"hits"`
	NbHits int                      `json:"nbHits"`
	Page   int                      `json:"page"`
}

func EmptySearchResult() *SearchResult {
	return &SearchResult{Hits: []map[string]interface{}{}}
}

// SearchIndex mirrors listings into an external search engine. The document
// store stays the source of truth; callers treat mutation errors as
// best-effort.
type SearchIndex interface {
	Index(ctx context.Context, id string, record map[string]interface{}) error
	Update(ctx context.Context, id string, partial map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query SearchQuery) (*SearchResult, error)
	// Replace saves records in bulk; each record carries its objectID.
	Replace(ctx context.Context, records []map[string]interface{}) error
	Enabled() bool
}

// BuildFilter turns recognised filter keys into a conjunctive filter
// expression. Unknown keys are ignored.
func BuildFilter(filters map[string]interface{}) string {
	var parts []string

	if r, ok := filters["priceRange"].(map[string]interface{}); ok {
		if lo, ok := number(r["min"]); ok {
			parts = append(parts, "price >= "+lo)
		}
		if hi, ok := number(r["max"]); ok {
			parts = append(parts, "price <= "+hi)
		}
	}

	for _, key := range []string{"propertyType", "city", "propertyListing"} {
		if v, ok := filters[key].(string); ok && strings.TrimSpace(v) != "" {
			parts = append(parts, fmt.Sprintf("%s:'%s'", key, strings.ReplaceAll(v, "'", `\'`)))
		}
	}

	return strings.Join(parts, " AND ")
}

func number(v interface{}) (string, bool) {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case string:
		if _, err := strconv.ParseFloat(n, 64); err == nil {
			return n, true
		}
	}
	return "", false
}
