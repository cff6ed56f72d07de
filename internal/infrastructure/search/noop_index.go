package search

import (
	"context"

	"acredge/internal/domain/service"
)

// NoopIndex stands in when no search engine is configured. Mutations are
// dropped and every search is empty.
type NoopIndex struct{}

func (NoopIndex) Index(ctx context.Context, id string, record map[string]interface{}) error {
	return nil
}

func (NoopIndex) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	return nil
}

func (NoopIndex) Delete(ctx context.Context, id string) error { return nil }

func (NoopIndex) Search(ctx context.Context, query service.SearchQuery) (*service.SearchResult, error) {
	result := service.EmptySearchResult()
	result.Page = query.Page
	return result, nil
}

func (NoopIndex) Replace(ctx context.Context, records []map[string]interface{}) error { return nil }

func (NoopIndex) Enabled() bool { return false }

var _ service.SearchIndex = NoopIndex{}
