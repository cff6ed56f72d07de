package usecase

import (
	"context"

	"acredge/internal/domain/service"
	"acredge/pkg/logger"
)

const (
	defaultHitsPerPage = 20
	maxHitsPerPage     = 100
)

type SearchUseCase struct {
	index service.SearchIndex
}

func NewSearchUseCase(index service.SearchIndex) *SearchUseCase {
	return &SearchUseCase{index: index}
}

// Search never fails the caller: index errors degrade to an empty page.
func (uc *SearchUseCase) Search(ctx context.Context, query service.SearchQuery) *service.SearchResult {
	if query.Page < 0 {
		query.Page = 0
	}
	if query.HitsPerPage <= 0 || query.HitsPerPage > maxHitsPerPage {
		query.HitsPerPage = defaultHitsPerPage
	}

	result, err := uc.index.Search(ctx, query)
	if err != nil {
		logger.Error("Property search failed: %v", err)
		empty := service.EmptySearchResult()
		empty.Page = query.Page
		return empty
	}
	return result
}
