package search

import (
	"context"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/opt"
	algolia "github.com/algolia/algoliasearch-client-go/v3/algolia/search"

	"acredge/internal/domain/service"
)

// AlgoliaIndex mirrors property listings into one Algolia index.
type AlgoliaIndex struct {
	index *algolia.Index
}

func NewAlgoliaIndex(appID, adminKey, indexName string) *AlgoliaIndex {
	return newAlgoliaIndex(algolia.NewClient(appID, adminKey), indexName)
}

func newAlgoliaIndex(client *algolia.Client, indexName string) *AlgoliaIndex {
	return &AlgoliaIndex{index: client.InitIndex(indexName)}
}

// Configure applies searchable attributes, facets and ranking.
func (a *AlgoliaIndex) Configure(ctx context.Context) error {
	res, err := a.index.SetSettings(algolia.Settings{
		SearchableAttributes: opt.SearchableAttributes(
			"city",
			"projectName",
			"developerName",
			"towerName",
			"propertyType",
			"amenities",
		),
		AttributesForFaceting: opt.AttributesForFaceting(
			"city",
			"propertyType",
			"propertyListing",
			"buildingType",
			"price",
		),
		CustomRanking: opt.CustomRanking("desc(createdOn)"),
	}, ctx)
	if err != nil {
		return fmt.Errorf("failed to apply index settings: %v", err)
	}
	return res.Wait(ctx)
}

// Index, Update and Delete return once Algolia has published the task, so
// a search issued afterwards sees the change.
func (a *AlgoliaIndex) Index(ctx context.Context, id string, record map[string]interface{}) error {
	record["objectID"] = id
	res, err := a.index.SaveObject(record, ctx)
	if err != nil {
		return err
	}
	return res.Wait(ctx)
}

func (a *AlgoliaIndex) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	partial["objectID"] = id
	res, err := a.index.PartialUpdateObject(partial, ctx)
	if err != nil {
		return err
	}
	return res.Wait(ctx)
}

func (a *AlgoliaIndex) Delete(ctx context.Context, id string) error {
	res, err := a.index.DeleteObject(id, ctx)
	if err != nil {
		return err
	}
	return res.Wait(ctx)
}

func (a *AlgoliaIndex) Search(ctx context.Context, query service.SearchQuery) (*service.SearchResult, error) {
	res, err := a.index.Search(query.Query,
		opt.Filters(service.BuildFilter(query.Filters)),
		opt.Page(query.Page),
		opt.HitsPerPage(query.HitsPerPage),
		ctx,
	)
	if err != nil {
		return nil, err
	}

	hits := res.Hits
	if hits == nil {
		hits = []map[string]interface{}{}
	}
	return &service.SearchResult{Hits: hits, NbHits: res.NbHits, Page: res.Page}, nil
}

func (a *AlgoliaIndex) Replace(ctx context.Context, records []map[string]interface{}) error {
	if len(records) == 0 {
		return nil
	}
	res, err := a.index.SaveObjects(records, ctx)
	if err != nil {
		return err
	}
	return res.Wait(ctx)
}

func (a *AlgoliaIndex) Enabled() bool {
	return true
}

var _ service.SearchIndex = (*AlgoliaIndex)(nil)
