package usecase

import (
	"context"
	"time"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/internal/domain/service"
	"acredge/pkg/errors"
	"acredge/pkg/logger"
)

// PropertyUseCase serves user listings. Writes go through the shared saga;
// deletes archive the listing instead of dropping it.
type PropertyUseCase struct {
	*EntityUseCase
	repo  repository.PropertyRepository
	index service.SearchIndex
}

func NewPropertyUseCase(rules service.MediaRules, repo repository.PropertyRepository, index service.SearchIndex, orchestrator *service.UploadOrchestrator, inspectPDF bool) *PropertyUseCase {
	return &PropertyUseCase{
		EntityUseCase: NewEntityUseCase(PropertyKind(rules, index), repo, orchestrator, inspectPDF),
		repo:          repo,
		index:         index,
	}
}

// Update is limited to the listing's owner.
func (uc *PropertyUseCase) Update(ctx context.Context, id, actor string, in SagaInput) (entity.Record, error) {
	if err := uc.checkOwner(ctx, id, actor); err != nil {
		return nil, err
	}
	return uc.EntityUseCase.Update(ctx, id, actor, in)
}

func (uc *PropertyUseCase) ListByOwner(ctx context.Context, phone string) ([]entity.Record, error) {
	return uc.FindBy(ctx, entity.FieldCreatedBy, phone)
}

// Delete moves the listing into the archive and drops it from search. The
// archive move is atomic; the search removal is best-effort.
func (uc *PropertyUseCase) Delete(ctx context.Context, id, actor string) (*entity.DeletedProperty, error) {
	if err := uc.checkOwner(ctx, id, actor); err != nil {
		return nil, err
	}

	archived, err := uc.repo.Archive(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	logger.Info("Property %s archived by %s", id, actor)

	if err := uc.index.Delete(ctx, id); err != nil {
		logger.Warn("Search index delete for property %s failed: %v", id, err)
	}
	return archived, nil
}

func (uc *PropertyUseCase) Count(ctx context.Context) (int64, error) {
	return uc.repo.Count(ctx)
}

// Reindex pushes every live listing into the search index.
func (uc *PropertyUseCase) Reindex(ctx context.Context) (int, error) {
	docs, err := uc.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	records := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		records = append(records, SearchRecord(entity.PropertyFromFields(d.ID, d.Fields)))
	}

	if err := uc.index.Replace(ctx, records); err != nil {
		return 0, errors.Dependency("Failed to sync search index", err)
	}
	logger.Info("Synced %d properties to search index", len(records))
	return len(records), nil
}

func (uc *PropertyUseCase) checkOwner(ctx context.Context, id, actor string) error {
	fields, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if owner := fields.String(entity.FieldCreatedBy); owner != "" && owner != actor {
		return errors.Forbidden("You can only modify your own listings", nil)
	}
	return nil
}

// SearchRecord shapes a listing for the search index: objectID, a numeric
// price for range filters, tags for faceting and epoch-second timestamps
// for ranking.
func SearchRecord(p *entity.Property) map[string]interface{} {
	doc := p.Document()
	record := make(map[string]interface{}, len(doc)+4)
	for k, v := range doc {
		if t, ok := v.(time.Time); ok {
			record[k] = t.Unix()
			continue
		}
		record[k] = v
	}
	record["objectID"] = p.ID

	if p.Details != nil {
		if price, ok := p.Details.AskingPrice(); ok {
			record["price"] = price
		}
	}

	tags := append([]string{}, p.Amenities...)
	switch d := p.Details.(type) {
	case entity.ResidentialSellDetails:
		tags = append(tags, d.Typology...)
	case entity.ResidentialRentDetails:
		tags = append(tags, d.Typology...)
	}
	if p.BuildingType != "" {
		tags = append(tags, p.BuildingType)
	}
	record["_tags"] = tags

	return record
}
