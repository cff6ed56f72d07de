package usecase

import (
	"context"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/internal/domain/service"
)

// EntityUseCase serves one admin entity kind: the create/update saga plus
// reads and status counts.
type EntityUseCase struct {
	kind EntityKind
	repo repository.DocumentRepository
	saga *EntitySaga
}

func NewEntityUseCase(kind EntityKind, repo repository.DocumentRepository, orchestrator *service.UploadOrchestrator, inspectPDF bool) *EntityUseCase {
	return &EntityUseCase{
		kind: kind,
		repo: repo,
		saga: NewEntitySaga(kind, repo, orchestrator, inspectPDF),
	}
}

func (uc *EntityUseCase) Name() string {
	return uc.kind.Name
}

func (uc *EntityUseCase) Create(ctx context.Context, actor string, in SagaInput) (entity.Record, error) {
	return uc.saga.Create(ctx, actor, in)
}

func (uc *EntityUseCase) Update(ctx context.Context, id, actor string, in SagaInput) (entity.Record, error) {
	return uc.saga.Update(ctx, id, actor, in)
}

func (uc *EntityUseCase) Get(ctx context.Context, id string) (entity.Record, error) {
	fields, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.kind.Build(id, fields), nil
}

func (uc *EntityUseCase) List(ctx context.Context) ([]entity.Record, error) {
	docs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.build(docs), nil
}

func (uc *EntityUseCase) FindBy(ctx context.Context, field string, value interface{}) ([]entity.Record, error) {
	docs, err := uc.repo.FindBy(ctx, field, value)
	if err != nil {
		return nil, err
	}
	return uc.build(docs), nil
}

func (uc *EntityUseCase) Stats(ctx context.Context) (entity.StatusCounts, error) {
	return uc.repo.CountByStatus(ctx)
}

func (uc *EntityUseCase) build(docs []repository.Document) []entity.Record {
	out := make([]entity.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, uc.kind.Build(d.ID, d.Fields))
	}
	return out
}
