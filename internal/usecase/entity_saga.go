package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/internal/domain/service"
	"acredge/pkg/errors"
	"acredge/pkg/logger"
)

// SagaInput is one create or update request: text fields plus attached files.
// Delete lists travel as text fields named by each media rule.
type SagaInput struct {
	Fields entity.Fields
	Files  []service.IncomingFile
}

// EntitySaga runs allocate, upload, validate, commit for one entity kind and
// compensates uploaded media when a later step fails.
type EntitySaga struct {
	kind         EntityKind
	repo         repository.DocumentRepository
	gate         *service.FileGate
	orchestrator *service.UploadOrchestrator
	now          func() time.Time
}

func NewEntitySaga(kind EntityKind, repo repository.DocumentRepository, orchestrator *service.UploadOrchestrator, inspectPDF bool) *EntitySaga {
	return &EntitySaga{
		kind:         kind,
		repo:         repo,
		gate:         service.NewFileGate(kind.Rules, inspectPDF),
		orchestrator: orchestrator,
		now:          time.Now,
	}
}

func (s *EntitySaga) Create(ctx context.Context, actor string, in SagaInput) (entity.Record, error) {
	candidate := s.textFields(in.Fields)

	if s.kind.Precheck != nil {
		if err := s.kind.Precheck(ctx, candidate, ""); err != nil {
			return nil, err
		}
	}

	groups, err := s.gate.Admit(in.Files)
	if err != nil {
		return nil, err
	}

	now := s.now()
	id, err := s.repo.Allocate(ctx, entity.Fields{
		entity.FieldCreatedBy: actor,
		entity.FieldCreatedOn: now,
		entity.FieldPending:   true,
	})
	if err != nil {
		return nil, dependency("Failed to allocate "+s.kind.Name, err)
	}

	uploaded, err := s.orchestrator.Upload(ctx, s.kind.Rules, groups, id)
	if err != nil {
		s.abortCreate(ctx, id, uploaded.All())
		return nil, err
	}

	for field, urls := range uploaded {
		if s.kind.Rules[field].Multiple {
			candidate[field] = urls
		} else {
			candidate[field] = urls[0]
		}
	}

	if s.kind.Derive != nil {
		s.kind.Derive(candidate, now)
	}

	if errs := s.kind.Validate(candidate); len(errs) > 0 {
		logger.Debug("%s validation failed: %v", s.kind.Name, errs)
		s.abortCreate(ctx, id, uploaded.All())
		return nil, errors.Validation(errs)
	}

	entity.StampCreate(candidate, actor, now)
	rec := s.kind.Build(id, candidate)

	if err := s.repo.Commit(ctx, id, rec.Document()); err != nil {
		s.abortCreate(ctx, id, uploaded.All())
		return nil, dependency("Failed to save "+s.kind.Name, err)
	}

	logger.Info("%s %s created by %s", s.kind.Name, id, actor)

	if s.kind.AfterCommit != nil {
		s.kind.AfterCommit(ctx, id, rec, true)
	}
	return rec, nil
}

func (s *EntitySaga) Update(ctx context.Context, id, actor string, in SagaInput) (entity.Record, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	candidate := existing.Clone()
	candidate.Merge(s.textFields(in.Fields))

	if s.kind.Precheck != nil {
		if err := s.kind.Precheck(ctx, candidate, id); err != nil {
			return nil, err
		}
	}

	groups, err := s.gate.Admit(in.Files)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.orchestrator.Upload(ctx, s.kind.Rules, groups, id)
	if err != nil {
		s.orchestrator.Cleanup(ctx, uploaded.All())
		return nil, err
	}

	var stale []string
	for field, rule := range s.kind.Rules {
		urls := uploaded[field]
		if !rule.Multiple {
			if len(urls) == 0 {
				continue
			}
			if old := existing.String(field); old != "" && old != urls[0] {
				stale = append(stale, old)
			}
			candidate[field] = urls[0]
			continue
		}

		var marked []string
		if rule.DeleteField != "" {
			marked = in.Fields.Strings(rule.DeleteField)
		}
		if len(urls) == 0 && len(marked) == 0 {
			continue
		}
		retained, dropped := splitRetained(existing.Strings(field), marked)
		candidate[field] = append(retained, urls...)
		stale = append(stale, dropped...)
	}

	now := s.now()
	if s.kind.Derive != nil {
		s.kind.Derive(candidate, now)
	}

	if errs := s.kind.Validate(candidate); len(errs) > 0 {
		logger.Debug("%s %s validation failed: %v", s.kind.Name, id, errs)
		s.orchestrator.Cleanup(ctx, uploaded.All())
		return nil, errors.Validation(errs)
	}

	entity.StampUpdate(candidate, existing, actor, now)
	rec := s.kind.Build(id, candidate)

	if err := s.repo.Commit(ctx, id, rec.Document()); err != nil {
		s.orchestrator.Cleanup(ctx, uploaded.All())
		return nil, dependency("Failed to update "+s.kind.Name, err)
	}

	logger.Info("%s %s updated by %s", s.kind.Name, id, actor)

	// Superseded media goes only after the write landed; a failure here
	// leaves an unreferenced blob, never a dangling URL.
	s.orchestrator.Cleanup(ctx, stale)

	if s.kind.AfterCommit != nil {
		s.kind.AfterCommit(ctx, id, rec, false)
	}
	return rec, nil
}

// textFields copies the request fields without media URLs or delete lists.
// Media URLs are only ever set from uploads or kept from the stored record.
func (s *EntitySaga) textFields(in entity.Fields) entity.Fields {
	out := entity.Fields{}
	for k, v := range in {
		out[k] = v
	}
	for field, rule := range s.kind.Rules {
		delete(out, field)
		if rule.DeleteField != "" {
			delete(out, rule.DeleteField)
		}
	}
	for _, key := range []string{entity.FieldCreatedBy, entity.FieldCreatedOn, entity.FieldUpdatedBy, entity.FieldUpdatedOn, entity.FieldPending, "id"} {
		delete(out, key)
	}
	return out
}

func (s *EntitySaga) abortCreate(ctx context.Context, id string, urls []string) {
	s.orchestrator.Cleanup(ctx, urls)
	if err := s.repo.Delete(context.WithoutCancel(ctx), id); err != nil {
		logger.Error("Failed to remove placeholder %s %s: %v", s.kind.Name, id, err)
	}
	logger.Warn("%s %s aborted, %d uploads compensated", s.kind.Name, id, len(urls))
}

// splitRetained keeps current URLs not marked for deletion. Only URLs that
// are actually part of current can be dropped.
func splitRetained(current, marked []string) (retained, dropped []string) {
	mark := make(map[string]bool, len(marked))
	for _, u := range marked {
		mark[u] = true
	}
	retained = []string{}
	for _, u := range current {
		if mark[u] {
			dropped = append(dropped, u)
			continue
		}
		retained = append(retained, u)
	}
	return retained, dropped
}

func dependency(message string, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	return errors.Dependency(message, err)
}
