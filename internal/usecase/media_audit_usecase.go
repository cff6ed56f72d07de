package usecase

import (
	"context"
	"path"
	"strconv"
	"strings"
	"time"

	"acredge/internal/domain/repository"
	"acredge/internal/domain/service"
	"acredge/pkg/errors"
	"acredge/pkg/logger"
)

// MediaOwner ties an entity kind's media rules to the collection and
// bucket its uploads live in.
type MediaOwner struct {
	Kind  string
	Rules service.MediaRules
	Repo  repository.DocumentRepository
	Store service.BlobStore
}

// OrphanGrace is how old a blob must be before it can be reported. Younger
// blobs may belong to a create or update that has not committed yet.
const OrphanGrace = time.Hour

// MediaAuditUseCase finds stored blobs that no document references, e.g.
// leftovers of a failed compensation.
type MediaAuditUseCase struct {
	owners []MediaOwner
	grace  time.Duration
	now    func() time.Time
}

func NewMediaAuditUseCase(owners ...MediaOwner) *MediaAuditUseCase {
	return &MediaAuditUseCase{
		owners: owners,
		grace:  OrphanGrace,
		now:    time.Now,
	}
}

// Orphans lists the blobs under folder/id that the owning document does
// not reference. A missing document makes every blob an orphan. Blobs
// uploaded within the grace window are never reported.
func (uc *MediaAuditUseCase) Orphans(ctx context.Context, folder, id string) ([]string, error) {
	owner, ok := uc.owner(folder)
	if !ok {
		return nil, errors.BadRequest("Unknown media folder: "+folder, nil)
	}

	stored, err := owner.Store.List(ctx, folder+"/"+id+"/")
	if err != nil {
		return nil, errors.Dependency("Failed to list media", err)
	}

	referenced := map[string]bool{}
	fields, err := owner.Repo.Get(ctx, id)
	switch {
	case err == nil:
		for field := range owner.Rules {
			for _, u := range fields.Strings(field) {
				referenced[stripQuery(u)] = true
			}
		}
	case errors.Is(err, "NOT_FOUND"):
		logger.Debug("%s %s not found, all media under %s is orphaned", owner.Kind, id, folder)
	default:
		return nil, err
	}

	cutoff := uc.now().Add(-uc.grace)
	orphans := []string{}
	for _, u := range stored {
		if referenced[stripQuery(u)] {
			continue
		}
		if at, ok := uploadedAt(u); ok && at.After(cutoff) {
			logger.Debug("Skipping recent upload %s", u)
			continue
		}
		orphans = append(orphans, u)
	}
	return orphans, nil
}

// Remove deletes the given blobs of folder and reports how many went.
func (uc *MediaAuditUseCase) Remove(ctx context.Context, folder string, urls []string) (int, error) {
	owner, ok := uc.owner(folder)
	if !ok {
		return 0, errors.BadRequest("Unknown media folder: "+folder, nil)
	}

	removed := 0
	for _, u := range urls {
		if err := owner.Store.Delete(ctx, u); err != nil {
			logger.Warn("Failed to delete orphan %s: %v", u, err)
			continue
		}
		removed++
	}
	return removed, nil
}

func (uc *MediaAuditUseCase) owner(folder string) (MediaOwner, bool) {
	for _, o := range uc.owners {
		for _, rule := range o.Rules {
			if rule.Folder == folder {
				return o, true
			}
		}
	}
	return MediaOwner{}, false
}

// uploadedAt reads the millisecond prefix of an object name
// ({millis}-{uuid}{ext}).
func uploadedAt(u string) (time.Time, bool) {
	name := path.Base(stripQuery(u))
	prefix, _, found := strings.Cut(name, "-")
	if !found {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

func stripQuery(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}
	return u
}

