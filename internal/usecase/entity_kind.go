package usecase

import (
	"context"
	"time"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/internal/domain/service"
	"acredge/internal/domain/validation"
	"acredge/pkg/errors"
	"acredge/pkg/logger"
)

// EntityKind describes how the shared saga handles one entity kind.
type EntityKind struct {
	Name     string
	Rules    service.MediaRules
	Validate func(entity.Fields) []string
	Build    func(id string, f entity.Fields) entity.Record

	// Derive fills values computed at write time. Optional.
	Derive func(f entity.Fields, now time.Time)
	// Precheck runs before anything is written. excludeID is the id being
	// updated, empty on create. Optional.
	Precheck func(ctx context.Context, f entity.Fields, excludeID string) error
	// AfterCommit runs once the record is stored; it cannot fail the request.
	AfterCommit func(ctx context.Context, id string, rec entity.Record, created bool)
}

func DeveloperKind(rules service.MediaRules) EntityKind {
	return EntityKind{
		Name:     "Developer",
		Rules:    rules,
		Validate: validation.Developer,
		Build: func(id string, f entity.Fields) entity.Record {
			return entity.DeveloperFromFields(id, f)
		},
		Derive: func(f entity.Fields, now time.Time) {
			if inc, ok := f.Time("incorporationDate"); ok {
				f["incorporationDate"] = inc
				f["age"] = entity.YearsSince(inc, now)
			}
		},
	}
}

func ProjectKind(rules service.MediaRules) EntityKind {
	return EntityKind{
		Name:     "Project",
		Rules:    rules,
		Validate: validation.Project,
		Build: func(id string, f entity.Fields) entity.Record {
			return entity.ProjectFromFields(id, f)
		},
	}
}

func TowerKind() EntityKind {
	return EntityKind{
		Name:     "Tower",
		Rules:    service.MediaRules{},
		Validate: validation.Tower,
		Build: func(id string, f entity.Fields) entity.Record {
			return entity.TowerFromFields(id, f)
		},
	}
}

func SeriesKind(rules service.MediaRules) EntityKind {
	return EntityKind{
		Name:     "Series",
		Rules:    rules,
		Validate: validation.Series,
		Build: func(id string, f entity.Fields) entity.Record {
			return entity.SeriesFromFields(id, f)
		},
	}
}

// AmenityKind rejects names that collide with an existing amenity once case
// and whitespace are normalised.
func AmenityKind(rules service.MediaRules, repo repository.DocumentRepository) EntityKind {
	return EntityKind{
		Name:     "Amenity",
		Rules:    rules,
		Validate: validation.Amenity,
		Build: func(id string, f entity.Fields) entity.Record {
			return entity.AmenityFromFields(id, f)
		},
		Precheck: func(ctx context.Context, f entity.Fields, excludeID string) error {
			normalized := entity.NormalizeName(f.String("name"))
			if normalized == "" {
				return nil
			}
			matches, err := repo.FindBy(ctx, "normalizedName", normalized)
			if err != nil {
				return err
			}
			for _, m := range matches {
				if m.ID != excludeID {
					return errors.Duplicate("Amenity with this name already exists")
				}
			}
			return nil
		},
	}
}

// PropertyKind mirrors committed listings into the search index.
func PropertyKind(rules service.MediaRules, index service.SearchIndex) EntityKind {
	return EntityKind{
		Name:     "Property",
		Rules:    rules,
		Validate: validation.Property,
		Build: func(id string, f entity.Fields) entity.Record {
			return entity.PropertyFromFields(id, f)
		},
		AfterCommit: func(ctx context.Context, id string, rec entity.Record, created bool) {
			p, ok := rec.(*entity.Property)
			if !ok {
				return
			}
			record := SearchRecord(p)
			var err error
			if created {
				err = index.Index(ctx, id, record)
			} else {
				err = index.Update(ctx, id, record)
			}
			if err != nil {
				logger.Warn("Search index update for property %s failed: %v", id, err)
			}
		},
	}
}
