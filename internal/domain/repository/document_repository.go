package repository

import (
	"context"

	"acredge/internal/domain/entity"
)

// Document is a stored record with its generated id.
type Document struct {
	ID     string
	Fields entity.Fields
}

// DocumentRepository stores one entity kind as schemaless documents.
// Pending placeholders are invisible to Get, List, FindBy and counts.
type DocumentRepository interface {
	Allocate(ctx context.Context, placeholder entity.Fields) (string, error)
	Get(ctx context.Context, id string) (entity.Fields, error)
	List(ctx context.Context) ([]Document, error)
	FindBy(ctx context.Context, field string, value interface{}) ([]Document, error)
	// Commit overwrites the document with fields, clearing the pending marker.
	Commit(ctx context.Context, id string, fields entity.Fields) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (entity.StatusCounts, error)
}

// PropertyRepository adds the archive move used for soft deletes.
type PropertyRepository interface {
	DocumentRepository
	// Archive atomically copies the listing into the deleted-properties
	// collection and removes it from the live one.
	Archive(ctx context.Context, id, deletedBy string) (*entity.DeletedProperty, error)
	GetArchived(ctx context.Context, id string) (*entity.DeletedProperty, error)
}
