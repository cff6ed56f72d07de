package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/pkg/errors"
)

const (
	DevelopersCollection = "developers"
	ProjectsCollection   = "projects"
	TowersCollection     = "towers"
	SeriesCollection     = "series"
	AmenitiesCollection  = "amenities"
	PropertiesCollection = "properties"
)

type firestoreDocumentRepository struct {
	client     *firestore.Client
	collection string
	resource   string
}

// NewFirestoreDocumentRepository stores one entity kind in collection.
// resource names the kind in not-found errors.
func NewFirestoreDocumentRepository(client *firestore.Client, collection, resource string) repository.DocumentRepository {
	return &firestoreDocumentRepository{
		client:     client,
		collection: collection,
		resource:   resource,
	}
}

func (r *firestoreDocumentRepository) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func (r *firestoreDocumentRepository) Allocate(ctx context.Context, placeholder entity.Fields) (string, error) {
	doc := r.col().NewDoc()
	if _, err := doc.Create(ctx, map[string]interface{}(placeholder)); err != nil {
		return "", errors.Internal("Failed to allocate "+r.resource, err)
	}
	return doc.ID, nil
}

func (r *firestoreDocumentRepository) Get(ctx context.Context, id string) (entity.Fields, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound(r.resource, err)
		}
		return nil, errors.Internal("Failed to get "+r.resource, err)
	}

	fields := entity.Fields(doc.Data())
	if fields.Bool(entity.FieldPending) {
		return nil, errors.NotFound(r.resource, nil)
	}
	return fields, nil
}

func (r *firestoreDocumentRepository) List(ctx context.Context) ([]repository.Document, error) {
	return r.collect(ctx, r.col().Query)
}

func (r *firestoreDocumentRepository) FindBy(ctx context.Context, field string, value interface{}) ([]repository.Document, error) {
	return r.collect(ctx, r.col().Where(field, "==", value))
}

func (r *firestoreDocumentRepository) collect(ctx context.Context, query firestore.Query) ([]repository.Document, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	docs := []repository.Document{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate "+r.collection, err)
		}

		fields := entity.Fields(doc.Data())
		if fields.Bool(entity.FieldPending) {
			continue
		}
		docs = append(docs, repository.Document{ID: doc.Ref.ID, Fields: fields})
	}
	return docs, nil
}

func (r *firestoreDocumentRepository) Commit(ctx context.Context, id string, fields entity.Fields) error {
	data := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if k == entity.FieldPending {
			continue
		}
		data[k] = v
	}

	if _, err := r.col().Doc(id).Set(ctx, data); err != nil {
		return errors.Internal("Failed to save "+r.resource, err)
	}
	return nil
}

func (r *firestoreDocumentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete "+r.resource, err)
	}
	return nil
}

// Count excludes pending placeholders.
func (r *firestoreDocumentRepository) Count(ctx context.Context) (int64, error) {
	all, err := countQuery(ctx, r.col().Query)
	if err != nil {
		return 0, errors.Internal("Failed to count "+r.collection, err)
	}
	pending, err := countQuery(ctx, r.col().Where(entity.FieldPending, "==", true))
	if err != nil {
		return 0, errors.Internal("Failed to count "+r.collection, err)
	}
	return all - pending, nil
}

func (r *firestoreDocumentRepository) CountByStatus(ctx context.Context) (entity.StatusCounts, error) {
	var counts entity.StatusCounts
	var err error

	if counts.Total, err = r.Count(ctx); err != nil {
		return counts, err
	}
	if counts.Active, err = countQuery(ctx, r.col().Where("status", "==", entity.StatusActive)); err != nil {
		return counts, errors.Internal("Failed to count active "+r.collection, err)
	}
	if counts.Disabled, err = countQuery(ctx, r.col().Where("status", "==", entity.StatusDisable)); err != nil {
		return counts, errors.Internal("Failed to count disabled "+r.collection, err)
	}
	return counts, nil
}

func countQuery(ctx context.Context, query firestore.Query) (int64, error) {
	res, err := query.NewAggregationQuery().WithCount("count").Get(ctx)
	if err != nil {
		return 0, err
	}
	v, ok := res["count"].(*firestorepb.Value)
	if !ok {
		return 0, nil
	}
	return v.GetIntegerValue(), nil
}
