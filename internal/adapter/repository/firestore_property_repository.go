package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/pkg/errors"
)

const DeletedPropertiesCollection = "DeletedProperties"

type firestorePropertyRepository struct {
	repository.DocumentRepository
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		DocumentRepository: NewFirestoreDocumentRepository(client, PropertiesCollection, "Property"),
		client:             client,
	}
}

func (r *firestorePropertyRepository) Archive(ctx context.Context, id, deletedBy string) (*entity.DeletedProperty, error) {
	live := r.client.Collection(PropertiesCollection).Doc(id)
	archive := r.client.Collection(DeletedPropertiesCollection).Doc(id)

	var archived *entity.DeletedProperty
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(live)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Property", err)
			}
			return err
		}

		data := entity.Fields(snap.Data())
		if data.Bool(entity.FieldPending) {
			return errors.NotFound("Property", nil)
		}

		archived = &entity.DeletedProperty{
			OriginalID: id,
			DeletedBy:  deletedBy,
			DeletedOn:  time.Now(),
			Data:       data,
		}
		if err := tx.Set(archive, map[string]interface{}(archived.Document())); err != nil {
			return err
		}
		return tx.Delete(live)
	})
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		return nil, errors.Internal("Failed to delete property", err)
	}
	return archived, nil
}

func (r *firestorePropertyRepository) GetArchived(ctx context.Context, id string) (*entity.DeletedProperty, error) {
	doc, err := r.client.Collection(DeletedPropertiesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Deleted property", err)
		}
		return nil, errors.Internal("Failed to get deleted property", err)
	}
	return deletedFromFields(doc.Data()), nil
}

func deletedFromFields(data map[string]interface{}) *entity.DeletedProperty {
	f := entity.Fields(data).Clone()
	d := &entity.DeletedProperty{
		OriginalID: f.String("originalId"),
		DeletedBy:  f.String("deletedBy"),
	}
	if t, ok := f.Time("deletedOn"); ok {
		d.DeletedOn = t
	}
	delete(f, "originalId")
	delete(f, "deletedBy")
	delete(f, "deletedOn")
	d.Data = f
	return d
}
