package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "acredge/internal/adapter/repository"
	"acredge/internal/domain/entity"
	"acredge/internal/domain/service"
	"acredge/internal/infrastructure/storage"
	"acredge/pkg/errors"
)

const (
	owner    = "+919800000001"
	stranger = "+919800000002"
)

type propertyFixture struct {
	uc    *PropertyUseCase
	repo  *memrepo.MemoryPropertyRepository
	store *storage.MemoryBlobStore
	index *recordingIndex
}

func newPropertyFixture(t *testing.T) *propertyFixture {
	t.Helper()
	repo := memrepo.NewMemoryPropertyRepository()
	store := storage.NewMemoryBlobStore(testBucket)
	index := newRecordingIndex()
	uc := NewPropertyUseCase(service.DefaultMediaRules()[service.KindProperty], repo, index, service.NewUploadOrchestrator(store), false)
	uc.saga.now = func() time.Time { return fixedNow }
	return &propertyFixture{uc: uc, repo: repo, store: store, index: index}
}

func saleListing() entity.Fields {
	return entity.Fields{
		"propertyListing": entity.ListingSale,
		"buildingType":    entity.BuildingResidential,
		"city":            "Pune",
		"propertyType":    "Apartment",
		"typology":        `["2 BHK"]`,
		"sellingPrice":    "8500000",
		"amenities":       []string{"Gym"},
		"floor":           "7",
	}
}

func (fx *propertyFixture) create(t *testing.T, files ...service.IncomingFile) *entity.Property {
	t.Helper()
	rec, err := fx.uc.Create(context.Background(), owner, SagaInput{Fields: saleListing(), Files: files})
	require.NoError(t, err)
	return rec.(*entity.Property)
}

func TestCreatePropertyIndexesListing(t *testing.T) {
	fx := newPropertyFixture(t)

	p := fx.create(t, png("images", "a.png"), png("images", "b.png"))

	assert.Equal(t, owner, p.CreatedBy)
	assert.Equal(t, entity.FormResidentialSell, p.Form())
	assert.Len(t, p.Images, 2)
	assert.Equal(t, []string{}, p.Videos)

	doc := p.Document()
	assert.NotContains(t, doc, "floor", "attributes outside the variant are dropped")

	record := fx.index.indexed[p.ID]
	require.NotNil(t, record)
	assert.Equal(t, p.ID, record["objectID"])
	assert.Equal(t, 8500000, record["price"])
	assert.Equal(t, []string{"Gym", "2 BHK", entity.BuildingResidential}, record["_tags"])
	assert.Equal(t, fixedNow.Unix(), record[entity.FieldCreatedOn])
}

func TestUpdatePropertyMediaLists(t *testing.T) {
	fx := newPropertyFixture(t)
	ctx := context.Background()
	p := fx.create(t, png("images", "a.png"), png("images", "b.png"), png("images", "c.png"))
	a, b, c := p.Images[0], p.Images[1], p.Images[2]

	rec, err := fx.uc.Update(ctx, p.ID, owner, SagaInput{
		Fields: entity.Fields{
			"deleteImages": []string{b, "https://storage.googleapis.com/" + testBucket + "/PropertyImages/other/1.png"},
			"sellingPrice": "8200000",
		},
		Files: []service.IncomingFile{png("images", "d.png")},
	})
	require.NoError(t, err)
	updated := rec.(*entity.Property)

	require.Len(t, updated.Images, 3)
	assert.Equal(t, []string{a, c}, updated.Images[:2], "retained keep their order")
	assert.False(t, blobExists(t, fx.store, b))
	assert.True(t, blobExists(t, fx.store, updated.Images[2]))
	assert.Equal(t, 3, fx.store.Len())

	assert.Equal(t, 8200000, fx.index.indexed[p.ID]["price"])
}

func TestUpdatePropertyValidationFailureKeepsOldMedia(t *testing.T) {
	fx := newPropertyFixture(t)
	p := fx.create(t, png("images", "a.png"))

	_, err := fx.uc.Update(context.Background(), p.ID, owner, SagaInput{
		Fields: entity.Fields{"propertyListing": "Lease", "deleteImages": p.Images},
		Files:  []service.IncomingFile{png("images", "b.png")},
	})
	require.True(t, errors.Is(err, "VALIDATION_ERROR"))

	assert.Equal(t, 1, fx.store.Len(), "new upload compensated")
	assert.True(t, blobExists(t, fx.store, p.Images[0]), "marked media is kept when the update fails")

	fields, err := fx.repo.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingSale, fields.String("propertyListing"))
}

func TestPropertyOwnership(t *testing.T) {
	fx := newPropertyFixture(t)
	ctx := context.Background()
	p := fx.create(t)

	_, err := fx.uc.Update(ctx, p.ID, stranger, SagaInput{Fields: entity.Fields{"city": "Mumbai"}})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = fx.uc.Delete(ctx, p.ID, stranger)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	mine, err := fx.uc.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := fx.uc.ListByOwner(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestDeletePropertyArchives(t *testing.T) {
	fx := newPropertyFixture(t)
	ctx := context.Background()
	p := fx.create(t, png("images", "a.png"))

	archived, err := fx.uc.Delete(ctx, p.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, p.ID, archived.OriginalID)
	assert.Equal(t, owner, archived.DeletedBy)
	assert.Equal(t, "Pune", archived.Data.String("city"))

	_, err = fx.uc.Get(ctx, p.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	stored, err := fx.repo.GetArchived(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, owner, stored.DeletedBy)

	assert.Contains(t, fx.index.deleted, p.ID)
	assert.True(t, blobExists(t, fx.store, p.Images[0]), "archived listings keep their media")

	count, err := fx.uc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestReindexReplacesIndex(t *testing.T) {
	fx := newPropertyFixture(t)
	fx.create(t)
	fx.create(t)

	n, err := fx.uc.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, fx.index.replaced, 2)
}

func TestUpdatePropertyDeleteOnly(t *testing.T) {
	fx := newPropertyFixture(t)
	p := fx.create(t, png("images", "a.png"), png("images", "b.png"))

	rec, err := fx.uc.Update(context.Background(), p.ID, owner, SagaInput{
		Fields: entity.Fields{"deleteImages": `["` + p.Images[0] + `"]`},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{p.Images[1]}, rec.(*entity.Property).Images)
	assert.False(t, blobExists(t, fx.store, p.Images[0]))
	assert.Equal(t, 1, fx.store.Len())
}
