package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "acredge/internal/adapter/repository"
	"acredge/internal/domain/entity"
	"acredge/internal/domain/service"
	"acredge/pkg/errors"
)

func developerKind(*memrepo.MemoryDocumentRepository) EntityKind {
	return DeveloperKind(service.DefaultMediaRules()[service.KindDeveloper])
}

func amenityKind(repo *memrepo.MemoryDocumentRepository) EntityKind {
	return AmenityKind(service.DefaultMediaRules()[service.KindAmenity], repo)
}

func TestCreateDeveloper(t *testing.T) {
	fx := newSagaFixture(t, developerKind)
	ctx := context.Background()

	rec, err := fx.uc.Create(ctx, "ops@acredge.in", SagaInput{
		Fields: validDeveloperFields(),
		Files:  []service.IncomingFile{png("logoUrl", "logo.png")},
	})
	require.NoError(t, err)

	dev := rec.(*entity.Developer)
	assert.NotEmpty(t, dev.ID)
	assert.Equal(t, "ops@acredge.in", dev.CreatedBy)
	assert.Equal(t, fixedNow, dev.CreatedOn)
	assert.Nil(t, dev.UpdatedBy)
	assert.Equal(t, 9, dev.Age)
	assert.Equal(t, 320000, dev.TotalSqFtDelivered)
	assert.True(t, strings.HasPrefix(dev.LogoURL, "https://storage.googleapis.com/"+testBucket+"/DeveloperLogo/"+dev.ID+"/"), dev.LogoURL)
	assert.True(t, blobExists(t, fx.store, dev.LogoURL))

	stored, ok := fx.repo.Raw(dev.ID)
	require.True(t, ok)
	assert.NotContains(t, stored, entity.FieldPending)

	got, err := fx.uc.Get(ctx, dev.ID)
	require.NoError(t, err)
	assert.Equal(t, dev.LogoURL, got.(*entity.Developer).LogoURL)
}

func TestCreateValidationFailureCompensates(t *testing.T) {
	fx := newSagaFixture(t, developerKind)

	fields := validDeveloperFields()
	fields["description"] = "Too short"
	_, err := fx.uc.Create(context.Background(), "ops@acredge.in", SagaInput{
		Fields: fields,
		Files:  []service.IncomingFile{png("logoUrl", "logo.png")},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"Description must be at least 50 characters long"}, appErr.Details)

	assert.Equal(t, 0, fx.store.Len(), "uploaded logo removed")
	assert.Equal(t, 0, fx.repo.Len(), "placeholder removed")
}

func TestCreateUploadFailureCompensates(t *testing.T) {
	fx := newSagaFixture(t, func(*memrepo.MemoryDocumentRepository) EntityKind {
		return ProjectKind(service.DefaultMediaRules()[service.KindProject])
	})
	fx.store.FailPut = func(key string) bool { return strings.HasPrefix(key, "ProjectVideos/") }

	_, err := fx.uc.Create(context.Background(), "ops@acredge.in", SagaInput{
		Fields: entity.Fields{"name": "Riverside"},
		Files: []service.IncomingFile{
			png("images", "a.png"),
			png("images", "b.png"),
			service.NewMemoryFile("videos", "tour.mp4", []byte("video")),
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUploadFailed))
	assert.Equal(t, 0, fx.store.Len())
	assert.Equal(t, 0, fx.repo.Len())
}

func TestCreateGateRejectionWritesNothing(t *testing.T) {
	fx := newSagaFixture(t, developerKind)

	_, err := fx.uc.Create(context.Background(), "ops@acredge.in", SagaInput{
		Fields: validDeveloperFields(),
		Files:  []service.IncomingFile{service.NewMemoryFile("logoUrl", "logo.gif", []byte("gif"))},
	})

	assert.True(t, errors.Is(err, service.ErrInvalidFormat))
	assert.Equal(t, 0, fx.repo.Len())
	assert.Equal(t, 0, fx.store.Len())
}

func TestCreateIgnoresClientMediaURLs(t *testing.T) {
	fx := newSagaFixture(t, developerKind)

	fields := validDeveloperFields()
	fields["logoUrl"] = "https://evil.example.com/logo.png"
	_, err := fx.uc.Create(context.Background(), "ops@acredge.in", SagaInput{Fields: fields})

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"Logo must be a PNG or JPG file"}, appErr.Details)
}

func TestAmenityDuplicateName(t *testing.T) {
	fx := newSagaFixture(t, amenityKind)
	ctx := context.Background()

	first, err := fx.uc.Create(ctx, "ops@acredge.in", SagaInput{
		Fields: entity.Fields{"name": "Swimming Pool"},
		Files:  []service.IncomingFile{png("logoUrl", "pool.png")},
	})
	require.NoError(t, err)

	_, err = fx.uc.Create(ctx, "ops@acredge.in", SagaInput{
		Fields: entity.Fields{"name": "  swimming   POOL "},
		Files:  []service.IncomingFile{png("logoUrl", "pool2.png")},
	})
	assert.True(t, errors.Is(err, "DUPLICATE"))
	assert.Equal(t, 1, fx.store.Len(), "duplicate is rejected before upload")
	assert.Equal(t, 1, fx.repo.Len())

	id := first.(*entity.Amenity).ID
	_, err = fx.uc.Update(ctx, id, "ops@acredge.in", SagaInput{Fields: entity.Fields{"name": "swimming pool"}})
	assert.NoError(t, err, "renaming onto itself is allowed")
}

func TestUpdateReplacesSingleMedia(t *testing.T) {
	fx := newSagaFixture(t, developerKind)
	ctx := context.Background()

	rec, err := fx.uc.Create(ctx, "ops@acredge.in", SagaInput{
		Fields: validDeveloperFields(),
		Files:  []service.IncomingFile{png("logoUrl", "old.png")},
	})
	require.NoError(t, err)
	created := rec.(*entity.Developer)

	rec, err = fx.uc.Update(ctx, created.ID, "lead@acredge.in", SagaInput{
		Fields: entity.Fields{"status": entity.StatusDisable},
		Files:  []service.IncomingFile{png("logoUrl", "new.jpg")},
	})
	require.NoError(t, err)
	updated := rec.(*entity.Developer)

	assert.Equal(t, entity.StatusDisable, updated.Status)
	assert.Equal(t, "Skyline Builders", updated.Name)
	assert.Equal(t, "ops@acredge.in", updated.CreatedBy)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, "lead@acredge.in", *updated.UpdatedBy)

	assert.NotEqual(t, created.LogoURL, updated.LogoURL)
	assert.False(t, blobExists(t, fx.store, created.LogoURL), "superseded logo deleted")
	assert.True(t, blobExists(t, fx.store, updated.LogoURL))
}

func TestUpdateMissingRecord(t *testing.T) {
	fx := newSagaFixture(t, developerKind)

	_, err := fx.uc.Update(context.Background(), "nope", "ops@acredge.in", SagaInput{Fields: entity.Fields{"name": "x"}})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
