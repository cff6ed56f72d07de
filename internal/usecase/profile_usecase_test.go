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

func newProfileFixture(t *testing.T) (*ProfileUseCase, *storage.MemoryBlobStore) {
	t.Helper()
	profiles := memrepo.NewMemoryUserProfileRepository()
	_, err := profiles.CreateIfAbsent(context.Background(), &entity.UserProfile{PhoneNumber: owner, CreatedAt: fixedNow})
	require.NoError(t, err)

	store := storage.NewMemoryBlobStore(testBucket)
	uc := NewProfileUseCase(profiles, service.DefaultMediaRules()[service.KindProfile], service.NewUploadOrchestrator(store))
	uc.now = func() time.Time { return fixedNow }
	return uc, store
}

func strPtr(s string) *string { return &s }

func TestProfileUpdate(t *testing.T) {
	uc, _ := newProfileFixture(t)
	ctx := context.Background()

	_, err := uc.Update(ctx, owner, entity.ProfileUpdate{})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.Update(ctx, owner, entity.ProfileUpdate{Email: strPtr("not-an-email")})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	profile, err := uc.Update(ctx, owner, entity.ProfileUpdate{
		Email:     strPtr(" asha@example.com "),
		FirstName: strPtr("Asha"),
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", profile.Email)
	assert.Equal(t, "Asha", profile.FirstName)
	require.NotNil(t, profile.UpdatedAt)
	assert.Equal(t, fixedNow, *profile.UpdatedAt)

	_, err = uc.Update(ctx, stranger, entity.ProfileUpdate{FirstName: strPtr("x")})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestProfileImageLifecycle(t *testing.T) {
	uc, store := newProfileFixture(t)
	ctx := context.Background()

	first, err := uc.UploadImage(ctx, owner, png("profileImage", "me.png"))
	require.NoError(t, err)
	firstURL := first.ProfileImage
	assert.Contains(t, firstURL, "/UserProfileImage/")

	second, err := uc.UploadImage(ctx, owner, png("profileImage", "me2.jpg"))
	require.NoError(t, err)
	assert.NotEqual(t, firstURL, second.ProfileImage)
	assert.False(t, blobExists(t, store, firstURL), "previous image removed")
	assert.Equal(t, 1, store.Len())

	_, err = uc.UploadImage(ctx, owner, service.NewMemoryFile("profileImage", "me.mp4", []byte("x")))
	assert.True(t, errors.Is(err, service.ErrInvalidFormat))

	require.NoError(t, uc.DeleteImage(ctx, owner))
	assert.Equal(t, 0, store.Len())

	profile, err := uc.Get(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, profile.ProfileImage)

	err = uc.DeleteImage(ctx, owner)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
