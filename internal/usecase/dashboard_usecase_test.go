package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "acredge/internal/adapter/repository"
	"acredge/internal/domain/entity"
	"acredge/internal/domain/service"
	"acredge/internal/infrastructure/storage"
	"acredge/pkg/errors"
)

func seededEntityUseCase(t *testing.T, kind EntityKind, statuses ...string) *EntityUseCase {
	t.Helper()
	repo := memrepo.NewMemoryDocumentRepository(kind.Name)
	ctx := context.Background()
	for _, status := range statuses {
		id, err := repo.Allocate(ctx, entity.Fields{entity.FieldPending: true})
		require.NoError(t, err)
		require.NoError(t, repo.Commit(ctx, id, entity.Fields{"status": status}))
	}
	// An uncommitted placeholder never shows up in counts.
	_, err := repo.Allocate(ctx, entity.Fields{entity.FieldPending: true})
	require.NoError(t, err)

	return NewEntityUseCase(kind, repo, service.NewUploadOrchestrator(storage.NewMemoryBlobStore(testBucket)), false)
}

func TestDashboardStats(t *testing.T) {
	rules := service.DefaultMediaRules()
	developers := seededEntityUseCase(t, DeveloperKind(rules[service.KindDeveloper]), entity.StatusActive, entity.StatusActive, entity.StatusDisable)
	projects := seededEntityUseCase(t, ProjectKind(rules[service.KindProject]), entity.StatusActive)
	series := seededEntityUseCase(t, SeriesKind(rules[service.KindSeries]))
	towers := seededEntityUseCase(t, TowerKind(), entity.StatusDisable, "")

	users := memrepo.NewMemoryUserProfileRepository()
	_, err := users.CreateIfAbsent(context.Background(), &entity.UserProfile{PhoneNumber: owner})
	require.NoError(t, err)
	properties := memrepo.NewMemoryPropertyRepository()

	uc := NewDashboardUseCase(developers, projects, series, towers, users, properties)
	ctx := context.Background()

	devStats, err := uc.KindStats(ctx, "developers")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCounts{Total: 3, Active: 2, Disabled: 1}, devStats)

	_, err = uc.KindStats(ctx, "amenities")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	all, err := uc.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCounts{Total: 2, Active: 0, Disabled: 1}, all.Towers)
	assert.Equal(t, entity.StatusCounts{Total: 6, Active: 3, Disabled: 2}, all.All)

	totalUsers, err := uc.TotalUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), totalUsers)

	totalProperties, err := uc.TotalProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), totalProperties)
}
