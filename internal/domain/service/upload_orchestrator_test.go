package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acredge/internal/domain/service"
	"acredge/internal/infrastructure/storage"
	"acredge/pkg/errors"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	key := service.ObjectKey("ProjectImages", "p1", "front.png", at)
	assert.True(t, strings.HasPrefix(key, "ProjectImages/p1/1700000000123-"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)

	flat := service.ObjectKey("AmenitiesLogo", "", "gym.jpg", at)
	assert.True(t, strings.HasPrefix(flat, "AmenitiesLogo/1700000000123-"), flat)
}

func TestUploadPreservesOrderPerField(t *testing.T) {
	store := storage.NewMemoryBlobStore("bucket")
	orchestrator := service.NewUploadOrchestrator(store)
	rules := service.DefaultMediaRules()[service.KindProject]

	files := []service.IncomingFile{
		service.NewMemoryFile("images", "a.png", pngHeader),
		service.NewMemoryFile("images", "b.png", pngHeader),
		service.NewMemoryFile("images", "c.png", pngHeader),
	}
	result, err := orchestrator.Upload(context.Background(), rules, map[string][]service.IncomingFile{"images": files}, "p1")
	require.NoError(t, err)
	require.Len(t, result["images"], 3)
	assert.Equal(t, 3, store.Len())

	for _, url := range result["images"] {
		assert.True(t, strings.HasPrefix(url, "https://storage.googleapis.com/bucket/ProjectImages/p1/"), url)
		key, err := storage.ObjectKey(url, "bucket")
		require.NoError(t, err)
		contentType, ok := store.ContentType(key)
		assert.True(t, ok)
		assert.Equal(t, "image/png", contentType)
	}
}

func TestUploadPartialFailureReportsProducedURLs(t *testing.T) {
	store := storage.NewMemoryBlobStore("bucket")
	store.FailPut = func(key string) bool { return strings.HasPrefix(key, "ProjectVideos/") }
	orchestrator := service.NewUploadOrchestrator(store)
	rules := service.DefaultMediaRules()[service.KindProject]

	groups := map[string][]service.IncomingFile{
		"images": {service.NewMemoryFile("images", "a.png", pngHeader), service.NewMemoryFile("images", "b.png", pngHeader)},
		"videos": {service.NewMemoryFile("videos", "tour.mp4", []byte("video"))},
	}
	result, err := orchestrator.Upload(context.Background(), rules, groups, "p1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUploadFailed))
	assert.Equal(t, 502, errors.Status(err))

	// Every upload runs even after one fails, so both images landed.
	assert.Len(t, result.All(), store.Len())
	assert.Empty(t, result["videos"])

	orchestrator.Cleanup(context.Background(), result.All())
	assert.Equal(t, 0, store.Len())
}

func TestUploadRejectsUnknownField(t *testing.T) {
	orchestrator := service.NewUploadOrchestrator(storage.NewMemoryBlobStore("bucket"))

	_, err := orchestrator.Upload(context.Background(), service.MediaRules{},
		map[string][]service.IncomingFile{"logo": {service.NewMemoryFile("logo", "a.png", nil)}}, "x")
	assert.True(t, errors.Is(err, service.ErrUnknownField))
}

func TestCleanupIgnoresMissingObjects(t *testing.T) {
	store := storage.NewMemoryBlobStore("bucket")
	orchestrator := service.NewUploadOrchestrator(store)

	orchestrator.Cleanup(context.Background(), []string{"https://storage.googleapis.com/bucket/ProjectImages/gone.png"})
	orchestrator.Cleanup(context.Background(), nil)
	assert.Equal(t, 0, store.Len())
}
