package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"public url", "https://storage.googleapis.com/acredge-admin/DeveloperLogo/d1/1-a.png", "DeveloperLogo/d1/1-a.png"},
		{"query stripped", "https://storage.googleapis.com/acredge-admin/ProjectImages/p1/1-a.jpg?GoogleAccessId=x&Expires=1", "ProjectImages/p1/1-a.jpg"},
		{"escaped path", "https://storage.googleapis.com/acredge-admin/SeriesLayouts/s1/floor%20plan.pdf", "SeriesLayouts/s1/floor plan.pdf"},
		{"gs scheme", "gs://acredge-admin/AmenitiesLogo/1-a.png", "AmenitiesLogo/1-a.png"},
		{"bare key", "/PropertyImages/p1/1-a.png", "PropertyImages/p1/1-a.png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := ObjectKey(tc.url, "acredge-admin")
			require.NoError(t, err)
			assert.Equal(t, tc.want, key)
		})
	}
}

func TestObjectKeyRejects(t *testing.T) {
	for _, raw := range []string{
		"https://storage.googleapis.com/other-bucket/a.png",
		"gs://other-bucket/a.png",
		"https://cdn.example.com/a.png",
		"",
		"https://storage.googleapis.com/acredge-admin/bad%zz.png",
	} {
		_, err := ObjectKey(raw, "acredge-admin")
		assert.Error(t, err, raw)
	}
}

func TestMemoryBlobStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBlobStore("acredge-user")

	url, err := store.Put(ctx, "UserProfileImage/1-a.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/acredge-user/UserProfileImage/1-a.png", url)

	_, err = store.Put(ctx, "PropertyImages/p1/1-b.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)

	listed, err := store.List(ctx, "PropertyImages/p1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://storage.googleapis.com/acredge-user/PropertyImages/p1/1-b.png"}, listed)

	require.NoError(t, store.Delete(ctx, url))
	require.NoError(t, store.Delete(ctx, url), "deleting a missing object is not an error")
	assert.Equal(t, 1, store.Len())

	store.FailPut = func(string) bool { return true }
	_, err = store.Put(ctx, "x.png", "image/png", strings.NewReader(""))
	assert.Error(t, err)
}
