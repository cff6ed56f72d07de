package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"acredge/internal/domain/service"
	"acredge/pkg/logger"
)

const publicHost = "https://storage.googleapis.com/"

// GCSBlobStore keeps media objects in one Cloud Storage bucket and serves
// them through public URLs.
type GCSBlobStore struct {
	client     *storage.Client
	bucketName string
}

func NewGCSBlobStore(ctx context.Context, bucketName string, opts ...option.ClientOption) (*GCSBlobStore, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	store := &GCSBlobStore{
		client:     client,
		bucketName: bucketName,
	}

	if err := store.setBucketCORS(ctx); err != nil {
		logger.Warn("Failed to set CORS configuration on %s: %v", bucketName, err)
	}

	return store, nil
}

func (s *GCSBlobStore) setBucketCORS(ctx context.Context) error {
	bucket := s.client.Bucket(s.bucketName)

	attrs, err := bucket.Attrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bucket attributes: %v", err)
	}
	if len(attrs.CORS) > 0 {
		return nil
	}

	_, err = bucket.Update(ctx, storage.BucketAttrsToUpdate{
		CORS: []storage.CORS{{
			MaxAge:          3600,
			Methods:         []string{"GET", "HEAD"},
			Origins:         []string{"*"},
			ResponseHeaders: []string{"Content-Type"},
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to update bucket CORS: %v", err)
	}
	return nil
}

func (s *GCSBlobStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	obj := s.client.Bucket(s.bucketName).Object(key)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, r); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		// a private object would never be referenced
		_ = obj.Delete(context.WithoutCancel(ctx))
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return s.URL(key), nil
}

func (s *GCSBlobStore) Delete(ctx context.Context, fileURL string) error {
	key, err := ObjectKey(fileURL, s.bucketName)
	if err != nil {
		return err
	}

	if err := s.client.Bucket(s.bucketName).Object(key).Delete(ctx); err != nil {
		if stderrors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}

func (s *GCSBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	it := s.client.Bucket(s.bucketName).Objects(ctx, &storage.Query{Prefix: prefix})

	urls := []string{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %v", err)
		}
		urls = append(urls, s.URL(attrs.Name))
	}
	return urls, nil
}

func (s *GCSBlobStore) URL(key string) string {
	return publicHost + s.bucketName + "/" + key
}

func (s *GCSBlobStore) Close() error {
	return s.client.Close()
}

// ObjectKey extracts the object key from a public URL, a gs:// URL or a bare
// key. Query strings are dropped and the key is URL-decoded.
func ObjectKey(fileURL, bucket string) (string, error) {
	raw := strings.TrimSpace(fileURL)
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[:i]
	}

	var path string
	switch {
	case strings.HasPrefix(raw, publicHost):
		path = strings.TrimPrefix(raw, publicHost)
		parts := strings.SplitN(path, "/", 2)
		if len(parts) != 2 || parts[0] != bucket {
			return "", fmt.Errorf("invalid GCS URL format or bucket mismatch: %s", fileURL)
		}
		path = parts[1]
	case strings.HasPrefix(raw, "gs://"):
		parts := strings.SplitN(strings.TrimPrefix(raw, "gs://"), "/", 2)
		if len(parts) != 2 || parts[0] != bucket {
			return "", fmt.Errorf("invalid gs URL format or bucket mismatch: %s", fileURL)
		}
		path = parts[1]
	case strings.Contains(raw, "://"):
		return "", fmt.Errorf("unsupported storage URL: %s", fileURL)
	default:
		path = strings.TrimPrefix(raw, "/")
	}

	key, err := url.PathUnescape(path)
	if err != nil {
		return "", fmt.Errorf("invalid object key %q: %v", path, err)
	}
	if key == "" {
		return "", fmt.Errorf("empty object key in %q", fileURL)
	}
	return key, nil
}

var _ service.BlobStore = (*GCSBlobStore)(nil)
