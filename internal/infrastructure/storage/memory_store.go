package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"acredge/internal/domain/service"
)

type memoryObject struct {
	contentType string
	data        []byte
}

// MemoryBlobStore keeps objects in process memory. It is used by tests and
// the local development backend.
type MemoryBlobStore struct {
	mu      sync.RWMutex
	bucket  string
	objects map[string]memoryObject
	// FailPut makes Put fail for keys it returns true for.
	FailPut func(key string) bool
}

func NewMemoryBlobStore(bucket string) *MemoryBlobStore {
	return &MemoryBlobStore{
		bucket:  bucket,
		objects: map[string]memoryObject{},
	}
}

func (s *MemoryBlobStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if s.FailPut != nil && s.FailPut(key) {
		return "", fmt.Errorf("put %s: injected failure", key)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.objects[key] = memoryObject{contentType: contentType, data: buf.Bytes()}
	s.mu.Unlock()

	return publicHost + s.bucket + "/" + key, nil
}

func (s *MemoryBlobStore) Delete(ctx context.Context, fileURL string) error {
	key, err := ObjectKey(fileURL, s.bucket)
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	urls := []string{}
	for key := range s.objects {
		if strings.HasPrefix(key, prefix) {
			urls = append(urls, publicHost+s.bucket+"/"+key)
		}
	}
	sort.Strings(urls)
	return urls, nil
}

// ContentType returns the stored content type of key.
func (s *MemoryBlobStore) ContentType(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	return obj.contentType, ok
}

func (s *MemoryBlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

var _ service.BlobStore = (*MemoryBlobStore)(nil)
