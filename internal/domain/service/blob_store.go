package service

import (
	"context"
	"io"
)

// BlobStore keeps uploaded media and hands out public URLs for it.
type BlobStore interface {
	// Put stores r under key and returns the object's public URL.
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	// Delete removes the object behind url. A missing object is not an error.
	Delete(ctx context.Context, url string) error
	// List returns the URLs of every object whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
