package service

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"acredge/pkg/errors"
	"acredge/pkg/logger"
)

const (
	uploadConcurrency  = 8
	cleanupConcurrency = 8
	sniffLen           = 3072
)

// UploadResult maps a field name to the URLs produced for it, in the order
// the files were received.
type UploadResult map[string][]string

// All flattens the result.
func (r UploadResult) All() []string {
	var out []string
	for _, urls := range r {
		out = append(out, urls...)
	}
	return out
}

type UploadOrchestrator struct {
	store BlobStore
	now   func() time.Time
}

func NewUploadOrchestrator(store BlobStore) *UploadOrchestrator {
	return &UploadOrchestrator{
		store: store,
		now:   time.Now,
	}
}

// ObjectKey builds {folder}/{targetID}/{millis}-{uuid}{ext}.
func ObjectKey(folder, targetID, filename string, at time.Time) string {
	name := fmt.Sprintf("%d-%s%s", at.UnixMilli(), uuid.NewString(), filepath.Ext(filename))
	if targetID == "" {
		return folder + "/" + name
	}
	return folder + "/" + targetID + "/" + name
}

// Upload stores every file concurrently. On failure the returned result still
// holds every URL that was produced, across all fields, so the caller can
// compensate. Uploads are not cut short when ctx is cancelled.
func (o *UploadOrchestrator) Upload(ctx context.Context, rules MediaRules, groups map[string][]IncomingFile, targetID string) (UploadResult, error) {
	ctx = context.WithoutCancel(ctx)

	slots := make(map[string][]string, len(groups))
	for field, files := range groups {
		if _, ok := rules[field]; !ok {
			return UploadResult{}, errors.Upload(ErrUnknownField, fmt.Sprintf("Unexpected file field: %s", field), nil)
		}
		slots[field] = make([]string, len(files))
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(uploadConcurrency)

	for field, files := range groups {
		rule := rules[field]
		for i, file := range files {
			field, i, file := field, i, file
			g.Go(func() error {
				url, err := o.put(ctx, rule, file, targetID)
				if err != nil {
					logger.Error("Upload of %q to %s failed: %v", file.Filename, rule.Folder, err)
					return err
				}
				mu.Lock()
				slots[field][i] = url
				mu.Unlock()
				return nil
			})
		}
	}

	err := g.Wait()

	result := make(UploadResult, len(slots))
	for field, urls := range slots {
		for _, url := range urls {
			if url != "" {
				result[field] = append(result[field], url)
			}
		}
	}

	if err != nil {
		return result, errors.Upload(ErrUploadFailed, "Failed to upload files", err)
	}
	return result, nil
}

func (o *UploadOrchestrator) put(ctx context.Context, rule MediaRule, file IncomingFile, targetID string) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", file.Filename, err)
	}
	defer rc.Close()

	br := bufio.NewReaderSize(rc, sniffLen)
	head, _ := br.Peek(sniffLen)
	contentType := mimetype.Detect(head).String()

	key := ObjectKey(rule.Folder, targetID, file.Filename, o.now())
	return o.store.Put(ctx, key, contentType, br)
}

// Cleanup deletes urls best-effort. Failures are logged and never returned,
// since cleanup runs on paths that are already reporting another error.
func (o *UploadOrchestrator) Cleanup(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(cleanupConcurrency)
	for _, url := range urls {
		url := url
		g.Go(func() error {
			if err := o.store.Delete(ctx, url); err != nil {
				logger.Warn("Cleanup of %s failed: %v", url, err)
			}
			return nil
		})
	}
	g.Wait()
	logger.Debug("Cleaned up %d uploaded files", len(urls))
}
