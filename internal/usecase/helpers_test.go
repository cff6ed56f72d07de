package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	memrepo "acredge/internal/adapter/repository"
	"acredge/internal/domain/entity"
	"acredge/internal/domain/service"
	"acredge/internal/infrastructure/cache"
	"acredge/internal/infrastructure/storage"
)

const testBucket = "acredge-test"

var (
	pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13}
	fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
)

func png(field, name string) service.IncomingFile {
	return service.NewMemoryFile(field, name, pngBytes)
}

func longText(s string) string {
	return strings.Repeat(s+" ", 60/len(s)+1)
}

type sagaFixture struct {
	repo  *memrepo.MemoryDocumentRepository
	store *storage.MemoryBlobStore
	uc    *EntityUseCase
}

func newSagaFixture(t *testing.T, kind func(repo *memrepo.MemoryDocumentRepository) EntityKind) *sagaFixture {
	t.Helper()
	repo := memrepo.NewMemoryDocumentRepository("Record")
	store := storage.NewMemoryBlobStore(testBucket)
	uc := NewEntityUseCase(kind(repo), repo, service.NewUploadOrchestrator(store), false)
	uc.saga.now = func() time.Time { return fixedNow }
	return &sagaFixture{repo: repo, store: store, uc: uc}
}

// blobExists reports whether url is still stored.
func blobExists(t *testing.T, store *storage.MemoryBlobStore, url string) bool {
	t.Helper()
	key, err := storage.ObjectKey(url, testBucket)
	require.NoError(t, err)
	_, ok := store.ContentType(key)
	return ok
}

type recordingIndex struct {
	mu        sync.Mutex
	indexed   map[string]map[string]interface{}
	deleted   []string
	replaced  []map[string]interface{}
	lastQuery service.SearchQuery
	searchErr error
	result    *service.SearchResult
}

func newRecordingIndex() *recordingIndex {
	return &recordingIndex{indexed: map[string]map[string]interface{}{}}
}

func (r *recordingIndex) Index(ctx context.Context, id string, record map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexed[id] = record
	return nil
}

func (r *recordingIndex) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	return r.Index(ctx, id, partial)
}

func (r *recordingIndex) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.indexed, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *recordingIndex) Search(ctx context.Context, query service.SearchQuery) (*service.SearchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastQuery = query
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	if r.result != nil {
		return r.result, nil
	}
	return service.EmptySearchResult(), nil
}

func (r *recordingIndex) Replace(ctx context.Context, records []map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaced = records
	return nil
}

func (r *recordingIndex) Enabled() bool { return true }

type sentMail struct {
	to, subject, text string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, text: textBody})
	return nil
}

type fakeVerifier struct {
	phone string
	err   error
}

func (v fakeVerifier) VerifyPhoneToken(ctx context.Context, idToken string) (string, error) {
	return v.phone, v.err
}

func newGate(role string) (*AuthGate, *memrepo.MemoryTokenRepository) {
	tokens := memrepo.NewMemoryTokenRepository()
	return NewAuthGate(role, NewTokenIssuer("test-secret"), tokens, cache.NewTokenCache(time.Minute)), tokens
}

func validDeveloperFields() entity.Fields {
	return entity.Fields{
		"name":                   "Skyline Builders",
		"address":                "12 MG Road, Pune",
		"incorporationDate":      "2015-09-01",
		"totalProjectsDelivered": "8",
		"totalSqFtDelivered":     "320000",
		"description":            longText("Premium residential developer"),
		"websiteLink":            "https://skyline.example.com",
		"status":                 entity.StatusActive,
	}
}
