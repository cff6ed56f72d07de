package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/pkg/errors"
)

// MemoryDocumentRepository is a process-local DocumentRepository used by
// tests and the local development backend.
type MemoryDocumentRepository struct {
	mu       sync.RWMutex
	resource string
	docs     map[string]entity.Fields
	order    []string
}

func NewMemoryDocumentRepository(resource string) *MemoryDocumentRepository {
	return &MemoryDocumentRepository{
		resource: resource,
		docs:     map[string]entity.Fields{},
	}
}

func (r *MemoryDocumentRepository) Allocate(ctx context.Context, placeholder entity.Fields) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.docs[id] = placeholder.Clone()
	r.order = append(r.order, id)
	return id, nil
}

func (r *MemoryDocumentRepository) Get(ctx context.Context, id string) (entity.Fields, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.docs[id]
	if !ok || f.Bool(entity.FieldPending) {
		return nil, errors.NotFound(r.resource, nil)
	}
	return f.Clone(), nil
}

func (r *MemoryDocumentRepository) List(ctx context.Context) ([]repository.Document, error) {
	return r.filter(func(entity.Fields) bool { return true }), nil
}

func (r *MemoryDocumentRepository) FindBy(ctx context.Context, field string, value interface{}) ([]repository.Document, error) {
	return r.filter(func(f entity.Fields) bool { return f[field] == value }), nil
}

func (r *MemoryDocumentRepository) filter(match func(entity.Fields) bool) []repository.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := []repository.Document{}
	for _, id := range r.order {
		f, ok := r.docs[id]
		if !ok || f.Bool(entity.FieldPending) || !match(f) {
			continue
		}
		docs = append(docs, repository.Document{ID: id, Fields: f.Clone()})
	}
	return docs
}

func (r *MemoryDocumentRepository) Commit(ctx context.Context, id string, fields entity.Fields) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := fields.Clone()
	delete(stored, entity.FieldPending)
	if _, ok := r.docs[id]; !ok {
		r.order = append(r.order, id)
	}
	r.docs[id] = stored
	return nil
}

func (r *MemoryDocumentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remove(id)
	return nil
}

func (r *MemoryDocumentRepository) remove(id string) {
	delete(r.docs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *MemoryDocumentRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.filter(func(entity.Fields) bool { return true }))), nil
}

func (r *MemoryDocumentRepository) CountByStatus(ctx context.Context) (entity.StatusCounts, error) {
	var counts entity.StatusCounts
	for _, d := range r.filter(func(entity.Fields) bool { return true }) {
		counts.Total++
		switch d.Fields.String("status") {
		case entity.StatusActive:
			counts.Active++
		case entity.StatusDisable:
			counts.Disabled++
		}
	}
	return counts, nil
}

// Raw returns the stored document including placeholders.
func (r *MemoryDocumentRepository) Raw(id string) (entity.Fields, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.docs[id]
	return f, ok
}

// Len counts every stored document including placeholders.
func (r *MemoryDocumentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

type MemoryPropertyRepository struct {
	*MemoryDocumentRepository
	archived map[string]*entity.DeletedProperty
}

func NewMemoryPropertyRepository() *MemoryPropertyRepository {
	return &MemoryPropertyRepository{
		MemoryDocumentRepository: NewMemoryDocumentRepository("Property"),
		archived:                 map[string]*entity.DeletedProperty{},
	}
}

func (r *MemoryPropertyRepository) Archive(ctx context.Context, id, deletedBy string) (*entity.DeletedProperty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.docs[id]
	if !ok || f.Bool(entity.FieldPending) {
		return nil, errors.NotFound("Property", nil)
	}

	archived := &entity.DeletedProperty{
		OriginalID: id,
		DeletedBy:  deletedBy,
		DeletedOn:  time.Now(),
		Data:       f.Clone(),
	}
	r.archived[id] = archived
	r.remove(id)
	return archived, nil
}

func (r *MemoryPropertyRepository) GetArchived(ctx context.Context, id string) (*entity.DeletedProperty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.archived[id]
	if !ok {
		return nil, errors.NotFound("Deleted property", nil)
	}
	return d, nil
}

type MemoryUserProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]entity.UserProfile
}

func NewMemoryUserProfileRepository() *MemoryUserProfileRepository {
	return &MemoryUserProfileRepository{profiles: map[string]entity.UserProfile{}}
}

func (r *MemoryUserProfileRepository) GetByPhone(ctx context.Context, phone string) (*entity.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[phone]
	if !ok {
		return nil, errors.NotFound("User profile", nil)
	}
	return &p, nil
}

func (r *MemoryUserProfileRepository) CreateIfAbsent(ctx context.Context, profile *entity.UserProfile) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.PhoneNumber]; ok {
		return false, nil
	}
	r.profiles[profile.PhoneNumber] = *profile
	return true, nil
}

func (r *MemoryUserProfileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.PhoneNumber] = *profile
	return nil
}

func (r *MemoryUserProfileRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.profiles)), nil
}

type MemoryTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]entity.Token
}

func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{tokens: map[string]entity.Token{}}
}

func (r *MemoryTokenRepository) Save(ctx context.Context, token *entity.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.Identity] = *token
	return nil
}

func (r *MemoryTokenRepository) Get(ctx context.Context, identity string) (*entity.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tokens[identity]
	if !ok {
		return nil, errors.NotFound("Token", nil)
	}
	return &t, nil
}

func (r *MemoryTokenRepository) Delete(ctx context.Context, identity string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, identity)
	return nil
}

type MemoryOTPRepository struct {
	mu   sync.RWMutex
	otps map[string]entity.OTP
}

func NewMemoryOTPRepository() *MemoryOTPRepository {
	return &MemoryOTPRepository{otps: map[string]entity.OTP{}}
}

func (r *MemoryOTPRepository) Save(ctx context.Context, otp *entity.OTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.otps[otp.Email] = *otp
	return nil
}

func (r *MemoryOTPRepository) Get(ctx context.Context, email string) (*entity.OTP, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.otps[email]
	if !ok {
		return nil, errors.NotFound("OTP", nil)
	}
	return &o, nil
}

func (r *MemoryOTPRepository) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.otps, email)
	return nil
}

// Emails lists the addresses holding an active code, sorted.
func (r *MemoryOTPRepository) Emails() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.otps))
	for e := range r.otps {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

var (
	_ repository.DocumentRepository    = (*MemoryDocumentRepository)(nil)
	_ repository.PropertyRepository    = (*MemoryPropertyRepository)(nil)
	_ repository.UserProfileRepository = (*MemoryUserProfileRepository)(nil)
	_ repository.TokenRepository       = (*MemoryTokenRepository)(nil)
	_ repository.OTPRepository         = (*MemoryOTPRepository)(nil)
)
