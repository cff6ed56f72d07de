package repository

import (
	"context"

	"acredge/internal/domain/entity"
)

type UserProfileRepository interface {
	GetByPhone(ctx context.Context, phone string) (*entity.UserProfile, error)
	// CreateIfAbsent stores profile unless one already exists for the phone.
	CreateIfAbsent(ctx context.Context, profile *entity.UserProfile) (bool, error)
	Update(ctx context.Context, profile *entity.UserProfile) error
	Count(ctx context.Context) (int64, error)
}
