package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/pkg/errors"
)

const UserProfileCollection = "UserProfile"

type firestoreUserProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreUserProfileRepository(client *firestore.Client) repository.UserProfileRepository {
	return &firestoreUserProfileRepository{
		client: client,
	}
}

func (r *firestoreUserProfileRepository) GetByPhone(ctx context.Context, phone string) (*entity.UserProfile, error) {
	doc, err := r.client.Collection(UserProfileCollection).Doc(phone).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User profile", err)
		}
		return nil, errors.Internal("Failed to get user profile", err)
	}

	var profile entity.UserProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse user profile data", err)
	}
	if profile.PhoneNumber == "" {
		profile.PhoneNumber = phone
	}
	return &profile, nil
}

// CreateIfAbsent reports false when a profile already exists for the phone.
func (r *firestoreUserProfileRepository) CreateIfAbsent(ctx context.Context, profile *entity.UserProfile) (bool, error) {
	_, err := r.client.Collection(UserProfileCollection).Doc(profile.PhoneNumber).Create(ctx, profile)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return false, nil
		}
		return false, errors.Internal("Failed to create user profile", err)
	}
	return true, nil
}

func (r *firestoreUserProfileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	_, err := r.client.Collection(UserProfileCollection).Doc(profile.PhoneNumber).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to update user profile", err)
	}
	return nil
}

func (r *firestoreUserProfileRepository) Count(ctx context.Context) (int64, error) {
	n, err := countQuery(ctx, r.client.Collection(UserProfileCollection).Query)
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}
	return n, nil
}
