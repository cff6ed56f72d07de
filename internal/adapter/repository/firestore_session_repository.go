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

const (
	TokensCollection = "tokens"
	OTPsCollection   = "otps"
)

type firestoreTokenRepository struct {
	client *firestore.Client
}

// NewFirestoreTokenRepository keeps one token document per identity.
func NewFirestoreTokenRepository(client *firestore.Client) repository.TokenRepository {
	return &firestoreTokenRepository{client: client}
}

func (r *firestoreTokenRepository) Save(ctx context.Context, token *entity.Token) error {
	if _, err := r.client.Collection(TokensCollection).Doc(token.Identity).Set(ctx, token); err != nil {
		return errors.Internal("Failed to store token", err)
	}
	return nil
}

func (r *firestoreTokenRepository) Get(ctx context.Context, identity string) (*entity.Token, error) {
	doc, err := r.client.Collection(TokensCollection).Doc(identity).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Token", err)
		}
		return nil, errors.Internal("Failed to get token", err)
	}

	var token entity.Token
	if err := doc.DataTo(&token); err != nil {
		return nil, errors.Internal("Failed to parse token data", err)
	}
	token.Identity = identity
	return &token, nil
}

func (r *firestoreTokenRepository) Delete(ctx context.Context, identity string) error {
	if _, err := r.client.Collection(TokensCollection).Doc(identity).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete token", err)
	}
	return nil
}

type firestoreOTPRepository struct {
	client *firestore.Client
}

func NewFirestoreOTPRepository(client *firestore.Client) repository.OTPRepository {
	return &firestoreOTPRepository{client: client}
}

func (r *firestoreOTPRepository) Save(ctx context.Context, otp *entity.OTP) error {
	if _, err := r.client.Collection(OTPsCollection).Doc(otp.Email).Set(ctx, otp); err != nil {
		return errors.Internal("Failed to store OTP", err)
	}
	return nil
}

func (r *firestoreOTPRepository) Get(ctx context.Context, email string) (*entity.OTP, error) {
	doc, err := r.client.Collection(OTPsCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("OTP", err)
		}
		return nil, errors.Internal("Failed to get OTP", err)
	}

	var otp entity.OTP
	if err := doc.DataTo(&otp); err != nil {
		return nil, errors.Internal("Failed to parse OTP data", err)
	}
	otp.Email = email
	return &otp, nil
}

func (r *firestoreOTPRepository) Delete(ctx context.Context, email string) error {
	if _, err := r.client.Collection(OTPsCollection).Doc(email).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete OTP", err)
	}
	return nil
}
