package repository

import (
	"context"

	"acredge/internal/domain/entity"
)

type TokenRepository interface {
	Save(ctx context.Context, token *entity.Token) error
	Get(ctx context.Context, identity string) (*entity.Token, error)
	Delete(ctx context.Context, identity string) error
}

type OTPRepository interface {
	Save(ctx context.Context, otp *entity.OTP) error
	Get(ctx context.Context, email string) (*entity.OTP, error)
	Delete(ctx context.Context, email string) error
}
