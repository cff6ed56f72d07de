package usecase

import (
	"context"
	"time"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/internal/domain/service"
	"acredge/pkg/errors"
	"acredge/pkg/logger"
)

// UserAuthUseCase exchanges a verified phone sign-in for a session and makes
// sure the phone has a profile.
type UserAuthUseCase struct {
	verifier service.PhoneTokenVerifier
	profiles repository.UserProfileRepository
	gate     *AuthGate
	now      func() time.Time
}

func NewUserAuthUseCase(verifier service.PhoneTokenVerifier, profiles repository.UserProfileRepository, gate *AuthGate) *UserAuthUseCase {
	return &UserAuthUseCase{
		verifier: verifier,
		profiles: profiles,
		gate:     gate,
		now:      time.Now,
	}
}

type PhoneLoginInput struct {
	IDToken      string
	RememberMe   bool
	SameWhatsapp bool
}

func (uc *UserAuthUseCase) Login(ctx context.Context, input PhoneLoginInput) (*Session, error) {
	phone, err := uc.verifier.VerifyPhoneToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid phone verification token", err)
	}
	if phone == "" {
		return nil, errors.BadRequest("Phone number not found in token", nil)
	}

	session, err := uc.gate.Open(ctx, phone, sessionLifetime(input.RememberMe))
	if err != nil {
		return nil, err
	}

	created, err := uc.profiles.CreateIfAbsent(ctx, &entity.UserProfile{
		PhoneNumber:          phone,
		SameNumberOnWhatsapp: input.SameWhatsapp,
		CreatedAt:            uc.now(),
	})
	if err != nil {
		return nil, errors.Dependency("Failed to create user profile", err)
	}
	if created {
		logger.Info("Created profile for %s", phone)
	}

	return session, nil
}

func (uc *UserAuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	return uc.gate.Authenticate(ctx, token)
}

func (uc *UserAuthUseCase) Logout(ctx context.Context, phone string) error {
	return uc.gate.Close(ctx, phone)
}
