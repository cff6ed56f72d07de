package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"acredge/internal/domain/entity"
	"acredge/internal/domain/repository"
	"acredge/internal/domain/service"
	"acredge/pkg/errors"
	"acredge/pkg/logger"
)

const (
	otpTTL          = 5 * time.Minute
	sessionTTL      = 24 * time.Hour
	rememberMeTTL   = 7 * 24 * time.Hour
	otpEmailSubject = "Your OTP for Login"
)

// AdminAuthUseCase signs admins in with a one-time code mailed to an address
// of the company domain.
type AdminAuthUseCase struct {
	otps   repository.OTPRepository
	mailer service.Mailer
	gate   *AuthGate
	domain string
	now    func() time.Time
}

func NewAdminAuthUseCase(otps repository.OTPRepository, mailer service.Mailer, gate *AuthGate, domain string) *AdminAuthUseCase {
	return &AdminAuthUseCase{
		otps:   otps,
		mailer: mailer,
		gate:   gate,
		domain: strings.ToLower(domain),
		now:    time.Now,
	}
}

func (uc *AdminAuthUseCase) RequestOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.HasSuffix(email, "@"+uc.domain) {
		return errors.Forbidden("Unauthorized email domain", nil)
	}

	code, err := generateOTP()
	if err != nil {
		return errors.Internal("Failed to generate OTP", err)
	}

	now := uc.now()
	otp := &entity.OTP{
		Email:          email,
		Code:           code,
		ExpirationTime: now.Add(otpTTL),
		CreatedAt:      now,
	}
	if err := uc.otps.Save(ctx, otp); err != nil {
		return errors.Dependency("Failed to store OTP", err)
	}

	text := fmt.Sprintf("Your OTP for login is: %s. It will expire in 5 minutes.", code)
	html := fmt.Sprintf("<p>Your OTP for login is: <strong>%s</strong></p><p>It will expire in 5 minutes.</p>", code)
	if err := uc.mailer.Send(ctx, email, otpEmailSubject, text, html); err != nil {
		return errors.Dependency("Failed to send OTP", err)
	}

	logger.Info("OTP issued for %s", email)
	return nil
}

func (uc *AdminAuthUseCase) VerifyOTP(ctx context.Context, email, code string, rememberMe bool) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	otp, err := uc.otps.Get(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.BadRequest("Invalid or expired OTP", err)
		}
		return nil, errors.Dependency("Failed to read OTP", err)
	}
	if !otp.Matches(strings.TrimSpace(code), uc.now()) {
		return nil, errors.BadRequest("Invalid or expired OTP", nil)
	}

	if err := uc.otps.Delete(ctx, email); err != nil {
		logger.Warn("Failed to delete used OTP for %s: %v", email, err)
	}

	return uc.gate.Open(ctx, email, sessionLifetime(rememberMe))
}

func (uc *AdminAuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	return uc.gate.Authenticate(ctx, token)
}

func (uc *AdminAuthUseCase) Logout(ctx context.Context, email string) error {
	return uc.gate.Close(ctx, email)
}

func sessionLifetime(rememberMe bool) time.Duration {
	if rememberMe {
		return rememberMeTTL
	}
	return sessionTTL
}

// generateOTP returns a six digit code without a leading zero.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
