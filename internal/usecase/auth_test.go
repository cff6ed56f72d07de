package usecase

import (
	"context"
	stderrors "errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "acredge/internal/adapter/repository"
	"acredge/internal/domain/entity"
	"acredge/pkg/errors"
)

func TestAuthGateSessionLifecycle(t *testing.T) {
	gate, tokens := newGate(entity.RoleAdmin)
	ctx := context.Background()

	session, err := gate.Open(ctx, "ops@acredge.in", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "ops@acredge.in", session.Identity.Subject)

	identity, err := gate.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, identity.Role)

	stored, err := tokens.Get(ctx, "ops@acredge.in")
	require.NoError(t, err)
	assert.Equal(t, session.Token, stored.Token)

	require.NoError(t, gate.Close(ctx, "ops@acredge.in"))

	_, err = gate.Authenticate(ctx, session.Token)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"), "logout takes effect immediately")
}

func TestAuthGateOnlyCurrentTokenIsValid(t *testing.T) {
	gate, _ := newGate(entity.RoleUser)
	ctx := context.Background()

	first, err := gate.Open(ctx, owner, time.Hour)
	require.NoError(t, err)
	// a longer session changes exp, so the rotated token differs without a future iat
	second, err := gate.Open(ctx, owner, 2*time.Hour)
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	_, err = gate.Authenticate(ctx, first.Token)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = gate.Authenticate(ctx, second.Token)
	assert.NoError(t, err)
}

func TestAuthGateRejects(t *testing.T) {
	admin, _ := newGate(entity.RoleAdmin)
	user, _ := newGate(entity.RoleUser)
	ctx := context.Background()

	_, err := admin.Authenticate(ctx, "")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = admin.Authenticate(ctx, "not-a-jwt")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	userSession, err := user.Open(ctx, owner, time.Hour)
	require.NoError(t, err)
	_, err = admin.Authenticate(ctx, userSession.Token)
	assert.True(t, errors.Is(err, "FORBIDDEN"), "user tokens do not open the admin app")

	expired := NewTokenIssuer("test-secret")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _, err := expired.Issue(entity.Identity{Subject: "ops@acredge.in", Role: entity.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	_, err = admin.Authenticate(ctx, stale)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestAuthGateRoleIsStateless(t *testing.T) {
	admin, _ := newGate(entity.RoleAdmin)
	user, _ := newGate(entity.RoleUser)

	session, err := user.Open(context.Background(), owner, time.Hour)
	require.NoError(t, err)

	identity, err := admin.Role(session.Token, entity.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, owner, identity.Subject)

	_, err = admin.Role(session.Token, entity.RoleAdmin)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestTokenIssuerRejectsForeignSecret(t *testing.T) {
	token, _, err := NewTokenIssuer("one").Issue(entity.Identity{Subject: "ops@acredge.in", Role: entity.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	_, err = NewTokenIssuer("two").Parse(token)
	assert.Error(t, err)
}

func newAdminAuth(t *testing.T) (*AdminAuthUseCase, *memrepo.MemoryOTPRepository, *fakeMailer) {
	t.Helper()
	gate, _ := newGate(entity.RoleAdmin)
	otps := memrepo.NewMemoryOTPRepository()
	mailer := &fakeMailer{}
	return NewAdminAuthUseCase(otps, mailer, gate, "acredge.in"), otps, mailer
}

var otpPattern = regexp.MustCompile(`\b([1-9]\d{5})\b`)

func TestAdminOTPFlow(t *testing.T) {
	uc, otps, mailer := newAdminAuth(t)
	ctx := context.Background()

	require.NoError(t, uc.RequestOTP(ctx, "  Ops@AcrEdge.in "))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ops@acredge.in", mailer.sent[0].to)
	assert.Equal(t, "Your OTP for Login", mailer.sent[0].subject)

	match := otpPattern.FindStringSubmatch(mailer.sent[0].text)
	require.Len(t, match, 2)
	code := match[1]

	_, err := uc.VerifyOTP(ctx, "ops@acredge.in", "000000", false)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	session, err := uc.VerifyOTP(ctx, "ops@acredge.in", code, true)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(rememberMeTTL), session.ExpiresAt, time.Minute)
	assert.Empty(t, otps.Emails(), "OTP is single use")

	_, err = uc.VerifyOTP(ctx, "ops@acredge.in", code, false)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	identity, err := uc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "ops@acredge.in", identity.Subject)

	require.NoError(t, uc.Logout(ctx, "ops@acredge.in"))
	_, err = uc.Authenticate(ctx, session.Token)
	assert.Error(t, err)
}

func TestAdminOTPRejectsForeignDomain(t *testing.T) {
	uc, otps, mailer := newAdminAuth(t)

	err := uc.RequestOTP(context.Background(), "someone@gmail.com")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Empty(t, mailer.sent)
	assert.Empty(t, otps.Emails())
}

func TestAdminOTPExpires(t *testing.T) {
	uc, _, mailer := newAdminAuth(t)
	ctx := context.Background()

	require.NoError(t, uc.RequestOTP(ctx, "ops@acredge.in"))
	code := otpPattern.FindStringSubmatch(mailer.sent[0].text)[1]

	uc.now = func() time.Time { return time.Now().Add(otpTTL + time.Second) }
	_, err := uc.VerifyOTP(ctx, "ops@acredge.in", code, false)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAdminOTPMailFailure(t *testing.T) {
	uc, _, mailer := newAdminAuth(t)
	mailer.err = stderrors.New("smtp down")

	err := uc.RequestOTP(context.Background(), "ops@acredge.in")
	assert.True(t, errors.Is(err, "DEPENDENCY_ERROR"))
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateOTP()
		require.NoError(t, err)
		assert.Regexp(t, `^[1-9]\d{5}$`, code)
	}
}

func TestUserPhoneLogin(t *testing.T) {
	gate, _ := newGate(entity.RoleUser)
	profiles := memrepo.NewMemoryUserProfileRepository()
	uc := NewUserAuthUseCase(fakeVerifier{phone: owner}, profiles, gate)
	ctx := context.Background()

	session, err := uc.Login(ctx, PhoneLoginInput{IDToken: "firebase-id-token", SameWhatsapp: true})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(sessionTTL), session.ExpiresAt, time.Minute)

	profile, err := profiles.GetByPhone(ctx, owner)
	require.NoError(t, err)
	assert.True(t, profile.SameNumberOnWhatsapp)

	profile.FirstName = "Asha"
	require.NoError(t, profiles.Update(ctx, profile))

	_, err = uc.Login(ctx, PhoneLoginInput{IDToken: "firebase-id-token"})
	require.NoError(t, err)
	profile, err = profiles.GetByPhone(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.FirstName, "existing profile is left alone")

	count, err := profiles.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserPhoneLoginFailures(t *testing.T) {
	gate, _ := newGate(entity.RoleUser)
	profiles := memrepo.NewMemoryUserProfileRepository()

	_, err := NewUserAuthUseCase(fakeVerifier{err: stderrors.New("bad token")}, profiles, gate).
		Login(context.Background(), PhoneLoginInput{IDToken: "x"})
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = NewUserAuthUseCase(fakeVerifier{}, profiles, gate).
		Login(context.Background(), PhoneLoginInput{IDToken: "x"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
