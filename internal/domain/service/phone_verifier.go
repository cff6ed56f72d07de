package service

import "context"

// PhoneTokenVerifier validates an externally issued phone sign-in token and
// returns the verified phone number.
type PhoneTokenVerifier interface {
	VerifyPhoneToken(ctx context.Context, idToken string) (string, error)
}
