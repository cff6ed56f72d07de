package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"acredge/internal/domain/service"
)

// AdminTokenVerifier verifies phone sign-in ID tokens with the Firebase Admin
// SDK of the user backend.
type AdminTokenVerifier struct {
	client *auth.Client
}

func NewAdminTokenVerifier(client *auth.Client) *AdminTokenVerifier {
	return &AdminTokenVerifier{
		client: client,
	}
}

func (v *AdminTokenVerifier) VerifyPhoneToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}

	phone, _ := token.Claims["phone_number"].(string)
	if phone == "" {
		return "", fmt.Errorf("token for %s carries no phone number", token.UID)
	}
	return phone, nil
}

var _ service.PhoneTokenVerifier = (*AdminTokenVerifier)(nil)
