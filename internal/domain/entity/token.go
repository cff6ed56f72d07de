package entity

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Token is the current session token of an identity (admin email or user
// phone). Deleting it revokes the session before the JWT itself expires.
type Token struct {
	Identity  string    `json:"-" firestore:"-"`
	Token     string    `json:"token" firestore:"token"`
	ExpiresAt time.Time `json:"expiresAt" firestore:"expiresAt"`
}

func (t *Token) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}
