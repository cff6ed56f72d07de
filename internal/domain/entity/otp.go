package entity

import "time"

// OTP is the single active one-time code of an admin email. Requesting a new
// code overwrites the previous one.
type OTP struct {
	Email          string    `json:"-" firestore:"-"`
	Code           string    `json:"otp" firestore:"otp"`
	ExpirationTime time.Time `json:"expirationTime" firestore:"expirationTime"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
}

func (o *OTP) Matches(code string, now time.Time) bool {
	return o.Code == code && now.Before(o.ExpirationTime)
}
