package entity

import "time"

// UserProfile is keyed by the phone number that signed in.
type UserProfile struct {
	PhoneNumber          string     `json:"phoneNumber" firestore:"phoneNumber"`
	SameNumberOnWhatsapp bool       `json:"sameNumberOnWhatsapp" firestore:"sameNumberOnWhatsapp"`
	ProfileImage         string     `json:"profileImage,omitempty" firestore:"profileImage,omitempty"`
	Email                string     `json:"email,omitempty" firestore:"email,omitempty"`
	FirstName            string     `json:"firstName,omitempty" firestore:"firstName,omitempty"`
	LastName             string     `json:"lastName,omitempty" firestore:"lastName,omitempty"`
	Address              string     `json:"address,omitempty" firestore:"address,omitempty"`
	AboutMe              string     `json:"aboutMe,omitempty" firestore:"aboutMe,omitempty"`
	CreatedAt            time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// ProfileUpdate lists the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Email                *string
	FirstName            *string
	LastName             *string
	Address              *string
	AboutMe              *string
	SameNumberOnWhatsapp *bool
}

func (u ProfileUpdate) Empty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil &&
		u.Address == nil && u.AboutMe == nil && u.SameNumberOnWhatsapp == nil
}

func (u ProfileUpdate) Apply(p *UserProfile) {
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.AboutMe != nil {
		p.AboutMe = *u.AboutMe
	}
	if u.SameNumberOnWhatsapp != nil {
		p.SameNumberOnWhatsapp = *u.SameNumberOnWhatsapp
	}
}
