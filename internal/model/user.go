package model

import (
	"time"
)

const (
	RolePatient  = "patient"
	RoleProvider = "provider"
)

type User struct {
	ID                 string     `db:"id" json:"id"`
	Email              string     `db:"email" json:"email"`
	PasswordHash       string     `db:"password_hash" json:"-"`
	Role               string     `db:"role" json:"role"`
	FirstName          string     `db:"first_name" json:"firstName"`
	LastName           string     `db:"last_name" json:"lastName"`
	PhoneNumber        string     `db:"phone_number" json:"phoneNumber"`
	DateOfBirth        *time.Time `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	Allergies          string     `db:"allergies" json:"allergies"`
	CurrentMedications string     `db:"current_medications" json:"currentMedications"`
	DataUsageConsent   bool       `db:"data_usage_consent" json:"dataUsageConsent"`
	ConsentDate        *time.Time `db:"consent_date" json:"consentDate,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updatedAt"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}
