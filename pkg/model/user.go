// Package model defines the domain types exchanged with the NutriView backend.
package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
	MinFullNameLength = 2
)

var ErrEmailInvalid = errors.New("email address is not valid")
var ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
var ErrPasswordTooLong = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
var ErrFullNameEmpty = errors.New("full name must not be empty")

// Role represents a user's account type as reported by the backend.
type Role string

const (
	RolePatient      Role = "patient"
	RoleInvestigator Role = "investigator"
)

func (r Role) String() string { return string(r) }

// Valid returns true if the role is one the client routes on.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleInvestigator
}

// ParseRole converts a wire string to a Role. Anything the client does not
// recognise routes as patient, so an unexpected role never breaks navigation.
func ParseRole(s string) Role {
	if Role(s) == RoleInvestigator {
		return RoleInvestigator
	}
	return RolePatient
}

// User is the account record returned by /auth/me and /auth/register.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// ValidateEmail performs the light syntactic check the registration form
// applies before submitting; the backend remains the authority.
func ValidateEmail(email string) error {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return ErrEmailInvalid
	}
	if !strings.Contains(email[at+1:], ".") {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePassword checks the backend's length bounds locally.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// ValidateFullName rejects blank or single-character names.
func ValidateFullName(name string) error {
	if len(strings.TrimSpace(name)) < MinFullNameLength {
		return ErrFullNameEmpty
	}
	return nil
}
