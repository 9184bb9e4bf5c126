package model

import (
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Role
	}{
		{"patient", "patient", RolePatient},
		{"investigator", "investigator", RoleInvestigator},
		{"admin falls back to patient", "admin", RolePatient},
		{"empty falls back to patient", "", RolePatient},
		{"garbage falls back to patient", "superuser", RolePatient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRole(tt.input); got != tt.want {
				t.Errorf("ParseRole(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "a@b.com", false},
		{"valid subdomain", "x@mail.example.org", false},
		{"missing at", "nobody", true},
		{"missing local part", "@b.com", true},
		{"missing domain", "a@", true},
		{"domain without dot", "a@localhost", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword(strings.Repeat("p", MinPasswordLength)); err != nil {
		t.Errorf("minimum-length password rejected: %v", err)
	}
	if err := ValidatePassword("short"); err != ErrPasswordTooShort {
		t.Errorf("short password: got %v, want ErrPasswordTooShort", err)
	}
	if err := ValidatePassword(strings.Repeat("p", MaxPasswordLength+1)); err != ErrPasswordTooLong {
		t.Errorf("long password: got %v, want ErrPasswordTooLong", err)
	}
}

func TestValidateFullName(t *testing.T) {
	if err := ValidateFullName("Jo Doe"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	for _, bad := range []string{"", " ", "\t", "x"} {
		if err := ValidateFullName(bad); err != ErrFullNameEmpty {
			t.Errorf("ValidateFullName(%q) = %v, want ErrFullNameEmpty", bad, err)
		}
	}
}

func TestSessionRole(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    Role
	}{
		{"logged out", Session{}, Role("")},
		{"token without user is not logged in", Session{Token: "abc"}, Role("")},
		{"patient", Session{Token: "abc", User: &User{Role: RolePatient}}, RolePatient},
		{"investigator", Session{Token: "abc", User: &User{Role: RoleInvestigator}}, RoleInvestigator},
		{"missing role defaults to patient", Session{Token: "abc", User: &User{}}, RolePatient},
		{"unknown role defaults to patient", Session{Token: "abc", User: &User{Role: "admin"}}, RolePatient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Role(); got != tt.want {
				t.Errorf("Role() = %q, want %q", got, tt.want)
			}
		})
	}
}
