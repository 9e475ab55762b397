// File: schemas/auth.go
package schemas

import (
	"strings"

	"github.com/funabab/ilivercare-app/apperr"
)

// RegisterAccount is the registration callable's payload.
type RegisterAccount struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"required"`
}

var registerMessages = messages{
	"email":     {"required": "Email is required", "email": "Invalid email address"},
	"firstName": {"required": "First name is required"},
	"lastName":  {"required": "Last name is required"},
	"password":  {"required": "Password is required"},
	"role":      {"required": "Role is required"},
}

func (s *RegisterAccount) Validate() error {
	s.Email = strings.TrimSpace(s.Email)
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Role = strings.TrimSpace(s.Role)
	// Password is trimmed but never otherwise normalized.
	s.Password = strings.TrimSpace(s.Password)

	if fields := check(s, registerMessages); len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

// DisplayName is the account display name derived from the payload.
func (s *RegisterAccount) DisplayName() string {
	return s.FirstName + " " + s.LastName
}

// LoginAccount is the credential payload for token issuance.
type LoginAccount struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = messages{
	"email":    {"required": "Email is required", "email": "Invalid email address"},
	"password": {"required": "Password is required"},
}

func (s *LoginAccount) Validate() error {
	s.Email = strings.TrimSpace(s.Email)
	s.Password = strings.TrimSpace(s.Password)

	if fields := check(s, loginMessages); len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}
