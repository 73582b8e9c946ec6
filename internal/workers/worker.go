// Package workers implements registration and credential verification for
// the health workers who screen children at reporting centers. Passwords are
// stored as bcrypt hashes and never leave the package.
package workers

import (
	"time"

	"github.com/google/uuid"
)

// Worker is a registered health worker tied to a reporting center. The
// password hash is persisted but never serialized.
type Worker struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	AadhaarNumber string    `json:"aadhaar_number"`
	CenterCode    string    `json:"center_code"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// SignupCommand carries the data needed to register a new health worker.
type SignupCommand struct {
	Name          string `json:"name"`
	AadhaarNumber string `json:"aadhaar_number"`
	CenterCode    string `json:"center_code"`
	Password      string `json:"password"`
}

// LoginCommand carries credentials for verification. Workers authenticate
// with their Aadhaar number.
type LoginCommand struct {
	AadhaarNumber string `json:"aadhaar_number"`
	Password      string `json:"password"`
}

// LoginResponse is returned on successful credential verification.
type LoginResponse struct {
	Message    string `json:"message"`
	Name       string `json:"name"`
	CenterCode string `json:"center_code"`
}
