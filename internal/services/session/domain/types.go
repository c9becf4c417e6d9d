// Package domain holds session types and ports
package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Credentials is the login form
type Credentials struct {
	Email    string `json:"email"    validate:"required,email"  example:"john@xyz.com"`
	Password string `json:"password" validate:"required,max=256" example:"hunter22"`
}

// Registration is the sign-up form
type Registration struct {
	Email      string `json:"email"                 validate:"required,email"       example:"john@xyz.com"`
	Password   string `json:"password"              validate:"required,min=6,max=256" example:"hunter22"`
	FullName   string `json:"full_name,omitempty"   validate:"omitempty,max=120"    example:"John Doe"`
	RollNumber string `json:"roll_number,omitempty" validate:"omitempty,alphanum,max=32" example:"ABCD123"`
}

// Record is what a Store persists
type Record struct {
	Token   string    `json:"token"`
	Email   string    `json:"email,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// Status describes the current session. Claims are read without
// verification and are informational only.
type Status struct {
	SignedIn  bool       `json:"signed_in"`
	Email     string     `json:"email,omitempty"`
	Subject   string     `json:"subject,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   bool       `json:"expired"`
	Opaque    bool       `json:"opaque"`
	TokenHint string     `json:"token_hint,omitempty"`
	SavedAt   *time.Time `json:"saved_at,omitempty"`
}

// Store keeps the session record between calls
type Store interface {
	Load(ctx context.Context) (Record, bool, error)
	Save(ctx context.Context, r Record) error
	Clear(ctx context.Context) error
}

// Authenticator is the remote identity service
type Authenticator interface {
	Login(ctx context.Context, c Credentials) (string, error)
	Register(ctx context.Context, r Registration) (json.RawMessage, error)
}
