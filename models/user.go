package models

import (
	"strings"
	"time"
)

// User is the stored profile of a chat user. A profile is created the first
// time the user sends /start and is never deleted afterwards.
type User struct {
	// UserID is the chat platform identifier of the user. It is the primary
	// key of the profile and is never generated locally.
	UserID int64 `json:"user_id"`

	// Username, FirstName and LastName are display fields copied from the
	// chat sender on every /start. All of them may be empty.
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	// CloudflareToken and CloudflareAccountID form the stored credential.
	// Both stay empty until the credential flow completes successfully.
	CloudflareToken     string `json:"-"`
	CloudflareAccountID string `json:"cloudflare_account_id,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasCredential reports whether both halves of the credential are stored.
func (u User) HasCredential() bool {
	return u.CloudflareToken != "" && u.CloudflareAccountID != ""
}

// Credential returns the stored token and account id as a [Credential].
func (u User) Credential() Credential {
	return Credential{
		Token:     u.CloudflareToken,
		AccountID: u.CloudflareAccountID,
	}
}

// DisplayName returns the best human readable name available for the user.
func (u User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	switch {
	case full != "":
		return full
	case u.Username != "":
		return "@" + u.Username
	default:
		return "there"
	}
}
