package models

import "strings"

// Credential is the pair authorizing calls to the Cloudflare API on behalf of
// one user.
type Credential struct {
	Token     string
	AccountID string
}

// Normalize trims surrounding whitespace that users tend to paste along with
// the values.
func (c Credential) Normalize() Credential {
	return Credential{
		Token:     strings.TrimSpace(c.Token),
		AccountID: strings.TrimSpace(c.AccountID),
	}
}

// IsComplete reports whether both token and account id are present.
func (c Credential) IsComplete() bool {
	return c.Token != "" && c.AccountID != ""
}
