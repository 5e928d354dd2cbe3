package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholders shown when a profile field is missing.
const (
	DefaultProfileName    = "User"
	DefaultProfileEmail   = "N/A"
	DefaultProfileCreated = "Recently"
	DefaultAvatarInitial  = "U"
)

// Profile is the account information returned by the server. Fields may be
// empty; use the display helpers for rendering.
type Profile struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// DisplayName returns Name or "User".
func (p Profile) DisplayName() string {
	if strings.TrimSpace(p.Name) == "" {
		return DefaultProfileName
	}
	return p.Name
}

// DisplayEmail returns Email or "N/A".
func (p Profile) DisplayEmail() string {
	if strings.TrimSpace(p.Email) == "" {
		return DefaultProfileEmail
	}
	return p.Email
}

// DisplayCreatedAt returns CreatedAt or "Recently".
func (p Profile) DisplayCreatedAt() string {
	if strings.TrimSpace(p.CreatedAt) == "" {
		return DefaultProfileCreated
	}
	return p.CreatedAt
}

// Initial is the upper-cased first character of the name, or "U" when the
// name is empty.
func (p Profile) Initial() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return DefaultAvatarInitial
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
