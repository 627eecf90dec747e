package domain

import (
	"errors"
	"strings"
)

const RoleAdmin = "admin"

var ErrSignInNotAllowed = errors.New("email is not on the allowed sign-in list")

// Identity is the assertion vouched for by the external identity provider
// after a successful sign-in there. It is consumed once per sign-in attempt
// and never persisted.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	// Role is "admin" for members of the administrator set and empty
	// otherwise. Downstream checks treat empty and absent identically.
	Role string `json:"role,omitempty"`
}

// AccessPolicy is the process-wide sign-in policy: the allowed-email set and
// the administrator-email set. Built once at startup from configuration and
// never mutated afterwards.
//
// Matching is exact and case-sensitive against the configured values; entries
// are trimmed of surrounding whitespace when the policy is built so that
// comma-delimited lists with spaces behave as expected.
type AccessPolicy struct {
	allowed map[string]struct{}
	admins  map[string]struct{}
}

// NewAccessPolicy builds an immutable policy from the two configured lists.
func NewAccessPolicy(allowedEmails, adminEmails []string) AccessPolicy {
	return AccessPolicy{
		allowed: toSet(allowedEmails),
		admins:  toSet(adminEmails),
	}
}

// Allowed reports whether email may sign in at all. An empty email is always
// denied.
func (p AccessPolicy) Allowed(email string) bool {
	if email == "" {
		return false
	}
	_, ok := p.allowed[email]
	return ok
}

// IsAdmin reports whether email belongs to the administrator set.
func (p AccessPolicy) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	_, ok := p.admins[email]
	return ok
}

func toSet(emails []string) map[string]struct{} {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	return set
}
