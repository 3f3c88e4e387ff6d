// Package identity reads the assertion handed back by an external identity
// provider. The signature is NOT checked: the assertion is only decoded to
// learn who signed in. Anything that needs a trusted identity must verify it
// on a backend instead.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// UsernamePrefix namespaces accounts created from external assertions.
const UsernamePrefix = "external_"

var (
	ErrMalformed = errors.New("malformed identity assertion")
	ErrNoSubject = errors.New("identity assertion has no subject")
)

// Claims are the payload fields we read.
type Claims struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// Identity is what a decoded assertion tells us about the user.
type Identity struct {
	SubjectID string
	Name      string
	Email     string
	Picture   string
}

// Username is the local account name synthesized for this identity.
func (i Identity) Username() string { return UsernamePrefix + i.SubjectID }

// DisplayName prefers the name claim and falls back to the email.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}

// Decode extracts the identity from a three-segment signed assertion
// without verifying it.
func Decode(assertion string) (Identity, error) {
	assertion = stripBearer(strings.TrimSpace(assertion))
	if assertion == "" {
		return Identity{}, ErrMalformed
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(assertion, claims); err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return Identity{}, ErrNoSubject
	}
	return Identity{
		SubjectID: sub,
		Name:      strings.TrimSpace(claims.Name),
		Email:     strings.TrimSpace(claims.Email),
		Picture:   strings.TrimSpace(claims.Picture),
	}, nil
}

func stripBearer(s string) string {
	if strings.HasPrefix(strings.ToLower(s), "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
