package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/idilsaglam/teamtodo/internal/identity"
	"github.com/idilsaglam/teamtodo/internal/model"
)

const (
	minUsernameLen = 2
	maxUsernameLen = 20
	minPasswordLen = 6
)

// Default account seeded by EnsureDefaultUser.
const (
	DefaultUsername    = "user1"
	DefaultDisplayName = "사용자1"
	DefaultPassword    = "123456"
)

type SignUpInput struct {
	Username    string
	DisplayName string
	Password    string
	Confirm     string
}

// ExternalResult reports an external sign-in. Created is true the first
// time this identity is seen.
type ExternalResult struct {
	Session model.Session
	Created bool
}

// CurrentSession returns the signed-in identity, if any.
func (c *Controller) CurrentSession() (model.Session, bool) {
	if c.state.Session == nil {
		return model.Session{}, false
	}
	return *c.state.Session, true
}

// SignUp creates a local account and signs it in.
func (c *Controller) SignUp(in SignUpInput) (model.Session, error) {
	username := strings.TrimSpace(in.Username)
	displayName := strings.TrimSpace(in.DisplayName)
	if username == "" || displayName == "" || in.Password == "" || in.Confirm == "" {
		return model.Session{}, ErrMissingFields
	}
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return model.Session{}, ErrUsernameLength
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		return model.Session{}, ErrPasswordTooShort
	}
	if in.Password != in.Confirm {
		return model.Session{}, ErrPasswordMismatch
	}
	if _, exists := c.state.Users[username]; exists {
		return model.Session{}, ErrUsernameTaken
	}

	c.state.Users[username] = model.User{
		Username:    username,
		DisplayName: displayName,
		Password:    in.Password,
		AuthType:    model.AuthLocal,
		CreatedAt:   c.now(),
	}
	c.saveUsers()
	return c.startSession(model.Session{
		Username:    username,
		DisplayName: displayName,
		AuthType:    model.AuthLocal,
	}), nil
}

// SignIn checks a local username and password. Passwords are compared as
// stored; this gate offers no security guarantee.
func (c *Controller) SignIn(username, password string) (model.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return model.Session{}, ErrMissingFields
	}
	u, ok := c.state.Users[username]
	if !ok || u.Password == "" || u.Password != password {
		return model.Session{}, ErrInvalidCredentials
	}
	now := c.now()
	u.LastLoginAt = &now
	c.state.Users[username] = u
	c.saveUsers()
	return c.startSession(model.Session{
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AuthType:    model.AuthLocal,
	}), nil
}

// SignInExternal signs in with an assertion from an external identity
// provider. The assertion is decoded, not verified. Unknown identities are
// registered on the fly.
func (c *Controller) SignInExternal(assertion string) (ExternalResult, error) {
	id, err := identity.Decode(assertion)
	if err != nil {
		c.log.Warn("external assertion rejected", "err", err)
		return ExternalResult{}, fmt.Errorf("%w: %w", ErrExternalAuth, err)
	}

	username := id.Username()
	now := c.now()
	existing, seen := c.state.Users[username]
	u := model.User{
		Username:    username,
		DisplayName: id.DisplayName(),
		AuthType:    model.AuthExternal,
		Email:       id.Email,
		Picture:     id.Picture,
		SubjectID:   id.SubjectID,
		CreatedAt:   now,
		LastLoginAt: &now,
	}
	if seen {
		u.CreatedAt = existing.CreatedAt
	}
	c.state.Users[username] = u
	c.saveUsers()

	sess := c.startSession(model.Session{
		Username:    username,
		DisplayName: u.DisplayName,
		AuthType:    model.AuthExternal,
		Email:       id.Email,
		Picture:     id.Picture,
	})
	return ExternalResult{Session: sess, Created: !seen}, nil
}

// SignOut ends the session and forgets it in the store. It reports whether
// anyone was signed in.
func (c *Controller) SignOut() bool {
	if c.state.Session == nil {
		return false
	}
	c.state.Session = nil
	c.saveSession()
	return true
}

// EnsureDefaultUser signs in the built-in development account when nobody
// is signed in, creating it first if needed. It reports whether it did.
func (c *Controller) EnsureDefaultUser() bool {
	if c.state.Session != nil {
		return false
	}
	if _, ok := c.state.Users[DefaultUsername]; !ok {
		c.state.Users[DefaultUsername] = model.User{
			Username:    DefaultUsername,
			DisplayName: DefaultDisplayName,
			Password:    DefaultPassword,
			AuthType:    model.AuthLocal,
			CreatedAt:   c.now(),
		}
		c.saveUsers()
	}
	c.startSession(model.Session{
		Username:    DefaultUsername,
		DisplayName: DefaultDisplayName,
		AuthType:    model.AuthLocal,
	})
	return true
}

func (c *Controller) startSession(s model.Session) model.Session {
	c.state.Session = &s
	c.saveSession()
	c.log.Debug("signed in", "user", s.Username, "auth", s.AuthType)
	return s
}
