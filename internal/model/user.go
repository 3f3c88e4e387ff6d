package model

import "time"

type AuthType string

const (
	AuthLocal    AuthType = "local"
	AuthExternal AuthType = "external"
)

// Mode selects which collection is visible and editable.
type Mode string

const (
	ModePersonal Mode = "personal"
	ModeTeam     Mode = "team"
)

// ParseMode accepts "personal" or "team".
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModePersonal:
		return ModePersonal, true
	case ModeTeam:
		return ModeTeam, true
	}
	return "", false
}

// User is a stored account record, keyed by Username.
// Password is kept as entered; hashing is out of scope for a local-only gate.
type User struct {
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName"`
	Password    string     `json:"password,omitempty"`
	AuthType    AuthType   `json:"authType,omitempty"`
	Email       string     `json:"email,omitempty"`
	Picture     string     `json:"picture,omitempty"`
	SubjectID   string     `json:"subjectId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// Session is the signed-in identity.
type Session struct {
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName"`
	AuthType    AuthType `json:"authType,omitempty"`
	Email       string   `json:"email,omitempty"`
	Picture     string   `json:"picture,omitempty"`
}
