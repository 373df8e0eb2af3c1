package auth

import "errors"

var (
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordMismatch = errors.New("passwords did not match")
	ErrUnknownUser      = errors.New("no such user")
	ErrWrongPassword    = errors.New("incorrect password")
)

// User is a stored credential record, keyed by username in the credential
// store. Field names match the persisted JSON schema.
type User struct {
	PasswordHash string `json:"password"`
	CreatedAt    string `json:"created_at"`
}

// Identity is the in-process session identity: a registered user or the
// unauthenticated guest. It is never persisted.
type Identity struct {
	Username string
	IsGuest  bool
}

// RegisteredIdentity builds the identity for a logged-in user.
func RegisteredIdentity(username string) Identity {
	return Identity{Username: username}
}

// GuestIdentity builds the guest identity. Guest is terminal for the session:
// there is no logout back to the unauthenticated menu.
func GuestIdentity() Identity {
	return Identity{IsGuest: true}
}

// Registered reports whether this identity persists quiz progress.
func (i Identity) Registered() bool {
	return !i.IsGuest && i.Username != ""
}

// DisplayName is the name shown in the menu header.
func (i Identity) DisplayName() string {
	if i.IsGuest {
		return "Guest"
	}
	return i.Username
}
