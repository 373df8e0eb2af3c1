package auth

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Service handles signup and login against the credential store.
type Service struct {
	creds  *CredentialStore
	now    func() time.Time
	logger zerolog.Logger
}

// NewService creates an authentication service.
func NewService(creds *CredentialStore, logger zerolog.Logger) *Service {
	return &Service{
		creds:  creds,
		now:    time.Now,
		logger: logger,
	}
}

// Signup registers a new user. The username is trimmed before validation and
// must be unused; password and confirmation must match and be non-empty.
// On success the credential snapshot is rewritten with the new record.
func (s *Service) Signup(username, password, confirmation string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}

	users, err := s.creds.Load()
	if err != nil {
		return err
	}
	if _, taken := users[username]; taken {
		return ErrUsernameTaken
	}

	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	if password != confirmation {
		return ErrPasswordMismatch
	}

	users[username] = User{
		PasswordHash: HashPassword(password),
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
	}
	if err := s.creds.Save(users); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Msg("user signed up")
	return nil
}

// Login authenticates a user and returns the registered identity.
// Failures never mutate the credential store.
func (s *Service) Login(username, password string) (Identity, error) {
	username = strings.TrimSpace(username)

	users, err := s.creds.Load()
	if err != nil {
		return Identity{}, err
	}

	user, ok := users[username]
	if !ok {
		return Identity{}, ErrUnknownUser
	}
	if !VerifyPassword(user.PasswordHash, password) {
		return Identity{}, ErrWrongPassword
	}

	s.logger.Info().Str("username", username).Msg("user logged in")
	return RegisteredIdentity(username), nil
}
