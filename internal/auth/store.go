package auth

import (
	"fmt"

	"github.com/JamesKanneh/computer-literacy-app/internal/storage"
)

// CredentialStore persists username -> User records as one JSON snapshot.
type CredentialStore struct {
	store *storage.Store
}

// NewCredentialStore wraps a storage handle. Passing the handle in keeps the
// store substitutable with a temp file in tests.
func NewCredentialStore(store *storage.Store) *CredentialStore {
	return &CredentialStore{store: store}
}

// Load returns the full username -> record snapshot.
func (c *CredentialStore) Load() (map[string]User, error) {
	users := map[string]User{}
	if err := c.store.Load(&users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

// Save rewrites the full snapshot. Last writer wins.
func (c *CredentialStore) Save(users map[string]User) error {
	if err := c.store.Save(users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
