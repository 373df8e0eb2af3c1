package progress

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/JamesKanneh/computer-literacy-app/internal/content"
	"github.com/JamesKanneh/computer-literacy-app/internal/storage"
)

// Snapshot is the persisted shape: username -> tier -> last score.
type Snapshot map[string]map[content.Tier]int

// Store persists per-user quiz scores. Each write is a full read-modify-write
// of the snapshot; a new score for a (user, tier) pair overwrites the old one.
type Store struct {
	file   *storage.Store
	logger zerolog.Logger
}

// NewStore wraps a storage handle.
func NewStore(file *storage.Store, logger zerolog.Logger) *Store {
	return &Store{file: file, logger: logger}
}

// Record overwrites the user's last score for a tier.
func (s *Store) Record(username string, tier content.Tier, score int) error {
	snapshot := Snapshot{}
	if err := s.file.Load(&snapshot); err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	userProgress, ok := snapshot[username]
	if !ok {
		userProgress = map[content.Tier]int{}
		snapshot[username] = userProgress
	}
	userProgress[tier] = score

	if err := s.file.Save(snapshot); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	s.logger.Info().
		Str("username", username).
		Str("tier", string(tier)).
		Int("score", score).
		Msg("progress saved")
	return nil
}

// GetAll returns the user's tier -> score mapping. A user with no recorded
// attempts gets an empty map.
func (s *Store) GetAll(username string) (map[content.Tier]int, error) {
	snapshot := Snapshot{}
	if err := s.file.Load(&snapshot); err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	userProgress, ok := snapshot[username]
	if !ok {
		return map[content.Tier]int{}, nil
	}
	return userProgress, nil
}
