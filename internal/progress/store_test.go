package progress

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesKanneh/computer-literacy-app/internal/content"
	"github.com/JamesKanneh/computer-literacy-app/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	file := storage.NewStore(filepath.Join(t.TempDir(), "progress.json"))
	return NewStore(file, zerolog.Nop())
}

func TestRecordAndGetAll(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Record("ada", content.TierBeginner, 5))
	require.NoError(t, store.Record("ada", content.TierAdvanced, 3))

	scores, err := store.GetAll("ada")
	require.NoError(t, err)
	assert.Equal(t, map[content.Tier]int{
		content.TierBeginner: 5,
		content.TierAdvanced: 3,
	}, scores)
}

func TestRecordOverwritesLastScore(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Record("ada", content.TierBeginner, 5))
	require.NoError(t, store.Record("ada", content.TierBeginner, 2))

	scores, err := store.GetAll("ada")
	require.NoError(t, err)
	assert.Equal(t, 2, scores[content.TierBeginner])
	assert.Len(t, scores, 1)
}

func TestRecordKeepsOtherUsers(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Record("ada", content.TierBeginner, 5))
	require.NoError(t, store.Record("bob", content.TierBeginner, 1))

	adaScores, err := store.GetAll("ada")
	require.NoError(t, err)
	assert.Equal(t, 5, adaScores[content.TierBeginner])

	bobScores, err := store.GetAll("bob")
	require.NoError(t, err)
	assert.Equal(t, 1, bobScores[content.TierBeginner])
}

func TestGetAllUnknownUserIsEmpty(t *testing.T) {
	store := newTestStore(t)

	scores, err := store.GetAll("nobody")
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestZeroScoreIsStored(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Record("ada", content.TierBeginner, 0))

	scores, err := store.GetAll("ada")
	require.NoError(t, err)
	score, ok := scores[content.TierBeginner]
	assert.True(t, ok)
	assert.Equal(t, 0, score)
}
