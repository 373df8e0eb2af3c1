package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogLoadsAllTiers(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	assert.Equal(t, []Tier{TierBeginner, TierIntermediate, TierAdvanced}, catalog.Tiers())

	for _, tier := range catalog.Tiers() {
		topics, err := catalog.Topics(tier)
		require.NoError(t, err)
		assert.Len(t, topics, 7, "tier %s", tier)
		for _, topic := range topics {
			assert.NotEmpty(t, topic.Title)
			assert.NotEmpty(t, topic.Notes)
		}
	}
}

func TestTopicsUnknownTier(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	_, err = catalog.Topics(Tier("Z"))
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestTopicIndexBounds(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	first, err := catalog.Topic(TierBeginner, 0)
	require.NoError(t, err)
	assert.Equal(t, "What is a Computer?", first.Title)

	_, err = catalog.Topic(TierBeginner, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = catalog.Topic(TierBeginner, 7)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier(" a ")
	require.NoError(t, err)
	assert.Equal(t, TierBeginner, tier)

	tier, err = ParseTier("C")
	require.NoError(t, err)
	assert.Equal(t, TierAdvanced, tier)

	_, err = ParseTier("D")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestTierLabels(t *testing.T) {
	assert.Equal(t, "Beginner", TierBeginner.Label())
	assert.Equal(t, "Intermediate", TierIntermediate.Label())
	assert.Equal(t, "Advanced", TierAdvanced.Label())
}
