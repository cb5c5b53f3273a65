package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kingdomYAML = `
kingdoms:
  - name: First Game
    cards: [Cellar, Market, Merchant, Militia, Mine, Moat, Remodel, Smithy, Village, Workshop]
  - name: Big Spenders
    colonies: true
    cards: [Bank, Goons, Grand Market, Hoard, King's Court, Monument, Peddler, Quarry, Talisman, Highway]
`

func TestParseKingdoms(t *testing.T) {
	kf, err := ParseKingdoms([]byte(kingdomYAML))
	require.NoError(t, err)
	require.Len(t, kf.Kingdoms, 2)

	k, err := kf.Find("Big Spenders")
	require.NoError(t, err)
	assert.True(t, k.Colonies)
	assert.Len(t, k.Cards, 10)

	k, err = kf.ByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, "First Game", k.Name)
	assert.False(t, k.Colonies)

	_, err = kf.Find("Nope")
	assert.Error(t, err)
	_, err = kf.ByNumber(0)
	assert.Error(t, err)
	_, err = kf.ByNumber(3)
	assert.Error(t, err)
}

func TestParseKingdomsRejectsUnknownCards(t *testing.T) {
	_, err := ParseKingdoms([]byte("kingdoms:\n  - name: Bad\n    cards: [Village, Warp Gate]\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCard)
	assert.Contains(t, err.Error(), "Bad")
}

func TestParseKingdomsRejectsBadYAML(t *testing.T) {
	_, err := ParseKingdoms([]byte("kingdoms: [name: {"))
	assert.Error(t, err)
}

func TestParseKingdomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kingdoms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(kingdomYAML), 0o644))

	kf, err := ParseKingdomFile(path)
	require.NoError(t, err)
	assert.Len(t, kf.Kingdoms, 2)

	_, err = ParseKingdomFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParsedKingdomsSetUp(t *testing.T) {
	kf, err := ParseKingdoms([]byte(kingdomYAML))
	require.NoError(t, err)
	for _, k := range kf.Kingdoms {
		g, err := NewGame(GameConfig{Kingdom: k.Cards, Colonies: k.Colonies, NoShuffle: true},
			NewScriptedStrategy(t, "P1"), NewScriptedStrategy(t, "P2"))
		require.NoError(t, err, k.Name)
		for _, name := range k.Cards {
			assert.Equal(t, 10, g.State.Supply.Count(name), "%s in %s", name, k.Name)
		}
		assert.Equal(t, k.Colonies, g.State.Supply.Has("Colony"))
	}
}

func TestResolveKingdom(t *testing.T) {
	kf, err := ParseKingdoms([]byte(kingdomYAML))
	require.NoError(t, err)

	for ref, want := range map[string]string{
		"":               "First Game",
		"2":              "Big Spenders",
		" Big Spenders ": "Big Spenders",
	} {
		k, err := kf.Resolve(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, want, k.Name)
	}
	_, err = kf.Resolve("7")
	assert.Error(t, err)
}

func TestShippedKingdomsSetUp(t *testing.T) {
	kf, err := ParseKingdomFile(filepath.Join("..", "..", "kingdoms.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, kf.Kingdoms)
	for _, k := range kf.Kingdoms {
		assert.Len(t, k.Cards, 10, k.Name)
		_, err := NewGame(GameConfig{Kingdom: k.Cards, Colonies: k.Colonies, NoShuffle: true},
			NewScriptedStrategy(t, "P1"), NewScriptedStrategy(t, "P2"))
		assert.NoError(t, err, k.Name)
	}
}
