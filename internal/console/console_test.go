package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/deckbuilder/internal/game"
	"github.com/peterkuimelis/deckbuilder/internal/log"
)

func buyDecision() game.Decision {
	return game.Decision{
		Kind:   game.DecideBuy,
		Prompt: "Buy a card",
		Options: []game.Option{
			{Name: "Silver", Cost: game.Cost{Coins: 3}},
			{Name: "Smithy", Cost: game.Cost{Coins: 4}},
			game.Decline,
		},
		Min: 1, Max: 1,
	}
}

func TestDecideRetriesUntilLegal(t *testing.T) {
	var out bytes.Buffer
	p := NewPlayer(0, strings.NewReader("7\nabc\n1 2\n2\n"), &out)

	c, err := p.Decide(context.Background(), nil, buyDecision())
	require.NoError(t, err)
	assert.Equal(t, game.Pick(1), c)
	assert.Contains(t, out.String(), "2) Smithy ($4)")
	assert.Contains(t, out.String(), "3) (none)")
	assert.Equal(t, 4, strings.Count(out.String(), "> "), "three rejected answers")
	assert.Equal(t, 2, strings.Count(out.String(), "between 1 and 3"))
}

func TestBlankLineDeclines(t *testing.T) {
	p := NewPlayer(0, strings.NewReader("\n"), &bytes.Buffer{})
	c, err := p.Decide(context.Background(), nil, buyDecision())
	require.NoError(t, err)
	assert.Equal(t, game.Pick(2), c)
}

func TestYesNo(t *testing.T) {
	d := game.Decision{Kind: game.DecideYesNo, Options: []game.Option{{Name: "yes"}, {Name: "no"}}, Min: 1, Max: 1}
	p := NewPlayer(0, strings.NewReader("maybe\nN\n"), &bytes.Buffer{})
	c, err := p.Decide(context.Background(), nil, d)
	require.NoError(t, err)
	assert.Equal(t, game.Pick(1), c)
}

func TestMultiplePicks(t *testing.T) {
	d := game.Decision{
		Kind:    game.DecideDiscard,
		Prompt:  "Discard down to 3",
		Options: []game.Option{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		Min:     2, Max: 2,
	}
	var out bytes.Buffer
	p := NewPlayer(0, strings.NewReader("3 1"), &out)
	c, err := p.Decide(context.Background(), nil, d)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, c.Picks)
	assert.Contains(t, out.String(), "(select 2)")
}

func TestEndOfInputAborts(t *testing.T) {
	p := NewPlayer(0, strings.NewReader("9"), &bytes.Buffer{})
	_, err := p.Decide(context.Background(), nil, buyDecision())
	assert.Error(t, err)

	p = NewPlayer(0, strings.NewReader(""), &bytes.Buffer{})
	_, err = p.Decide(context.Background(), nil, buyDecision())
	assert.Error(t, err)
}

func TestNotifyHidesOtherDraws(t *testing.T) {
	var out bytes.Buffer
	p := NewPlayer(0, strings.NewReader(""), &out)
	require.NoError(t, p.Notify(context.Background(), log.NewDrawEvent(1, "Action", 1, "Gold")))
	assert.Empty(t, out.String())
	require.NoError(t, p.Notify(context.Background(), log.NewDrawEvent(1, "Action", 0, "Gold")))
	assert.Contains(t, out.String(), "Gold")
}

func TestPlayAGameAtTheConsole(t *testing.T) {
	var out bytes.Buffer
	// decline everything: treasures, buys
	p := NewPlayer(0, strings.NewReader(strings.Repeat("\n", 200)), &out)
	other := NewPlayer(1, strings.NewReader(strings.Repeat("\n", 200)), &bytes.Buffer{})
	g, err := game.NewGame(game.GameConfig{Kingdom: []string{"Village"}, NoShuffle: true, MaxTurns: 4}, p, other)
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hand: Copper, Copper, Copper, Copper, Copper")
	assert.Contains(t, out.String(), "Actions: 1  Buys: 1  Coins: 0")
}
