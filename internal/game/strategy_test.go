package game

import (
	"testing"

	"github.com/peterkuimelis/deckbuilder/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionValidate(t *testing.T) {
	d := Decision{
		Kind:    DecideTrash,
		Options: []Option{{Name: "a"}, {Name: "b"}, Decline},
		Min:     1,
		Max:     2,
	}
	tests := []struct {
		name  string
		picks []int
		ok    bool
	}{
		{"none", nil, false},
		{"one", []int{0}, true},
		{"two", []int{0, 1}, true},
		{"decline alone", []int{2}, true},
		{"repeated", []int{0, 0}, false},
		{"out of range", []int{3}, false},
		{"negative", []int{-1}, false},
		{"decline with others", []int{0, 2}, false},
		{"too many", []int{0, 1, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.Validate(Choice{Picks: tt.picks})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOptionLabels(t *testing.T) {
	g, _ := startedGame(t, nil, NewScriptedStrategy(t, "P1"))
	hand := g.State.Players[0].Hand

	assert.Equal(t, "(none)", Decline.Label())
	assert.Equal(t, "Copper", Option{Card: hand[0]}.Label())
	assert.Equal(t, "Duchy", Option{Name: "Duchy"}.Label())
	assert.Equal(t, "0", Option{}.Label())
	assert.Equal(t, "3", Option{Amount: 3}.Label())

	d := Decision{Options: []Option{{Name: "yes"}, {Name: "no"}, Decline}}
	assert.Equal(t, 1, d.Find("no"))
	assert.Equal(t, -1, d.Find("(none)"), "decline is not found by label")
	assert.Equal(t, 2, d.DeclineIndex())
}

func TestDecisionKindNames(t *testing.T) {
	for k, name := range decisionKindNames {
		assert.Equal(t, name, k.String())
		got, ok := ParseDecisionKind(name)
		require.True(t, ok, name)
		assert.Equal(t, k, got)
	}
	_, ok := ParseDecisionKind("dance")
	assert.False(t, ok)
	assert.Equal(t, "kind(99)", DecisionKind(99).String())
}

func TestForcedDecisionsAreNotAsked(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1")
	g, _ := startedGame(t, nil, p0)
	hand := g.State.Players[0].Hand[:2]

	got, err := g.ChooseCards(0, DecideDiscard, "test", "discard 2", hand, 2, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = g.ChooseCards(0, DecideDiscard, "test", "discard", nil, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, p0.Asked)
}

func TestOrderingIsAlwaysAsked(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").AnswerRaw(DecideOrderTopdeck, 1)
	g, logger := startedGame(t, nil, p0)
	cards := g.State.Players[0].Hand[:2]

	got, err := g.OrderCards(0, "test", cards)
	require.NoError(t, err)
	assert.Equal(t, cards, got, "an invalid order keeps the given one")
	assert.Len(t, p0.AskedOf(DecideOrderTopdeck), 1)
	assert.Len(t, logger.EventsOfType(log.EventFallback), 1)
}

func TestInvalidGainFallsBackToMostExpensive(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").AnswerRaw(DecideGain, 99)
	g, logger := startedGame(t, []string{"Workshop", "Smithy"}, p0)
	giveHand(t, g, 0, "Workshop")

	playFromHand(t, g, 0, "Workshop")

	assert.Equal(t, 1, countNamed(g.State.Players[0].Discard, "Smithy"))
	fallbacks := logger.EventsOfType(log.EventFallback)
	require.Len(t, fallbacks, 1)
	assert.Equal(t, 0, fallbacks[0].Player)
}

func TestInvalidYesNoMeansNo(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").AnswerRaw(DecideYesNo, 0, 1)
	g, _ := startedGame(t, []string{"Moneylender"}, p0)
	giveHand(t, g, 0, "Moneylender", "Copper")

	playFromHand(t, g, 0, "Moneylender")
	assert.Zero(t, g.State.Players[0].Coins)
	assert.Empty(t, g.State.Trash)
}

func TestInvalidAmountMeansZero(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").AnswerRaw(DecideVillager, 7)
	g, _ := startedGame(t, []string{"Smithy"}, p0)
	giveHand(t, g, 0, "Smithy")
	p := g.State.Players[0]
	p.Actions = 0
	p.Villagers = 2

	require.NoError(t, g.actionPhase())
	assert.Equal(t, 2, p.Villagers)
	assert.Empty(t, p0.AskedOf(DecideAction))
}

func TestJunkFirstOrder(t *testing.T) {
	g, _ := startedGame(t, []string{"Village"}, NewScriptedStrategy(t, "P1"))
	cards := giveHand(t, g, 0, "Gold", "Curse", "Village", "Copper", "Estate")

	idx := g.junkFirst(0, cards, 4)
	assert.Equal(t, []int{1, 4, 3, 2}, idx)
}

func TestMissingStrategy(t *testing.T) {
	g, _ := startedGame(t, nil, NewScriptedStrategy(t, "P1"))
	_, err := g.ask(Decision{Kind: DecideYesNo, Player: 3, Options: []Option{{Name: "yes"}}, Min: 1, Max: 1})
	assert.ErrorIs(t, err, ErrNoStrategy)
}

func TestViewShowsOwnState(t *testing.T) {
	p0, p1 := NewScriptedStrategy(t, "P1"), NewScriptedStrategy(t, "P2")
	g, _ := startedGame(t, []string{"Village"}, p0, p1)
	v := NewView(g, 1)

	assert.Equal(t, 1, v.Me())
	assert.Equal(t, 2, v.NumPlayers())
	assert.Len(t, v.Hand(), HandSize)
	assert.Equal(t, 5, v.DeckCount())
	assert.Equal(t, 3, v.Score(1))
	assert.Equal(t, 10, v.PileCount("Village"))
	assert.Equal(t, 3, v.Cost("Village").Coins)
	assert.Equal(t, 3, v.CountOwned("Estate"))
	assert.Contains(t, v.Kingdom(), "Village")
	assert.Equal(t, g.State.ID.String(), v.GameID())
}
