package game

import (
	"context"
	"errors"
	"testing"

	"github.com/peterkuimelis/deckbuilder/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnPlaysTreasuresAndBuys(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").Buy("Silver")
	p1 := NewScriptedStrategy(t, "P2")
	g, logger := startedGame(t, nil, p0, p1)

	require.NoError(t, g.runTurn())

	p := g.State.Players[0]
	assert.Equal(t, 1, countNamed(p.Discard, "Silver"))
	assert.Equal(t, 39, g.State.Supply.Count("Silver"))
	assert.Equal(t, 1, g.State.Current)
	assert.Equal(t, 1, p.TurnsTaken)
	assert.Len(t, p.Hand, HandSize)
	assert.Len(t, logger.EventsForCard(log.EventPlay, "Copper"), 5)

	buys := logger.EventsOfType(log.EventBuy)
	require.Len(t, buys, 1)
	assert.Equal(t, "Silver", buys[0].Card)
	gains := logger.EventsForCard(log.EventGain, "Silver")
	require.Len(t, gains, 1)
	assert.Equal(t, "$3", gains[0].Context["paid"])
	requireInvariants(t, g)
}

func TestBuyOptionsAreAffordable(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1")
	g, _ := startedGame(t, []string{"Village", "King's Court"}, p0)
	require.NoError(t, g.runTurn())

	buys := p0.AskedOf(DecideBuy)
	require.Len(t, buys, 1)
	d := buys[0]
	assert.GreaterOrEqual(t, d.Find("Village"), 0)
	assert.GreaterOrEqual(t, d.Find("Duchy"), 0)
	assert.Equal(t, -1, d.Find("King's Court"))
	assert.Equal(t, -1, d.Find("Gold"))
	assert.GreaterOrEqual(t, d.DeclineIndex(), 0)
}

func TestActionPhaseSpendsActions(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").Play("Village").Play("Smithy").Play("Smithy")
	g, logger := startedGame(t, []string{"Village", "Smithy"}, p0)
	giveHand(t, g, 0, "Village", "Smithy", "Smithy")

	g.State.Turn = 1
	require.NoError(t, g.actionPhase())

	p := g.State.Players[0]
	assert.Zero(t, p.Actions)
	assert.Len(t, logger.EventsForCard(log.EventPlay, "Smithy"), 2)
	assert.Equal(t, ZoneInPlay, p.InPlay[0].Zone)
}

func TestActionPhaseStopsWithoutActions(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").Play("Smithy")
	g, logger := startedGame(t, []string{"Smithy"}, p0)
	giveHand(t, g, 0, "Smithy", "Smithy")

	require.NoError(t, g.actionPhase())
	assert.Len(t, logger.EventsForCard(log.EventPlay, "Smithy"), 1)
	assert.Len(t, p0.AskedOf(DecideAction), 1)
}

func TestVillagersBuyActions(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").
		Play("Smithy").
		Answer(DecideVillager, "1").
		Play("Smithy")
	g, _ := startedGame(t, []string{"Smithy"}, p0)
	giveHand(t, g, 0, "Smithy", "Smithy")
	p := g.State.Players[0]
	p.Villagers = 2

	require.NoError(t, g.actionPhase())
	assert.Equal(t, 1, p.Villagers)
	assert.Zero(t, p.Actions)
	assert.Empty(t, p.HandOf(TypeAction))
}

func TestCoffersAndDebt(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").Answer(DecideCoffers, "3").Buy("Engineer")
	g, _ := startedGame(t, []string{"Engineer"}, p0)
	giveHand(t, g, 0, "Copper")
	p := g.State.Players[0]
	p.Coffers = 3

	require.NoError(t, g.buyPhase())

	assert.Zero(t, p.Coffers)
	assert.Equal(t, 1, countNamed(p.Discard, "Engineer"))
	assert.Zero(t, p.Debt, "4 coins repay the debt right after the buy")
	assert.Zero(t, p.Coins)
}

func TestDebtBlocksBuying(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1")
	g, _ := startedGame(t, []string{"Engineer"}, p0)
	p := g.State.Players[0]
	p.Debt = 8

	require.NoError(t, g.buyPhase())
	assert.Equal(t, 3, p.Debt, "5 Coppers repay 5 of 8")
	assert.Zero(t, p.Coins)
	assert.Empty(t, p0.AskedOf(DecideBuy))
}

func TestGrandMarketNeedsNoCopperInPlay(t *testing.T) {
	g, _ := startedGame(t, []string{"Grand Market"}, NewScriptedStrategy(t, "P1"))
	p := g.State.Players[0]
	p.Coins = 6
	assert.True(t, g.MayGain(0, "Grand Market"))

	giveHand(t, g, 0, "Copper")
	playFromHand(t, g, 0, "Copper")
	assert.False(t, g.MayGain(0, "Grand Market"))
	for _, c := range g.buyable(0) {
		assert.NotEqual(t, "Grand Market", c.Name)
	}

	ci, err := g.Gain(0, "Grand Market", ZoneDiscard)
	require.NoError(t, err)
	assert.NotNil(t, ci, "the restriction is on buying only")
}

func TestPeddlerCostDuringBuyPhase(t *testing.T) {
	g, _ := startedGame(t, []string{"Peddler", "Village"}, NewScriptedStrategy(t, "P1"))
	giveHand(t, g, 0, "Village", "Village")
	playFromHand(t, g, 0, "Village")
	playFromHand(t, g, 0, "Village")

	g.State.Phase = PhaseAction
	assert.Equal(t, 8, g.CostOf("Peddler", 0).Coins)
	g.State.Phase = PhaseBuy
	assert.Equal(t, 4, g.CostOf("Peddler", 0).Coins)
}

func TestCostReductionsStack(t *testing.T) {
	g, _ := startedGame(t, []string{"Highway", "Quarry", "Bridge", "Village"}, NewScriptedStrategy(t, "P1"))
	giveHand(t, g, 0, "Highway", "Quarry", "Bridge")
	playFromHand(t, g, 0, "Highway")
	playFromHand(t, g, 0, "Bridge")
	playFromHand(t, g, 0, "Quarry")

	assert.Equal(t, 0, g.CostOf("Village", 0).Coins)
	assert.Equal(t, 4, g.CostOf("Gold", 0).Coins)
	assert.Equal(t, 0, g.CostOf("Copper", 0).Coins)
}

func TestGameEndsOnProvinces(t *testing.T) {
	g, _ := startedGame(t, nil, NewScriptedStrategy(t, "P1"), NewScriptedStrategy(t, "P2"))
	over, _ := g.GameOver()
	assert.False(t, over)

	g.State.Supply.Pile("Province").Counts[0] = 0
	over, why := g.GameOver()
	assert.True(t, over)
	assert.Contains(t, why, "Province")
}

func TestGameEndsOnColonies(t *testing.T) {
	g, err := NewGame(GameConfig{Colonies: true, NoShuffle: true}, NewScriptedStrategy(t, "P1"), NewScriptedStrategy(t, "P2"))
	require.NoError(t, err)
	g.State.Supply.Pile("Colony").Counts[0] = 0
	over, _ := g.GameOver()
	assert.True(t, over)
}

func TestGameEndsOnEmptyPiles(t *testing.T) {
	kingdom := []string{"Village", "Smithy", "Market", "Festival"}
	for _, tt := range []struct {
		players, needed int
	}{
		{players: 2, needed: 3},
		{players: 4, needed: 3},
		{players: 5, needed: 4},
	} {
		players := make([]*ScriptedStrategy, tt.players)
		for i := range players {
			players[i] = NewScriptedStrategy(t, log.PlayerName(i))
		}
		g, _ := newTestGame(t, kingdom, players...)
		for i := 0; i < tt.needed; i++ {
			g.State.Supply.Pile(kingdom[i]).Counts[0] = 0
			over, _ := g.GameOver()
			assert.Equal(t, i == tt.needed-1, over, "%d players, %d empty", tt.players, i+1)
		}
	}
}

func TestRunStopsAtTurnLimit(t *testing.T) {
	p0, p1 := NewScriptedStrategy(t, "P1"), NewScriptedStrategy(t, "P2")
	logger := log.NewMemoryLogger()
	g, err := NewGame(GameConfig{Logger: logger, NoShuffle: true, MaxTurns: 4}, p0, p1)
	require.NoError(t, err)

	winners, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, g.State.Turn)
	assert.Equal(t, []int{0, 1}, winners, "3 VP each after two turns each")
	assert.True(t, g.State.Over)
	assert.Contains(t, g.State.Result, "turn limit")
	assert.Len(t, logger.EventsOfType(log.EventGameOver), 1)
	requireInvariants(t, g)
}

func TestTiesGoToFewerTurns(t *testing.T) {
	g, _ := startedGame(t, nil, NewScriptedStrategy(t, "P1"), NewScriptedStrategy(t, "P2"))
	g.State.Players[0].TurnsTaken = 3
	g.State.Players[1].TurnsTaken = 2
	assert.Equal(t, []int{1}, g.Winners())

	g.AddVP(0, 1, nil)
	assert.Equal(t, []int{0}, g.Winners())
}

func TestRunEndsWhenProvincesAreBought(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1")
	p1 := NewScriptedStrategy(t, "P2")
	g, err := NewGame(GameConfig{NoShuffle: true}, p0, p1)
	require.NoError(t, err)
	g.State.Supply.Pile("Province").Counts[0] = 1
	g.Start(context.Background())
	giveHand(t, g, 0, "Gold", "Gold", "Gold")
	p0.Buy("Province")

	winners, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, winners)
	assert.Equal(t, 1, g.State.Turn)
	assert.Equal(t, 9, g.Score(0))
	assert.Equal(t, 3, g.Score(1))
}

type failingStrategy struct{ ScriptedStrategy }

func (f *failingStrategy) Decide(ctx context.Context, view *View, d Decision) (Choice, error) {
	return Choice{}, errors.New("disconnected")
}

func TestStrategyErrorAbortsGame(t *testing.T) {
	g, err := NewGame(GameConfig{NoShuffle: true}, &failingStrategy{}, NewScriptedStrategy(t, "P2"))
	require.NoError(t, err)
	_, err = g.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disconnected")
}

func TestRunHonorsContext(t *testing.T) {
	g, err := NewGame(GameConfig{NoShuffle: true}, NewScriptedStrategy(t, "P1"), NewScriptedStrategy(t, "P2"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
