package game

import (
	"testing"

	"github.com/peterkuimelis/deckbuilder/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// advanceToNextTurn runs player's cleanup and then the start of their following turn,
// skipping everyone else.
func advanceToNextTurn(t *testing.T, g *Game, player int) {
	t.Helper()
	g.State.Current = player
	require.NoError(t, g.cleanupPhase())
	require.NoError(t, g.startPhase())
	requireInvariants(t, g)
}

func TestStatsAreAppliedBeforeEffect(t *testing.T) {
	g, _ := startedGame(t, []string{"Market"}, NewScriptedStrategy(t, "P1"))
	giveHand(t, g, 0, "Market")
	playFromHand(t, g, 0, "Market")

	p := g.State.Players[0]
	assert.Equal(t, 2, p.Actions)
	assert.Equal(t, 2, p.Buys)
	assert.Equal(t, 1, p.Coins)
	assert.Len(t, p.Hand, 1)
	assert.Len(t, p.InPlay, 1)
}

func TestThroneRoomPlaysTwice(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").Answer(DecidePlayTwice, "Smithy")
	g, logger := startedGame(t, []string{"Throne Room", "Smithy"}, p0)
	giveHand(t, g, 0, "Throne Room", "Smithy")

	playFromHand(t, g, 0, "Throne Room")

	p := g.State.Players[0]
	assert.Len(t, p.Hand, 6)
	assert.Equal(t, []string{"Throne Room", "Smithy"}, names(p.InPlay))
	assert.Len(t, logger.EventsForCard(log.EventPlay, "Smithy"), 2)
	assert.Zero(t, p0.Remaining())
	requireInvariants(t, g)
}

func TestThroneRoomWithNothingToPlay(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1")
	g, _ := startedGame(t, []string{"Throne Room"}, p0)
	giveHand(t, g, 0, "Throne Room", "Copper")

	playFromHand(t, g, 0, "Throne Room")
	assert.Empty(t, p0.AskedOf(DecidePlayTwice), "no action in hand, nothing to ask")
	assert.Equal(t, []string{"Throne Room"}, names(g.State.Players[0].InPlay))
}

func TestKingsCourtPlaysThreeTimes(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").Answer(DecidePlayTwice, "Festival")
	g, _ := startedGame(t, []string{"King's Court", "Festival"}, p0)
	giveHand(t, g, 0, "King's Court", "Festival")

	playFromHand(t, g, 0, "King's Court")

	p := g.State.Players[0]
	assert.Equal(t, 1+6, p.Actions)
	assert.Equal(t, 1+3, p.Buys)
	assert.Equal(t, 6, p.Coins)
}

func TestWharfFiresNextTurn(t *testing.T) {
	g, logger := startedGame(t, []string{"Wharf"}, NewScriptedStrategy(t, "P1"))
	giveHand(t, g, 0, "Wharf")
	wharf := playFromHand(t, g, 0, "Wharf")

	p := g.State.Players[0]
	assert.Len(t, p.Hand, 2)
	assert.Equal(t, 2, p.Buys)
	assert.Equal(t, ZoneDuration, wharf.Zone)

	advanceToNextTurn(t, g, 0)
	assert.Len(t, p.Hand, 7)
	assert.Equal(t, 2, p.Buys)
	assert.Equal(t, ZoneInPlay, wharf.Zone, "released to be discarded this turn")
	assert.Len(t, logger.EventsForCard(log.EventDuration, "Wharf"), 1)

	require.NoError(t, g.cleanupPhase())
	assert.Equal(t, ZoneDiscard, wharf.Zone)
}

func TestThroneRoomOnDurationStaysOut(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").Answer(DecidePlayTwice, "Wharf")
	g, logger := startedGame(t, []string{"Throne Room", "Wharf"}, p0)
	giveHand(t, g, 0, "Throne Room", "Wharf")

	tr := playFromHand(t, g, 0, "Throne Room")
	p := g.State.Players[0]
	wharf := p.Duration[0]
	assert.Equal(t, "Wharf", wharf.Card.Name)
	assert.Equal(t, 2, p.State(wharf).Pending)
	assert.Equal(t, ZoneDuration, tr.Zone, "a multiplier stays with the duration card it played")
	assert.Len(t, p.Hand, 4)
	assert.Equal(t, 3, p.Buys)

	require.NoError(t, g.cleanupPhase())
	assert.Equal(t, ZoneDuration, tr.Zone)
	assert.Equal(t, ZoneDuration, wharf.Zone)

	require.NoError(t, g.startPhase())
	assert.Len(t, logger.EventsForCard(log.EventDuration, "Wharf"), 2)
	assert.Len(t, p.Hand, 9)
	assert.Equal(t, 3, p.Buys)
	assert.Equal(t, ZoneInPlay, tr.Zone)
	assert.Equal(t, ZoneInPlay, wharf.Zone)
	requireInvariants(t, g)
}

func TestHavenReturnsCardNextTurn(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").Answer(DecideSetAside, "Gold")
	g, _ := startedGame(t, []string{"Haven"}, p0)
	hand := giveHand(t, g, 0, "Haven", "Gold")
	gold := hand[1]

	haven := playFromHand(t, g, 0, "Haven")
	assert.Equal(t, ZoneSetAside, gold.Zone)
	assert.Equal(t, haven.ID, gold.Host)
	assert.Equal(t, ZoneDuration, haven.Zone)
	assert.Contains(t, g.State.Players[0].OwnedCards(), gold)

	advanceToNextTurn(t, g, 0)
	assert.Equal(t, ZoneHand, gold.Zone)
	assert.Len(t, g.State.Players[0].Hand, 6)
	assert.Equal(t, ZoneInPlay, haven.Zone)
}

func TestHavenWithEmptyHandIsNotADuration(t *testing.T) {
	g, _ := startedGame(t, []string{"Haven"}, NewScriptedStrategy(t, "P1"))
	giveHand(t, g, 0, "Haven")
	emptyDrawPile(t, g, 0)

	haven := playFromHand(t, g, 0, "Haven")
	assert.Equal(t, ZoneInPlay, haven.Zone)
}

func TestPrinceReplaysEveryTurn(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1").Answer(DecideSetAside, "Village")
	g, logger := startedGame(t, []string{"Prince", "Village"}, p0)
	hand := giveHand(t, g, 0, "Prince", "Village")
	village := hand[1]

	prince := playFromHand(t, g, 0, "Prince")
	assert.Equal(t, ZoneDuration, prince.Zone)
	assert.Equal(t, ZoneSetAside, village.Zone)

	for turn := 1; turn <= 3; turn++ {
		advanceToNextTurn(t, g, 0)
		p := g.State.Players[0]
		assert.Equal(t, ZoneInPlay, village.Zone, "turn %d", turn)
		assert.Equal(t, 3, p.Actions, "turn %d", turn)
		assert.Equal(t, ZoneDuration, prince.Zone, "turn %d", turn)
	}
	assert.Len(t, logger.EventsForCard(log.EventPlay, "Village"), 3)

	require.NoError(t, g.cleanupPhase())
	assert.Equal(t, ZoneSetAside, village.Zone)
	assert.Equal(t, prince.ID, village.Host)
}

func TestPrinceIgnoresDurations(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1")
	g, _ := startedGame(t, []string{"Prince", "Caravan"}, p0)
	giveHand(t, g, 0, "Prince", "Caravan")

	prince := playFromHand(t, g, 0, "Prince")
	assert.Empty(t, p0.AskedOf(DecideSetAside))
	assert.Equal(t, ZoneInPlay, prince.Zone)
}

func TestMastermindPlaysThriceNextTurn(t *testing.T) {
	p0 := NewScriptedStrategy(t, "P1")
	g, _ := startedGame(t, []string{"Mastermind", "Laboratory"}, p0)
	giveHand(t, g, 0, "Mastermind")
	mm := playFromHand(t, g, 0, "Mastermind")
	require.Equal(t, ZoneDuration, mm.Zone)

	// the next hand is drawn at cleanup, so put a Laboratory where it lands
	stackDeck(g, 0, "Laboratory")
	p0.Answer(DecidePlayTwice, "Laboratory")
	advanceToNextTurn(t, g, 0)

	p := g.State.Players[0]
	assert.Equal(t, 4, p.Actions)
	assert.Len(t, p.Hand, 4+6)
	assert.Equal(t, ZoneInPlay, mm.Zone)
}

func TestCleanupResetsTurnState(t *testing.T) {
	g, _ := startedGame(t, []string{"Bridge"}, NewScriptedStrategy(t, "P1"))
	giveHand(t, g, 0, "Bridge", "Copper")
	playFromHand(t, g, 0, "Bridge")
	require.Equal(t, 1, g.State.CostReduction)
	require.Equal(t, 2, g.CostOf("Silver", 0).Coins)

	require.NoError(t, g.cleanupPhase())
	p := g.State.Players[0]
	assert.Zero(t, g.State.CostReduction)
	assert.Equal(t, 1, p.Actions)
	assert.Equal(t, 1, p.Buys)
	assert.Zero(t, p.Coins)
	assert.Len(t, p.Hand, HandSize)
	assert.Empty(t, p.InPlay)
	requireInvariants(t, g)
}
