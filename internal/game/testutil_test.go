package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/deckbuilder/internal/log"
	"github.com/stretchr/testify/require"
)

// ScriptedStrategy is a Strategy that follows a predefined script of answers.
// Used in tests to deterministically drive the game.
//
// Each scripted answer is consumed by the first decision of its kind (and
// source, if set) that comes along; decisions that match nothing get the
// default answer: play treasures, decline everything else.
type ScriptedStrategy struct {
	t       *testing.T
	name    string
	answers []ScriptedAnswer
	pos     int

	// Every decision the strategy was asked, in order.
	Asked []Decision
}

// ScriptedAnswer is one planned reply.
type ScriptedAnswer struct {
	Kind   DecisionKind
	Source string   // optional: only answer decisions from this card or phase
	Names  []string // option labels to pick, in order
	Raw    []int    // picked indexes, used verbatim when Names is empty
}

func NewScriptedStrategy(t *testing.T, name string) *ScriptedStrategy {
	return &ScriptedStrategy{t: t, name: name}
}

// Answer scripts picking the options labelled names for the next decision of
// kind.
func (ss *ScriptedStrategy) Answer(kind DecisionKind, names ...string) *ScriptedStrategy {
	ss.answers = append(ss.answers, ScriptedAnswer{Kind: kind, Names: names})
	return ss
}

// AnswerFrom is Answer restricted to decisions asked by source.
func (ss *ScriptedStrategy) AnswerFrom(kind DecisionKind, source string, names ...string) *ScriptedStrategy {
	ss.answers = append(ss.answers, ScriptedAnswer{Kind: kind, Source: source, Names: names})
	return ss
}

// AnswerRaw scripts raw pick indexes, valid or not.
func (ss *ScriptedStrategy) AnswerRaw(kind DecisionKind, picks ...int) *ScriptedStrategy {
	ss.answers = append(ss.answers, ScriptedAnswer{Kind: kind, Raw: picks})
	if picks == nil {
		ss.answers[len(ss.answers)-1].Raw = []int{}
	}
	return ss
}

func (ss *ScriptedStrategy) Play(name string) *ScriptedStrategy {
	return ss.Answer(DecideAction, name)
}

func (ss *ScriptedStrategy) Buy(name string) *ScriptedStrategy {
	return ss.Answer(DecideBuy, name)
}

func (ss *ScriptedStrategy) Yes(source string) *ScriptedStrategy {
	return ss.AnswerFrom(DecideYesNo, source, "yes")
}

// Remaining returns how many scripted answers were never used.
func (ss *ScriptedStrategy) Remaining() int {
	return len(ss.answers) - ss.pos
}

// AskedOf returns the recorded decisions of kind.
func (ss *ScriptedStrategy) AskedOf(kind DecisionKind) []Decision {
	var out []Decision
	for _, d := range ss.Asked {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

func (ss *ScriptedStrategy) Decide(ctx context.Context, view *View, d Decision) (Choice, error) {
	ss.Asked = append(ss.Asked, d)
	if ss.pos < len(ss.answers) {
		a := ss.answers[ss.pos]
		if a.Kind == d.Kind && (a.Source == "" || a.Source == d.Source) {
			ss.pos++
			if a.Names == nil {
				return Choice{Picks: a.Raw}, nil
			}
			return Choice{Picks: ss.resolve(d, a.Names)}, nil
		}
	}

	// Scripted answer not yet due: play treasures, otherwise decline.
	if d.Kind == DecideTreasure && !d.Options[0].Decline {
		return Pick(0), nil
	}
	if i := d.DeclineIndex(); i >= 0 {
		return Pick(i), nil
	}
	return Choice{Picks: d.defaultFallback()}, nil
}

// resolve maps labels to distinct option indexes.
func (ss *ScriptedStrategy) resolve(d Decision, names []string) []int {
	used := make(map[int]bool)
	var picks []int
	for _, name := range names {
		found := -1
		for i, o := range d.Options {
			if !used[i] && o.Label() == name {
				found = i
				break
			}
		}
		if found < 0 {
			ss.t.Fatalf("%s: no option %q in %s", ss.name, name, d)
		}
		used[found] = true
		picks = append(picks, found)
	}
	return picks
}

func (ss *ScriptedStrategy) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}

// newTestGame builds a deterministic game without shuffling, one scripted
// strategy per player.
func newTestGame(t *testing.T, kingdom []string, players ...*ScriptedStrategy) (*Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	strategies := make([]Strategy, len(players))
	for i, p := range players {
		strategies[i] = p
	}
	g, err := NewGame(GameConfig{Kingdom: kingdom, Logger: logger, NoShuffle: true}, strategies...)
	require.NoError(t, err)
	return g, logger
}

// startedGame is newTestGame followed by Start, with every opening hand drawn.
func startedGame(t *testing.T, kingdom []string, players ...*ScriptedStrategy) (*Game, *log.MemoryLogger) {
	t.Helper()
	g, logger := newTestGame(t, kingdom, players...)
	g.Start(context.Background())
	return g, logger
}

// giveHand replaces player's hand with fresh instances of names. The old hand
// goes to the discard pile.
func giveHand(t *testing.T, g *Game, player int, names ...string) []*CardInstance {
	t.Helper()
	gs := g.State
	p := gs.Players[player]
	for _, c := range append([]*CardInstance(nil), p.Hand...) {
		require.NoError(t, gs.Move(c, At(player, ZoneHand), At(player, ZoneDiscard)))
	}
	var out []*CardInstance
	for _, name := range names {
		ci := gs.NewInstance(MustLookup(name), player)
		gs.place(ci, At(player, ZoneHand))
		out = append(out, ci)
	}
	return out
}

// stackDeck puts fresh instances of names on top of player's deck, the first
// name ending on top.
func stackDeck(g *Game, player int, names ...string) []*CardInstance {
	gs := g.State
	out := make([]*CardInstance, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		ci := gs.NewInstance(MustLookup(names[i]), player)
		gs.place(ci, At(player, ZoneDeck))
		out[i] = ci
	}
	return out
}

// playFromHand plays the first card named name in player's hand, as the
// action phase would.
func playFromHand(t *testing.T, g *Game, player int, name string) *CardInstance {
	t.Helper()
	c := g.State.Players[player].FindInHand(name)
	require.NotNil(t, c, "no %s in hand", name)
	require.NoError(t, g.PlayFromHand(c, player))
	return c
}

// emptyDrawPile trashes player's deck and discard pile, leaving nothing to
// draw.
func emptyDrawPile(t *testing.T, g *Game, player int) {
	t.Helper()
	p := g.State.Players[player]
	for _, z := range []ZoneType{ZoneDeck, ZoneDiscard} {
		cards := *g.State.slice(At(player, z))
		for _, c := range append([]*CardInstance(nil), cards...) {
			require.NoError(t, g.State.Move(c, At(player, z), TrashLocation))
		}
	}
	require.Empty(t, p.Deck)
}

// handNames returns the card names in player's hand.
func handNames(g *Game, player int) []string {
	return names(g.State.Players[player].Hand)
}

func countNamed(cards []*CardInstance, name string) int {
	n := 0
	for _, c := range cards {
		if c.Card.Name == name {
			n++
		}
	}
	return n
}

func requireInvariants(t *testing.T, g *Game) {
	t.Helper()
	require.NoError(t, g.State.CheckInvariants())
}
