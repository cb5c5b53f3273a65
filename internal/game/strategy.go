package game

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// Strategy is the interface bots, test scripts and the MCP agent implement.
// Decide must return one of the supplied options; the engine falls back to a
// documented default on anything else.
type Strategy interface {
	// Decide answers one Decision. An error aborts the game.
	Decide(ctx context.Context, view *View, d Decision) (Choice, error)

	// Notify sends a game event notification (no response needed).
	Notify(ctx context.Context, event log.GameEvent) error
}

// DecisionKind identifies what a Decision asks for.
type DecisionKind int

const (
	DecideAction       DecisionKind = iota // action card to play, or decline to end the phase
	DecideTreasure                         // treasure to play, or decline to stop
	DecideBuy                              // card to buy, or decline to end the phase
	DecideTrash                            // card(s) to trash
	DecideDiscard                          // card(s) to discard
	DecideTopdeck                          // card(s) to put onto the deck
	DecideOrderTopdeck                     // order for cards going onto the deck, first pick on top
	DecideGain                             // card to gain
	DecideReaction                         // reaction to reveal against an attack
	DecideYesNo                            // option 0 = yes, option 1 = no
	DecideMode                             // one of a card's modes
	DecideSetAside                         // card(s) to set aside
	DecidePlayTwice                        // action for a multiplier to replay
	DecideVillager                         // villagers to spend for actions
	DecideCoffers                          // coffers to spend for coins
	DecideOverpay                          // amount to overpay
	DecideReveal                           // card to reveal
)

var decisionKindNames = map[DecisionKind]string{
	DecideAction:       "action",
	DecideTreasure:     "treasure",
	DecideBuy:          "buy",
	DecideTrash:        "trash",
	DecideDiscard:      "discard",
	DecideTopdeck:      "topdeck",
	DecideOrderTopdeck: "order-topdeck",
	DecideGain:         "gain",
	DecideReaction:     "reaction",
	DecideYesNo:        "yes-no",
	DecideMode:         "mode",
	DecideSetAside:     "set-aside",
	DecidePlayTwice:    "play-twice",
	DecideVillager:     "villager",
	DecideCoffers:      "coffers",
	DecideOverpay:      "overpay",
	DecideReveal:       "reveal",
}

func (k DecisionKind) String() string {
	if n, ok := decisionKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseDecisionKind maps a kind name back to its value.
func ParseDecisionKind(s string) (DecisionKind, bool) {
	for k, n := range decisionKindNames {
		if n == s {
			return k, true
		}
	}
	return 0, false
}

// Option is one selectable answer. Exactly one of Card, Name or Amount is
// meaningful, unless Decline is set.
type Option struct {
	Card    *CardInstance // a card instance (hand, revealed, in play)
	Name    string        // a card name (supply) or a mode label
	Amount  int           // a number (villagers, coffers, overpay)
	Cost    Cost          // effective cost, for supply options
	Decline bool
}

// Label renders the option for prompts and logs.
func (o Option) Label() string {
	switch {
	case o.Decline:
		return "(none)"
	case o.Card != nil:
		return o.Card.Card.Name
	case o.Name != "":
		return o.Name
	default:
		return fmt.Sprintf("%d", o.Amount)
	}
}

// Decline is the sentinel option for "do nothing".
var Decline = Option{Decline: true}

// Decision is a request for a choice. Picks must number between Min and Max,
// be distinct and in range, and a Decline pick must be the only pick.
type Decision struct {
	Kind     DecisionKind
	Player   int
	Source   string // card or phase asking
	Prompt   string
	Options  []Option
	Min      int
	Max      int
	Fallback []int // used when the strategy's answer is invalid
}

// Choice holds the indexes of the picked options.
type Choice struct {
	Picks []int
}

// Pick builds a single-pick Choice.
func Pick(i int) Choice {
	return Choice{Picks: []int{i}}
}

// DeclineIndex returns the index of the decline option, or -1.
func (d Decision) DeclineIndex() int {
	for i, o := range d.Options {
		if o.Decline {
			return i
		}
	}
	return -1
}

// Find returns the index of the first option labelled name, or -1.
func (d Decision) Find(name string) int {
	for i, o := range d.Options {
		if !o.Decline && o.Label() == name {
			return i
		}
	}
	return -1
}

// Validate reports why c is not an acceptable answer to d, or nil.
func (d Decision) Validate(c Choice) error {
	if len(c.Picks) < d.Min || len(c.Picks) > d.Max {
		return fmt.Errorf("picked %d, want %d..%d", len(c.Picks), d.Min, d.Max)
	}
	seen := make(map[int]bool, len(c.Picks))
	for _, i := range c.Picks {
		if i < 0 || i >= len(d.Options) {
			return fmt.Errorf("pick %d out of range", i)
		}
		if seen[i] {
			return fmt.Errorf("pick %d repeated", i)
		}
		seen[i] = true
		if d.Options[i].Decline && len(c.Picks) > 1 {
			return fmt.Errorf("decline combined with other picks")
		}
	}
	return nil
}

// defaultFallback is the decline option if there is one, else the first Min
// options.
func (d Decision) defaultFallback() []int {
	if d.Fallback != nil {
		return d.Fallback
	}
	if i := d.DeclineIndex(); i >= 0 {
		return []int{i}
	}
	out := make([]int, 0, d.Min)
	for i := 0; i < d.Min && i < len(d.Options); i++ {
		out = append(out, i)
	}
	return out
}

func (d Decision) String() string {
	labels := make([]string, len(d.Options))
	for i, o := range d.Options {
		labels[i] = fmt.Sprintf("%d:%s", i, o.Label())
	}
	return fmt.Sprintf("%s [%s] pick %d..%d of {%s}", d.Kind, d.Source, d.Min, d.Max, strings.Join(labels, " "))
}

// decide asks player's strategy and returns valid picks. Decisions with no
// options, or where every option must be taken, are answered without a query.
func (g *Game) decide(d Decision) ([]int, error) {
	if len(d.Options) == 0 {
		return nil, nil
	}
	d.Min = min(d.Min, len(d.Options))
	d.Max = min(max(d.Max, d.Min), len(d.Options))
	if d.Min == len(d.Options) && d.DeclineIndex() < 0 {
		all := make([]int, len(d.Options))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	return g.ask(d)
}

// ask queries the strategy and validates the answer, substituting the
// fallback for an invalid one.
func (g *Game) ask(d Decision) ([]int, error) {
	if d.Player < 0 || d.Player >= len(g.Strategies) || g.Strategies[d.Player] == nil {
		return nil, fmt.Errorf("P%d: %w", d.Player+1, ErrNoStrategy)
	}
	view := &View{g: g, me: d.Player}
	choice, err := g.Strategies[d.Player].Decide(g.ctx, view, d)
	if err != nil {
		return nil, fmt.Errorf("P%d %s decision: %w", d.Player+1, d.Kind, err)
	}
	if verr := d.Validate(choice); verr != nil {
		gs := g.State
		g.log(log.NewFallbackEvent(gs.Turn, gs.Phase.String(), d.Player, d.Kind.String(), verr.Error()))
		return d.defaultFallback(), nil
	}
	return choice.Picks, nil
}

// --- Decision helpers used by card effects ---

// cardOptions wraps instances as options.
func cardOptions(cards []*CardInstance) []Option {
	out := make([]Option, len(cards))
	for i, c := range cards {
		out[i] = Option{Card: c}
	}
	return out
}

// picked maps picks back to card instances, skipping decline.
func picked(opts []Option, picks []int) []*CardInstance {
	var out []*CardInstance
	for _, i := range picks {
		if !opts[i].Decline && opts[i].Card != nil {
			out = append(out, opts[i].Card)
		}
	}
	return out
}

// ChooseCards asks player to pick between min and max of cards. For discard
// and trash decisions an invalid answer falls back to the lowest-value cards.
func (g *Game) ChooseCards(player int, kind DecisionKind, source, prompt string, cards []*CardInstance, lo, hi int) ([]*CardInstance, error) {
	if len(cards) == 0 || hi == 0 {
		return nil, nil
	}
	d := Decision{
		Kind:    kind,
		Player:  player,
		Source:  source,
		Prompt:  prompt,
		Options: cardOptions(cards),
		Min:     lo,
		Max:     hi,
	}
	if kind == DecideDiscard || kind == DecideTrash {
		d.Fallback = g.junkFirst(player, cards, min(lo, len(cards)))
	}
	picks, err := g.decide(d)
	if err != nil {
		return nil, err
	}
	return picked(d.Options, picks), nil
}

// ChooseCard asks player for one card of cards, optionally allowing decline.
// Returns nil when declined or when there is nothing to choose.
func (g *Game) ChooseCard(player int, kind DecisionKind, source, prompt string, cards []*CardInstance, optional bool) (*CardInstance, error) {
	if len(cards) == 0 {
		return nil, nil
	}
	d := Decision{Kind: kind, Player: player, Source: source, Prompt: prompt, Options: cardOptions(cards), Min: 1, Max: 1}
	if optional {
		d.Options = append(d.Options, Decline)
	} else if kind == DecideDiscard || kind == DecideTrash {
		d.Fallback = g.junkFirst(player, cards, 1)
	}
	picks, err := g.decide(d)
	if err != nil {
		return nil, err
	}
	got := picked(d.Options, picks)
	if len(got) == 0 {
		return nil, nil
	}
	return got[0], nil
}

// ChooseSupply asks player to pick a card name among cards, optionally allowing
// decline. Returns "" when declined or when there is nothing to choose.
func (g *Game) ChooseSupply(player int, kind DecisionKind, source, prompt string, cards []*Card, optional bool) (string, error) {
	if len(cards) == 0 {
		return "", nil
	}
	d := Decision{Kind: kind, Player: player, Source: source, Prompt: prompt, Min: 1, Max: 1}
	for _, c := range cards {
		d.Options = append(d.Options, Option{Name: c.Name, Cost: g.EffectiveCost(c, player)})
	}
	if optional {
		d.Options = append(d.Options, Decline)
	} else {
		// most expensive first
		best := 0
		for i, o := range d.Options {
			if d.Options[best].Cost.LessThan(o.Cost) {
				best = i
			}
		}
		d.Fallback = []int{best}
	}
	picks, err := g.decide(d)
	if err != nil {
		return "", err
	}
	o := d.Options[picks[0]]
	if o.Decline {
		return "", nil
	}
	return o.Name, nil
}

// YesNo asks player a yes/no question. An invalid answer means no.
func (g *Game) YesNo(player int, source, prompt string) (bool, error) {
	d := Decision{
		Kind:     DecideYesNo,
		Player:   player,
		Source:   source,
		Prompt:   prompt,
		Options:  []Option{{Name: "yes"}, {Name: "no"}},
		Min:      1,
		Max:      1,
		Fallback: []int{1},
	}
	picks, err := g.decide(d)
	if err != nil {
		return false, err
	}
	return picks[0] == 0, nil
}

// ChooseMode asks player to pick n distinct modes by label. An invalid answer
// takes the first n.
func (g *Game) ChooseMode(player int, source, prompt string, modes []string, n int) ([]string, error) {
	d := Decision{Kind: DecideMode, Player: player, Source: source, Prompt: prompt, Min: n, Max: n}
	for _, m := range modes {
		d.Options = append(d.Options, Option{Name: m})
	}
	picks, err := g.decide(d)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(picks))
	for i, p := range picks {
		out[i] = modes[p]
	}
	return out, nil
}

// ChooseAmount asks player for a number in [0, hi]. An invalid answer is 0.
func (g *Game) ChooseAmount(player int, kind DecisionKind, source, prompt string, hi int) (int, error) {
	if hi <= 0 {
		return 0, nil
	}
	d := Decision{Kind: kind, Player: player, Source: source, Prompt: prompt, Min: 1, Max: 1, Fallback: []int{0}}
	for n := 0; n <= hi; n++ {
		d.Options = append(d.Options, Option{Amount: n})
	}
	picks, err := g.decide(d)
	if err != nil {
		return 0, err
	}
	return d.Options[picks[0]].Amount, nil
}

// OrderCards asks player to order cards. The first pick ends up on top. An
// invalid answer keeps the given order.
func (g *Game) OrderCards(player int, source string, cards []*CardInstance) ([]*CardInstance, error) {
	if len(cards) < 2 {
		return cards, nil
	}
	d := Decision{
		Kind:    DecideOrderTopdeck,
		Player:  player,
		Source:  source,
		Prompt:  "order cards to put onto your deck, first on top",
		Options: cardOptions(cards),
		Min:     len(cards),
		Max:     len(cards),
	}
	for i := range cards {
		d.Fallback = append(d.Fallback, i)
	}
	// every option must be picked, so skip the forced-answer shortcut
	picks, err := g.ask(d)
	if err != nil {
		return nil, err
	}
	return picked(d.Options, picks), nil
}

// junkFirst returns the indexes of the n least valuable cards: Curses, then
// Victory cards by cost, then Copper, then everything else by cost.
func (g *Game) junkFirst(player int, cards []*CardInstance, n int) []int {
	idx := make([]int, len(cards))
	for i := range idx {
		idx[i] = i
	}
	rank := func(c *CardInstance) int {
		switch {
		case c.Is(TypeCurse):
			return 0
		case c.Is(TypeVictory) && !c.Is(TypeAction|TypeTreasure):
			return 1
		case c.Card.Name == "Copper":
			return 2
		default:
			return 3
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ca, cb := cards[idx[a]], cards[idx[b]]
		ra, rb := rank(ca), rank(cb)
		if ra != rb {
			return ra < rb
		}
		return g.EffectiveCost(ca.Card, player).Coins < g.EffectiveCost(cb.Card, player).Coins
	})
	return slices.Clone(idx[:n])
}
