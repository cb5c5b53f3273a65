package game

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	HandSize       = 5
	StartCoppers   = 7
	StartEstates   = 3
	DefaultTurnCap = 250
)

// Shuffler supplies the permutation used by Shuffle. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// identityShuffler leaves order untouched, for deterministic tests.
type identityShuffler struct{}

func (identityShuffler) Shuffle(int, func(i, j int)) {}

// CardState is the auxiliary per-instance state of a card, kept in its owner's
// table rather than on the instance.
type CardState struct {
	SetAside []*CardInstance // cards set aside on this card (Haven, Archive, Prince)
	Pending  int             // queued duration firings
	LinkedTo []int           // duration cards this multiplier replayed
	ReturnTo int             // host to go back onto at cleanup instead of discarding
	Counters map[string]int
}

// Player represents one player's entire state.
type Player struct {
	Index int

	Deck     []*CardInstance // top of deck is last element (pop from end)
	Discard  []*CardInstance // top of discard is last element
	Hand     []*CardInstance
	InPlay   []*CardInstance
	Duration []*CardInstance // in play and waiting for a future turn
	Mats     map[string][]*CardInstance

	Actions   int
	Buys      int
	Coins     int
	Potions   int
	Debt      int
	VPTokens  int
	Coffers   int
	Villagers int

	TurnFlags   map[string]int // cleared every cleanup
	GainedCost5 bool           // gained a card costing $5 or more this turn
	TurnsTaken  int

	aux map[int]*CardState
}

func newPlayer(index int) *Player {
	return &Player{
		Index:     index,
		Mats:      make(map[string][]*CardInstance),
		TurnFlags: make(map[string]int),
		aux:       make(map[int]*CardState),
		Actions:   1,
		Buys:      1,
	}
}

// State returns the auxiliary state of card, creating it if needed.
func (p *Player) State(card *CardInstance) *CardState {
	st, ok := p.aux[card.ID]
	if !ok {
		st = &CardState{Counters: make(map[string]int)}
		p.aux[card.ID] = st
	}
	return st
}

// peekState returns the auxiliary state of card without creating one.
func (p *Player) peekState(id int) *CardState {
	return p.aux[id]
}

// HandCount returns the number of cards in hand.
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// InPlayCards returns every card in play, including those waiting in the
// duration zone.
func (p *Player) InPlayCards() []*CardInstance {
	out := make([]*CardInstance, 0, len(p.InPlay)+len(p.Duration))
	out = append(out, p.InPlay...)
	out = append(out, p.Duration...)
	return out
}

// CountInPlay counts cards in play carrying any of the given types.
func (p *Player) CountInPlay(t CardType) int {
	n := 0
	for _, c := range p.InPlayCards() {
		if c.Is(t) {
			n++
		}
	}
	return n
}

// InPlayNamed reports whether a card with the given name is in play.
func (p *Player) InPlayNamed(name string) bool {
	for _, c := range p.InPlayCards() {
		if c.Card.Name == name {
			return true
		}
	}
	return false
}

// FindInHand returns the first card in hand with the given name, or nil.
func (p *Player) FindInHand(name string) *CardInstance {
	for _, c := range p.Hand {
		if c.Card.Name == name {
			return c
		}
	}
	return nil
}

// HandOf returns the cards in hand carrying any of the given types.
func (p *Player) HandOf(t CardType) []*CardInstance {
	var out []*CardInstance
	for _, c := range p.Hand {
		if c.Is(t) {
			out = append(out, c)
		}
	}
	return out
}

// OwnedCards returns every card instance the player owns, across all of their
// zones including mats and cards set aside on other cards.
func (p *Player) OwnedCards() []*CardInstance {
	var out []*CardInstance
	out = append(out, p.Deck...)
	out = append(out, p.Discard...)
	out = append(out, p.Hand...)
	out = append(out, p.InPlay...)
	out = append(out, p.Duration...)
	for _, mat := range p.Mats {
		out = append(out, mat...)
	}
	for _, st := range p.aux {
		out = append(out, st.SetAside...)
	}
	return out
}

// resetTurn restores per-turn counters at cleanup.
func (p *Player) resetTurn() {
	p.Actions = 1
	p.Buys = 1
	p.Coins = 0
	p.Potions = 0
	p.GainedCost5 = false
	clear(p.TurnFlags)
}

// GameState holds the entire game state.
type GameState struct {
	ID            uuid.UUID
	Players       []*Player
	Current       int
	Turn          int
	Phase         Phase
	Supply        *Supply
	Trash         []*CardInstance
	CostReduction int // per-turn coin reduction (Bridge)

	Over    bool
	Winners []int
	Result  string

	rng    Shuffler
	nextID int
}

// NewGameState creates an empty state for n players.
func NewGameState(n int, rng Shuffler) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	gs := &GameState{
		ID:     uuid.New(),
		Supply: NewSupply(),
		rng:    rng,
		nextID: 1,
	}
	for i := 0; i < n; i++ {
		gs.Players = append(gs.Players, newPlayer(i))
	}
	return gs
}

// NewInstance creates a fresh card instance owned by owner. It is not in any
// zone until placed.
func (gs *GameState) NewInstance(card *Card, owner int) *CardInstance {
	ci := &CardInstance{
		Card:  card,
		ID:    gs.nextID,
		Owner: owner,
		Zone:  ZoneNone,
	}
	gs.nextID++
	return ci
}

// CurrentPlayer returns the player whose turn it is.
func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.Current]
}

// Opponents returns the other players in seating order starting after p.
func (gs *GameState) Opponents(p int) []int {
	n := len(gs.Players)
	out := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, (p+i)%n)
	}
	return out
}

// Left returns the player seated after p.
func (gs *GameState) Left(p int) int {
	return (p + 1) % len(gs.Players)
}
