package game

import (
	"fmt"

	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// Helpers card effects are written with. Each moves cards through Move and
// logs what happened.

// DiscardCard moves card from wherever it is to its owner's discard pile.
func (g *Game) DiscardCard(card *CardInstance, player int) error {
	gs := g.State
	if err := gs.Discard(card); err != nil {
		return err
	}
	g.log(log.NewDiscardEvent(gs.Turn, gs.Phase.String(), player, card.Card.Name))
	return nil
}

// DiscardAll discards every card in cards.
func (g *Game) DiscardAll(cards []*CardInstance, player int) error {
	for _, c := range cards {
		if err := g.DiscardCard(c, player); err != nil {
			return err
		}
	}
	return nil
}

// Topdeck puts card onto its owner's deck.
func (g *Game) Topdeck(card *CardInstance, player int) error {
	gs := g.State
	if err := gs.Move(card, gs.Locate(card), At(card.Owner, ZoneDeck)); err != nil {
		return err
	}
	g.log(log.NewTopdeckEvent(gs.Turn, gs.Phase.String(), player, card.Card.Name))
	return nil
}

// TopdeckOrdered lets player order cards, then puts them onto the deck so the
// first chosen ends on top.
func (g *Game) TopdeckOrdered(cards []*CardInstance, player int, source string) error {
	ordered, err := g.OrderCards(player, source, cards)
	if err != nil {
		return err
	}
	for i := len(ordered) - 1; i >= 0; i-- {
		if err := g.Topdeck(ordered[i], player); err != nil {
			return err
		}
	}
	return nil
}

// ToHand moves card into its owner's hand.
func (g *Game) ToHand(card *CardInstance) error {
	gs := g.State
	return gs.Move(card, gs.Locate(card), At(card.Owner, ZoneHand))
}

// RevealTop reveals up to n cards from the top of player's deck, shuffling the
// discard pile under it if the deck runs short. Returned topmost first; the
// cards stay on the deck until the caller moves them.
func (g *Game) RevealTop(player, n int) []*CardInstance {
	gs := g.State
	if shuffled := gs.ensureDeck(player, n); shuffled > 0 {
		g.log(log.NewShuffleEvent(gs.Turn, gs.Phase.String(), player, shuffled))
	}
	top := gs.TopOfDeck(player, n)
	for _, c := range top {
		g.log(log.NewRevealEvent(gs.Turn, gs.Phase.String(), player, c.Card.Name))
	}
	return top
}

// Reveal logs card as revealed without moving it.
func (g *Game) Reveal(card *CardInstance, player int) {
	gs := g.State
	g.log(log.NewRevealEvent(gs.Turn, gs.Phase.String(), player, card.Card.Name))
}

// SetAside moves card onto host, where it stays until taken back.
func (g *Game) SetAside(card, host *CardInstance, player int) error {
	gs := g.State
	if err := gs.Move(card, gs.Locate(card), SetAsideOn(host)); err != nil {
		return err
	}
	g.log(log.NewSetAsideEvent(gs.Turn, gs.Phase.String(), player, card.Card.Name, host.Card.Name))
	return nil
}

// SetAsideCards returns the cards set aside on host.
func (g *Game) SetAsideCards(host *CardInstance) []*CardInstance {
	st := g.State.Players[host.Owner].peekState(host.ID)
	if st == nil {
		return nil
	}
	return append([]*CardInstance(nil), st.SetAside...)
}

// ToMat moves card onto one of its owner's mats.
func (g *Game) ToMat(card *CardInstance, mat string, player int) error {
	gs := g.State
	if err := gs.Move(card, gs.Locate(card), OnMat(card.Owner, mat)); err != nil {
		return err
	}
	g.log(log.NewSetAsideEvent(gs.Turn, gs.Phase.String(), player, card.Card.Name, mat+" mat"))
	return nil
}

// TrashFromHand asks player to trash between lo and hi cards from hand
// matching keep (nil keeps all). Returns the trashed cards.
func (g *Game) TrashFromHand(player int, source string, lo, hi int, keep func(*CardInstance) bool) ([]*CardInstance, error) {
	cards := filterCards(g.State.Players[player].Hand, keep)
	chosen, err := g.ChooseCards(player, DecideTrash, source, fmt.Sprintf("trash %d to %d cards", lo, hi), cards, lo, hi)
	if err != nil {
		return nil, err
	}
	for _, c := range chosen {
		if err := g.Trash(c, player); err != nil {
			return nil, err
		}
	}
	return chosen, nil
}

// DiscardFromHand asks player to discard between lo and hi cards from hand.
func (g *Game) DiscardFromHand(player int, source string, lo, hi int) ([]*CardInstance, error) {
	hand := g.State.Players[player].Hand
	chosen, err := g.ChooseCards(player, DecideDiscard, source, fmt.Sprintf("discard %d to %d cards", lo, hi), append([]*CardInstance(nil), hand...), lo, hi)
	if err != nil {
		return nil, err
	}
	return chosen, g.DiscardAll(chosen, player)
}

// DiscardDownTo makes player discard until they hold size cards.
func (g *Game) DiscardDownTo(player, size int, source string) error {
	excess := len(g.State.Players[player].Hand) - size
	if excess <= 0 {
		return nil
	}
	_, err := g.DiscardFromHand(player, source, excess, excess)
	return err
}

// GainUpTo asks player to gain a supply card costing at most limit and
// matching keep. Returns nil if nothing qualifies.
func (g *Game) GainUpTo(player int, source string, limit Cost, keep func(*Card) bool, dest ZoneType) (*CardInstance, error) {
	options := g.GainableUpTo(player, limit, keep)
	name, err := g.ChooseSupply(player, DecideGain, source, fmt.Sprintf("gain a card costing up to %s", limit), options, false)
	if err != nil || name == "" {
		return nil, err
	}
	return g.Gain(player, name, dest)
}

// ChooseActionInHand asks player for an action card in hand to play through
// a multiplier. Returns nil if declined or there is none.
func (g *Game) ChooseActionInHand(player int, source *CardInstance, keep func(*CardInstance) bool) (*CardInstance, error) {
	actions := filterCards(g.State.Players[player].HandOf(TypeAction), keep)
	return g.ChooseCard(player, DecidePlayTwice, source.Card.Name, "choose an action to play", actions, true)
}

func filterCards(cards []*CardInstance, keep func(*CardInstance) bool) []*CardInstance {
	out := make([]*CardInstance, 0, len(cards))
	for _, c := range cards {
		if keep == nil || keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// isType returns a filter for cards carrying any of t.
func isType(t CardType) func(*CardInstance) bool {
	return func(c *CardInstance) bool { return c.Is(t) }
}

// cardIsType returns a supply filter for cards carrying any of t.
func cardIsType(t CardType) func(*Card) bool {
	return func(c *Card) bool { return c.Is(t) }
}
