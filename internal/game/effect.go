package game

import (
	"fmt"

	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// Hook is the signature of most card hooks. card is the acting instance and
// player the index of the player resolving it.
type Hook func(g *Game, card *CardInstance, player int) error

// CardEffect is a card's rules, as a table of optional hooks. A nil hook means
// the default behavior.
type CardEffect struct {
	// Play is the card's own effect, run after its stat bonuses and draws.
	Play Hook

	// OnGain runs after the gained card is placed in its destination.
	OnGain Hook

	// OnTrash runs after the card is moved to the trash.
	OnTrash Hook

	// OnBuy runs on a Buy-phase purchase only, after the gain.
	OnBuy Hook

	// OnDuration fires at the start of the owner's turn once per queued play.
	// Calling QueueDuration again keeps the card waiting for another turn.
	OnDuration Hook

	// OnCleanup runs at the start of Cleanup while the card is in play.
	OnCleanup Hook

	// React resolves the card as a reaction to attack. Returning true blocks
	// the attack for this player.
	React func(g *Game, card *CardInstance, player int, attack *CardInstance) (bool, error)

	// CanReact narrows when React is offered. Nil means whenever in hand.
	CanReact func(g *Game, card *CardInstance, player int) bool

	// Composes lets other reactions be offered after this one resolves.
	Composes bool

	// Shield makes the owner unaffected by attacks while the card waits in
	// the duration zone.
	Shield bool

	// CostModifier lowers this card's own coin cost for player.
	CostModifier func(g *Game, player int) int

	// CostReduction lowers the coin cost of target while card is in play.
	CostReduction func(g *Game, card *CardInstance, target *Card) int

	// MayBeBought gates purchase. Other gains ignore it.
	MayBeBought func(g *Game, player int) bool

	// StartingSupply overrides the kingdom pile size for the player count.
	StartingSupply func(players int) int

	// VictoryPoints adds to the printed VP when scoring player's deck.
	VictoryPoints func(g *Game, player int) int

	// OnBuyInPlay fires while card is in play, after player buys bought.
	OnBuyInPlay func(g *Game, card *CardInstance, player int, bought *CardInstance) error

	// OnGainInPlay fires while card is in play, after player gains gained.
	OnGainInPlay func(g *Game, card *CardInstance, player int, gained *CardInstance) error
}

var noEffect = &CardEffect{}

// QueueDuration records one pending duration firing for card. The card moves
// to the duration zone when its play settles.
func (g *Game) QueueDuration(card *CardInstance, player int) {
	g.State.Players[player].State(card).Pending++
}

// Play resolves one play of card for player: stat bonuses, then draws, then
// the card's own effect. The card must already be where the caller wants it.
// Multipliers call Play repeatedly on the same instance.
func (g *Game) Play(card *CardInstance, player int) error {
	gs := g.State
	p := gs.Players[player]
	g.log(log.NewPlayEvent(gs.Turn, gs.Phase.String(), player, card.Card.Name, 1))

	s := card.Card.Stats
	p.Actions += s.Actions
	p.Buys += s.Buys
	p.Coins += s.Coins
	p.Potions += s.Potions
	if s.VP != 0 {
		g.AddVP(player, s.VP, card)
	}
	if s.Coffers != 0 {
		g.AddCoffers(player, s.Coffers, card)
	}
	if s.Villagers != 0 {
		g.AddVillagers(player, s.Villagers, card)
	}
	if s.Cards > 0 {
		g.Draw(player, s.Cards)
	}

	if fx := card.Card.effect(); fx.Play != nil {
		if err := fx.Play(g, card, player); err != nil {
			return fmt.Errorf("%s: %w", card.Card.Name, err)
		}
	}
	return nil
}

// PlayFromHand moves card from hand into play and resolves it once. A card
// that is not in hand is a programmer error.
func (g *Game) PlayFromHand(card *CardInstance, player int) error {
	if err := g.State.Move(card, At(player, ZoneHand), At(player, ZoneInPlay)); err != nil {
		return err
	}
	if err := g.Play(card, player); err != nil {
		return err
	}
	g.settle(card, player)
	return nil
}

// MultiPlay moves target from hand into play and resolves it times times in
// a row, on behalf of source. If target waits in the duration zone afterwards,
// source waits with it.
func (g *Game) MultiPlay(source, target *CardInstance, player, times int) error {
	if err := g.State.Move(target, At(player, ZoneHand), At(player, ZoneInPlay)); err != nil {
		return err
	}
	return g.Replay(source, target, player, times)
}

// Replay resolves an already in-play target times times on behalf of source.
func (g *Game) Replay(source, target *CardInstance, player, times int) error {
	for i := 0; i < times; i++ {
		if err := g.Play(target, player); err != nil {
			return err
		}
	}
	g.settle(target, player)
	if target.Zone == ZoneDuration {
		st := g.State.Players[player].State(source)
		st.LinkedTo = append(st.LinkedTo, target.ID)
	}
	return nil
}

// settle moves a just-played card into the duration zone if it left a pending
// effect or is holding a duration card it replayed.
func (g *Game) settle(card *CardInstance, player int) {
	if card.Zone != ZoneInPlay {
		return
	}
	st := g.State.Players[player].peekState(card.ID)
	if st == nil || (st.Pending == 0 && !g.holdsDuration(player, st)) {
		return
	}
	// Move cannot fail: the card was just checked to be in play.
	_ = g.State.Move(card, At(player, ZoneInPlay), At(player, ZoneDuration))
}

// holdsDuration reports whether any card a multiplier replayed still waits in
// the duration zone.
func (g *Game) holdsDuration(player int, st *CardState) bool {
	p := g.State.Players[player]
	for _, id := range st.LinkedTo {
		for _, c := range p.Duration {
			if c.ID == id {
				return true
			}
		}
	}
	return false
}

// resolveDurations fires the duration effects queued by the player's previous
// turns, then returns cards with nothing left pending to the in-play zone so
// they are discarded at this turn's cleanup.
func (g *Game) resolveDurations(player int) error {
	gs := g.State
	p := gs.Players[player]
	queued := append([]*CardInstance(nil), p.Duration...)

	for _, card := range queued {
		if card.Zone != ZoneDuration {
			continue
		}
		st := p.State(card)
		n := st.Pending
		st.Pending = 0
		fx := card.Card.effect()
		for i := 0; i < n; i++ {
			g.log(log.NewDurationEvent(gs.Turn, gs.Phase.String(), player, card.Card.Name))
			if fx.OnDuration == nil {
				continue
			}
			if err := fx.OnDuration(g, card, player); err != nil {
				return fmt.Errorf("%s duration: %w", card.Card.Name, err)
			}
		}
	}

	// Release repeatedly so a multiplier holding another multiplier is freed
	// once the card at the end of the chain is.
	for {
		released := false
		for _, card := range append([]*CardInstance(nil), p.Duration...) {
			st := p.peekState(card.ID)
			if st != nil && (st.Pending > 0 || g.holdsDuration(player, st)) {
				continue
			}
			if err := gs.Move(card, At(player, ZoneDuration), At(player, ZoneInPlay)); err != nil {
				return err
			}
			released = true
		}
		if !released {
			return nil
		}
	}
}
