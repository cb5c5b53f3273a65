package game

import (
	"fmt"

	"github.com/peterkuimelis/deckbuilder/internal/log"
)

func (g *Game) setPhase(ph Phase) {
	gs := g.State
	gs.Phase = ph
	g.log(log.NewPhaseChangeEvent(gs.Turn, ph.String(), gs.Current))
}

// startPhase resolves the current player's duration queue.
func (g *Game) startPhase() error {
	g.setPhase(PhaseStart)
	return g.resolveDurations(g.State.Current)
}

// actionPhase plays actions while the player has actions and wants to.
// Villagers are offered when actions run out.
func (g *Game) actionPhase() error {
	gs := g.State
	g.setPhase(PhaseAction)
	player := gs.Current
	p := gs.Players[player]

	for !gs.Over {
		actions := p.HandOf(TypeAction)
		if len(actions) == 0 {
			return nil
		}
		if p.Actions == 0 && p.Villagers > 0 {
			n, err := g.ChooseAmount(player, DecideVillager, "Action Phase", "spend villagers for +1 action each", p.Villagers)
			if err != nil {
				return err
			}
			p.Villagers -= n
			p.Actions += n
		}
		if p.Actions == 0 {
			return nil
		}
		card, err := g.ChooseCard(player, DecideAction, "Action Phase", "play an action card", actions, true)
		if err != nil {
			return err
		}
		if card == nil {
			return nil
		}
		p.Actions--
		if err := g.PlayFromHand(card, player); err != nil {
			return err
		}
	}
	return nil
}

// buyPhase plays treasures, spends coffers, repays debt and buys cards.
func (g *Game) buyPhase() error {
	gs := g.State
	g.setPhase(PhaseBuy)
	player := gs.Current
	p := gs.Players[player]

	for {
		treasures := p.HandOf(TypeTreasure)
		if len(treasures) == 0 {
			break
		}
		card, err := g.ChooseCard(player, DecideTreasure, "Buy Phase", "play a treasure", treasures, true)
		if err != nil {
			return err
		}
		if card == nil {
			break
		}
		if err := g.PlayFromHand(card, player); err != nil {
			return err
		}
	}

	if p.Coffers > 0 {
		n, err := g.ChooseAmount(player, DecideCoffers, "Buy Phase", "spend coffers for +$1 each", p.Coffers)
		if err != nil {
			return err
		}
		p.Coffers -= n
		p.Coins += n
	}
	g.repayDebt(player)

	for p.Buys > 0 {
		options := g.buyable(player)
		if len(options) == 0 {
			return nil
		}
		name, err := g.ChooseSupply(player, DecideBuy, "Buy Phase", "buy a card", options, true)
		if err != nil {
			return err
		}
		if name == "" {
			return nil
		}
		if err := g.Buy(player, name); err != nil {
			return err
		}
	}
	return nil
}

// buyable lists the cards player can buy right now.
func (g *Game) buyable(player int) []*Card {
	var out []*Card
	for _, name := range g.State.Supply.Tops() {
		if !g.MayGain(player, name) {
			continue
		}
		card := MustLookup(name)
		if g.Affordable(player, g.EffectiveCost(card, player)) {
			out = append(out, card)
		}
	}
	return out
}

// Buy pays for name and gains it, then fires buy triggers.
func (g *Game) Buy(player int, name string) error {
	gs := g.State
	p := gs.Players[player]
	card, err := Lookup(name)
	if err != nil {
		return err
	}
	if p.Buys < 1 {
		return fmt.Errorf("buy %s: no buys left", name)
	}
	cost := g.EffectiveCost(card, player)
	p.Buys--
	p.Coins -= cost.Coins
	p.Potions -= cost.Potions
	if cost.Debt > 0 {
		p.Debt += cost.Debt
	}
	g.log(log.NewBuyEvent(gs.Turn, gs.Phase.String(), player, name, cost.String()))

	ci, err := g.gain(player, name, ZoneDiscard, &cost)
	if err != nil || ci == nil {
		return err
	}
	if fx := card.effect(); fx.OnBuy != nil {
		if err := fx.OnBuy(g, ci, player); err != nil {
			return fmt.Errorf("%s on buy: %w", name, err)
		}
	}
	for _, c := range p.InPlayCards() {
		fx := c.Card.effect()
		if fx.OnBuyInPlay == nil {
			continue
		}
		if err := fx.OnBuyInPlay(g, c, player, ci); err != nil {
			return fmt.Errorf("%s on buy: %w", c.Card.Name, err)
		}
	}
	g.repayDebt(player)
	return nil
}

// repayDebt pays off as much debt as the player's coins allow.
func (g *Game) repayDebt(player int) {
	p := g.State.Players[player]
	pay := min(p.Debt, p.Coins)
	if pay == 0 {
		return
	}
	p.Debt -= pay
	p.Coins -= pay
	g.logTokens(player, "debt", -pay, nil)
}

// cleanupPhase runs cleanup hooks, discards hand and played cards, draws a new
// hand and resets per-turn counters.
func (g *Game) cleanupPhase() error {
	gs := g.State
	g.setPhase(PhaseCleanup)
	player := gs.Current
	p := gs.Players[player]

	for _, c := range p.InPlayCards() {
		if c.Zone != ZoneInPlay && c.Zone != ZoneDuration {
			continue
		}
		if fx := c.Card.effect(); fx.OnCleanup != nil {
			if err := fx.OnCleanup(g, c, player); err != nil {
				return fmt.Errorf("%s cleanup: %w", c.Card.Name, err)
			}
		}
	}

	for _, c := range append([]*CardInstance(nil), p.Hand...) {
		if err := gs.Move(c, At(player, ZoneHand), At(player, ZoneDiscard)); err != nil {
			return err
		}
	}
	for _, c := range append([]*CardInstance(nil), p.InPlay...) {
		to := At(player, ZoneDiscard)
		if st := p.peekState(c.ID); st != nil && st.ReturnTo != 0 {
			if host := g.findDuration(player, st.ReturnTo); host != nil {
				to = SetAsideOn(host)
			}
			st.ReturnTo = 0
		}
		if err := gs.Move(c, At(player, ZoneInPlay), to); err != nil {
			return err
		}
	}

	p.resetTurn()
	gs.CostReduction = 0
	g.Draw(player, HandSize)
	g.log(log.NewCleanupEvent(gs.Turn, player, len(p.Hand)))
	return nil
}

// findDuration returns the player's duration-zone card with the given ID.
func (g *Game) findDuration(player, id int) *CardInstance {
	for _, c := range g.State.Players[player].Duration {
		if c.ID == id {
			return c
		}
	}
	return nil
}
