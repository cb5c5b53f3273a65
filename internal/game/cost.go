package game

import (
	"errors"
	"fmt"

	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// EffectiveCost returns card's cost for player after every active reduction.
// Only coins are reduced, and never below zero.
func (g *Game) EffectiveCost(card *Card, player int) Cost {
	cost := card.Cost
	reduction := g.State.CostReduction
	for _, c := range g.State.CurrentPlayer().InPlayCards() {
		if fx := c.Card.effect(); fx.CostReduction != nil {
			reduction += fx.CostReduction(g, c, card)
		}
	}
	if fx := card.effect(); fx.CostModifier != nil {
		reduction += fx.CostModifier(g, player)
	}
	cost.Coins = max(0, cost.Coins-reduction)
	return cost
}

// CostOf is EffectiveCost by card name. Unknown names cost nothing.
func (g *Game) CostOf(name string, player int) Cost {
	card, err := Lookup(name)
	if err != nil {
		return Cost{}
	}
	return g.EffectiveCost(card, player)
}

// CanGain reports whether card can be gained from the supply right now.
func (g *Game) CanGain(name string) bool {
	return g.State.Supply.Available(name)
}

// MayGain reports whether player may buy card: it is on top of a non-empty
// supply pile and its purchase condition holds.
func (g *Game) MayGain(player int, name string) bool {
	s := g.State.Supply
	pile := s.Pile(name)
	if pile == nil || pile.NonSupply || !s.Available(name) {
		return false
	}
	card, err := Lookup(name)
	if err != nil {
		return false
	}
	if fx := card.effect(); fx.MayBeBought != nil && !fx.MayBeBought(g, player) {
		return false
	}
	return true
}

// Affordable reports whether player can pay cost with what they hold now.
// Outstanding debt forbids buying anything.
func (g *Game) Affordable(player int, cost Cost) bool {
	p := g.State.Players[player]
	return p.Debt == 0 && cost.Coins <= p.Coins && cost.Potions <= p.Potions
}

// GainableUpTo lists the supply cards player could gain whose cost is at most
// limit and which pass keep (nil keeps all), in supply order.
func (g *Game) GainableUpTo(player int, limit Cost, keep func(*Card) bool) []*Card {
	var out []*Card
	for _, name := range g.State.Supply.Tops() {
		card, err := Lookup(name)
		if err != nil {
			continue
		}
		if !g.EffectiveCost(card, player).AtMost(limit) {
			continue
		}
		if keep != nil && !keep(card) {
			continue
		}
		out = append(out, card)
	}
	return out
}

// Gain takes a copy of name from its pile and places it in dest for player,
// then runs gain triggers. Gaining from an exhausted pile is a no-op that
// returns a nil card and no error.
func (g *Game) Gain(player int, name string, dest ZoneType) (*CardInstance, error) {
	return g.gain(player, name, dest, nil)
}

func (g *Game) gain(player int, name string, dest ZoneType, paid *Cost) (*CardInstance, error) {
	gs := g.State
	card, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := gs.Supply.take(name); err != nil {
		if errors.Is(err, ErrSupplyExhausted) || errors.Is(err, ErrNotInSupply) || errors.Is(err, ErrSplitOrder) {
			g.log(log.NewSupplyEmptyEvent(gs.Turn, gs.Phase.String(), player, name))
			return nil, nil
		}
		return nil, err
	}

	ci := gs.NewInstance(card, player)
	gs.place(ci, At(player, dest))

	ev := log.NewGainEvent(gs.Turn, gs.Phase.String(), player, name, dest.String())
	if paid != nil {
		ev = ev.With("paid", paid.String())
	}
	g.log(ev)
	if gs.Supply.Pile(name).Count() == 0 {
		g.log(log.NewSupplyEmptyEvent(gs.Turn, gs.Phase.String(), player, gs.Supply.Pile(name).Name))
	}

	if err := g.onGain(ci, player); err != nil {
		return ci, err
	}
	return ci, nil
}

// onGain applies the base gain behavior, standing triggers of cards in play,
// then the gained card's own hook.
func (g *Game) onGain(ci *CardInstance, player int) error {
	p := g.State.Players[player]
	if g.EffectiveCost(ci.Card, player).Coins >= 5 {
		p.GainedCost5 = true
	}
	for _, c := range p.InPlayCards() {
		fx := c.Card.effect()
		if fx.OnGainInPlay == nil {
			continue
		}
		if err := fx.OnGainInPlay(g, c, player, ci); err != nil {
			return fmt.Errorf("%s on gain: %w", c.Card.Name, err)
		}
	}
	if fx := ci.Card.effect(); fx.OnGain != nil {
		if err := fx.OnGain(g, ci, player); err != nil {
			return fmt.Errorf("%s on gain: %w", ci.Card.Name, err)
		}
	}
	return nil
}

// Trash moves card from wherever it is to the trash, then runs its trash hook.
func (g *Game) Trash(card *CardInstance, player int) error {
	gs := g.State
	if err := gs.Move(card, gs.Locate(card), TrashLocation); err != nil {
		return err
	}
	g.log(log.NewTrashEvent(gs.Turn, gs.Phase.String(), player, card.Card.Name))
	if fx := card.Card.effect(); fx.OnTrash != nil {
		if err := fx.OnTrash(g, card, player); err != nil {
			return fmt.Errorf("%s on trash: %w", card.Card.Name, err)
		}
	}
	return nil
}

// Refund returns card to its pile, removing the instance from the game.
func (g *Game) Refund(card *CardInstance) error {
	gs := g.State
	if !gs.Supply.Has(card.Card.Name) {
		return fmt.Errorf("refund %s: %w", card.Card.Name, ErrNotInSupply)
	}
	if err := gs.Move(card, gs.Locate(card), Location{Player: -1, Zone: ZoneNone}); err != nil {
		return err
	}
	if err := gs.Supply.refund(card.Card.Name); err != nil {
		return err
	}
	g.log(log.NewReturnToPileEvent(gs.Turn, gs.Phase.String(), card.Owner, card.Card.Name))
	return nil
}
