package game

import (
	"fmt"

	"github.com/peterkuimelis/deckbuilder/internal/log"
)

func init() {
	register(
		BanditCamp, Spoils, Pillage,
		Butcher, Stonemason,
		Horse, Supplies, Cavalry,
		ActingTroupe, Villain, Mastermind,
		Prince,
	)
}

// returnsToPile builds a Play hook for cards that go back to their pile once
// played.
func returnsToPile(g *Game, card *CardInstance, player int) error {
	if card.Zone != ZoneInPlay {
		return nil
	}
	return g.Refund(card)
}

// trashSelf trashes card if it is still in play and reports whether it did.
func trashSelf(g *Game, card *CardInstance, player int) (bool, error) {
	if card.Zone != ZoneInPlay {
		return false, nil
	}
	return true, g.Trash(card, player)
}

// BanditCamp (Dark Ages): +1 Card +2 Actions. Gain a Spoils.
func BanditCamp() *Card {
	return &Card{
		Name:        "Bandit Camp",
		Description: "+1 Card, +2 Actions. Gain a Spoils.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 2},
		Requires:    []string{"Spoils"},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				_, err := g.Gain(player, "Spoils", ZoneDiscard)
				return err
			},
		},
	}
}

// Spoils (Dark Ages): +$3. When you play this, return it to the Spoils pile.
func Spoils() *Card {
	c := treasure("Spoils", 0, 3)
	c.Description = "+$3. When you play this, return it to the Spoils pile."
	c.Effect = &CardEffect{Play: returnsToPile}
	return c
}

// Pillage (Dark Ages): trash this. If you did, gain 2 Spoils, and each other
// player with 5 or more cards in hand reveals their hand and discards a card
// that you choose.
func Pillage() *Card {
	return &Card{
		Name:        "Pillage",
		Description: "Trash this. If you did, gain 2 Spoils, and each other player with 5 or more cards in hand reveals their hand and discards a card that you choose.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction | TypeAttack,
		Requires:    []string{"Spoils"},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				trashed, err := trashSelf(g, card, player)
				if err != nil || !trashed {
					return err
				}
				err = g.AttackOpponents(player, card, func(target int) error {
					hand := append([]*CardInstance(nil), g.player(target).Hand...)
					if len(hand) < 5 {
						return nil
					}
					for _, c := range hand {
						g.Reveal(c, target)
					}
					pick, err := g.ChooseCard(player, DecideDiscard, "Pillage", fmt.Sprintf("choose a card for %s to discard", log.PlayerName(target)), hand, false)
					if err != nil || pick == nil {
						return err
					}
					return g.DiscardCard(pick, target)
				})
				if err != nil {
					return err
				}
				for i := 0; i < 2; i++ {
					if _, err := g.Gain(player, "Spoils", ZoneDiscard); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}

// Butcher (Guilds): +2 Coffers. You may trash a card from your hand. If you
// do, remove any number of Coffers; gain a card costing up to the cost of the
// trashed card plus $1 per Coffer removed.
func Butcher() *Card {
	return &Card{
		Name:        "Butcher",
		Description: "+2 Coffers. You may trash a card from your hand. If you do, remove any number of Coffers; gain a card with cost up to the cost of the trashed card plus $1 per Coffers removed.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Coffers: 2},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				p := g.player(player)
				hand := append([]*CardInstance(nil), p.Hand...)
				pick, err := g.ChooseCard(player, DecideTrash, "Butcher", "trash a card", hand, true)
				if err != nil || pick == nil {
					return err
				}
				limit := g.EffectiveCost(pick.Card, player)
				if err := g.Trash(pick, player); err != nil {
					return err
				}
				n, err := g.ChooseAmount(player, DecideCoffers, "Butcher", "remove coffers for +$1 each", p.Coffers)
				if err != nil {
					return err
				}
				if n > 0 {
					g.AddCoffers(player, -n, card)
				}
				_, err = g.GainUpTo(player, "Butcher", limit.Plus(n), nil, ZoneDiscard)
				return err
			},
		},
	}
}

// Stonemason (Guilds): trash a card from your hand. Gain 2 cards each costing
// less than it. When you buy this, you may overpay for it; if you do, gain 2
// Action cards each costing the amount you overpaid.
func Stonemason() *Card {
	return &Card{
		Name:        "Stonemason",
		Description: "Trash a card from your hand. Gain 2 cards each costing less than it. When you buy this, you may overpay for it. If you do, gain 2 Action cards each costing the amount you overpaid.",
		Cost:        Cost{Coins: 2},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				hand := append([]*CardInstance(nil), g.player(player).Hand...)
				pick, err := g.ChooseCard(player, DecideTrash, "Stonemason", "trash a card", hand, false)
				if err != nil || pick == nil {
					return err
				}
				limit := g.EffectiveCost(pick.Card, player)
				if err := g.Trash(pick, player); err != nil {
					return err
				}
				cheaper := func(c *Card) bool { return g.EffectiveCost(c, player).LessThan(limit) }
				for i := 0; i < 2; i++ {
					if _, err := g.GainUpTo(player, "Stonemason", limit, cheaper, ZoneDiscard); err != nil {
						return err
					}
				}
				return nil
			},
			OnBuy: func(g *Game, card *CardInstance, player int) error {
				p := g.player(player)
				n, err := g.ChooseAmount(player, DecideOverpay, "Stonemason", "overpay for Stonemason", p.Coins)
				if err != nil || n == 0 {
					return err
				}
				p.Coins -= n
				exact := Cost{Coins: n}
				keep := func(c *Card) bool {
					return c.Is(TypeAction) && g.EffectiveCost(c, player) == exact
				}
				for i := 0; i < 2; i++ {
					if _, err := g.GainUpTo(player, "Stonemason", exact, keep, ZoneDiscard); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}

// Horse (Menagerie): +2 Cards +1 Action. Return this to its pile.
func Horse() *Card {
	return &Card{
		Name:        "Horse",
		Description: "+2 Cards, +1 Action. Return this to its pile.",
		Cost:        Cost{Coins: 3},
		Types:       TypeAction,
		Stats:       Stats{Cards: 2, Actions: 1},
		Effect:      &CardEffect{Play: returnsToPile},
	}
}

// Supplies (Menagerie): +$1. When you play this, gain a Horse onto your deck.
func Supplies() *Card {
	c := treasure("Supplies", 2, 1)
	c.Description = "+$1. When you play this, gain a Horse, putting it onto your deck."
	c.Requires = []string{"Horse"}
	c.Effect = &CardEffect{
		Play: func(g *Game, card *CardInstance, player int) error {
			_, err := g.Gain(player, "Horse", ZoneDeck)
			return err
		},
	}
	return c
}

// Cavalry (Menagerie): gain 2 Horses. When you gain this, +2 Cards +1 Buy.
func Cavalry() *Card {
	return &Card{
		Name:        "Cavalry",
		Description: "Gain 2 Horses. When you gain this, +2 Cards, +1 Buy.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction,
		Requires:    []string{"Horse"},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				for i := 0; i < 2; i++ {
					if _, err := g.Gain(player, "Horse", ZoneDiscard); err != nil {
						return err
					}
				}
				return nil
			},
			OnGain: func(g *Game, card *CardInstance, player int) error {
				g.Draw(player, 2)
				g.player(player).Buys++
				return nil
			},
		},
	}
}

// ActingTroupe (Renaissance): +4 Villagers. Trash this.
func ActingTroupe() *Card {
	return &Card{
		Name:        "Acting Troupe",
		Description: "+4 Villagers. Trash this.",
		Cost:        Cost{Coins: 3},
		Types:       TypeAction,
		Stats:       Stats{Villagers: 4},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				_, err := trashSelf(g, card, player)
				return err
			},
		},
	}
}

// Villain (Renaissance): +2 Coffers. Each other player with 5 or more cards
// in hand discards one costing $2 or more (or reveals they can't).
func Villain() *Card {
	return &Card{
		Name:        "Villain",
		Description: "+2 Coffers. Each other player with 5 or more cards in hand discards one costing $2 or more (or reveals they can't).",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction | TypeAttack,
		Stats:       Stats{Coffers: 2},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				return g.AttackOpponents(player, card, func(target int) error {
					p := g.player(target)
					if len(p.Hand) < 5 {
						return nil
					}
					pricey := filterCards(p.Hand, func(c *CardInstance) bool {
						return g.EffectiveCost(c.Card, target).Coins >= 2
					})
					if len(pricey) == 0 {
						for _, c := range p.Hand {
							g.Reveal(c, target)
						}
						return nil
					}
					pick, err := g.ChooseCard(target, DecideDiscard, "Villain", "discard a card costing $2 or more", pricey, false)
					if err != nil || pick == nil {
						return err
					}
					return g.DiscardCard(pick, target)
				})
			},
		},
	}
}

// Mastermind (Renaissance): at the start of your next turn, you may play an
// Action card from your hand three times.
func Mastermind() *Card {
	return &Card{
		Name:        "Mastermind",
		Description: "At the start of your next turn, you may play an Action card from your hand three times.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction | TypeDuration,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				g.QueueDuration(card, player)
				return nil
			},
			OnDuration: func(g *Game, card *CardInstance, player int) error {
				target, err := g.ChooseActionInHand(player, card, nil)
				if err != nil || target == nil {
					return err
				}
				return g.MultiPlay(card, target, player, 3)
			},
		},
	}
}

// Prince (Promo): you may set aside this and an Action card costing up to $4
// from your hand. At the start of each of your turns, play that Action,
// setting it aside again when you discard it from play.
func Prince() *Card {
	return &Card{
		Name:        "Prince",
		Description: "You may set aside this and an Action card costing up to $4 from your hand. At the start of each of your turns, play that Action, setting it aside again when you discard it from play. (Stop playing it if you fail to set it aside on a turn you play it.)",
		Cost:        Cost{Coins: 8},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				if card.Zone != ZoneInPlay {
					return nil
				}
				princeable := filterCards(g.player(player).HandOf(TypeAction), func(c *CardInstance) bool {
					return !c.Is(TypeDuration|TypeCommand) && g.EffectiveCost(c.Card, player).AtMost(Cost{Coins: 4})
				})
				target, err := g.ChooseCard(player, DecideSetAside, "Prince", "set aside an action with Prince", princeable, true)
				if err != nil || target == nil {
					return err
				}
				if err := g.SetAside(target, card, player); err != nil {
					return err
				}
				g.QueueDuration(card, player)
				return nil
			},
			OnDuration: func(g *Game, card *CardInstance, player int) error {
				aside := g.SetAsideCards(card)
				if len(aside) == 0 {
					return nil
				}
				target := aside[0]
				gs := g.State
				if err := gs.Move(target, SetAsideOn(card), At(player, ZoneInPlay)); err != nil {
					return err
				}
				g.player(player).State(target).ReturnTo = card.ID
				g.QueueDuration(card, player)
				if err := g.Play(target, player); err != nil {
					return err
				}
				g.settle(target, player)
				return nil
			},
		},
	}
}
