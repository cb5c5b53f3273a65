package game

func init() {
	register(
		Haven, Lighthouse, FishingVillage, Caravan, MerchantShip, Wharf, Tactician,
		Island,
	)
}

// duration builds a Duration card whose Play queues its next-turn effect.
func duration(name, desc string, cost int, now Stats, next Hook) *Card {
	return &Card{
		Name:        name,
		Description: desc,
		Cost:        Cost{Coins: cost},
		Types:       TypeAction | TypeDuration,
		Stats:       now,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				g.QueueDuration(card, player)
				return nil
			},
			OnDuration: next,
		},
	}
}

// nextTurn returns a duration hook granting s.
func nextTurn(s Stats) Hook {
	return func(g *Game, card *CardInstance, player int) error {
		p := g.player(player)
		p.Actions += s.Actions
		p.Buys += s.Buys
		p.Coins += s.Coins
		if s.Cards > 0 {
			g.Draw(player, s.Cards)
		}
		return nil
	}
}

// Haven (Seaside): +1 Card +1 Action. Set aside a card from your hand face
// down. At the start of your next turn, put it into your hand.
func Haven() *Card {
	return &Card{
		Name:        "Haven",
		Description: "+1 Card, +1 Action. Set aside a card from your hand face down (under this). At the start of your next turn, put it into your hand.",
		Cost:        Cost{Coins: 2},
		Types:       TypeAction | TypeDuration,
		Stats:       Stats{Cards: 1, Actions: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				hand := append([]*CardInstance(nil), g.player(player).Hand...)
				pick, err := g.ChooseCard(player, DecideSetAside, "Haven", "set aside a card", hand, false)
				if err != nil || pick == nil {
					return err
				}
				if err := g.SetAside(pick, card, player); err != nil {
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
				return g.ToHand(aside[0])
			},
		},
	}
}

// Lighthouse (Seaside): +1 Action. Now and at the start of your next turn:
// +$1. While this is in play, other players' Attacks don't affect you.
func Lighthouse() *Card {
	c := duration("Lighthouse",
		"+1 Action. Now and at the start of your next turn: +$1. While this is in play, when another player plays an Attack card, it doesn't affect you.",
		2, Stats{Actions: 1, Coins: 1}, nextTurn(Stats{Coins: 1}))
	c.Effect.Shield = true
	return c
}

// FishingVillage (Seaside): +2 Actions +$1. At the start of your next turn:
// +1 Action +$1.
func FishingVillage() *Card {
	return duration("Fishing Village",
		"+2 Actions, +$1. At the start of your next turn: +1 Action and +$1.",
		3, Stats{Actions: 2, Coins: 1}, nextTurn(Stats{Actions: 1, Coins: 1}))
}

// Caravan (Seaside): +1 Card +1 Action. At the start of your next turn,
// +1 Card.
func Caravan() *Card {
	return duration("Caravan",
		"+1 Card, +1 Action. At the start of your next turn, +1 Card.",
		4, Stats{Cards: 1, Actions: 1}, nextTurn(Stats{Cards: 1}))
}

// MerchantShip (Seaside): now and at the start of your next turn: +$2.
func MerchantShip() *Card {
	return duration("Merchant Ship",
		"Now and at the start of your next turn: +$2.",
		5, Stats{Coins: 2}, nextTurn(Stats{Coins: 2}))
}

// Wharf (Seaside): now and at the start of your next turn: +2 Cards +1 Buy.
func Wharf() *Card {
	return duration("Wharf",
		"Now and at the start of your next turn: +2 Cards and +1 Buy.",
		5, Stats{Cards: 2, Buys: 1}, nextTurn(Stats{Cards: 2, Buys: 1}))
}

// Tactician (Seaside): if you have at least one card in hand, discard your
// hand, and at the start of your next turn, +5 Cards +1 Action +1 Buy.
func Tactician() *Card {
	return &Card{
		Name:        "Tactician",
		Description: "If you have at least one card in hand, discard your hand, and at the start of your next turn, +5 Cards, +1 Action, and +1 Buy.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction | TypeDuration,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				hand := append([]*CardInstance(nil), g.player(player).Hand...)
				if len(hand) == 0 {
					return nil
				}
				if err := g.DiscardAll(hand, player); err != nil {
					return err
				}
				g.QueueDuration(card, player)
				return nil
			},
			OnDuration: nextTurn(Stats{Cards: 5, Actions: 1, Buys: 1}),
		},
	}
}

// IslandMat holds cards set aside by Island until the end of the game.
const IslandMat = "Island"

// Island (Seaside): put this and a card from your hand onto your Island mat.
// Worth 2 VP.
func Island() *Card {
	return &Card{
		Name:        "Island",
		Description: "Put this and a card from your hand onto your Island mat. 2 VP",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction | TypeVictory,
		VP:          2,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				if card.Zone == ZoneInPlay {
					if err := g.ToMat(card, IslandMat, player); err != nil {
						return err
					}
				}
				hand := append([]*CardInstance(nil), g.player(player).Hand...)
				pick, err := g.ChooseCard(player, DecideSetAside, "Island", "put a card onto your Island mat", hand, false)
				if err != nil || pick == nil {
					return err
				}
				return g.ToMat(pick, IslandMat, player)
			},
		},
	}
}
