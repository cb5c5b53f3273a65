package game

func init() {
	register(
		KingsCourt, Goons, Hoard, Talisman, GrandMarket, Peddler, Monument,
		Quarry, Bank, Highway,
	)
}

// KingsCourt (Prosperity): you may play an Action card from your hand three
// times.
func KingsCourt() *Card {
	return &Card{
		Name:        "King's Court",
		Description: "You may play an Action card from your hand three times.",
		Cost:        Cost{Coins: 7},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: multiplier(3, nil),
		},
	}
}

// Goons (Prosperity): +1 Buy +$2. Each other player discards down to 3 cards
// in hand. While this is in play, when you buy a card, +1 VP.
func Goons() *Card {
	return &Card{
		Name:        "Goons",
		Description: "+1 Buy, +$2. Each other player discards down to 3 cards in hand. While this is in play, when you buy a card, +1 VP.",
		Cost:        Cost{Coins: 6},
		Types:       TypeAction | TypeAttack,
		Stats:       Stats{Buys: 1, Coins: 2},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				return g.AttackOpponents(player, card, func(target int) error {
					return g.DiscardDownTo(target, 3, "Goons")
				})
			},
			OnBuyInPlay: func(g *Game, card *CardInstance, player int, bought *CardInstance) error {
				g.AddVP(player, 1, card)
				return nil
			},
		},
	}
}

// Hoard (Prosperity): +$2. While this is in play, when you buy a Victory
// card, gain a Gold.
func Hoard() *Card {
	c := treasure("Hoard", 6, 2)
	c.Description = "+$2. While this is in play, when you buy a Victory card, gain a Gold."
	c.Effect = &CardEffect{
		OnBuyInPlay: func(g *Game, card *CardInstance, player int, bought *CardInstance) error {
			if !bought.Is(TypeVictory) {
				return nil
			}
			_, err := g.Gain(player, "Gold", ZoneDiscard)
			return err
		},
	}
	return c
}

// Talisman (Prosperity): +$1. While this is in play, when you buy a
// non-Victory card costing $4 or less, gain a copy of it.
func Talisman() *Card {
	c := treasure("Talisman", 4, 1)
	c.Description = "+$1. While this is in play, when you buy a non-Victory card costing $4 or less, gain a copy of it."
	c.Effect = &CardEffect{
		OnBuyInPlay: func(g *Game, card *CardInstance, player int, bought *CardInstance) error {
			if bought.Is(TypeVictory) || !g.EffectiveCost(bought.Card, player).AtMost(Cost{Coins: 4}) {
				return nil
			}
			_, err := g.Gain(player, bought.Card.Name, ZoneDiscard)
			return err
		},
	}
	return c
}

// GrandMarket (Prosperity): +1 Card +1 Action +1 Buy +$2. You can't buy this
// if you have any Coppers in play.
func GrandMarket() *Card {
	return &Card{
		Name:        "Grand Market",
		Description: "+1 Card, +1 Action, +1 Buy, +$2. You can't buy this if you have any Coppers in play.",
		Cost:        Cost{Coins: 6},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1, Buys: 1, Coins: 2},
		Effect: &CardEffect{
			MayBeBought: func(g *Game, player int) bool {
				return !g.player(player).InPlayNamed("Copper")
			},
		},
	}
}

// Peddler (Prosperity): +1 Card +1 Action +$1. During your Buy phase, this
// costs $2 less per Action card you have in play.
func Peddler() *Card {
	return &Card{
		Name:        "Peddler",
		Description: "+1 Card, +1 Action, +$1. During your Buy phase, this costs $2 less per Action card you have in play.",
		Cost:        Cost{Coins: 8},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1, Coins: 1},
		Effect: &CardEffect{
			CostModifier: func(g *Game, player int) int {
				gs := g.State
				if gs.Phase != PhaseBuy || gs.Current != player {
					return 0
				}
				return 2 * g.player(player).CountInPlay(TypeAction)
			},
		},
	}
}

// Monument (Prosperity): +$2 +1 VP.
func Monument() *Card {
	return &Card{
		Name:        "Monument",
		Description: "+$2, +1 VP.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction,
		Stats:       Stats{Coins: 2, VP: 1},
	}
}

// Quarry (Prosperity): +$1. While this is in play, Action cards cost $2 less.
func Quarry() *Card {
	c := treasure("Quarry", 4, 1)
	c.Description = "+$1. While this is in play, Action cards cost $2 less, but not less than $0."
	c.Effect = &CardEffect{
		CostReduction: func(g *Game, card *CardInstance, target *Card) int {
			if target.Is(TypeAction) {
				return 2
			}
			return 0
		},
	}
	return c
}

// Bank (Prosperity): +$1 per Treasure you have in play, counting this.
func Bank() *Card {
	return &Card{
		Name:        "Bank",
		Description: "When you play this, it's worth $1 per Treasure card you have in play (counting this).",
		Cost:        Cost{Coins: 7},
		Types:       TypeTreasure,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				p := g.player(player)
				p.Coins += p.CountInPlay(TypeTreasure)
				return nil
			},
		},
	}
}

// Highway (Prosperity): +1 Card +1 Action. While this is in play, cards cost
// $1 less.
func Highway() *Card {
	return &Card{
		Name:        "Highway",
		Description: "+1 Card, +1 Action. While this is in play, cards cost $1 less, but not less than $0.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1},
		Effect: &CardEffect{
			CostReduction: func(g *Game, card *CardInstance, target *Card) int {
				return 1
			},
		},
	}
}
