package game

func init() {
	register(Familiar, Alchemist)
}

// Familiar (Alchemy): +1 Card +1 Action. Each other player gains a Curse.
func Familiar() *Card {
	return &Card{
		Name:        "Familiar",
		Description: "+1 Card, +1 Action. Each other player gains a Curse.",
		Cost:        Cost{Coins: 3, Potions: 1},
		Types:       TypeAction | TypeAttack,
		Stats:       Stats{Cards: 1, Actions: 1},
		Effect: &CardEffect{
			Play: cursing,
		},
	}
}

// Alchemist (Alchemy): +2 Cards +1 Action. At the start of Clean-up this
// turn, if you have a Potion in play, you may put this onto your deck.
func Alchemist() *Card {
	return &Card{
		Name:        "Alchemist",
		Description: "+2 Cards, +1 Action. At the start of Clean-up this turn, if you have a Potion in play, you may put this onto your deck.",
		Cost:        Cost{Coins: 3, Potions: 1},
		Types:       TypeAction,
		Stats:       Stats{Cards: 2, Actions: 1},
		Effect: &CardEffect{
			OnCleanup: func(g *Game, card *CardInstance, player int) error {
				if card.Zone != ZoneInPlay || !g.player(player).InPlayNamed("Potion") {
					return nil
				}
				ok, err := g.YesNo(player, "Alchemist", "put Alchemist onto your deck?")
				if err != nil || !ok {
					return err
				}
				return g.Topdeck(card, player)
			},
		},
	}
}
