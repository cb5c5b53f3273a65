package game

func init() {
	register(
		Courtyard, ShantyTown, Steward, SecretChamber, Diplomat, Bridge, Baron,
		Ironworks, Upgrade, Torturer, Harem,
	)
}

// Courtyard (Intrigue): +3 Cards. Put a card from your hand onto your deck.
func Courtyard() *Card {
	return &Card{
		Name:        "Courtyard",
		Description: "+3 Cards. Put a card from your hand onto your deck.",
		Cost:        Cost{Coins: 2},
		Types:       TypeAction,
		Stats:       Stats{Cards: 3},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				hand := append([]*CardInstance(nil), g.player(player).Hand...)
				pick, err := g.ChooseCard(player, DecideTopdeck, "Courtyard", "put a card onto your deck", hand, false)
				if err != nil || pick == nil {
					return err
				}
				return g.Topdeck(pick, player)
			},
		},
	}
}

// ShantyTown (Intrigue): +2 Actions. Reveal your hand; if you have no Action
// cards in hand, +2 Cards.
func ShantyTown() *Card {
	return &Card{
		Name:        "Shanty Town",
		Description: "+2 Actions. Reveal your hand. If you have no Action cards in hand, +2 Cards.",
		Cost:        Cost{Coins: 3},
		Types:       TypeAction,
		Stats:       Stats{Actions: 2},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				p := g.player(player)
				for _, c := range p.Hand {
					g.Reveal(c, player)
				}
				if len(p.HandOf(TypeAction)) == 0 {
					g.Draw(player, 2)
				}
				return nil
			},
		},
	}
}

// Steward (Intrigue): choose one: +2 Cards; or +$2; or trash 2 cards from
// your hand.
func Steward() *Card {
	return &Card{
		Name:        "Steward",
		Description: "Choose one: +2 Cards; or +$2; or trash 2 cards from your hand.",
		Cost:        Cost{Coins: 3},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				modes, err := g.ChooseMode(player, "Steward", "choose one", []string{"+2 cards", "+$2", "trash 2 cards"}, 1)
				if err != nil {
					return err
				}
				switch modes[0] {
				case "+2 cards":
					g.Draw(player, 2)
				case "+$2":
					g.player(player).Coins += 2
				default:
					n := min(2, len(g.player(player).Hand))
					_, err = g.TrashFromHand(player, "Steward", n, n, nil)
				}
				return err
			},
		},
	}
}

// SecretChamber (Intrigue): discard any number of cards, +$1 per card
// discarded. Reaction: +2 Cards, then put 2 cards from your hand onto your
// deck.
func SecretChamber() *Card {
	return &Card{
		Name:        "Secret Chamber",
		Description: "Discard any number of cards. +$1 per card discarded. When another player plays an Attack card, you may reveal this from your hand. If you do, +2 Cards, then put 2 cards from your hand on top of your deck.",
		Cost:        Cost{Coins: 2},
		Types:       TypeAction | TypeReaction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				discarded, err := g.DiscardFromHand(player, "Secret Chamber", 0, len(g.player(player).Hand))
				if err != nil {
					return err
				}
				g.player(player).Coins += len(discarded)
				return nil
			},
			React: func(g *Game, card *CardInstance, player int, attack *CardInstance) (bool, error) {
				g.Draw(player, 2)
				hand := append([]*CardInstance(nil), g.player(player).Hand...)
				n := min(2, len(hand))
				back, err := g.ChooseCards(player, DecideTopdeck, "Secret Chamber", "put 2 cards onto your deck", hand, n, n)
				if err != nil {
					return false, err
				}
				return false, g.TopdeckOrdered(back, player, "Secret Chamber")
			},
			Composes: true,
		},
	}
}

// Diplomat (Intrigue): +2 Cards. If you have 5 or fewer cards in hand after
// drawing, +2 Actions. Reaction with 5 or more cards in hand: +2 Cards, then
// discard 3.
func Diplomat() *Card {
	return &Card{
		Name:        "Diplomat",
		Description: "+2 Cards. If you have 5 or fewer cards in hand (after drawing), +2 Actions. When another player plays an Attack card, you may first reveal this from a hand of 5 or more cards, to draw 2 cards then discard 3.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction | TypeReaction,
		Stats:       Stats{Cards: 2},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				p := g.player(player)
				if len(p.Hand) <= 5 {
					p.Actions += 2
				}
				return nil
			},
			CanReact: func(g *Game, card *CardInstance, player int) bool {
				return len(g.player(player).Hand) >= 5
			},
			React: func(g *Game, card *CardInstance, player int, attack *CardInstance) (bool, error) {
				g.Draw(player, 2)
				n := min(3, len(g.player(player).Hand))
				_, err := g.DiscardFromHand(player, "Diplomat", n, n)
				return false, err
			},
			Composes: true,
		},
	}
}

// Bridge (Intrigue): +1 Buy +$1. This turn, cards cost $1 less.
func Bridge() *Card {
	return &Card{
		Name:        "Bridge",
		Description: "+1 Buy, +$1. This turn, cards (everywhere) cost $1 less, but not less than $0.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction,
		Stats:       Stats{Buys: 1, Coins: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				g.State.CostReduction++
				return nil
			},
		},
	}
}

// Baron (Intrigue): +1 Buy. You may discard an Estate for +$4. If you don't,
// gain an Estate.
func Baron() *Card {
	return &Card{
		Name:        "Baron",
		Description: "+1 Buy. You may discard an Estate for +$4. If you don't, gain an Estate.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction,
		Stats:       Stats{Buys: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				if estate := g.player(player).FindInHand("Estate"); estate != nil {
					ok, err := g.YesNo(player, "Baron", "discard an Estate for +$4?")
					if err != nil {
						return err
					}
					if ok {
						if err := g.DiscardCard(estate, player); err != nil {
							return err
						}
						g.player(player).Coins += 4
						return nil
					}
				}
				_, err := g.Gain(player, "Estate", ZoneDiscard)
				return err
			},
		},
	}
}

// Ironworks (Intrigue): gain a card costing up to $4. If it's an Action card,
// +1 Action; Treasure, +$1; Victory, +1 Card.
func Ironworks() *Card {
	return &Card{
		Name:        "Ironworks",
		Description: "Gain a card costing up to $4. If the gained card is an... Action card, +1 Action; Treasure card, +$1; Victory card, +1 Card.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				gained, err := g.GainUpTo(player, "Ironworks", Cost{Coins: 4}, nil, ZoneDiscard)
				if err != nil || gained == nil {
					return err
				}
				p := g.player(player)
				if gained.Is(TypeAction) {
					p.Actions++
				}
				if gained.Is(TypeTreasure) {
					p.Coins++
				}
				if gained.Is(TypeVictory) {
					g.Draw(player, 1)
				}
				return nil
			},
		},
	}
}

// Upgrade (Intrigue): +1 Card +1 Action. Trash a card from your hand. Gain a
// card costing exactly $1 more than it.
func Upgrade() *Card {
	return &Card{
		Name:        "Upgrade",
		Description: "+1 Card, +1 Action. Trash a card from your hand. Gain a card costing exactly $1 more than it.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				hand := append([]*CardInstance(nil), g.player(player).Hand...)
				pick, err := g.ChooseCard(player, DecideTrash, "Upgrade", "trash a card", hand, false)
				if err != nil || pick == nil {
					return err
				}
				want := g.EffectiveCost(pick.Card, player).Plus(1)
				if err := g.Trash(pick, player); err != nil {
					return err
				}
				_, err = g.GainUpTo(player, "Upgrade", want, func(c *Card) bool {
					return g.EffectiveCost(c, player) == want
				}, ZoneDiscard)
				return err
			},
		},
	}
}

// Torturer (Intrigue): +3 Cards. Each other player either discards 2 cards
// or gains a Curse to their hand, their choice.
func Torturer() *Card {
	return &Card{
		Name:        "Torturer",
		Description: "+3 Cards. Each other player either discards 2 cards or gains a Curse to their hand, their choice. (They may pick an option they can't do.)",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction | TypeAttack,
		Stats:       Stats{Cards: 3},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				return g.AttackOpponents(player, card, func(target int) error {
					modes, err := g.ChooseMode(target, "Torturer", "discard 2 cards or gain a Curse to your hand", []string{"discard 2", "gain a Curse"}, 1)
					if err != nil {
						return err
					}
					if modes[0] == "discard 2" {
						n := min(2, len(g.player(target).Hand))
						_, err = g.DiscardFromHand(target, "Torturer", n, n)
						return err
					}
					_, err = g.Gain(target, "Curse", ZoneHand)
					return err
				})
			},
		},
	}
}

// Harem (Intrigue): +$2, worth 2 VP.
func Harem() *Card {
	return &Card{
		Name:        "Harem",
		Description: "+$2. 2 VP",
		Cost:        Cost{Coins: 6},
		Types:       TypeTreasure | TypeVictory,
		Stats:       Stats{Coins: 2},
		VP:          2,
	}
}
