package game

import "fmt"

func init() {
	register(
		Cellar, Chapel, Moat, Harbinger, Merchant, Vassal, Village, Workshop,
		Bureaucrat, Gardens, Militia, Moneylender, Poacher, Remodel, Smithy, ThroneRoom,
		Bandit, CouncilRoom, Festival, Laboratory, Library, Market, Mine, Sentry, Witch,
		Artisan,
	)
}

// Cellar (Base): +1 Action. Discard any number of cards, then draw that many.
func Cellar() *Card {
	return &Card{
		Name:        "Cellar",
		Description: "+1 Action. Discard any number of cards, then draw that many.",
		Cost:        Cost{Coins: 2},
		Types:       TypeAction,
		Stats:       Stats{Actions: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				n := len(g.player(player).Hand)
				discarded, err := g.DiscardFromHand(player, "Cellar", 0, n)
				if err != nil {
					return err
				}
				g.Draw(player, len(discarded))
				return nil
			},
		},
	}
}

// Chapel (Base): trash up to 4 cards from your hand.
func Chapel() *Card {
	return &Card{
		Name:        "Chapel",
		Description: "Trash up to 4 cards from your hand.",
		Cost:        Cost{Coins: 2},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				_, err := g.TrashFromHand(player, "Chapel", 0, 4, nil)
				return err
			},
		},
	}
}

// Moat (Base): +2 Cards. Reaction: reveal to be unaffected by an attack.
func Moat() *Card {
	return &Card{
		Name:        "Moat",
		Description: "+2 Cards. When another player plays an Attack card, you may first reveal this from your hand, to be unaffected by it.",
		Cost:        Cost{Coins: 2},
		Types:       TypeAction | TypeReaction,
		Stats:       Stats{Cards: 2},
		Effect: &CardEffect{
			React: func(g *Game, card *CardInstance, player int, attack *CardInstance) (bool, error) {
				return true, nil
			},
		},
	}
}

// Harbinger (Base): +1 Card +1 Action. Look through your discard pile; you may
// put a card from it onto your deck.
func Harbinger() *Card {
	return &Card{
		Name:        "Harbinger",
		Description: "+1 Card, +1 Action. Look through your discard pile. You may put a card from it onto your deck.",
		Cost:        Cost{Coins: 3},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				discard := append([]*CardInstance(nil), g.player(player).Discard...)
				pick, err := g.ChooseCard(player, DecideTopdeck, "Harbinger", "put a card from your discard onto your deck", discard, true)
				if err != nil || pick == nil {
					return err
				}
				return g.Topdeck(pick, player)
			},
		},
	}
}

// Merchant (Base): +1 Card +1 Action. The first time you play a Silver this
// turn, +$1.
func Merchant() *Card {
	return &Card{
		Name:        "Merchant",
		Description: "+1 Card, +1 Action. The first time you play a Silver this turn, +$1.",
		Cost:        Cost{Coins: 3},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				p := g.player(player)
				if p.TurnFlags["silvers"] == 0 {
					p.TurnFlags["merchants"]++
				}
				return nil
			},
		},
	}
}

// Vassal (Base): +$2. Discard the top card of your deck; if it's an Action
// card, you may play it.
func Vassal() *Card {
	return &Card{
		Name:        "Vassal",
		Description: "+$2. Discard the top card of your deck. If it's an Action card, you may play it.",
		Cost:        Cost{Coins: 3},
		Types:       TypeAction,
		Stats:       Stats{Coins: 2},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				top := g.RevealTop(player, 1)
				if len(top) == 0 {
					return nil
				}
				c := top[0]
				if err := g.DiscardCard(c, player); err != nil {
					return err
				}
				if !c.Is(TypeAction) {
					return nil
				}
				ok, err := g.YesNo(player, "Vassal", fmt.Sprintf("play %s?", c.Card.Name))
				if err != nil || !ok {
					return err
				}
				if err := g.State.Move(c, At(player, ZoneDiscard), At(player, ZoneInPlay)); err != nil {
					return err
				}
				if err := g.Play(c, player); err != nil {
					return err
				}
				g.settle(c, player)
				return nil
			},
		},
	}
}

// Village (Base): +1 Card +2 Actions.
func Village() *Card {
	return &Card{
		Name:        "Village",
		Description: "+1 Card, +2 Actions.",
		Cost:        Cost{Coins: 3},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 2},
	}
}

// Workshop (Base): gain a card costing up to $4.
func Workshop() *Card {
	return &Card{
		Name:        "Workshop",
		Description: "Gain a card costing up to $4.",
		Cost:        Cost{Coins: 3},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				_, err := g.GainUpTo(player, "Workshop", Cost{Coins: 4}, nil, ZoneDiscard)
				return err
			},
		},
	}
}

// Bureaucrat (Base): gain a Silver onto your deck. Each other player reveals a
// Victory card from hand and puts it onto their deck.
func Bureaucrat() *Card {
	return &Card{
		Name:        "Bureaucrat",
		Description: "Gain a Silver onto your deck. Each other player reveals a Victory card from their hand and puts it onto their deck (or reveals a hand with no Victory cards).",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction | TypeAttack,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				if _, err := g.Gain(player, "Silver", ZoneDeck); err != nil {
					return err
				}
				return g.AttackOpponents(player, card, func(target int) error {
					p := g.player(target)
					victories := p.HandOf(TypeVictory)
					if len(victories) == 0 {
						for _, c := range p.Hand {
							g.Reveal(c, target)
						}
						return nil
					}
					pick, err := g.ChooseCard(target, DecideTopdeck, "Bureaucrat", "put a Victory card onto your deck", victories, false)
					if err != nil || pick == nil {
						return err
					}
					g.Reveal(pick, target)
					return g.Topdeck(pick, target)
				})
			},
		},
	}
}

// Gardens (Base): worth 1 VP per 10 cards you have (round down).
func Gardens() *Card {
	return &Card{
		Name:        "Gardens",
		Description: "Worth 1 VP per 10 cards you have (round down).",
		Cost:        Cost{Coins: 4},
		Types:       TypeVictory,
		Effect: &CardEffect{
			VictoryPoints: func(g *Game, player int) int {
				return len(g.player(player).OwnedCards()) / 10
			},
		},
	}
}

// Militia (Base): +$2. Each other player discards down to 3 cards in hand.
func Militia() *Card {
	return &Card{
		Name:        "Militia",
		Description: "+$2. Each other player discards down to 3 cards in hand.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction | TypeAttack,
		Stats:       Stats{Coins: 2},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				return g.AttackOpponents(player, card, func(target int) error {
					return g.DiscardDownTo(target, 3, "Militia")
				})
			},
		},
	}
}

// Moneylender (Base): you may trash a Copper from your hand for +$3.
func Moneylender() *Card {
	return &Card{
		Name:        "Moneylender",
		Description: "You may trash a Copper from your hand for +$3.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				copper := g.player(player).FindInHand("Copper")
				if copper == nil {
					return nil
				}
				ok, err := g.YesNo(player, "Moneylender", "trash a Copper for +$3?")
				if err != nil || !ok {
					return err
				}
				if err := g.Trash(copper, player); err != nil {
					return err
				}
				g.player(player).Coins += 3
				return nil
			},
		},
	}
}

// Poacher (Base): +1 Card +1 Action +$1. Discard a card per empty supply pile.
func Poacher() *Card {
	return &Card{
		Name:        "Poacher",
		Description: "+1 Card, +1 Action, +$1. Discard a card per empty Supply pile.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1, Coins: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				n := min(g.State.Supply.EmptyPiles(), len(g.player(player).Hand))
				if n == 0 {
					return nil
				}
				_, err := g.DiscardFromHand(player, "Poacher", n, n)
				return err
			},
		},
	}
}

// Remodel (Base): trash a card from your hand; gain a card costing up to $2
// more than it.
func Remodel() *Card {
	return &Card{
		Name:        "Remodel",
		Description: "Trash a card from your hand. Gain a card costing up to $2 more than it.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				return remodel(g, player, "Remodel", 2, nil, ZoneDiscard)
			},
		},
	}
}

// remodel trashes a chosen card matching keep from hand and gains one costing
// up to plus more, also matching keep.
func remodel(g *Game, player int, source string, plus int, keep func(*Card) bool, dest ZoneType) error {
	hand := g.player(player).Hand
	if keep != nil {
		hand = filterCards(hand, func(c *CardInstance) bool { return keep(c.Card) })
	}
	pick, err := g.ChooseCard(player, DecideTrash, source, "trash a card", append([]*CardInstance(nil), hand...), false)
	if err != nil || pick == nil {
		return err
	}
	limit := g.EffectiveCost(pick.Card, player).Plus(plus)
	if err := g.Trash(pick, player); err != nil {
		return err
	}
	_, err = g.GainUpTo(player, source, limit, keep, dest)
	return err
}

// Smithy (Base): +3 Cards.
func Smithy() *Card {
	return &Card{
		Name:        "Smithy",
		Description: "+3 Cards.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction,
		Stats:       Stats{Cards: 3},
	}
}

// ThroneRoom (Base): you may play an Action card from your hand twice.
func ThroneRoom() *Card {
	return &Card{
		Name:        "Throne Room",
		Description: "You may play an Action card from your hand twice.",
		Cost:        Cost{Coins: 4},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: multiplier(2, nil),
		},
	}
}

// multiplier builds the Play hook of a card that plays an action from hand
// times times.
func multiplier(times int, keep func(*CardInstance) bool) Hook {
	return func(g *Game, card *CardInstance, player int) error {
		target, err := g.ChooseActionInHand(player, card, keep)
		if err != nil || target == nil {
			return err
		}
		return g.MultiPlay(card, target, player, times)
	}
}

// Bandit (Base): gain a Gold. Each other player reveals the top 2 cards of
// their deck, trashes a revealed Treasure other than Copper, and discards the
// rest.
func Bandit() *Card {
	return &Card{
		Name:        "Bandit",
		Description: "Gain a Gold. Each other player reveals the top 2 cards of their deck, trashes a revealed Treasure other than Copper, and discards the rest.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction | TypeAttack,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				if _, err := g.Gain(player, "Gold", ZoneDiscard); err != nil {
					return err
				}
				return g.AttackOpponents(player, card, func(target int) error {
					top := g.RevealTop(target, 2)
					loot := filterCards(top, func(c *CardInstance) bool {
						return c.Is(TypeTreasure) && c.Card.Name != "Copper"
					})
					pick, err := g.ChooseCard(target, DecideTrash, "Bandit", "trash a revealed Treasure", loot, false)
					if err != nil {
						return err
					}
					for _, c := range top {
						if pick != nil && c.ID == pick.ID {
							if err := g.Trash(c, target); err != nil {
								return err
							}
							continue
						}
						if err := g.DiscardCard(c, target); err != nil {
							return err
						}
					}
					return nil
				})
			},
		},
	}
}

// CouncilRoom (Base): +4 Cards +1 Buy. Each other player draws a card.
func CouncilRoom() *Card {
	return &Card{
		Name:        "Council Room",
		Description: "+4 Cards, +1 Buy. Each other player draws a card.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Cards: 4, Buys: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				for _, o := range g.State.Opponents(player) {
					g.Draw(o, 1)
				}
				return nil
			},
		},
	}
}

// Festival (Base): +2 Actions +1 Buy +$2.
func Festival() *Card {
	return &Card{
		Name:        "Festival",
		Description: "+2 Actions, +1 Buy, +$2.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Actions: 2, Buys: 1, Coins: 2},
	}
}

// Laboratory (Base): +2 Cards +1 Action.
func Laboratory() *Card {
	return &Card{
		Name:        "Laboratory",
		Description: "+2 Cards, +1 Action.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Cards: 2, Actions: 1},
	}
}

// Library (Base): draw until you have 7 cards in hand, skipping any Action
// cards you choose to; set those aside, discarding them afterwards.
func Library() *Card {
	return &Card{
		Name:        "Library",
		Description: "Draw until you have 7 cards in hand, skipping any Action cards you choose to; set those aside, discarding them afterwards.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				p := g.player(player)
				for len(p.Hand) < 7 {
					drawn := g.Draw(player, 1)
					if len(drawn) == 0 {
						break
					}
					c := drawn[0]
					if !c.Is(TypeAction) {
						continue
					}
					skip, err := g.YesNo(player, "Library", fmt.Sprintf("set aside %s?", c.Card.Name))
					if err != nil {
						return err
					}
					if skip {
						if err := g.SetAside(c, card, player); err != nil {
							return err
						}
					}
				}
				return g.DiscardAll(g.SetAsideCards(card), player)
			},
		},
	}
}

// Market (Base): +1 Card +1 Action +1 Buy +$1.
func Market() *Card {
	return &Card{
		Name:        "Market",
		Description: "+1 Card, +1 Action, +1 Buy, +$1.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1, Buys: 1, Coins: 1},
	}
}

// Mine (Base): you may trash a Treasure from your hand. Gain a Treasure to
// your hand costing up to $3 more than it.
func Mine() *Card {
	return &Card{
		Name:        "Mine",
		Description: "You may trash a Treasure from your hand. Gain a Treasure to your hand costing up to $3 more than it.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				treasures := g.player(player).HandOf(TypeTreasure)
				pick, err := g.ChooseCard(player, DecideTrash, "Mine", "trash a Treasure", treasures, true)
				if err != nil || pick == nil {
					return err
				}
				limit := g.EffectiveCost(pick.Card, player).Plus(3)
				if err := g.Trash(pick, player); err != nil {
					return err
				}
				_, err = g.GainUpTo(player, "Mine", limit, cardIsType(TypeTreasure), ZoneHand)
				return err
			},
		},
	}
}

// Sentry (Base): +1 Card +1 Action. Look at the top 2 cards of your deck.
// Trash and/or discard any number of them; put the rest back in any order.
func Sentry() *Card {
	return &Card{
		Name:        "Sentry",
		Description: "+1 Card, +1 Action. Look at the top 2 cards of your deck. Trash and/or discard any number of them. Put the rest back on top in any order.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				top := g.RevealTop(player, 2)
				trashed, err := g.ChooseCards(player, DecideTrash, "Sentry", "trash any of these", top, 0, len(top))
				if err != nil {
					return err
				}
				for _, c := range trashed {
					if err := g.Trash(c, player); err != nil {
						return err
					}
				}
				rest := filterCards(top, func(c *CardInstance) bool { return c.Zone == ZoneDeck })
				discarded, err := g.ChooseCards(player, DecideDiscard, "Sentry", "discard any of these", rest, 0, len(rest))
				if err != nil {
					return err
				}
				if err := g.DiscardAll(discarded, player); err != nil {
					return err
				}
				rest = filterCards(rest, func(c *CardInstance) bool { return c.Zone == ZoneDeck })
				return g.TopdeckOrdered(rest, player, "Sentry")
			},
		},
	}
}

// Witch (Base): +2 Cards. Each other player gains a Curse.
func Witch() *Card {
	return &Card{
		Name:        "Witch",
		Description: "+2 Cards. Each other player gains a Curse.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction | TypeAttack,
		Stats:       Stats{Cards: 2},
		Effect: &CardEffect{
			Play: cursing,
		},
	}
}

// cursing gives each other player a Curse.
func cursing(g *Game, card *CardInstance, player int) error {
	return g.AttackOpponents(player, card, func(target int) error {
		_, err := g.Gain(target, "Curse", ZoneDiscard)
		return err
	})
}

// Artisan (Base): gain a card to your hand costing up to $5. Put a card from
// your hand onto your deck.
func Artisan() *Card {
	return &Card{
		Name:        "Artisan",
		Description: "Gain a card to your hand costing up to $5. Put a card from your hand onto your deck.",
		Cost:        Cost{Coins: 6},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				if _, err := g.GainUpTo(player, "Artisan", Cost{Coins: 5}, nil, ZoneHand); err != nil {
					return err
				}
				hand := append([]*CardInstance(nil), g.player(player).Hand...)
				pick, err := g.ChooseCard(player, DecideTopdeck, "Artisan", "put a card onto your deck", hand, false)
				if err != nil || pick == nil {
					return err
				}
				return g.Topdeck(pick, player)
			},
		},
	}
}
