package game

func init() {
	register(
		Encampment, Plunder, Patrician, Emporium, Engineer, Crown, Archive,
		Groundskeeper,
	)
}

// Encampment (Empires): +2 Cards +2 Actions. You may reveal a Gold or Plunder
// from your hand. If you don't, set this aside and return it to the Supply at
// the start of Clean-up.
func Encampment() *Card {
	return &Card{
		Name:        "Encampment",
		Description: "+2 Cards, +2 Actions. You may reveal a Gold or Plunder from your hand. If you don't, set this aside, and return it to the Supply at the start of Clean-up.",
		Cost:        Cost{Coins: 2},
		Types:       TypeAction,
		Stats:       Stats{Cards: 2, Actions: 2},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				p := g.player(player)
				shown := p.FindInHand("Gold")
				if shown == nil {
					shown = p.FindInHand("Plunder")
				}
				if shown != nil {
					ok, err := g.YesNo(player, "Encampment", "reveal "+shown.Card.Name+" to keep Encampment?")
					if err != nil {
						return err
					}
					if ok {
						g.Reveal(shown, player)
						return nil
					}
				}
				p.State(card).Counters["return"] = 1
				return nil
			},
			OnCleanup: func(g *Game, card *CardInstance, player int) error {
				st := g.player(player).peekState(card.ID)
				if st == nil || st.Counters["return"] == 0 {
					return nil
				}
				st.Counters["return"] = 0
				return g.Refund(card)
			},
		},
	}
}

// Plunder (Empires): +$2 +1 VP. Bottom of the Encampment pile.
func Plunder() *Card {
	return &Card{
		Name:        "Plunder",
		Description: "+$2, +1 VP.",
		Cost:        Cost{Coins: 5},
		Types:       TypeTreasure,
		Stats:       Stats{Coins: 2, VP: 1},
		Pile:        "Encampment",
	}
}

// Patrician (Empires): +1 Card +1 Action. Reveal the top card of your deck.
// If it costs $5 or more, put it into your hand.
func Patrician() *Card {
	return &Card{
		Name:        "Patrician",
		Description: "+1 Card, +1 Action. Reveal the top card of your deck. If it costs $5 or more, put it into your hand.",
		Cost:        Cost{Coins: 2},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				top := g.RevealTop(player, 1)
				if len(top) == 0 || g.EffectiveCost(top[0].Card, player).Coins < 5 {
					return nil
				}
				return g.ToHand(top[0])
			},
		},
	}
}

// Emporium (Empires): +1 Card +1 Action +$1. When you gain this, if you have
// at least 5 Action cards in play, +2 VP. Bottom of the Patrician pile.
func Emporium() *Card {
	return &Card{
		Name:        "Emporium",
		Description: "+1 Card, +1 Action, +$1. When you gain this, if you have at least 5 Action cards in play, +2 VP.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1, Coins: 1},
		Pile:        "Patrician",
		Effect: &CardEffect{
			OnGain: func(g *Game, card *CardInstance, player int) error {
				if g.player(player).CountInPlay(TypeAction) >= 5 {
					g.AddVP(player, 2, card)
				}
				return nil
			},
		},
	}
}

// Engineer (Empires): gain a card costing up to $4. You may trash this. If
// you do, gain a card costing up to $4.
func Engineer() *Card {
	return &Card{
		Name:        "Engineer",
		Description: "Gain a card costing up to $4. You may trash this. If you do, gain a card costing up to $4.",
		Cost:        Cost{Debt: 4},
		Types:       TypeAction,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				if _, err := g.GainUpTo(player, "Engineer", Cost{Coins: 4}, nil, ZoneDiscard); err != nil {
					return err
				}
				if card.Zone != ZoneInPlay {
					return nil
				}
				ok, err := g.YesNo(player, "Engineer", "trash Engineer to gain another card?")
				if err != nil || !ok {
					return err
				}
				if err := g.Trash(card, player); err != nil {
					return err
				}
				_, err = g.GainUpTo(player, "Engineer", Cost{Coins: 4}, nil, ZoneDiscard)
				return err
			},
		},
	}
}

// Crown (Empires): if it's your Action phase, you may play an Action from
// your hand twice. If it's your Buy phase, you may play a Treasure from your
// hand twice.
func Crown() *Card {
	return &Card{
		Name:        "Crown",
		Description: "If it's your Action phase, you may play an Action from your hand twice. If it's your Buy phase, you may play a Treasure from your hand twice.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction | TypeTreasure,
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				var target *CardInstance
				var err error
				switch g.State.Phase {
				case PhaseAction:
					target, err = g.ChooseActionInHand(player, card, nil)
				case PhaseBuy:
					treasures := g.player(player).HandOf(TypeTreasure)
					target, err = g.ChooseCard(player, DecidePlayTwice, "Crown", "choose a treasure to play twice", treasures, true)
				}
				if err != nil || target == nil {
					return err
				}
				return g.MultiPlay(card, target, player, 2)
			},
		},
	}
}

// Archive (Empires): +1 Action. Set aside the top 3 cards of your deck face
// down. Now and at the start of your next two turns, put one into your hand.
func Archive() *Card {
	return &Card{
		Name:        "Archive",
		Description: "+1 Action. Set aside the top 3 cards of your deck face down (you may look at them). Now and at the start of your next two turns, put one into your hand.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction | TypeDuration,
		Stats:       Stats{Actions: 1},
		Effect: &CardEffect{
			Play: func(g *Game, card *CardInstance, player int) error {
				for _, c := range g.RevealTop(player, 3) {
					if err := g.SetAside(c, card, player); err != nil {
						return err
					}
				}
				return archiveTake(g, card, player)
			},
			OnDuration: func(g *Game, card *CardInstance, player int) error {
				return archiveTake(g, card, player)
			},
		},
	}
}

// archiveTake puts one card set aside on archive into hand, and keeps the
// Archive waiting while more remain than are already queued.
func archiveTake(g *Game, archive *CardInstance, player int) error {
	aside := g.SetAsideCards(archive)
	pick, err := g.ChooseCard(player, DecideSetAside, "Archive", "put a card into your hand", aside, false)
	if err != nil {
		return err
	}
	if pick != nil {
		if err := g.ToHand(pick); err != nil {
			return err
		}
	}
	st := g.player(player).State(archive)
	if len(g.SetAsideCards(archive)) > st.Pending {
		g.QueueDuration(archive, player)
	}
	return nil
}

// Groundskeeper (Empires): +1 Card +1 Action. While this is in play, when you
// gain a Victory card, +1 VP.
func Groundskeeper() *Card {
	return &Card{
		Name:        "Groundskeeper",
		Description: "+1 Card, +1 Action. While this is in play, when you gain a Victory card, +1 VP.",
		Cost:        Cost{Coins: 5},
		Types:       TypeAction,
		Stats:       Stats{Cards: 1, Actions: 1},
		Effect: &CardEffect{
			OnGainInPlay: func(g *Game, card *CardInstance, player int, gained *CardInstance) error {
				if gained.Is(TypeVictory) {
					g.AddVP(player, 1, card)
				}
				return nil
			},
		},
	}
}
