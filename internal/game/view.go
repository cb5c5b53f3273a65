package game

// View is the read-only window a strategy gets on the game. Slices it returns
// are copies; strategies must not act on the engine except through Choice.
type View struct {
	g  *Game
	me int
}

// NewView builds a view of g for player me.
func NewView(g *Game, me int) *View {
	return &View{g: g, me: me}
}

func (v *View) Me() int { return v.me }
func (v *View) Turn() int { return v.g.State.Turn }
func (v *View) Phase() Phase { return v.g.State.Phase }
func (v *View) Current() int { return v.g.State.Current }
func (v *View) NumPlayers() int { return len(v.g.State.Players) }
func (v *View) GameID() string { return v.g.State.ID.String() }
func (v *View) Over() bool { return v.g.State.Over }
func (v *View) Coins() int { return v.player().Coins }
func (v *View) Actions() int { return v.player().Actions }
func (v *View) Buys() int { return v.player().Buys }
func (v *View) Potions() int { return v.player().Potions }
func (v *View) Debt() int { return v.player().Debt }
func (v *View) Coffers() int { return v.player().Coffers }
func (v *View) Villagers() int { return v.player().Villagers }
func (v *View) VPTokens() int { return v.player().VPTokens }
func (v *View) DeckCount() int { return len(v.player().Deck) }
func (v *View) DiscardCount() int { return len(v.player().Discard) }

func (v *View) player() *Player {
	return v.g.State.Players[v.me]
}

// Hand returns the viewer's hand.
func (v *View) Hand() []*CardInstance {
	return append([]*CardInstance(nil), v.player().Hand...)
}

// InPlay returns the viewer's cards in play, including duration cards.
func (v *View) InPlay() []*CardInstance {
	return v.player().InPlayCards()
}

// Owned returns the names of every card the viewer owns.
func (v *View) Owned() []string {
	return names(v.player().OwnedCards())
}

// CountOwned counts the viewer's cards named name.
func (v *View) CountOwned(name string) int {
	n := 0
	for _, c := range v.player().OwnedCards() {
		if c.Card.Name == name {
			n++
		}
	}
	return n
}

// HandSize returns the hand size of player p.
func (v *View) HandSize(p int) int {
	return len(v.g.State.Players[p].Hand)
}

// Supply returns remaining counts by pile name.
func (v *View) Supply() map[string]int {
	return v.g.State.Supply.Counts()
}

// PileCount returns how many copies of card remain.
func (v *View) PileCount(card string) int {
	return v.g.State.Supply.Count(card)
}

// EmptyPiles returns the number of exhausted supply piles.
func (v *View) EmptyPiles() int {
	return v.g.State.Supply.EmptyPiles()
}

// Cost returns the viewer's effective cost of card.
func (v *View) Cost(card string) Cost {
	return v.g.CostOf(card, v.me)
}

// Score returns player p's current victory points.
func (v *View) Score(p int) int {
	return v.g.Score(p)
}

// Trash returns the names of the trashed cards.
func (v *View) Trash() []string {
	return names(v.g.State.Trash)
}

// Kingdom returns the names of the supply piles in setup order.
func (v *View) Kingdom() []string {
	var out []string
	for _, p := range v.g.State.Supply.Piles() {
		out = append(out, p.Name)
	}
	return out
}
