package game

import "fmt"

// Score returns player's victory points: printed VP and VP hooks over every
// owned card, plus VP tokens.
func (g *Game) Score(player int) int {
	p := g.State.Players[player]
	total := p.VPTokens
	for _, c := range p.OwnedCards() {
		total += c.Card.VP
		if fx := c.Card.effect(); fx.VictoryPoints != nil {
			total += fx.VictoryPoints(g, player)
		}
	}
	return total
}

// Scores returns every player's score in seating order.
func (g *Game) Scores() []int {
	out := make([]int, len(g.State.Players))
	for i := range out {
		out[i] = g.Score(i)
	}
	return out
}

// Winners returns the players with the highest score. Among them, those who
// took fewer turns win.
func (g *Game) Winners() []int {
	scores := g.Scores()
	best := scores[0]
	for _, s := range scores {
		best = max(best, s)
	}
	fewest := -1
	for i, s := range scores {
		t := g.State.Players[i].TurnsTaken
		if s == best && (fewest < 0 || t < fewest) {
			fewest = t
		}
	}
	var out []int
	for i, s := range scores {
		if s == best && g.State.Players[i].TurnsTaken == fewest {
			out = append(out, i)
		}
	}
	return out
}

// GameOver reports whether an end condition holds: the Province or Colony
// pile is empty, or enough supply piles are (three, four with 5+ players).
func (g *Game) GameOver() (bool, string) {
	s := g.State.Supply
	if s.Has("Province") && s.Pile("Province").Count() == 0 {
		return true, "Provinces gone"
	}
	if s.Has("Colony") && s.Pile("Colony").Count() == 0 {
		return true, "Colonies gone"
	}
	limit := 3
	if len(g.State.Players) >= 5 {
		limit = 4
	}
	if n := s.EmptyPiles(); n >= limit {
		return true, fmt.Sprintf("%d supply piles empty", n)
	}
	return false, ""
}
