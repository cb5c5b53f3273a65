package game

import "fmt"

// basicCards are added to every game (Platinum and Colony only on request,
// Potion only when a kingdom card needs it).
var basicCards = map[string]bool{
	"Copper": true, "Silver": true, "Gold": true, "Platinum": true, "Potion": true,
	"Estate": true, "Duchy": true, "Province": true, "Colony": true, "Curse": true,
}

// nonSupply are piles set up only when a kingdom card requires them.
var nonSupply = map[string]int{
	"Spoils": 15,
	"Horse":  30,
}

// splitPiles maps a kingdom name to the cards stacked in its pile, top first.
var splitPiles = map[string][]string{
	"Encampment": {"Encampment", "Plunder"},
	"Patrician":  {"Patrician", "Emporium"},
}

// victoryPileSize is the pile size for Victory cards by player count.
func victoryPileSize(players int) int {
	if players <= 2 {
		return 8
	}
	return 12
}

func provinceCount(players int) int {
	switch {
	case players <= 2:
		return 8
	case players <= 4:
		return 12
	default:
		return 3 * players
	}
}

// setupSupply builds every pile for the kingdom.
func (g *Game) setupSupply(kingdom []string, colonies bool) error {
	gs := g.State
	s := gs.Supply
	n := len(gs.Players)

	cards := make([]*Card, 0, len(kingdom))
	for _, name := range kingdom {
		c, err := Lookup(name)
		if err != nil {
			return fmt.Errorf("kingdom: %w", err)
		}
		if c.Pile != "" {
			return fmt.Errorf("kingdom: %s is part of the %s pile", name, c.Pile)
		}
		cards = append(cards, c)
	}

	needPotion := false
	for _, c := range cards {
		if c.Cost.Potions > 0 {
			needPotion = true
		}
	}

	s.Add("Copper", 60-StartCoppers*n, false)
	s.Add("Silver", 40, false)
	s.Add("Gold", 30, false)
	if colonies {
		s.Add("Platinum", 12, false)
	}
	if needPotion {
		s.Add("Potion", 16, false)
	}
	s.Add("Estate", victoryPileSize(n), false)
	s.Add("Duchy", victoryPileSize(n), false)
	s.Add("Province", provinceCount(n), false)
	if colonies {
		s.Add("Colony", victoryPileSize(n), false)
	}
	s.Add("Curse", max(10, 10*(n-1)), false)

	for _, c := range cards {
		size := 10
		if c.Is(TypeVictory) {
			size = victoryPileSize(n)
		}
		if fx := c.effect(); fx.StartingSupply != nil {
			size = fx.StartingSupply(n)
		}
		if stack, ok := splitPiles[c.Name]; ok {
			counts := make([]int, len(stack))
			for i := range counts {
				counts[i] = size / len(stack)
			}
			s.AddSplit(c.Name, stack, counts, false)
		} else {
			s.Add(c.Name, size, false)
		}
	}

	// non-supply piles required by any card that can come into the game
	for _, p := range s.Piles() {
		for _, name := range p.Cards {
			for _, req := range MustLookup(name).Requires {
				count, ok := nonSupply[req]
				if !ok {
					return fmt.Errorf("%s requires unknown pile %q", name, req)
				}
				s.Add(req, count, true)
			}
		}
	}
	return nil
}
