package game

import "fmt"

// Pile is one supply counter. A split pile stacks several card names on one
// counter; Cards[0] is on top and must run out before Cards[1] can be gained.
type Pile struct {
	Name      string
	Cards     []string
	Counts    []int
	NonSupply bool // Spoils, Horse: not bought, not counted for game end
}

// Count returns the number of cards remaining in the pile.
func (p *Pile) Count() int {
	n := 0
	for _, c := range p.Counts {
		n += c
	}
	return n
}

// Top returns the name of the card currently gainable from the pile, or "" if
// the pile is empty.
func (p *Pile) Top() string {
	for i, c := range p.Counts {
		if c > 0 {
			return p.Cards[i]
		}
	}
	return ""
}

func (p *Pile) index(card string) int {
	for i, n := range p.Cards {
		if n == card {
			return i
		}
	}
	return -1
}

// Supply holds every pile of the game in setup order.
type Supply struct {
	piles  []*Pile
	byCard map[string]*Pile
}

func NewSupply() *Supply {
	return &Supply{byCard: make(map[string]*Pile)}
}

// Add registers a single-card pile.
func (s *Supply) Add(card string, count int, nonSupply bool) *Pile {
	return s.AddSplit(card, []string{card}, []int{count}, nonSupply)
}

// AddSplit registers a pile holding several card names, top first.
func (s *Supply) AddSplit(name string, cards []string, counts []int, nonSupply bool) *Pile {
	if p, ok := s.byCard[name]; ok {
		return p
	}
	p := &Pile{Name: name, Cards: cards, Counts: counts, NonSupply: nonSupply}
	s.piles = append(s.piles, p)
	for _, c := range cards {
		s.byCard[c] = p
	}
	return p
}

// Pile returns the pile a card is gained from, or nil.
func (s *Supply) Pile(card string) *Pile {
	return s.byCard[card]
}

// Piles returns all piles in setup order.
func (s *Supply) Piles() []*Pile {
	return s.piles
}

// Has reports whether the card belongs to a pile of this game.
func (s *Supply) Has(card string) bool {
	_, ok := s.byCard[card]
	return ok
}

// Count returns the number of copies of card left. For a split pile this is
// the count of that card's own sub-pile.
func (s *Supply) Count(card string) int {
	p := s.byCard[card]
	if p == nil {
		return 0
	}
	return p.Counts[p.index(card)]
}

// Available reports whether card can be taken right now: its pile is non-empty
// and, for a split pile, it is on top.
func (s *Supply) Available(card string) bool {
	p := s.byCard[card]
	return p != nil && p.Top() == card
}

// take removes one copy of card from its pile.
func (s *Supply) take(card string) error {
	p := s.byCard[card]
	if p == nil {
		return fmt.Errorf("%s: %w", card, ErrNotInSupply)
	}
	if p.Count() == 0 {
		return fmt.Errorf("%s: %w", card, ErrSupplyExhausted)
	}
	if p.Top() != card {
		return fmt.Errorf("%s under %s: %w", card, p.Top(), ErrSplitOrder)
	}
	p.Counts[p.index(card)]--
	return nil
}

// refund returns one copy of card to its pile.
func (s *Supply) refund(card string) error {
	p := s.byCard[card]
	if p == nil {
		return fmt.Errorf("%s: %w", card, ErrNotInSupply)
	}
	p.Counts[p.index(card)]++
	return nil
}

// EmptyPiles counts the exhausted supply piles. Non-supply piles are ignored.
func (s *Supply) EmptyPiles() int {
	n := 0
	for _, p := range s.piles {
		if !p.NonSupply && p.Count() == 0 {
			n++
		}
	}
	return n
}

// Counts returns a snapshot of pile name to remaining count.
func (s *Supply) Counts() map[string]int {
	out := make(map[string]int, len(s.piles))
	for _, p := range s.piles {
		out[p.Name] = p.Count()
	}
	return out
}

// Tops returns the gainable card of every non-empty supply pile, in setup
// order. Non-supply piles are excluded.
func (s *Supply) Tops() []string {
	var out []string
	for _, p := range s.piles {
		if p.NonSupply {
			continue
		}
		if t := p.Top(); t != "" {
			out = append(out, t)
		}
	}
	return out
}
