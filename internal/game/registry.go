package game

import (
	"fmt"
	"sort"
)

// CardRegistry maps card names to their constructor functions. It is filled
// by the cards_*.go files.
var CardRegistry = map[string]func() *Card{}

// built caches one definition per name; definitions are never mutated.
var built = map[string]*Card{}

func register(ctors ...func() *Card) {
	for _, ctor := range ctors {
		c := ctor()
		if _, dup := CardRegistry[c.Name]; dup {
			panic(fmt.Sprintf("card registered twice: %q", c.Name))
		}
		CardRegistry[c.Name] = ctor
		built[c.Name] = c
	}
}

// Lookup returns the definition of the named card.
func Lookup(name string) (*Card, error) {
	c, ok := built[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCard)
	}
	return c, nil
}

// MustLookup is Lookup for setup code, where an unknown name is a programmer
// error. Panics if the card is not found.
func MustLookup(name string) *Card {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// CardNames returns every registered card name, sorted.
func CardNames() []string {
	out := make([]string, 0, len(CardRegistry))
	for name := range CardRegistry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// KingdomCards returns the registered names that can form a kingdom pile.
func KingdomCards() []string {
	var out []string
	for _, name := range CardNames() {
		c := built[name]
		if basicCards[name] || c.Pile != "" || nonSupply[name] > 0 {
			continue
		}
		out = append(out, name)
	}
	return out
}
