// Package bot holds computer strategies for seating in a game.
package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/peterkuimelis/deckbuilder/internal/game"
)

// Names lists the strategies New knows.
var Names = []string{"bigmoney", "engine", "random"}

// New builds a strategy by name. Engine strategies take the kingdom cards they
// should pick up; seed drives the random strategy.
func New(name string, kingdom []string, seed int64) (game.Strategy, error) {
	switch strings.ToLower(name) {
	case "bigmoney", "big-money", "":
		return NewBigMoney(), nil
	case "engine":
		return NewEngine(EngineWants(kingdom)...), nil
	case "random":
		return NewRandom(seed), nil
	}
	return nil, fmt.Errorf("unknown strategy %q (have %s)", name, strings.Join(Names, ", "))
}

// Want asks an Engine to own up to Max copies of a kingdom card.
type Want struct {
	Name string
	Max  int
}

// EngineWants picks a default shopping list from a kingdom: up to two
// copies of each of the two priciest Action cards.
func EngineWants(kingdom []string) []Want {
	var actions []*game.Card
	for _, name := range kingdom {
		c, err := game.Lookup(name)
		if err != nil || !c.Is(game.TypeAction) || c.Cost.Debt > 0 || c.Cost.Potions > 0 {
			continue
		}
		actions = append(actions, c)
	}
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Cost.Coins > actions[j].Cost.Coins
	})
	var out []Want
	for i := 0; i < len(actions) && i < 2; i++ {
		out = append(out, Want{Name: actions[i].Name, Max: 2})
	}
	return out
}

// junkRank orders cards for trashing and discarding, lowest first.
func junkRank(c *game.Card) int {
	switch {
	case c.Is(game.TypeCurse):
		return 0
	case c.Is(game.TypeVictory) && !c.Is(game.TypeAction|game.TypeTreasure):
		return 1
	case c.Name == "Copper":
		return 2
	case c.Is(game.TypeTreasure):
		return 4
	default:
		return 3
	}
}

// byJunk returns the non-decline option indexes of d, least valuable first.
func byJunk(d game.Decision) []int {
	var idx []int
	for i, o := range d.Options {
		if !o.Decline && o.Card != nil {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ca, cb := d.Options[idx[a]].Card.Card, d.Options[idx[b]].Card.Card
		if ra, rb := junkRank(ca), junkRank(cb); ra != rb {
			return ra < rb
		}
		return ca.Cost.Coins < cb.Cost.Coins
	})
	return idx
}

// mostExpensive returns the index of the priciest non-decline supply option,
// skipping Curses, or -1.
func mostExpensive(d game.Decision) int {
	best := -1
	for i, o := range d.Options {
		if o.Decline || o.Name == "Curse" {
			continue
		}
		if best < 0 || o.Cost.Coins > d.Options[best].Cost.Coins ||
			(o.Cost.Coins == d.Options[best].Cost.Coins && o.Cost.Potions > d.Options[best].Cost.Potions) {
			best = i
		}
	}
	return best
}

// first returns the first n non-decline option indexes.
func first(d game.Decision, n int) []int {
	var out []int
	for i, o := range d.Options {
		if len(out) == n {
			break
		}
		if !o.Decline {
			out = append(out, i)
		}
	}
	return out
}

// decline picks the decline option, or the smallest legal answer when there is
// none.
func decline(d game.Decision) game.Choice {
	if i := d.DeclineIndex(); i >= 0 {
		return game.Pick(i)
	}
	return game.Choice{Picks: first(d, d.Min)}
}

// sensible answers every decision except buys the way a cautious player
// would. Strategies override the kinds they care about.
func sensible(view *game.View, d game.Decision) game.Choice {
	switch d.Kind {
	case game.DecideAction:
		return playAction(d)

	case game.DecideTreasure, game.DecidePlayTwice, game.DecideReaction, game.DecideReveal:
		if p := first(d, 1); len(p) > 0 {
			return game.Choice{Picks: p}
		}

	case game.DecideYesNo:
		if i := d.Find("yes"); i >= 0 {
			return game.Pick(i)
		}

	case game.DecideTrash:
		// only junk goes voluntarily
		var picks []int
		for _, i := range byJunk(d) {
			c := d.Options[i].Card.Card
			if len(picks) < d.Min || (len(picks) < d.Max && junkRank(c) <= 1) {
				picks = append(picks, i)
			}
		}
		if len(picks) == 0 {
			return decline(d)
		}
		return game.Choice{Picks: picks}

	case game.DecideDiscard, game.DecideTopdeck:
		var picks []int
		for _, i := range byJunk(d) {
			c := d.Options[i].Card.Card
			if len(picks) < d.Min || (d.Kind == game.DecideDiscard && len(picks) < d.Max && junkRank(c) <= 1) {
				picks = append(picks, i)
			}
		}
		if len(picks) == 0 {
			return decline(d)
		}
		return game.Choice{Picks: picks}

	case game.DecideOrderTopdeck:
		return game.Choice{Picks: first(d, len(d.Options))}

	case game.DecideGain:
		if i := mostExpensive(d); i >= 0 {
			return game.Pick(i)
		}

	case game.DecideSetAside:
		// keep the best card for later
		idx := byJunk(d)
		if len(idx) > 0 {
			return game.Pick(idx[len(idx)-1])
		}

	case game.DecideVillager, game.DecideCoffers:
		return game.Pick(len(d.Options) - 1)

	case game.DecideMode:
		return game.Choice{Picks: first(d, d.Min)}
	}
	return decline(d)
}

// playAction prefers cards that give actions back, then the priciest.
func playAction(d game.Decision) game.Choice {
	best := -1
	score := func(o game.Option) int {
		c := o.Card.Card
		s := c.Cost.Coins
		if c.Stats.Actions > 0 {
			s += 100
		}
		return s
	}
	for i, o := range d.Options {
		if o.Decline || o.Card == nil {
			continue
		}
		if best < 0 || score(o) > score(d.Options[best]) {
			best = i
		}
	}
	if best < 0 {
		return decline(d)
	}
	return game.Pick(best)
}
