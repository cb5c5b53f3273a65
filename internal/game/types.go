package game

import (
	"fmt"
	"strings"
)

// --- Enums ---

type Phase int

const (
	PhaseNone Phase = iota
	PhaseStart
	PhaseAction
	PhaseBuy
	PhaseCleanup
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhaseAction:
		return "Action Phase"
	case PhaseBuy:
		return "Buy Phase"
	case PhaseCleanup:
		return "Cleanup"
	default:
		return "None"
	}
}

// CardType is a set of type tags. A card may carry several (Action-Attack,
// Treasure-Victory, Action-Duration...).
type CardType uint16

const (
	TypeAction CardType = 1 << iota
	TypeTreasure
	TypeVictory
	TypeCurse
	TypeAttack
	TypeReaction
	TypeDuration
	TypeCommand
)

var cardTypeNames = []struct {
	t    CardType
	name string
}{
	{TypeAction, "Action"},
	{TypeTreasure, "Treasure"},
	{TypeVictory, "Victory"},
	{TypeCurse, "Curse"},
	{TypeAttack, "Attack"},
	{TypeReaction, "Reaction"},
	{TypeDuration, "Duration"},
	{TypeCommand, "Command"},
}

// Has reports whether any tag in o is set.
func (t CardType) Has(o CardType) bool {
	return t&o != 0
}

func (t CardType) String() string {
	var parts []string
	for _, n := range cardTypeNames {
		if t.Has(n.t) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "-")
}

// ZoneType identifies a container a card instance can occupy.
type ZoneType int

const (
	ZoneNone ZoneType = iota // not in the game: still in its pile, or returned to it
	ZoneDeck
	ZoneDiscard
	ZoneHand
	ZoneInPlay
	ZoneDuration
	ZoneMat
	ZoneSetAside
	ZoneTrash
)

func (z ZoneType) String() string {
	switch z {
	case ZoneDeck:
		return "Deck"
	case ZoneDiscard:
		return "Discard"
	case ZoneHand:
		return "Hand"
	case ZoneInPlay:
		return "In Play"
	case ZoneDuration:
		return "Duration"
	case ZoneMat:
		return "Mat"
	case ZoneSetAside:
		return "Set Aside"
	case ZoneTrash:
		return "Trash"
	default:
		return "Supply"
	}
}

// --- Cost ---

// Cost is a card price. Only the coin component is affected by cost
// reductions.
type Cost struct {
	Coins   int
	Potions int
	Debt    int
}

func (c Cost) String() string {
	var parts []string
	if c.Coins > 0 || (c.Potions == 0 && c.Debt == 0) {
		parts = append(parts, fmt.Sprintf("$%d", c.Coins))
	}
	if c.Potions > 0 {
		parts = append(parts, strings.Repeat("P", c.Potions))
	}
	if c.Debt > 0 {
		parts = append(parts, fmt.Sprintf("%dD", c.Debt))
	}
	return strings.Join(parts, "")
}

// LessThan reports whether c is strictly cheaper than o: no component greater
// and at least one smaller.
func (c Cost) LessThan(o Cost) bool {
	if c.Coins > o.Coins || c.Potions > o.Potions || c.Debt > o.Debt {
		return false
	}
	return c != o
}

// AtMost reports whether every component of c is within o.
func (c Cost) AtMost(o Cost) bool {
	return c.Coins <= o.Coins && c.Potions <= o.Potions && c.Debt <= o.Debt
}

// Plus returns c with coins added.
func (c Cost) Plus(coins int) Cost {
	c.Coins += coins
	return c
}

// Stats are the fixed "+" bonuses printed on a card, applied by the play
// dispatcher before the card's own effect.
type Stats struct {
	Cards     int
	Actions   int
	Buys      int
	Coins     int
	Potions   int
	VP        int // victory point tokens
	Coffers   int
	Villagers int
}

// --- Card definition (static, from the registry) ---

type Card struct {
	Name        string
	Description string
	Cost        Cost
	Types       CardType
	Stats       Stats
	VP          int      // printed victory points
	Pile        string   // supply pile this card is gained from; defaults to Name
	Requires    []string // non-supply piles this card needs set up (Spoils, Horse)
	Effect      *CardEffect
}

func (c *Card) String() string {
	return c.Name
}

// Is reports whether the card carries any of the given type tags.
func (c *Card) Is(t CardType) bool {
	return c.Types.Has(t)
}

// PileName returns the supply pile key for this card.
func (c *Card) PileName() string {
	if c.Pile != "" {
		return c.Pile
	}
	return c.Name
}

// effect returns the card's hook table, or the shared empty table.
func (c *Card) effect() *CardEffect {
	if c.Effect == nil {
		return noEffect
	}
	return c.Effect
}

// --- CardInstance (runtime card in some zone) ---

type CardInstance struct {
	Card  *Card
	ID    int // unique instance ID within a game
	Owner int // player index who owns this card

	Zone ZoneType
	Mat  string // mat name when Zone == ZoneMat
	Host int    // host instance ID when Zone == ZoneSetAside
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(none)"
	}
	return fmt.Sprintf("%s#%d", ci.Card.Name, ci.ID)
}

// Name returns the card's printed name.
func (ci *CardInstance) Name() string {
	return ci.Card.Name
}

// Is reports whether the instance's card carries any of the given type tags.
func (ci *CardInstance) Is(t CardType) bool {
	return ci.Card.Is(t)
}

func names(cards []*CardInstance) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Card.Name
	}
	return out
}
