package game

import (
	"fmt"
	"slices"
)

// Location addresses one zone slice. Mat names a mat for ZoneMat; Host is the
// instance ID of the card holding a set-aside card.
type Location struct {
	Player int
	Zone   ZoneType
	Mat    string
	Host   int
}

func (l Location) String() string {
	switch l.Zone {
	case ZoneTrash:
		return "Trash"
	case ZoneNone:
		return "Supply"
	case ZoneMat:
		return fmt.Sprintf("P%d %s mat", l.Player+1, l.Mat)
	case ZoneSetAside:
		return fmt.Sprintf("P%d set aside on #%d", l.Player+1, l.Host)
	default:
		return fmt.Sprintf("P%d %s", l.Player+1, l.Zone)
	}
}

// At builds a player-zone location.
func At(player int, zone ZoneType) Location {
	return Location{Player: player, Zone: zone}
}

// OnMat builds a mat location.
func OnMat(player int, mat string) Location {
	return Location{Player: player, Zone: ZoneMat, Mat: mat}
}

// SetAsideOn builds the location of cards set aside on host.
func SetAsideOn(host *CardInstance) Location {
	return Location{Player: host.Owner, Zone: ZoneSetAside, Host: host.ID}
}

// TrashLocation is the shared trash pile.
var TrashLocation = Location{Player: -1, Zone: ZoneTrash}

// Locate returns where card currently is, from its own bookkeeping.
func (gs *GameState) Locate(card *CardInstance) Location {
	switch card.Zone {
	case ZoneTrash:
		return TrashLocation
	case ZoneNone:
		return Location{Player: -1, Zone: ZoneNone}
	}
	return Location{Player: card.Owner, Zone: card.Zone, Mat: card.Mat, Host: card.Host}
}

// slice returns a pointer to the slice backing loc, or nil for the supply and
// for mats, which live in a map and are handled by remove and place.
func (gs *GameState) slice(loc Location) *[]*CardInstance {
	if loc.Zone == ZoneTrash {
		return &gs.Trash
	}
	if loc.Player < 0 || loc.Player >= len(gs.Players) {
		return nil
	}
	p := gs.Players[loc.Player]
	switch loc.Zone {
	case ZoneDeck:
		return &p.Deck
	case ZoneDiscard:
		return &p.Discard
	case ZoneHand:
		return &p.Hand
	case ZoneInPlay:
		return &p.InPlay
	case ZoneDuration:
		return &p.Duration
	case ZoneSetAside:
		st, ok := p.aux[loc.Host]
		if !ok {
			st = &CardState{Counters: make(map[string]int)}
			p.aux[loc.Host] = st
		}
		return &st.SetAside
	}
	return nil
}

// Move transfers card from one zone to another, placing it on top of the
// destination. It fails with *ZoneError if card is not in from. A card leaving
// the duration zone loses any pending duration effect and multiplier links.
func (gs *GameState) Move(card *CardInstance, from, to Location) error {
	if err := gs.remove(card, from); err != nil {
		return err
	}
	gs.place(card, to)
	return nil
}

// remove takes card out of from. Moving from the supply (ZoneNone) only
// checks the card is not already placed.
func (gs *GameState) remove(card *CardInstance, from Location) error {
	if from.Zone == ZoneNone {
		if card.Zone != ZoneNone {
			return &ZoneError{Card: card, From: from, At: gs.Locate(card)}
		}
		return nil
	}
	if from.Zone == ZoneMat {
		p := gs.Players[from.Player]
		mat := p.Mats[from.Mat]
		i := indexOf(mat, card)
		if i < 0 {
			return &ZoneError{Card: card, From: from, At: gs.Locate(card)}
		}
		p.Mats[from.Mat] = slices.Delete(mat, i, i+1)
		card.Mat = ""
		return nil
	}
	zone := gs.slice(from)
	if zone == nil {
		return &ZoneError{Card: card, From: from, At: gs.Locate(card)}
	}
	i := indexOf(*zone, card)
	if i < 0 {
		return &ZoneError{Card: card, From: from, At: gs.Locate(card)}
	}
	*zone = slices.Delete(*zone, i, i+1)

	if from.Zone == ZoneDuration {
		if st := gs.Players[from.Player].peekState(card.ID); st != nil {
			st.Pending = 0
			st.LinkedTo = nil
		}
	}
	return nil
}

// place puts card on top of to and updates its bookkeeping.
func (gs *GameState) place(card *CardInstance, to Location) {
	card.Zone = to.Zone
	card.Mat = to.Mat
	card.Host = to.Host
	switch to.Zone {
	case ZoneNone:
		return
	case ZoneMat:
		p := gs.Players[to.Player]
		p.Mats[to.Mat] = append(p.Mats[to.Mat], card)
		return
	}
	zone := gs.slice(to)
	*zone = append(*zone, card)
}

func indexOf(cards []*CardInstance, card *CardInstance) int {
	for i, c := range cards {
		if c.ID == card.ID {
			return i
		}
	}
	return -1
}

// Shuffle moves the player's discard pile beneath their deck in an order chosen
// by the game's shuffler. Returns the number of cards shuffled.
func (gs *GameState) Shuffle(player int) int {
	p := gs.Players[player]
	n := len(p.Discard)
	if n == 0 {
		return 0
	}
	pile := p.Discard
	p.Discard = nil
	gs.rng.Shuffle(n, func(i, j int) { pile[i], pile[j] = pile[j], pile[i] })
	for _, c := range pile {
		c.Zone = ZoneDeck
	}
	// the deck's top is its last element, so the shuffled cards go in front
	p.Deck = append(pile, p.Deck...)
	return n
}

// drawOne moves the top card of the deck to hand, shuffling the discard pile in
// first if the deck is empty. Returns nil when both are empty.
func (gs *GameState) drawOne(player int) (card *CardInstance, shuffled int) {
	p := gs.Players[player]
	if len(p.Deck) == 0 {
		shuffled = gs.Shuffle(player)
		if len(p.Deck) == 0 {
			return nil, shuffled
		}
	}
	card = p.Deck[len(p.Deck)-1]
	p.Deck = p.Deck[:len(p.Deck)-1]
	card.Zone = ZoneHand
	p.Hand = append(p.Hand, card)
	return card, shuffled
}

// ensureDeck shuffles the discard pile under the deck if the deck holds fewer
// than n cards. Returns the number of cards shuffled.
func (gs *GameState) ensureDeck(player, n int) int {
	p := gs.Players[player]
	if len(p.Deck) >= n {
		return 0
	}
	return gs.Shuffle(player)
}

// TopOfDeck returns up to n cards from the top of the deck, topmost first,
// without moving them.
func (gs *GameState) TopOfDeck(player, n int) []*CardInstance {
	deck := gs.Players[player].Deck
	var out []*CardInstance
	for i := len(deck) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, deck[i])
	}
	return out
}

// Discard moves card to its owner's discard pile without firing any hook.
func (gs *GameState) Discard(card *CardInstance) error {
	return gs.Move(card, gs.Locate(card), At(card.Owner, ZoneDiscard))
}

// CheckInvariants verifies that every card instance sits in exactly one zone
// and that its bookkeeping matches the zone holding it.
func (gs *GameState) CheckInvariants() error {
	seen := make(map[int]Location)
	check := func(cards []*CardInstance, loc Location) error {
		for _, c := range cards {
			if prev, dup := seen[c.ID]; dup {
				return fmt.Errorf("card %s in both %s and %s", c, prev, loc)
			}
			seen[c.ID] = loc
			if c.Zone != loc.Zone {
				return fmt.Errorf("card %s in %s records zone %s", c, loc, c.Zone)
			}
			if loc.Zone != ZoneTrash && c.Owner != loc.Player {
				return fmt.Errorf("card %s owned by P%d found in %s", c, c.Owner+1, loc)
			}
		}
		return nil
	}
	for i, p := range gs.Players {
		for _, z := range []ZoneType{ZoneDeck, ZoneDiscard, ZoneHand, ZoneInPlay, ZoneDuration} {
			if err := check(*gs.slice(At(i, z)), At(i, z)); err != nil {
				return err
			}
		}
		for name, mat := range p.Mats {
			if err := check(mat, OnMat(i, name)); err != nil {
				return err
			}
		}
		for host, st := range p.aux {
			if err := check(st.SetAside, Location{Player: i, Zone: ZoneSetAside, Host: host}); err != nil {
				return err
			}
		}
	}
	return check(gs.Trash, TrashLocation)
}
