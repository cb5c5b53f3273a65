package game

import (
	"errors"
	"fmt"
)

var (
	ErrSupplyExhausted = errors.New("supply pile exhausted")
	ErrNotInSupply     = errors.New("card is not in the supply")
	ErrSplitOrder      = errors.New("split pile: card is not on top")
	ErrUnknownCard     = errors.New("unknown card")
	ErrNotInHand       = errors.New("card is not in hand")
	ErrNoStrategy      = errors.New("no strategy for player")
)

// ZoneError reports an attempt to move a card from a zone it is not in. It is
// always a programmer error in the engine or in a card definition.
type ZoneError struct {
	Card *CardInstance
	From Location
	At   Location // where the card actually is
}

func (e *ZoneError) Error() string {
	return fmt.Sprintf("zone error: %s expected in %s, found in %s", e.Card, e.From, e.At)
}

// Is lets errors.Is(err, ErrNotInHand) match a hand move failure.
func (e *ZoneError) Is(target error) bool {
	return target == ErrNotInHand && e.From.Zone == ZoneHand
}
