package log

// EventType enumerates all observable game events. It doubles as the event
// category for structured sinks.
type EventType int

const (
	EventPhaseChange EventType = iota
	EventNewTurn
	EventPlay
	EventDraw
	EventShuffle
	EventDeckOut
	EventGain
	EventBuy
	EventTrash
	EventDiscard
	EventTopdeck
	EventReveal
	EventSetAside
	EventReturnToPile
	EventAttack
	EventReaction
	EventBlocked
	EventDuration
	EventTokens
	EventFallback
	EventSupplyEmpty
	EventCleanup
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventPhaseChange:
		return "PhaseChange"
	case EventNewTurn:
		return "NewTurn"
	case EventPlay:
		return "Play"
	case EventDraw:
		return "Draw"
	case EventShuffle:
		return "Shuffle"
	case EventDeckOut:
		return "DeckOut"
	case EventGain:
		return "Gain"
	case EventBuy:
		return "Buy"
	case EventTrash:
		return "Trash"
	case EventDiscard:
		return "Discard"
	case EventTopdeck:
		return "Topdeck"
	case EventReveal:
		return "Reveal"
	case EventSetAside:
		return "SetAside"
	case EventReturnToPile:
		return "ReturnToPile"
	case EventAttack:
		return "Attack"
	case EventReaction:
		return "Reaction"
	case EventBlocked:
		return "Blocked"
	case EventDuration:
		return "Duration"
	case EventTokens:
		return "Tokens"
	case EventFallback:
		return "Fallback"
	case EventSupplyEmpty:
		return "SupplyEmpty"
	case EventCleanup:
		return "Cleanup"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int            // monotonic sequence number
	Turn    int            // which turn (1-based)
	Phase   string         // current phase name (e.g. "Buy Phase")
	Player  int            // acting player index
	Type    EventType      // event category
	Card    string         // card name (if applicable)
	Details string         // human-readable detail string
	Context map[string]any // extra structured fields, may be nil
}

// With returns a copy of the event with key set in its context.
func (e GameEvent) With(key string, value any) GameEvent {
	ctx := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	e.Context = ctx
	return e
}
