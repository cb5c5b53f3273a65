package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// EventsForCard returns all events of type t naming the given card.
func (l *MemoryLogger) EventsForCard(t EventType, card string) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t && e.Card == card {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- DiscardLogger: keeps nothing, for batch simulation ---

type DiscardLogger struct{}

func (DiscardLogger) Log(GameEvent)       {}
func (DiscardLogger) Events() []GameEvent { return nil }

// --- Formatting ---

// PlayerName returns "P1", "P2", ... for display.
func PlayerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	if phase == "" {
		phase = "          "
	}
	for len(phase) < 14 {
		phase += " "
	}

	return fmt.Sprintf("T%-3d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewPhaseChangeEvent(turn int, phase string, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase → %s", phase),
	}
}

func NewTurnEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Start",
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, PlayerName(player)),
	}
}

func NewPlayEvent(turn int, phase string, player int, cardName string, times int) GameEvent {
	details := fmt.Sprintf("%s plays %s", PlayerName(player), cardName)
	if times > 1 {
		details = fmt.Sprintf("%s plays %s (x%d)", PlayerName(player), cardName, times)
	}
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventPlay,
		Card:    cardName,
		Details: details,
	}
}

func NewDrawEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s", PlayerName(player), cardName),
	}
}

func NewShuffleEvent(turn int, phase string, player int, size int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventShuffle,
		Details: fmt.Sprintf("%s shuffles %d cards into their deck", PlayerName(player), size),
	}
}

func NewDeckOutEvent(turn int, phase string, player int, wanted, got int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDeckOut,
		Details: fmt.Sprintf("%s could only draw %d of %d cards", PlayerName(player), got, wanted),
	}
}

func NewGainEvent(turn int, phase string, player int, cardName string, dest string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventGain,
		Card:    cardName,
		Details: fmt.Sprintf("%s gains %s (to %s)", PlayerName(player), cardName, dest),
	}
}

func NewBuyEvent(turn int, phase string, player int, cardName string, paid string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventBuy,
		Card:    cardName,
		Details: fmt.Sprintf("%s buys %s for %s", PlayerName(player), cardName, paid),
	}
}

func NewTrashEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventTrash,
		Card:    cardName,
		Details: fmt.Sprintf("%s trashes %s", PlayerName(player), cardName),
	}
}

func NewDiscardEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s discards %s", PlayerName(player), cardName),
	}
}

func NewTopdeckEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventTopdeck,
		Card:    cardName,
		Details: fmt.Sprintf("%s puts %s onto their deck", PlayerName(player), cardName),
	}
}

func NewRevealEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventReveal,
		Card:    cardName,
		Details: fmt.Sprintf("%s reveals %s", PlayerName(player), cardName),
	}
}

func NewSetAsideEvent(turn int, phase string, player int, cardName string, host string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventSetAside,
		Card:    cardName,
		Details: fmt.Sprintf("%s sets aside %s with %s", PlayerName(player), cardName, host),
	}
}

func NewReturnToPileEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventReturnToPile,
		Card:    cardName,
		Details: fmt.Sprintf("%s returns %s to its pile", PlayerName(player), cardName),
	}
}

func NewAttackEvent(turn int, phase string, attacker int, target int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  attacker,
		Type:    EventAttack,
		Card:    cardName,
		Details: fmt.Sprintf("%s attacks %s with %s", PlayerName(attacker), PlayerName(target), cardName),
		Context: map[string]any{"target": target},
	}
}

func NewReactionEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventReaction,
		Card:    cardName,
		Details: fmt.Sprintf("%s reacts with %s", PlayerName(player), cardName),
	}
}

func NewBlockedEvent(turn int, phase string, player int, attackCard string, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventBlocked,
		Card:    attackCard,
		Details: fmt.Sprintf("%s is unaffected by %s (%s)", PlayerName(player), attackCard, reason),
	}
}

func NewDurationEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDuration,
		Card:    cardName,
		Details: fmt.Sprintf("%s resolves duration effect of %s", PlayerName(player), cardName),
	}
}

func NewTokensEvent(turn int, phase string, player int, kind string, delta int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventTokens,
		Card:    cardName,
		Details: fmt.Sprintf("%s %+d %s (%s)", PlayerName(player), delta, kind, cardName),
		Context: map[string]any{"kind": kind, "delta": delta},
	}
}

func NewFallbackEvent(turn int, phase string, player int, decision string, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventFallback,
		Details: fmt.Sprintf("%s %s decision invalid (%s); using fallback", PlayerName(player), decision, reason),
		Context: map[string]any{"decision": decision},
	}
}

func NewSupplyEmptyEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventSupplyEmpty,
		Card:    cardName,
		Details: fmt.Sprintf("%s cannot gain %s: none left", PlayerName(player), cardName),
	}
}

func NewCleanupEvent(turn int, player int, handSize int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Cleanup",
		Player:  player,
		Type:    EventCleanup,
		Details: fmt.Sprintf("%s cleans up and draws %d", PlayerName(player), handSize),
	}
}

func NewGameOverEvent(turn int, winners []int, result string) GameEvent {
	player := -1
	if len(winners) == 1 {
		player = winners[0]
	}
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventGameOver,
		Details: "Game over: " + result,
		Context: map[string]any{"winners": winners},
	}
}
