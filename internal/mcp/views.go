package mcp

import (
	"sort"

	"github.com/peterkuimelis/deckbuilder/internal/game"
	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// EventView is a simplified game event for the agent.
type EventView struct {
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// OptionView is a numbered choice of a pending decision.
type OptionView struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Cost  string `json:"cost,omitempty"`
	Types string `json:"types,omitempty"`
	Text  string `json:"text,omitempty"`
}

// PileView is one supply pile.
type PileView struct {
	Card  string `json:"card"`
	Count int    `json:"count"`
	Cost  string `json:"cost"`
}

// PlayerView shows another seat.
type PlayerView struct {
	Seat     int `json:"seat"`
	HandSize int `json:"hand_size"`
	Score    int `json:"score"`
}

// StateView is the game state from the agent's seat.
type StateView struct {
	GameID     string       `json:"game_id"`
	Turn       int          `json:"turn"`
	Phase      string       `json:"phase"`
	IsYourTurn bool         `json:"is_your_turn"`
	Seat       int          `json:"seat"`
	Hand       []string     `json:"hand"`
	InPlay     []string     `json:"in_play,omitempty"`
	DeckCount  int          `json:"deck_count"`
	Discard    int          `json:"discard_count"`
	Actions    int          `json:"actions"`
	Buys       int          `json:"buys"`
	Coins      int          `json:"coins"`
	Potions    int          `json:"potions,omitempty"`
	Debt       int          `json:"debt,omitempty"`
	Coffers    int          `json:"coffers,omitempty"`
	Villagers  int          `json:"villagers,omitempty"`
	VPTokens   int          `json:"vp_tokens,omitempty"`
	Score      int          `json:"score"`
	Opponents  []PlayerView `json:"opponents"`
	Supply     []PileView   `json:"supply"`
	EmptyPiles int          `json:"empty_piles"`
	Trash      []string     `json:"trash,omitempty"`
}

// BuildStateView renders view for the agent. Call it from the game goroutine.
func BuildStateView(v *game.View) *StateView {
	me := v.Me()
	sv := &StateView{
		GameID:     v.GameID(),
		Turn:       v.Turn(),
		Phase:      v.Phase().String(),
		IsYourTurn: v.Current() == me,
		Seat:       me,
		Hand:       names(v.Hand()),
		InPlay:     names(v.InPlay()),
		DeckCount:  v.DeckCount(),
		Discard:    v.DiscardCount(),
		Actions:    v.Actions(),
		Buys:       v.Buys(),
		Coins:      v.Coins(),
		Potions:    v.Potions(),
		Debt:       v.Debt(),
		Coffers:    v.Coffers(),
		Villagers:  v.Villagers(),
		VPTokens:   v.VPTokens(),
		Score:      v.Score(me),
		EmptyPiles: v.EmptyPiles(),
		Trash:      v.Trash(),
	}
	for p := 0; p < v.NumPlayers(); p++ {
		if p != me {
			sv.Opponents = append(sv.Opponents, PlayerView{Seat: p, HandSize: v.HandSize(p), Score: v.Score(p)})
		}
	}
	supply := v.Supply()
	piles := make([]string, 0, len(supply))
	for name := range supply {
		piles = append(piles, name)
	}
	sort.Strings(piles)
	for _, name := range piles {
		pv := PileView{Card: name, Count: supply[name]}
		if _, err := game.Lookup(name); err == nil {
			pv.Cost = v.Cost(name).String()
		}
		sv.Supply = append(sv.Supply, pv)
	}
	return sv
}

// BuildOptionViews numbers the options of d.
func BuildOptionViews(d game.Decision) []OptionView {
	views := make([]OptionView, len(d.Options))
	for i, o := range d.Options {
		ov := OptionView{Index: i, Label: o.Label()}
		var card *game.Card
		switch {
		case o.Card != nil:
			card = o.Card.Card
		case o.Name != "" && !o.Decline:
			card, _ = game.Lookup(o.Name)
		}
		if card != nil {
			ov.Types = card.Types.String()
			ov.Text = card.Description
			if o.Card == nil {
				ov.Cost = o.Cost.String()
			}
		}
		views[i] = ov
	}
	return views
}

// BuildEventView converts an event for the agent at seat me. Cards other
// players draw stay hidden.
func BuildEventView(event log.GameEvent, me int) EventView {
	ev := EventView{
		Turn:    event.Turn,
		Phase:   event.Phase,
		Player:  event.Player,
		Type:    event.Type.String(),
		Card:    event.Card,
		Details: event.Details,
	}
	if event.Type == log.EventDraw && event.Player != me {
		ev.Card = ""
		ev.Details = log.PlayerName(event.Player) + " draws a card"
	}
	return ev
}

func names(cards []*game.CardInstance) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Card.Name)
	}
	return out
}
