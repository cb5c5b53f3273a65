package mcp

import (
	"context"

	"github.com/peterkuimelis/deckbuilder/internal/game"
	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// MCPStrategy implements game.Strategy by sending decisions to the MCP
// session's pending channel and blocking on a response channel.
type MCPStrategy struct {
	player     int
	session    *GameSession
	responseCh chan game.Choice
}

// NewMCPStrategy creates a strategy for the given seat.
func NewMCPStrategy(player int, session *GameSession) *MCPStrategy {
	return &MCPStrategy{
		player:     player,
		session:    session,
		responseCh: make(chan game.Choice),
	}
}

// Decide implements game.Strategy.
func (c *MCPStrategy) Decide(ctx context.Context, view *game.View, d game.Decision) (game.Choice, error) {
	pending := &PendingDecision{
		Type:     DecisionType(d.Kind.String()),
		Player:   c.player,
		State:    BuildStateView(view),
		Source:   d.Source,
		Prompt:   d.Prompt,
		Options:  BuildOptionViews(d),
		Min:      d.Min,
		Max:      d.Max,
		decision: d,
	}

	select {
	case c.session.pendingCh <- pending:
	case <-ctx.Done():
		return game.Choice{}, ctx.Err()
	}

	select {
	case choice := <-c.responseCh:
		return choice, nil
	case <-ctx.Done():
		return game.Choice{}, ctx.Err()
	}
}

// Notify implements game.Strategy.
func (c *MCPStrategy) Notify(ctx context.Context, event log.GameEvent) error {
	c.session.appendEvent(BuildEventView(event, c.player))
	return nil
}
