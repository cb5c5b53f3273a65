package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peterkuimelis/deckbuilder/internal/bot"
	"github.com/peterkuimelis/deckbuilder/internal/game"
	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// DecisionType identifies what kind of decision the game engine is waiting
// for. It is a game.DecisionKind name, or game_over.
type DecisionType string

const DecisionGameOver DecisionType = "game_over"

// AgentSeat is the seat the MCP agent plays; bots fill the rest.
const AgentSeat = 0

// PendingDecision represents a decision the game engine is waiting for.
type PendingDecision struct {
	Type    DecisionType `json:"type"`
	Player  int          `json:"player"`
	State   *StateView   `json:"state"`
	Source  string       `json:"source,omitempty"`
	Prompt  string       `json:"prompt,omitempty"`
	Options []OptionView `json:"options,omitempty"`
	Min     int          `json:"min"`
	Max     int          `json:"max"`

	decision game.Decision
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	SessionID string       `json:"session_id,omitempty"`
	Events    []EventView  `json:"events"`
	State     *StateView   `json:"state,omitempty"`
	Pending   *PendingView `json:"pending,omitempty"`
	GameOver  bool         `json:"game_over"`
	Winners   []int        `json:"winners,omitempty"`
	Scores    []int        `json:"scores,omitempty"`
	Result    string       `json:"result,omitempty"`
}

// PendingView is the pending decision as presented in the tool response JSON.
type PendingView struct {
	Type    DecisionType `json:"type"`
	Source  string       `json:"source,omitempty"`
	Prompt  string       `json:"prompt,omitempty"`
	Options []OptionView `json:"options"`
	Min     int          `json:"min"`
	Max     int          `json:"max"`
}

// SessionConfig describes the game an agent asked for.
type SessionConfig struct {
	Kingdom   game.KingdomEntry
	Opponents []string // bot strategy per opponent seat
	Seed      int64
	MaxTurns  int
	Logger    *zap.Logger
}

// GameSession holds the state of a single MCP game session.
type GameSession struct {
	ID     uuid.UUID
	game   *game.Game
	agent  *MCPStrategy
	cancel context.CancelFunc
	logger *zap.Logger

	pendingCh chan *PendingDecision

	mu             sync.Mutex
	currentPending *PendingDecision
	events         []EventView
	gameOver       bool
	winners        []int
	scores         []int
	result         string
}

// NewGameSession seats the agent against bots and starts the game in its
// own goroutine. The game runs until it ends or Close is called.
func NewGameSession(cfg SessionConfig) (*GameSession, error) {
	if len(cfg.Opponents) == 0 {
		return nil, fmt.Errorf("need at least one opponent")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sess := &GameSession{
		ID:        uuid.New(),
		pendingCh: make(chan *PendingDecision, 1),
	}
	sess.logger = logger.With(zap.String("session", sess.ID.String()))
	sess.agent = NewMCPStrategy(AgentSeat, sess)

	strategies := []game.Strategy{sess.agent}
	for i, name := range cfg.Opponents {
		s, err := bot.New(name, cfg.Kingdom.Cards, cfg.Seed+int64(i)+1)
		if err != nil {
			return nil, fmt.Errorf("opponent %d: %w", i+1, err)
		}
		strategies = append(strategies, s)
	}

	g, err := game.NewGame(game.GameConfig{
		Kingdom:  cfg.Kingdom.Cards,
		Colonies: cfg.Kingdom.Colonies,
		Seed:     cfg.Seed,
		MaxTurns: cfg.MaxTurns,
		Logger:   log.NewZapLogger(sess.logger, false),
	}, strategies...)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	sess.game = g

	ctx, cancel := context.WithCancel(context.Background())
	sess.cancel = cancel
	sess.logger.Info("game started",
		zap.String("kingdom", cfg.Kingdom.Name),
		zap.Strings("opponents", cfg.Opponents),
		zap.Int64("seed", cfg.Seed),
	)

	// Start the game in a goroutine
	go func() {
		winners, err := g.Run(ctx)

		result := g.State.Result
		if err != nil {
			result = fmt.Sprintf("error: %v", err)
			sess.logger.Warn("game aborted", zap.Error(err))
		}

		sess.mu.Lock()
		sess.gameOver = true
		sess.winners = winners
		sess.scores = g.Scores()
		sess.result = result
		sess.mu.Unlock()

		final := &PendingDecision{
			Type:   DecisionGameOver,
			Player: AgentSeat,
			State:  BuildStateView(game.NewView(g, AgentSeat)),
		}
		select {
		case sess.pendingCh <- final:
		case <-ctx.Done():
		}
	}()

	return sess, nil
}

// Close stops the game goroutine.
func (s *GameSession) Close() {
	s.cancel()
}

// Over reports whether the game has finished.
func (s *GameSession) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver
}

// appendEvent adds an event to the session's event log. Thread-safe.
func (s *GameSession) appendEvent(ev EventView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// drainEvents returns all accumulated events and clears the buffer.
func (s *GameSession) drainEvents() []EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	if events == nil {
		events = []EventView{}
	}
	return events
}

// pending returns the decision the agent owes, or nil.
func (s *GameSession) pending() *PendingDecision {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPending
}

// waitForPending blocks until the next decision arrives from the game engine,
// then builds a ToolResponse with accumulated events + the pending decision.
func (s *GameSession) waitForPending(ctx context.Context) (*ToolResponse, error) {
	var pending *PendingDecision
	select {
	case pending = <-s.pendingCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.Lock()
	s.currentPending = pending
	s.mu.Unlock()

	return s.response(), nil
}

// response describes the session as it stands.
func (s *GameSession) response() *ToolResponse {
	resp := &ToolResponse{
		SessionID: s.ID.String(),
		Events:    s.drainEvents(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.currentPending
	if pending == nil {
		return resp
	}
	resp.State = pending.State

	if pending.Type == DecisionGameOver {
		resp.GameOver = true
		resp.Winners = s.winners
		resp.Scores = s.scores
		resp.Result = s.result
		return resp
	}

	resp.Pending = &PendingView{
		Type:    pending.Type,
		Source:  pending.Source,
		Prompt:  pending.Prompt,
		Options: pending.Options,
		Min:     pending.Min,
		Max:     pending.Max,
	}
	return resp
}

// answer validates choice against the pending decision and hands it to the
// game goroutine.
func (s *GameSession) answer(ctx context.Context, choice game.Choice) error {
	pending := s.pending()
	if pending == nil || pending.Type == DecisionGameOver {
		return fmt.Errorf("no pending decision")
	}
	if err := pending.decision.Validate(choice); err != nil {
		return err
	}

	s.mu.Lock()
	s.currentPending = nil
	s.mu.Unlock()

	select {
	case s.agent.responseCh <- choice:
		return nil
	case <-ctx.Done():
		s.mu.Lock()
		s.currentPending = pending
		s.mu.Unlock()
		return ctx.Err()
	}
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
