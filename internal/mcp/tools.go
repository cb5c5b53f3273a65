package mcp

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/peterkuimelis/deckbuilder/internal/game"
)

var (
	// activeSession is the singleton game session (one per stdio process).
	activeSession *GameSession
	sessionMu     sync.Mutex

	// kingdomsFile is the path to the kingdoms YAML file, set by main.
	kingdomsFile = "kingdoms.yaml"

	// logger receives session logs, set by main.
	logger = zap.NewNop()
)

// SetKingdomsFile sets the path to the kingdoms YAML file.
func SetKingdomsFile(path string) {
	kingdomsFile = path
}

// SetLogger sets the logger used for sessions.
func SetLogger(l *zap.Logger) {
	logger = l
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(decideTool(), handleDecide)
	s.AddTool(getGameStateTool(), handleGetGameState)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new deck-building game. You play seat 0 against bots. "+
			"Returns the initial game state and your first pending decision."),
		mcp.WithString("kingdom", mcp.Description("Kingdom name or 1-based number from kingdoms.yaml (default 1)")),
		mcp.WithString("opponents", mcp.Description("Comma-separated bot strategies: bigmoney, engine or random (default bigmoney)")),
		mcp.WithNumber("seed", mcp.Description("Shuffle seed; 0 picks one from the clock")),
		mcp.WithNumber("max_turns", mcp.Description("Turn cap over all players (0 = engine default)")),
	)
}

func decideTool() mcp.Tool {
	return mcp.NewTool("decide",
		mcp.WithDescription("Answer the pending decision with option indexes. Pick between min and max options; "+
			"the '(none)' option declines and must be picked alone. "+
			"For order decisions list every option, top card first."),
		mcp.WithString("indices", mcp.Required(), mcp.Description("Space-separated 0-based option indexes (e.g. '0 2 3'), or empty string for no selection")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current game state, accumulated events, and pending decision without submitting a response. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if sess := currentSession(); sess != nil && !sess.Over() {
		return mcp.NewToolResultError("A game is already running. Only one game at a time is supported."), nil
	}

	kf, err := game.ParseKingdomFile(kingdomsFile)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load kingdoms: %v", err), nil
	}
	kingdom, err := kf.Resolve(request.GetString("kingdom", "1"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var opponents []string
	for _, name := range strings.Split(request.GetString("opponents", "bigmoney"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			opponents = append(opponents, name)
		}
	}
	if len(opponents) == 0 || len(opponents) > 5 {
		return mcp.NewToolResultError("opponents must name 1 to 5 bots"), nil
	}

	seed := int64(request.GetInt("seed", 0))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess, err := NewGameSession(SessionConfig{
		Kingdom:   kingdom,
		Opponents: opponents,
		Seed:      seed,
		MaxTurns:  request.GetInt("max_turns", 0),
		Logger:    logger,
	})
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	sessionMu.Lock()
	if activeSession != nil {
		activeSession.Close()
	}
	activeSession = sess
	sessionMu.Unlock()

	resp, err := sess.waitForPending(ctx)
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for first decision: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleDecide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := currentSession()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	pending := sess.pending()
	if pending == nil || pending.Type == DecisionGameOver {
		return mcp.NewToolResultError("No pending decision."), nil
	}

	indicesStr := request.GetString("indices", "")
	var indices []int
	for _, p := range strings.Fields(indicesStr) {
		idx, err := strconv.Atoi(p)
		if err != nil {
			return mcp.NewToolResultErrorf("Invalid index '%s': must be an integer.", p), nil
		}
		if idx < 0 || idx >= len(pending.Options) {
			return mcp.NewToolResultErrorf("Index %d out of range. Must be 0-%d.", idx, len(pending.Options)-1), nil
		}
		indices = append(indices, idx)
	}

	if err := sess.answer(ctx, game.Choice{Picks: indices}); err != nil {
		return mcp.NewToolResultErrorf("Invalid answer: %v", err), nil
	}

	resp, err := sess.waitForPending(ctx)
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := currentSession()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.response())), nil
}

func currentSession() *GameSession {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	return activeSession
}
