package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/deckbuilder/internal/game"
	"github.com/peterkuimelis/deckbuilder/internal/log"
)

var firstGame = game.KingdomEntry{
	Name:  "First Game",
	Cards: []string{"Cellar", "Market", "Merchant", "Militia", "Mine", "Moat", "Remodel", "Smithy", "Village", "Workshop"},
}

// passive declines whenever it may and otherwise takes the first options.
func passive(p *PendingView) []int {
	for _, o := range p.Options {
		if o.Label == "(none)" {
			return []int{o.Index}
		}
	}
	picks := make([]int, 0, p.Min)
	for i := 0; i < p.Min; i++ {
		picks = append(picks, i)
	}
	return picks
}

func TestSessionPlaysToTheEnd(t *testing.T) {
	sess, err := NewGameSession(SessionConfig{Kingdom: firstGame, Opponents: []string{"bigmoney"}, Seed: 3, MaxTurns: 6})
	require.NoError(t, err)
	t.Cleanup(sess.Close)
	ctx := context.Background()

	resp, err := sess.waitForPending(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.Pending)
	require.NotNil(t, resp.State)
	assert.Equal(t, sess.ID.String(), resp.SessionID)
	assert.Equal(t, AgentSeat, resp.State.Seat)
	assert.True(t, resp.State.IsYourTurn)
	assert.Len(t, resp.State.Hand, game.HandSize)
	assert.Len(t, resp.State.Opponents, 1)
	assert.NotEmpty(t, resp.State.Supply)
	assert.NotEmpty(t, resp.Pending.Options)

	for i := 0; i < 500 && !resp.GameOver; i++ {
		require.NotNil(t, resp.Pending)
		require.NoError(t, sess.answer(ctx, game.Choice{Picks: passive(resp.Pending)}))
		resp, err = sess.waitForPending(ctx)
		require.NoError(t, err)
	}
	require.True(t, resp.GameOver)
	assert.Nil(t, resp.Pending)
	assert.Len(t, resp.Scores, 2)
	assert.NotEmpty(t, resp.Winners)
	assert.Contains(t, resp.Result, "turn limit")
	assert.True(t, sess.Over())

	assert.Error(t, sess.answer(ctx, game.Pick(0)), "nothing is pending after the end")
}

func TestSessionRejectsInvalidAnswers(t *testing.T) {
	sess, err := NewGameSession(SessionConfig{Kingdom: firstGame, Opponents: []string{"random"}, Seed: 9})
	require.NoError(t, err)
	t.Cleanup(sess.Close)
	ctx := context.Background()

	resp, err := sess.waitForPending(ctx)
	require.NoError(t, err)
	n := len(resp.Pending.Options)

	assert.Error(t, sess.answer(ctx, game.Choice{Picks: []int{n}}))
	assert.Error(t, sess.answer(ctx, game.Choice{Picks: []int{0, 0}}))
	assert.NotNil(t, sess.pending(), "a rejected answer leaves the decision pending")

	state := sess.response()
	assert.Equal(t, resp.Pending, state.Pending)
	assert.Empty(t, state.Events, "events were drained by the first response")
}

func TestSessionClose(t *testing.T) {
	sess, err := NewGameSession(SessionConfig{Kingdom: firstGame, Opponents: []string{"bigmoney"}, Seed: 4})
	require.NoError(t, err)
	_, err = sess.waitForPending(context.Background())
	require.NoError(t, err)

	sess.Close()
	assert.Eventually(t, sess.Over, time.Second, 10*time.Millisecond)
	sess.mu.Lock()
	assert.Contains(t, sess.result, "context canceled")
	sess.mu.Unlock()
}

func TestNewGameSessionErrors(t *testing.T) {
	_, err := NewGameSession(SessionConfig{Kingdom: firstGame})
	assert.Error(t, err)
	_, err = NewGameSession(SessionConfig{Kingdom: firstGame, Opponents: []string{"oracle"}})
	assert.Error(t, err)
	_, err = NewGameSession(SessionConfig{Kingdom: game.KingdomEntry{Cards: []string{"Warp Gate"}}, Opponents: []string{"bigmoney"}})
	assert.ErrorIs(t, err, game.ErrUnknownCard)
}

func TestWaitForPendingHonorsContext(t *testing.T) {
	sess := &GameSession{pendingCh: make(chan *PendingDecision, 1)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sess.waitForPending(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEventViewHidesOpponentDraws(t *testing.T) {
	mine := BuildEventView(log.NewDrawEvent(1, "Action", 0, "Gold"), 0)
	assert.Equal(t, "Gold", mine.Card)
	assert.Equal(t, "Draw", mine.Type)

	theirs := BuildEventView(log.NewDrawEvent(1, "Action", 1, "Gold"), 0)
	assert.Empty(t, theirs.Card)
	assert.NotContains(t, theirs.Details, "Gold")
}

func TestBuildOptionViews(t *testing.T) {
	gold := game.MustLookup("Gold")
	d := game.Decision{Options: []game.Option{
		{Card: &game.CardInstance{Card: gold}},
		{Name: "Smithy", Cost: game.Cost{Coins: 4}},
		{Amount: 2},
		game.Decline,
	}}
	views := BuildOptionViews(d)
	require.Len(t, views, 4)
	assert.Equal(t, OptionView{Index: 0, Label: "Gold", Types: "Treasure", Text: gold.Description}, views[0])
	assert.Equal(t, "$4", views[1].Cost)
	assert.Equal(t, "Action", views[1].Types)
	assert.Equal(t, OptionView{Index: 2, Label: "2"}, views[2])
	assert.Equal(t, OptionView{Index: 3, Label: "(none)"}, views[3])
}

// --- tool handlers ---

const testKingdoms = `
kingdoms:
  - name: First Game
    cards: [Cellar, Market, Merchant, Militia, Mine, Moat, Remodel, Smithy, Village, Workshop]
`

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	res, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	switch c := any(res.Content[0]).(type) {
	case mcp.TextContent:
		return res, c.Text
	case *mcp.TextContent:
		return res, c.Text
	}
	t.Fatalf("unexpected content %T", res.Content[0])
	return nil, ""
}

func decode(t *testing.T, text string) *ToolResponse {
	t.Helper()
	var resp ToolResponse
	require.NoError(t, json.Unmarshal([]byte(text), &resp), text)
	return &resp
}

func useKingdoms(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kingdoms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testKingdoms), 0o644))
	SetKingdomsFile(path)
	t.Cleanup(func() {
		sessionMu.Lock()
		if activeSession != nil {
			activeSession.Close()
			activeSession = nil
		}
		sessionMu.Unlock()
		SetKingdomsFile("kingdoms.yaml")
	})
}

func joinInts(picks []int) string {
	parts := make([]string, len(picks))
	for i, p := range picks {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, " ")
}

func TestToolsPlayAGame(t *testing.T) {
	useKingdoms(t)

	res, _ := callTool(t, handleDecide, map[string]any{"indices": "0"})
	assert.True(t, res.IsError, "no game yet")
	res, _ = callTool(t, handleGetGameState, nil)
	assert.True(t, res.IsError)

	res, text := callTool(t, handleStartGame, map[string]any{
		"kingdom": "First Game", "opponents": "random", "seed": 12, "max_turns": 4,
	})
	require.False(t, res.IsError, text)
	resp := decode(t, text)
	require.NotNil(t, resp.Pending)
	assert.NotEmpty(t, resp.Events)

	res, _ = callTool(t, handleStartGame, map[string]any{"kingdom": "1"})
	assert.True(t, res.IsError, "one game at a time")

	res, _ = callTool(t, handleDecide, map[string]any{"indices": "x"})
	assert.True(t, res.IsError)
	res, _ = callTool(t, handleDecide, map[string]any{"indices": "99"})
	assert.True(t, res.IsError)

	res, text = callTool(t, handleGetGameState, nil)
	require.False(t, res.IsError)
	state := decode(t, text)
	assert.Equal(t, resp.Pending, state.Pending)
	assert.NotNil(t, state.Events, "events render as an empty list")

	for i := 0; i < 300 && !resp.GameOver; i++ {
		res, text = callTool(t, handleDecide, map[string]any{"indices": joinInts(passive(resp.Pending))})
		require.False(t, res.IsError, text)
		resp = decode(t, text)
	}
	require.True(t, resp.GameOver)
	assert.Len(t, resp.Scores, 2)

	res, _ = callTool(t, handleDecide, map[string]any{"indices": "0"})
	assert.True(t, res.IsError, "nothing pending after the end")

	res, text = callTool(t, handleStartGame, map[string]any{"kingdom": "1", "max_turns": 2})
	require.False(t, res.IsError, "a finished game can be replaced: %s", text)
}

func TestStartGameRejectsBadInput(t *testing.T) {
	useKingdoms(t)

	for _, args := range []map[string]any{
		{"kingdom": "9"},
		{"kingdom": "Nowhere"},
		{"opponents": " , "},
		{"opponents": "a,b,c,d,e,f"},
		{"opponents": "oracle"},
	} {
		res, text := callTool(t, handleStartGame, args)
		assert.True(t, res.IsError, "%v: %s", args, text)
	}

	SetKingdomsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	res, _ := callTool(t, handleStartGame, nil)
	assert.True(t, res.IsError)
}
