package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/peterkuimelis/deckbuilder/internal/config"
	"github.com/peterkuimelis/deckbuilder/internal/game"
)

var firstGame = game.KingdomEntry{
	Name:  "First Game",
	Cards: []string{"Cellar", "Market", "Merchant", "Militia", "Mine", "Moat", "Remodel", "Smithy", "Village", "Workshop"},
}

func TestRunBatch(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	stats, err := RunBatch(context.Background(), Batch{
		Games:    8,
		Seed:     5,
		Workers:  3,
		MaxTurns: 300,
		Kingdom:  firstGame,
		Players:  []string{"bigmoney", "engine"},
		Logger:   zap.New(core),
	})
	require.NoError(t, err)

	assert.Equal(t, 8, stats.Games)
	assert.Zero(t, stats.Errors)
	assert.Equal(t, 8, stats.Wins[0]+stats.Wins[1]+stats.Ties)
	assert.Greater(t, stats.AvgTurns, 10.0)
	assert.Greater(t, stats.AvgScores[0], 0.0)
	require.Len(t, stats.Results, 8)

	ids := map[string]bool{}
	for _, r := range stats.Results {
		assert.NotEmpty(t, r.ID)
		ids[r.ID] = true
	}
	assert.Len(t, ids, 8, "every game gets its own id")
	assert.Equal(t, 1, logs.FilterMessage("batch complete").Len())
	assert.Equal(t, 8, logs.FilterField(zap.String("category", "GameOver")).Len())
}

func TestRunBatchIsDeterministic(t *testing.T) {
	b := Batch{Games: 4, Seed: 77, Workers: 4, MaxTurns: 300, Kingdom: firstGame, Players: []string{"bigmoney", "random"}}
	a, err := RunBatch(context.Background(), b)
	require.NoError(t, err)
	b.Workers = 1
	c, err := RunBatch(context.Background(), b)
	require.NoError(t, err)

	for i := range a.Results {
		assert.Equal(t, a.Results[i].Seed, c.Results[i].Seed)
		assert.Equal(t, a.Results[i].Scores, c.Results[i].Scores)
		assert.Equal(t, a.Results[i].Turns, c.Results[i].Turns)
	}
}

func TestRunBatchCountsBadGames(t *testing.T) {
	stats, err := RunBatch(context.Background(), Batch{
		Games:   2,
		Seed:    1,
		Kingdom: game.KingdomEntry{Cards: []string{"Warp Gate"}},
		Players: []string{"bigmoney"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Errors)
	assert.True(t, errors.Is(stats.Results[0].Err, game.ErrUnknownCard))

	stats, err = RunBatch(context.Background(), Batch{Games: 1, Kingdom: firstGame, Players: []string{"oracle"}})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Errors)
}

func TestRunBatchRejectsEmptyBatch(t *testing.T) {
	_, err := RunBatch(context.Background(), Batch{Players: []string{"bigmoney"}})
	assert.Error(t, err)
	_, err = RunBatch(context.Background(), Batch{Games: 1})
	assert.Error(t, err)
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunBatch(ctx, Batch{Games: 3, Workers: 1, Kingdom: firstGame, Players: []string{"bigmoney", "bigmoney"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAggregate(t *testing.T) {
	results := []GameResult{
		{Winners: []int{0}, Scores: []int{30, 20}, Turns: 30},
		{Winners: []int{1}, Scores: []int{10, 20}, Turns: 20},
		{Winners: []int{0, 1}, Scores: []int{20, 20}, Turns: 40},
		{Err: errors.New("boom"), Turns: 3},
	}
	s := Aggregate([]string{"a", "b"}, results)
	assert.Equal(t, 4, s.Games)
	assert.Equal(t, []int{1, 1}, s.Wins)
	assert.Equal(t, 1, s.Ties)
	assert.Equal(t, 1, s.Errors)
	assert.InDelta(t, 30.0, s.AvgTurns, 0.001)
	assert.InDelta(t, 20.0, s.AvgScores[0], 0.001)
	assert.InDelta(t, 20.0, s.AvgScores[1], 0.001)
	assert.Contains(t, s.String(), "4 games, 1 ties, 1 errors")
	assert.Contains(t, s.String(), "P1 a")
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Games = 3
	cfg.Players = []string{"random", "engine"}
	b := FromConfig(cfg, firstGame, nil)
	assert.Equal(t, 3, b.Games)
	assert.Equal(t, cfg.Seed, b.Seed)
	assert.Equal(t, firstGame, b.Kingdom)
	assert.Equal(t, []string{"random", "engine"}, b.Players)
}
